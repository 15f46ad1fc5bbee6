package lookup

import (
	"context"

	"github.com/google/uuid"

	"github.com/mjohndus/sepa-qr-data/internal/domain/entity"
	"github.com/mjohndus/sepa-qr-data/internal/domain/repository"
)

type UseCase struct {
	repo repository.PayloadRepository
}

func NewUseCase(repo repository.PayloadRepository) *UseCase {
	return &UseCase{repo: repo}
}

func (uc *UseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.IssuedPayload, error) {
	return uc.repo.FindByID(ctx, id)
}
