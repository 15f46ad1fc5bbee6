package generateqr

import (
	"context"

	"github.com/google/uuid"

	"github.com/mjohndus/sepa-qr-data/internal/domain/payment"
	"github.com/mjohndus/sepa-qr-data/internal/domain/qrcode"
	"github.com/mjohndus/sepa-qr-data/internal/domain/repository"
)

type Request struct {
	Details payment.Details
}

type UseCase struct {
	generator qrcode.Generator
	repo      repository.PayloadRepository
}

func NewUseCase(generator qrcode.Generator, repo repository.PayloadRepository) *UseCase {
	return &UseCase{generator: generator, repo: repo}
}

// Execute encodes an ad-hoc payment without storing it.
func (uc *UseCase) Execute(req Request) ([]byte, error) {
	content, err := req.Details.Render()
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(content)
}

func (uc *UseCase) ExecuteStored(ctx context.Context, id uuid.UUID) ([]byte, error) {
	issued, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(issued.Content())
}
