package issue

import (
	"context"

	"github.com/google/uuid"

	"github.com/mjohndus/sepa-qr-data/internal/domain/entity"
	"github.com/mjohndus/sepa-qr-data/internal/domain/payment"
	"github.com/mjohndus/sepa-qr-data/internal/domain/repository"
)

type Request struct {
	IdempotencyKey string
	Details        payment.Details
}

type Response struct {
	ID       uuid.UUID
	Payload  string
	Replayed bool
}

type UseCase struct {
	repo repository.PayloadRepository
}

func NewUseCase(repo repository.PayloadRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Execute renders and stores the payload. A key that was used before returns
// the stored payload, whatever the new details are.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	cached, err := uc.repo.FindByKey(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return toResponse(cached, true), nil
	}

	content, err := req.Details.Render()
	if err != nil {
		return nil, err
	}

	issued := entity.NewIssuedPayload(req.IdempotencyKey, content)
	saved, err := uc.repo.Save(ctx, issued)
	if err != nil {
		return nil, err
	}

	return toResponse(saved, saved.ID() != issued.ID()), nil
}

func toResponse(p *entity.IssuedPayload, replayed bool) *Response {
	return &Response{
		ID:       p.ID(),
		Payload:  p.Content(),
		Replayed: replayed,
	}
}
