package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mjohndus/sepa-qr-data/internal/domain/entity"
)

var ErrNotFound = errors.New("not found")

// PayloadRepository stores rendered payloads. FindByKey returns nil, nil
// when the key has not been used yet. Save returns the stored row, which is
// the earlier one if another caller took the key first.
type PayloadRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IssuedPayload, error)
	FindByKey(ctx context.Context, key string) (*entity.IssuedPayload, error)
	Save(ctx context.Context, payload *entity.IssuedPayload) (*entity.IssuedPayload, error)
}
