package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mjohndus/sepa-qr-data/internal/domain/entity"
	"github.com/mjohndus/sepa-qr-data/internal/domain/repository"
)

// PayloadRepo keeps issued payloads in process memory. Used when no
// DATABASE_URL is configured.
type PayloadRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entity.IssuedPayload
	byKey map[string]*entity.IssuedPayload
}

func NewPayloadRepo() *PayloadRepo {
	return &PayloadRepo{
		byID:  make(map[uuid.UUID]*entity.IssuedPayload),
		byKey: make(map[string]*entity.IssuedPayload),
	}
}

func (r *PayloadRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.IssuedPayload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *PayloadRepo) FindByKey(_ context.Context, key string) (*entity.IssuedPayload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byKey[key], nil
}

func (r *PayloadRepo) Save(_ context.Context, p *entity.IssuedPayload) (*entity.IssuedPayload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byKey[p.IdempotencyKey()]; ok {
		return existing, nil
	}
	r.byID[p.ID()] = p
	r.byKey[p.IdempotencyKey()] = p
	return p, nil
}
