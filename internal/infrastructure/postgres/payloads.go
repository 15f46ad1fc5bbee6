package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjohndus/sepa-qr-data/internal/domain/entity"
	"github.com/mjohndus/sepa-qr-data/internal/domain/repository"
)

type PayloadRepo struct {
	pool *pgxpool.Pool
}

func NewPayloadRepo(pool *pgxpool.Pool) *PayloadRepo {
	return &PayloadRepo{pool: pool}
}

func (r *PayloadRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.IssuedPayload, error) {
	var key, content string
	var createdAt time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT idempotency_key, content, created_at FROM issued_payloads WHERE id = $1`,
		id,
	).Scan(&key, &content, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entity.ReconstructIssuedPayload(id, key, content, createdAt), nil
}

func (r *PayloadRepo) FindByKey(ctx context.Context, key string) (*entity.IssuedPayload, error) {
	var id uuid.UUID
	var content string
	var createdAt time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT id, content, created_at FROM issued_payloads WHERE idempotency_key = $1`,
		key,
	).Scan(&id, &content, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity.ReconstructIssuedPayload(id, key, content, createdAt), nil
}

func (r *PayloadRepo) Save(ctx context.Context, p *entity.IssuedPayload) (*entity.IssuedPayload, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO issued_payloads (id, idempotency_key, content, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (idempotency_key) DO NOTHING`,
		p.ID(), p.IdempotencyKey(), p.Content(), p.CreatedAt(),
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 1 {
		return p, nil
	}

	existing, err := r.FindByKey(ctx, p.IdempotencyKey())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrNotFound
	}
	return existing, nil
}
