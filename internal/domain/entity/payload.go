package entity

import (
	"time"

	"github.com/google/uuid"
)

type IssuedPayload struct {
	id             uuid.UUID
	idempotencyKey string
	content        string
	createdAt      time.Time
}

func NewIssuedPayload(key, content string) *IssuedPayload {
	return &IssuedPayload{
		id:             uuid.New(),
		idempotencyKey: key,
		content:        content,
		createdAt:      time.Now().UTC(),
	}
}

func ReconstructIssuedPayload(id uuid.UUID, key, content string, createdAt time.Time) *IssuedPayload {
	return &IssuedPayload{
		id:             id,
		idempotencyKey: key,
		content:        content,
		createdAt:      createdAt,
	}
}

func (p *IssuedPayload) ID() uuid.UUID {
	return p.id
}

func (p *IssuedPayload) IdempotencyKey() string {
	return p.idempotencyKey
}

func (p *IssuedPayload) Content() string {
	return p.content
}

func (p *IssuedPayload) CreatedAt() time.Time {
	return p.createdAt
}
