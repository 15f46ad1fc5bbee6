package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjohndus/sepa-qr-data/internal/domain/entity"
	"github.com/mjohndus/sepa-qr-data/internal/domain/repository"
	"github.com/mjohndus/sepa-qr-data/internal/infrastructure/memory"
)

func TestPayloadRepo_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPayloadRepo()

	p := entity.NewIssuedPayload("key-1", "BCD\n002")
	saved, err := repo.Save(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, p.ID(), saved.ID())

	byID, err := repo.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "BCD\n002", byID.Content())

	byKey, err := repo.FindByKey(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID(), byKey.ID())
}

func TestPayloadRepo_Missing(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPayloadRepo()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	byKey, err := repo.FindByKey(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, byKey)
}

func TestPayloadRepo_ConcurrentSameKey(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPayloadRepo()

	const goroutines = 10
	ids := make([]uuid.UUID, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(idx int) {
			defer wg.Done()
			saved, err := repo.Save(ctx, entity.NewIssuedPayload("shared", "BCD"))
			if err == nil {
				ids[idx] = saved.ID()
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}
