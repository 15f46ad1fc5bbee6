package lookup_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mjohndus/sepa-qr-data/internal/domain/entity"
	"github.com/mjohndus/sepa-qr-data/internal/domain/repository"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/lookup"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/mocks"
)

func TestLookupUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPayloadRepository(ctrl)
	uc := lookup.NewUseCase(repo)

	id := uuid.New()
	stored := entity.ReconstructIssuedPayload(id, "key", "BCD\n002\n1\nSCT", time.Time{})
	repo.EXPECT().FindByID(gomock.Any(), id).Return(stored, nil)

	got, err := uc.Execute(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, got.ID())
	assert.Equal(t, "BCD\n002\n1\nSCT", got.Content())
}

func TestLookupUseCase_Execute_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPayloadRepository(ctrl)
	uc := lookup.NewUseCase(repo)

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, repository.ErrNotFound)

	got, err := uc.Execute(context.Background(), id)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, got)
}
