package main

import (
	"context"
	"testing"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	store := storage.NewStore(backend, "", nil)

	require.NoError(t, storage.Save(ctx, store, models.CollectionAreas, []models.Area{}))
	require.NoError(t, storage.Save(ctx, store, models.KeyCurrentUser, models.DefaultSalesReps()[0]))

	require.NoError(t, Seed(ctx, store, false))
	assert.Len(t, storage.Load[[]models.Area](ctx, store, models.CollectionAreas, nil), 5)
	assert.Len(t, storage.Load[[]models.Lead](ctx, store, models.CollectionLeads, nil), 6)
	assert.NotNil(t, storage.Load[*models.User](ctx, store, models.KeyCurrentUser, nil))

	require.NoError(t, Seed(ctx, store, true))
	assert.Nil(t, storage.Load[*models.User](ctx, store, models.KeyCurrentUser, nil))
	assert.Len(t, backend.Keys(), 7)
}
