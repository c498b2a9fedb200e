package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealflow/production-api/internal/models"
)

func TestInMemoryOrderRepository_PreservesArrivalOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryOrderRepository()

	require.NoError(t, repo.Upsert(ctx, models.Order{ID: "o1", CustomerID: "c1"}))
	require.NoError(t, repo.Upsert(ctx, models.Order{ID: "o2", CustomerID: "c2"}))
	require.NoError(t, repo.Upsert(ctx, models.Order{ID: "o3", CustomerID: "c3"}))

	pending, err := repo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "o1", pending[0].ID)
	assert.Equal(t, "o2", pending[1].ID)
	assert.Equal(t, "o3", pending[2].ID)
}

func TestInMemoryOrderRepository_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryOrderRepository()

	require.NoError(t, repo.Upsert(ctx, models.Order{ID: "o1", CustomerID: "c1"}))
	require.NoError(t, repo.Upsert(ctx, models.Order{ID: "o2", CustomerID: "c2"}))
	require.NoError(t, repo.Upsert(ctx, models.Order{ID: "o1", CustomerID: "c1", Note: "updated"}))

	pending, err := repo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "o1", pending[0].ID)
	assert.Equal(t, "updated", pending[0].Note)
}

func TestInMemoryOrderRepository_DrainClears(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryOrderRepository()

	require.NoError(t, repo.Upsert(ctx, models.Order{ID: "o1", CustomerID: "c1"}))

	drained, err := repo.Drain(ctx)
	require.NoError(t, err)
	assert.Len(t, drained, 1)

	pending, err := repo.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Draining again yields an empty, valid batch.
	drained, err = repo.Drain(ctx)
	require.NoError(t, err)
	assert.Empty(t, drained)
}

func TestInMemoryProductRepository_Snapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProductRepository()

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, snap)

	// Mutations after the snapshot must not leak into it.
	require.NoError(t, repo.Upsert(ctx, models.Product{ID: "prod-99", Name: "New Meal"}))
	_, inSnap := snap["prod-99"]
	assert.False(t, inSnap)

	fresh, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	_, inFresh := fresh["prod-99"]
	assert.True(t, inFresh)
}
