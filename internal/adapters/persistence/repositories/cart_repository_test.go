package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novalibrary/internal/adapters/persistence/models"
)

func TestCart_AddAccumulatesQty(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))
	ctx := context.Background()

	items, err := repo.Add(ctx, "u1", "7", 2)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{BookID: "7", Qty: 2}}, items)

	items, err = repo.Add(ctx, "u1", "7", 3)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{BookID: "7", Qty: 5}}, items)
}

func TestCart_AddClampsQtyToOne(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))
	ctx := context.Background()

	items, err := repo.Add(ctx, "u1", "7", 0)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{BookID: "7", Qty: 1}}, items)

	items, err = repo.Add(ctx, "u1", "9", -4)
	require.NoError(t, err)
	assert.Equal(t, 1, items[0].Qty)
}

func TestCart_AddPrependsNewLines(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Add(ctx, "u1", "1", 1)
	require.NoError(t, err)
	items, err := repo.Add(ctx, "u1", "2", 1)
	require.NoError(t, err)

	assert.Equal(t, "2", items[0].BookID)
	assert.Equal(t, "1", items[1].BookID)
}

func TestCart_UpdateSetsExactQty(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Add(ctx, "u1", "7", 5)
	require.NoError(t, err)

	items, err := repo.Update(ctx, "u1", "7", 2)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{BookID: "7", Qty: 2}}, items)
}

func TestCart_UpdateCreatesMissingLine(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))
	ctx := context.Background()

	// Updating an empty cart creates the line rather than failing.
	items, err := repo.Update(ctx, "u1", "7", 1)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{BookID: "7", Qty: 1}}, items)
}

func TestCart_RemoveAndClear(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Add(ctx, "u1", "1", 1)
	require.NoError(t, err)
	_, err = repo.Add(ctx, "u1", "2", 1)
	require.NoError(t, err)

	items, err := repo.Remove(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{BookID: "2", Qty: 1}}, items)

	// Removing it again is a no-op.
	items, err = repo.Remove(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = repo.Clear(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
