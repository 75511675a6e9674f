package repository

import (
	"context"
	"testing"
	"time"

	"vastra/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCartRepository_AddAndGetByUser(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)

	ctx := context.Background()

	first, err := repo.Add(ctx, model.InsertCartItem{
		UserID:    "user-1",
		ProductID: 1,
		Size:      strPtr("M"),
		Color:     strPtr("Red"),
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 12),
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "2026-06-10", first.StartDate.Format("2006-01-02"))

	second, err := repo.Add(ctx, model.InsertCartItem{
		UserID:    "user-1",
		ProductID: 2,
		VariantID: intPtr(7),
		StartDate: date(2026, 7, 1),
		EndDate:   date(2026, 7, 3),
	})
	require.NoError(t, err)

	// Another user's item must not leak in.
	_, err = repo.Add(ctx, model.InsertCartItem{
		UserID:    "user-2",
		ProductID: 3,
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 12),
	})
	require.NoError(t, err)

	items, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
	require.NotNil(t, items[1].VariantID)
	assert.Equal(t, 7, *items[1].VariantID)
	assert.Equal(t, "Red", *items[0].Color)
}

func TestCartRepository_GetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)

	ctx := context.Background()

	item, err := repo.Add(ctx, model.InsertCartItem{
		UserID:    "user-1",
		ProductID: 1,
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 12),
	})
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "user-1", found.UserID)

	found, err = repo.GetByID(ctx, 99999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCartRepository_Remove(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)

	ctx := context.Background()

	item, err := repo.Add(ctx, model.InsertCartItem{
		UserID:    "user-1",
		ProductID: 1,
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 12),
	})
	require.NoError(t, err)

	err = repo.Remove(ctx, item.ID)
	require.NoError(t, err)

	items, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Removing an absent ID is not an error.
	err = repo.Remove(ctx, item.ID)
	assert.NoError(t, err)
}

func TestCartRepository_Clear(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)

	ctx := context.Background()

	for _, productID := range []int{1, 2, 3} {
		_, err := repo.Add(ctx, model.InsertCartItem{
			UserID:    "user-1",
			ProductID: productID,
			StartDate: date(2026, 6, 10),
			EndDate:   date(2026, 6, 12),
		})
		require.NoError(t, err)
	}
	other, err := repo.Add(ctx, model.InsertCartItem{
		UserID:    "user-2",
		ProductID: 4,
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 12),
	})
	require.NoError(t, err)

	t.Run("Rolled back clear keeps the cart", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.Clear(ctx, tx, "user-1"))
		require.NoError(t, tx.Rollback(ctx))

		items, err := repo.GetByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("Committed clear empties only that user's cart", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.Clear(ctx, tx, "user-1"))
		require.NoError(t, tx.Commit(ctx))

		items, err := repo.GetByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, items)

		items, err = repo.GetByUser(ctx, "user-2")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, other.ID, items[0].ID)
	})
}
