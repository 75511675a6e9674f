package repository

import (
	"context"
	"testing"

	"vastra/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_GetAll(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	seedCategory(t, pool, "Sarees", "sarees", 3)
	seedCategory(t, pool, "Lehengas", "lehengas", 1)
	seedCategory(t, pool, "Gowns", "gowns", 2)

	ctx := context.Background()
	categories, err := repo.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "lehengas", categories[0].Slug)
	assert.Equal(t, "gowns", categories[1].Slug)
	assert.Equal(t, "sarees", categories[2].Slug)
}

func TestCategoryRepository_GetBySlug(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	seedCategory(t, pool, "Lehengas", "lehengas", 1)

	ctx := context.Background()

	category, err := repo.GetBySlug(ctx, "lehengas")
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, "Lehengas", category.Name)

	category, err = repo.GetBySlug(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestCategoryRepository_Create(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	ctx := context.Background()
	category, err := repo.Create(ctx, model.InsertCategory{
		Name:         "Bridal Lehengas",
		Slug:         "bridal-lehengas",
		Description:  strPtr("Heavy embroidered bridal wear"),
		DisplayOrder: 2,
	})

	require.NoError(t, err)
	require.NotNil(t, category)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Bridal Lehengas", category.Name)
	assert.Equal(t, "bridal-lehengas", category.Slug)
	assert.Equal(t, 2, category.DisplayOrder)
	assert.False(t, category.CreatedAt.IsZero())
}

func TestCategoryRepository_Update(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	id := seedCategory(t, pool, "Lehengas", "lehengas", 1)

	ctx := context.Background()

	t.Run("Sparse patch", func(t *testing.T) {
		category, err := repo.Update(ctx, id, model.UpdateCategory{
			Name:         strPtr("Designer Lehengas"),
			DisplayOrder: intPtr(5),
		})

		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, "Designer Lehengas", category.Name)
		assert.Equal(t, 5, category.DisplayOrder)
		assert.Equal(t, "lehengas", category.Slug)
	})

	t.Run("Empty patch returns the current record", func(t *testing.T) {
		category, err := repo.Update(ctx, id, model.UpdateCategory{})

		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, "Designer Lehengas", category.Name)
	})

	t.Run("Category does not exist", func(t *testing.T) {
		category, err := repo.Update(ctx, 99999, model.UpdateCategory{
			Name: strPtr("Ghost"),
		})

		require.NoError(t, err)
		assert.Nil(t, category)
	})
}

func TestCategoryRepository_Delete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	id := seedCategory(t, pool, "Lehengas", "lehengas", 1)

	ctx := context.Background()

	err := repo.Delete(ctx, id)
	require.NoError(t, err)

	category, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, category)

	// Deleting an absent ID is not an error.
	err = repo.Delete(ctx, id)
	assert.NoError(t, err)
}
