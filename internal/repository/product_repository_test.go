package repository

import (
	"context"
	"testing"
	"time"

	"vastra/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

// seedCategory inserts a category and returns its generated ID.
func seedCategory(t *testing.T, pool *pgxpool.Pool, name, slug string, displayOrder int) int {
	ctx := context.Background()

	var id int
	err := pool.QueryRow(ctx,
		`INSERT INTO categories (name, slug, display_order) VALUES ($1, $2, $3) RETURNING id`,
		name, slug, displayOrder).Scan(&id)
	require.NoError(t, err)

	return id
}

// seededProduct is the subset of product fields the seed helper controls.
type seededProduct struct {
	Name       string
	Slug       string
	CategoryID *int
	BasePrice  decimal.Decimal
	IsActive   bool
	IsFeatured bool
	CreatedAt  time.Time
}

// seedProducts inserts test products with explicit creation timestamps so
// ordering assertions are deterministic.
func seedProducts(t *testing.T, pool *pgxpool.Pool, products []seededProduct) []int {
	ctx := context.Background()

	query := `
		INSERT INTO products (name, slug, category_id, base_price, is_active, is_featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	ids := make([]int, 0, len(products))
	for _, p := range products {
		var id int
		err := pool.QueryRow(ctx, query,
			p.Name, p.Slug, p.CategoryID, p.BasePrice, p.IsActive, p.IsFeatured, p.CreatedAt).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return ids
}

func TestProductRepository_List(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	lehengaID := seedCategory(t, pool, "Lehengas", "lehengas", 1)
	sareeID := seedCategory(t, pool, "Sarees", "sarees", 2)

	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	seedProducts(t, pool, []seededProduct{
		{Name: "Crimson Lehenga", Slug: "crimson-lehenga", CategoryID: &lehengaID,
			BasePrice: decimal.NewFromInt(2000), IsActive: true, IsFeatured: false, CreatedAt: base},
		{Name: "Banarasi Saree", Slug: "banarasi-saree", CategoryID: &sareeID,
			BasePrice: decimal.NewFromInt(1500), IsActive: true, IsFeatured: true, CreatedAt: base.Add(time.Hour)},
		{Name: "Kanjivaram Saree", Slug: "kanjivaram-saree", CategoryID: &sareeID,
			BasePrice: decimal.NewFromInt(1800), IsActive: false, IsFeatured: false, CreatedAt: base.Add(2 * time.Hour)},
		{Name: "Ivory Lehenga", Slug: "ivory-lehenga", CategoryID: &lehengaID,
			BasePrice: decimal.NewFromInt(2500), IsActive: true, IsFeatured: true, CreatedAt: base.Add(3 * time.Hour)},
	})

	tests := []struct {
		name          string
		filter        model.ProductFilter
		expectedSlugs []string
	}{
		{
			name:   "Empty filter returns everything featured first then newest",
			filter: model.ProductFilter{},
			expectedSlugs: []string{
				"ivory-lehenga", "banarasi-saree", "kanjivaram-saree", "crimson-lehenga",
			},
		},
		{
			name:          "Active only",
			filter:        model.ProductFilter{IsActive: boolPtr(true)},
			expectedSlugs: []string{"ivory-lehenga", "banarasi-saree", "crimson-lehenga"},
		},
		{
			name:          "Category slug",
			filter:        model.ProductFilter{CategorySlug: "sarees"},
			expectedSlugs: []string{"banarasi-saree", "kanjivaram-saree"},
		},
		{
			name:   "Slug all applies no category constraint",
			filter: model.ProductFilter{CategorySlug: "all"},
			expectedSlugs: []string{
				"ivory-lehenga", "banarasi-saree", "kanjivaram-saree", "crimson-lehenga",
			},
		},
		{
			name:   "Unknown category slug is dropped",
			filter: model.ProductFilter{CategorySlug: "gowns"},
			expectedSlugs: []string{
				"ivory-lehenga", "banarasi-saree", "kanjivaram-saree", "crimson-lehenga",
			},
		},
		{
			name:          "Case-insensitive name search",
			filter:        model.ProductFilter{Search: "saree"},
			expectedSlugs: []string{"banarasi-saree", "kanjivaram-saree"},
		},
		{
			name: "Combined constraints",
			filter: model.ProductFilter{
				CategorySlug: "lehengas",
				Search:       "ivory",
				IsActive:     boolPtr(true),
			},
			expectedSlugs: []string{"ivory-lehenga"},
		},
		{
			name:          "No match",
			filter:        model.ProductFilter{Search: "sherwani"},
			expectedSlugs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			products, err := repo.List(ctx, tt.filter)

			require.NoError(t, err)
			slugs := make([]string, 0, len(products))
			for _, p := range products {
				slugs = append(slugs, p.Slug)
			}
			assert.Equal(t, tt.expectedSlugs, slugs)
		})
	}
}

func TestProductRepository_GetFeatured(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	seeds := make([]seededProduct, 0, 11)
	for i := 0; i < 10; i++ {
		seeds = append(seeds, seededProduct{
			Name:       "Featured " + string(rune('A'+i)),
			Slug:       "featured-" + string(rune('a'+i)),
			BasePrice:  decimal.NewFromInt(1000),
			IsActive:   true,
			IsFeatured: true,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
	}
	// Inactive featured products never surface.
	seeds = append(seeds, seededProduct{
		Name: "Retired", Slug: "retired",
		BasePrice: decimal.NewFromInt(1000), IsActive: false, IsFeatured: true,
		CreatedAt: base.Add(24 * time.Hour),
	})
	seedProducts(t, pool, seeds)

	ctx := context.Background()
	products, err := repo.GetFeatured(ctx)

	require.NoError(t, err)
	assert.Len(t, products, 8)
	// Newest first; the inactive product and the two oldest fall off.
	assert.Equal(t, "featured-j", products[0].Slug)
	assert.Equal(t, "featured-c", products[7].Slug)
}

func TestProductRepository_GetBySlug(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	seedProducts(t, pool, []seededProduct{
		{Name: "Crimson Lehenga", Slug: "crimson-lehenga",
			BasePrice: decimal.NewFromInt(2000), IsActive: true,
			CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
	})

	ctx := context.Background()

	product, err := repo.GetBySlug(ctx, "crimson-lehenga")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Crimson Lehenga", product.Name)
	assert.True(t, product.BasePrice.Equal(decimal.NewFromInt(2000)))

	product, err = repo.GetBySlug(ctx, "missing-slug")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductRepository_Create(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		product, err := repo.Create(ctx, model.InsertProduct{
			Name:      "Plain Kurta",
			Slug:      "plain-kurta",
			BasePrice: decimal.NewFromInt(500),
		})

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.True(t, product.IsActive)
		assert.False(t, product.IsFeatured)
		assert.Equal(t, 3, product.MinRentalDays)
		assert.NotNil(t, product.Images)
		assert.Empty(t, product.Images)
		assert.NotNil(t, product.Sizes)
		assert.Empty(t, product.Sizes)
	})

	t.Run("Explicit fields", func(t *testing.T) {
		product, err := repo.Create(ctx, model.InsertProduct{
			Name:          "Silk Sherwani",
			Slug:          "silk-sherwani",
			Description:   strPtr("Hand-embroidered"),
			BasePrice:     decimal.NewFromInt(4000),
			DepositAmount: decimal.NewFromInt(2000),
			MinRentalDays: 5,
			Images:        []string{"a.jpg", "b.jpg"},
			Sizes:         []string{"M", "L"},
			Colors:        []string{"Gold"},
			Occasions:     []string{"Wedding"},
			Fabric:        strPtr("Silk"),
			IsActive:      boolPtr(false),
			IsFeatured:    boolPtr(true),
		})

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, 5, product.MinRentalDays)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, product.Images)
		assert.Equal(t, []string{"M", "L"}, product.Sizes)
		assert.False(t, product.IsActive)
		assert.True(t, product.IsFeatured)
		assert.True(t, product.DepositAmount.Equal(decimal.NewFromInt(2000)))
	})
}

func TestProductRepository_Update(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	ids := seedProducts(t, pool, []seededProduct{
		{Name: "Crimson Lehenga", Slug: "crimson-lehenga",
			BasePrice: decimal.NewFromInt(2000), IsActive: true,
			CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
	})

	ctx := context.Background()

	t.Run("Sparse patch leaves other fields alone", func(t *testing.T) {
		newPrice := decimal.NewFromInt(2200)
		product, err := repo.Update(ctx, ids[0], model.UpdateProduct{
			BasePrice:  &newPrice,
			IsFeatured: boolPtr(true),
		})

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.True(t, product.BasePrice.Equal(newPrice))
		assert.True(t, product.IsFeatured)
		assert.Equal(t, "Crimson Lehenga", product.Name)
		assert.True(t, product.IsActive)
	})

	t.Run("Product does not exist", func(t *testing.T) {
		product, err := repo.Update(ctx, 99999, model.UpdateProduct{
			Name: strPtr("Ghost"),
		})

		require.NoError(t, err)
		assert.Nil(t, product)
	})
}

func TestProductRepository_Delete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	ids := seedProducts(t, pool, []seededProduct{
		{Name: "Crimson Lehenga", Slug: "crimson-lehenga",
			BasePrice: decimal.NewFromInt(2000), IsActive: true,
			CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
	})

	ctx := context.Background()

	err := repo.Delete(ctx, ids[0])
	require.NoError(t, err)

	product, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Nil(t, product)

	// Deleting an absent ID is not an error.
	err = repo.Delete(ctx, ids[0])
	assert.NoError(t, err)
}
