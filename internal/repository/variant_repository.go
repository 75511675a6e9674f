package repository

import (
	"context"
	"fmt"

	"vastra/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// variantRepository implements the VariantRepository interface using PostgreSQL.
type variantRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewVariantRepository creates a new PostgreSQL-backed variant repository.
func NewVariantRepository(pool *pgxpool.Pool, logger zerolog.Logger) VariantRepository {
	return &variantRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "variant").Logger(),
	}
}

// GetByProduct retrieves all variants of a product.
func (r *variantRepository) GetByProduct(ctx context.Context, productID int) ([]model.ProductVariant, error) {
	query := `
		SELECT id, product_id, size, color, quantity, sku
		FROM product_variants
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", productID).Msg("failed to query variants")
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	var variants []model.ProductVariant
	for rows.Next() {
		var v model.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Size, &v.Color, &v.Quantity, &v.SKU); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan variant row")
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		variants = append(variants, v)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating variant rows")
		return nil, fmt.Errorf("error iterating variants: %w", err)
	}

	return variants, nil
}

// Create inserts a variant and returns the persisted record.
func (r *variantRepository) Create(ctx context.Context, variant model.InsertProductVariant) (*model.ProductVariant, error) {
	quantity := variant.Quantity
	if quantity == 0 {
		quantity = 1
	}

	query := `
		INSERT INTO product_variants (product_id, size, color, quantity, sku)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, product_id, size, color, quantity, sku
	`

	var v model.ProductVariant
	err := r.pool.QueryRow(ctx, query,
		variant.ProductID, variant.Size, variant.Color, quantity, variant.SKU,
	).Scan(&v.ID, &v.ProductID, &v.Size, &v.Color, &v.Quantity, &v.SKU)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", variant.ProductID).Msg("failed to create variant")
		return nil, fmt.Errorf("failed to create variant: %w", err)
	}

	return &v, nil
}

// Delete removes a variant by ID. Deleting an absent ID is not an error.
func (r *variantRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM product_variants WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("variant_id", id).Msg("failed to delete variant")
		return fmt.Errorf("failed to delete variant: %w", err)
	}
	return nil
}
