package repository

import (
	"context"
	"fmt"
	"strings"

	"vastra/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id, name, slug, description, category_id, base_price, deposit_amount, min_rental_days, images, sizes, colors, occasions, fabric, care_instructions, is_active, is_featured, created_at, updated_at`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.CategoryID,
		&p.BasePrice, &p.DepositAmount, &p.MinRentalDays,
		&p.Images, &p.Sizes, &p.Colors, &p.Occasions,
		&p.Fabric, &p.CareInstructions, &p.IsActive, &p.IsFeatured,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retrieves products matching the filter. Supplied constraints combine
// with AND; an absent constraint means no constraint. The sentinel category
// slug "all" and slugs that resolve to no category apply no category
// constraint. Results are ordered featured first, then newest first.
func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var conditions []string
	var args []any

	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if filter.CategorySlug != "" && filter.CategorySlug != "all" {
		var categoryID int
		err := r.pool.QueryRow(ctx,
			`SELECT id FROM categories WHERE slug = $1`, filter.CategorySlug).Scan(&categoryID)
		switch {
		case err == pgx.ErrNoRows:
			// Unknown slug: constraint is dropped, matching no-constraint semantics.
		case err != nil:
			r.logger.Error().Err(err).Str("category_slug", filter.CategorySlug).Msg("failed to resolve category slug")
			return nil, fmt.Errorf("failed to resolve category slug: %w", err)
		default:
			args = append(args, categoryID)
			conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
		}
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY is_featured DESC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("category_slug", filter.CategorySlug).
			Str("search", filter.Search).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows, r.logger)
}

// GetFeatured retrieves up to 8 active featured products, newest first.
func (r *productRepository) GetFeatured(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE is_active = true AND is_featured = true
		ORDER BY created_at DESC
		LIMIT 8
	`, productColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query featured products")
		return nil, fmt.Errorf("failed to query featured products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows, r.logger)
}

func collectProducts(rows pgx.Rows, logger zerolog.Logger) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a product by ID.
func (r *productRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	return r.getOne(ctx, query, id)
}

// GetBySlug retrieves a product by slug.
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE slug = $1`, productColumns)
	return r.getOne(ctx, query, slug)
}

func (r *productRepository) getOne(ctx context.Context, query string, arg any) (*model.Product, error) {
	product, err := scanProduct(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return product, nil
}

// Create inserts a product and returns the persisted record. Nil array
// fields are stored as empty arrays; active defaults to true.
func (r *productRepository) Create(ctx context.Context, product model.InsertProduct) (*model.Product, error) {
	isActive := true
	if product.IsActive != nil {
		isActive = *product.IsActive
	}
	isFeatured := false
	if product.IsFeatured != nil {
		isFeatured = *product.IsFeatured
	}
	minRentalDays := product.MinRentalDays
	if minRentalDays == 0 {
		minRentalDays = 3
	}

	query := fmt.Sprintf(`
		INSERT INTO products (
			name, slug, description, category_id, base_price, deposit_amount,
			min_rental_days, images, sizes, colors, occasions, fabric,
			care_instructions, is_active, is_featured
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s
	`, productColumns)

	persisted, err := scanProduct(r.pool.QueryRow(ctx, query,
		product.Name, product.Slug, product.Description, product.CategoryID,
		product.BasePrice, product.DepositAmount, minRentalDays,
		nonNilStrings(product.Images), nonNilStrings(product.Sizes),
		nonNilStrings(product.Colors), nonNilStrings(product.Occasions),
		product.Fabric, product.CareInstructions, isActive, isFeatured))
	if err != nil {
		r.logger.Error().Err(err).Str("slug", product.Slug).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int("product_id", persisted.ID).Msg("product created")

	return persisted, nil
}

// Update applies a sparse patch and refreshes updated_at.
func (r *productRepository) Update(ctx context.Context, id int, patch model.UpdateProduct) (*model.Product, error) {
	sets := []string{"updated_at = now()"}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.CategoryID != nil {
		add("category_id", *patch.CategoryID)
	}
	if patch.BasePrice != nil {
		add("base_price", *patch.BasePrice)
	}
	if patch.DepositAmount != nil {
		add("deposit_amount", *patch.DepositAmount)
	}
	if patch.MinRentalDays != nil {
		add("min_rental_days", *patch.MinRentalDays)
	}
	if patch.Images != nil {
		add("images", *patch.Images)
	}
	if patch.Sizes != nil {
		add("sizes", *patch.Sizes)
	}
	if patch.Colors != nil {
		add("colors", *patch.Colors)
	}
	if patch.Occasions != nil {
		add("occasions", *patch.Occasions)
	}
	if patch.Fabric != nil {
		add("fabric", *patch.Fabric)
	}
	if patch.CareInstructions != nil {
		add("care_instructions", *patch.CareInstructions)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if patch.IsFeatured != nil {
		add("is_featured", *patch.IsFeatured)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), productColumns)

	product, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("product_id", id).Msg("product not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product by ID. Deleting an absent ID is not an error.
func (r *productRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
