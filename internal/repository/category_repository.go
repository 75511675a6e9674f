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

const categoryColumns = `id, name, slug, description, image_url, display_order, created_at`

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

func scanCategory(row pgx.Row) (*model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.DisplayOrder, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll retrieves all categories ordered by display order.
func (r *categoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories ORDER BY display_order`, categoryColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a category by ID.
func (r *categoryRepository) GetByID(ctx context.Context, id int) (*model.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = $1`, categoryColumns)
	return r.getOne(ctx, query, id)
}

// GetBySlug retrieves a category by slug.
func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE slug = $1`, categoryColumns)
	return r.getOne(ctx, query, slug)
}

func (r *categoryRepository) getOne(ctx context.Context, query string, arg any) (*model.Category, error) {
	category, err := scanCategory(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return category, nil
}

// Create inserts a category and returns the persisted record.
func (r *categoryRepository) Create(ctx context.Context, category model.InsertCategory) (*model.Category, error) {
	query := fmt.Sprintf(`
		INSERT INTO categories (name, slug, description, image_url, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, categoryColumns)

	persisted, err := scanCategory(r.pool.QueryRow(ctx, query,
		category.Name, category.Slug, category.Description, category.ImageURL, category.DisplayOrder))
	if err != nil {
		r.logger.Error().Err(err).Str("slug", category.Slug).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().Int("category_id", persisted.ID).Msg("category created")

	return persisted, nil
}

// Update applies a sparse patch.
func (r *categoryRepository) Update(ctx context.Context, id int, patch model.UpdateCategory) (*model.Category, error) {
	var sets []string
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
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.DisplayOrder != nil {
		add("display_order", *patch.DisplayOrder)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE categories SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), categoryColumns)

	category, err := scanCategory(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("category_id", id).Msg("category not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// Delete removes a category by ID. Deleting an absent ID is not an error.
func (r *categoryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
