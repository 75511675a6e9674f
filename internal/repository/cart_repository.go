package repository

import (
	"context"
	"fmt"

	"vastra/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const cartColumns = `id, user_id, product_id, variant_id, size, color, start_date, end_date, created_at`

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

func scanCartItem(row pgx.Row) (*model.CartItem, error) {
	var item model.CartItem
	err := row.Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.VariantID,
		&item.Size, &item.Color, &item.StartDate, &item.EndDate, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByUser retrieves a user's cart items in insertion order.
func (r *cartRepository) GetByUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM cart_items WHERE user_id = $1 ORDER BY id`, cartColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a cart item by ID.
func (r *cartRepository) GetByID(ctx context.Context, id int) (*model.CartItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM cart_items WHERE id = $1`, cartColumns)

	item, err := scanCartItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Int("cart_item_id", id).Msg("failed to query cart item")
		return nil, fmt.Errorf("failed to query cart item: %w", err)
	}

	return item, nil
}

// Add inserts a cart item and returns the persisted record.
func (r *cartRepository) Add(ctx context.Context, item model.InsertCartItem) (*model.CartItem, error) {
	query := fmt.Sprintf(`
		INSERT INTO cart_items (user_id, product_id, variant_id, size, color, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, cartColumns)

	persisted, err := scanCartItem(r.pool.QueryRow(ctx, query,
		item.UserID, item.ProductID, item.VariantID, item.Size, item.Color,
		item.StartDate, item.EndDate))
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", item.UserID).
			Int("product_id", item.ProductID).
			Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	r.logger.Debug().Int("cart_item_id", persisted.ID).Msg("cart item added")

	return persisted, nil
}

// Remove deletes a cart item by ID. Deleting an absent ID is not an error.
func (r *cartRepository) Remove(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("cart_item_id", id).Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// Clear deletes every cart item of a user within the provided transaction.
func (r *cartRepository) Clear(ctx context.Context, tx pgx.Tx, userID string) error {
	_, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	r.logger.Debug().Str("user_id", userID).Msg("cart cleared")

	return nil
}
