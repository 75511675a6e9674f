package repository

import (
	"context"
	"fmt"

	"vastra/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// blackoutRepository implements the BlackoutRepository interface using PostgreSQL.
type blackoutRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewBlackoutRepository creates a new PostgreSQL-backed blackout date repository.
func NewBlackoutRepository(pool *pgxpool.Pool, logger zerolog.Logger) BlackoutRepository {
	return &blackoutRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "blackout").Logger(),
	}
}

// GetByProduct retrieves all blackout dates of a product.
func (r *blackoutRepository) GetByProduct(ctx context.Context, productID int) ([]model.BlackoutDate, error) {
	query := `
		SELECT id, product_id, variant_id, blocked_date, reason
		FROM blackout_dates
		WHERE product_id = $1
		ORDER BY blocked_date
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", productID).Msg("failed to query blackout dates")
		return nil, fmt.Errorf("failed to query blackout dates: %w", err)
	}
	defer rows.Close()

	var blackouts []model.BlackoutDate
	for rows.Next() {
		var b model.BlackoutDate
		if err := rows.Scan(&b.ID, &b.ProductID, &b.VariantID, &b.BlockedDate, &b.Reason); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan blackout date row")
			return nil, fmt.Errorf("failed to scan blackout date: %w", err)
		}
		blackouts = append(blackouts, b)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating blackout date rows")
		return nil, fmt.Errorf("error iterating blackout dates: %w", err)
	}

	return blackouts, nil
}

// Create inserts a blackout date and returns the persisted record.
func (r *blackoutRepository) Create(ctx context.Context, blackout model.InsertBlackoutDate) (*model.BlackoutDate, error) {
	query := `
		INSERT INTO blackout_dates (product_id, variant_id, blocked_date, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, product_id, variant_id, blocked_date, reason
	`

	var b model.BlackoutDate
	err := r.pool.QueryRow(ctx, query,
		blackout.ProductID, blackout.VariantID, blackout.BlockedDate, blackout.Reason,
	).Scan(&b.ID, &b.ProductID, &b.VariantID, &b.BlockedDate, &b.Reason)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", blackout.ProductID).Msg("failed to create blackout date")
		return nil, fmt.Errorf("failed to create blackout date: %w", err)
	}

	return &b, nil
}

// Delete removes a blackout date by ID. Deleting an absent ID is not an error.
func (r *blackoutRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM blackout_dates WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("blackout_id", id).Msg("failed to delete blackout date")
		return fmt.Errorf("failed to delete blackout date: %w", err)
	}
	return nil
}
