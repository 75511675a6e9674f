package repository

import (
	"context"
	"fmt"

	"vastra/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const bookingColumns = `id, user_id, product_id, variant_id, start_date, end_date, total_days, rental_amount, deposit_amount, total_amount, status, payment_status, payment_intent_id, size, color, delivery_address, notes, created_at, updated_at`

// bookingRepository implements the BookingRepository interface using PostgreSQL.
type bookingRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewBookingRepository creates a new PostgreSQL-backed booking repository.
func NewBookingRepository(pool *pgxpool.Pool, logger zerolog.Logger) BookingRepository {
	return &bookingRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "booking").Logger(),
	}
}

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.ProductID, &b.VariantID,
		&b.StartDate, &b.EndDate, &b.TotalDays,
		&b.RentalAmount, &b.DepositAmount, &b.TotalAmount,
		&b.Status, &b.PaymentStatus, &b.PaymentIntentID,
		&b.Size, &b.Color, &b.DeliveryAddress, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BeginTx starts a new database transaction.
func (r *bookingRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a booking within the provided transaction.
func (r *bookingRepository) Create(ctx context.Context, tx pgx.Tx, booking model.InsertBooking) (*model.Booking, error) {
	query := fmt.Sprintf(`
		INSERT INTO bookings (
			user_id, product_id, variant_id, start_date, end_date, total_days,
			rental_amount, deposit_amount, total_amount, status, payment_status,
			size, color, delivery_address, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s
	`, bookingColumns)

	persisted, err := scanBooking(tx.QueryRow(ctx, query,
		booking.UserID, booking.ProductID, booking.VariantID,
		booking.StartDate, booking.EndDate, booking.TotalDays,
		booking.RentalAmount, booking.DepositAmount, booking.TotalAmount,
		booking.Status, booking.PaymentStatus,
		booking.Size, booking.Color, booking.DeliveryAddress, booking.Notes))
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", booking.UserID).
			Int("product_id", booking.ProductID).
			Msg("failed to create booking")
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	r.logger.Debug().Int("booking_id", persisted.ID).Msg("booking created")

	return persisted, nil
}

// GetByID retrieves a booking by ID.
func (r *bookingRepository) GetByID(ctx context.Context, id int) (*model.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("booking_id", id).Msg("booking not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("booking_id", id).Msg("failed to query booking")
		return nil, fmt.Errorf("failed to query booking: %w", err)
	}

	return booking, nil
}

// GetByUser retrieves a user's bookings, newest first.
func (r *bookingRepository) GetByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, bookingColumns)

	return r.collect(ctx, query, userID)
}

// GetAll retrieves all bookings, newest first.
func (r *bookingRepository) GetAll(ctx context.Context) ([]model.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings ORDER BY created_at DESC`, bookingColumns)
	return r.collect(ctx, query)
}

// GetRecentByUser retrieves a user's most recent bookings.
func (r *bookingRepository) GetRecentByUser(ctx context.Context, userID string, limit int) ([]model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, bookingColumns)

	return r.collect(ctx, query, userID, limit)
}

// GetRecent retrieves the most recent bookings across all users.
func (r *bookingRepository) GetRecent(ctx context.Context, limit int) ([]model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		ORDER BY created_at DESC
		LIMIT $1
	`, bookingColumns)

	return r.collect(ctx, query, limit)
}

// UpdateStatus sets a booking's lifecycle status and refreshes updated_at.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int, status string) (*model.Booking, error) {
	query := fmt.Sprintf(`
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING %s
	`, bookingColumns)

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, status, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("booking_id", id).Msg("booking not found for status update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("booking_id", id).Str("status", status).Msg("failed to update booking status")
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	r.logger.Info().Int("booking_id", id).Str("status", status).Msg("booking status updated")

	return booking, nil
}

// Stats computes the admin dashboard aggregates in a single read.
func (r *bookingRepository) Stats(ctx context.Context) (*model.AdminStats, error) {
	var stats model.AdminStats

	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE is_active = true`).Scan(&stats.TotalProducts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count active products")
		return nil, fmt.Errorf("failed to count active products: %w", err)
	}

	query := `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status IN ('confirmed', 'delivered')),
			coalesce(sum(rental_amount), 0)
		FROM bookings
	`

	err = r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalBookings, &stats.PendingBookings, &stats.ActiveBookings, &stats.Revenue)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to aggregate booking stats")
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}

	return &stats, nil
}

// UpcomingReturns retrieves confirmed or delivered bookings whose end date
// falls within [today, today+7 days], soonest first, capped at 10.
func (r *bookingRepository) UpcomingReturns(ctx context.Context) ([]model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE status IN ('confirmed', 'delivered')
		  AND end_date >= current_date
		  AND end_date <= current_date + interval '7 days'
		ORDER BY end_date
		LIMIT 10
	`, bookingColumns)

	return r.collect(ctx, query)
}

func (r *bookingRepository) collect(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query bookings")
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan booking row")
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating booking rows")
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
