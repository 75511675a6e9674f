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

const userColumns = `id, email, first_name, last_name, profile_image_url, phone, address, city, pincode, is_admin, created_at, updated_at`

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL,
		&u.Phone, &u.Address, &u.City, &u.Pincode, &u.IsAdmin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Get retrieves a user by ID.
func (r *userRepository) Get(ctx context.Context, id string) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("user_id", id).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", id).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return user, nil
}

// Upsert inserts the user or overwrites the mutable profile fields on a
// conflicting ID.
func (r *userRepository) Upsert(ctx context.Context, user model.UpsertUser) (*model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = now()
		RETURNING %s
	`, userColumns)

	persisted, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName, user.ProfileImageURL))
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to upsert user")
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	r.logger.Debug().Str("user_id", persisted.ID).Msg("user upserted")

	return persisted, nil
}

// Update applies a sparse profile patch.
func (r *userRepository) Update(ctx context.Context, id string, patch model.UpdateUser) (*model.User, error) {
	return r.update(ctx, r.pool, id, patch)
}

// UpdateTx is Update within the provided transaction.
func (r *userRepository) UpdateTx(ctx context.Context, tx pgx.Tx, id string, patch model.UpdateUser) (*model.User, error) {
	return r.update(ctx, tx, id, patch)
}

// rowQuerier is the query subset shared by *pgxpool.Pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *userRepository) update(ctx context.Context, db rowQuerier, id string, patch model.UpdateUser) (*model.User, error) {
	sets := []string{"updated_at = now()"}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.City != nil {
		add("city", *patch.City)
	}
	if patch.Pincode != nil {
		add("pincode", *patch.Pincode)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns)

	user, err := scanUser(db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("user_id", id).Msg("user not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
