package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// Create schema
	createSchema(t, pool)

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// createSchema creates the necessary database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT,
			first_name TEXT,
			last_name TEXT,
			profile_image_url TEXT,
			phone TEXT,
			address TEXT,
			city TEXT,
			pincode TEXT,
			is_admin BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT,
			image_url TEXT,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT,
			category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
			base_price NUMERIC(10,2) NOT NULL CHECK (base_price >= 0),
			deposit_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			min_rental_days INTEGER NOT NULL DEFAULT 3,
			images TEXT[] NOT NULL DEFAULT '{}',
			sizes TEXT[] NOT NULL DEFAULT '{}',
			colors TEXT[] NOT NULL DEFAULT '{}',
			occasions TEXT[] NOT NULL DEFAULT '{}',
			fabric TEXT,
			care_instructions TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			is_featured BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
		CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC);

		CREATE TABLE IF NOT EXISTS product_variants (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			size TEXT NOT NULL,
			color TEXT NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 1,
			sku TEXT
		);

		CREATE TABLE IF NOT EXISTS blackout_dates (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			variant_id INTEGER REFERENCES product_variants(id) ON DELETE CASCADE,
			blocked_date DATE NOT NULL,
			reason TEXT
		);

		CREATE TABLE IF NOT EXISTS cart_items (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			product_id INTEGER NOT NULL,
			variant_id INTEGER,
			size TEXT,
			color TEXT,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_cart_items_user_id ON cart_items(user_id);

		CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			product_id INTEGER NOT NULL,
			variant_id INTEGER,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			total_days INTEGER NOT NULL,
			rental_amount NUMERIC(10,2) NOT NULL,
			deposit_amount NUMERIC(10,2) NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			payment_intent_id TEXT,
			size TEXT,
			color TEXT,
			delivery_address TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id);
		CREATE INDEX IF NOT EXISTS idx_bookings_end_date ON bookings(end_date);
	`

	_, err := pool.Exec(ctx, schema)
	require.NoError(t, err)
}
