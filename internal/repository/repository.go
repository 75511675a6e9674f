package repository

import (
	"context"

	"vastra/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Get retrieves a user by ID. Returns nil when absent.
	Get(ctx context.Context, id string) (*model.User, error)

	// Upsert inserts the user or, on conflicting ID, overwrites the mutable
	// profile fields and refreshes updated_at. Used by the login gate.
	Upsert(ctx context.Context, user model.UpsertUser) (*model.User, error)

	// Update applies a sparse profile patch. Returns nil when absent.
	Update(ctx context.Context, id string, patch model.UpdateUser) (*model.User, error)

	// UpdateTx is Update within the provided transaction.
	UpdateTx(ctx context.Context, tx pgx.Tx, id string, patch model.UpdateUser) (*model.User, error)
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// GetAll retrieves all categories ordered by display order.
	GetAll(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a category by ID. Returns nil when absent.
	GetByID(ctx context.Context, id int) (*model.Category, error)

	// GetBySlug retrieves a category by slug. Returns nil when absent.
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)

	// Create inserts a category and returns the persisted record.
	Create(ctx context.Context, category model.InsertCategory) (*model.Category, error)

	// Update applies a sparse patch. Returns nil when absent.
	Update(ctx context.Context, id int, patch model.UpdateCategory) (*model.Category, error)

	// Delete removes a category by ID. Idempotent.
	Delete(ctx context.Context, id int) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products matching the filter, featured first then
	// newest first. An empty filter returns the whole catalog.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetFeatured retrieves up to 8 active featured products, newest first.
	GetFeatured(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a product by ID. Returns nil when absent.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// GetBySlug retrieves a product by slug. Returns nil when absent.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// Create inserts a product and returns the persisted record.
	Create(ctx context.Context, product model.InsertProduct) (*model.Product, error)

	// Update applies a sparse patch and refreshes updated_at. Returns nil
	// when absent.
	Update(ctx context.Context, id int, patch model.UpdateProduct) (*model.Product, error)

	// Delete removes a product by ID. Idempotent.
	Delete(ctx context.Context, id int) error
}

// VariantRepository defines the interface for product variant data access.
type VariantRepository interface {
	// GetByProduct retrieves all variants of a product.
	GetByProduct(ctx context.Context, productID int) ([]model.ProductVariant, error)

	// Create inserts a variant and returns the persisted record.
	Create(ctx context.Context, variant model.InsertProductVariant) (*model.ProductVariant, error)

	// Delete removes a variant by ID. Idempotent.
	Delete(ctx context.Context, id int) error
}

// BlackoutRepository defines the interface for blackout date data access.
type BlackoutRepository interface {
	// GetByProduct retrieves all blackout dates of a product.
	GetByProduct(ctx context.Context, productID int) ([]model.BlackoutDate, error)

	// Create inserts a blackout date and returns the persisted record.
	Create(ctx context.Context, blackout model.InsertBlackoutDate) (*model.BlackoutDate, error)

	// Delete removes a blackout date by ID. Idempotent.
	Delete(ctx context.Context, id int) error
}

// CartRepository defines the interface for cart data access operations.
type CartRepository interface {
	// GetByUser retrieves a user's cart items.
	GetByUser(ctx context.Context, userID string) ([]model.CartItem, error)

	// GetByID retrieves a cart item by ID. Returns nil when absent.
	GetByID(ctx context.Context, id int) (*model.CartItem, error)

	// Add inserts a cart item and returns the persisted record.
	Add(ctx context.Context, item model.InsertCartItem) (*model.CartItem, error)

	// Remove deletes a cart item by ID. Idempotent.
	Remove(ctx context.Context, id int) error

	// Clear deletes every cart item of a user within the provided transaction.
	Clear(ctx context.Context, tx pgx.Tx, userID string) error
}

// BookingRepository defines the interface for booking data access operations.
type BookingRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a booking within the provided transaction and returns
	// the persisted record.
	Create(ctx context.Context, tx pgx.Tx, booking model.InsertBooking) (*model.Booking, error)

	// GetByID retrieves a booking by ID. Returns nil when absent.
	GetByID(ctx context.Context, id int) (*model.Booking, error)

	// GetByUser retrieves a user's bookings, newest first.
	GetByUser(ctx context.Context, userID string) ([]model.Booking, error)

	// GetAll retrieves all bookings, newest first.
	GetAll(ctx context.Context) ([]model.Booking, error)

	// GetRecentByUser retrieves a user's most recent bookings.
	GetRecentByUser(ctx context.Context, userID string, limit int) ([]model.Booking, error)

	// GetRecent retrieves the most recent bookings across all users.
	GetRecent(ctx context.Context, limit int) ([]model.Booking, error)

	// UpdateStatus sets a booking's lifecycle status and refreshes
	// updated_at. Returns nil when absent.
	UpdateStatus(ctx context.Context, id int, status string) (*model.Booking, error)

	// Stats computes the point-in-time admin dashboard aggregates.
	Stats(ctx context.Context) (*model.AdminStats, error)

	// UpcomingReturns retrieves confirmed or delivered bookings ending
	// within the next 7 days inclusive, soonest first, capped at 10.
	UpcomingReturns(ctx context.Context) ([]model.Booking, error)
}
