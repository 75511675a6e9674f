package service

import (
	"context"

	"vastra/internal/auth"
	"vastra/internal/model"
)

// UserService defines operations for user profiles.
type UserService interface {
	// Login upserts the user row from the verified identity claims and
	// returns the profile.
	Login(ctx context.Context, identity *auth.Identity) (*model.User, error)

	// Get retrieves a user profile.
	Get(ctx context.Context, id string) (*model.User, error)

	// UpdateProfile applies a sparse profile patch.
	UpdateProfile(ctx context.Context, id string, patch model.UpdateUser) (*model.User, error)
}

// CatalogService defines operations for categories, products, variants and
// blackout dates.
type CatalogService interface {
	// Categories lists all categories ordered by display order.
	Categories(ctx context.Context) ([]model.Category, error)

	// CreateCategory creates a category, deriving the slug from the name
	// when the payload omits one.
	CreateCategory(ctx context.Context, category model.InsertCategory) (*model.Category, error)

	// UpdateCategory applies a sparse patch.
	UpdateCategory(ctx context.Context, id int, patch model.UpdateCategory) (*model.Category, error)

	// DeleteCategory removes a category. Idempotent.
	DeleteCategory(ctx context.Context, id int) error

	// Products lists products matching the filter.
	Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// FeaturedProducts lists up to 8 active featured products.
	FeaturedProducts(ctx context.Context) ([]model.Product, error)

	// ProductBySlug retrieves a single product by slug.
	ProductBySlug(ctx context.Context, slug string) (*model.Product, error)

	// CreateProduct creates a product, deriving the slug from the name
	// when the payload omits one.
	CreateProduct(ctx context.Context, product model.InsertProduct) (*model.Product, error)

	// UpdateProduct applies a sparse patch.
	UpdateProduct(ctx context.Context, id int, patch model.UpdateProduct) (*model.Product, error)

	// DeleteProduct removes a product. Idempotent.
	DeleteProduct(ctx context.Context, id int) error

	// BlackoutDates lists a product's blackout dates.
	BlackoutDates(ctx context.Context, productID int) ([]model.BlackoutDate, error)

	// CreateBlackoutDate marks a date unavailable for a product.
	CreateBlackoutDate(ctx context.Context, blackout model.InsertBlackoutDate) (*model.BlackoutDate, error)

	// DeleteBlackoutDate removes a blackout date. Idempotent.
	DeleteBlackoutDate(ctx context.Context, id int) error

	// Variants lists a product's size/colour inventory units.
	Variants(ctx context.Context, productID int) ([]model.ProductVariant, error)

	// CreateVariant creates a variant.
	CreateVariant(ctx context.Context, variant model.InsertProductVariant) (*model.ProductVariant, error)

	// DeleteVariant removes a variant. Idempotent.
	DeleteVariant(ctx context.Context, id int) error
}

// CartService defines operations for the per-user cart of reservation drafts.
type CartService interface {
	// Items lists a user's cart items with their products attached.
	Items(ctx context.Context, userID string) ([]model.CartItemWithProduct, error)

	// Add places a reservation draft in the cart.
	Add(ctx context.Context, item model.InsertCartItem) (*model.CartItem, error)

	// Remove deletes a single cart item. Idempotent.
	Remove(ctx context.Context, id int) error
}

// BookingService defines booking reads, the cart-to-booking conversion
// workflow, and the admin oversight operations.
type BookingService interface {
	// Checkout converts the user's entire cart into pending bookings with
	// computed pricing, then clears the cart.
	Checkout(ctx context.Context, userID string, req model.CheckoutRequest) (*model.CheckoutResponse, error)

	// BookingsForUser lists a user's bookings with products attached,
	// newest first.
	BookingsForUser(ctx context.Context, userID string) ([]model.BookingWithProduct, error)

	// RecentForUser lists a user's most recent bookings with products attached.
	RecentForUser(ctx context.Context, userID string, limit int) ([]model.BookingWithProduct, error)

	// AllBookings lists every booking with products attached, newest first.
	AllBookings(ctx context.Context) ([]model.BookingWithProduct, error)

	// Recent lists the most recent bookings across all users with products
	// attached.
	Recent(ctx context.Context, limit int) ([]model.BookingWithProduct, error)

	// UpcomingReturns lists bookings due back within the next 7 days with
	// products attached.
	UpcomingReturns(ctx context.Context) ([]model.BookingWithProduct, error)

	// UpdateStatus transitions a booking's lifecycle status.
	UpdateStatus(ctx context.Context, id int, status string) (*model.Booking, error)

	// Stats computes the admin dashboard aggregates.
	Stats(ctx context.Context) (*model.AdminStats, error)
}
