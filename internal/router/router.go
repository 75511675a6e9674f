package router

import (
	"net/http"

	"vastra/internal/auth"
	"vastra/internal/handler"
	"vastra/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	bookingHandler *handler.BookingHandler,
	adminHandler *handler.AdminHandler,
	verifier *auth.Verifier,
	allowedOrigin string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public catalog routes
	mux.HandleFunc("GET /api/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/products", catalogHandler.GetProducts)
	mux.HandleFunc("GET /api/products/featured", catalogHandler.GetFeaturedProducts)
	mux.HandleFunc("GET /api/products/{slug}", catalogHandler.GetProductBySlug)
	mux.HandleFunc("GET /api/products/{id}/blackout-dates", catalogHandler.GetBlackoutDates)
	mux.HandleFunc("GET /api/products/{id}/variants", catalogHandler.GetVariants)

	// Authenticated routes
	authed := middleware.RequireAuth(verifier, logger)
	protect := func(h http.HandlerFunc) http.Handler { return authed(h) }

	mux.Handle("POST /api/auth/login", protect(authHandler.Login))
	mux.Handle("GET /api/auth/user", protect(authHandler.GetUser))
	mux.Handle("PATCH /api/auth/user", protect(authHandler.UpdateUser))

	mux.Handle("GET /api/cart", protect(cartHandler.Get))
	mux.Handle("POST /api/cart", protect(cartHandler.Add))
	mux.Handle("DELETE /api/cart/{id}", protect(cartHandler.Remove))

	mux.Handle("GET /api/bookings", protect(bookingHandler.List))
	mux.Handle("GET /api/bookings/recent", protect(bookingHandler.Recent))
	mux.Handle("POST /api/bookings", protect(bookingHandler.Create))

	// Admin routes: authentication plus the admin claim
	adminOnly := middleware.RequireAdmin(logger)
	admin := func(h http.HandlerFunc) http.Handler { return authed(adminOnly(h)) }

	mux.Handle("GET /api/admin/stats", admin(adminHandler.GetStats))

	mux.Handle("GET /api/admin/products", admin(adminHandler.GetProducts))
	mux.Handle("POST /api/admin/products", admin(adminHandler.CreateProduct))
	mux.Handle("PATCH /api/admin/products/{id}", admin(adminHandler.UpdateProduct))
	mux.Handle("DELETE /api/admin/products/{id}", admin(adminHandler.DeleteProduct))

	mux.Handle("GET /api/admin/bookings", admin(adminHandler.GetBookings))
	mux.Handle("GET /api/admin/bookings/recent", admin(adminHandler.GetRecentBookings))
	mux.Handle("GET /api/admin/bookings/upcoming-returns", admin(adminHandler.GetUpcomingReturns))
	mux.Handle("PATCH /api/admin/bookings/{id}/status", admin(adminHandler.UpdateBookingStatus))

	mux.Handle("POST /api/admin/categories", admin(adminHandler.CreateCategory))
	mux.Handle("PATCH /api/admin/categories/{id}", admin(adminHandler.UpdateCategory))
	mux.Handle("DELETE /api/admin/categories/{id}", admin(adminHandler.DeleteCategory))

	mux.Handle("POST /api/admin/blackout-dates", admin(adminHandler.CreateBlackoutDate))
	mux.Handle("DELETE /api/admin/blackout-dates/{id}", admin(adminHandler.DeleteBlackoutDate))

	mux.Handle("POST /api/admin/variants", admin(adminHandler.CreateVariant))
	mux.Handle("DELETE /api/admin/variants/{id}", admin(adminHandler.DeleteVariant))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(allowedOrigin)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
