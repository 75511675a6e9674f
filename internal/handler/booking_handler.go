package handler

import (
	"encoding/json"
	"net/http"

	"vastra/internal/auth"
	"vastra/internal/model"
	"vastra/internal/service"

	"github.com/rs/zerolog"
)

// recentBookingsLimit caps the customer-facing recent-bookings list.
const recentBookingsLimit = 5

// BookingHandler handles customer booking HTTP requests.
type BookingHandler struct {
	service service.BookingService
	logger  zerolog.Logger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(service service.BookingService, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger.With().Str("handler", "booking").Logger(),
	}
}

// List handles GET /api/bookings requests.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	bookings, err := h.service.BookingsForUser(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch bookings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// Recent handles GET /api/bookings/recent requests.
func (h *BookingHandler) Recent(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	bookings, err := h.service.RecentForUser(r.Context(), identity.UserID, recentBookingsLimit)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch recent bookings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// Create handles POST /api/bookings requests: the cart-to-booking
// conversion.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	result, err := h.service.Checkout(r.Context(), identity.UserID, req)
	if err != nil {
		writeServiceError(w, err, "Failed to create booking", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
