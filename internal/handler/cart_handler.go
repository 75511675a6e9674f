package handler

import (
	"encoding/json"
	"net/http"

	"vastra/internal/auth"
	"vastra/internal/model"
	"vastra/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests. Items are returned with their
// products attached.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	items, err := h.service.Items(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/cart requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	var req struct {
		ProductID int     `json:"productId"`
		VariantID *int    `json:"variantId"`
		Size      *string `json:"size"`
		Color     *string `json:"color"`
		StartDate string  `json:"startDate"`
		EndDate   string  `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date", h.logger)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end date", h.logger)
		return
	}

	item, err := h.service.Add(r.Context(), model.InsertCartItem{
		UserID:    identity.UserID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Size:      req.Size,
		Color:     req.Color,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to add to cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Remove handles DELETE /api/cart/{id} requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cart item ID", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		writeServiceError(w, err, "Failed to remove from cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
