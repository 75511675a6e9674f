package handler

import (
	"encoding/json"
	"net/http"

	"vastra/internal/model"
	"vastra/internal/service"

	"github.com/rs/zerolog"
)

// adminRecentBookingsLimit caps the admin recent-bookings list.
const adminRecentBookingsLimit = 10

// AdminHandler handles the administrative HTTP surface.
type AdminHandler struct {
	catalog  service.CatalogService
	bookings service.BookingService
	logger   zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(catalog service.CatalogService, bookings service.BookingService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		catalog:  catalog,
		bookings: bookings,
		logger:   logger.With().Str("handler", "admin").Logger(),
	}
}

// GetStats handles GET /api/admin/stats requests.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bookings.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch stats", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// GetProducts handles GET /api/admin/products requests. Unlike the public
// catalog, inactive products are included.
func (h *AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Products(r.Context(), model.ProductFilter{})
	if err != nil {
		writeServiceError(w, err, "Failed to fetch products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// CreateProduct handles POST /api/admin/products requests.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.InsertProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Failed to create product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// UpdateProduct handles PATCH /api/admin/products/{id} requests.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID", h.logger)
		return
	}

	var req model.UpdateProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "Failed to update product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/admin/products/{id} requests.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID", h.logger)
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, err, "Failed to delete product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// GetBookings handles GET /api/admin/bookings requests.
func (h *AdminHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.AllBookings(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch bookings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// GetRecentBookings handles GET /api/admin/bookings/recent requests.
func (h *AdminHandler) GetRecentBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.Recent(r.Context(), adminRecentBookingsLimit)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch recent bookings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// GetUpcomingReturns handles GET /api/admin/bookings/upcoming-returns
// requests.
func (h *AdminHandler) GetUpcomingReturns(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.UpcomingReturns(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch upcoming returns", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// UpdateBookingStatus handles PATCH /api/admin/bookings/{id}/status requests.
func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid booking ID", h.logger)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	booking, err := h.bookings.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err, "Failed to update booking status", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// CreateCategory handles POST /api/admin/categories requests.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.InsertCategory
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Failed to create category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// UpdateCategory handles PATCH /api/admin/categories/{id} requests.
func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category ID", h.logger)
		return
	}

	var req model.UpdateCategory
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	category, err := h.catalog.UpdateCategory(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "Failed to update category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id} requests.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category ID", h.logger)
		return
	}

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, err, "Failed to delete category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// CreateBlackoutDate handles POST /api/admin/blackout-dates requests.
func (h *AdminHandler) CreateBlackoutDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID   int     `json:"productId"`
		VariantID   *int    `json:"variantId"`
		BlockedDate string  `json:"blockedDate"`
		Reason      *string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	blockedDate, err := parseDate(req.BlockedDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid blocked date", h.logger)
		return
	}

	blackout, err := h.catalog.CreateBlackoutDate(r.Context(), model.InsertBlackoutDate{
		ProductID:   req.ProductID,
		VariantID:   req.VariantID,
		BlockedDate: blockedDate,
		Reason:      req.Reason,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to create blackout date", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, blackout)
}

// DeleteBlackoutDate handles DELETE /api/admin/blackout-dates/{id} requests.
func (h *AdminHandler) DeleteBlackoutDate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid blackout date ID", h.logger)
		return
	}

	if err := h.catalog.DeleteBlackoutDate(r.Context(), id); err != nil {
		writeServiceError(w, err, "Failed to delete blackout date", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// CreateVariant handles POST /api/admin/variants requests.
func (h *AdminHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	var req model.InsertProductVariant
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	variant, err := h.catalog.CreateVariant(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Failed to create variant", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, variant)
}

// DeleteVariant handles DELETE /api/admin/variants/{id} requests.
func (h *AdminHandler) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid variant ID", h.logger)
		return
	}

	if err := h.catalog.DeleteVariant(r.Context(), id); err != nil {
		writeServiceError(w, err, "Failed to delete variant", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
