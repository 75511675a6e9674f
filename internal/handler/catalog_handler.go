package handler

import (
	"net/http"

	"vastra/internal/model"
	"vastra/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles the public catalog HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// GetCategories handles GET /api/categories requests.
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch categories", h.logger)
		return
	}

	if categories == nil {
		categories = []model.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetProducts handles GET /api/products requests. The public catalog is
// always restricted to active products; category and search narrow it
// further.
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	isActive := true
	filter := model.ProductFilter{
		CategorySlug: r.URL.Query().Get("category"),
		Search:       r.URL.Query().Get("search"),
		IsActive:     &isActive,
	}

	products, err := h.service.Products(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetFeaturedProducts handles GET /api/products/featured requests.
func (h *CatalogHandler) GetFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.FeaturedProducts(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch featured products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductBySlug handles GET /api/products/{slug} requests.
func (h *CatalogHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.ProductBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, err, "Failed to fetch product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetBlackoutDates handles GET /api/products/{id}/blackout-dates requests.
func (h *CatalogHandler) GetBlackoutDates(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID", h.logger)
		return
	}

	blackouts, err := h.service.BlackoutDates(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch blackout dates", h.logger)
		return
	}

	if blackouts == nil {
		blackouts = []model.BlackoutDate{}
	}
	writeJSON(w, http.StatusOK, blackouts)
}

// GetVariants handles GET /api/products/{id}/variants requests.
func (h *CatalogHandler) GetVariants(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID", h.logger)
		return
	}

	variants, err := h.service.Variants(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch variants", h.logger)
		return
	}

	if variants == nil {
		variants = []model.ProductVariant{}
	}
	writeJSON(w, http.StatusOK, variants)
}
