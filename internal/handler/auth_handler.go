package handler

import (
	"encoding/json"
	"net/http"

	"vastra/internal/auth"
	"vastra/internal/model"
	"vastra/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles login and profile HTTP requests.
type AuthHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.UserService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/auth/login requests. The verified token claims
// are upserted into the users table, creating the profile on first login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	user, err := h.service.Login(r.Context(), identity)
	if err != nil {
		writeServiceError(w, err, "Failed to login", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GetUser handles GET /api/auth/user requests.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	user, err := h.service.Get(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch user", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateUser handles PATCH /api/auth/user requests.
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Phone     *string `json:"phone"`
		Address   *string `json:"address"`
		Pincode   *string `json:"pincode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), identity.UserID, model.UpdateUser{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Pincode:   req.Pincode,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to update user", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
