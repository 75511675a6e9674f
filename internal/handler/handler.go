package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vastra/internal/model"

	"github.com/rs/zerolog"
)

// MessageResponse is the uniform error/acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse acknowledges a delete operation.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, MessageResponse{Message: message})
}

// writeServiceError maps a service failure to an HTTP response. Domain
// errors keep their message; anything else becomes a generic 500 so
// internals never leak to the client.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, domainStatus(domainErr.Code), domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg(fallback)
	writeError(w, http.StatusInternalServerError, fallback, logger)
}

func domainStatus(code string) int {
	switch code {
	case model.ErrCodeProductNotFound, model.ErrCodeCategoryNotFound,
		model.ErrCodeBookingNotFound, model.ErrCodeUserNotFound:
		return http.StatusNotFound
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// pathID parses the {id} path segment as an integer.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// parseDate parses a YYYY-MM-DD request value.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
