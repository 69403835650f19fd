package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"foodcourt/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Warn().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeCustomerNotFound,
		model.ErrCodeRestaurantNotFound,
		model.ErrCodeMenuItemNotFound,
		model.ErrCodeMenuItemUnavailable,
		model.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidQuantity,
		model.ErrCodeInvalidPrice,
		model.ErrCodeInvalidStatus,
		model.ErrCodeEmptyOrder:
		return http.StatusBadRequest
	case model.ErrCodeDuplicateEmail, model.ErrCodeConflictStale:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError translates a service-layer error into an HTTP response.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	switch {
	case errors.As(err, &domainErr):
		writeError(w, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, model.ErrCodeTimeout, "request timed out", logger)
	default:
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
	}
}

// parseIDParam parses the {id} URL parameter as a UUID.
func parseIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// isValidationError reports whether err is a plain request-validation error
// produced by the service layer rather than a domain or infrastructure error.
func isValidationError(err error) bool {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "required") ||
		strings.Contains(msg, "must be provided") ||
		strings.Contains(msg, "nil")
}
