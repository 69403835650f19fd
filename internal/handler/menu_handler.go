package handler

import (
	"encoding/json"
	"net/http"

	"foodcourt/internal/model"
	"foodcourt/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-item HTTP requests not scoped to a restaurant.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// Update handles PATCH /menu/{id} requests.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid menu item ID format", h.logger)
		return
	}

	var req model.UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
			return
		}
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// TopItem handles GET /menu/top-items requests.
func (h *MenuHandler) TopItem(w http.ResponseWriter, r *http.Request) {
	entry, err := h.service.TopItem(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if entry == nil {
		writeJSON(w, http.StatusOK, model.MessageResponse{Message: "No items found"})
		return
	}

	writeJSON(w, http.StatusOK, entry)
}
