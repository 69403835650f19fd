package handler

import (
	"encoding/json"
	"net/http"

	"foodcourt/internal/model"
	"foodcourt/internal/service"

	"github.com/rs/zerolog"
)

// RestaurantHandler handles restaurant-related HTTP requests.
type RestaurantHandler struct {
	service service.RestaurantService
	logger  zerolog.Logger
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(service service.RestaurantService, logger zerolog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		logger:  logger.With().Str("handler", "restaurant").Logger(),
	}
}

// Create handles POST /restaurants requests.
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	restaurant, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
			return
		}
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, restaurant)
}

// GetMenu handles GET /restaurants/{id}/menu requests.
func (h *RestaurantHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid restaurant ID format", h.logger)
		return
	}

	items, err := h.service.GetMenu(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// AddMenuItem handles POST /restaurants/{id}/menu requests.
func (h *RestaurantHandler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid restaurant ID format", h.logger)
		return
	}

	var req model.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	item, err := h.service.AddMenuItem(r.Context(), id, &req)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
			return
		}
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Revenue handles GET /restaurants/{id}/revenue requests.
func (h *RestaurantHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid restaurant ID format", h.logger)
		return
	}

	revenue, err := h.service.Revenue(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.RevenueResponse{
		RestaurantID: id,
		Revenue:      revenue,
	})
}
