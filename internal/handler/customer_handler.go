package handler

import (
	"encoding/json"
	"net/http"

	"foodcourt/internal/model"
	"foodcourt/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	service service.CustomerService
	logger  zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service service.CustomerService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger.With().Str("handler", "customer").Logger(),
	}
}

// Create handles POST /customers requests.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	customer, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
			return
		}
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// GetByID handles GET /customers/{id} requests.
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid customer ID format", h.logger)
		return
	}

	customer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// ListOrders handles GET /customers/{id}/orders requests.
func (h *CustomerHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid customer ID format", h.logger)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Top handles GET /customers/top requests.
func (h *CustomerHandler) Top(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.TopCustomers(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if len(entries) == 0 {
		writeJSON(w, http.StatusOK, model.MessageResponse{Message: "No customers found"})
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
