package service

import (
	"context"
	"fmt"
	"time"

	"foodcourt/internal/model"
	"foodcourt/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// topCustomersLimit bounds the top-customers report.
const topCustomersLimit = 5

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// Register creates a new customer.
func (s *customerService) Register(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		CreatedAt:   time.Now(),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Warn().Err(err).Str("email", req.Email).Msg("failed to register customer")
		return nil, err
	}

	s.logger.Info().
		Str("customer_id", customer.ID.String()).
		Msg("customer registered successfully")

	return customer, nil
}

// GetByID retrieves a single customer by ID.
func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to get customer")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer == nil {
		s.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
		return nil, model.ErrCustomerNotFound
	}

	return customer, nil
}

// ListOrders retrieves all orders placed by a customer.
func (s *customerService) ListOrders(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to get customer")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer == nil {
		s.logger.Debug().Str("customer_id", customerID.String()).Msg("customer not found")
		return nil, model.ErrCustomerNotFound
	}

	orders, err := s.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to list customer orders")
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}

	if orders == nil {
		orders = []model.Order{}
	}

	return orders, nil
}

// TopCustomers retrieves up to five customers ranked by order count.
func (s *customerService) TopCustomers(ctx context.Context) ([]model.TopCustomerEntry, error) {
	entries, err := s.customerRepo.TopByOrderCount(ctx, topCustomersLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get top customers")
		return nil, fmt.Errorf("failed to get top customers: %w", err)
	}

	s.logger.Debug().Int("count", len(entries)).Msg("retrieved top customers")

	return entries, nil
}

// validateCustomerRequest validates the customer registration payload.
func validateCustomerRequest(req *model.CreateCustomerRequest) error {
	if req == nil {
		return fmt.Errorf("customer request is nil")
	}

	if req.Name == "" {
		return fmt.Errorf("customer name is required")
	}

	if req.Email == "" {
		return fmt.Errorf("customer email is required")
	}

	return nil
}
