package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/model"
	"foodcourt/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// serializationFailure is the SQLSTATE reported by PostgreSQL when a
// transaction loses a serialization conflict.
const serializationFailure = "40001"

// orderService implements OrderService.
type orderService struct {
	orderRepo      repository.OrderRepository
	customerRepo   repository.CustomerRepository
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuItemRepository
	logger         zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	restaurantRepo repository.RestaurantRepository,
	menuRepo repository.MenuItemRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:      orderRepo,
		customerRepo:   customerRepo,
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
		logger:         logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder validates the customer, the restaurant and every requested menu
// item, computes the total price with exact decimal arithmetic and persists
// the order with its items in a single transaction. The referenced menu rows
// are locked inside the transaction, so a concurrent price or availability
// change cannot slip in between validation and the write.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest) (*model.OrderResponse, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", req.CustomerID.String()).Msg("failed to get customer")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		s.logger.Warn().Str("customer_id", req.CustomerID.String()).Msg("order references unknown customer")
		return nil, model.ErrCustomerNotFound
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		s.logger.Error().Err(err).Str("restaurant_id", req.RestaurantID.String()).Msg("failed to get restaurant")
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if restaurant == nil {
		s.logger.Warn().Str("restaurant_id", req.RestaurantID.String()).Msg("order references unknown restaurant")
		return nil, model.ErrRestaurantNotFound
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	// Lock the referenced menu rows for the rest of the transaction and
	// validate against the values read under the lock.
	menuItemIDs := dedupeIDs(req.OrderItems)
	lockedItems, err := s.menuRepo.GetForUpdate(ctx, tx, menuItemIDs)
	if err != nil {
		if serr := asStaleConflict(err); serr != nil {
			return nil, serr
		}
		s.logger.Error().Err(err).Int("item_count", len(menuItemIDs)).Msg("failed to lock menu items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	itemsByID := make(map[uuid.UUID]model.MenuItem, len(lockedItems))
	for _, item := range lockedItems {
		itemsByID[item.ID] = item
	}

	total := decimal.Zero
	for _, line := range req.OrderItems {
		item, ok := itemsByID[line.MenuItemID]
		if !ok || item.RestaurantID != req.RestaurantID {
			s.logger.Warn().
				Str("menu_item_id", line.MenuItemID.String()).
				Str("restaurant_id", req.RestaurantID.String()).
				Msg("order references unknown menu item")
			err = model.ErrMenuItemNotFound
			return nil, err
		}

		if !item.IsAvailable {
			s.logger.Warn().
				Str("menu_item_id", line.MenuItemID.String()).
				Msg("order references unavailable menu item")
			err = model.ErrMenuItemUnavailable
			return nil, err
		}

		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	now := time.Now()
	order := &model.Order{
		ID:           uuid.New(),
		CustomerID:   req.CustomerID,
		RestaurantID: req.RestaurantID,
		TotalPrice:   total,
		Status:       model.StatusPlaced,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(req.OrderItems))
	for i, line := range req.OrderItems {
		orderItems[i] = model.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		if serr := asStaleConflict(err); serr != nil {
			return nil, serr
		}
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("customer_id", req.CustomerID.String()).
		Str("restaurant_id", req.RestaurantID.String()).
		Str("total_price", total.String()).
		Int("item_count", len(orderItems)).
		Msg("order placed successfully")

	return &model.OrderResponse{
		Order: *order,
		Items: orderItems,
	}, nil
}

// GetByID retrieves an order by its ID with its items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderResponse{
		Order: *order,
		Items: items,
	}, nil
}

// UpdateStatus changes the status of an order.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	newStatus := model.OrderStatus(status)
	if !newStatus.Valid() {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("status", status).
			Msg("unknown order status")
		return nil, model.ErrInvalidStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found for status update")
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", status).
		Msg("order status updated")

	return order, nil
}

// validateOrderRequest validates the order placement payload.
func (s *orderService) validateOrderRequest(req *model.PlaceOrderRequest) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}

	if len(req.OrderItems) == 0 {
		return model.ErrEmptyOrder
	}

	for i, line := range req.OrderItems {
		if line.MenuItemID == uuid.Nil {
			return fmt.Errorf("item %d: menu item ID is required", i)
		}

		if line.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("menu_item_id", line.MenuItemID.String()).
				Int("quantity", line.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}

// dedupeIDs extracts the distinct menu item IDs from the requested lines.
func dedupeIDs(lines []model.OrderLineRequest) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.MenuItemID]; ok {
			continue
		}
		seen[line.MenuItemID] = struct{}{}
		ids = append(ids, line.MenuItemID)
	}
	return ids
}

// asStaleConflict maps a PostgreSQL serialization failure to the domain
// conflict error, or returns nil for any other error.
func asStaleConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == serializationFailure {
		return model.ErrConflictStale
	}
	return nil
}
