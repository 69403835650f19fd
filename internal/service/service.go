package service

import (
	"context"

	"foodcourt/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerService defines operations for customer management.
type CustomerService interface {
	// Register creates a new customer.
	Register(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)

	// GetByID retrieves a single customer by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)

	// ListOrders retrieves all orders placed by a customer.
	ListOrders(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)

	// TopCustomers retrieves up to five customers ranked by order count.
	TopCustomers(ctx context.Context) ([]model.TopCustomerEntry, error)
}

// RestaurantService defines operations for restaurant management.
type RestaurantService interface {
	// Register creates a new restaurant.
	Register(ctx context.Context, req *model.CreateRestaurantRequest) (*model.Restaurant, error)

	// GetMenu retrieves the menu of a restaurant.
	GetMenu(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuItem, error)

	// AddMenuItem adds a menu item to a restaurant.
	AddMenuItem(ctx context.Context, restaurantID uuid.UUID, req *model.CreateMenuItemRequest) (*model.MenuItem, error)

	// Revenue sums the total price of a restaurant's non-cancelled orders.
	Revenue(ctx context.Context, restaurantID uuid.UUID) (decimal.Decimal, error)
}

// MenuService defines operations on menu items across restaurants.
type MenuService interface {
	// UpdateItem applies a partial update to a menu item.
	UpdateItem(ctx context.Context, id uuid.UUID, req *model.UpdateMenuItemRequest) (*model.MenuItem, error)

	// TopItem retrieves the single most-ordered menu item, or nil when no
	// order items exist.
	TopItem(ctx context.Context) (*model.TopMenuItemEntry, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// PlaceOrder validates the referenced entities, computes the total price
	// and persists the order with its items atomically.
	PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest) (*model.OrderResponse, error)

	// GetByID retrieves an order by its ID with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)

	// UpdateStatus changes the status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)
}
