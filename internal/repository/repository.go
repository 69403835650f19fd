package repository

import (
	"context"

	"foodcourt/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// Create inserts a new customer. Returns model.ErrDuplicateEmail if the
	// email is already registered.
	Create(ctx context.Context, customer *model.Customer) error

	// GetByID retrieves a single customer by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)

	// TopByOrderCount retrieves up to limit customers ranked by the number of
	// orders they have placed, descending. Ties break by customer ID.
	TopByOrderCount(ctx context.Context, limit int) ([]model.TopCustomerEntry, error)
}

// RestaurantRepository defines the interface for restaurant data access operations.
type RestaurantRepository interface {
	// Create inserts a new restaurant.
	Create(ctx context.Context, restaurant *model.Restaurant) error

	// GetByID retrieves a single restaurant by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
}

// MenuItemRepository defines the interface for menu-item data access operations.
type MenuItemRepository interface {
	// Create inserts a new menu item.
	Create(ctx context.Context, item *model.MenuItem) error

	// GetByID retrieves a single menu item by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)

	// ListByRestaurant retrieves all menu items of a restaurant.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuItem, error)

	// Update applies a partial update (price and/or availability) and returns
	// the updated item. Returns (nil, nil) when the item does not exist.
	Update(ctx context.Context, id uuid.UUID, price *decimal.Decimal, isAvailable *bool) (*model.MenuItem, error)

	// GetForUpdate retrieves the menu items with the given IDs inside the
	// provided transaction, locking the rows until the transaction ends.
	GetForUpdate(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) ([]model.MenuItem, error)

	// MostOrdered retrieves the single menu item with the highest summed
	// ordered quantity. Ties break by menu item ID. Returns (nil, nil) when
	// no order items exist.
	MostOrdered(ctx context.Context) (*model.TopMenuItemEntry, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. Returns
	// (nil, nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByCustomer retrieves all orders placed by a customer.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)

	// UpdateStatus sets the status of an order and returns the updated order.
	// Returns (nil, nil) when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)

	// RevenueByRestaurant sums the total price of a restaurant's orders,
	// excluding cancelled ones.
	RevenueByRestaurant(ctx context.Context, restaurantID uuid.UUID) (decimal.Decimal, error)
}
