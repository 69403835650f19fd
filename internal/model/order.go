package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "OutForDelivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order represents a placed order. TotalPrice is computed once from the
// menu-item prices current at creation time and is not recomputed afterwards.
type Order struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	CustomerID   uuid.UUID       `json:"customerId" db:"customer_id"`
	RestaurantID uuid.UUID       `json:"restaurantId" db:"restaurant_id"`
	TotalPrice   decimal.Decimal `json:"totalPrice" db:"total_price"`
	Status       OrderStatus     `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ID         uuid.UUID `json:"-" db:"id"`
	OrderID    uuid.UUID `json:"-" db:"order_id"`
	MenuItemID uuid.UUID `json:"menuItemId" db:"menu_item_id"`
	Quantity   int       `json:"quantity" db:"quantity"`
}

// PlaceOrderRequest represents the request payload for placing an order.
type PlaceOrderRequest struct {
	CustomerID   uuid.UUID          `json:"customerId"`
	RestaurantID uuid.UUID          `json:"restaurantId"`
	OrderItems   []OrderLineRequest `json:"orderItems"`
}

// OrderLineRequest represents a single requested line in an order.
type OrderLineRequest struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
}

// UpdateOrderStatusRequest represents the request payload for changing an
// order's status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is an order together with its line items.
type OrderResponse struct {
	Order
	Items []OrderItem `json:"orderItems"`
}
