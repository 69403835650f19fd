package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem represents a single dish on a restaurant's menu. Price is carried
// as an exact decimal; it is never represented as a float.
type MenuItem struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	Price        decimal.Decimal `json:"price" db:"price"`
	IsAvailable  bool            `json:"isAvailable" db:"is_available"`
	RestaurantID uuid.UUID       `json:"restaurantId" db:"restaurant_id"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

// CreateMenuItemRequest represents the request payload for adding a menu item
// to a restaurant.
type CreateMenuItemRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
}

// UpdateMenuItemRequest represents a partial update of a menu item. Nil
// fields are left unchanged.
type UpdateMenuItemRequest struct {
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsAvailable *bool            `json:"isAvailable,omitempty"`
}

// TopMenuItemEntry pairs a menu item with its total ordered quantity across
// all orders.
type TopMenuItemEntry struct {
	MenuItem      MenuItem `json:"menuItem"`
	TotalQuantity int      `json:"totalQuantity"`
}
