package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Restaurant represents a restaurant offering menu items.
type Restaurant struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateRestaurantRequest represents the request payload for registering a restaurant.
type CreateRestaurantRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// RevenueResponse reports the total revenue of a restaurant, excluding
// cancelled orders.
type RevenueResponse struct {
	RestaurantID uuid.UUID       `json:"restaurantId"`
	Revenue      decimal.Decimal `json:"revenue"`
}
