package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a registered customer of the platform.
type Customer struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	Address     string    `json:"address" db:"address"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CreateCustomerRequest represents the request payload for registering a customer.
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// TopCustomerEntry pairs a customer with the number of orders they have placed.
type TopCustomerEntry struct {
	Customer   Customer `json:"customer"`
	OrderCount int      `json:"orderCount"`
}
