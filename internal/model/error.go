package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse is an informational body for empty aggregate results.
type MessageResponse struct {
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeCustomerNotFound    = "CUSTOMER_NOT_FOUND"
	ErrCodeRestaurantNotFound  = "RESTAURANT_NOT_FOUND"
	ErrCodeMenuItemNotFound    = "MENU_ITEM_NOT_FOUND"
	ErrCodeMenuItemUnavailable = "MENU_ITEM_UNAVAILABLE"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidPrice        = "INVALID_PRICE"
	ErrCodeInvalidStatus       = "INVALID_STATUS"
	ErrCodeEmptyOrder          = "EMPTY_ORDER"
	ErrCodeDuplicateEmail      = "DUPLICATE_EMAIL"
	ErrCodeConflictStale       = "CONFLICT_STALE"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation carrying a stable error code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrCustomerNotFound    = NewDomainError(ErrCodeCustomerNotFound, "Customer not found")
	ErrRestaurantNotFound  = NewDomainError(ErrCodeRestaurantNotFound, "Restaurant not found")
	ErrMenuItemNotFound    = NewDomainError(ErrCodeMenuItemNotFound, "One or more menu items not found")
	ErrMenuItemUnavailable = NewDomainError(ErrCodeMenuItemUnavailable, "One or more menu items are not available")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidPrice        = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrInvalidStatus       = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrEmptyOrder          = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrDuplicateEmail      = NewDomainError(ErrCodeDuplicateEmail, "A customer with this email already exists")
	ErrConflictStale       = NewDomainError(ErrCodeConflictStale, "Order could not be placed due to a concurrent update, please retry")
)
