package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeCartEmpty        = "CART_EMPTY"
	ErrCodeInvalidDateRange = "INVALID_DATE_RANGE"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeBookingNotFound  = "BOOKING_NOT_FOUND"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message.
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
	ErrCartEmpty        = NewDomainError(ErrCodeCartEmpty, "Cart is empty")
	ErrInvalidDateRange = NewDomainError(ErrCodeInvalidDateRange, "End date must not precede start date")
	ErrInvalidStatus    = NewDomainError(ErrCodeInvalidStatus, "Unknown booking status")
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCategoryNotFound = NewDomainError(ErrCodeCategoryNotFound, "Category not found")
	ErrBookingNotFound  = NewDomainError(ErrCodeBookingNotFound, "Booking not found")
	ErrUserNotFound     = NewDomainError(ErrCodeUserNotFound, "User not found")
)
