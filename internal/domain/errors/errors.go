package errors

import (
	"fmt"
	"net/http"

	"bezgo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code used by the mock backend
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors derived
// with WithDetails still match their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Cart-related errors
	ErrVendorConflict = NewBaseError(
		http.StatusConflict,
		"VENDOR_CONFLICT",
		"Your cart already has items from another vendor",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Your cart is empty",
		"",
	)

	ErrInvalidCart = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CART",
		"A cart may only hold items from a single vendor",
		"",
	)

	// Order lifecycle errors
	ErrPaymentMethodRequired = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_METHOD_REQUIRED",
		"Please select UPI or COD to proceed",
		"",
	)

	ErrOrderInProgress = NewBaseError(
		http.StatusConflict,
		"ORDER_IN_PROGRESS",
		"An order is already being processed",
		"",
	)

	ErrInvalidStage = NewBaseError(
		http.StatusConflict,
		"INVALID_STAGE",
		"This action is not available at the current order stage",
		"",
	)

	ErrNoPendingPayment = NewBaseError(
		http.StatusConflict,
		"NO_PENDING_PAYMENT",
		"There is no payment waiting for confirmation",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	// Chat-related errors
	ErrEmptyMessage = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_MESSAGE",
		"Type a message or tag an item first",
		"",
	)

	// Session-related errors
	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"Enter a valid 10 digit mobile number",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"Enter the 6 digit code",
		"",
	)

	ErrInvalidName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NAME",
		"Names may only contain letters, spaces and hyphens",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// VendorConflictError is returned when an item from one vendor is added while
// the cart holds items from another. The caller decides whether to cancel or
// to clear the cart and switch vendor.
type VendorConflictError struct {
	ActiveVendorID    string
	ActiveVendorName  string
	RequestedVendorID string
	RequestedVendor   string
}

// Error implements the error interface
func (e *VendorConflictError) Error() string {
	return fmt.Sprintf("cart holds items from %s, cannot add items from %s", e.activeLabel(), e.requestedLabel())
}

// Is lets errors.Is(err, ErrVendorConflict) match a VendorConflictError.
func (e *VendorConflictError) Is(target error) bool {
	return target == ErrVendorConflict
}

// HTTPCode returns the HTTP status code
func (e *VendorConflictError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *VendorConflictError) ErrorCode() string {
	return ErrVendorConflict.ErrorCode()
}

// Message returns the user-friendly error message
func (e *VendorConflictError) Message() string {
	return fmt.Sprintf("You already have items from %s. Clear your cart to order from %s.", e.activeLabel(), e.requestedLabel())
}

// Details returns detailed error information
func (e *VendorConflictError) Details() string {
	return fmt.Sprintf("active=%s requested=%s", e.ActiveVendorID, e.RequestedVendorID)
}

func (e *VendorConflictError) activeLabel() string {
	if e.ActiveVendorName != "" {
		return e.ActiveVendorName
	}
	if e.ActiveVendorID != "" {
		return e.ActiveVendorID
	}

	return "another vendor"
}

func (e *VendorConflictError) requestedLabel() string {
	if e.RequestedVendor != "" {
		return e.RequestedVendor
	}

	return e.RequestedVendorID
}
