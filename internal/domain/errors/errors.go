package errors

import (
	"net/http"

	"krishihive/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
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
	return e.message
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
	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired session token",
		"",
	)

	// Cart-related errors
	ErrCartSaveUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"CART_SAVE_UNAUTHENTICATED",
		"Please sign in to save your cart",
		"",
	)

	ErrCartSaveFailed = NewBaseError(
		http.StatusBadGateway,
		"CART_SAVE_FAILED",
		"Failed to save cart",
		"",
	)

	ErrCartInvalidItem = NewBaseError(
		http.StatusBadRequest,
		"CART_INVALID_ITEM",
		"Cart item quantity and price must be positive",
		"",
	)

	ErrCheckoutFailed = NewBaseError(
		http.StatusBadGateway,
		"CHECKOUT_FAILED",
		"Failed to place order",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No profile exists for this user",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Unknown role",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PRODUCT_CREATION_FAILED",
		"Failed to create product listing",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_UPLOAD_FAILED",
		"Failed to upload product image",
		"",
	)

	// Ledger-related errors
	ErrTransactionInvalid = NewBaseError(
		http.StatusBadRequest,
		"TRANSACTION_INVALID",
		"Invalid ledger entry",
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
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// BackendError represents a failure talking to the storage backend,
// implementing the AppError interface
type BackendError struct {
	err     error
	details string
}

// NewBackendError creates a storage-backend-related error
func NewBackendError(err error, details string) AppError {
	return &BackendError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return errors.Wrap(e.err, "backend request failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_REQUEST_FAILED"
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	return "Storage backend request failed"
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return e.details
}
