// Package errors defines application-level errors that carry an HTTP status
// and a stable business error code alongside the user-facing message.
package errors

import (
	"net/http"

	"stockwatch/internal/errors"
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
	// Category- and catalog-related errors
	ErrCategoryUnknown = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_UNKNOWN",
		"Unknown stock category",
		"",
	)

	ErrItemNotInCatalog = NewBaseError(
		http.StatusBadRequest,
		"ITEM_NOT_IN_CATALOG",
		"Item is not part of this category's catalog",
		"",
	)

	// Upstream stock API errors
	ErrStockFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"STOCK_FETCH_FAILED",
		"Failed to fetch stock from the upstream API",
		"",
	)

	// Store errors
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"The realtime database is unavailable",
		"",
	)

	// Session-related errors
	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Missing or invalid session identity",
		"",
	)

	// Token-related errors
	ErrTokenEmpty = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_EMPTY",
		"Push token must not be empty",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)
)
