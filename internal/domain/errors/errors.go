// Package errors defines the application error model shared by the use case
// and delivery layers. Every validation failure the core can produce maps to
// exactly one business error code, so the presentation layer can translate
// failures 1:1 into user-facing messages.
package errors

import (
	"net/http"

	"storefront/internal/errors"
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

// Is matches errors by business code, so copies carrying details via
// WithDetails still compare equal to their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

// WithDetails returns a copy of the error carrying detailed information.
// The predefined error values stay untouched.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
//
// The product_* codes and messages are the wire contract of the cart API;
// callers match on them, so they must not change.
var (
	// ErrProductRequestFail is the generic ownership/authorization failure for
	// cart line item access.
	ErrProductRequestFail = NewBaseError(
		http.StatusBadRequest,
		"product_request_fail",
		"Product request fail",
		"",
	)

	// ErrProductWrongField is returned when the quantity payload field is
	// missing or not a valid integer.
	ErrProductWrongField = NewBaseError(
		http.StatusBadRequest,
		"product_wrong_field",
		"Product wrong field",
		"",
	)

	// ErrProductBelowMinimum aborts a checkout whose cart holds a line below
	// the product's minimum orderable quantity.
	ErrProductBelowMinimum = NewBaseError(
		http.StatusBadRequest,
		"product_less_than_minimum",
		"Product quantity less than minimum",
		"",
	)

	// ErrProductPackageSplit is returned when a quantity is not an exact
	// multiple of the product's package size.
	ErrProductPackageSplit = NewBaseError(
		http.StatusBadRequest,
		"product_package_split_error",
		"Product package could not be split",
		"",
	)

	// ErrProductDoesNotExist is returned when the referenced product id is
	// not in the catalog.
	ErrProductDoesNotExist = NewBaseError(
		http.StatusBadRequest,
		"product_does_not_exist",
		"Product requested does not exist",
		"",
	)

	// ErrProductQuantityExceeded is returned when a quantity exceeds the
	// product's availability ceiling.
	ErrProductQuantityExceeded = NewBaseError(
		http.StatusBadRequest,
		"product_quantity_exceed",
		"Product quantity exceed",
		"",
	)

	// ErrLineItemNotFound is returned when a line item id does not resolve to
	// an item currently sitting in a cart.
	ErrLineItemNotFound = NewBaseError(
		http.StatusNotFound,
		"not_found",
		"Line item not found",
		"",
	)

	// ErrOrderNotFound is returned when an order id does not resolve to an
	// order owned by the caller.
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"not_found",
		"Order not found",
		"",
	)

	// ErrValidationFailed covers malformed request payloads outside the
	// product error surface.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"validation_failed",
		"Request validation failed",
		"",
	)

	// ErrInternalError is the fallback for unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"internal_error",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "database_execute_failed"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
