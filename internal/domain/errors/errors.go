package errors

import (
	"net/http"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"
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
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
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

// Is matches any BaseError carrying the same error code, so errors.Is
// works against the predefined values after WithDetails.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Path search errors
	ErrUnsupportedAlgorithm = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_ALGORITHM",
		"Algorithm is not supported, use 'dijkstra' or 'astar'",
		"",
	)

	ErrPathNotFound = NewBaseError(
		http.StatusNotFound,
		"PATH_NOT_FOUND",
		"No path found",
		"",
	)

	ErrTooManyWaypoints = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_WAYPOINTS",
		"Too many waypoints",
		"",
	)

	// External routing errors
	ErrRoutingModeDisabled = NewBaseError(
		http.StatusBadRequest,
		"ROUTING_MODE_DISABLED",
		"External routing mode is not enabled",
		"",
	)

	ErrRoutingServiceUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ROUTING_SERVICE_UNAVAILABLE",
		"External routing service failed",
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

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// PathSearchError represents an unexpected failure while finding a path, implementing the AppError interface
type PathSearchError struct {
	err error
}

// NewPathSearchError creates a path search failure carrying the underlying cause
func NewPathSearchError(err error) AppError {
	return &PathSearchError{
		err: err,
	}
}

// Error implements the error interface
func (e *PathSearchError) Error() string {
	return errors.Wrap(e.err, "path search failed").Error()
}

// Unwrap returns the underlying cause
func (e *PathSearchError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PathSearchError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PathSearchError) ErrorCode() string {
	return "PATH_SEARCH_FAILED"
}

// Message returns the user-friendly error message
func (e *PathSearchError) Message() string {
	return "Error while finding path: " + e.err.Error()
}

// Details returns detailed error information
func (e *PathSearchError) Details() string {
	return e.err.Error()
}
