package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// WithMessage returns a copy of the error carrying a more specific user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches any BaseError sharing the same business error code
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidIdentity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTITY",
		"Either System ID or both Processor ID and Motherboard Serial are required.",
		"",
	)

	ErrInvalidAppName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_APP_NAME",
		"Invalid app type. Must be 'WA BOMB', 'Email Storm' or 'Cubi-View'.",
		"",
	)

	ErrInvalidValidityType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VALIDITY_TYPE",
		"Invalid validity type. Must be '1_MONTH', 'CUSTOM' or 'LIFETIME'.",
		"",
	)

	ErrInvalidCustomDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CUSTOM_DATE",
		"Custom validity date must be a valid date that is not in the past.",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDuplicateDevice = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_DEVICE",
		"Device already exists for this application.",
		"",
	)

	ErrDuplicateActivationKey = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_ACTIVATION_KEY",
		"Activation key already assigned to another device.",
		"",
	)

	ErrKeyGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"KEY_GENERATION_FAILED",
		"Failed to generate activation key.",
		"",
	)

	// Activation-related errors
	ErrDeviceInactive = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_INACTIVE",
		"Device is inactive. Please renew your license.",
		"",
	)

	ErrInvalidActivationKey = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTIVATION_KEY",
		"Invalid activation key",
		"",
	)

	ErrInvalidDeviceOrKey = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DEVICE_OR_KEY",
		"Invalid device or activation key",
		"",
	)

	// Admin-related errors
	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Admin not found",
		"",
	)

	ErrAdminAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADMIN_ALREADY_EXISTS",
		"An admin with this email already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server Error",
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

// Unwrap exposes the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Server Error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
