// Package errors provides custom error types for the Prospect API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Asset class errors.
var (
	ErrAssetClassNotFound = &AppError{Code: "ASSET_CLASS_NOT_FOUND", Message: "Asset class not found", StatusCode: http.StatusNotFound}
	ErrAssetClassInUse    = &AppError{Code: "ASSET_CLASS_IN_USE", Message: "Asset class is used by existing holdings", StatusCode: http.StatusConflict}
)

// Holding type errors.
var (
	ErrHoldingTypeNotFound = &AppError{Code: "HOLDING_TYPE_NOT_FOUND", Message: "Holding type not found", StatusCode: http.StatusNotFound}
	ErrHoldingTypeInUse    = &AppError{Code: "HOLDING_TYPE_IN_USE", Message: "Holding type is used by existing holdings", StatusCode: http.StatusConflict}
)

// Holding errors.
var (
	ErrHoldingNotFound     = &AppError{Code: "HOLDING_NOT_FOUND", Message: "Holding not found", StatusCode: http.StatusNotFound}
	ErrExpenseNotFound     = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrUnknownFrequency    = &AppError{Code: "UNKNOWN_FREQUENCY", Message: "Unrecognized expense frequency", StatusCode: http.StatusBadRequest}
	ErrKindPayloadMismatch = &AppError{Code: "KIND_PAYLOAD_MISMATCH", Message: "Holding details do not match the holding kind", StatusCode: http.StatusBadRequest}
)

// Projection errors.
var (
	ErrInvalidProjection = &AppError{Code: "INVALID_PROJECTION", Message: "Invalid projection configuration", StatusCode: http.StatusBadRequest}
)
