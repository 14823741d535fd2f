// Package errors provides custom error types for the BudgetWise API.
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
	ErrUnauthorized    = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidPasscode = &AppError{Code: "INVALID_PASSCODE", Message: "Invalid passcode", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrNotConfirmed        = &AppError{Code: "NOT_CONFIRMED", Message: "Operation was not confirmed", StatusCode: http.StatusConflict}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Custom budget not found", StatusCode: http.StatusNotFound}
	ErrBudgetFrozen   = &AppError{Code: "BUDGET_FROZEN", Message: "Budget is locked or paused", StatusCode: http.StatusConflict}
)

// Transfer errors.
var (
	ErrAllocationMismatch        = &AppError{Code: "ALLOCATION_MISMATCH", Message: "Transfer amount does not match destination allocations", StatusCode: http.StatusBadRequest}
	ErrInsufficientCategoryFunds = &AppError{Code: "INSUFFICIENT_CATEGORY_FUNDS", Message: "Not enough unspent allocation in the source category", StatusCode: http.StatusBadRequest}
)

// Relationship errors.
var (
	ErrRelationshipNotFound = &AppError{Code: "RELATIONSHIP_NOT_FOUND", Message: "Budget relationship not found", StatusCode: http.StatusNotFound}
)

// Reminder errors.
var (
	ErrReminderNotFound = &AppError{Code: "REMINDER_NOT_FOUND", Message: "Bill reminder not found", StatusCode: http.StatusNotFound}
)

// Subscription errors.
var (
	ErrFeatureNotAvailable = &AppError{Code: "FEATURE_NOT_AVAILABLE", Message: "This feature is not available on your plan", StatusCode: http.StatusForbidden}
	ErrTierLimitReached    = &AppError{Code: "TIER_LIMIT_REACHED", Message: "Plan limit reached", StatusCode: http.StatusForbidden}
)

// Persistence errors.
var (
	ErrSnapshotCorrupt = &AppError{Code: "SNAPSHOT_CORRUPT", Message: "Stored snapshot could not be decoded", StatusCode: http.StatusInternalServerError}
)
