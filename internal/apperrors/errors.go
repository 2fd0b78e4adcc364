package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates that a debit or credit value is not a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrActionInProgress indicates that the same action is already running for the same entity.
var ErrActionInProgress = errors.New("action already in progress")

// ErrTransient indicates that the backend could not be reached (network failure or timeout).
var ErrTransient = errors.New("backend unreachable")

// ErrRemoteRejected indicates that the backend refused the request with a 4xx status.
var ErrRemoteRejected = errors.New("backend rejected the request")

// ErrRemoteUnavailable indicates that the backend failed with a 5xx status.
var ErrRemoteUnavailable = errors.New("backend unavailable")

// AppError couples a user-facing message and an HTTP status with the underlying error kind.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an AppError of kind ErrValidation with a user-facing message.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UserMessage returns the message of the outermost AppError in err's chain, or fallback.
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
