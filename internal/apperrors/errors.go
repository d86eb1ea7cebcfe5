package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller lacks the capability required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInvalidRole indicates the target user's role is not eligible for the operation
// (e.g. funding custody to a user whose role cannot hold custody).
var ErrInvalidRole = errors.New("invalid role for operation")

// ErrInsufficientBalance indicates a custody return exceeds the available balance
// (custody balance minus pending clearance).
var ErrInsufficientBalance = errors.New("insufficient available balance")

// ErrInsufficientStock indicates a material batch consumption exceeds the remaining value.
var ErrInsufficientStock = errors.New("insufficient remaining batch value")

// ErrStateConflict indicates a lifecycle transition was attempted from the wrong state,
// including a lost double-approval race.
var ErrStateConflict = errors.New("invalid state transition")

// AppError wraps a lower-level error with a status code and message.
// Repositories use it to annotate infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
