package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotCancellable is returned when a post is past the point of cancellation
	ErrNotCancellable = errors.New("post is not cancellable in its current state")

	// ErrAccountUnavailable is returned when a post targets a revoked or unknown account
	ErrAccountUnavailable = errors.New("account is not available for publishing")

	// ErrBudgetExceeded is returned when a reservation would cross the hard cap
	ErrBudgetExceeded = errors.New("budget limit exceeded")

	// ErrReservationNotHeld is returned when committing or releasing a
	// reservation that is no longer in the held state
	ErrReservationNotHeld = errors.New("reservation is not held")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
