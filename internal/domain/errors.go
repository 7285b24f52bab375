package domain

import (
	"errors"
	"fmt"
)

// State-shaped failures: the request was well-formed but the product's
// current state forbids the transition.
var (
	ErrInactiveProduct   = errors.New("cannot update inactive product")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAlreadyActive     = errors.New("product is already active")
	ErrAlreadyInactive   = errors.New("product is already inactive")
	ErrVersionConflict   = errors.New("product was modified concurrently")
)

// Argument-shaped failures.
var (
	ErrNotFound        = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// ValidationError reports a single malformed or out-of-range input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
