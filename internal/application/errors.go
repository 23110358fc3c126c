package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed adapter input
var (
	ErrInvalidRef    = errors.New("invalid note reference")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrInvalidInput  = errors.New("invalid input")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel the failure belongs to, if any
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidInput for every validation failure
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
