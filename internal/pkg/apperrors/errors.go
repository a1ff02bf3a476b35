package apperrors

import (
	"errors"
	"fmt"
)

// The two error kinds every operation can surface. Specific sentinels wrap
// one of these so callers can match either the broad kind or the exact
// condition with errors.Is.
var (
	ErrStorage    = errors.New("storage failure")
	ErrValidation = errors.New("validation failed")
)

// Storage errors
var (
	ErrCollectionMissing   = fmt.Errorf("%w: collection file missing", ErrStorage)
	ErrCollectionMalformed = fmt.Errorf("%w: collection file malformed", ErrStorage)
)

// Validation errors
var (
	ErrFieldRequired       = fmt.Errorf("%w: required field empty", ErrValidation)
	ErrUnknownField        = fmt.Errorf("%w: unknown field", ErrValidation)
	ErrIdentifierImmutable = fmt.Errorf("%w: identifier cannot be changed", ErrValidation)
	ErrBadIdentifier       = fmt.Errorf("%w: identifier is not an integer", ErrValidation)
	ErrPositionOutOfRange  = fmt.Errorf("%w: position out of range", ErrValidation)
	ErrUnknownCollection   = fmt.Errorf("%w: unknown collection", ErrValidation)
	ErrUnsupportedFormat   = fmt.Errorf("%w: unsupported storage format", ErrValidation)
)

// CustomError carries a sentinel plus a human-readable message for the
// presentation layer.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying sentinel to errors.Is/errors.As.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
