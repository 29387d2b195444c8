package calculation

import (
	"errors"
)

var (
	// ErrBelowMinimumAge is returned when a retirement age is below the
	// selected formula's minimum
	ErrBelowMinimumAge = errors.New("retirement age below formula minimum")
	// ErrUnknownFormula is returned for a formula identifier outside the catalogue
	ErrUnknownFormula = errors.New("unknown benefit formula")
	// ErrInvalidInput covers other rejected input values
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError represents a calculator input the engine refuses to compute
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return e.Field + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// IsValidationError reports whether err is, or wraps, a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
