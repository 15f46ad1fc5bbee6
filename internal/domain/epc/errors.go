package epc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFixedValue    = errors.New("invalid fixed value")
	ErrInvalidEnumValue     = errors.New("invalid enum value")
	ErrLengthExceeded       = errors.New("length exceeded")
	ErrInvalidFormat        = errors.New("invalid format")
	ErrRangeViolation       = errors.New("range violation")
	ErrMutualExclusion      = errors.New("mutual exclusion violation")
	ErrMissingRequiredField = errors.New("missing required field")
)

// ValidationError reports which field was rejected and why. Kind is one of
// the Err* sentinels above, so callers can match it with errors.Is.
type ValidationError struct {
	Field  string
	Kind   error
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(field string, kind error, format string, args ...any) error {
	return &ValidationError{
		Field:  field,
		Kind:   kind,
		Reason: fmt.Sprintf(format, args...),
	}
}
