// Package errs defines the error taxonomy of the loader. Callers match on
// the sentinels with errors.Is and on the typed errors with errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed dates, ages or other row values.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks missing or empty inputs and reference pools.
	ErrConfiguration = errors.New("configuration error")
	// ErrReferentialIntegrity marks a fact row whose dimension value has no key.
	ErrReferentialIntegrity = errors.New("referential integrity error")
	// ErrConstraintViolation marks a uniqueness or foreign key violation.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrStoreState marks a build attempted against a busy store.
	ErrStoreState = errors.New("store state error")
)

// Validationf returns an error wrapping ErrValidation.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Configurationf returns an error wrapping ErrConfiguration.
func Configurationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// StoreStatef returns an error wrapping ErrStoreState.
func StoreStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStoreState, fmt.Sprintf(format, args...))
}

// ReferentialIntegrityError reports a dimension lookup miss during fact
// resolution.
type ReferentialIntegrityError struct {
	Dimension string
	Key       string
	Row       int
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("referential integrity: row %d: no %s row for %s", e.Row, e.Dimension, e.Key)
}

func (e *ReferentialIntegrityError) Is(target error) bool {
	return target == ErrReferentialIntegrity
}

// ConstraintViolationError reports a uniqueness, foreign key or check
// violation, either detected in memory or raised by the store.
type ConstraintViolationError struct {
	Table      string
	Constraint string
	Detail     string
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	msg := "constraint violation"
	if e.Table != "" {
		msg += " on " + e.Table
	}
	if e.Constraint != "" {
		msg += " (" + e.Constraint + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}
