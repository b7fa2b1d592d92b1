package timeline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval indicates an interval whose start key is after its
	// end key, or which is missing a key.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrInvalidPhase indicates a phase that ends before it starts.
	ErrInvalidPhase = errors.New("invalid phase")

	// ErrNegativeEffort indicates an allocation, demand or estimate below zero.
	ErrNegativeEffort = errors.New("negative effort")

	// ErrNegativeCapacity indicates a capacity entry below zero.
	ErrNegativeCapacity = errors.New("negative capacity")

	// ErrDuplicateCapacity indicates two capacity entries for the same
	// entity and date.
	ErrDuplicateCapacity = errors.New("duplicate capacity")

	// ErrInvalidDate indicates a date key that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date key")
)

// ValidationError reports an input contract violation and the record that
// caused it. It matches its Kind sentinel under errors.Is.
type ValidationError struct {
	Kind   error
	Record string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Record, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, record, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Record: record, Reason: fmt.Sprintf(format, args...)}
}
