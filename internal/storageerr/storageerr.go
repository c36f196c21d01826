// Package storageerr classifies storage failures so retry policies can tell
// transient I/O trouble apart from permanently bad data.
package storageerr

import "fmt"

// Category determines how errors should be handled by retry logic.
type Category int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: a busy database file, a transient I/O error.
	Recoverable Category = iota

	// Irrecoverable errors must fail immediately without retry.
	// Examples: a stored value that does not parse as JSON.
	Irrecoverable
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps an error with categorization metadata.
type ClassifiedError struct {
	Category   Category
	Op         string // the storage operation that failed, e.g. "load daily_stats"
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Category, e.Op, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ClassifiedError) Unwrap() error { return e.Underlying }

// NewDecodeError marks a malformed stored value. Retrying cannot help.
func NewDecodeError(op string, err error) *ClassifiedError {
	return &ClassifiedError{Category: Irrecoverable, Op: op, Underlying: err}
}

// NewStoreError marks an I/O-level failure, which may be transient.
func NewStoreError(op string, err error) *ClassifiedError {
	return &ClassifiedError{Category: Recoverable, Op: op, Underlying: err}
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Irrecoverable
	}
	return false
}
