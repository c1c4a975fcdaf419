package errors

import (
	"fmt"
	"time"
)

// ErrorCategory classifies the failures this library can report. The shim
// must never crash its host over an imperfect tuning file, so the taxonomy
// is short: refused loads, parse problems and sink problems. Out-of-range
// values and missing keys are not errors at all; they clamp or default.
type ErrorCategory int

const (
	// ErrorLoad indicates a refused configuration load: the file is
	// missing, or it is a symbolic link on a well-known system path.
	ErrorLoad ErrorCategory = iota + 1

	// ErrorParse indicates the configuration file could not be read or
	// tokenized. The loader absorbs these and keeps defaults.
	ErrorParse

	// ErrorSink indicates the diagnostic sink could not be redirected to
	// the requested file. Diagnostics degrade to the console.
	ErrorSink
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorLoad:
		return "load"
	case ErrorParse:
		return "parse"
	case ErrorSink:
		return "sink"
	default:
		return "unknown"
	}
}

type ShimError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

func (e *ShimError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *ShimError) Unwrap() error { return e.Err }

// IsRetryAble returns whether errors of this category can be retried.
func (e *ShimError) IsRetryAble() bool {
	switch e.Category {
	case ErrorLoad:
		// The config file may appear (or stop being a symlink) later.
		return true
	case ErrorParse:
		// A malformed file stays malformed until rewritten.
		return false
	case ErrorSink:
		// The log destination may become writable later.
		return true
	default:
		return false
	}
}

// NewShimError wraps err with its operation and category, stamped now.
func NewShimError(category ErrorCategory, operation string, err error) *ShimError {
	return &ShimError{
		Err:       err,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}
