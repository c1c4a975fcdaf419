package errors

import (
	"errors"
	"fmt"
)

// Sentinel reasons a configuration load is refused. Everything else about a
// config file clamps or defaults instead of failing.
var (
	ErrConfigNotFound = errors.New("config file does not exist")
	ErrConfigSymlink  = errors.New("config file is a symbolic link")
)

// LoadError reports a refused configuration load. The prior configuration
// is always retained untouched when one of these is returned.
type LoadError struct {
	Path string // The path whose load was refused.
	Err  error  // One of the sentinel reasons above, or an I/O error.
}

// NewLoadError creates a new LoadError instance.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Err: err}
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("config load refused for %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError checks if a given error is of type LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// AsLoadError attempts to extract a LoadError from a given error.
func AsLoadError(err error) *LoadError {
	var le *LoadError
	if errors.As(err, &le) {
		return le
	}
	return nil
}
