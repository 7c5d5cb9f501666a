// Package fault provides sentinel-first error wrapping.
//
// Errors produced here match both the sentinel and the cause with
// [errors.Is], so callers can classify a failure by its package-level
// sentinel while the underlying error stays inspectable.
package fault

import "fmt"

// Wraps a cause under a sentinel error.
func Wrap(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// Wraps a formatted message under a sentinel error.
//
// The format string may itself use %w to chain a cause.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", sentinel, fmt.Errorf(format, args...))
}
