package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrReadFailed indicates an input stream failed mid-read.
	ErrReadFailed = errors.New("read failed")

	// ErrFileNotFound indicates an input file operand does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidConfig indicates a broken configuration file or flag combination.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Wrap wraps an error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}
