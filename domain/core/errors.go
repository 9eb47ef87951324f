package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Fatal parse errors - these abort the pipeline and yield success=false
	ErrSizeLimitExceeded   = errors.New("input exceeds size limit")
	ErrEmptyInput          = errors.New("input is empty")
	ErrUnparsableStructure = errors.New("unparsable structure")

	// Caller errors - these fail fast and never produce a report
	ErrInvalidOptions = errors.New("invalid processing options")
	ErrHandleNotFound = errors.New("table handle not found")
)

// Error constructors with context
func NewSizeLimitError(size, limit int) error {
	return fmt.Errorf("%w: input is %d bytes, limit is %d bytes", ErrSizeLimitExceeded, size, limit)
}

func NewHandleNotFoundError(handle TableHandle) error {
	return fmt.Errorf("%w: %s", ErrHandleNotFound, handle)
}

// IsFatalParseError reports whether err is one of the fatal parse errors
// that still produce a well-formed failure report.
func IsFatalParseError(err error) bool {
	return errors.Is(err, ErrSizeLimitExceeded) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrUnparsableStructure)
}

// IsCallerError reports whether err is a hard failure the caller must fix
// (malformed configuration or an unknown handle), distinct from data-quality errors.
func IsCallerError(err error) bool {
	return errors.Is(err, ErrInvalidOptions) || errors.Is(err, ErrHandleNotFound)
}
