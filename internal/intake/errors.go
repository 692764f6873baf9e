package intake

import (
	"errors"
	"fmt"
)

var (
	// ErrInputClosed is returned when the input ends before every mark
	// has been read.
	ErrInputClosed = errors.New("input closed before all marks were entered")

	// ErrTooManyAttempts is returned when a student's mark is rejected
	// more times in a row than the prompter allows.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// ParseError describes text that could not be read as a mark.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot convert %q into a numeric value: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
