package timeparse

import (
	"errors"
	"fmt"
)

// Parse failure causes, matched with errors.Is.
var (
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrMissingNumber    = errors.New("missing number")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrOverflow         = errors.New("value too large")
)

// ParseError reports a duration string that could not be parsed.
type ParseError struct {
	Input  string // full input
	Token  string // offending text
	Offset int    // byte offset of Token in Input
	Err    error
}

// Error names the input and, when known, the offending token and its offset.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid duration %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid duration %q: %v %q at offset %d", e.Input, e.Err, e.Token, e.Offset)
}

// Unwrap returns the sentinel cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
