package parser

import (
	"errors"
	"fmt"
)

// Error codes returned through (*Error).Code.
var (
	ErrUnmatchedRightParen       = errors.New("unmatched right parenthesis")
	ErrUnmatchedLeftParen        = errors.New("unmatched left parenthesis")
	ErrMissingAlternationOperand = errors.New("missing or malformed right-hand operand of '|'")
)

// Error describes a pattern that could not be compiled.
// Pos is a byte offset into Pattern; len(Pattern) means the end of the pattern.
type Error struct {
	Code    error
	Pos     int
	Pattern string
}

func (e *Error) Error() string {
	return fmt.Sprintf("regnfa: %v at offset %d in %q", e.Code, e.Pos, e.Pattern)
}

func (e *Error) Unwrap() error {
	return e.Code
}
