package redfa

import (
	"errors"
	"fmt"

	"github.com/kodeforge/redfa/internal/parser"
)

// ErrPatternTooLong is returned by Compile/CompileWithOptions when a
// pattern exceeds Options.MaxPatternLength.
var ErrPatternTooLong = errors.New("pattern too long")

// ParseError reports where and why a regex failed to parse.
type ParseError struct {
	Pattern string
	Offset  int
	Reason  string
	empty   bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Reason)
}

// IsEmptyBracket reports whether the failure was specifically a bracket
// class that, after applying any `^` complement, matched no characters.
func (e *ParseError) IsEmptyBracket() bool { return e.empty }

func fromInternal(err error) error {
	var eb *parser.EmptyBracketError
	if errors.As(err, &eb) {
		return &ParseError{Pattern: eb.Pattern, Offset: eb.Offset, Reason: eb.Reason, empty: true}
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Pattern: pe.Pattern, Offset: pe.Offset, Reason: pe.Reason}
	}
	return err
}
