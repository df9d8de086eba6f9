package parser

import (
	"errors"
	"fmt"

	"github.com/sergev/ablescript/lang"
)

// Kinds of parse failure. Every *Error unwraps to exactly one of these.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrMissingLhs      = errors.New("missing left operand")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
)

// Error represents a parse failure and the source range where it was
// detected. Token is set for ErrUnexpectedToken.
type Error struct {
	Err   error
	Token Token
	Span  lang.Span
}

func (e *Error) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	if errors.Is(e.Err, ErrUnexpectedToken) {
		return fmt.Sprintf("%d..%d: %v %s", e.Span.Start, e.Span.End, e.Err, e.Token)
	}
	return fmt.Sprintf("%d..%d: %v", e.Span.Start, e.Span.End, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// unexpectedToken reports tok as out of place. A string literal cut off by
// the end of input is reported as unexpected EOF instead, so callers can
// keep reading.
func unexpectedToken(tok Token, span lang.Span) error {
	if tok.Type == TokenUnterminated {
		return unexpectedEOF(lang.Span{Start: tok.Span.End, End: tok.Span.End})
	}
	return &Error{
		Err:   ErrUnexpectedToken,
		Token: tok,
		Span:  span,
	}
}

func missingLhs(span lang.Span) error {
	return &Error{
		Err:  ErrMissingLhs,
		Span: span,
	}
}

func unexpectedEOF(span lang.Span) error {
	return &Error{
		Err:  ErrUnexpectedEOF,
		Span: span,
	}
}

// IsIncomplete reports whether the supplied error was caused by input that
// ended in the middle of a construct.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnexpectedEOF)
}

// LineColumn converts a byte offset in src to a one-based line and column,
// counting columns in runes.
func LineColumn(src string, offset int) (line, column int) {
	offset = min(max(offset, 0), len(src))
	line, column = 1, 1
	for _, r := range src[:offset] {
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
