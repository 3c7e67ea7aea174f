package cube

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2"
)

// Parse errors, use errors.Is to test for them.
var (
	ErrUnknownOrientationChar = errors.New("unknown orientation character")
	ErrIllegalOrientation     = errors.New("orientation not legal at position")
	ErrMalformedDescriptor    = errors.New("malformed face descriptor")
	ErrExpectedDigit          = errors.New("expected digit")
	ErrOutOfRangeCubie        = errors.New("cubie out of range")
	ErrUnexpectedOperator     = errors.New("unexpected operator")
	ErrUnknownNotation        = errors.New("unknown notation")
)

// ParseError is returned by all parsers. It wraps one of the Err* values and records what was found where.
type ParseError struct {
	Err error

	Char        rune        // offending character, 0 at end of input
	Position    int         // grid position for OLL descriptors, -1 otherwise
	Orientation Orientation // for ErrIllegalOrientation
	Digit       int         // for ErrOutOfRangeCubie

	Line, Column int
	Context      string
	message      string
}

func newParseError(z *parse.Input, err error, format string, a ...interface{}) *ParseError {
	msg := err.Error()
	if format != "" {
		msg += ": " + fmt.Sprintf(format, a...)
	}
	perr := parse.NewErrorLexer(z, msg)
	return &ParseError{
		Err:      err,
		Position: -1,
		Line:     perr.Line,
		Column:   perr.Column,
		Context:  perr.Context,
		message:  msg,
	}
}

// Error returns the message followed by the line and column and the offending line.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.message, e.Line, e.Column, e.Context)
}

// Unwrap returns the underlying Err* value.
func (e *ParseError) Unwrap() error {
	return e.Err
}
