package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLineFormat marks a line that looks like an item but does not follow the item grammar.
	ErrInvalidLineFormat = errors.New("invalid format")

	// ErrInvalidNumericValues marks a well-formed item line whose quantity, price or weight is not a valid number.
	ErrInvalidNumericValues = errors.New("invalid numeric values")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// FormatError is recorded when the structural grammar does not match.
	FormatError ErrorKind = iota + 1

	// NumericError is recorded when the grammar matched but a numeric field did not normalise.
	NumericError
)

func (k ErrorKind) String() string {
	switch k {
	case FormatError:
		return "format"
	case NumericError:
		return "numeric"
	default:
		return "unknown"
	}
}

// ParseError describes one rejected line of order text. It is collected in the
// ParseResult rather than returned, so parsing always runs to completion.
//
// ParseError implements error; errors.Is matches ErrInvalidLineFormat or
// ErrInvalidNumericValues depending on its kind.
type ParseError struct {
	lineNumber int
	rawLine    string
	kind       ErrorKind
	cause      error
}

// NewFormatError records a line that failed the item grammar.
func NewFormatError(lineNumber int, rawLine string) ParseError {
	return ParseError{lineNumber: lineNumber, rawLine: rawLine, kind: FormatError}
}

// NewNumericError records a line whose numeric fields failed to normalise.
// cause holds the underlying validation failures and may be nil.
func NewNumericError(lineNumber int, rawLine string, cause error) ParseError {
	return ParseError{lineNumber: lineNumber, rawLine: rawLine, kind: NumericError, cause: cause}
}

// LineNumber returns the 1-based position of the line in the input.
func (e ParseError) LineNumber() int {
	return e.lineNumber
}

// RawLine returns the line exactly as it appeared in the input.
func (e ParseError) RawLine() string {
	return e.rawLine
}

// Kind returns whether the line failed on format or on numeric values.
func (e ParseError) Kind() ErrorKind {
	return e.kind
}

// Message returns the human-readable cause without position information.
func (e ParseError) Message() string {
	return e.sentinel().Error()
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s - %q", e.lineNumber, e.Message(), e.rawLine)
}

func (e ParseError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.cause}
}

func (e ParseError) sentinel() error {
	if e.kind == NumericError {
		return ErrInvalidNumericValues
	}
	return ErrInvalidLineFormat
}
