package cwc

import "fmt"

// ParseError is the base error type for all cwc errors.
type ParseError struct {
	Message string
	Line    int // 1-based; 0 when no line applies
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// HeaderError reports a header line that is not a base-10 integer.
type HeaderError struct {
	ParseError
	Field string // "rows", "columns" or "colors"
	Text  string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("line %d: %s count %q is not an integer", e.Line, e.Field, e.Text)
}

// ShortInputError reports that the document ended before a line the header
// promised could be read.
type ShortInputError struct {
	ParseError
	Expected string
}

func (e *ShortInputError) Error() string {
	return fmt.Sprintf("line %d: unexpected end of input, expected %s", e.Line, e.Expected)
}
