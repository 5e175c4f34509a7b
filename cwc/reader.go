package cwc

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Reader is the read cursor over a document. Every line is handed out
// exactly once, in order.
//
// Past the end of input, block lines and separators read as blank lines
// unless Strict is set, in which case they fail with a ShortInputError.
// Header lines are always required.
type Reader struct {
	Strict bool

	br      *bufio.Reader
	line    int  // number of the last line returned (1-based)
	missing int  // blank lines substituted past end of input
	eof     bool // underlying reader is exhausted
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Line returns the number of the last line consumed, or 0 before the first read.
func (r *Reader) Line() int {
	return r.line
}

// Missing returns how many lines were read past the end of input.
func (r *Reader) Missing() int {
	return r.missing
}

// next returns the next line without its terminator. ok is false once the
// input is exhausted. A final line without a trailing newline still counts.
func (r *Reader) next() (text string, ok bool, err error) {
	if r.eof {
		return "", false, nil
	}
	s, err := r.br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, &ParseError{
			Message: "read failed: " + err.Error(),
			Line:    r.line + 1,
			Cause:   err,
		}
	}
	if errors.Is(err, io.EOF) {
		r.eof = true
		if s == "" {
			return "", false, nil
		}
	}
	r.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true, nil
}

// expect consumes one line, turning end of input into a ShortInputError.
func (r *Reader) expect(what string) (string, error) {
	s, ok, err := r.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &ShortInputError{
			ParseError: ParseError{Message: "unexpected end of input", Line: r.line + 1},
			Expected:   what,
		}
	}
	return s, nil
}

// body consumes one line after the header, substituting a blank line at end
// of input when the reader is not strict.
func (r *Reader) body(what string) (string, error) {
	if r.Strict {
		return r.expect(what)
	}
	s, ok, err := r.next()
	if err != nil {
		return "", err
	}
	if !ok {
		r.missing++
	}
	return s, nil
}

// BlockLine consumes one line and splits it on whitespace. A blank line
// yields an empty BlockLine.
func (r *Reader) BlockLine() (BlockLine, error) {
	s, err := r.body("a block line")
	if err != nil {
		return nil, err
	}
	return BlockLine(strings.Fields(s)), nil
}

// Skip consumes one line without looking at it.
func (r *Reader) Skip() error {
	_, err := r.body("a section separator")
	return err
}

// ParseHeader reads the row, column and color counts from the first three lines.
func ParseHeader(r *Reader) (Header, error) {
	var h Header
	fields := []struct {
		name string
		dst  *int
	}{
		{"rows", &h.Rows},
		{"columns", &h.Columns},
		{"colors", &h.Colors},
	}
	for _, f := range fields {
		s, err := r.expect("the " + f.name + " count")
		if err != nil {
			return Header{}, err
		}
		text := strings.TrimSpace(s)
		n, err := strconv.Atoi(text)
		if err != nil {
			return Header{}, &HeaderError{
				ParseError: ParseError{Message: "invalid " + f.name + " count", Line: r.line, Cause: err},
				Field:      f.name,
				Text:       text,
			}
		}
		*f.dst = n
	}
	return h, nil
}
