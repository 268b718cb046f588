package screening

import (
	"errors"
	"fmt"
)

// ErrUnterminatedEntry is reported when the stream ends inside an entry.
var ErrUnterminatedEntry = errors.New("unterminated sdnEntry")

// StreamError reports a failure of the underlying input stream. Err is either
// the reader's error or ErrUnterminatedEntry.
type StreamError struct {
	Line int // last line read before the failure
	Err  error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("read sdn stream at line %d: %v", e.Line, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// ParseError reports an entry whose markup could not be parsed in isolation.
type ParseError struct {
	Entry  int    // 1-based ordinal of the entry in the document
	Line   int    // line inside the entry, 1-based
	Offset int64  // byte offset inside the entry
	Reason string // parser message
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse sdnEntry #%d: %s (line %d, offset %d)", e.Entry, e.Reason, e.Line, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsStreamError reports whether err wraps a *StreamError.
func IsStreamError(err error) bool {
	var se *StreamError
	return errors.As(err, &se)
}
