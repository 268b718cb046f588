package screening

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"regexp"
)

var (
	// Lines arrive without their terminator, so an open tag whose attributes
	// continue on the next line ends the line.
	openTag  = regexp.MustCompile(`<sdnEntry(?:[\s>]|$)`)
	closeTag = []byte("</sdnEntry>")
)

// Assembler cuts a stream of SDN markup into entry fragments. It reads one
// line at a time, so memory is bounded by the largest entry rather than the
// document. Text outside an entry (headers, publish information, the root
// element) is ignored.
//
// Usage mirrors bufio.Scanner:
//
//	a := NewAssembler(r)
//	for a.Scan() {
//		entry := a.Entry()
//	}
//	if err := a.Err(); err != nil { ... }
//
// An Assembler consumes its reader; searching the same source again needs a
// freshly opened stream.
type Assembler struct {
	r      *bufio.Reader
	inside bool
	buf    bytes.Buffer
	ready  []RawEntry
	entry  RawEntry
	line   int
	eof    bool
	err    error
}

// NewAssembler returns an Assembler reading from r.
func NewAssembler(r io.Reader) *Assembler {
	return &Assembler{r: bufio.NewReader(r)}
}

// Scan advances to the next complete entry. It returns false at the end of
// the stream or on the first error, after which Err reports the cause.
func (a *Assembler) Scan() bool {
	for {
		if len(a.ready) > 0 {
			a.entry = a.ready[0]
			a.ready = a.ready[1:]
			return true
		}
		if a.err != nil || a.eof {
			a.entry = nil
			return false
		}

		line, err := a.r.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			a.fail(err)
			continue
		}
		if len(line) > 0 {
			a.line++
			a.feed(bytes.TrimRight(line, "\r\n"), err == nil)
		}
		if err != nil {
			a.eof = true
			if a.inside {
				a.fail(ErrUnterminatedEntry)
			}
		}
	}
}

// Entry returns the fragment found by the last successful Scan. The slice is
// owned by the caller.
func (a *Assembler) Entry() RawEntry {
	return a.entry
}

// Err returns the first stream error, or nil at a clean end of stream.
func (a *Assembler) Err() error {
	return a.err
}

// Line returns the number of lines read so far.
func (a *Assembler) Line() int {
	return a.line
}

// feed advances the OUTSIDE/INSIDE state machine over one line. A line may
// open, close, or open and close several entries.
func (a *Assembler) feed(line []byte, newline bool) {
	if len(line) == 0 && a.inside && newline {
		a.buf.WriteByte('\n')
		return
	}
	rest := line
	for len(rest) > 0 {
		if !a.inside {
			loc := openTag.FindIndex(rest)
			if loc == nil {
				return
			}
			a.inside = true
			a.buf.Reset()
			rest = rest[loc[0]:]
		}

		i := bytes.Index(rest, closeTag)
		if i < 0 {
			a.buf.Write(rest)
			if newline {
				a.buf.WriteByte('\n')
			}
			return
		}
		end := i + len(closeTag)
		a.buf.Write(rest[:end])
		a.ready = append(a.ready, RawEntry(bytes.Clone(a.buf.Bytes())))
		a.buf.Reset()
		a.inside = false
		rest = rest[end:]
	}
}

// fail records err once and drops any half-built entry.
func (a *Assembler) fail(err error) {
	if a.err == nil {
		a.err = &StreamError{Line: a.line, Err: err}
	}
	a.buf.Reset()
	a.inside = false
	a.ready = nil
}
