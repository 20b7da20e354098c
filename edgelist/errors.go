// SPDX-License-Identifier: MIT

package edgelist

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge-list I/O.
var (
	// ErrParse matches every *ParseError under errors.Is.
	ErrParse = errors.New("edgelist: parse error")

	// ErrTokenCount indicates a line without exactly two tokens
	// (or one, when isolated nodes are accepted).
	ErrTokenCount = errors.New("edgelist: wrong number of tokens")

	// ErrBadID indicates a token that is not a base-10 uint64.
	ErrBadID = errors.New("edgelist: invalid node id")

	// ErrLineTooLong indicates a line exceeding the 1 MiB line buffer.
	ErrLineTooLong = errors.New("edgelist: line too long")

	// ErrIO wraps failures of the underlying file or stream.
	ErrIO = errors.New("edgelist: i/o error")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("edgelist: graph is nil")
)

// maxQuoted bounds the line excerpt kept in a ParseError.
const maxQuoted = 64

// ParseError reports a malformed line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line, truncated
	Err  error  // ErrTokenCount, ErrBadID or a core sentinel
}

func newParseError(line int, text []byte, err error) *ParseError {
	if len(text) > maxQuoted {
		text = text[:maxQuoted]
	}

	return &ParseError{Line: line, Text: string(text), Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edgelist: line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap exposes the cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports true for ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ioError tags err with ErrIO while keeping it reachable for errors.Is/As.
func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
