// Package mainerror provides a presentation adapter for program-terminating
// errors: wrapped failures print their human-readable message under the debug
// formatting verbs instead of a structural dump.
package mainerror

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/next-trace/scg-mainerror/contract"
)

// Error is the canonical exit-error type for SCG binaries.
//
// It holds exactly one underlying error, immutable after construction, and
// changes nothing about it except how it renders: every formatting verb,
// including the debug verbs %#v and %+v, produces the wrapped error's own
// message. The debug verbs additionally append one "caused by:" line per
// link of the wrapped cause chain.
type Error struct {
	inner error
}

// compile-time guarantees for the formatting and contract surfaces
var (
	_ error            = (*Error)(nil)
	_ contract.Failure = (*Error)(nil)
	_ fmt.Formatter    = (*Error)(nil)
	_ fmt.GoStringer   = (*Error)(nil)
)

// ------ standard error interface

// Error returns the wrapped error's message verbatim.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.inner.Error()
}

// Unwrap returns the wrapped error for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.inner
}

// ------ formatting overrides

// GoString implements fmt.GoStringer, so %#v prints the human-readable
// message rather than the struct layout. This is the behavioral core of the
// package: the debug rendering is defined to equal the display rendering.
func (e *Error) GoString() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder

	b.WriteString(e.inner.Error())

	for cause := errors.Unwrap(e.inner); cause != nil; cause = errors.Unwrap(cause) {
		b.WriteString("\ncaused by: ")
		b.WriteString(cause.Error())
	}

	return b.String()
}

// Format implements fmt.Formatter. %v and %s print the message, %q quotes
// it, and %+v prints the message with the cause chain (same text as %#v).
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') || s.Flag('#') {
			_, _ = io.WriteString(s, e.GoString())
			return
		}

		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}
