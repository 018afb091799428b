package mainerror

import (
	"errors"
	"fmt"
)

// Wrap adapts any error for human-readable exit reporting.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Error => returned as-is (same pointer)
//   - otherwise err is wrapped and preserved for errors.Is / errors.As
//
// Run applies Wrap to whatever the entry point returns, so call sites
// propagate plain errors with no wrapping code of their own.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	return &Error{inner: err}
}

// New builds an adapter around a failure whose message is exactly text.
func New(text string) *Error {
	return &Error{inner: errors.New(text)}
}

// Newf is New with fmt.Errorf semantics; %w verbs keep the wrapped cause
// reachable through the adapter.
func Newf(format string, a ...any) *Error {
	return &Error{inner: fmt.Errorf(format, a...)}
}
