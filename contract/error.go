// Package contract exposes the minimal error interfaces used by other packages.
//
// Implementations must delegate Error() verbatim to the wrapped failure and
// support errors.Unwrap for proper interoperability with standard error
// helpers.
package contract

// Failure is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return the wrapped failure's human-readable message from Error(),
//     unchanged (no prefix, suffix, or structural wrapping).
//   - Support errors.Unwrap via Unwrap().
//
// The interface intentionally contains only error and Unwrap to keep the
// API surface minimal and presentation-agnostic.
type Failure interface {
	error
	Unwrap() error
}

// ExitCoder is an optional capability a wrapped failure may implement to
// choose the process exit status used by the reporting path. Codes <= 0 are
// ignored and the default failure status applies.
type ExitCoder interface {
	error
	ExitCode() int
}
