// Package mainerror prints program-terminating errors with their human-readable
// message instead of a structural debug dump.
//
// It exposes a single concrete type Error that wraps exactly one underlying
// error and implements contract.Failure. The type redirects the debug
// formatting verbs (%#v, %+v) to the wrapped error's own message, so an
// unhandled failure reaching the process boundary is printed the way it was
// written for end users, not as a struct dump.
//
// Key characteristics:
//   - Error() delegates verbatim to the wrapped error
//   - Debug verbs render the message plus one "caused by:" line per link of
//     the cause chain
//   - Wrap is nil-safe and idempotent; New/Newf build adapters from plain text
//   - Run and Exit implement the entry-point reporting contract ("Error: "
//     prefix on stderr, non-zero exit status)
//   - Underlying cause preserved for errors.Is / errors.As
//
// Construction helpers are Wrap, New and Newf; Run and Exit report a failure
// and terminate the process with the appropriate status.
package mainerror
