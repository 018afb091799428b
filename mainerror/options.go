package mainerror

import "io"

// Option configures the reporter used by Run and Exit.
type Option func(*reporter)

// defaultPrefix is the fixed label written before the message, matching the
// conventional entry-point contract.
const defaultPrefix = "Error: "

// defaultExitCode is the process status used when the failure carries no
// exit code of its own.
const defaultExitCode = 1

// WithOutput redirects the reporter's output away from os.Stderr.
func WithOutput(w io.Writer) Option { return func(r *reporter) { r.out = w } }

// WithPrefix replaces the fixed "Error: " label.
func WithPrefix(prefix string) Option { return func(r *reporter) { r.prefix = prefix } }

// WithExitFunc replaces os.Exit, letting callers and tests intercept
// termination.
func WithExitFunc(exit func(int)) Option { return func(r *reporter) { r.exit = exit } }
