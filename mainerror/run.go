package mainerror

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/next-trace/scg-mainerror/contract"
)

// reporter is the entry-point failure-reporting path: one write to out,
// then termination via exit.
type reporter struct {
	out    io.Writer
	prefix string
	exit   func(int)
}

// Run calls fn and, if it fails, reports the error and terminates the
// process with a failure status. It is the intended body of main:
//
//	func main() { mainerror.Run(run) }
//
// The returned error is adapted via Wrap, so fn propagates plain errors
// with no wrapping code at the return sites.
func Run(fn func() error, opts ...Option) {
	Exit(fn(), opts...)
}

// Exit reports err and terminates the process with a failure status.
// A nil err is a no-op.
//
// The report is a single line on stderr: the "Error: " prefix followed by
// the debug rendering of the adapted error, which equals the wrapped
// error's human-readable message (plus its cause chain, one "caused by:"
// line per link).
func Exit(err error, opts ...Option) {
	if err == nil {
		return
	}

	r := &reporter{
		out:    os.Stderr,
		prefix: defaultPrefix,
		exit:   os.Exit,
	}
	for _, o := range opts {
		o(r)
	}

	_, _ = fmt.Fprintf(r.out, "%s%#v\n", r.prefix, Wrap(err))
	r.exit(exitCode(err))
}

// exitCode resolves the process status for err: the first contract.ExitCoder
// in the chain wins when its code is positive, otherwise the default applies.
func exitCode(err error) int {
	var coder contract.ExitCoder
	if errors.As(err, &coder) {
		if code := coder.ExitCode(); code > 0 {
			return code
		}
	}

	return defaultExitCode
}
