// Package main demonstrates usage of the scg-mainerror package.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/next-trace/scg-mainerror/mainerror"
)

// negativeError is a custom error type; can also be a more complex struct.
type negativeError struct {
	n int
}

func (e *negativeError) Error() string {
	return fmt.Sprintf("%d is negative, expected a count", e.n)
}

func main() {
	// With no argument this prints
	//   "Error: strconv.Atoi: parsing \"not a number\": invalid syntax"
	// to stderr and exits with status 1. Without the adapter, a %#v-style
	// rendering of the same error would expose its internal structure
	// instead of the message.
	mainerror.Run(run)
}

func run() error {
	input := "not a number"
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	// Plain text works as a failure directly.
	if input == "" {
		return mainerror.New("strings can be used as errors")
	}

	// A fallible operation propagates with no wrapping code at the call site.
	n, err := strconv.Atoi(input)
	if err != nil {
		return err
	}

	// So does any custom error type.
	if n < 0 {
		return &negativeError{n: n}
	}

	fmt.Println("count:", n)

	return nil
}
