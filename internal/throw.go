package internal

import "github.com/pkg/errors"

// Input problems never panic: they come back as ok=false from the kernel or as
// Skipped records from the pipelines. The only panics are broken invariants
// inside the core (such as about to emit a zero-area render triangle), and the
// public API recovers those into an error.

// InvariantError is the panic value of fatalf. Anything else that panics, such
// as a runtime error, is a bug and keeps panicking.
type InvariantError struct {
	error
}

func fatalf(format string, args ...interface{}) {
	panic(InvariantError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if invariantError, ok := r.(InvariantError); ok {
		return invariantError.error
	}
	panic(r)
}
