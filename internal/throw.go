package internal

import "github.com/pkg/errors"

// Threading errors through every cavity and retriangulation step would add a
// lot of noise to the insertion loop. Instead, we use panics, and the
// top-level Triangulate recovers them into an error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError wrapping err.
func throw(err error) {
	panic(TriangulateError{err})
}

// Panic with a TriangulateError wrapping cause with a formatted message.
func throwf(cause error, format string, args ...interface{}) {
	throw(errors.Wrapf(cause, format, args...))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
