package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContextFactory is raised when a custom context type is used
	// without providing a factory.
	ErrNoContextFactory = errors.New("no context factory provided")

	// ErrNilResponse is raised when a handler returns a nil response.
	ErrNilResponse = errors.New("handler returned nil response")

	// ErrInvalidMethod is raised for an unknown HTTP method at registration.
	ErrInvalidMethod = errors.New("invalid http method")
)

// PanicError lets error handlers detect recovered panics and reach the
// original panic value and stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any { return e.value }

func (e *panicError) Stack() []byte { return e.stack }

// Unwrap lets errors.Is/As inspect panics raised with error values.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
