package async

import (
	"context"
	"time"
)

// ExecFuture represents an asynchronous computation that only returns an error.
type ExecFuture struct {
	err  error
	done chan struct{}
}

// Exec executes fn in a new goroutine and returns a future for its error.
// If ctx is already canceled the function is never started.
func Exec[P any](ctx context.Context, param P, fn func(context.Context, P) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the function completes and returns its error.
func (f *ExecFuture) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout is like Await but returns ErrTimeout if the function does
// not complete in time.
func (f *ExecFuture) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports whether the function has finished, without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
