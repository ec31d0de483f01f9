package async

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned by AwaitWithTimeout when the computation does not
// complete in time. The computation itself keeps running.
var ErrTimeout = errors.New("async: await timed out")

// Future represents the result of an asynchronous computation.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Async executes fn in a new goroutine and returns a Future for its result.
// If ctx is already canceled the function is never started and the future
// resolves to ctx.Err().
func Async[P, T any](ctx context.Context, param P, fn func(context.Context, P) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx, param)
	}()

	return f
}

// Resolved returns an already-completed future. Useful for caching a result
// alongside in-flight computations.
func Resolved[T any](value T, err error) *Future[T] {
	f := &Future[T]{value: value, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the computation completes and returns its result.
// It is safe to call Await from multiple goroutines; all observers see the
// same result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout is like Await but gives up after the timeout, returning
// ErrTimeout. The underlying computation is not canceled.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
