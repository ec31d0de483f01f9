package depend

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/convey-dev/convey/pkg/async"
	"github.com/convey-dev/convey/pkg/logger"
)

// singletonEntry pairs the cached (possibly still in-flight) construction
// with the cleanup to run at shutdown.
type singletonEntry struct {
	future  *async.Future[any]
	cleanup Cleanup
}

// SingletonCache is the process-wide store of singleton-scope dependencies.
// It is the only state in the resolver shared across requests, so it is
// lock-guarded and gives a single-flight guarantee: the promise is cached
// before the factory runs, and concurrent first-time resolvers of the same
// name wait on that promise instead of invoking the factory again.
//
// Values are never evicted. Close tears them down in reverse resolution
// order at process shutdown.
type SingletonCache struct {
	mu      sync.Mutex
	entries map[string]*singletonEntry
	order   []string // successful resolution order, for reverse teardown
	logger  *slog.Logger
}

// NewSingletonCache creates an empty singleton cache. A nil logger disables
// logging.
func NewSingletonCache(logger *slog.Logger) *SingletonCache {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SingletonCache{
		entries: make(map[string]*singletonEntry),
		logger:  logger,
	}
}

// resolve returns the cached value for the spec, constructing it on first
// use. The factory runs outside the request's cancellation scope: aborting
// one request must not tear down a half-constructed shared resource, so only
// the context values are carried over.
func (c *SingletonCache) resolve(ctx context.Context, spec Spec) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[spec.Name]; ok {
		c.mu.Unlock()
		return e.future.Await()
	}

	e := &singletonEntry{cleanup: spec.Cleanup}
	e.future = async.Async(context.WithoutCancel(ctx), spec, func(fctx context.Context, s Spec) (any, error) {
		return s.Factory(fctx)
	})
	c.entries[spec.Name] = e
	c.mu.Unlock()

	value, err := e.future.Await()
	if err != nil {
		// Drop the failed entry so a later request can retry; everyone who
		// piggybacked on this attempt still observes the error.
		c.mu.Lock()
		if c.entries[spec.Name] == e {
			delete(c.entries, spec.Name)
		}
		c.mu.Unlock()
		return nil, err
	}

	c.mu.Lock()
	if c.entries[spec.Name] == e {
		c.order = append(c.order, spec.Name)
	}
	c.mu.Unlock()
	return value, nil
}

// Close runs the cleanups of all resolved singletons in reverse resolution
// order. Each cleanup is isolated: a failure is logged and joined into the
// returned error, but never stops the remaining cleanups.
func (c *SingletonCache) Close(ctx context.Context) error {
	c.mu.Lock()
	order := c.order
	entries := c.entries
	c.order = nil
	c.entries = make(map[string]*singletonEntry)
	c.mu.Unlock()

	var errs []error
	for i := len(order) - 1; i >= 0; i-- {
		name := order[i]
		e, ok := entries[name]
		if !ok || e.cleanup == nil {
			continue
		}
		if err := e.cleanup(ctx); err != nil {
			c.logger.ErrorContext(ctx, "singleton cleanup failed",
				"dependency", name, logger.Error(err))
			errs = append(errs, &CleanupError{Name: name, Err: err})
		}
	}
	return errors.Join(errs...)
}
