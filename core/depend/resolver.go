package depend

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/convey-dev/convey/pkg/logger"
)

// Resolver resolves route dependency declarations against the two caches:
// the process-wide singleton cache it owns, and a per-request Resolution it
// creates for each call to ResolveAll.
type Resolver struct {
	singletons *SingletonCache
	logger     *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used to report cleanup failures.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSingletonCache shares an existing singleton cache, e.g. between the
// HTTP pipeline and an event dispatcher running in the same process.
func WithSingletonCache(cache *SingletonCache) ResolverOption {
	return func(r *Resolver) {
		if cache != nil {
			r.singletons = cache
		}
	}
}

// NewResolver creates a resolver with its own singleton cache and a no-op
// logger by default.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.singletons == nil {
		r.singletons = NewSingletonCache(r.logger)
	}
	return r
}

// Singletons returns the process-wide cache, so callers can close it at
// shutdown.
func (r *Resolver) Singletons() *SingletonCache {
	return r.singletons
}

// NewResolution creates an empty request-scoped cache. It is owned by a
// single request's goroutine and needs no locking for value access.
func (r *Resolver) NewResolution() *Resolution {
	return &Resolution{
		resolver: r,
		values:   make(map[string]any),
	}
}

// ResolveAll resolves every declared dependency in declaration order into a
// fresh Resolution. If a factory fails, resolution stops immediately, the
// cleanups registered so far in this request run in reverse order, and a
// *FactoryError propagates.
//
// The caller must invoke Resolution.Cleanup exactly once after the handler
// finishes; on error ResolveAll has already done so.
func (r *Resolver) ResolveAll(ctx context.Context, reg *Registry) (*Resolution, error) {
	res := r.NewResolution()
	for _, spec := range reg.Specs() {
		if _, err := res.Resolve(ctx, spec); err != nil {
			res.Cleanup(ctx)
			return nil, &FactoryError{Name: spec.Name, Err: err}
		}
	}
	return res, nil
}

// Resolution is the request-scoped dependency cache: resolved values plus
// the cleanups pending for this request, in resolution order.
type Resolution struct {
	resolver *Resolver
	values   map[string]any
	cleanups []namedCleanup
	once     sync.Once
}

type namedCleanup struct {
	name string
	fn   Cleanup
}

// Resolve returns the value for the spec, constructing it at most once per
// request (and, for singleton scope, at most once per process). The factory
// observes the request context's values but not its cancellation: an aborted
// connection must not interrupt a factory mid-construction.
func (res *Resolution) Resolve(ctx context.Context, spec Spec) (any, error) {
	if v, ok := res.values[spec.Name]; ok {
		return v, nil
	}

	var (
		value any
		err   error
	)
	switch spec.Scope {
	case ScopeSingleton:
		value, err = res.resolver.singletons.resolve(ctx, spec)
	default:
		value, err = spec.Factory(context.WithoutCancel(ctx))
		if err == nil && spec.Cleanup != nil {
			res.cleanups = append(res.cleanups, namedCleanup{name: spec.Name, fn: spec.Cleanup})
		}
	}
	if err != nil {
		return nil, err
	}

	res.values[spec.Name] = value
	return value, nil
}

// Value returns a resolved dependency by name.
func (res *Resolution) Value(name string) (any, bool) {
	v, ok := res.values[name]
	return v, ok
}

// Values returns the resolved name-to-value map. The map is owned by the
// resolution; callers must not mutate it.
func (res *Resolution) Values() map[string]any {
	return res.values
}

// Cleanup runs the request-scoped cleanups in reverse resolution order,
// exactly once no matter how often it is called. Each cleanup is isolated: a
// failure is logged and collected into the returned error but never stops
// the remaining cleanups. Callers that have already sent the response may
// ignore the return value; it exists for observability.
func (res *Resolution) Cleanup(ctx context.Context) error {
	var errs []error
	res.once.Do(func() {
		ctx = context.WithoutCancel(ctx)
		for i := len(res.cleanups) - 1; i >= 0; i-- {
			nc := res.cleanups[i]
			if err := nc.fn(ctx); err != nil {
				res.resolver.logger.ErrorContext(ctx, "dependency cleanup failed",
					"dependency", nc.name, logger.Error(err))
				errs = append(errs, &CleanupError{Name: nc.name, Err: err})
			}
		}
	})
	return errors.Join(errs...)
}
