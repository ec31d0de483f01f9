package pipeline

import (
	"log/slog"
	"net/http"

	"github.com/convey-dev/convey/core/binder"
	"github.com/convey-dev/convey/core/depend"
	"github.com/convey-dev/convey/core/handler"
)

// Option configures a Pipeline during creation.
type Option[C handler.Context] func(*Pipeline[C])

// WithErrorHandler sets a custom error handler. It receives every routing,
// validation, negotiation, dependency, handler, and panic error, already
// shaped where the pipeline owns the mapping.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(p *Pipeline[C]) {
		if h != nil {
			p.errorHandler = h
		}
	}
}

// WithMiddleware adds middleware applied to every route.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(p *Pipeline[C]) {
		p.middlewares = append(p.middlewares, middlewares...)
	}
}

// WithContextFactory sets the factory for custom context types. The factory
// receives the pipeline State, which is filled in as stages complete.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request, *State) C) Option[C] {
	return func(p *Pipeline[C]) {
		p.newContext = f
	}
}

// WithLogger sets the logger for panics and cleanup failures.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(p *Pipeline[C]) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithResolver shares a dependency resolver (and thereby a singleton cache)
// with other pipelines or dispatchers in the process.
func WithResolver[C handler.Context](r *depend.Resolver) Option[C] {
	return func(p *Pipeline[C]) {
		if r != nil {
			p.resolver = r
		}
	}
}

// routeConfig is the per-route declaration collected from RouteOptions.
type routeConfig struct {
	deps             []depend.Spec
	input            func() any
	binders          []binder.Binder
	produces         []string
	defaultMediaType string
	strict           bool
}

// RouteOption declares route metadata at registration time.
type RouteOption func(*routeConfig)

// WithDependencies declares the route's dependencies in resolution order.
func WithDependencies(specs ...depend.Spec) RouteOption {
	return func(rc *routeConfig) {
		rc.deps = append(rc.deps, specs...)
	}
}

// WithInput declares the route's input contract. The factory returns a
// fresh instance of the tagged input struct per request; the pipeline binds
// path, query, and body data into it and validates it before dependency
// resolution:
//
//	pipe.Post("/users", createUser, pipeline.WithInput(func() any {
//		return &createUserRequest{}
//	}))
func WithInput(factory func() any) RouteOption {
	return func(rc *routeConfig) {
		rc.input = factory
	}
}

// WithBinders overrides the default Path+Query+JSON binder chain for the
// route's input contract.
func WithBinders(binders ...binder.Binder) RouteOption {
	return func(rc *routeConfig) {
		rc.binders = binders
	}
}

// WithProduces declares the representations the route can produce, in
// preference order. The first entry doubles as the default unless
// WithDefaultMediaType overrides it.
func WithProduces(mediaTypes ...string) RouteOption {
	return func(rc *routeConfig) {
		rc.produces = mediaTypes
	}
}

// WithDefaultMediaType sets the representation used when the client states
// no usable preference.
func WithDefaultMediaType(mediaType string) RouteOption {
	return func(rc *routeConfig) {
		rc.defaultMediaType = mediaType
	}
}

// WithStrictNegotiation makes the route fail with 406 when no supported
// representation is acceptable, instead of falling back to the default.
func WithStrictNegotiation() RouteOption {
	return func(rc *routeConfig) {
		rc.strict = true
	}
}
