package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"

	"github.com/convey-dev/convey/core/binder"
	"github.com/convey-dev/convey/core/depend"
	"github.com/convey-dev/convey/core/handler"
	"github.com/convey-dev/convey/core/negotiate"
	"github.com/convey-dev/convey/core/response"
	"github.com/convey-dev/convey/core/router"
	"github.com/convey-dev/convey/core/validator"
	"github.com/convey-dev/convey/pkg/async"
	"github.com/convey-dev/convey/pkg/logger"
)

// route is the table payload for one registered endpoint: the handler plus
// the declarations collected from RouteOptions, pre-validated at
// registration so serving never re-parses anything.
type route[C handler.Context] struct {
	handler          handler.HandlerFunc[C]
	deps             *depend.Registry
	input            func() any
	binders          []binder.Binder
	produces         []string
	defaultMediaType string
	strict           bool
}

// Pipeline resolves, validates, and dispatches requests to registered
// routes. Per request it runs a fixed stage sequence (route lookup, input
// validation, content negotiation, dependency resolution, handler
// invocation, cleanup) where every stage is a possible early exit mapped to
// a structured error response. Cleanup runs whenever resolution succeeded at
// least once, regardless of how the request ended.
type Pipeline[C handler.Context] struct {
	table        *router.Table[*route[C]]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, *State) C
	resolver     *depend.Resolver
	logger       *slog.Logger
}

// New creates a pipeline. Without options it uses the default *Context, a
// JSON error handler, a fresh dependency resolver, and a no-op logger.
func New[C handler.Context](opts ...Option[C]) *Pipeline[C] {
	p := &Pipeline[C]{
		table:        router.New[*route[C]](),
		errorHandler: response.JSONErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("pipeline"))

	if p.resolver == nil {
		p.resolver = depend.NewResolver(depend.WithLogger(p.logger))
	}

	if p.newContext == nil {
		p.newContext = func(w http.ResponseWriter, r *http.Request, st *State) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, st)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return p
}

// Register adds a route, returning an error for invalid patterns, unknown
// methods, duplicate registrations, or inconsistent route declarations.
func (p *Pipeline[C]) Register(method, pattern string, h handler.HandlerFunc[C], opts ...RouteOption) error {
	if h == nil {
		return fmt.Errorf("pipeline: nil handler for %s %s", method, pattern)
	}

	rc := &routeConfig{}
	for _, opt := range opts {
		opt(rc)
	}

	reg, err := depend.NewRegistry(rc.deps...)
	if err != nil {
		return fmt.Errorf("pipeline: %s %s: %w", method, pattern, err)
	}

	rt := &route[C]{
		handler:          h,
		deps:             reg,
		input:            rc.input,
		binders:          rc.binders,
		produces:         rc.produces,
		defaultMediaType: rc.defaultMediaType,
		strict:           rc.strict,
	}
	if rt.defaultMediaType == "" && len(rt.produces) > 0 {
		rt.defaultMediaType = rt.produces[0]
	}

	return p.table.Register(method, pattern, rt)
}

// handle registers a route and panics on misuse; route declarations are
// static startup code, so a bad one is a programming error.
func (p *Pipeline[C]) handle(method, pattern string, h handler.HandlerFunc[C], opts []RouteOption) {
	if err := p.Register(method, pattern, h, opts...); err != nil {
		panic(err)
	}
}

// Get registers a handler for GET requests.
func (p *Pipeline[C]) Get(pattern string, h handler.HandlerFunc[C], opts ...RouteOption) {
	p.handle(http.MethodGet, pattern, h, opts)
}

// Post registers a handler for POST requests.
func (p *Pipeline[C]) Post(pattern string, h handler.HandlerFunc[C], opts ...RouteOption) {
	p.handle(http.MethodPost, pattern, h, opts)
}

// Put registers a handler for PUT requests.
func (p *Pipeline[C]) Put(pattern string, h handler.HandlerFunc[C], opts ...RouteOption) {
	p.handle(http.MethodPut, pattern, h, opts)
}

// Patch registers a handler for PATCH requests.
func (p *Pipeline[C]) Patch(pattern string, h handler.HandlerFunc[C], opts ...RouteOption) {
	p.handle(http.MethodPatch, pattern, h, opts)
}

// Delete registers a handler for DELETE requests.
func (p *Pipeline[C]) Delete(pattern string, h handler.HandlerFunc[C], opts ...RouteOption) {
	p.handle(http.MethodDelete, pattern, h, opts)
}

// Head registers a handler for HEAD requests.
func (p *Pipeline[C]) Head(pattern string, h handler.HandlerFunc[C], opts ...RouteOption) {
	p.handle(http.MethodHead, pattern, h, opts)
}

// Options registers a handler for OPTIONS requests.
func (p *Pipeline[C]) Options(pattern string, h handler.HandlerFunc[C], opts ...RouteOption) {
	p.handle(http.MethodOptions, pattern, h, opts)
}

// Method registers a handler for one or more specific HTTP methods.
func (p *Pipeline[C]) Method(pattern string, h handler.HandlerFunc[C], methods []string, opts ...RouteOption) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}
	seen := make(map[string]bool, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(m)
		if seen[m] {
			continue
		}
		seen[m] = true
		p.handle(m, pattern, h, opts)
	}
}

// Use appends middleware applied to every route.
func (p *Pipeline[C]) Use(middlewares ...handler.Middleware[C]) {
	p.middlewares = append(p.middlewares, middlewares...)
}

// Routes returns all registered routes in registration order.
func (p *Pipeline[C]) Routes() []router.Route {
	return p.table.Routes()
}

// Resolver returns the pipeline's dependency resolver.
func (p *Pipeline[C]) Resolver() *depend.Resolver {
	return p.resolver
}

// Close tears down singleton dependencies. Call once at process shutdown,
// after the HTTP server has drained.
func (p *Pipeline[C]) Close(ctx context.Context) error {
	return p.resolver.Singletons().Close(ctx)
}

// ServeHTTP implements http.Handler.
func (p *Pipeline[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	path := r.URL.Path
	if r.URL.RawPath != "" {
		path = r.URL.RawPath
	}
	if path == "" {
		path = "/"
	}

	st := &State{}
	match, err := p.table.Resolve(r.Method, path)
	if err == nil {
		st.params = match.Params
		// Matching uses the encoded path so an escaped slash cannot split a
		// segment; captured values are decoded afterwards so handlers always
		// see the unescaped form.
		if r.URL.RawPath != "" {
			for k, v := range st.params {
				if dv, derr := url.PathUnescape(v); derr == nil {
					st.params[k] = dv
				}
			}
		}
	}
	ctx := p.newContext(ww, r, st)

	// The response, success or error, is committed before cleanup starts;
	// cleanup runs on a background goroutine so teardown never delays the
	// reply or holds the serving goroutine. Cleanup logs its own failures.
	var resolution *depend.Resolution
	defer func() {
		if resolution != nil {
			res := resolution
			async.Exec(context.WithoutCancel(r.Context()), res,
				func(ctx context.Context, res *depend.Resolution) error {
					return res.Cleanup(ctx)
				})
		}
	}()

	defer func() {
		if v := recover(); v != nil {
			perr := &panicError{value: v, stack: debug.Stack()}
			if ww.Written() {
				p.logger.Error("panic after response written",
					"value", perr.value,
					"stack", string(perr.stack),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
				)
				return
			}
			p.errorHandler(ctx, perr)
		}
	}()

	// Stage: Routed.
	if err != nil {
		switch {
		case errors.Is(err, router.ErrMethodNotAllowed):
			if allowed := p.table.Allowed(path); len(allowed) > 0 && !ww.Written() {
				ww.Header().Set("Allow", strings.Join(allowed, ", "))
			}
			p.errorHandler(ctx, response.ErrMethodNotAllowed)
		default:
			p.errorHandler(ctx, response.ErrNotFound)
		}
		return
	}
	rt := match.Entry.Value

	// Stage: Input validated.
	if rt.input != nil {
		input, err := p.bindInput(ctx, r, rt)
		if err != nil {
			p.errorHandler(ctx, err)
			return
		}
		st.input = input
	}

	// Stage: Negotiated.
	st.negotiation = negotiate.Negotiate(r.Header.Get("Accept"), rt.produces, rt.defaultMediaType)
	if !st.negotiation.Acceptable && rt.strict {
		p.errorHandler(ctx, response.ErrNotAcceptable.WithDetails(map[string]any{
			"supported": rt.produces,
		}))
		return
	}

	// Stage: Dependencies resolved. Factories see the request's values but
	// not its cancellation; an aborted connection still ends with cleanup.
	if rt.deps.Len() > 0 {
		res, err := p.resolver.ResolveAll(withRequestState(r.Context(), r, st), rt.deps)
		if err != nil {
			p.errorHandler(ctx, err)
			return
		}
		resolution = res
		st.deps = res
	}

	// Stage: Handler invoked.
	fn := rt.handler
	if len(p.middlewares) > 0 {
		fn = chain(p.middlewares, fn)
	}

	resp := fn(ctx)
	if resp == nil {
		p.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, r); err != nil {
		if !ww.Written() {
			p.errorHandler(ctx, err)
			return
		}
		p.logger.Error("response render failed after write",
			logger.Error(err), "method", r.Method, "path", r.URL.Path)
	}
}

// bindInput builds, binds, and validates the route's input contract,
// mapping every failure to a 422 with machine-readable details.
func (p *Pipeline[C]) bindInput(ctx C, r *http.Request, rt *route[C]) (any, error) {
	input := rt.input()

	binders := rt.binders
	if len(binders) == 0 {
		binders = []binder.Binder{binder.Path(ctx.Param), binder.Query(), binder.JSON()}
	}
	for _, bind := range binders {
		if err := bind(r, input); err != nil {
			return nil, response.ErrUnprocessableEntity.WithError(err)
		}
	}

	if err := validator.ValidateStruct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, response.ErrUnprocessableEntity.WithDetails(map[string]any{
				"fields": verrs.Fields(),
			})
		}
		return nil, response.ErrUnprocessableEntity.WithError(err)
	}

	return input, nil
}
