package pipeline

import (
	"net/http"
	"time"

	"github.com/convey-dev/convey/core/depend"
	"github.com/convey-dev/convey/core/negotiate"
)

// Context is the default request context. It delegates context.Context
// methods to the request's context and exposes the pipeline's resolved
// state. It is owned by a single request goroutine.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	state  *State
	values map[any]any
}

// NewContext creates the default context. Custom context factories embed it
// to add application fields while keeping the pipeline accessors.
func NewContext(w http.ResponseWriter, r *http.Request, st *State) *Context {
	return &Context{w: w, r: r, state: st}
}

// Deadline returns the time when work on behalf of this request should be
// canceled.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns a channel closed when the request is canceled.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns a non-nil error after Done is closed.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns request-scoped values set via SetValue, falling back to the
// request context.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// SetValue stores a request-scoped value on the context.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of the named path parameter.
func (c *Context) Param(key string) string {
	return c.state.Param(key)
}

// Input returns the bound and validated route input, or nil when the route
// declares none.
func (c *Context) Input() any {
	return c.state.Input()
}

// Dependency returns a resolved route dependency by name. It returns nil
// for undeclared names; use the two-value State accessor to distinguish a
// nil value from an absent one.
func (c *Context) Dependency(name string) any {
	v, _ := c.state.Dependency(name)
	return v
}

// Dependencies returns the request's dependency resolution, or nil when the
// route declares none.
func (c *Context) Dependencies() *depend.Resolution {
	return c.state.deps
}

// Negotiation returns the content negotiation result.
func (c *Context) Negotiation() negotiate.Result {
	return c.state.Negotiation()
}

// MediaType returns the negotiated representation for the response.
func (c *Context) MediaType() string {
	return c.state.MediaType()
}

// State returns the pipeline state backing this context.
func (c *Context) State() *State {
	return c.state
}
