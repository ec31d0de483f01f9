package pipeline

import (
	"context"
	"net/http"

	"github.com/convey-dev/convey/core/depend"
	"github.com/convey-dev/convey/core/negotiate"
)

// State carries everything the pipeline resolves for one request: path
// params after routing, the bound input after validation, the negotiation
// outcome, and the resolved dependencies. It is created when the request
// enters the pipeline and filled in as stages complete; custom context
// factories receive it by reference.
type State struct {
	params      map[string]string
	input       any
	deps        *depend.Resolution
	negotiation negotiate.Result
}

// Param returns the value of the named path parameter, or "" if absent.
func (s *State) Param(name string) string {
	if s == nil || s.params == nil {
		return ""
	}
	return s.params[name]
}

// Input returns the bound and validated route input, or nil when the route
// declares no input contract.
func (s *State) Input() any {
	if s == nil {
		return nil
	}
	return s.input
}

// Dependency returns a resolved dependency by name.
func (s *State) Dependency(name string) (any, bool) {
	if s == nil || s.deps == nil {
		return nil, false
	}
	return s.deps.Value(name)
}

// Negotiation returns the content negotiation result for the request.
func (s *State) Negotiation() negotiate.Result {
	if s == nil {
		return negotiate.Result{}
	}
	return s.negotiation
}

// MediaType returns the negotiated representation for the response.
func (s *State) MediaType() string {
	return s.Negotiation().MediaType
}

// requestStateKey carries the request and state into dependency factories.
type requestStateKey struct{}

type requestState struct {
	r  *http.Request
	st *State
}

func withRequestState(ctx context.Context, r *http.Request, st *State) context.Context {
	return context.WithValue(ctx, requestStateKey{}, requestState{r: r, st: st})
}

// RequestFromContext extracts the in-flight HTTP request inside a dependency
// factory, so factories can read headers without a route-specific contract.
func RequestFromContext(ctx context.Context) (*http.Request, bool) {
	rs, ok := ctx.Value(requestStateKey{}).(requestState)
	if !ok {
		return nil, false
	}
	return rs.r, true
}

// ParamFromContext extracts a path parameter inside a dependency factory.
func ParamFromContext(ctx context.Context, name string) string {
	rs, ok := ctx.Value(requestStateKey{}).(requestState)
	if !ok {
		return ""
	}
	return rs.st.Param(name)
}
