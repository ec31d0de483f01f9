package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// Entry is one registered route: a method, a pre-parsed pattern, and the
// caller's payload (typically a handler plus its route metadata). Entries are
// created at registration and read-only during serving.
type Entry[H any] struct {
	Method  string
	Pattern Pattern
	Value   H
}

// Match is a successful route resolution.
type Match[H any] struct {
	Entry  *Entry[H]
	Params map[string]string
}

// Route describes a registered route for introspection.
type Route struct {
	Method  string
	Pattern string
}

// Table holds registered routes as an ordered list scanned via pattern
// matching. Capture segments defeat exact-string keying, so candidates are
// checked with Pattern.Match; patterns are parsed once at registration.
//
// Registration is not safe for concurrent use with resolution; register all
// routes at startup, then serve.
type Table[H any] struct {
	entries []*Entry[H]
}

// New creates an empty route table.
func New[H any]() *Table[H] {
	return &Table[H]{}
}

// Register adds a route. It returns an error for a malformed pattern, an
// unknown method, or a duplicate registration. Two patterns are duplicates
// when every segment pair is either the same literal or both captures,
// regardless of capture names: such routes could never be told apart at
// resolution time.
func (t *Table[H]) Register(method, pattern string, value H) error {
	method = strings.ToUpper(method)
	if _, ok := knownMethods[method]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	p, err := ParsePattern(pattern)
	if err != nil {
		return err
	}

	for _, e := range t.entries {
		if e.Method == method && sameShape(e.Pattern, p) {
			return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, pattern)
		}
	}

	t.entries = append(t.entries, &Entry[H]{Method: method, Pattern: p, Value: value})
	return nil
}

// Resolve finds the route for a request. Candidates are scanned in
// registration order independent of method, which is what distinguishes
// ErrNotFound (no pattern owns the path) from ErrMethodNotAllowed (a pattern
// matches, the method does not). Among method matches the most specific
// pattern wins: literal segments outrank captures, left to right.
func (t *Table[H]) Resolve(method, path string) (Match[H], error) {
	method = strings.ToUpper(method)

	var (
		best       *Entry[H]
		bestParams map[string]string
		pathMatch  bool
	)
	for _, e := range t.entries {
		params, ok := e.Pattern.Match(path)
		if !ok {
			continue
		}
		pathMatch = true
		if e.Method != method {
			continue
		}
		if best == nil || e.Pattern.moreSpecific(best.Pattern) {
			best = e
			bestParams = params
		}
	}

	if best != nil {
		return Match[H]{Entry: best, Params: bestParams}, nil
	}
	if pathMatch {
		return Match[H]{}, ErrMethodNotAllowed
	}
	return Match[H]{}, ErrNotFound
}

// Allowed returns the sorted set of methods with a route matching the path.
// Used to populate the Allow header on 405 responses.
func (t *Table[H]) Allowed(path string) []string {
	seen := map[string]struct{}{}
	for _, e := range t.entries {
		if _, ok := e.Pattern.Match(path); ok {
			seen[e.Method] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	methods := make([]string, 0, len(seen))
	for m := range seen {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// Routes returns all registered routes in registration order.
func (t *Table[H]) Routes() []Route {
	routes := make([]Route, 0, len(t.entries))
	for _, e := range t.entries {
		routes = append(routes, Route{Method: e.Method, Pattern: e.Pattern.String()})
	}
	return routes
}

func sameShape(a, b Pattern) bool {
	if len(a.segments) != len(b.segments) {
		return false
	}
	for i := range a.segments {
		aCap := a.segments[i].capture != ""
		bCap := b.segments[i].capture != ""
		if aCap != bCap {
			return false
		}
		if !aCap && a.segments[i].literal != b.segments[i].literal {
			return false
		}
	}
	return true
}
