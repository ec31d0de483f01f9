package depend

import (
	"context"
	"fmt"
)

// Scope is the lifetime policy for a resolved dependency value.
type Scope int

const (
	// ScopeRequest constructs a fresh value per request. The value is cached
	// for the remainder of that request and its cleanup runs when the
	// request finishes.
	ScopeRequest Scope = iota

	// ScopeSingleton constructs the value at most once per process, shared
	// across requests. Its cleanup runs when the singleton cache is closed
	// at shutdown.
	ScopeSingleton
)

func (s Scope) String() string {
	switch s {
	case ScopeRequest:
		return "request"
	case ScopeSingleton:
		return "singleton"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Factory constructs a dependency value. It receives a context carrying the
// request's values and may block; resolution waits for it to finish. A
// factory must not rely on another declared dependency's resolved value:
// resolution is a flat, declaration-order pass with no dependency graph.
type Factory func(ctx context.Context) (any, error)

// Cleanup tears a resolved value down. Failures are reported but never
// affect the response or later cleanups.
type Cleanup func(ctx context.Context) error

// Spec declares one named dependency of a route: how to build it, how long
// it lives, and optionally how to tear it down. Specs are declared at route
// registration and immutable afterwards.
type Spec struct {
	Name    string
	Scope   Scope
	Factory Factory
	Cleanup Cleanup
}

// Registry is the validated, ordered set of dependency specs declared by one
// route. Resolution follows declaration order.
type Registry struct {
	specs []Spec
}

// NewRegistry validates the specs and fixes their resolution order. Names
// must be unique and factories non-nil.
func NewRegistry(specs ...Spec) (*Registry, error) {
	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		if s.Name == "" {
			return nil, ErrEmptyName
		}
		if s.Factory == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilFactory, s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return &Registry{specs: specs}, nil
}

// Specs returns the declarations in resolution order.
func (r *Registry) Specs() []Spec {
	if r == nil {
		return nil
	}
	return r.specs
}

// Len returns the number of declared dependencies.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.specs)
}
