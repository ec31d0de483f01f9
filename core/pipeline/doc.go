// Package pipeline dispatches HTTP requests through a fixed sequence of
// stages: route resolution, input binding and validation, content
// negotiation, dependency resolution, handler invocation, and cleanup.
// Every stage is an exit point mapped to a structured error response, so a
// handler only ever runs with a matched route, a validated input, a chosen
// representation, and its declared dependencies in hand.
//
// Routes declare their requirements up front:
//
//	p := pipeline.New[*pipeline.Context]()
//	p.Get("/users/:id", showUser,
//		pipeline.WithInput(func() any { return &ShowUserRequest{} }),
//		pipeline.WithProduces("application/json"),
//		pipeline.WithDependencies(depend.Spec{
//			Name:    "store",
//			Scope:   depend.ScopeSingleton,
//			Factory: newUserStore,
//		}),
//	)
//
// Request-scoped dependencies are torn down after the response is written,
// in reverse resolution order; singletons live until Close. Custom context
// types plug in via WithContextFactory and gain access to the per-request
// State.
package pipeline
