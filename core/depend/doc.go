// Package depend resolves a route's declared dependencies under explicit
// lifetime scopes and guarantees ordered, exactly-once teardown.
//
// A route declares named dependencies with a factory, a scope, and an
// optional cleanup:
//
//	reg, err := depend.NewRegistry(
//		depend.Spec{Name: "db", Scope: depend.ScopeSingleton, Factory: openPool, Cleanup: closePool},
//		depend.Spec{Name: "tx", Scope: depend.ScopeRequest, Factory: beginTx, Cleanup: rollbackTx},
//	)
//
// Resolution is a flat, declaration-order pass: a factory may read the
// request context but cannot consume another declared dependency's resolved
// value. There is deliberately no dependency graph or topological ordering.
//
// Singleton-scope values are constructed at most once per process with a
// single-flight guarantee (the in-flight promise is cached before the
// factory runs), request-scope values at most once per request. Request
// cleanups run after the handler in reverse resolution order; singleton
// cleanups run when the cache is closed at shutdown.
package depend
