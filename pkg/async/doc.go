// Package async provides small future primitives built on channels and Go
// generics: Future[T] for computations that produce a value, ExecFuture for
// fire-and-forget work where only the error matters.
//
//	future := async.Async(ctx, userID, fetchUser)
//	// ... other work ...
//	user, err := future.Await()
//
// Futures resolve exactly once and every observer sees the same result,
// which makes them suitable as cached in-flight promises.
package async
