// Package router implements pattern parsing, path matching, and the route
// table used by the request pipeline.
//
// Patterns are ordered sequences of literal and capture segments:
//
//	tbl := router.New[myRoute]()
//	err := tbl.Register("GET", "/users/:id", route)
//
// Matching is a linear segment walk with no regex and no backtracking.
// Resolution distinguishes "no route owns this path" (ErrNotFound) from
// "path exists, wrong method" (ErrMethodNotAllowed), and prefers literal
// segments over captures when several patterns match the same path, so
// GET /users/admin hits a literal /users/admin route even when /users/:id is
// registered first.
package router
