package router

import "errors"

var (
	// ErrNotFound indicates no registered pattern matches the request path.
	ErrNotFound = errors.New("route not found")

	// ErrMethodNotAllowed indicates a pattern matches the path but not the
	// request method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// Registration errors.
	ErrInvalidMethod  = errors.New("invalid http method")
	ErrInvalidPattern = errors.New("routing pattern must begin with '/'")
	ErrDuplicateParam = errors.New("routing pattern contains duplicate param key")
	ErrDuplicateRoute = errors.New("route already registered for method and pattern")
)
