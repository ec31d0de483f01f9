package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// The pipeline package provides the default implementation.
type Context interface {
	context.Context

	// Request returns the underlying HTTP request.
	Request() *http.Request

	// ResponseWriter returns the underlying response writer.
	ResponseWriter() http.ResponseWriter

	// Param returns the value of the named path parameter, or "" if absent.
	Param(key string) string

	// SetValue stores a request-scoped value on the context.
	SetValue(key, val any)
}
