package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/convey-dev/convey/core/handler"
)

// RequestIDHeader is the header used to propagate request identifiers.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID tags every request with a unique identifier. An incoming
// X-Request-ID header is trusted and echoed back; otherwise a fresh UUID is
// generated. The identifier is stored on the context and set on the
// response before the handler runs.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			id := ctx.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			ctx.SetValue(requestIDKey{}, id)
			ctx.ResponseWriter().Header().Set(RequestIDHeader, id)
			return next(ctx)
		}
	}
}

// RequestIDFromContext returns the identifier assigned by RequestID, or ""
// when the middleware is not installed.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
