package response

import (
	"errors"
	"net/http"

	"github.com/convey-dev/convey/core/handler"
)

// statusCode is an interface that errors can implement to carry a custom
// HTTP status code through the conversion below.
type statusCode interface {
	StatusCode() int
}

// ConvertError converts any error to an HTTPError. An HTTPError passes
// through unchanged; an error implementing StatusCode() int maps to the base
// error for that status; everything else becomes a generic 500 with the
// cause hidden from the client. No unshaped error crosses the transport
// boundary under this policy.
func ConvertError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}
	return baseErr
}

// ErrorHandler is the default error handler rendering plain text errors.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := ConvertError(err)
	Render(ctx, StringWithStatus(httpErr.Message, httpErr.Status))
}

// JSONErrorHandler renders errors as structured JSON responses.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := ConvertError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
