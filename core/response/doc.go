// Package response provides handler.Response constructors (JSON, string,
// HTML, redirect, WebSocket upgrade) and the structured HTTPError type with
// the default error-mapping policy.
//
// Handlers compose responses instead of writing to the ResponseWriter:
//
//	return response.JSON(user)
//	return response.Error(response.ErrNotFound.WithMessage("user not found"))
//
// ConvertError guarantees every error surfaced by the pipeline renders as a
// status code plus machine-readable payload; unknown errors collapse to a
// generic 500 without leaking internals.
package response
