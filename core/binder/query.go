package binder

import "net/http"

// Query creates a binder that maps URL query parameters into struct fields
// tagged `query:"name"`. Repeated parameters and comma-separated values both
// bind into slice fields.
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
