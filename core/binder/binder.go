package binder

import "net/http"

// Binder binds data from one part of an HTTP request (path params, query
// string, JSON body) into a tagged Go struct. Binders are applied in
// sequence by the pipeline before validation.
type Binder func(r *http.Request, v any) error
