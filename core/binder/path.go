package binder

import "net/http"

// Path creates a binder that maps route path parameters into struct fields
// tagged `path:"name"`. The lookup function bridges to whatever router
// resolved the parameters:
//
//	type profileRequest struct {
//		UserID string `path:"id"`
//	}
//
//	bind := binder.Path(ctx.Param)
//	err := bind(ctx.Request(), &req)
//
// Supported field types: string, ints, uints, floats, bool, and pointers to
// those for optional params.
func Path(lookup func(name string) string) Binder {
	return func(r *http.Request, v any) error {
		return bindPathParams(v, lookup)
	}
}

func bindPathParams(v any, lookup func(name string) string) error {
	collect := func(names []string) map[string][]string {
		values := make(map[string][]string, len(names))
		for _, name := range names {
			if val := lookup(name); val != "" {
				values[name] = []string{val}
			}
		}
		return values
	}
	return bindTaggedParams(v, "path", collect, ErrFailedToParsePath)
}
