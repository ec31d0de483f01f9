// Package negotiate implements server-driven content negotiation over the
// Accept request header per RFC 7231 section 5.3.2.
//
//	res := negotiate.Negotiate(r.Header.Get("Accept"),
//		[]string{"application/json", "text/html"}, "application/json")
//	if !res.Acceptable {
//		// route decides whether this is a hard 406 or a soft fallback
//	}
//
// Negotiate is a pure function: no shared state, safe to call from any
// number of in-flight requests.
package negotiate
