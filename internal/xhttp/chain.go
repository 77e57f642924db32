package xhttp

import (
	"net/http"
	"slices"
)

type Middleware func(http.RoundTripper) http.RoundTripper

// Chain wraps base so the first middleware sees the request first.
func Chain(base http.RoundTripper, middleware ...Middleware) http.RoundTripper {
	middleware = slices.Clone(middleware)
	slices.Reverse(middleware)
	rt := base
	for _, m := range middleware {
		rt = m(rt)
	}
	return rt
}
