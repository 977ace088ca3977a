package middleware

import (
	"net/http"
)

// An Adapter wraps the next http.Handler in a chain.
// An Adapter decides whether, and when, to call next;
// not calling it ends the chain early.
type Adapter func(next http.Handler) http.Handler

// Chain glues the set of adapters to the handler.
// The first adapter is the outermost: it runs first and wraps all the others.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	//NOTE: Loop in reverse to preserve middleware order
	for i := len(adapters) - 1; i >= 0; i-- {
		handler = adapters[i](handler)
	}

	return handler
}

// NoopAdapter passes the request through unchanged.
func NoopAdapter(h http.Handler) http.Handler { return h }
