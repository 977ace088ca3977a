package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
)

// CORS answers cross-origin requests from origins.
// Blank origins are skipped; with none left, CORS returns NoopAdapter.
//
// Place CORS in front of the router rather than on a route:
// preflight OPTIONS requests are answered here and never reach a route table.
// Responses expose RequestIDHeader so clients can report it.
func CORS(origins ...string) Adapter {
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}

	if len(allowed) == 0 {
		return NoopAdapter
	}

	return handlers.CORS(
		handlers.AllowedHeaders([]string{
			"Content-Type",
			"X-CSRF-Token",
			RequestIDHeader,
		}),
		handlers.AllowedOrigins(allowed),
		handlers.AllowedMethods([]string{
			http.MethodDelete,
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
			http.MethodPatch,
			http.MethodPost,
			http.MethodPut,
		}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	)
}
