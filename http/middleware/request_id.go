package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/waypoint"
)

// RequestIDHeader carries the ID RequestID assigns to a request.
const RequestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under waypoint.RequestIDKey
// and echoes it in the RequestIDHeader response header.
//
// An ID already present in the request's RequestIDHeader is reused.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), waypoint.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
