package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

// ForceHTTPS permanently redirects plain HTTP requests to the same URL over HTTPS,
// unless env is development.
//
// A request counts as HTTPS when it arrived over TLS
// or when the first proxy in "X-Forwarded-Proto" saw "https".
// The redirect keeps the method and body; it is logged at debug level.
func ForceHTTPS(env waypoint.Environment, l logger.Logger) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	if l == nil {
		l = logger.Noop{}
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHTTPS(r) {
				h.ServeHTTP(w, r)
				return
			}

			u := *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			l.Debug("redirecting to https", &logger.LogContext{
				Request: r,
				Data:    map[string]any{"location": u.String()},
			})

			w.Header().Set("Location", u.String())
			w.WriteHeader(http.StatusPermanentRedirect)
		})
	}
}

func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}

	proto, _, _ := strings.Cut(r.Header.Get("X-Forwarded-Proto"), ",")
	return strings.EqualFold(strings.TrimSpace(proto), "https")
}
