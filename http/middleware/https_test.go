package middleware_test

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/logger"
)

func TestForceHTTPSDevelopment(t *testing.T) {
	// Arrange + Act
	actual := middleware.ForceHTTPS(waypoint.Development, nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))
}

func TestForceHTTPS(t *testing.T) {
	tcs := []struct {
		name     string
		proto    string
		tls      bool
		expected int
		location string
	}{
		{"Plain-HTTP", "", false, http.StatusPermanentRedirect, "https://example.com/app/users/7?tab=1"},
		{"Proxied-HTTP", "http", false, http.StatusPermanentRedirect, "https://example.com/app/users/7?tab=1"},
		{"Proxied-HTTPS", "https", false, http.StatusOK, ""},
		{"First-Proxy-Wins", "HTTPS, http", false, http.StatusOK, ""},
		{"TLS", "", true, http.StatusOK, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var msgs, calls []string
			rt := router.New(router.WithLogger(logger.Noop{}), router.WithBasePath("/app"))
			rt.OnEveryRequest(middleware.ForceHTTPS(waypoint.Production, debugLogger{msgs: &msgs}))
			rt.Get("/users/{id}", router.HandlerFunc(func(w http.ResponseWriter, r *http.Request, params router.Params) {
				calls = append(calls, params...)
			}))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "http://example.com/app/users/7?tab=1", nil)
			if tc.proto != "" {
				r.Header.Set("X-Forwarded-Proto", tc.proto)
			}
			if tc.tls {
				r.TLS = &tls.ConnectionState{}
			}

			// Act
			rt.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, w.Code)
			require.Equal(t, tc.location, w.Header().Get("Location"))
			if tc.location == "" {
				require.Equal(t, []string{"7"}, calls)
				require.Empty(t, msgs)
				return
			}

			require.Empty(t, calls)
			require.Equal(t, []string{"redirecting to https"}, msgs)
		})
	}
}
