package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

// UnknownIP stands in for a client address that could not be determined.
const UnknownIP = "0.0.0.0"

// forwardingHeaders are read in order, each from right to left.
var forwardingHeaders = []string{"X-Forwarded-For", "X-Real-Ip"}

// nonPublic are IPv4 ranges netip does not already call private.
var nonPublic = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress stores the address [ClientIP] finds for a request
// in its context under waypoint.IpAddrKey.
//
// A request whose address is unknown is logged at debug level.
func InjectIPAddress(l logger.Logger) Adapter {
	if l == nil {
		l = logger.Noop{}
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			if ip == UnknownIP {
				l.Debug("client address unknown", &logger.LogContext{Request: r})
			}

			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), waypoint.IpAddrKey, ip)))
		})
	}
}

// ClientIP returns the address of the client that made r.
//
// Forwarding headers win: the right-most public address in them is the one just before our proxy.
// Without one, the host of r.RemoteAddr is used as is.
// ClientIP returns UnknownIP when neither yields an address.
func ClientIP(r *http.Request) string {
	for _, h := range forwardingHeaders {
		addrs := strings.Split(r.Header.Get(h), ",")
		for i := len(addrs) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(addrs[i]))
			if err != nil || !isPublic(addr) {
				continue
			}

			return addr.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		return addr.Unmap().String()
	}

	return UnknownIP
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range nonPublic {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
