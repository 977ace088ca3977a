package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/waypoint"
)

// routeKeyPrefix scopes named routes apart from other session data.
const routeKeyPrefix = "waypoint.router."

// A RouteStore keeps named routes in the session of the request it was built for.
// It satisfies router.NameStore.
type RouteStore struct {
	s Sessionable
	w http.ResponseWriter
	r *http.Request
}

// NewRouteStore constructs a RouteStore reading from and saving to s
// during the request r being answered through w.
func NewRouteStore(s Sessionable, w http.ResponseWriter, r *http.Request) RouteStore {
	return RouteStore{s: s, w: w, r: r}
}

// Get retrieves the URI stored under name.
// If none is, Get returns waypoint.ErrNotExist.
func (rs RouteStore) Get(_ context.Context, name string) (string, error) {
	uri, ok := rs.s.Get(routeKeyPrefix + name).(string)
	if !ok {
		return "", fmt.Errorf("%w: route %q", waypoint.ErrNotExist, name)
	}

	return uri, nil
}

// Set stores uri under name and saves the session.
func (rs RouteStore) Set(_ context.Context, name, uri string) error {
	if err := rs.s.Set(rs.w, rs.r, routeKeyPrefix+name, uri); err != nil {
		return fmt.Errorf("%w: saving route %q: %s", waypoint.ErrUnexpected, name, err)
	}

	return nil
}
