package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/http/session"
	"github.com/xy-planning-network/waypoint/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the optFollowup it returns.
// Some RangerOptions require data in others and thus an optFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// The default name store is an example of the second:
// which store to construct depends on the environment and the StoreKind
// that other options set.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithBasePath sets the path every route is mounted under.
func WithBasePath(path string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.basePath = path
		return nil, nil
	}
}

// WithContext sets the context.Context the web server's requests derive from.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", waypoint.ErrNotValid)
		}

		rng.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(env string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := waypoint.Environment(env)
		if e.Valid() != nil {
			e = waypoint.EnvVarOrEnv(environmentEnvVar, waypoint.Development)
		}

		rng.env = e
		return nil, nil
	}
}

// WithLogger sets the logger.Logger the app logs with.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		return nil, nil
	}
}

// WithMiddleware replaces the middleware stack every request passes through.
func WithMiddleware(mws ...middleware.Adapter) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.everyReq = append([]middleware.Adapter{}, mws...)
		return nil, nil
	}
}

// WithNameStore keeps named routes in store.
// The StoreKind is ignored.
func WithNameStore(store router.NameStore) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.names = store
		rng.storeKind = customStore
		return nil, nil
	}
}

// WithRegistry sets the *router.Registry router.Ref actions resolve through.
func WithRegistry(reg *router.Registry) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.registry = reg
		return nil, nil
	}
}

// WithRouteStore selects which kind of store keeps named routes.
func WithRouteStore(kind StoreKind) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if err := kind.Valid(); err != nil {
			return nil, err
		}

		rng.storeKind = kind
		return nil, nil
	}
}

// WithServer sets the *http.Server the app runs on.
// Its Handler is replaced.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.srv = s
		return nil, nil
	}
}

// WithSessionStore sets the session.SessionStorer backing SessionStore named routes.
func WithSessionStore(store session.SessionStorer) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.sessions = store
		return nil, nil
	}
}
