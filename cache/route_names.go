package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/xy-planning-network/waypoint"
)

// DefaultKey is the Redis hash RouteNames stores named routes in.
const DefaultKey = "waypoint:router"

// RouteNames connects to a Redis backend for the purposes of storing named routes.
// RouteNames satisfies router.NameStore.
type RouteNames struct {
	client *redis.Client
	key    string
}

// A RouteNamesOpt configures RouteNames when constructing it.
type RouteNamesOpt func(*RouteNames)

// WithKey sets the Redis hash named routes are stored in.
func WithKey(key string) RouteNamesOpt {
	return func(rn *RouteNames) {
		rn.key = key
	}
}

// NewRouteNames constructs RouteNames with the options passed in.
func NewRouteNames(opts *redis.Options, rnOpts ...RouteNamesOpt) RouteNames {
	return newRouteNames(redis.NewClient(opts), rnOpts...)
}

// NewRouteNamesFromURL constructs RouteNames connecting to the Redis server at uri,
// e.g., redis://localhost:6379/0.
// A non-empty password overrides any in uri.
func NewRouteNamesFromURL(uri, password string, rnOpts ...RouteNamesOpt) (RouteNames, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return RouteNames{}, fmt.Errorf("%w: redis url: %s", waypoint.ErrBadConfig, err)
	}

	if password != "" {
		opts.Password = password
	}

	return NewRouteNames(opts, rnOpts...), nil
}

func newRouteNames(client *redis.Client, opts ...RouteNamesOpt) RouteNames {
	rn := RouteNames{client: client, key: DefaultKey}
	for _, opt := range opts {
		opt(&rn)
	}

	return rn
}

// Get retrieves the URI stored under name.
// If none is, Get returns waypoint.ErrNotExist.
func (rn RouteNames) Get(ctx context.Context, name string) (string, error) {
	uri, err := rn.client.HGet(ctx, rn.key, name).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: route %q", waypoint.ErrNotExist, name)
	}

	if err != nil {
		return "", fmt.Errorf("%w: redis: %s", waypoint.ErrUnexpected, err)
	}

	return uri, nil
}

// Set stores uri under name.
func (rn RouteNames) Set(ctx context.Context, name, uri string) error {
	if err := rn.client.HSet(ctx, rn.key, name, uri).Err(); err != nil {
		return fmt.Errorf("%w: redis: %s", waypoint.ErrUnexpected, err)
	}

	return nil
}

// Ping checks the Redis backend is reachable.
func (rn RouteNames) Ping(ctx context.Context) error {
	if err := rn.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: redis: %s", waypoint.ErrUnexpected, err)
	}

	return nil
}

// Close closes the connection to the Redis backend.
func (rn RouteNames) Close() error {
	return rn.client.Close()
}
