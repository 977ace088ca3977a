package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

// A NameStore keeps URIs by route name.
type NameStore interface {
	// Get returns the URI stored under name.
	// If there is none, the error wraps waypoint.ErrNotExist.
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, uri string) error
}

// MemoryStore is a NameStore held in process memory. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewMemoryStore constructs an empty *MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{names: make(map[string]string)}
}

// Get returns the URI stored under name.
func (s *MemoryStore) Get(_ context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uri, ok := s.names[name]
	if !ok {
		return "", fmt.Errorf("%w: route %q", waypoint.ErrNotExist, name)
	}

	return uri, nil
}

// Set stores uri under name.
func (s *MemoryStore) Set(_ context.Context, name, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.names[name] = uri
	return nil
}

// Name records the URI of the request the Router is bound to under name.
//
// The value stored is the base path, the request's path and name joined together;
// a Router bound to no request records "/" as the path.
// Errors from the NameStore are logged.
func (r *Router) Name(name string) *Router {
	if r.names == nil {
		r.names = NewMemoryStore()
	}

	uri := r.basePath + r.currentURI(r.req) + name
	if err := r.names.Set(r.ctx(), name, uri); err != nil {
		r.l.Error("failed naming route "+name, &logger.LogContext{Error: err, Request: r.req})
	}

	return r
}

// GetRoute returns the URI recorded under name, or "" if there is none.
func (r *Router) GetRoute(name string) string {
	if r.names == nil {
		return ""
	}

	uri, err := r.names.Get(r.ctx(), name)
	if err != nil {
		return ""
	}

	return uri
}

func (r *Router) ctx() context.Context {
	if r.req != nil {
		return r.req.Context()
	}

	return context.Background()
}
