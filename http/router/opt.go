package router

import (
	"net/http"

	"github.com/xy-planning-network/waypoint/logger"
)

// A RouterOpt configures a *Router when constructing one.
type RouterOpt func(*Router)

// WithBasePath sets the path all routes are mounted under.
func WithBasePath(path string) RouterOpt {
	return func(r *Router) {
		r.SetBasePath(path)
	}
}

// WithEscapedLiterals makes text outside placeholders in path templates match literally.
func WithEscapedLiterals() RouterOpt {
	return func(r *Router) {
		r.escape = true
	}
}

// WithLogger sets the logger.Logger the Router uses.
func WithLogger(l logger.Logger) RouterOpt {
	return func(r *Router) {
		r.l = l
	}
}

// WithNameStore sets where named routes are kept.
func WithNameStore(s NameStore) RouterOpt {
	return func(r *Router) {
		r.names = s
	}
}

// WithRegistry sets the Registry [Ref] actions resolve through.
func WithRegistry(reg *Registry) RouterOpt {
	return func(r *Router) {
		r.registry = reg
	}
}

// WithRequest binds the request being served, which [Router.Name] records routes against.
func WithRequest(req *http.Request) RouterOpt {
	return func(r *Router) {
		r.req = req
	}
}
