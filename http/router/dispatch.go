package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/logger"
)

type outcome int

const (
	unmatched outcome = iota
	redirected
	handled
)

// Dispatch routes req to the first route registered for its method whose template matches its path.
//
// When no route matches, Dispatch hands off to [Router.HandleError] with http.StatusNotFound
// and returns nil.
// When the matching route's action cannot be resolved, nothing runs and the error returns.
func (r *Router) Dispatch(w http.ResponseWriter, req *http.Request) error {
	_, err := r.dispatch(w, req)
	return err
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) (outcome, error) {
	path := r.currentURI(req)
	e, params, ok := r.find(req.Method, path)
	if !ok {
		r.l.Debug("no route for "+req.Method+" "+path, &logger.LogContext{Request: req})
		if r.HandleError(w, req, http.StatusNotFound) {
			return redirected, nil
		}
		return unmatched, nil
	}

	if e.action == nil {
		return unmatched, fmt.Errorf("%s %s: %w: no action", e.method, e.path, ErrUnresolvable)
	}

	h, err := e.action.resolve(r.registry, e.namespace)
	if err != nil {
		return unmatched, fmt.Errorf("%s %s: %w", e.method, e.path, err)
	}

	terminal := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h.Handle(w, req, ParamsFromContext(req.Context()))
	})

	mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(e.middlewares))
	mws = append(mws, r.everyReqStack...)
	mws = append(mws, e.middlewares...)

	req = req.WithContext(context.WithValue(req.Context(), paramsKey, params))
	middleware.Chain(terminal, mws...).ServeHTTP(w, req)

	return handled, nil
}

// Match reports which route a request for method and uri would be dispatched to,
// without running it. A query string or fragment in uri is ignored.
func (r *Router) Match(method, uri string) (RouteInfo, Params, bool) {
	u, err := url.Parse(uri)
	if err != nil {
		return RouteInfo{}, nil, false
	}

	e, params, ok := r.find(method, r.normalize(u.Path))
	if !ok {
		return RouteInfo{}, nil, false
	}

	return e.info(), params, true
}

// ServeHTTP responds to an HTTP request.
// A route whose action cannot be resolved is answered with http.StatusInternalServerError.
// An unmatched request no error route handles is answered with http.StatusNotFound.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	out, err := r.dispatch(w, req)
	switch {
	case err != nil:
		r.l.Error(err.Error(), &logger.LogContext{Error: err, Request: req})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	case out == unmatched:
		w.WriteHeader(http.StatusNotFound)
	}
}

// NewHandler constructs an http.Handler building a new *Router for each request,
// bound to that request with [WithRequest] and set up by setup.
//
// Use NewHandler when named routes depend on the request,
// as with session stores.
func NewHandler(setup func(*Router), opts ...RouterOpt) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		reqOpts := make([]RouterOpt, 0, len(opts)+1)
		reqOpts = append(reqOpts, opts...)
		rt := New(append(reqOpts, WithRequest(req))...)
		setup(rt)
		rt.ServeHTTP(w, req)
	})
}

func (r *Router) find(method, path string) (*entry, Params, bool) {
	t, ok := r.routes[strings.ToUpper(method)]
	if !ok {
		return nil, nil, false
	}

	return t.match(path)
}

// currentURI is the path of req relative to the base path, or "/" without a request.
func (r *Router) currentURI(req *http.Request) string {
	if req == nil || req.URL == nil {
		return "/"
	}

	return r.normalize(req.URL.Path)
}

func (r *Router) normalize(path string) string {
	if r.basePath != "" && strings.HasPrefix(path, r.basePath) {
		path = path[len(r.basePath):]
	}

	return "/" + strings.Trim(path, "/")
}
