package router

import (
	"errors"
	"net/http"
)

var (
	ErrMalformedRef = errors.New("malformed action reference")
	ErrUnresolvable = errors.New("unresolvable action")
)

// SetError registers action for GET requests to path,
// and sends requests ending with code there.
func (r *Router) SetError(path string, code int, action Action) {
	r.statusCodes[code] = path
	r.Get(path, action)
}

// HandleError redirects to the path registered for code with [Router.SetError], under the base path.
// The location is sent as registered, without cleaning. req may be nil.
// HandleError reports whether it did.
func (r *Router) HandleError(w http.ResponseWriter, req *http.Request, code int) bool {
	path, ok := r.statusCodes[code]
	if !ok {
		return false
	}

	w.Header().Set("Location", r.basePath+path)
	w.WriteHeader(http.StatusFound)
	return true
}
