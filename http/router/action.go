package router

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Params are the values captured from a request path, in the order their placeholders appear.
type Params []string

// Get returns the i-th captured value or "" if there is none.
func (p Params) Get(i int) string {
	if i < 0 || i >= len(p) {
		return ""
	}

	return p[i]
}

type ctxKey string

const paramsKey ctxKey = "router-params"

// ParamsFromContext retrieves the Params of the route being dispatched.
func ParamsFromContext(ctx context.Context) Params {
	p, _ := ctx.Value(paramsKey).(Params)
	return p
}

// A Handler responds to a request matching a route.
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request, params Params)
}

// A HandlerFunc is a function that is a Handler.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, params Params)

// Handle calls f.
func (f HandlerFunc) Handle(w http.ResponseWriter, r *http.Request, params Params) { f(w, r, params) }

// An Action is what a route invokes when it matches.
//
// A HandlerFunc, a Ref, or any Handler passed through To is an Action.
type Action interface {
	resolve(reg *Registry, namespace string) (Handler, error)
}

func (f HandlerFunc) resolve(*Registry, string) (Handler, error) { return f, nil }

type handlerAction struct{ Handler }

func (a handlerAction) resolve(*Registry, string) (Handler, error) { return a.Handler, nil }

// To makes an Action of h.
func To(h Handler) Action { return handlerAction{h} }

// A Ref names a controller action as "Class@method".
//
// At dispatch, Class is qualified by the namespace the route was registered under
// and resolved through the Router's Registry.
type Ref string

func (ref Ref) resolve(reg *Registry, namespace string) (Handler, error) {
	class, method, ok := strings.Cut(string(ref), "@")
	if !ok || class == "" || method == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRef, string(ref))
	}

	if namespace != "" {
		class = namespace + "." + class
	}

	return reg.Resolve(class, method)
}

// describe renders action for introspection.
func describe(action Action) string {
	switch a := action.(type) {
	case nil:
		return ""
	case Ref:
		return string(a)
	case handlerAction:
		return fmt.Sprintf("%T", a.Handler)
	default:
		return fmt.Sprintf("%T", a)
	}
}
