package router

import (
	"net/http"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/logger"
)

// A Route maps a path and HTTP method to an [Action].
// Additional [middleware.Adapter] are called when a request matches the Route.
type Route struct {
	Method      string
	Path        string
	Action      Action
	Middlewares []middleware.Adapter
}

// A RouteInfo describes a registered route.
type RouteInfo struct {
	Method      string
	Path        string
	Namespace   string
	Action      string
	Middlewares int
}

// Router matches requests against registered path templates
// and dispatches them through middleware to an [Action].
//
// Registration is not safe for concurrent use.
// Once registration is done, a Router may serve requests concurrently.
type Router struct {
	basePath      string
	escape        bool
	everyReqStack []middleware.Adapter
	l             logger.Logger
	names         NameStore
	namespace     string
	pending       []middleware.Adapter
	prefix        string
	registry      *Registry
	req           *http.Request
	routes        map[string]*table
	statusCodes   map[int]string
}

// New constructs a *Router.
func New(opts ...RouterOpt) *Router {
	r := &Router{
		routes:      make(map[string]*table),
		statusCodes: make(map[int]string),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.l == nil {
		r.l = logger.New(logger.WithLevel(logger.LogLevelInfo))
	}

	return r
}

// SetBasePath sets the path all routes are mounted under, ignoring a trailing slash.
func (r *Router) SetBasePath(path string) {
	r.basePath = strings.TrimRight(path, "/")
}

// BasePath returns the path all routes are mounted under.
func (r *Router) BasePath() string { return r.basePath }

// Namespace sets the namespace [Ref] actions registered from here on resolve under.
// The first letter of each space separated word is upper cased and the rest kept;
// "admin panel" becomes "Admin Panel" and "admin-panel" becomes "Admin-panel".
// A blank name clears the namespace.
func (r *Router) Namespace(name string) {
	if strings.TrimSpace(name) == "" {
		r.namespace = ""
		return
	}

	words := strings.Split(name, " ")
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		if first == utf8.RuneError {
			continue
		}

		words[i] = string(unicode.ToUpper(first)) + w[size:]
	}

	r.namespace = strings.Join(words, " ")
}

// Middleware queues adapters for the next route registered.
// Adapters run in the order queued.
func (r *Router) Middleware(mws ...middleware.Adapter) *Router {
	r.pending = append(r.pending, mws...)
	return r
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every matched request.
// These run before any route's own middlewares.
func (r *Router) OnEveryRequest(mws ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, mws...)
}

// Group registers the routes body adds under prefix, appended to any enclosing prefix.
// The enclosing prefix is restored when body returns, or panics.
func (r *Router) Group(prefix string, body func(*Router)) {
	saved := r.prefix
	r.prefix = saved + prefix
	defer func() { r.prefix = saved }()

	body(r)
}

// Add registers action for requests with method whose path matches the template path.
//
// Registering the same method and path again replaces the earlier route.
// Queued middlewares and the current namespace attach to the route.
func (r *Router) Add(method, path string, action Action) *Router {
	e := &entry{
		method:      strings.ToUpper(method),
		path:        r.prefix + path,
		action:      action,
		middlewares: r.pending,
		namespace:   r.namespace,
	}
	r.pending = nil

	compile := Compile
	if r.escape {
		compile = CompileEscaped
	}

	rx, err := compile(e.path)
	if err != nil {
		r.l.Warn("route will never match", &logger.LogContext{
			Error: err,
			Data:  map[string]any{"method": e.method, "path": e.path},
		})
	}
	e.matcher = rx

	t, ok := r.routes[e.method]
	if !ok {
		t = newTable()
		r.routes[e.method] = t
	}
	t.put(e)

	r.l.Debug("registered "+e.method+" "+e.path, &logger.LogContext{
		Data: map[string]any{"namespace": e.namespace, "action": describe(action), "middlewares": len(e.middlewares)},
	})

	return r
}

// Get registers action for GET requests matching path.
func (r *Router) Get(path string, action Action) *Router {
	return r.Add(http.MethodGet, path, action)
}

// Post registers action for POST requests matching path.
func (r *Router) Post(path string, action Action) *Router {
	return r.Add(http.MethodPost, path, action)
}

// Put registers action for PUT requests matching path.
func (r *Router) Put(path string, action Action) *Router {
	return r.Add(http.MethodPut, path, action)
}

// Patch registers action for PATCH requests matching path.
func (r *Router) Patch(path string, action Action) *Router {
	return r.Add(http.MethodPatch, path, action)
}

// Delete registers action for DELETE requests matching path.
func (r *Router) Delete(path string, action Action) *Router {
	return r.Add(http.MethodDelete, path, action)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the shared set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(middlewares)+len(route.Middlewares))
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)
		r.Middleware(mws...).Add(route.Method, route.Path, route.Action)
	}
}

// Routes lists registered routes grouped by method, in registration order within each method.
func (r *Router) Routes() []RouteInfo {
	methods := make([]string, 0, len(r.routes))
	for m := range r.routes {
		methods = append(methods, m)
	}
	sort.Strings(methods)

	var infos []RouteInfo
	for _, m := range methods {
		for _, e := range r.routes[m].entries {
			infos = append(infos, e.info())
		}
	}

	return infos
}

func (e *entry) info() RouteInfo {
	return RouteInfo{
		Method:      e.method,
		Path:        e.path,
		Namespace:   e.namespace,
		Action:      describe(e.action),
		Middlewares: len(e.middlewares),
	}
}
