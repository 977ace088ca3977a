package router_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/router"
)

func TestDispatchParams(t *testing.T) {
	for _, tc := range []struct {
		name     string
		template string
		path     string
		expected []string
	}{
		{"No-Params", "/about", "/about", []string{"handler"}},
		{"Default", "/user/{id}", "/user/99", []string{"handler", "99"}},
		{"Regex", "/user/{id:[0-9]+}", "/user/99", []string{"handler", "99"}},
		{"Regex-Mismatch", "/user/{id:[0-9]+}", "/user/abc", nil},
		{"Positional", "/{year:[0-9]+}/{slug}", "/2021/hello", []string{"handler", "2021", "hello"}},
		{"Trailing-Slash", "/about", "/about/", []string{"handler"}},
		{"Query-Ignored", "/about", "/about?x=1", []string{"handler"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var calls []string
			rt := newRouter()
			rt.Get(tc.template, record(&calls, "handler"))
			w := httptest.NewRecorder()

			// Act
			err := rt.Dispatch(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, calls)
			require.Empty(t, w.Header().Get("Location"))
		})
	}
}

func TestDispatchMethodMismatch(t *testing.T) {
	// Arrange
	var calls []string
	rt := newRouter()
	rt.Post("/submit", record(&calls, "post"))

	// Act
	err := rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/submit", nil))

	// Assert
	require.Nil(t, err)
	require.Empty(t, calls)
}

func TestDispatchFirstMatchWins(t *testing.T) {
	// Arrange
	var calls []string
	rt := newRouter()
	rt.Get("/user/{id}", record(&calls, "first"))
	rt.Get("/user/{id:[0-9]+}", record(&calls, "second"))

	// Act
	err := rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/user/1", nil))

	// Assert
	require.Nil(t, err)
	require.Equal(t, []string{"first", "1"}, calls)
}

func TestDispatchBasePath(t *testing.T) {
	// Arrange
	var calls []string
	rt := newRouter(router.WithBasePath("/app/"))
	rt.Get("/", record(&calls, "home")).Get("/users", record(&calls, "users"))

	// Act
	require.Nil(t, rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app", nil)))
	require.Nil(t, rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app/users", nil)))

	// Assert
	require.Equal(t, []string{"home", "users"}, calls)
}

func TestDispatchNotFound(t *testing.T) {
	t.Run("Unmapped", func(t *testing.T) {
		// Arrange
		rt := newRouter()
		rt.Get("/", record(new([]string), "home"))
		w := httptest.NewRecorder()

		// Act
		err := rt.Dispatch(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		// Assert
		require.Nil(t, err)
		require.Empty(t, w.Header().Get("Location"))
		require.False(t, w.Flushed)
		require.Empty(t, w.Body.String())
	})

	t.Run("Mapped", func(t *testing.T) {
		// Arrange
		var calls []string
		rt := newRouter(router.WithBasePath("/app"))
		rt.SetError("/404", http.StatusNotFound, record(&calls, "not-found"))
		w := httptest.NewRecorder()

		// Act
		err := rt.Dispatch(w, httptest.NewRequest(http.MethodGet, "/app/nowhere", nil))

		// Assert
		require.Nil(t, err)
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/app/404", w.Header().Get("Location"))
		require.Empty(t, calls)

		// Act
		err = rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app/404", nil))

		// Assert
		require.Nil(t, err)
		require.Equal(t, []string{"not-found"}, calls)
	})
}

func TestHandleError(t *testing.T) {
	// Arrange
	rt := newRouter()
	rt.SetError("/oops", http.StatusInternalServerError, record(new([]string), "oops"))

	// Act
	w := httptest.NewRecorder()
	ok := rt.HandleError(w, httptest.NewRequest(http.MethodGet, "/x", nil), http.StatusInternalServerError)

	// Assert
	require.True(t, ok)
	require.Equal(t, "/oops", w.Header().Get("Location"))

	// Act
	w = httptest.NewRecorder()
	ok = rt.HandleError(w, httptest.NewRequest(http.MethodGet, "/x", nil), http.StatusTeapot)

	// Assert
	require.False(t, ok)
	require.Empty(t, w.Header().Get("Location"))
}

func TestHandleErrorLocationUncleaned(t *testing.T) {
	// Arrange
	rt := newRouter(router.WithBasePath("/app"))
	rt.SetError("/errors/../404", http.StatusNotFound, record(new([]string), "not-found"))
	w := httptest.NewRecorder()

	// Act
	ok := rt.HandleError(w, nil, http.StatusNotFound)

	// Assert
	require.True(t, ok)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/app/errors/../404", w.Header().Get("Location"))
}

func TestDispatchRef(t *testing.T) {
	// Arrange
	var calls []string
	constructed := 0
	reg := router.NewRegistry().
		Register("Admin.UserController", func() router.Controller {
			constructed++
			return router.Actions{"show": record(&calls, "admin-show")}
		}).
		Register("HomeController", func() router.Controller {
			return router.Actions{"index": record(&calls, "home")}
		})

	rt := newRouter(router.WithRegistry(reg))
	rt.Get("/", router.Ref("HomeController@index"))
	rt.Namespace("admin")
	rt.Get("/admin/users/{id}", router.Ref("UserController@show"))

	// Act
	require.Nil(t, rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))
	require.Nil(t, rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/users/3", nil)))
	require.Nil(t, rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/users/4", nil)))

	// Assert
	require.Equal(t, []string{"home", "admin-show", "3", "admin-show", "4"}, calls)
	require.Equal(t, 2, constructed)
}

func TestDispatchRefHyphenatedNamespace(t *testing.T) {
	// Arrange
	var calls []string
	reg := router.NewRegistry().Register("Admin-panel.UserController", func() router.Controller {
		return router.Actions{"show": record(&calls, "show")}
	})

	rt := newRouter(router.WithRegistry(reg))
	rt.Namespace("admin-panel")
	rt.Get("/users/{id}", router.Ref("UserController@show"))

	// Act
	err := rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/5", nil))

	// Assert
	require.Nil(t, err)
	require.Equal(t, []string{"show", "5"}, calls)
}

func TestDispatchRefErrors(t *testing.T) {
	reg := router.NewRegistry().Register("Home", func() router.Controller {
		return router.Actions{"index": func(http.ResponseWriter, *http.Request, router.Params) {}}
	})

	for _, tc := range []struct {
		name     string
		reg      *router.Registry
		ref      router.Ref
		expected error
	}{
		{"No-At", reg, "Home", router.ErrMalformedRef},
		{"No-Class", reg, "@index", router.ErrMalformedRef},
		{"No-Method", reg, "Home@", router.ErrMalformedRef},
		{"Unknown-Class", reg, "Away@index", router.ErrUnresolvable},
		{"Unknown-Method", reg, "Home@show", router.ErrUnresolvable},
		{"No-Registry", nil, "Home@index", router.ErrUnresolvable},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var calls []string
			rt := newRouter(router.WithRegistry(tc.reg))
			rt.Middleware(recordAdapter(&calls, "mw", true)).Get("/", tc.ref)

			// Act
			err := rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			// Assert
			require.True(t, errors.Is(err, tc.expected), err)
			require.Empty(t, calls)
		})
	}
}

func TestDispatchNilAction(t *testing.T) {
	// Arrange
	rt := newRouter()
	rt.Get("/", nil)

	// Act
	err := rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.ErrorIs(t, err, router.ErrUnresolvable)
}

type greeter struct{ greeting string }

func (g greeter) Handle(w http.ResponseWriter, r *http.Request, params router.Params) {
	fmt.Fprintf(w, "%s, %s", g.greeting, params.Get(0))
}

func TestDispatchTo(t *testing.T) {
	// Arrange
	rt := newRouter()
	rt.Get("/greet/{name}", router.To(greeter{"hello"}))
	w := httptest.NewRecorder()

	// Act
	err := rt.Dispatch(w, httptest.NewRequest(http.MethodGet, "/greet/ada", nil))

	// Assert
	require.Nil(t, err)
	require.Equal(t, "hello, ada", w.Body.String())
	require.Equal(t, "router_test.greeter", rt.Routes()[0].Action)
}

func TestParamsFromContext(t *testing.T) {
	// Arrange
	var fromCtx router.Params
	peek := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = router.ParamsFromContext(r.Context())
			next.ServeHTTP(w, r)
		})
	}
	rt := newRouter()
	rt.Middleware(middleware.Adapter(peek)).Get("/{a}/{b}", record(new([]string), "h"))

	// Act
	err := rt.Dispatch(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/y", nil))

	// Assert
	require.Nil(t, err)
	require.Equal(t, router.Params{"x", "y"}, fromCtx)
	require.Equal(t, "y", fromCtx.Get(1))
	require.Equal(t, "", fromCtx.Get(2))
	require.Equal(t, "", fromCtx.Get(-1))
}

func TestMatch(t *testing.T) {
	// Arrange
	rt := newRouter(router.WithBasePath("/app"))
	rt.Namespace("api")
	rt.Get("/items/{id:[0-9]+}", router.Ref("Items@show"))

	// Act
	info, params, ok := rt.Match("get", "/app/items/12/")

	// Assert
	require.True(t, ok)
	require.Equal(t, router.Params{"12"}, params)
	require.Equal(t, router.RouteInfo{
		Method:    http.MethodGet,
		Path:      "/items/{id:[0-9]+}",
		Namespace: "Api",
		Action:    "Items@show",
	}, info)

	// Act
	_, _, ok = rt.Match(http.MethodGet, "/app/items/twelve")

	// Assert
	require.False(t, ok)

	for _, uri := range []string{"/app/items/12?x=1", "/app/items/12/?x=1&y=2", "/app/items/12#top"} {
		// Act
		_, params, ok = rt.Match(http.MethodGet, uri)

		// Assert
		require.True(t, ok, uri)
		require.Equal(t, router.Params{"12"}, params, uri)
	}

	// Act
	_, _, ok = rt.Match(http.MethodGet, "/app/items/%zz")

	// Assert
	require.False(t, ok)
}

func TestServeHTTP(t *testing.T) {
	// Arrange
	rt := newRouter()
	rt.Get("/ok", router.HandlerFunc(func(w http.ResponseWriter, r *http.Request, _ router.Params) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rt.Get("/broken", router.Ref("Missing@action"))

	for _, tc := range []struct {
		name     string
		path     string
		expected int
	}{
		{"Handled", "/ok", http.StatusNoContent},
		{"Unresolvable", "/broken", http.StatusInternalServerError},
		{"Unmatched", "/nowhere", http.StatusNotFound},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			// Assert
			require.Equal(t, tc.expected, w.Code)
		})
	}

	// Arrange
	rt.SetError("/404", http.StatusNotFound, record(new([]string), "nf"))
	w := httptest.NewRecorder()

	// Act
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	// Assert
	require.Equal(t, http.StatusFound, w.Code)
}

func TestNewHandler(t *testing.T) {
	// Arrange
	setups := 0
	h := router.NewHandler(func(rt *router.Router) {
		setups++
		rt.Get("/hello/{name}", router.HandlerFunc(func(w http.ResponseWriter, r *http.Request, p router.Params) {
			fmt.Fprint(w, "hello "+p.Get(0))
		}))
	}, router.WithBasePath("/app"))
	srv := httptest.NewServer(h)
	defer srv.Close()

	// Act
	resp, err := http.Get(srv.URL + "/app/hello/waypoint")
	require.Nil(t, err)
	defer resp.Body.Close()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app/hello/again", nil))

	// Assert
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "hello again", w.Body.String())
	require.Equal(t, 2, setups)
}
