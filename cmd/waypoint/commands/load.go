package commands

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/manifest"
)

// An app is a manifest ready to register onto a *router.Router.
type app struct {
	m   *manifest.Manifest
	mws map[string]middleware.Adapter
	reg *router.Registry
}

// load reads the manifest at path, registering a stub controller for every class it names
// and a pass through middleware for every middleware name.
func load(path string, l logger.Logger) (*app, error) {
	m, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}

	a := &app{m: m, mws: passThrough(m), reg: router.NewRegistry()}

	rt, err := a.router(router.WithLogger(l))
	if err != nil {
		return nil, err
	}

	for _, ri := range rt.Routes() {
		class, _, ok := strings.Cut(ri.Action, "@")
		if !ok {
			continue
		}

		if ri.Namespace != "" {
			class = ri.Namespace + "." + class
		}

		name := class
		a.reg.Register(class, func() router.Controller { return echo(name) })
	}

	return a, nil
}

// router constructs a *router.Router with the manifest's routes.
func (a *app) router(opts ...router.RouterOpt) (*router.Router, error) {
	rt := router.New(append(opts, router.WithRegistry(a.reg))...)
	if err := a.m.Register(rt, a.mws); err != nil {
		return nil, err
	}

	return rt, nil
}

// passThrough maps every middleware name in m to middleware.NoopAdapter.
func passThrough(m *manifest.Manifest) map[string]middleware.Adapter {
	mws := make(map[string]middleware.Adapter)
	add := func(names []string) {
		for _, n := range names {
			mws[n] = middleware.NoopAdapter
		}
	}

	for _, r := range m.Routes {
		add(r.Middleware)
	}

	var walk func([]manifest.Group)
	walk = func(groups []manifest.Group) {
		for _, g := range groups {
			add(g.Middleware)
			for _, r := range g.Routes {
				add(r.Middleware)
			}
			walk(g.Groups)
		}
	}
	walk(m.Groups)

	return mws
}

// echo is a controller answering with the action reached and the params captured.
type echo string

func (e echo) Action(method string) (router.HandlerFunc, bool) {
	return func(w http.ResponseWriter, _ *http.Request, params router.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "%s@%s", string(e), method)
		if len(params) > 0 {
			fmt.Fprintf(w, " %s", strings.Join(params, " "))
		}
		fmt.Fprintln(w)
	}, true
}
