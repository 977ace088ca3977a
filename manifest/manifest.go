package manifest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/router"
	"gopkg.in/yaml.v3"
)

// A Manifest describes a route table.
type Manifest struct {
	BasePath  string       `yaml:"base_path"`
	Namespace string       `yaml:"namespace"`
	Routes    []Route      `yaml:"routes"`
	Groups    []Group      `yaml:"groups"`
	Errors    []ErrorRoute `yaml:"errors"`
}

// A Route describes one route.
// Method defaults to GET.
type Route struct {
	Method     string   `yaml:"method"`
	Path       string   `yaml:"path"`
	Action     string   `yaml:"action"`
	Name       string   `yaml:"name"`
	Middleware []string `yaml:"middleware"`
}

// A Group describes routes sharing a path prefix and, optionally, a namespace and middleware.
type Group struct {
	Prefix     string   `yaml:"prefix"`
	Namespace  string   `yaml:"namespace"`
	Middleware []string `yaml:"middleware"`
	Routes     []Route  `yaml:"routes"`
	Groups     []Group  `yaml:"groups"`
}

// An ErrorRoute describes where requests ending with Code go.
type ErrorRoute struct {
	Code   int    `yaml:"code"`
	Path   string `yaml:"path"`
	Action string `yaml:"action"`
}

// Load decodes a Manifest from YAML, rejecting unknown fields.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	m := new(Manifest)
	if err := dec.Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return nil, fmt.Errorf("%w: manifest: %s", waypoint.ErrNotValid, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadFile decodes the Manifest in the file at path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: manifest: %s", waypoint.ErrNotExist, err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks every route has a path and an action, and every error route a code.
func (m *Manifest) Validate() error {
	if err := validateRoutes(m.Routes); err != nil {
		return err
	}

	if err := validateGroups(m.Groups); err != nil {
		return err
	}

	for _, e := range m.Errors {
		if e.Code < 100 || e.Code > 599 {
			return fmt.Errorf("%w: error route %q: code %d", waypoint.ErrNotValid, e.Path, e.Code)
		}

		if e.Path == "" || e.Action == "" {
			return fmt.Errorf("%w: error route %d: path and action required", waypoint.ErrNotValid, e.Code)
		}
	}

	return nil
}

func validateRoutes(routes []Route) error {
	for _, r := range routes {
		if r.Path == "" {
			return fmt.Errorf("%w: route %q: path required", waypoint.ErrNotValid, r.Action)
		}

		if r.Action == "" {
			return fmt.Errorf("%w: route %q: action required", waypoint.ErrNotValid, r.Path)
		}
	}

	return nil
}

func validateGroups(groups []Group) error {
	for _, g := range groups {
		if err := validateRoutes(g.Routes); err != nil {
			return fmt.Errorf("group %q: %w", g.Prefix, err)
		}

		if err := validateGroups(g.Groups); err != nil {
			return fmt.Errorf("group %q: %w", g.Prefix, err)
		}
	}

	return nil
}

// Register adds the routes m describes to rt.
// Actions are registered as router.Ref and middleware names are looked up in mws.
//
// If a middleware name is not in mws, Register stops and returns waypoint.ErrNotValid.
func (m *Manifest) Register(rt *router.Router, mws map[string]middleware.Adapter) error {
	if m.BasePath != "" {
		rt.SetBasePath(m.BasePath)
	}

	b := builder{rt: rt, mws: mws}
	rt.Namespace(m.Namespace)
	if err := b.routes(m.Routes, nil); err != nil {
		return err
	}

	if err := b.groups(m.Groups, m.Namespace, nil); err != nil {
		return err
	}

	for _, e := range m.Errors {
		rt.SetError(e.Path, e.Code, router.Ref(e.Action))
	}

	return nil
}

type builder struct {
	rt  *router.Router
	mws map[string]middleware.Adapter
}

func (b builder) adapters(names []string) ([]middleware.Adapter, error) {
	adapters := make([]middleware.Adapter, 0, len(names))
	for _, name := range names {
		mw, ok := b.mws[name]
		if !ok || mw == nil {
			return nil, fmt.Errorf("%w: unknown middleware %q", waypoint.ErrNotValid, name)
		}

		adapters = append(adapters, mw)
	}

	return adapters, nil
}

func (b builder) routes(routes []Route, shared []middleware.Adapter) error {
	for _, r := range routes {
		own, err := b.adapters(r.Middleware)
		if err != nil {
			return fmt.Errorf("route %q: %w", r.Path, err)
		}

		method := strings.ToUpper(r.Method)
		if method == "" {
			method = http.MethodGet
		}

		b.rt.Middleware(shared...).Middleware(own...).Add(method, r.Path, router.Ref(r.Action))
		if r.Name != "" {
			b.rt.Name(r.Name)
		}
	}

	return nil
}

func (b builder) groups(groups []Group, namespace string, shared []middleware.Adapter) error {
	for _, g := range groups {
		own, err := b.adapters(g.Middleware)
		if err != nil {
			return fmt.Errorf("group %q: %w", g.Prefix, err)
		}

		ns := namespace
		if g.Namespace != "" {
			ns = g.Namespace
		}

		mws := make([]middleware.Adapter, 0, len(shared)+len(own))
		mws = append(mws, shared...)
		mws = append(mws, own...)

		b.rt.Group(g.Prefix, func(rt *router.Router) {
			rt.Namespace(ns)
			if err = b.routes(g.Routes, mws); err != nil {
				return
			}
			err = b.groups(g.Groups, ns, mws)
		})
		b.rt.Namespace(namespace)

		if err != nil {
			return err
		}
	}

	return nil
}
