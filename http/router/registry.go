package router

import (
	"fmt"
	"sort"
)

// A Controller groups the actions a Ref can name.
type Controller interface {
	// Action returns the HandlerFunc for the method named or false if there is none.
	Action(name string) (HandlerFunc, bool)
}

// A Factory constructs a new Controller.
type Factory func() Controller

// Actions is a Controller backed by a map of method names to HandlerFuncs.
type Actions map[string]HandlerFunc

// Action returns the HandlerFunc stored under name.
func (a Actions) Action(name string) (HandlerFunc, bool) {
	h, ok := a[name]
	return h, ok
}

// A Registry maps fully qualified class names to Factories.
// A Registry is read during dispatch and so must be filled before serving.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry constructs an empty *Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register stores f under class, replacing any Factory already there.
// Namespaced classes are joined with a dot: "Admin.UserController".
func (reg *Registry) Register(class string, f Factory) *Registry {
	reg.factories[class] = f
	return reg
}

// Resolve constructs a new Controller for class and returns its method action.
//
// If reg is nil, class is unknown or the Controller lacks method,
// ErrUnresolvable returns.
func (reg *Registry) Resolve(class, method string) (HandlerFunc, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: no registry for %s@%s", ErrUnresolvable, class, method)
	}

	f, ok := reg.factories[class]
	if !ok || f == nil {
		return nil, fmt.Errorf("%w: unknown class %q", ErrUnresolvable, class)
	}

	c := f()
	if c == nil {
		return nil, fmt.Errorf("%w: %q constructed nil controller", ErrUnresolvable, class)
	}

	h, ok := c.Action(method)
	if !ok || h == nil {
		return nil, fmt.Errorf("%w: %q has no method %q", ErrUnresolvable, class, method)
	}

	return h, nil
}

// Classes lists the registered class names in sorted order.
func (reg *Registry) Classes() []string {
	classes := make([]string, 0, len(reg.factories))
	for c := range reg.factories {
		classes = append(classes, c)
	}

	sort.Strings(classes)
	return classes
}
