package router

import (
	"regexp"

	"github.com/xy-planning-network/waypoint/http/middleware"
)

// An entry is a registered route.
type entry struct {
	method      string
	path        string
	action      Action
	middlewares []middleware.Adapter
	namespace   string

	// matcher is nil when path did not compile.
	matcher *regexp.Regexp
}

// A table holds the entries for one HTTP method in registration order.
// Registering a path again replaces the entry in its original position.
type table struct {
	index   map[string]int
	entries []*entry
}

func newTable() *table {
	return &table{index: make(map[string]int)}
}

func (t *table) put(e *entry) {
	if i, ok := t.index[e.path]; ok {
		t.entries[i] = e
		return
	}

	t.index[e.path] = len(t.entries)
	t.entries = append(t.entries, e)
}

// match returns the first entry whose matcher matches path, along with its captures.
func (t *table) match(path string) (*entry, Params, bool) {
	for _, e := range t.entries {
		if e.matcher == nil {
			continue
		}

		m := e.matcher.FindStringSubmatch(path)
		if m == nil {
			continue
		}

		return e, Params(m[1:]), true
	}

	return nil, nil, false
}
