// Package navigator holds the named route table and the active route.
// It owns no business state and performs no guards.
package navigator

import (
	"fmt"
	"sort"
)

// Route is a named, navigable screen target.
type Route string

const (
	Login    Route = "Login"
	Register Route = "Register"
	Modules  Route = "Modules"
)

// Initial is the route shown when nothing has been navigated yet.
const Initial = Login

// routes maps every screen to the HTTP path that renders it.
var routes = map[Route]string{
	Login:    "/login",
	Register: "/register",
	Modules:  "/modules",
}

// Path returns the HTTP path for a route.
func Path(r Route) (string, bool) {
	p, ok := routes[r]
	return p, ok
}

// Parse validates a route name coming from outside (session, CLI).
func Parse(name string) (Route, error) {
	r := Route(name)
	if _, ok := routes[r]; !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}
	return r, nil
}

// Entry is one row of the route table.
type Entry struct {
	Name Route  `json:"name"`
	Path string `json:"path"`
}

// Table returns the route table sorted by name.
func Table() []Entry {
	out := make([]Entry, 0, len(routes))
	for name, path := range routes {
		out = append(out, Entry{Name: name, Path: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Navigator tracks the active route with the host's plain push/pop history.
// It is not safe for concurrent use; each request builds its own.
type Navigator struct {
	history []Route
}

// New returns a navigator positioned at start, or at Initial when start is empty.
func New(start Route) *Navigator {
	if start == "" {
		start = Initial
	}
	return &Navigator{history: []Route{start}}
}

// Current is the active route.
func (n *Navigator) Current() Route {
	return n.history[len(n.history)-1]
}

// Navigate switches to name unconditionally. Unknown names are rejected.
func (n *Navigator) Navigate(name Route) error {
	if _, ok := routes[name]; !ok {
		return fmt.Errorf("navigate: unknown route %q", name)
	}
	n.history = append(n.history, name)
	return nil
}

// Back pops one entry. It reports false when already at the root.
func (n *Navigator) Back() bool {
	if len(n.history) == 1 {
		return false
	}
	n.history = n.history[:len(n.history)-1]
	return true
}

// Moved reports whether any navigation happened since New.
func (n *Navigator) Moved() bool {
	return len(n.history) > 1
}
