package route

import "net/http"

// Route is a single endpoint of a group. Path is relative to the prefix the
// group is mounted under and may use chi URL parameters such as "/{id}".
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Group is a named, ordered set of routes mounted together under one prefix.
type Group struct {
	Name   string
	Routes []Route
}

// NewGroup returns an empty group called name.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Handle appends a route and returns the group for chaining.
func (g *Group) Handle(method, path string, h http.HandlerFunc) *Group {
	g.Routes = append(g.Routes, Route{Method: method, Path: path, Handler: h})
	return g
}

func (g *Group) Get(path string, h http.HandlerFunc) *Group {
	return g.Handle(http.MethodGet, path, h)
}

func (g *Group) Post(path string, h http.HandlerFunc) *Group {
	return g.Handle(http.MethodPost, path, h)
}

func (g *Group) Put(path string, h http.HandlerFunc) *Group {
	return g.Handle(http.MethodPut, path, h)
}

func (g *Group) Delete(path string, h http.HandlerFunc) *Group {
	return g.Handle(http.MethodDelete, path, h)
}

func (g *Group) Options(path string, h http.HandlerFunc) *Group {
	return g.Handle(http.MethodOptions, path, h)
}
