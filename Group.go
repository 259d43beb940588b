package uriroutes

import (
	"path"

	"github.com/WilkinsonK/uri-routes/consts"
)

// Group registers routes under a common template prefix (e.g. /api/v1).
// Groups can be nested to build hierarchical route tables; prefixes combine
// with path.Join so slashes never double up.
type Group struct {
	// prefix is the template prefix for all routes registered through this group
	prefix string
	// registry is the registry registrations land in
	registry *Registry
}

// Group creates a sub-group with an additional prefix.
// Example: api.Group("/users") registers under /api/users.
func (g *Group) Group(prefix string) *Group {
	return &Group{
		prefix:   path.Join(g.prefix, prefix),
		registry: g.registry,
	}
}

// Register stores template under the group prefix with the given method and
// name, applying the same validation as Registry.Register.
func (g *Group) Register(method, name, template string) (*Route, error) {
	return g.registry.Register(method, name, path.Join("/", g.prefix, template))
}

// Get registers a GET route with the group prefix
func (g *Group) Get(name, template string) (*Route, error) {
	return g.Register(consts.MethodGet, name, template)
}

// Post registers a POST route with the group prefix
func (g *Group) Post(name, template string) (*Route, error) {
	return g.Register(consts.MethodPost, name, template)
}

// Put registers a PUT route with the group prefix
func (g *Group) Put(name, template string) (*Route, error) {
	return g.Register(consts.MethodPut, name, template)
}

// Patch registers a PATCH route with the group prefix
func (g *Group) Patch(name, template string) (*Route, error) {
	return g.Register(consts.MethodPatch, name, template)
}

// Delete registers a DELETE route with the group prefix
func (g *Group) Delete(name, template string) (*Route, error) {
	return g.Register(consts.MethodDelete, name, template)
}

// Head registers a HEAD route with the group prefix
func (g *Group) Head(name, template string) (*Route, error) {
	return g.Register(consts.MethodHead, name, template)
}

// Options registers an OPTIONS route with the group prefix
func (g *Group) Options(name, template string) (*Route, error) {
	return g.Register(consts.MethodOptions, name, template)
}
