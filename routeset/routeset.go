// Package routeset loads declarative route definitions from YAML documents
// and turns them into a populated route registry.
//
// Document shape:
//
//	scheme: https
//	host: api.example.com
//	routes:
//	  - name: user
//	    method: GET
//	    path: /users/:id
//	  - name: user-posts
//	    method: GET
//	    path: /users/:id/posts/:postId?
package routeset

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	uriroutes "github.com/WilkinsonK/uri-routes"
	"github.com/rohanthewiz/serr"
)

// Definition is one route entry in a route set document.
type Definition struct {
	Name   string `yaml:"name"`
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
}

// Document is the unmarshaled form of a route set file.
type Document struct {
	Scheme string       `yaml:"scheme"`
	Host   string       `yaml:"host"`
	Routes []Definition `yaml:"routes"`
}

// Set is a validated route set: a registry of the document's routes plus
// the scheme and host its URIs are built against. Immutable once loaded and
// safe for concurrent use.
type Set struct {
	scheme   string
	host     string
	registry *uriroutes.Registry
}

// Load parses and validates a YAML route set document. Each definition's
// method must be a known method, names must be unique and non-empty, and
// templates must parse; failures report the offending route by name and
// position.
func Load(data []byte) (*Set, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, serr.Wrap(err, "route set document is not valid YAML")
	}

	if doc.Host == "" {
		return nil, serr.New("route set document is missing a host")
	}

	registry := uriroutes.NewRegistry()

	for i, def := range doc.Routes {
		if _, err := registry.Register(def.Method, def.Name, def.Path); err != nil {
			return nil, serr.Wrap(err, "route definition rejected",
				"name", def.Name, "position", fmt.Sprint(i))
		}
	}

	return &Set{
		scheme:   doc.Scheme,
		host:     doc.Host,
		registry: registry,
	}, nil
}

// LoadFile reads and loads a route set document from disk.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "could not read route set file", "path", path)
	}

	set, err := Load(data)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}

	return set, nil
}

// Scheme returns the document's scheme, empty when unset.
func (s *Set) Scheme() string {
	return s.scheme
}

// Host returns the document's host.
func (s *Set) Host() string {
	return s.host
}

// Registry exposes the set's populated route registry.
func (s *Set) Registry() *uriroutes.Registry {
	return s.registry
}

// URL builds a full URI for the named route with the given arguments,
// using the set's scheme and host. Required-argument validation applies.
func (s *Set) URL(name string, args map[string]string) (string, error) {
	path, err := s.registry.Expand(name, args)
	if err != nil {
		return "", err
	}

	builder := uriroutes.NewBuilder(s.host).WithPath(path)

	if s.scheme != "" {
		builder = builder.WithScheme(s.scheme)
	}

	return builder.Build()
}
