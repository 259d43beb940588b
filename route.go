// Package uriroutes validates and constructs URI paths from declarative
// route templates. A Route describes a path shape such as
// /users/:id/posts/:postId, including which named arguments must be present
// when building a concrete URI, and the Builder composes full URIs from
// weighted path segments and query parameters.
package uriroutes

import (
	"github.com/WilkinsonK/uri-routes/core/tpl"
	"github.com/rohanthewiz/serr"
)

// Arg is a named value captured from or substituted into a route template.
type Arg = tpl.Arg

// ArgSpec describes one declared argument of a route template.
type ArgSpec = tpl.ArgSpec

// Route is the immutable descriptor of a URI path template. It records the
// ordered path segments, which of them are named arguments, and whether each
// argument is required. Construct with ParseRoute; a Route is never mutated
// afterward and is safe for concurrent use.
type Route struct {
	template string
	segments []tpl.Segment
	args     []ArgSpec
}

// ParseRoute parses a route template into its descriptor.
//
// Template grammar:
//   - /users           literal segment
//   - /users/:id       required named argument
//   - /users/:id?      optional named argument (elided when unset)
//   - /static/*path    trailing wildcard, captures the rest of the path
//
// Malformed templates (empty or duplicate argument names, a non-final
// wildcard, markers inside a literal) return ErrBadTemplate.
func ParseRoute(template string) (*Route, error) {
	segments, err := tpl.Parse(template)
	if err != nil {
		return nil, err
	}

	return &Route{
		template: tpl.String(segments),
		segments: segments,
		args:     tpl.Specs(segments),
	}, nil
}

// MustParseRoute is ParseRoute but panics on a malformed template.
// Intended for package-level route declarations.
func MustParseRoute(template string) *Route {
	route, err := ParseRoute(template)
	if err != nil {
		panic(err)
	}

	return route
}

// Template returns the canonical form of the route's template.
func (r *Route) Template() string {
	return r.template
}

// Args returns the route's declared arguments in template order.
func (r *Route) Args() []ArgSpec {
	args := make([]ArgSpec, len(r.args))
	copy(args, r.args)
	return args
}

// Expand substitutes args into the template and returns the concrete path.
// Every required argument must be present or Expand fails with
// ErrMissingArg naming all of the missing arguments; keys not declared by
// the template fail with ErrUnknownArg. Values are percent-escaped per path
// segment, wildcard values keeping their slash separators; an empty value
// satisfies a required argument but drops its segment from the path.
func (r *Route) Expand(args map[string]string) (string, error) {
	path, err := tpl.Expand(r.segments, args)
	if err != nil {
		return "", serr.Wrap(err, "route", r.template)
	}

	return path, nil
}

// Match reports whether a concrete path fits this route, capturing argument
// values in template order.
func (r *Route) Match(path string) ([]Arg, bool) {
	return tpl.Match(r.segments, path)
}

func (r *Route) String() string {
	return r.template
}
