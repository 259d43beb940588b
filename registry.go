package uriroutes

import (
	"github.com/WilkinsonK/uri-routes/consts"
	"github.com/WilkinsonK/uri-routes/core/tpl"
	"github.com/rohanthewiz/serr"
)

// RouteInfo is one row of the registry's route table, used for inspection
// and documentation rendering.
type RouteInfo struct {
	Method   string
	Name     string
	Template string
	Args     []ArgSpec
}

// registered pairs a route with its registration identity.
type registered struct {
	method string
	name   string
	route  *Route
}

// Registry holds named route descriptors keyed by method. Concrete paths
// resolve back to their descriptor through a per-method radix tree, and
// names resolve through a hash index.
//
// Registration is not synchronized; register everything up front, then
// concurrent Resolve/Expand/Routes calls are safe.
type Registry struct {
	get     tpl.Tree[*Route]
	post    tpl.Tree[*Route]
	delete  tpl.Tree[*Route]
	put     tpl.Tree[*Route]
	patch   tpl.Tree[*Route]
	head    tpl.Tree[*Route]
	connect tpl.Tree[*Route]
	trace   tpl.Tree[*Route]
	options tpl.Tree[*Route]

	byName map[string]*registered
	byPath map[string]*registered // "METHOD /tree/path" -> owning registration
	order  []*registered
}

// NewRegistry creates an empty route registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*registered, 16),
		byPath: make(map[string]*registered, 16),
	}
}

// Register parses template and stores it under the given method and name.
//
// Failure modes: unrecognized method (ErrUnknownMethod), empty or duplicate
// name (ErrDuplicateRoute), malformed template (ErrBadTemplate), a path
// shape already covered by an earlier registration (ErrDuplicatePath — named
// routes resolve 1:1, so two templates may not produce the same concrete
// shape), and an argument name clashing with another argument at the same
// tree position — argument tree nodes are shared positionally, so templates
// must agree on the name there. The positional check also applies within a
// single template: an optional argument followed by another argument (e.g.
// /reports/:section?/:id) puts both names at the same position once the
// optional segment is elided, and is rejected.
func (reg *Registry) Register(method, name, template string) (*Route, error) {
	if !consts.KnownMethod(method) {
		return nil, serr.Wrap(ErrUnknownMethod, "method", method, "route", name)
	}

	if name == "" {
		return nil, serr.New("route name is empty", "template", template)
	}

	if _, exists := reg.byName[name]; exists {
		return nil, serr.Wrap(ErrDuplicateRoute, "route", name)
	}

	route, err := ParseRoute(template)
	if err != nil {
		return nil, serr.Wrap(err, "route", name)
	}

	// A template conflicts with itself when eliding an optional argument
	// shifts a differently named argument into its position.
	if theirs, ours, clash := tpl.Conflicts(route.segments, route.segments); clash {
		return nil, serr.New("conflicting argument names at the same position",
			"route", name, "args", theirs+" vs "+ours)
	}

	for _, existing := range reg.order {
		if existing.method != method {
			continue
		}

		if theirs, ours, clash := tpl.Conflicts(existing.route.segments, route.segments); clash {
			return nil, serr.New("conflicting argument names at the same position",
				"route", name, "existing", existing.name,
				"args", theirs+" vs "+ours)
		}
	}

	variants := tpl.Variants(route.segments)

	for _, variant := range variants {
		if existing, taken := reg.byPath[method+" "+variant]; taken {
			return nil, serr.Wrap(ErrDuplicatePath,
				"route", name, "existing", existing.name, "path", variant)
		}
	}

	entry := &registered{method: method, name: name, route: route}

	tree := reg.selectTree(method)
	for _, variant := range variants {
		tree.Add(variant, route)
		reg.byPath[method+" "+variant] = entry
	}

	reg.byName[name] = entry
	reg.order = append(reg.order, entry)

	return route, nil
}

// Resolve finds the route descriptor a concrete path belongs to, capturing
// its argument values. Fails with ErrUnknownRoute when no registered
// template covers the path.
func (reg *Registry) Resolve(method, path string) (*Route, []Arg, error) {
	tree := reg.selectTree(method)
	if tree == nil {
		return nil, nil, serr.Wrap(ErrUnknownMethod, "method", method)
	}

	route, args := tree.Lookup(path)
	if route == nil {
		return nil, nil, serr.Wrap(ErrUnknownRoute, "method", method, "path", path)
	}

	return route, args, nil
}

// Lookup returns the route registered under name.
func (reg *Registry) Lookup(name string) (*Route, bool) {
	entry, ok := reg.byName[name]
	if !ok {
		return nil, false
	}

	return entry.route, true
}

// Expand builds a concrete path from the named route and args, applying the
// route's required-argument validation.
func (reg *Registry) Expand(name string, args map[string]string) (string, error) {
	entry, ok := reg.byName[name]
	if !ok {
		return "", serr.Wrap(ErrUnknownRoute, "route", name)
	}

	return entry.route.Expand(args)
}

// Routes lists every registration in registration order.
func (reg *Registry) Routes() []RouteInfo {
	infos := make([]RouteInfo, 0, len(reg.order))

	for _, entry := range reg.order {
		infos = append(infos, RouteInfo{
			Method:   entry.method,
			Name:     entry.name,
			Template: entry.route.Template(),
			Args:     entry.route.Args(),
		})
	}

	return infos
}

// Group returns a registration group rooted at prefix. See Group.
func (reg *Registry) Group(prefix string) *Group {
	return &Group{prefix: prefix, registry: reg}
}

// selectTree returns the tree for the given method.
func (reg *Registry) selectTree(method string) *tpl.Tree[*Route] {
	switch method {
	case consts.MethodGet:
		return &reg.get
	case consts.MethodPost:
		return &reg.post
	case consts.MethodDelete:
		return &reg.delete
	case consts.MethodPut:
		return &reg.put
	case consts.MethodPatch:
		return &reg.patch
	case consts.MethodHead:
		return &reg.head
	case consts.MethodConnect:
		return &reg.connect
	case consts.MethodTrace:
		return &reg.trace
	case consts.MethodOptions:
		return &reg.options
	default:
		return nil
	}
}
