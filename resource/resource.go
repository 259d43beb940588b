// Package resource details the specifics of how the components of a URI
// path relate to one another. Each Resource is a single path component that
// may carry an argument, declare who requires that argument to be present,
// and link to a parent and child component, forming a chain that renders to
// a URI path once every declared requirement is met.
package resource

import (
	"errors"
	"fmt"

	"github.com/WilkinsonK/uri-routes/consts"
	"github.com/rohanthewiz/serr"
)

// Sentinel errors for resource chains.
var (
	// ErrArgRequired marks a component rendered without an argument
	// someone declared mandatory.
	ErrArgRequired = errors.New("resource requires an argument")

	// ErrParentSet marks an attempt to re-link an occupied parent slot.
	ErrParentSet = errors.New("resource parent already set")

	// ErrChildSet marks an attempt to re-link an occupied child slot.
	ErrChildSet = errors.New("resource child already set")

	// ErrCyclicLink marks a link that would make a resource its own
	// ancestor, turning the chain into a loop.
	ErrCyclicLink = errors.New("resource link would form a cycle")
)

// RequiredBy declares who, if anyone, forces a resource's argument to be
// supplied before the chain can render.
type RequiredBy int

const (
	RequiredByNoOne RequiredBy = iota
	RequiredByMe
	RequiredByParent
	RequiredByChild
)

func (rb RequiredBy) String() string {
	switch rb {
	case RequiredByMe:
		return "me"
	case RequiredByParent:
		return "parent"
	case RequiredByChild:
		return "child"
	default:
		return "no one"
	}
}

// Resource is a single part of a URI path. Arguments are optional by
// default; the requirement declaration determines whether rendering fails
// when no argument was set. A resource links to at most one parent and one
// child, forming a root-to-tail chain.
type Resource[T any] struct {
	name       string
	arg        *T
	requiredBy RequiredBy
	parent     *Resource[T]
	child      *Resource[T]
	weight     float64
}

// New creates a resource for the given path component name. The new
// resource is a root and tail node with no argument and no requirement.
func New[T any](name string) *Resource[T] {
	return &Resource[T]{name: name}
}

// Name returns the path component name used on rendering.
func (r *Resource[T]) Name() string {
	return r.name
}

// Arg returns the argument value set on this resource, if any.
func (r *Resource[T]) Arg() (T, bool) {
	if r.arg == nil {
		var zero T
		return zero, false
	}

	return *r.arg, true
}

// Requirement reports who requires this resource's argument.
func (r *Resource[T]) Requirement() RequiredBy {
	return r.requiredBy
}

// Weight returns the ordering weight used by pre-render sorting.
func (r *Resource[T]) Weight() float64 {
	return r.weight
}

// IsChild reports whether this resource hangs off a parent.
func (r *Resource[T]) IsChild() bool {
	return r.parent != nil
}

// IsRoot reports whether this resource is the first component of the chain.
// A freshly created resource is a root node.
func (r *Resource[T]) IsRoot() bool {
	return r.parent == nil
}

// IsTail reports whether this resource is the last component of the chain.
// A root node is also the tail when it is the only node.
func (r *Resource[T]) IsTail() bool {
	return r.child == nil
}

// Parent returns the linked parent resource, or nil for a root.
func (r *Resource[T]) Parent() *Resource[T] {
	return r.parent
}

// Child returns the linked child resource, or nil for a tail.
func (r *Resource[T]) Child() *Resource[T] {
	return r.child
}

// WithArg sets the argument on this resource.
func (r *Resource[T]) WithArg(arg T) *Resource[T] {
	r.arg = &arg
	return r
}

// WithRequirement declares who requires this resource's argument.
func (r *Resource[T]) WithRequirement(rb RequiredBy) *Resource[T] {
	r.requiredBy = rb
	return r
}

// WithWeight sets the ordering weight used by pre-render sorting.
func (r *Resource[T]) WithWeight(weight float64) *Resource[T] {
	r.weight = weight
	return r
}

// WithChild links child below this resource. Fails when this resource
// already has a child, the child already has a parent, or the link would
// close the chain into a cycle.
func (r *Resource[T]) WithChild(child *Resource[T]) error {
	if r.child != nil {
		return serr.Wrap(ErrChildSet, "resource", r.name)
	}

	if err := child.WithParent(r); err != nil {
		return err
	}

	r.child = child
	return nil
}

// WithParent links parent above this resource. Fails when the parent slot
// is already occupied or the link would close the chain into a cycle.
func (r *Resource[T]) WithParent(parent *Resource[T]) error {
	if r.parent != nil {
		return serr.Wrap(ErrParentSet, "resource", r.name)
	}

	// Chains are strictly linear: if this resource is already upstream of
	// the prospective parent, the link would loop.
	for node := parent; node != nil; node = node.parent {
		if node == r {
			return serr.Wrap(ErrCyclicLink, "resource", r.name)
		}
	}

	r.parent = parent
	return nil
}

// PathComponent renders this resource as "name/arg", or "name/" when no
// argument is set. Rendering fails when the requirement declaration is
// unmet:
//   - required by me and no argument: error naming this resource
//   - required by parent, a parent is linked, and no argument: error naming
//     the parent
//   - required by child, a child is linked, and no argument: error naming
//     the child
func (r *Resource[T]) PathComponent() (string, error) {
	if r.arg == nil {
		switch {
		case r.requiredBy == RequiredByMe:
			return "", serr.Wrap(ErrArgRequired, "resource", r.name)
		case r.requiredBy == RequiredByParent && r.parent != nil:
			return "", serr.Wrap(ErrArgRequired, "resource", r.parent.name)
		case r.requiredBy == RequiredByChild && r.child != nil:
			return "", serr.Wrap(ErrArgRequired, "resource", r.child.name)
		}

		return r.name + string(consts.RuneFwdSlash), nil
	}

	return fmt.Sprintf("%s/%v", r.name, *r.arg), nil
}

// Chain walks root to tail and collects each component's rendering,
// stopping at the first unmet requirement. The result feeds directly into
// the builder's path buffer.
func Chain[T any](root *Resource[T]) ([]string, error) {
	var components []string

	for r := root; r != nil; r = r.child {
		component, err := r.PathComponent()
		if err != nil {
			return nil, err
		}

		components = append(components, component)
	}

	return components, nil
}
