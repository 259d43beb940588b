package resource_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"

	"github.com/WilkinsonK/uri-routes/resource"
)

func TestNewResource(t *testing.T) {
	res := resource.New[string]("resource")

	assert.Equal(t, res.Name(), "resource")
	assert.True(t, res.IsRoot())
	assert.False(t, res.IsChild())
	assert.True(t, res.IsTail())
	assert.Equal(t, res.Requirement(), resource.RequiredByNoOne)

	_, ok := res.Arg()
	assert.False(t, ok)
}

func TestPathComponent(t *testing.T) {
	path, err := resource.New[string]("resource").PathComponent()
	assert.Nil(t, err)
	assert.Equal(t, path, "resource/")
}

func TestPathComponentWithArg(t *testing.T) {
	path, err := resource.New[int]("users").WithArg(42).PathComponent()
	assert.Nil(t, err)
	assert.Equal(t, path, "users/42")
}

func TestLinking(t *testing.T) {
	child := resource.New[string]("child_resource")
	parent := resource.New[string]("parent_resource")

	err := parent.WithChild(child)
	assert.Nil(t, err)

	assert.True(t, child.IsChild())
	assert.False(t, child.IsRoot())
	assert.True(t, child.IsTail())

	assert.True(t, parent.IsRoot())
	assert.False(t, parent.IsTail())

	assert.Equal(t, child.Parent(), parent)
	assert.Equal(t, parent.Child(), child)
}

func TestChainPositions(t *testing.T) {
	head := resource.New[string]("head")
	middle := resource.New[string]("middle")
	tail := resource.New[string]("tail")

	assert.Nil(t, head.WithChild(middle))
	assert.Nil(t, middle.WithChild(tail))

	assert.True(t, head.IsRoot() && !head.IsTail())
	assert.True(t, middle.IsChild() && !middle.IsTail())
	assert.True(t, tail.IsChild() && tail.IsTail())
}

func TestDoubleLinkFails(t *testing.T) {
	parent := resource.New[string]("parent")
	first := resource.New[string]("first")
	second := resource.New[string]("second")

	assert.Nil(t, parent.WithChild(first))

	err := parent.WithChild(second)
	assert.True(t, errors.Is(err, resource.ErrChildSet))
	assert.Contains(t, err.Error(), "parent")

	other := resource.New[string]("other")
	err = first.WithParent(other)
	assert.True(t, errors.Is(err, resource.ErrParentSet))
}

// Linking back to an ancestor would turn the chain into a loop and make
// Chain walk forever, so the link is refused up front.
func TestCyclicLinkFails(t *testing.T) {
	users := resource.New[string]("users")
	posts := resource.New[string]("posts")

	assert.Nil(t, users.WithChild(posts))

	err := posts.WithChild(users)
	assert.True(t, errors.Is(err, resource.ErrCyclicLink))
	assert.Contains(t, err.Error(), "users")

	// The refused link leaves the chain intact and finite.
	components, chainErr := resource.Chain(users)
	assert.Nil(t, chainErr)
	assert.Equal(t, len(components), 2)

	comments := resource.New[string]("comments")
	assert.Nil(t, posts.WithChild(comments))

	err = comments.WithChild(users)
	assert.True(t, errors.Is(err, resource.ErrCyclicLink))
}

func TestSelfLinkFails(t *testing.T) {
	res := resource.New[string]("users")

	err := res.WithChild(res)
	assert.True(t, errors.Is(err, resource.ErrCyclicLink))
	assert.True(t, res.IsRoot() && res.IsTail())
}

func TestRequiredByMe(t *testing.T) {
	res := resource.New[string]("users").WithRequirement(resource.RequiredByMe)

	_, err := res.PathComponent()
	assert.True(t, errors.Is(err, resource.ErrArgRequired))
	assert.Contains(t, err.Error(), "users")

	path, err := res.WithArg("42").PathComponent()
	assert.Nil(t, err)
	assert.Equal(t, path, "users/42")
}

func TestRequiredByParent(t *testing.T) {
	child := resource.New[string]("posts").WithRequirement(resource.RequiredByParent)
	parent := resource.New[string]("users")

	// Without a parent linked, the declaration is inert.
	path, err := child.PathComponent()
	assert.Nil(t, err)
	assert.Equal(t, path, "posts/")

	assert.Nil(t, parent.WithChild(child))

	_, err = child.PathComponent()
	assert.True(t, errors.Is(err, resource.ErrArgRequired))
	assert.Contains(t, err.Error(), "users")
}

func TestRequiredByChild(t *testing.T) {
	parent := resource.New[string]("users").WithRequirement(resource.RequiredByChild)
	child := resource.New[string]("posts")

	path, err := parent.PathComponent()
	assert.Nil(t, err)
	assert.Equal(t, path, "users/")

	assert.Nil(t, parent.WithChild(child))

	_, err = parent.PathComponent()
	assert.True(t, errors.Is(err, resource.ErrArgRequired))
	assert.Contains(t, err.Error(), "posts")
}

func TestChain(t *testing.T) {
	users := resource.New[string]("users").WithArg("42")
	posts := resource.New[string]("posts").WithArg("7")

	assert.Nil(t, users.WithChild(posts))

	components, err := resource.Chain(users)
	assert.Nil(t, err)
	assert.Equal(t, len(components), 2)
	assert.Equal(t, components[0], "users/42")
	assert.Equal(t, components[1], "posts/7")
}

func TestChainStopsAtUnmetRequirement(t *testing.T) {
	users := resource.New[string]("users").WithArg("42")
	posts := resource.New[string]("posts").WithRequirement(resource.RequiredByMe)

	assert.Nil(t, users.WithChild(posts))

	_, err := resource.Chain(users)
	assert.True(t, errors.Is(err, resource.ErrArgRequired))
	assert.Contains(t, err.Error(), "posts")
}
