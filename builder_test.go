package uriroutes_test

import (
	"testing"

	"github.com/rohanthewiz/assert"

	uriroutes "github.com/WilkinsonK/uri-routes"
)

func TestBuilderBareHost(t *testing.T) {
	uri, err := uriroutes.NewBuilder("google.com").Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://google.com")
}

func TestBuilderScheme(t *testing.T) {
	uri, err := uriroutes.NewBuilder("localhost").WithScheme("file").Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "file://localhost")
}

func TestBuilderPath(t *testing.T) {
	uri, err := uriroutes.NewBuilder("fqdm.org").
		WithPath("resource").
		Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://fqdm.org/resource")
}

func TestBuilderParams(t *testing.T) {
	uri, err := uriroutes.NewBuilder("fqdm.org").
		WithParam("page", 1).
		Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://fqdm.org?page=1")
}

func TestBuilderParamOrder(t *testing.T) {
	uri, err := uriroutes.NewBuilder("fqdm.org").
		WithParam("b", 2).
		WithParam("a", 1).
		Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://fqdm.org?b=2&a=1")
}

func TestBuilderWeightedPaths(t *testing.T) {
	uri, err := uriroutes.NewBuilder("fqdm.org").
		WithPathWeight("resource0", 2.0).
		WithPathWeight("resource1", 1.0).
		Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://fqdm.org/resource1/resource0")
}

func TestBuilderUnweightedSortLast(t *testing.T) {
	uri, err := uriroutes.NewBuilder("fqdm.org").
		WithPath("tail").
		WithPathWeight("head", 1.0).
		Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://fqdm.org/head/tail")
}

func TestBuilderWeightClamp(t *testing.T) {
	// Weights below the minimum clamp up, so nothing outranks the root.
	uri, err := uriroutes.NewBuilder("fqdm.org").
		WithPathWeight("a", -5).
		WithPathWeight("b", 0).
		Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://fqdm.org/a/b")
}

func TestBuilderCollapsesSlashes(t *testing.T) {
	uri, err := uriroutes.NewBuilder("fqdm.org").
		WithPath("/api/").
		WithPath("/users/").
		Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://fqdm.org/api/users")
}

func TestBuilderWithRoute(t *testing.T) {
	route := uriroutes.MustParseRoute("/users/:id")

	uri, err := uriroutes.NewBuilder("api.example.com").
		WithRoute(route, map[string]string{"id": "42"}).
		WithParam("expand", "posts").
		Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://api.example.com/users/42?expand=posts")
}

func TestBuilderWithRouteDeferredError(t *testing.T) {
	route := uriroutes.MustParseRoute("/users/:id")

	_, err := uriroutes.NewBuilder("api.example.com").
		WithRoute(route, nil).
		Build()
	assert.True(t, uriroutes.IsMissingArg(err))
}

func TestBuilderBadHost(t *testing.T) {
	_, err := uriroutes.NewBuilder("").Build()
	assert.True(t, err != nil)

	_, err = uriroutes.NewBuilder("bad host").Build()
	assert.True(t, err != nil)
}

func TestBuilderParamEscaping(t *testing.T) {
	uri, err := uriroutes.NewBuilder("fqdm.org").
		WithParam("q", "a b&c").
		Build()
	assert.Nil(t, err)
	assert.Equal(t, uri, "https://fqdm.org?q=a+b%26c")
}
