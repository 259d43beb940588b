package routeset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uriroutes "github.com/WilkinsonK/uri-routes"
	"github.com/WilkinsonK/uri-routes/routeset"
)

const sampleDoc = `
scheme: https
host: api.example.com
routes:
  - name: user
    method: GET
    path: /users/:id
  - name: user-posts
    method: GET
    path: /users/:id/posts/:postId?
  - name: create-user
    method: POST
    path: /users
`

func TestLoad(t *testing.T) {
	set, err := routeset.Load([]byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, "https", set.Scheme())
	assert.Equal(t, "api.example.com", set.Host())

	infos := set.Registry().Routes()
	require.Len(t, infos, 3)
	assert.Equal(t, "user", infos[0].Name)
	assert.Equal(t, "/users/:id", infos[0].Template)
	assert.Equal(t, "POST", infos[2].Method)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := routeset.Load([]byte("routes: ["))
	require.Error(t, err)
}

func TestLoadRejectsMissingHost(t *testing.T) {
	_, err := routeset.Load([]byte("routes: []"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host")
}

func TestLoadRejectsUnknownMethod(t *testing.T) {
	doc := `
host: api.example.com
routes:
  - name: user
    method: FETCH
    path: /users/:id
`
	_, err := routeset.Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, uriroutes.ErrUnknownMethod)
	assert.Contains(t, err.Error(), "user")
}

func TestLoadRejectsDuplicateName(t *testing.T) {
	doc := `
host: api.example.com
routes:
  - name: user
    method: GET
    path: /users/:id
  - name: user
    method: POST
    path: /users
`
	_, err := routeset.Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, uriroutes.ErrDuplicateRoute)
}

func TestLoadRejectsMalformedTemplate(t *testing.T) {
	doc := `
host: api.example.com
routes:
  - name: broken
    method: GET
    path: /users/:
`
	_, err := routeset.Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, uriroutes.ErrBadTemplate)
	assert.Contains(t, err.Error(), "broken")
}

func TestSetURL(t *testing.T) {
	set, err := routeset.Load([]byte(sampleDoc))
	require.NoError(t, err)

	uri, err := set.URL("user", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/users/42", uri)

	// Optional argument elided.
	uri, err = set.URL("user-posts", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/users/42/posts", uri)
}

func TestSetURLValidation(t *testing.T) {
	set, err := routeset.Load([]byte(sampleDoc))
	require.NoError(t, err)

	_, err = set.URL("user", nil)
	assert.ErrorIs(t, err, uriroutes.ErrMissingArg)

	_, err = set.URL("nonexistent", nil)
	assert.ErrorIs(t, err, uriroutes.ErrUnknownRoute)
}

func TestSetURLDefaultScheme(t *testing.T) {
	doc := `
host: api.example.com
routes:
  - name: user
    method: GET
    path: /users/:id
`
	set, err := routeset.Load([]byte(doc))
	require.NoError(t, err)

	uri, err := set.URL("user", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/users/42", uri)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	set, err := routeset.Load([]byte(sampleDoc))
	require.NoError(t, err)

	fromFile, err := routeset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, set.Host(), fromFile.Host())

	_, err = routeset.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
