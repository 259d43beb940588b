package uriroutes

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/WilkinsonK/uri-routes/consts"
	"github.com/rohanthewiz/serr"
)

// Weight bounds for builder path segments. Explicit weights clamp into
// [WeightMin, WeightMax]; segments added without a weight sort last at
// WeightMax, and the implicit root segment sits first at zero.
const (
	WeightMin = 0.1
	WeightMax = math.MaxFloat64
)

// pathEntry is one path segment in the builder's buffer together with its
// ordering weight.
type pathEntry struct {
	path   string
	weight float64
}

// Builder constructs URI routes from the ground up. Useful where routes
// sharing common properties (scheme, host, a set of path segments) are
// assembled dynamically. Methods chain; Build produces the final URI.
//
//	uri, err := uriroutes.NewBuilder("api.example.com").
//		WithPath("users").
//		WithParam("page", 1).
//		Build()
//	// https://api.example.com/users?page=1
//
// A Builder is a single-goroutine value and must not be shared.
type Builder struct {
	host   string
	scheme string
	params []string // rendered name=value pairs, insertion order
	paths  []pathEntry
	errs   []error // deferred failures surfaced by Build
}

// NewBuilder starts a builder for the given host. The path buffer begins
// with the root segment, pinned to the front by weight zero.
func NewBuilder(host string) *Builder {
	return &Builder{
		host:  host,
		paths: []pathEntry{{path: consts.StrSlash, weight: 0}},
	}
}

// WithScheme sets the protocol scheme. The default is https.
func (b *Builder) WithScheme(scheme string) *Builder {
	b.scheme = scheme
	return b
}

// WithPath appends a path segment to the end of the path buffer.
func (b *Builder) WithPath(path string) *Builder {
	return b.insertPath(path, WeightMax)
}

// WithPathWeight inserts a path segment ordered by weight. Lighter segments
// come first; equal weights keep insertion order.
func (b *Builder) WithPathWeight(path string, weight float64) *Builder {
	return b.insertPath(path, weight)
}

// WithParam appends a query parameter. The value is rendered with
// fmt.Sprint, so any printable type works. Parameters keep insertion order.
func (b *Builder) WithParam(name string, value any) *Builder {
	b.params = append(b.params,
		url.QueryEscape(name)+string(consts.RuneEquals)+url.QueryEscape(fmt.Sprint(value)))
	return b
}

// WithRoute expands a route descriptor with the given arguments and appends
// the result to the path buffer. Expansion failure is deferred to Build.
func (b *Builder) WithRoute(route *Route, args map[string]string) *Builder {
	path, err := route.Expand(args)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	return b.WithPath(path)
}

func (b *Builder) insertPath(path string, weight float64) *Builder {
	if weight < WeightMin {
		weight = WeightMin
	}

	b.paths = append(b.paths, pathEntry{path: path, weight: weight})
	return b
}

// Build assembles the URI: scheme://host/paths?params. Path segments are
// ordered by weight, empty segments dropped, and duplicate slashes
// collapsed. A bare host with no segments or parameters yields scheme://host
// with no trailing slash.
func (b *Builder) Build() (string, error) {
	if len(b.errs) > 0 {
		return "", b.errs[0]
	}

	if b.host == "" || strings.ContainsAny(b.host, "/ ?#") {
		return "", serr.Wrap(ErrBadURI, "host is missing or malformed", "host", b.host)
	}

	scheme := b.scheme
	if scheme == "" {
		scheme = consts.DefaultScheme
	}

	uri := scheme + "://" + b.host

	if path := b.buildPath(); path != consts.StrSlash {
		uri += path
	}

	if len(b.params) > 0 {
		uri += string(consts.RuneQuestion) + strings.Join(b.params, string(consts.RuneAmp))
	}

	if _, err := url.Parse(uri); err != nil {
		return "", serr.Wrap(err, "built URI does not parse", "uri", uri)
	}

	return uri, nil
}

// buildPath flattens the weighted path buffer into a single clean path.
func (b *Builder) buildPath() string {
	entries := make([]pathEntry, len(b.paths))
	copy(entries, b.paths)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].weight < entries[j].weight
	})

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.path != "" {
			parts = append(parts, entry.path)
		}
	}

	path := strings.Join(parts, consts.StrSlash)

	for strings.Contains(path, consts.StrSlashSlash) {
		path = strings.ReplaceAll(path, consts.StrSlashSlash, consts.StrSlash)
	}

	if !strings.HasPrefix(path, consts.StrSlash) {
		path = consts.StrSlash + path
	}

	if path != consts.StrSlash {
		path = strings.TrimSuffix(path, consts.StrSlash)
	}

	return path
}
