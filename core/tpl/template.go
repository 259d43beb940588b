package tpl

import (
	"errors"
	"net/url"
	"strings"

	"github.com/WilkinsonK/uri-routes/consts"
	"github.com/rohanthewiz/serr"
)

// Sentinel errors for template failures. Callers classify with errors.Is;
// the serr wrappers layered on top carry the offending names and templates.
var (
	ErrBadTemplate = errors.New("malformed route template")
	ErrMissingArg  = errors.New("missing required argument")
	ErrUnknownArg  = errors.New("unknown argument")
)

// Kind discriminates the three segment forms a template may contain.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindArg
	KindWildcard
)

// Segment is one parsed component of a route template.
// Exactly one of Literal or Name is populated, per Kind.
type Segment struct {
	Kind     Kind
	Literal  string // literal text, Kind == KindLiteral only
	Name     string // argument name, Kind == KindArg or KindWildcard
	Optional bool   // ":name?" arguments and all wildcards
}

// Parse converts a route template such as /users/:id/posts/:postId? into its
// ordered segments.
//
// Grammar:
//   - literal segments match themselves
//   - :name declares a required argument filling one segment
//   - :name? declares an optional argument; the segment is elided when no
//     value is supplied
//   - *name declares a trailing wildcard capturing the rest of the path;
//     it must be the final segment and is always optional
//
// Empty segments from doubled slashes are dropped, and a trailing slash is
// ignored, so "/users/" and "/users" parse identically.
func Parse(template string) ([]Segment, error) {
	if template == "" || template[0] != consts.RuneFwdSlash {
		return nil, serr.Wrap(ErrBadTemplate, "template must begin with a slash", "template", template)
	}

	var segments []Segment
	seen := map[string]bool{}

	for _, part := range strings.Split(template[1:], consts.StrSlash) {
		if part == "" {
			continue
		}

		if len(segments) > 0 && segments[len(segments)-1].Kind == KindWildcard {
			return nil, serr.Wrap(ErrBadTemplate, "wildcard must be the final segment", "template", template)
		}

		switch part[0] {
		case consts.RuneColon:
			name := part[1:]
			optional := false

			if strings.HasSuffix(name, string(consts.RuneQuestion)) {
				name = name[:len(name)-1]
				optional = true
			}

			if err := checkArgName(name, template, seen); err != nil {
				return nil, err
			}

			seen[name] = true
			segments = append(segments, Segment{Kind: KindArg, Name: name, Optional: optional})

		case consts.RuneAsterisk:
			name := part[1:]

			if strings.ContainsRune(name, consts.RuneQuestion) {
				return nil, serr.Wrap(ErrBadTemplate, "wildcard arguments are already optional", "template", template)
			}

			if err := checkArgName(name, template, seen); err != nil {
				return nil, err
			}

			seen[name] = true
			segments = append(segments, Segment{Kind: KindWildcard, Name: name, Optional: true})

		default:
			if strings.ContainsAny(part, ":*?") {
				return nil, serr.Wrap(ErrBadTemplate,
					"argument markers are only valid at the start of a segment",
					"template", template, "segment", part)
			}

			segments = append(segments, Segment{Kind: KindLiteral, Literal: part})
		}
	}

	return segments, nil
}

// checkArgName validates a declared argument name against the template's
// prior declarations.
func checkArgName(name, template string, seen map[string]bool) error {
	if name == "" {
		return serr.Wrap(ErrBadTemplate, "argument name is empty", "template", template)
	}

	if strings.ContainsAny(name, ":*?/") {
		return serr.Wrap(ErrBadTemplate, "argument name contains a reserved character",
			"template", template, "arg", name)
	}

	if seen[name] {
		return serr.Wrap(ErrBadTemplate, "duplicate argument name",
			"template", template, "arg", name)
	}

	return nil
}

// Specs returns the ordered argument descriptors declared by the segments.
func Specs(segments []Segment) []ArgSpec {
	var specs []ArgSpec

	for _, seg := range segments {
		switch seg.Kind {
		case KindArg:
			specs = append(specs, ArgSpec{Name: seg.Name, Required: !seg.Optional})
		case KindWildcard:
			specs = append(specs, ArgSpec{Name: seg.Name, Wildcard: true})
		}
	}

	return specs
}

// String renders segments back into canonical template form.
func String(segments []Segment) string {
	var sb strings.Builder

	for _, seg := range segments {
		sb.WriteByte(consts.RuneFwdSlash)

		switch seg.Kind {
		case KindLiteral:
			sb.WriteString(seg.Literal)
		case KindArg:
			sb.WriteByte(consts.RuneColon)
			sb.WriteString(seg.Name)
			if seg.Optional {
				sb.WriteByte(consts.RuneQuestion)
			}
		case KindWildcard:
			sb.WriteByte(consts.RuneAsterisk)
			sb.WriteString(seg.Name)
		}
	}

	if sb.Len() == 0 {
		return consts.StrSlash
	}

	return sb.String()
}

// Variants enumerates the concrete match shapes a template produces, one per
// combination of elided optional arguments. Wildcards contribute a variant
// with and one without the wildcard segment. The first variant is always the
// full template. The result feeds the radix tree, which has no notion of
// optional segments.
func Variants(segments []Segment) []string {
	expanded := shapes(segments)

	variants := make([]string, len(expanded))
	for i, shape := range expanded {
		variants[i] = treePath(shape)
	}

	return variants
}

// shapes expands optional segments into every combination of presence and
// absence. The full shape always comes first.
func shapes(segments []Segment) [][]Segment {
	result := [][]Segment{{}}

	for _, seg := range segments {
		if seg.Kind == KindArg && seg.Optional || seg.Kind == KindWildcard {
			// Every existing shape continues both with and without this segment.
			branched := make([][]Segment, 0, len(result)*2)
			for _, shape := range result {
				with := make([]Segment, len(shape), len(shape)+1)
				copy(with, shape)
				branched = append(branched, append(with, seg), shape)
			}
			result = branched
			continue
		}

		for i := range result {
			result[i] = append(result[i], seg)
		}
	}

	return result
}

// Conflicts reports whether two templates would contend for the same
// argument node under different names. The radix tree shares argument nodes
// positionally, so templates that agree on every segment up to an argument
// position must also agree on that argument's name. Returns the two
// conflicting names when found.
func Conflicts(a, b []Segment) (string, string, bool) {
	for _, as := range shapes(a) {
		for _, bs := range shapes(b) {
			if n1, n2, ok := shapeConflict(as, bs); ok {
				return n1, n2, true
			}
		}
	}

	return "", "", false
}

func shapeConflict(a, b []Segment) (string, string, bool) {
	for i := 0; i < len(a) && i < len(b); i++ {
		sa, sb := a[i], b[i]

		if sa.Kind != sb.Kind {
			// Static and argument children occupy different tree slots.
			return "", "", false
		}

		switch sa.Kind {
		case KindLiteral:
			if sa.Literal != sb.Literal {
				return "", "", false
			}

		case KindArg, KindWildcard:
			if sa.Name != sb.Name {
				return sa.Name, sb.Name, true
			}
		}
	}

	return "", "", false
}

// treePath renders segments in the form the radix tree stores: optional
// markers stripped, since each variant is registered separately.
func treePath(segments []Segment) string {
	var sb strings.Builder

	for _, seg := range segments {
		sb.WriteByte(consts.RuneFwdSlash)

		switch seg.Kind {
		case KindLiteral:
			sb.WriteString(seg.Literal)
		case KindArg:
			sb.WriteByte(consts.RuneColon)
			sb.WriteString(seg.Name)
		case KindWildcard:
			sb.WriteByte(consts.RuneAsterisk)
			sb.WriteString(seg.Name)
		}
	}

	if sb.Len() == 0 {
		return consts.StrSlash
	}

	return sb.String()
}

// Expand substitutes args into the segments and returns the concrete path.
// Argument values are percent-escaped per path segment; wildcard values keep
// their slash separators, escaping each sub-segment individually. An empty
// value satisfies a required argument but drops its segment, the same
// normalization Parse applies to empty template segments, so the result
// never carries a doubled slash.
//
// Failure modes:
//   - any required argument absent from args -> ErrMissingArg, reporting
//     every missing name at once
//   - any key in args not declared by the template -> ErrUnknownArg
func Expand(segments []Segment, args map[string]string) (string, error) {
	unused := make(map[string]bool, len(args))
	for k := range args {
		unused[k] = true
	}

	var parts []string
	var missing []string

	for _, seg := range segments {
		switch seg.Kind {
		case KindLiteral:
			parts = append(parts, seg.Literal)

		case KindArg:
			value, ok := args[seg.Name]
			delete(unused, seg.Name)

			if !ok {
				if !seg.Optional {
					missing = append(missing, seg.Name)
				}
				continue
			}

			if value == "" {
				continue
			}

			parts = append(parts, url.PathEscape(value))

		case KindWildcard:
			value, ok := args[seg.Name]
			delete(unused, seg.Name)

			if !ok || value == "" {
				continue
			}

			sub := strings.Split(value, consts.StrSlash)
			for i, s := range sub {
				sub[i] = url.PathEscape(s)
			}
			parts = append(parts, strings.Join(sub, consts.StrSlash))
		}
	}

	if len(missing) > 0 {
		return "", serr.Wrap(ErrMissingArg,
			"template", String(segments), "args", strings.Join(missing, ", "))
	}

	if len(unused) > 0 {
		var keys []string
		for k := range unused {
			keys = append(keys, k)
		}
		return "", serr.Wrap(ErrUnknownArg,
			"template", String(segments), "args", strings.Join(keys, ", "))
	}

	return consts.StrSlash + strings.Join(parts, consts.StrSlash), nil
}

// Match checks a concrete path against the segments, capturing argument
// values in declaration order. Optional arguments may be absent from the
// path; matching backtracks over elided segments as needed.
func Match(segments []Segment, path string) ([]Arg, bool) {
	var parts []string

	for _, part := range strings.Split(strings.TrimPrefix(path, consts.StrSlash), consts.StrSlash) {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return matchParts(segments, parts)
}

func matchParts(segments []Segment, parts []string) ([]Arg, bool) {
	if len(segments) == 0 {
		if len(parts) == 0 {
			return nil, true
		}
		return nil, false
	}

	seg := segments[0]

	switch seg.Kind {
	case KindLiteral:
		if len(parts) == 0 || parts[0] != seg.Literal {
			return nil, false
		}
		return matchParts(segments[1:], parts[1:])

	case KindArg:
		// Try consuming one path part first.
		if len(parts) > 0 {
			if rest, ok := matchParts(segments[1:], parts[1:]); ok {
				return append([]Arg{{Key: seg.Name, Value: parts[0]}}, rest...), true
			}
		}

		// Optional arguments may be elided.
		if seg.Optional {
			return matchParts(segments[1:], parts)
		}

		return nil, false

	case KindWildcard:
		// Wildcard is always last and swallows the remainder.
		if len(parts) == 0 {
			return nil, true
		}
		return []Arg{{Key: seg.Name, Value: strings.Join(parts, consts.StrSlash)}}, true
	}

	return nil, false
}
