package uriroutes

import (
	"errors"

	"github.com/WilkinsonK/uri-routes/core/tpl"
)

// Sentinel errors returned by this package. Errors carry structured context
// (route name, template, argument names) via serr; classify with the Is
// helpers below or errors.Is directly.
var (
	// ErrBadTemplate marks a route template that failed to parse.
	ErrBadTemplate = tpl.ErrBadTemplate

	// ErrMissingArg marks an expansion missing one or more required arguments.
	ErrMissingArg = tpl.ErrMissingArg

	// ErrUnknownArg marks an expansion supplied with undeclared argument keys.
	ErrUnknownArg = tpl.ErrUnknownArg

	// ErrDuplicateRoute marks a registration reusing an existing route name.
	ErrDuplicateRoute = errors.New("route name already registered")

	// ErrDuplicatePath marks a registration whose template produces a path
	// shape an earlier registration already covers.
	ErrDuplicatePath = errors.New("route path already registered")

	// ErrUnknownRoute marks a lookup for a name or path no route covers.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrUnknownMethod marks a registration under an unrecognized method.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrBadURI marks a builder whose parts do not form a valid URI.
	ErrBadURI = errors.New("invalid URI")
)

// IsBadTemplate reports whether err stems from a malformed route template.
func IsBadTemplate(err error) bool { return errors.Is(err, ErrBadTemplate) }

// IsMissingArg reports whether err stems from absent required arguments.
func IsMissingArg(err error) bool { return errors.Is(err, ErrMissingArg) }

// IsUnknownArg reports whether err stems from undeclared argument keys.
func IsUnknownArg(err error) bool { return errors.Is(err, ErrUnknownArg) }
