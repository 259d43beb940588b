// Package docs renders a registry's route table for humans, as an HTML page
// or as aligned plain text. Handy for dumping the routes an application
// registered, and for generated API documentation.
package docs

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"

	uriroutes "github.com/WilkinsonK/uri-routes"
)

// RoutesHTML renders the registry's route table as a standalone HTML page.
func RoutesHTML(registry *uriroutes.Registry) string {
	b := element.NewBuilder()
	element.RenderComponents(b, routesPage{Routes: registry.Routes()})
	return b.String()
}

// routesPage is the HTML component for a full route table page.
type routesPage struct {
	Routes []uriroutes.RouteInfo
}

func (p routesPage) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T("Route Table"),
			b.Style().T(`
				body { font-family: Arial, sans-serif; max-width: 900px; margin: 0 auto; padding: 20px; }
				table { border-collapse: collapse; width: 100%; }
				th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
				th { background: #e9ecef; }
				code { background: #f4f4f4; padding: 1px 4px; }
				.required { color: #721c24; }
				.optional { color: #155724; }
			`),
		),
		b.Body().R(
			b.H1().T("Route Table"),
			b.P().T(strconv.Itoa(len(p.Routes))+" registered routes"),
			b.Table().R(
				b.Tr().R(
					b.Th().T("Method"),
					b.Th().T("Name"),
					b.Th().T("Template"),
					b.Th().T("Arguments"),
				),
				b.Wrap(func() {
					for _, route := range p.Routes {
						element.RenderComponents(b, routeRow{Route: route})
					}
				}),
			),
		),
	)
	return nil
}

// routeRow is the HTML component for a single route table row.
type routeRow struct {
	Route uriroutes.RouteInfo
}

func (r routeRow) Render(b *element.Builder) any {
	b.Tr().R(
		b.Td().T(r.Route.Method),
		b.Td().T(r.Route.Name),
		b.Td().R(
			b.Code().T(r.Route.Template),
		),
		b.Td().R(
			b.Wrap(func() {
				for i, arg := range r.Route.Args {
					if i > 0 {
						b.T(", ")
					}

					b.Span("class", argClass(arg)).T(arg.Name + " (" + argLabel(arg) + ")")
				}
			}),
		),
	)
	return nil
}

func argClass(arg uriroutes.ArgSpec) string {
	if arg.Required {
		return "required"
	}
	return "optional"
}

func argLabel(arg uriroutes.ArgSpec) string {
	switch {
	case arg.Wildcard:
		return "wildcard"
	case arg.Required:
		return "required"
	default:
		return "optional"
	}
}

// RoutesText renders the registry's route table as an aligned text table.
func RoutesText(registry *uriroutes.Registry) (string, error) {
	var buf strings.Builder

	table := tablewriter.NewTable(&buf)
	table.Header("Method", "Name", "Template", "Arguments")

	routes := registry.Routes()
	data := make([][]string, len(routes))

	for i, route := range routes {
		labels := make([]string, len(route.Args))
		for j, arg := range route.Args {
			labels[j] = arg.Name + " (" + argLabel(arg) + ")"
		}

		data[i] = []string{route.Method, route.Name, route.Template, strings.Join(labels, ", ")}
	}

	if err := table.Bulk(data); err != nil {
		return "", serr.Wrap(err, "could not load route rows")
	}

	if err := table.Render(); err != nil {
		return "", serr.Wrap(err, "could not render route table")
	}

	return buf.String(), nil
}
