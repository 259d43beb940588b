package testdata

import (
	"os"
	"strings"
)

// Template is one "METHOD /template" line from a fixture file. The template
// uses the full grammar, optional markers and wildcards included.
type Template struct {
	Method string
	Path   string
}

// Templates loads the template fixtures from a text file. Blank lines and
// lines starting with # are skipped; a line that is not a method/template
// pair is ignored.
func Templates(fileName string) []Template {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil
	}

	var templates []Template

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		method, path, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}

		templates = append(templates, Template{
			Method: method,
			Path:   strings.TrimSpace(path),
		})
	}

	return templates
}
