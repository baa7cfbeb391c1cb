package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fleet"
)

//go:embed *.md
var templates embed.FS

// FleetMarkdown renders the fleet report of 'f' to a markdown string.
func FleetMarkdown(f *fleet.Fleet) string {
	return RenderFleet(NewFleet(f))
}

// RenderFleet renders the Fleet struct to a markdown string.
func RenderFleet(r *Fleet) string {
	partials := map[string]string{
		"fleet_title":  "fleet_title.md",
		"fleet_boats":  "fleet_boats.md",
		"fleet_totals": "fleet_totals.md",
	}
	if len(r.Boats) == 0 {
		partials["fleet_boats"] = "fleet_empty.md"
	}
	return renderTemplate("fleet", "fleet.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
