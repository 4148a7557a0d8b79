// Package renderer turns domain structures into markdown, ready to print
// to a terminal or pipe to a printer.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// renderTemplate executes one of the embedded markdown templates with the
// given data. Template errors render as text: the caller is about to print
// whatever we return anyway.
func renderTemplate(name string, data any) string {
	content, err := fs.ReadFile(templates, name)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", name, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
