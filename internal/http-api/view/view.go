// Package view holds the embedded HTML templates.
package view

import (
	"embed"
	"html"
	"html/template"
	"strings"

	"locallibrary/internal/http-api/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Funcs are available to every template.
//
// Stored text is HTML-escaped when it is written, so templates unescape it
// before html/template escapes it again for output.
var Funcs = template.FuncMap{
	"unescape":    html.UnescapeString,
	"statusClass": statusClass,
}

func statusClass(s models.InstanceStatus) string {
	return strings.ToLower(string(s))
}

// Load parses every template. Pages are addressed by their define name.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.tmpl")
}
