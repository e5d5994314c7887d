// Package views holds the embedded HTML templates.
package views

import (
	"embed"
	"html/template"
	"net/url"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

// Load parses every page and the shared layout
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"lower":      strings.ToLower,
		"pathescape": url.PathEscape,
	}).ParseFS(files, "templates/*.html")
}
