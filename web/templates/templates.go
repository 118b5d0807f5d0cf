// Package templates holds the page shells. Fragment content is produced by
// internal/view and injected pre-escaped; the shells only carry structure.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var FS embed.FS

// Parse loads every page shell from the embedded filesystem.
func Parse() (*template.Template, error) {
	return template.New("").ParseFS(FS, "*.html")
}
