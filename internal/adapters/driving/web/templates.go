package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates holds all page templates, parsed once at startup.
// Each file is a standalone page executed by name.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
