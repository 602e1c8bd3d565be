// Package view renders the application's embedded HTML templates.
package view

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.gohtml
var files embed.FS

// Renderer holds the parsed template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(files, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page with the given data.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
