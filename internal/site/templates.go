package site

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/cwong/sitegen/internal/config"
	"github.com/cwong/sitegen/internal/publication"
)

// Templates is the loaded template set. Templates are addressed by file
// name (base.html, index.html, page.html, publications.html).
type Templates struct {
	t *template.Template
}

// LoadTemplates parses every *.html file in the templates directory.
func LoadTemplates(dir string) (*Templates, error) {
	t, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("loading templates from %s: %w", dir, err)
	}
	return &Templates{t: t}, nil
}

// Render executes a named template and returns the result.
func (tp *Templates) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tp.t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// PageContext is the data passed to page body templates.
type PageContext struct {
	Site      *config.Site
	BuildYear int

	PageTitle  string
	PageKicker string
	PageIntro  string
	PageBody   template.HTML

	// Set for the publications page only.
	Publications []publication.Section
}

// BaseContext wraps a rendered page body in the shared layout.
type BaseContext struct {
	Site      *config.Site
	BuildYear int

	PageTitle       string
	PageDescription string
	BodyClass       string
	CurrentURL      string

	Content template.HTML
}
