// Package site renders the full static site from content, data, and
// templates under a site root.
package site

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cwong/sitegen/internal/bibtex"
	"github.com/cwong/sitegen/internal/config"
	"github.com/cwong/sitegen/internal/markdown"
	"github.com/cwong/sitegen/internal/publication"
)

// PublicationsOutput is the file name of the publications page.
const PublicationsOutput = "published.html"

// Builder runs one full site build. Every run regenerates every page;
// with identical inputs the output is byte-for-byte identical except for
// the build year, which comes from Now.
type Builder struct {
	// Root is the site source tree (content/, data/, templates/).
	Root string
	// OutputDir receives the generated HTML. Empty means the
	// SITE_OUTPUT_DIR override, then the site root.
	OutputDir string
	// Now supplies the build timestamp; nil means time.Now.
	Now func() time.Time
	// Warnings receives non-fatal build diagnostics; nil discards them.
	Warnings io.Writer
}

// LoadSections parses the bibliography under root and assembles the
// publication sections, using the configured PDF mapping and emphasis
// names.
func LoadSections(root string) ([]publication.Section, []publication.Warning, error) {
	pubsCfg, err := config.LoadPublications(root)
	if err != nil {
		return nil, nil, err
	}

	path := config.BibliographyPath(root)
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	entries, err := bibtex.Parse(string(src))
	if err != nil {
		return nil, nil, err
	}

	sections, warnings := publication.Assemble(entries, publication.Options{
		PDFFiles:       pubsCfg.PDFFiles,
		EmphasizeNames: pubsCfg.EmphasizeNames,
	})
	return sections, warnings, nil
}

// Build generates the whole site: the home page, each configured prose
// page, and the publications page.
func (b *Builder) Build() error {
	site, err := config.LoadSite(b.Root)
	if err != nil {
		return err
	}

	outDir := config.LoadOverrides().Apply(site, b.Root)
	if b.OutputDir != "" {
		outDir = b.OutputDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	templates, err := LoadTemplates(config.TemplatesPath(b.Root))
	if err != nil {
		return err
	}

	sections, warnings, err := LoadSections(b.Root)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		b.warnf("warning: %s\n", w)
	}

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	buildYear := now().Year()

	if err := b.buildHome(site, templates, buildYear, outDir); err != nil {
		return err
	}
	for _, page := range site.Pages {
		if err := b.buildProsePage(site, templates, page, buildYear, outDir); err != nil {
			return err
		}
	}
	return b.buildPublications(site, templates, sections, buildYear, outDir)
}

func (b *Builder) buildHome(site *config.Site, templates *Templates, buildYear int, outDir string) error {
	body, err := b.renderContent("index.md")
	if err != nil {
		return err
	}

	inner, err := templates.Render("index.html", PageContext{
		Site:      site,
		BuildYear: buildYear,
		PageBody:  template.HTML(body),
	})
	if err != nil {
		return err
	}

	return b.writePage(outDir, "index.html", templates, BaseContext{
		Site:            site,
		BuildYear:       buildYear,
		PageTitle:       site.Title,
		PageDescription: site.Description,
		BodyClass:       "home",
		CurrentURL:      "index.html",
		Content:         template.HTML(inner),
	})
}

func (b *Builder) buildProsePage(site *config.Site, templates *Templates, page config.Page, buildYear int, outDir string) error {
	body, err := b.renderContent(page.Source)
	if err != nil {
		return err
	}

	inner, err := templates.Render("page.html", PageContext{
		Site:       site,
		BuildYear:  buildYear,
		PageTitle:  page.Title,
		PageKicker: page.Kicker,
		PageIntro:  page.Intro,
		PageBody:   template.HTML(body),
	})
	if err != nil {
		return err
	}

	return b.writePage(outDir, page.Output, templates, BaseContext{
		Site:            site,
		BuildYear:       buildYear,
		PageTitle:       page.Title,
		PageDescription: site.Description,
		BodyClass:       "page",
		CurrentURL:      page.Output,
		Content:         template.HTML(inner),
	})
}

func (b *Builder) buildPublications(site *config.Site, templates *Templates, sections []publication.Section, buildYear int, outDir string) error {
	inner, err := templates.Render("publications.html", PageContext{
		Site:         site,
		BuildYear:    buildYear,
		PageTitle:    "Publications",
		Publications: sections,
	})
	if err != nil {
		return err
	}

	return b.writePage(outDir, PublicationsOutput, templates, BaseContext{
		Site:            site,
		BuildYear:       buildYear,
		PageTitle:       "Publications",
		PageDescription: site.Description,
		BodyClass:       "page",
		CurrentURL:      PublicationsOutput,
		Content:         template.HTML(inner),
	})
}

// renderContent converts one Markdown content file to HTML.
func (b *Builder) renderContent(name string) (string, error) {
	path := config.ContentPath(b.Root, name)
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return markdown.Render(src)
}

// writePage wraps a rendered body in the base layout and writes it out.
func (b *Builder) writePage(outDir, name string, templates *Templates, ctx BaseContext) error {
	html, err := templates.Render("base.html", ctx)
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (b *Builder) warnf(format string, args ...any) {
	if b.Warnings != nil {
		fmt.Fprintf(b.Warnings, format, args...)
	}
}
