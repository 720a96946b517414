// Package config loads the data files that drive a site build.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Standard layout of a site source tree.
const (
	DataDir      = "data"
	ContentDir   = "content"
	TemplatesDir = "templates"

	SiteFile         = "site.yaml"
	PublicationsFile = "publications.yaml"
	BibliographyFile = "publications.bib"
)

// Site is the site-wide metadata from data/site.yaml.
type Site struct {
	Title       string    `yaml:"site_title"`
	Description string    `yaml:"description,omitempty"`
	Author      string    `yaml:"author,omitempty"`
	BaseURL     string    `yaml:"base_url,omitempty"`
	Nav         []NavItem `yaml:"nav,omitempty"`
	Pages       []Page    `yaml:"pages,omitempty"`
}

// NavItem is one entry in the site navigation.
type NavItem struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Page describes one Markdown prose page to render.
type Page struct {
	Source string `yaml:"source"` // Markdown file under content/
	Output string `yaml:"output"` // HTML file to write
	Title  string `yaml:"title"`
	Kicker string `yaml:"kicker,omitempty"`
	Intro  string `yaml:"intro,omitempty"`
}

// Publications is the configuration for the publications page from
// data/publications.yaml: the hand-maintained key-to-PDF mapping and the
// names to emphasize in author lists. Both are immutable inputs loaded
// once per build.
type Publications struct {
	PDFFiles       map[string]string `yaml:"pdf_files,omitempty"`
	EmphasizeNames []string          `yaml:"emphasize_names,omitempty"`
}

// SitePath returns the path to site.yaml from a site root.
func SitePath(root string) string {
	return filepath.Join(root, DataDir, SiteFile)
}

// PublicationsPath returns the path to publications.yaml from a site root.
func PublicationsPath(root string) string {
	return filepath.Join(root, DataDir, PublicationsFile)
}

// BibliographyPath returns the path to the BibTeX source from a site root.
func BibliographyPath(root string) string {
	return filepath.Join(root, DataDir, BibliographyFile)
}

// ContentPath returns the path to a content file from a site root.
func ContentPath(root, name string) string {
	return filepath.Join(root, ContentDir, name)
}

// TemplatesPath returns the templates directory from a site root.
func TemplatesPath(root string) string {
	return filepath.Join(root, TemplatesDir)
}

// LoadSite reads site metadata. A site without site.yaml is an error:
// every page needs the shared metadata.
func LoadSite(root string) (*Site, error) {
	path := SitePath(root)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if site.Title == "" {
		return nil, fmt.Errorf("%s: site_title is required", path)
	}

	for i, p := range site.Pages {
		if p.Source == "" || p.Output == "" {
			return nil, fmt.Errorf("%s: pages entry %d must have source and output", path, i+1)
		}
	}

	return &site, nil
}

// LoadPublications reads the publications configuration. A missing file
// is not an error: the page still renders, just without PDF links or
// emphasis.
func LoadPublications(root string) (*Publications, error) {
	path := PublicationsPath(root)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Publications{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pubs Publications
	if err := yaml.Unmarshal(data, &pubs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &pubs, nil
}
