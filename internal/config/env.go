package config

import "os"

// Environment variable overrides. Set directly or via a .env file loaded
// by the CLI.
const (
	EnvBaseURL   = "SITE_BASE_URL"
	EnvOutputDir = "SITE_OUTPUT_DIR"
)

// Overrides are build settings taken from the environment.
type Overrides struct {
	BaseURL   string
	OutputDir string
}

// LoadOverrides reads the override variables. Unset variables leave the
// corresponding fields empty and the site.yaml values in force.
func LoadOverrides() Overrides {
	return Overrides{
		BaseURL:   os.Getenv(EnvBaseURL),
		OutputDir: os.Getenv(EnvOutputDir),
	}
}

// Apply folds the overrides into site metadata and returns the effective
// output directory (the site root when no override is set).
func (o Overrides) Apply(site *Site, root string) string {
	if o.BaseURL != "" {
		site.BaseURL = o.BaseURL
	}
	if o.OutputDir != "" {
		return o.OutputDir
	}
	return root
}
