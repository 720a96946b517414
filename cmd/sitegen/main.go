// Package main provides the sitegen CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// siteRoot is the site source directory (content/, data/, templates/).
var siteRoot string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Static-site generator for an academic personal website",
	Long: `sitegen builds a static academic website from Markdown content,
YAML site metadata, and a BibTeX bibliography.

The publications page is generated from the bibliography: entries are
classified into sections by type and keywords, author lists are
formatted with the configured names emphasized, and PDF/DOI links are
attached from the publications configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Pick up SITE_* overrides from a .env file when one is present.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&siteRoot, "root", ".", "Site source directory")
	rootCmd.Version = Version
}
