package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwong/sitegen/internal/bibtex"
	"github.com/cwong/sitegen/internal/site"
)

var buildOutput string

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output directory (default: site root, or SITE_OUTPUT_DIR)")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the site",
	Long: `Generate the full site: the home page, each configured prose page,
and the publications page. Every run is a complete regeneration.

Examples:
  sitegen build
  sitegen build --root ~/www/site -o public`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	builder := &site.Builder{
		Root:      siteRoot,
		OutputDir: buildOutput,
		Warnings:  os.Stderr,
	}

	if err := builder.Build(); err != nil {
		var parseErr *bibtex.ParseError
		if errors.As(err, &parseErr) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	fmt.Println("site built")
	return nil
}
