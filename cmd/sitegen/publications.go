package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwong/sitegen/internal/bibtex"
	"github.com/cwong/sitegen/internal/site"
)

func init() {
	rootCmd.AddCommand(publicationsCmd)
}

var publicationsCmd = &cobra.Command{
	Use:   "publications",
	Short: "Print the assembled publication sections as JSON",
	Long: `Print the section structure the publications page is rendered from,
as JSON. Useful for inspecting classification, name formatting, and
links without building the site.`,
	RunE: runPublications,
}

func runPublications(cmd *cobra.Command, args []string) error {
	sections, warnings, err := site.LoadSections(siteRoot)
	if err != nil {
		var parseErr *bibtex.ParseError
		if errors.As(err, &parseErr) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	for _, w := range warnings {
		os.Stderr.WriteString("warning: " + w.String() + "\n")
	}
	return outputJSON(sections)
}
