package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwong/sitegen/internal/bibtex"
	"github.com/cwong/sitegen/internal/config"
	"github.com/cwong/sitegen/internal/pdfcheck"
	"github.com/cwong/sitegen/internal/publication"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output the report as JSON")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the bibliography and PDF mapping",
	Long: `Validate the site's publication data without building anything:
parse the bibliography, warn about peer-reviewed entries that map to no
section, and verify that every mapped PDF exists and matches its entry.`,
	RunE: runCheck,
}

// CheckResult is the JSON report for the check command.
type CheckResult struct {
	Status   string          `json:"status"`
	Entries  int             `json:"entries"`
	Listed   int             `json:"listed"`
	Warnings []string        `json:"warnings,omitempty"`
	Report   pdfcheck.Report `json:"pdf_report"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	pubsCfg, err := config.LoadPublications(siteRoot)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	path := config.BibliographyPath(siteRoot)
	src, err := os.ReadFile(path)
	if err != nil {
		exitWithError(ExitConfigError, "reading %s: %v", path, err)
	}

	entries, err := bibtex.Parse(string(src))
	if err != nil {
		var parseErr *bibtex.ParseError
		if errors.As(err, &parseErr) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	sections, warnings := publication.Assemble(entries, publication.Options{
		PDFFiles:       pubsCfg.PDFFiles,
		EmphasizeNames: pubsCfg.EmphasizeNames,
	})

	listed := 0
	for _, s := range sections {
		listed += len(s.Items)
	}

	report := pdfcheck.Verify(entries, pubsCfg.PDFFiles, siteRoot)

	result := CheckResult{
		Status:  "ok",
		Entries: len(entries),
		Listed:  listed,
		Report:  report,
	}
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.String())
	}
	if !report.OK() {
		result.Status = "issues"
	}

	if checkJSON {
		if err := outputJSON(result); err != nil {
			return err
		}
	} else {
		printCheckResult(result)
	}

	if !report.OK() {
		os.Exit(ExitDataError)
	}
	return nil
}

func printCheckResult(result CheckResult) {
	fmt.Printf("%d entries parsed, %d listed in publications\n", result.Entries, result.Listed)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	fmt.Printf("%d mapped PDFs checked\n", result.Report.Checked)
	for _, issue := range result.Report.Issues {
		line := fmt.Sprintf("%s: %s", issue.Type, issue.Key)
		if issue.Path != "" {
			line += " (" + issue.Path + ")"
		}
		if issue.Detail != "" {
			line += ": " + issue.Detail
		}
		fmt.Println(line)
	}
	if result.Report.OK() {
		fmt.Println("ok")
	}
}
