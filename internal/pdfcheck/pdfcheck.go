// Package pdfcheck validates the hand-maintained PDF mapping against the
// files on disk and the bibliography.
package pdfcheck

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/cwong/sitegen/internal/bibtex"
	"github.com/cwong/sitegen/internal/publication"
)

// doiPattern matches DOIs in extracted PDF text: 10.XXXX/suffix.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// Issue types reported by Verify.
const (
	IssueMissingFile = "missing_file"   // mapped path does not exist
	IssueBadPDF      = "unreadable_pdf" // file exists but does not open as a PDF
	IssueEmptyPDF    = "empty_pdf"      // PDF has no pages
	IssueDOIMismatch = "doi_mismatch"   // DOI inside the PDF disagrees with the entry
	IssueUnknownKey  = "unknown_key"    // mapping key matches no bibliography entry
)

// Issue is one problem found while verifying the mapping.
type Issue struct {
	Type   string `json:"type"`
	Key    string `json:"key"`
	Path   string `json:"path,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Report summarizes a verification run.
type Report struct {
	Checked int     `json:"checked"`
	Issues  []Issue `json:"issues"`
}

// OK reports whether verification found no issues.
func (r Report) OK() bool { return len(r.Issues) == 0 }

// Verify checks every mapped PDF: the path (relative to root) must
// exist and open as a PDF with at least one page, and when a DOI can be
// read out of the first pages it must agree with the entry's doi field.
// Mapping keys with no matching bibliography entry are reported too.
// Mapping keys are checked in sorted order so reports are deterministic.
func Verify(entries []bibtex.Entry, pdfFiles map[string]string, root string) Report {
	byKey := make(map[string]bibtex.Entry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}

	report := Report{Checked: len(pdfFiles)}
	for _, key := range sortedKeys(pdfFiles) {
		relPath := pdfFiles[key]
		entry, known := byKey[key]
		if !known {
			report.Issues = append(report.Issues, Issue{Type: IssueUnknownKey, Key: key, Path: relPath})
			continue
		}
		if issue := checkFile(key, relPath, filepath.Join(root, relPath), entry); issue != nil {
			report.Issues = append(report.Issues, *issue)
		}
	}
	return report
}

func checkFile(key, relPath, fullPath string, entry bibtex.Entry) *Issue {
	if _, err := os.Stat(fullPath); err != nil {
		return &Issue{Type: IssueMissingFile, Key: key, Path: relPath}
	}

	f, r, err := pdf.Open(fullPath)
	if err != nil {
		return &Issue{Type: IssueBadPDF, Key: key, Path: relPath, Detail: err.Error()}
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return &Issue{Type: IssueEmptyPDF, Key: key, Path: relPath}
	}

	want := publication.NormalizeDOI(entry.Field("doi"))
	if want == "" {
		return nil
	}
	found := extractDOI(r)
	if found != "" && found != want {
		return &Issue{
			Type:   IssueDOIMismatch,
			Key:    key,
			Path:   relPath,
			Detail: "pdf contains DOI " + found + ", entry has " + want,
		}
	}
	return nil
}

// extractDOI searches the first few pages for a DOI. Returns "" when
// none is found; most scanned PDFs have no extractable text and that is
// not an issue.
func extractDOI(r *pdf.Reader) string {
	maxPages := 3
	if r.NumPage() < maxPages {
		maxPages = r.NumPage()
	}

	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if doi := findDOI(text); doi != "" {
			return doi
		}
	}
	return ""
}

func findDOI(text string) string {
	for _, match := range doiPattern.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;:)")
		if isValidDOI(match) {
			return publication.NormalizeDOI(match)
		}
	}
	return ""
}

// isValidDOI performs basic shape validation on a DOI candidate.
func isValidDOI(doi string) bool {
	if len(doi) < 10 || !strings.HasPrefix(doi, "10.") {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash != -1 && slash < len(doi)-1
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
