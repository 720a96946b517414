package pdfcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwong/sitegen/internal/bibtex"
)

func TestVerify_MissingFile(t *testing.T) {
	root := t.TempDir()
	entries := []bibtex.Entry{
		{Key: "wong2012jop", Type: "article", Fields: map[string]string{}},
	}

	report := Verify(entries, map[string]string{"wong2012jop": "Papers/wong2012jop.pdf"}, root)

	if report.Checked != 1 {
		t.Errorf("Checked = %d, want 1", report.Checked)
	}
	if len(report.Issues) != 1 || report.Issues[0].Type != IssueMissingFile {
		t.Fatalf("Issues = %+v, want one missing_file", report.Issues)
	}
	if report.Issues[0].Key != "wong2012jop" {
		t.Errorf("Issue.Key = %q", report.Issues[0].Key)
	}
	if report.OK() {
		t.Error("OK() = true with issues present")
	}
}

func TestVerify_UnknownKey(t *testing.T) {
	report := Verify(nil, map[string]string{"ghost2020": "Papers/ghost.pdf"}, t.TempDir())

	if len(report.Issues) != 1 || report.Issues[0].Type != IssueUnknownKey {
		t.Fatalf("Issues = %+v, want one unknown_key", report.Issues)
	}
}

func TestVerify_NotAPDF(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Papers"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "Papers", "fake.pdf"), []byte("not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	entries := []bibtex.Entry{
		{Key: "wong2005two", Type: "article", Fields: map[string]string{}},
	}
	report := Verify(entries, map[string]string{"wong2005two": "Papers/fake.pdf"}, root)

	if len(report.Issues) != 1 || report.Issues[0].Type != IssueBadPDF {
		t.Fatalf("Issues = %+v, want one unreadable_pdf", report.Issues)
	}
}

func TestVerify_EmptyMapping(t *testing.T) {
	report := Verify(nil, nil, t.TempDir())
	if report.Checked != 0 || !report.OK() {
		t.Errorf("Verify(empty) = %+v, want clean report", report)
	}
}

func TestVerify_DeterministicOrder(t *testing.T) {
	mapping := map[string]string{
		"zeta2020":  "Papers/z.pdf",
		"alpha2020": "Papers/a.pdf",
		"mid2020":   "Papers/m.pdf",
	}

	report := Verify(nil, mapping, t.TempDir())
	want := []string{"alpha2020", "mid2020", "zeta2020"}
	if len(report.Issues) != len(want) {
		t.Fatalf("Issues = %+v", report.Issues)
	}
	for i, key := range want {
		if report.Issues[i].Key != key {
			t.Errorf("Issues[%d].Key = %q, want %q", i, report.Issues[i].Key, key)
		}
	}
}

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain doi", "See doi 10.1017/S0022381612000712 for details", "10.1017/s0022381612000712"},
		{"trailing punctuation", "(10.1086/708340).", "10.1086/708340"},
		{"no doi", "No identifiers here", ""},
		{"too short rejected", "10.1/x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findDOI(tt.text); got != tt.want {
				t.Errorf("findDOI(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
