package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"heading", "# Teaching", "<h1>Teaching</h1>"},
		{"paragraph", "Plain prose.", "<p>Plain prose.</p>"},
		{"link", "[CV](cv.pdf)", `<a href="cv.pdf">CV</a>`},
		{"table", "| A | B |\n|---|---|\n| 1 | 2 |", "<table>"},
		{"fenced code", "```\nx <- 1\n```", "<pre><code>"},
		{"raw html omitted", "<script>alert(1)</script>", "raw HTML omitted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render([]byte(tt.src))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Render(%q) = %q, want substring %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestRender_TrimsSurroundingWhitespace(t *testing.T) {
	got, err := Render([]byte("\n\n# Title\n\n"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(got, "<h1") {
		t.Errorf("Render() = %q, want output starting with the heading", got)
	}
}
