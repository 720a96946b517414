package bibtex

import (
	"regexp"
	"strings"
)

var braceGroup = regexp.MustCompile(`\{([^{}]*)\}`)

var latexReplacer = strings.NewReplacer(
	"``", `"`,
	"''", `"`,
	"`", "'",
	`\&`, "&",
	"~", " ",
	`\textsuperscript`, "",
	`\emph`, "",
)

// CleanText strips the LaTeX markup that commonly survives in BibTeX
// field values: capitalization-preserving braces, TeX quotes, escaped
// ampersands, ties, and a couple of frequent commands. It is meant for
// display fields (title, journal, booktitle), not a TeX interpreter.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	// Peel brace groups from the inside out so {{Nested}} unwraps fully.
	for braceGroup.MatchString(s) {
		s = braceGroup.ReplaceAllString(s, "$1")
	}
	s = latexReplacer.Replace(s)
	return strings.TrimSpace(s)
}
