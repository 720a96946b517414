// Package bibtex parses BibTeX bibliography sources into structured entries.
package bibtex

import (
	"fmt"
	"strings"
)

// Entry is one bibliographic record. Field names are lowercased at parse
// time; values keep their raw text, which may contain LaTeX markup (see
// CleanText). Entries are not modified after parsing.
type Entry struct {
	Key    string
	Type   string
	Fields map[string]string
}

// Field returns the raw value of a field, looked up case-insensitively.
// Missing fields return "".
func (e Entry) Field(name string) string {
	return e.Fields[strings.ToLower(name)]
}

// HasKeyword reports whether the entry's keywords field contains the given
// keyword. Keywords are split on commas and semicolons and compared
// case-insensitively.
func (e Entry) HasKeyword(kw string) bool {
	kw = strings.ToLower(kw)
	for _, k := range e.KeywordSet() {
		if k == kw {
			return true
		}
	}
	return false
}

// KeywordSet returns the entry's keywords as a lowercased slice in field
// order. Entries without a keywords field return nil.
func (e Entry) KeywordSet() []string {
	raw := e.Field("keywords")
	if raw == "" {
		return nil
	}
	var out []string
	for _, k := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ParseError describes a fatal problem in the bibliography source. It names
// the offending entry key when one was read, and always carries the byte
// offset where parsing stopped.
type ParseError struct {
	Key    string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("bibtex: entry %q: %s", e.Key, e.Msg)
	}
	return fmt.Sprintf("bibtex: at byte %d: %s", e.Offset, e.Msg)
}
