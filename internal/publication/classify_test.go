package publication

import (
	"testing"

	"github.com/cwong/sitegen/internal/bibtex"
)

func entry(key, entryType string, fields map[string]string) bibtex.Entry {
	if fields == nil {
		fields = map[string]string{}
	}
	return bibtex.Entry{Key: key, Type: entryType, Fields: fields}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		entry bibtex.Entry
		want  string
	}{
		{
			"book by type",
			entry("wong2010boundaries", "book", nil),
			SectionBooks,
		},
		{
			"book by keyword",
			entry("wong2026draft", "misc", map[string]string{"keywords": "book"}),
			SectionBooks,
		},
		{
			"book type wins over peer_reviewed keyword",
			entry("wong2010boundaries", "book", map[string]string{"keywords": "peer_reviewed"}),
			SectionBooks,
		},
		{
			"peer reviewed article",
			entry("wong2012jop", "article", map[string]string{"keywords": "peer_reviewed"}),
			SectionArticles,
		},
		{
			"peer reviewed chapter",
			entry("wong2009belongs", "incollection", map[string]string{"keywords": "peer_reviewed"}),
			SectionChapters,
		},
		{
			"other publication",
			entry("wong1998pilot", "techreport", map[string]string{"keywords": "other_publication"}),
			SectionOther,
		},
		{
			"dataset",
			entry("wong2019data", "misc", map[string]string{"keywords": "dataset"}),
			SectionOther,
		},
		{
			"article without keyword excluded",
			entry("wong2003working", "article", nil),
			"",
		},
		{
			"peer reviewed misc excluded",
			entry("wong2015misc", "misc", map[string]string{"keywords": "peer_reviewed"}),
			"",
		},
		{
			"unrecognized keyword excluded",
			entry("wong2008talk", "misc", map[string]string{"keywords": "invited_talk"}),
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.entry); got != tt.want {
				t.Errorf("Classify(%s) = %q, want %q", tt.entry.Key, got, tt.want)
			}
		})
	}
}
