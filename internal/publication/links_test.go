package publication

import (
	"reflect"
	"testing"
)

func TestDOIURL(t *testing.T) {
	const want = "https://doi.org/10.1177/000276422"

	tests := []struct {
		name  string
		input string
	}{
		{"bare doi", "10.1177/000276422"},
		{"resolver url", "https://doi.org/10.1177/000276422"},
		{"http resolver url", "http://doi.org/10.1177/000276422"},
		{"doi prefix", "doi:10.1177/000276422"},
		{"padded", "  10.1177/000276422  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DOIURL(tt.input); got != want {
				t.Errorf("DOIURL(%q) = %q, want %q", tt.input, got, want)
			}
		})
	}
}

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.1017/S0003055420000611", "10.1017/s0003055420000611"},
		{"https://doi.org/10.1017/S0003055420000611", "10.1017/s0003055420000611"},
		{"DOI:10.1234/abc", "10.1234/abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDOI(tt.input); got != tt.want {
			t.Errorf("NormalizeDOI(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveLinks(t *testing.T) {
	pdfFiles := map[string]string{
		"wong2012jop": "Papers/wong2012jop.pdf",
	}

	t.Run("pdf before doi", func(t *testing.T) {
		e := entry("wong2012jop", "article", map[string]string{
			"doi": "10.1017/S0022381612000712",
		})
		got := ResolveLinks(e, pdfFiles)
		want := []Link{
			{Label: "PDF", URL: "Papers/wong2012jop.pdf"},
			{Label: "DOI", URL: "https://doi.org/10.1017/S0022381612000712"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ResolveLinks() = %v, want %v", got, want)
		}
	})

	t.Run("no mapping and no doi means no links", func(t *testing.T) {
		e := entry("wong2005two", "article", map[string]string{
			"title": "Two Communities",
			"year":  "2005",
		})
		if got := ResolveLinks(e, pdfFiles); len(got) != 0 {
			t.Errorf("ResolveLinks() = %v, want empty", got)
		}
	})

	t.Run("bdsk urls become generic links", func(t *testing.T) {
		e := entry("wong2020citizenship", "article", map[string]string{
			"doi":        "10.1086/708340",
			"bdsk-url-1": "https://doi.org/10.1086/708340",
			"bdsk-url-2": "https://example.edu/appendix",
		})
		got := ResolveLinks(e, nil)
		want := []Link{
			{Label: "DOI", URL: "https://doi.org/10.1086/708340"},
			{Label: "Link", URL: "https://example.edu/appendix"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ResolveLinks() = %v, want %v", got, want)
		}
	})

	t.Run("url field deduplicated", func(t *testing.T) {
		e := entry("wong2019data", "misc", map[string]string{
			"bdsk-url-1": "https://example.org/data",
			"url":        "https://example.org/data",
		})
		got := ResolveLinks(e, nil)
		want := []Link{{Label: "Link", URL: "https://example.org/data"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ResolveLinks() = %v, want %v", got, want)
		}
	})
}
