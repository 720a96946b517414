package publication

import (
	"fmt"
	"strings"

	"github.com/cwong/sitegen/internal/bibtex"
)

// doiResolver is the canonical DOI resolver prefix.
const doiResolver = "https://doi.org/"

// ResolveLinks derives the outbound links for an entry: the mapped PDF
// first (the reader most likely wants the document), then the DOI, then
// any extra URLs from BibDesk bdsk-url fields or a url field. Extra
// URLs that duplicate an earlier link or point at the DOI resolver are
// skipped.
func ResolveLinks(e bibtex.Entry, pdfFiles map[string]string) []Link {
	var links []Link

	if path, ok := pdfFiles[e.Key]; ok {
		links = append(links, Link{Label: "PDF", URL: path})
	}

	if doi := e.Field("doi"); doi != "" {
		links = append(links, Link{Label: "DOI", URL: DOIURL(doi)})
	}

	for i := 1; i <= 4; i++ {
		url := e.Field(fmt.Sprintf("bdsk-url-%d", i))
		if url != "" && !strings.Contains(url, "doi.org") && !hasURL(links, url) {
			links = append(links, Link{Label: "Link", URL: url})
		}
	}

	if url := e.Field("url"); url != "" && !strings.Contains(url, "doi.org") && !hasURL(links, url) {
		links = append(links, Link{Label: "Link", URL: url})
	}

	return links
}

// DOIURL returns the resolver URL for a DOI field value. A bare DOI and
// one already carrying the resolver host produce the identical URL.
func DOIURL(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return doiResolver + doi
}

// NormalizeDOI strips resolver prefixes and doi: labels and lowercases,
// so DOIs from different sources compare equal.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return strings.ToLower(doi)
}

func hasURL(links []Link, url string) bool {
	for _, l := range links {
		if l.URL == url {
			return true
		}
	}
	return false
}
