package publication

import (
	"html"
	"strings"

	"github.com/cwong/sitegen/internal/bibtex"
)

// Venue formats the publication venue line for an entry. The shape
// depends on the entry type; unknown types and missing fields degrade to
// whatever is available (legacy entries are allowed to be incomplete).
// The result is HTML-safe on the same terms as FormatNames.
func Venue(e bibtex.Entry, emphasize map[string]bool) string {
	switch e.Type {
	case "article":
		return articleVenue(e)
	case "book":
		return html.EscapeString(e.Field("publisher"))
	case "incollection":
		return chapterVenue(e, emphasize)
	case "techreport":
		return html.EscapeString(e.Field("institution"))
	}
	return ""
}

func articleVenue(e bibtex.Entry) string {
	var b strings.Builder
	b.WriteString(html.EscapeString(bibtex.CleanText(e.Field("journal"))))
	if volume := e.Field("volume"); volume != "" {
		b.WriteString(" " + html.EscapeString(volume))
		if number := e.Field("number"); number != "" {
			b.WriteString("(" + html.EscapeString(number) + ")")
		}
	}
	if pages := cleanPages(e.Field("pages")); pages != "" {
		b.WriteString(": " + html.EscapeString(pages))
	}
	return b.String()
}

func chapterVenue(e bibtex.Entry, emphasize map[string]bool) string {
	var b strings.Builder
	b.WriteString("In " + html.EscapeString(bibtex.CleanText(e.Field("booktitle"))))
	if editor := e.Field("editor"); editor != "" {
		editors, _ := FormatNames(editor, emphasize)
		b.WriteString(". Edited by " + editors)
	}
	if publisher := e.Field("publisher"); publisher != "" {
		b.WriteString(". " + html.EscapeString(publisher))
	}
	if pages := cleanPages(e.Field("pages")); pages != "" {
		b.WriteString(", pp. " + html.EscapeString(pages))
	}
	return b.String()
}

// cleanPages rewrites the TeX page range dash.
func cleanPages(pages string) string {
	return strings.ReplaceAll(pages, "--", "-")
}
