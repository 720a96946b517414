// Package publication turns parsed bibliography entries into the ordered
// section structure the publications page renders.
package publication

import "html/template"

// Section display names, in page order.
const (
	SectionBooks    = "Books and Monographs"
	SectionArticles = "Journal Articles"
	SectionChapters = "Book Chapters"
	SectionOther    = "Other Publications"
)

// SectionOrder is the fixed order sections appear on the page.
var SectionOrder = []string{SectionBooks, SectionArticles, SectionChapters, SectionOther}

// Link is one outbound link on a publication line.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Publication is the render-ready view of one bibliography entry.
// AuthorsHTML and Venue are pre-escaped: the only markup they carry is
// the <em> pair around emphasized names, everything else is HTML-escaped
// here, so templates may inject them as-is. For edited volumes
// AuthorsHTML ends with the Editor/Editors marker so the template can
// render "Names, Editors, Year".
type Publication struct {
	AuthorsHTML    template.HTML `json:"authors"`
	IsEditedVolume bool          `json:"is_edited_volume,omitempty"`
	Year           string        `json:"year"`
	Title          string        `json:"title"`
	Venue          template.HTML `json:"venue"`
	Note           string        `json:"note,omitempty"`
	Links          []Link        `json:"links"`
}

// Section is a named group of publications.
type Section struct {
	Title string        `json:"title"`
	Items []Publication `json:"items"`
}
