package publication

import (
	"fmt"
	"html/template"
	"sort"
	"strconv"

	"github.com/cwong/sitegen/internal/bibtex"
)

// Options configures the bibliography-to-sections transform.
type Options struct {
	// PDFFiles maps citation keys to relative PDF paths. Maintained by
	// hand outside the bibliography; keys with no mapping simply get no
	// PDF link.
	PDFFiles map[string]string
	// EmphasizeNames are the exact display-form names to wrap in <em>.
	EmphasizeNames []string
}

// Warning flags an entry that carries peer_reviewed but classified to no
// section, so silently dropped entries are visible at build time.
type Warning struct {
	Key  string
	Type string
}

func (w Warning) String() string {
	return fmt.Sprintf("entry %q is tagged peer_reviewed but its type %q maps to no section; it will not be listed", w.Key, w.Type)
}

// Assemble classifies, formats, and orders entries into the fixed
// section structure. All four sections are always present, in page
// order; sections with no matching entries stay empty. Within a section
// entries sort by year descending, with source order preserved for equal
// years, so output is deterministic for a fixed bibliography.
func Assemble(entries []bibtex.Entry, opts Options) ([]Section, []Warning) {
	emphasize := EmphasisSet(opts.EmphasizeNames)
	grouped := make(map[string][]Publication, len(SectionOrder))
	var warnings []Warning

	for _, e := range entries {
		section := Classify(e)
		if section == "" {
			if e.HasKeyword("peer_reviewed") {
				warnings = append(warnings, Warning{Key: e.Key, Type: e.Type})
			}
			continue
		}
		grouped[section] = append(grouped[section], format(e, emphasize, opts.PDFFiles))
	}

	sections := make([]Section, 0, len(SectionOrder))
	for _, name := range SectionOrder {
		items := grouped[name]
		sort.SliceStable(items, func(i, j int) bool {
			return yearValue(items[i].Year) > yearValue(items[j].Year)
		})
		sections = append(sections, Section{Title: name, Items: items})
	}
	return sections, warnings
}

// format builds the render-ready view of one entry.
func format(e bibtex.Entry, emphasize map[string]bool, pdfFiles map[string]string) Publication {
	pub := Publication{
		Year:  e.Field("year"),
		Title: bibtex.CleanText(e.Field("title")),
		Venue: template.HTML(Venue(e, emphasize)),
		Note:  e.Field("note"),
		Links: ResolveLinks(e, pdfFiles),
	}

	// An entry with editors and no authors is an edited volume; its name
	// line carries the Editor/Editors marker.
	if editor := e.Field("editor"); editor != "" && e.Field("author") == "" {
		names, count := FormatNames(editor, emphasize)
		label := "Editor"
		if count > 1 {
			label = "Editors"
		}
		pub.AuthorsHTML = template.HTML(names + ", " + label)
		pub.IsEditedVolume = true
	} else {
		authors, _ := FormatNames(e.Field("author"), emphasize)
		pub.AuthorsHTML = template.HTML(authors)
	}

	return pub
}

// yearValue parses a year field for sorting; unparseable or missing
// years sort last.
func yearValue(year string) int {
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return n
}
