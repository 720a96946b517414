package publication

import "github.com/cwong/sitegen/internal/bibtex"

// Classify maps an entry to its display section, or "" when the entry
// does not belong on the publications page. Rules are checked in order
// and the first match wins, so a book with peer_reviewed in its
// keywords still lands under Books and Monographs.
//
// An entry tagged peer_reviewed whose type is not enumerated here (a
// @misc, say) deliberately classifies to "" rather than falling back to
// some section; Assemble surfaces those as warnings so they are not
// dropped unnoticed.
func Classify(e bibtex.Entry) string {
	switch {
	case e.Type == "book" || e.HasKeyword("book"):
		return SectionBooks
	case e.HasKeyword("peer_reviewed") && e.Type == "article":
		return SectionArticles
	case e.HasKeyword("peer_reviewed") && e.Type == "incollection":
		return SectionChapters
	case e.HasKeyword("other_publication") || e.HasKeyword("dataset"):
		return SectionOther
	}
	return ""
}
