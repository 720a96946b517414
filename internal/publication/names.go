package publication

import (
	"html"
	"strings"
)

// nameSeparator joins names in BibTeX author and editor fields.
const nameSeparator = " and "

// NormalizeName converts a "Last, First" BibTeX name to "First Last",
// splitting on the first comma. Names without a comma are taken to be in
// "First Last" form already and pass through unchanged; anything else is
// best effort.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	before, after, found := strings.Cut(name, ",")
	if !found {
		return name
	}
	last := strings.TrimSpace(before)
	first := strings.TrimSpace(after)
	if last == "" || first == "" {
		return name
	}
	return first + " " + last
}

// FormatNames formats a raw author or editor field into a display
// string, returning the number of names it contained. Each name is
// normalized, names exactly matching the emphasis set are wrapped in an
// <em> pair, and the list is joined with ", " plus "and" before the
// final name when there are two or more. The result is HTML-safe: the
// names themselves are escaped, and the <em> pair is the only markup.
func FormatNames(raw string, emphasize map[string]bool) (string, int) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", 0
	}

	var names []string
	for _, part := range strings.Split(raw, nameSeparator) {
		name := NormalizeName(part)
		if name == "" {
			continue
		}
		display := html.EscapeString(name)
		if emphasize[name] {
			display = "<em>" + display + "</em>"
		}
		names = append(names, display)
	}

	switch len(names) {
	case 0:
		return "", 0
	case 1:
		return names[0], 1
	case 2:
		return names[0] + " and " + names[1], 2
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1], len(names)
	}
}

// EmphasisSet builds the lookup used by FormatNames from the configured
// list of exact name strings.
func EmphasisSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.TrimSpace(n)] = true
	}
	return set
}
