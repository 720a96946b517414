package publication

import "testing"

func TestVenue(t *testing.T) {
	t.Run("article full", func(t *testing.T) {
		e := entry("a", "article", map[string]string{
			"journal": "American Political Science Review",
			"volume":  "114",
			"number":  "4",
			"pages":   "1--22",
		})
		want := "American Political Science Review 114(4): 1-22"
		if got := Venue(e, nil); got != want {
			t.Errorf("Venue() = %q, want %q", got, want)
		}
	})

	t.Run("article without volume", func(t *testing.T) {
		e := entry("a", "article", map[string]string{
			"journal": "Du Bois Review",
			"pages":   "39--78",
		})
		want := "Du Bois Review: 39-78"
		if got := Venue(e, nil); got != want {
			t.Errorf("Venue() = %q, want %q", got, want)
		}
	})

	t.Run("article number without volume omitted", func(t *testing.T) {
		e := entry("a", "article", map[string]string{
			"journal": "Political Behavior",
			"number":  "2",
		})
		if got := Venue(e, nil); got != "Political Behavior" {
			t.Errorf("Venue() = %q, want %q", got, "Political Behavior")
		}
	})

	t.Run("book publisher", func(t *testing.T) {
		e := entry("b", "book", map[string]string{
			"publisher": "Cambridge University Press",
			"address":   "New York",
		})
		if got := Venue(e, nil); got != "Cambridge University Press" {
			t.Errorf("Venue() = %q", got)
		}
	})

	t.Run("chapter with editors", func(t *testing.T) {
		e := entry("c", "incollection", map[string]string{
			"booktitle": "Nations of Immigrants",
			"editor":    "Higley, John and Nieuwenhuysen, John",
			"publisher": "Edward Elgar",
			"pages":     "23--44",
		})
		want := "In Nations of Immigrants. Edited by John Higley and John Nieuwenhuysen. Edward Elgar, pp. 23-44"
		if got := Venue(e, nil); got != want {
			t.Errorf("Venue() = %q, want %q", got, want)
		}
	})

	t.Run("techreport institution", func(t *testing.T) {
		e := entry("t", "techreport", map[string]string{
			"institution": "National Election Studies",
		})
		if got := Venue(e, nil); got != "National Election Studies" {
			t.Errorf("Venue() = %q", got)
		}
	})

	t.Run("unknown type empty", func(t *testing.T) {
		e := entry("m", "misc", map[string]string{"journal": "Ignored"})
		if got := Venue(e, nil); got != "" {
			t.Errorf("Venue() = %q, want empty", got)
		}
	})
}
