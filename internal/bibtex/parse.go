package bibtex

import (
	"fmt"
	"strings"
)

// Parse reads a BibTeX source and returns its entries in source order.
// @comment and @preamble blocks are skipped, @string abbreviations are
// resolved (the usual month abbreviations are predefined), and field
// values may use braces, quotes, bare words, and # concatenation.
// Duplicate or malformed citation keys fail the parse.
func Parse(src string) ([]Entry, error) {
	p := &parser{src: src, abbrevs: commonStrings()}
	var entries []Entry
	seen := make(map[string]bool)

	for {
		if !p.skipToEntry() {
			break
		}
		kind := strings.ToLower(p.ident())
		switch kind {
		case "comment", "preamble":
			if err := p.skipGroup(); err != nil {
				return nil, err
			}
		case "string":
			if err := p.parseAbbrev(); err != nil {
				return nil, err
			}
		default:
			entry, err := p.parseEntry(kind)
			if err != nil {
				return nil, err
			}
			if seen[entry.Key] {
				return nil, &ParseError{Key: entry.Key, Offset: p.pos, Msg: "duplicate citation key"}
			}
			seen[entry.Key] = true
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// commonStrings returns the abbreviations predefined by standard BibTeX
// styles. Only the month names matter for bibliography display.
func commonStrings() map[string]string {
	return map[string]string{
		"jan": "January", "feb": "February", "mar": "March",
		"apr": "April", "may": "May", "jun": "June",
		"jul": "July", "aug": "August", "sep": "September",
		"oct": "October", "nov": "November", "dec": "December",
	}
}

type parser struct {
	src     string
	pos     int
	abbrevs map[string]string
}

// skipToEntry advances past inter-entry text to the character after the
// next '@'. Returns false at end of input.
func (p *parser) skipToEntry() bool {
	for p.pos < len(p.src) {
		if p.src[p.pos] == '@' {
			p.pos++
			return true
		}
		p.pos++
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// ident reads an identifier (entry type, field name, abbreviation name).
func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// open consumes the entry's opening delimiter and returns the matching
// closing one.
func (p *parser) open(context string) (byte, error) {
	p.skipSpace()
	if p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			p.pos++
			return '}', nil
		case '(':
			p.pos++
			return ')', nil
		}
	}
	return 0, &ParseError{Offset: p.pos, Msg: fmt.Sprintf("expected { or ( after @%s", context)}
}

// skipGroup skips a balanced brace/paren group (@comment, @preamble
// bodies). A bare @comment with no group runs to end of line.
func (p *parser) skipGroup() error {
	p.skipSpace()
	if p.pos >= len(p.src) || (p.src[p.pos] != '{' && p.src[p.pos] != '(') {
		for p.pos < len(p.src) && p.src[p.pos] != '\n' {
			p.pos++
		}
		return nil
	}
	openCh := p.src[p.pos]
	closeCh := byte('}')
	if openCh == '(' {
		closeCh = ')'
	}
	start := p.pos
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				p.pos++
				return nil
			}
		}
		p.pos++
	}
	return &ParseError{Offset: start, Msg: "unterminated comment block"}
}

// parseAbbrev handles @string{name = value}.
func (p *parser) parseAbbrev() error {
	closeCh, err := p.open("string")
	if err != nil {
		return err
	}
	p.skipSpace()
	name := strings.ToLower(p.ident())
	if name == "" {
		return &ParseError{Offset: p.pos, Msg: "missing @string name"}
	}
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		return &ParseError{Offset: p.pos, Msg: fmt.Sprintf("expected = in @string %s", name)}
	}
	p.pos++
	val, err := p.value("@string " + name)
	if err != nil {
		return err
	}
	p.abbrevs[name] = val
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != closeCh {
		return &ParseError{Offset: p.pos, Msg: fmt.Sprintf("unterminated @string %s", name)}
	}
	p.pos++
	return nil
}

// parseEntry reads the body of @type{key, field = value, ...}.
func (p *parser) parseEntry(entryType string) (Entry, error) {
	closeCh, err := p.open(entryType)
	if err != nil {
		return Entry{}, err
	}

	p.skipSpace()
	keyStart := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ',' && p.src[p.pos] != closeCh {
		p.pos++
	}
	if p.pos >= len(p.src) {
		return Entry{}, &ParseError{Offset: keyStart, Msg: "unterminated entry"}
	}
	key := strings.TrimSpace(p.src[keyStart:p.pos])
	if !validKey(key) {
		return Entry{}, &ParseError{Offset: keyStart, Msg: fmt.Sprintf("malformed citation key %q", key)}
	}

	entry := Entry{Key: key, Type: entryType, Fields: make(map[string]string)}

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return Entry{}, &ParseError{Key: key, Offset: p.pos, Msg: "unterminated entry"}
		}
		if p.src[p.pos] == closeCh {
			p.pos++
			return entry, nil
		}
		if p.src[p.pos] != ',' {
			return Entry{}, &ParseError{Key: key, Offset: p.pos, Msg: "expected , between fields"}
		}
		p.pos++
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == closeCh {
			// Trailing comma before the closing delimiter.
			p.pos++
			return entry, nil
		}

		name := strings.ToLower(p.ident())
		if name == "" {
			return Entry{}, &ParseError{Key: key, Offset: p.pos, Msg: "expected field name"}
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '=' {
			return Entry{}, &ParseError{Key: key, Offset: p.pos, Msg: fmt.Sprintf("expected = after field %s", name)}
		}
		p.pos++
		val, err := p.value(key)
		if err != nil {
			return Entry{}, err
		}
		entry.Fields[name] = collapseSpace(val)
	}
}

// value reads a field value: one or more braced, quoted, or bare parts
// joined by #.
func (p *parser) value(key string) (string, error) {
	var b strings.Builder
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return "", &ParseError{Key: key, Offset: p.pos, Msg: "missing field value"}
		}
		switch c := p.src[p.pos]; {
		case c == '{':
			s, err := p.braced(key)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case c == '"':
			s, err := p.quoted(key)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case isIdentChar(c):
			word := p.ident()
			if expansion, ok := p.abbrevs[strings.ToLower(word)]; ok {
				b.WriteString(expansion)
			} else {
				b.WriteString(word)
			}
		default:
			return "", &ParseError{Key: key, Offset: p.pos, Msg: "expected field value"}
		}
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == '#' {
			p.pos++
			continue
		}
		return b.String(), nil
	}
}

// braced reads a {...} value, keeping nested braces (they carry meaning
// for later cleanup) but dropping the outer pair.
func (p *parser) braced(key string) (string, error) {
	start := p.pos
	p.pos++ // consume {
	depth := 1
	valStart := p.pos
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				val := p.src[valStart:p.pos]
				p.pos++
				return val, nil
			}
		}
		p.pos++
	}
	return "", &ParseError{Key: key, Offset: start, Msg: "unbalanced braces in field value"}
}

// quoted reads a "..." value. Braces inside quotes nest; a quote inside a
// brace group does not terminate the value.
func (p *parser) quoted(key string) (string, error) {
	start := p.pos
	p.pos++ // consume "
	depth := 0
	valStart := p.pos
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				val := p.src[valStart:p.pos]
				p.pos++
				return val, nil
			}
		}
		p.pos++
	}
	return "", &ParseError{Key: key, Offset: start, Msg: "missing closing quote in field value"}
}

// validKey accepts the citation key characters BibTeX tools emit.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == ':' || c == '.' || c == '/' || c == '+':
		default:
			return false
		}
	}
	return true
}

// collapseSpace folds runs of whitespace (including newlines in
// multi-line values) into single spaces and trims the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == ':' || c == '+' || c == '/':
		return true
	}
	return false
}
