// Package markdown converts Markdown prose pages to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Render converts Markdown source to an HTML fragment. Tables and fenced
// code blocks are supported; raw HTML in the source is omitted (the
// goldmark default), which is what we want for prose pages.
func Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(bytes.TrimSpace(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
