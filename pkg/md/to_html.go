package md

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlRenderer is a pre-configured goldmark instance with the GFM table and
// strikethrough extensions.
var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// ToHTML renders markdown as HTML. Raw HTML in the input is omitted.
func ToHTML(markdown []byte) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := htmlRenderer.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}
