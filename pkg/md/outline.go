package md

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is a heading found in a markdown document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// outlineParser is a goldmark instance with GFM extensions so that tables and
// strikethrough are parsed rather than read as headings or paragraphs.
var outlineParser = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
	),
)

// Outline returns the headings of a markdown document in document order.
func Outline(markdown []byte) []Heading {
	if len(markdown) == 0 {
		return nil
	}

	doc := outlineParser.Parser().Parse(text.NewReader(markdown))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var sb strings.Builder
		collectText(h, markdown, &sb)
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  strings.TrimSpace(sb.String()),
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// collectText appends the plain text of all inline descendants of n.
func collectText(n ast.Node, source []byte, sb *strings.Builder) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		default:
			collectText(child, source, sb)
		}
	}
}
