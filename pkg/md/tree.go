// Package md converts between markup trees, HTML and markdown.
package md

import (
	"regexp"
	"strings"

	"github.com/vomodo/microtools/pkg/markup"
)

// blankRunPattern matches three or more consecutive newlines.
var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// Convert converts a markup tree to markdown.
//
// Every node is converted after its children. Elements without a rule of their
// own emit the converted text of their children unchanged, so Convert is defined
// for any tree. The result is normalized with Normalize.
func Convert(root *markup.Node) string {
	if root == nil {
		return ""
	}
	return Normalize(convertNode(root, ""))
}

// Normalize collapses runs of three or more newlines into a blank line and trims
// surrounding whitespace. Applying it twice gives the same result as applying it once.
func Normalize(s string) string {
	return strings.TrimSpace(blankRunPattern.ReplaceAllString(s, "\n\n"))
}

// convertNode converts n given the kind of the node whose Children hold it.
func convertNode(n *markup.Node, parentKind string) string {
	if n.IsText() {
		return n.Text
	}

	kind := strings.ToLower(n.Kind)
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(convertNode(c, kind))
	}
	content := sb.String()

	switch kind {
	case "strong", "b":
		return "**" + content + "**"
	case "em", "i":
		return "*" + content + "*"
	case "u":
		// Markdown has no underline; the tag is kept as inline HTML.
		return "<u>" + content + "</u>"
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(kind[1] - '0')
		return "\n" + strings.Repeat("#", level) + " " + content + "\n"
	case "p":
		return content + "\n\n"
	case "br":
		return "\n"
	case "ul", "ol":
		return "\n" + content
	case "li":
		return listItemPrefix(parentKind) + content + "\n"
	case "a":
		return "[" + content + "](" + n.Attr("href") + ")"
	case "code":
		if parentKind == "pre" {
			return content
		}
		return "`" + content + "`"
	case "pre":
		return "\n```\n" + content + "```\n"
	case "blockquote":
		return "\n> " + strings.ReplaceAll(content, "\n", "\n> ") + "\n"
	case "hr":
		return "\n---\n"
	case "img":
		return "![" + n.Attr("alt") + "](" + n.Attr("src") + ")"
	default:
		return content
	}
}

// listItemPrefix returns the marker for a list item, which depends only on
// the kind of its immediate parent.
func listItemPrefix(parentKind string) string {
	if parentKind == "ol" {
		return "1. "
	}
	return "- "
}
