package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses an HTML fragment and returns it as the children of a "div" root,
// the element the fragment was parsed in the context of.
// Comments, doctypes and other non-element, non-text nodes are dropped.
func Parse(r io.Reader) (*Node, error) {
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	nodes, err := html.ParseFragment(r, container)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}

	root := NewElement("div", nil)
	for _, n := range nodes {
		root.AppendChild(fromHTML(n))
	}
	return root, nil
}

// ParseString parses an HTML fragment held in a string.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// fromHTML copies an html.Node subtree into a markup tree.
func fromHTML(n *html.Node) *Node {
	switch n.Type {
	case html.TextNode:
		return NewText(n.Data)
	case html.ElementNode:
		var attrs map[string]string
		if len(n.Attr) > 0 {
			attrs = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				key := a.Key
				if a.Namespace != "" {
					key = a.Namespace + ":" + a.Key
				}
				attrs[key] = a.Val
			}
		}

		el := NewElement(n.Data, attrs)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			el.AppendChild(fromHTML(c))
		}
		return el
	default:
		return nil
	}
}
