// Package markup provides the in-memory markup tree consumed by the markdown converter.
package markup

import "strings"

// KindText is the kind of text nodes. It matches the DOM nodeName of text nodes,
// so it never collides with an element name.
const KindText = "#text"

// Node is a node in a parsed markup tree.
//
// A tree is owned top-down: the root owns its children. The parent link is a
// non-owning back-reference kept by NewElement and AppendChild; trees built by
// assigning Children directly have no parent links.
type Node struct {
	Kind     string
	Text     string
	Attrs    map[string]string
	Children []*Node

	parent *Node
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// NewElement creates an element node and attaches children in the given order.
// The kind is lower-cased. Nil children are skipped.
func NewElement(kind string, attrs map[string]string, children ...*Node) *Node {
	n := &Node{Kind: strings.ToLower(kind), Attrs: attrs}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// AppendChild attaches c as the last child of n. If c already has a parent it
// is removed from that parent's children first.
func (n *Node) AppendChild(c *Node) {
	if c == nil {
		return
	}
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.Children = append(n.Children, c)
}

func (n *Node) removeChild(c *Node) {
	for i, child := range n.Children {
		if child == c {
			n.Children = append(n.Children[:i:i], n.Children[i+1:]...)
			return
		}
	}
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Kind == KindText
}

// Attr returns the named attribute, or "" when it is absent.
func (n *Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// ParentKind returns the lower-cased kind of the parent, or "" for the root.
func (n *Node) ParentKind() string {
	if n.parent == nil {
		return ""
	}
	return strings.ToLower(n.parent.Kind)
}
