package view

import "strings"

// Attrs holds node attributes ("class", "href", "src", "alt", ...).
type Attrs map[string]string

// Node is one element of a rendered view. A node with an empty Tag is a text
// node.
type Node struct {
	Tag      string
	Attrs    Attrs
	Text     string
	Children []*Node
}

// El builds an element. Children may be *Node, string (a text node) or nil;
// nil children and empty strings are skipped so optional parts can be passed
// inline.
func El(tag string, attrs Attrs, children ...any) *Node {
	n := &Node{Tag: tag, Attrs: attrs}
	for _, child := range children {
		switch c := child.(type) {
		case *Node:
			if c != nil {
				n.Children = append(n.Children, c)
			}
		case string:
			if c != "" {
				n.Children = append(n.Children, &Node{Text: c})
			}
		}
	}
	return n
}

// Attr returns the named attribute or "".
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// HasClass reports whether class appears in the node's class list.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent concatenates all descendant text.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Tag == "" {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Find returns every descendant of nodes (inclusive) with the given tag, in
// document order.
func Find(nodes []*Node, tag string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Tag == tag {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out
}

// Field returns build(value) when value is non-blank and nil otherwise. It is
// the single way optional record fields reach the tree.
func Field(value string, build func(string) *Node) *Node {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return build(value)
}

// Or returns value, or placeholder when value is blank.
func Or(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// Container is the render target a view owns. The UI paints Nodes.
type Container struct {
	nodes []*Node
}

// Empty removes all children.
func (c *Container) Empty() {
	c.nodes = nil
}

// Append adds nodes, skipping nil.
func (c *Container) Append(nodes ...*Node) {
	for _, n := range nodes {
		if n != nil {
			c.nodes = append(c.nodes, n)
		}
	}
}

// Nodes returns the current children.
func (c *Container) Nodes() []*Node {
	return c.nodes
}

// Links returns the href of every anchor in the container, in order.
func (c *Container) Links() []string {
	anchors := Find(c.nodes, "a")
	out := make([]string, 0, len(anchors))
	for _, a := range anchors {
		out = append(out, a.Attr("href"))
	}
	return out
}
