package view

import "testing"

func TestEl_SkipsNilAndEmptyChildren(t *testing.T) {
	var missing *Node
	n := El("div", Attrs{"class": "meta big"}, "a", nil, "", missing, El("span", nil, "b"), 42)
	if len(n.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(n.Children))
	}
	if n.TextContent() != "ab" {
		t.Fatalf("TextContent = %q, want ab", n.TextContent())
	}
	if !n.HasClass("big") || n.HasClass("bi") {
		t.Fatalf("HasClass mismatch for %q", n.Attr("class"))
	}
}

func TestField(t *testing.T) {
	build := func(v string) *Node { return El("p", nil, v) }
	if Field("  ", build) != nil {
		t.Fatalf("Field blank should be nil")
	}
	if got := Field(" x ", build); got == nil || got.TextContent() != "x" {
		t.Fatalf("Field = %#v, want trimmed paragraph", got)
	}
}

func TestOr(t *testing.T) {
	if Or("", "p") != "p" || Or(" ", "p") != "p" || Or("v", "p") != "v" {
		t.Fatalf("Or mismatch")
	}
}

func TestContainer(t *testing.T) {
	var c Container
	c.Append(nil, El("a", Attrs{"href": "?q=1"}), El("p", nil, El("a", Attrs{"href": "?q=2"})))
	if len(c.Nodes()) != 2 {
		t.Fatalf("nodes = %d, want 2", len(c.Nodes()))
	}
	links := c.Links()
	if len(links) != 2 || links[0] != "?q=1" || links[1] != "?q=2" {
		t.Fatalf("Links = %v", links)
	}
	c.Empty()
	if len(c.Nodes()) != 0 || len(c.Links()) != 0 {
		t.Fatalf("Empty left children behind")
	}
}
