package ui

import (
	"strings"
	"testing"

	"github.com/five82/artsearch/internal/view"
)

func TestPaintContent_LinkLinesFollowDocumentOrder(t *testing.T) {
	m := newTestModel(t, monetBackend(), "")
	m.content = &view.Container{}
	list := view.El("ol", view.Attrs{"class": "art-list"})
	for _, title := range []string{"First", "Second", "Third"} {
		list.Children = append(list.Children, view.El("li", nil,
			view.El("div", view.Attrs{"class": "img-placeholder"}, "—"),
			view.El("div", view.Attrs{"class": "meta"},
				view.El("h3", nil, view.El("a", view.Attrs{"href": "?id=" + title}, title)),
				view.El("p", view.Attrs{"class": "subtitle"}, "Unknown artist"),
			),
		))
	}
	m.content.Append(list)

	out, linkLines := m.paintContent()
	if len(linkLines) != len(m.links()) {
		t.Fatalf("linkLines = %v, want one per link (%d)", linkLines, len(m.links()))
	}
	lines := strings.Split(out, "\n")
	for i, title := range []string{"First", "Second", "Third"} {
		if i > 0 && linkLines[i] <= linkLines[i-1] {
			t.Fatalf("linkLines not increasing: %v", linkLines)
		}
		if !strings.Contains(lines[linkLines[i]], title) {
			t.Fatalf("line %d = %q, want link %q", linkLines[i], lines[linkLines[i]], title)
		}
	}
	if !strings.Contains(lines[0], " 1. ") {
		t.Fatalf("first line %q should carry the item number", lines[0])
	}
	if !strings.Contains(lines[2], "[ — ]") {
		t.Fatalf("thumbnail placeholder should follow the text, got %q", lines[2])
	}
}

func TestPaintContent_SelectedLinkIsMarkedOnlyWhenFocused(t *testing.T) {
	m := newTestModel(t, monetBackend(), "")
	m.content = &view.Container{}
	m.content.Append(view.El("p", view.Attrs{"class": "back"}, view.El("a", view.Attrs{"href": "?"}, "← Back to search")))

	out, _ := m.paintContent()
	if strings.Contains(out, "▸") {
		t.Fatalf("link marked while form has focus: %q", out)
	}

	m.focus = focusResults
	out, _ = m.paintContent()
	if !strings.Contains(out, "▸ ← Back to search") {
		t.Fatalf("selected link not marked: %q", out)
	}
}

func TestPaintContent_ImageAndLargePlaceholder(t *testing.T) {
	m := newTestModel(t, monetBackend(), "")
	m.content = &view.Container{}
	m.content.Append(
		view.El("h2", nil, "Water Lilies"),
		view.El("img", view.Attrs{"src": "https://img.example/iiif/2/abc/full/600,/0/default.jpg", "alt": "Water Lilies"}),
		view.El("div", view.Attrs{"class": "img-placeholder large"}, "No image"),
	)

	out, linkLines := m.paintContent()
	if len(linkLines) != 0 {
		t.Fatalf("linkLines = %v, want none", linkLines)
	}
	for _, want := range []string{"Water Lilies", "▣ https://img.example/iiif/2/abc/full/600,/0/default.jpg", "No image", "╭"} {
		if !strings.Contains(out, want) {
			t.Fatalf("painted content missing %q:\n%s", want, out)
		}
	}
}

func TestPaintContent_LoadingShowsSpinner(t *testing.T) {
	m := newTestModel(t, monetBackend(), "?id=1")
	out, _ := m.paintContent()
	if !strings.Contains(out, m.spinner.View()+" Fetching artwork...") {
		t.Fatalf("loading line = %q", out)
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 5, "ab…ij"},
		{"abcdefghij", 3, "abc"},
		{"  padded  ", 0, "padded"},
	}
	for _, tt := range tests {
		if got := truncateMiddle(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncateMiddle(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}
