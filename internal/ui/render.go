package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artsearch/internal/view"
)

// refreshContent repaints the hosted view's container into the content
// viewport and keeps the selected link on screen.
func (m *Model) refreshContent() {
	content, linkLines := m.paintContent()
	m.contentViewport.SetContent(content)

	if !m.linksFocused() || m.selected >= len(linkLines) {
		return
	}
	line := linkLines[m.selected]
	switch {
	case line < m.contentViewport.YOffset:
		m.contentViewport.SetYOffset(line)
	case line >= m.contentViewport.YOffset+m.contentViewport.Height:
		m.contentViewport.SetYOffset(line - m.contentViewport.Height + 1)
	}
}

// paintContent renders the container and returns the line each link starts
// on, in document order.
func (m Model) paintContent() (string, []int) {
	selected := -1
	if m.linksFocused() {
		selected = m.selected
	}
	p := painter{
		styles:   m.theme.Styles(),
		theme:    m.theme,
		width:    maxInt(m.width-2, 20),
		selected: selected,
		spinner:  m.spinner.View(),
	}
	if m.content != nil {
		for _, n := range m.content.Nodes() {
			p.block(n, " ")
		}
	}
	return strings.Join(p.lines, "\n"), p.linkLines
}

// painter turns a node tree into styled terminal lines.
type painter struct {
	styles   Styles
	theme    Theme
	width    int
	selected int
	spinner  string

	lines     []string
	linkLines []int
	links     int
}

func (p *painter) block(n *view.Node, indent string) {
	switch n.Tag {
	case "":
		p.emit(indent, p.styles.Text.Render(n.Text))
	case "p":
		p.emit(indent, p.paragraph(n))
	case "h2":
		title := p.inline(n, p.styles.Heading.Foreground(lipgloss.Color(p.theme.Accent)))
		p.emit(indent, title)
		p.emit(indent, p.styles.FaintText.Render(repeatRune('─', minInt(lipgloss.Width(title), p.width))))
	case "h3":
		p.emit(indent, p.inline(n, p.styles.Heading))
	case "ol":
		for i, li := range n.Children {
			p.listItem(i+1, li, indent)
		}
	case "img":
		p.emit(indent, p.styles.FaintText.Render("▣ ")+p.styles.InfoText.Render(truncateMiddle(n.Attr("src"), p.width-len(indent)-2)))
	case "a":
		p.emit(indent, p.link(n))
	case "div":
		if n.HasClass("img-placeholder") {
			p.placeholder(n, indent)
			return
		}
		for _, c := range n.Children {
			p.block(c, indent)
		}
	default:
		for _, c := range n.Children {
			p.block(c, indent)
		}
	}
}

// paragraph styles a p element by class.
func (p *painter) paragraph(n *view.Node) string {
	switch {
	case n.HasClass("error"):
		return p.inline(n, p.styles.DangerText)
	case n.HasClass("loading"):
		return p.spinner + " " + p.inline(n, p.styles.MutedText)
	case n.HasClass("empty"), n.HasClass("subtitle"):
		return p.inline(n, p.styles.MutedText)
	case n.HasClass("credit"), n.HasClass("department"):
		return p.inline(n, p.styles.FaintText)
	default:
		return p.inline(n, p.styles.Text)
	}
}

// inline renders n's children on one logical line.
func (p *painter) inline(n *view.Node, base lipgloss.Style) string {
	var b strings.Builder
	for _, c := range n.Children {
		switch c.Tag {
		case "":
			b.WriteString(base.Render(c.Text))
		case "a":
			b.WriteString(p.link(c))
		default:
			b.WriteString(p.inline(c, base))
		}
	}
	return b.String()
}

// link renders an anchor and records the line it lands on.
func (p *painter) link(a *view.Node) string {
	idx := p.links
	p.links++
	p.linkLines = append(p.linkLines, len(p.lines))

	text := a.TextContent()
	if idx == p.selected {
		return p.styles.Selected.Bold(true).Render("▸ " + text)
	}
	return p.styles.Link.Render(text)
}

// listItem renders one numbered entry. Text comes before the thumbnail.
func (p *painter) listItem(num int, li *view.Node, indent string) {
	prefix := fmt.Sprintf("%2d. ", num)
	inner := indent + strings.Repeat(" ", len(prefix))
	start := len(p.lines)

	var images []*view.Node
	for _, c := range li.Children {
		if c.Tag == "img" || c.HasClass("img-placeholder") {
			images = append(images, c)
			continue
		}
		p.block(c, inner)
	}
	for _, c := range images {
		p.block(c, inner)
	}

	if start < len(p.lines) {
		p.lines[start] = indent + p.styles.MutedText.Render(prefix) + strings.TrimPrefix(p.lines[start], inner)
	}
	p.lines = append(p.lines, "")
}

// placeholder renders the no-image stand-in. The large variant is a box.
func (p *painter) placeholder(n *view.Node, indent string) {
	text := n.TextContent()
	if !n.HasClass("large") {
		p.emit(indent, p.styles.MutedText.Render("[ "+text+" ]"))
		return
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.theme.BorderMuted)).
		Foreground(lipgloss.Color(p.theme.Muted)).
		Width(28).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
	p.emit(indent, box)
}

// emit wraps s to the painter width and appends it with indent.
func (p *painter) emit(indent, s string) {
	width := maxInt(p.width-len(indent), 10)
	if lipgloss.Width(s) > width {
		s = lipgloss.NewStyle().Width(width).Render(s)
	}
	for _, line := range strings.Split(s, "\n") {
		p.lines = append(p.lines, indent+line)
	}
}
