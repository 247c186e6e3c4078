package ui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: logo, hosted view and its state, API
// host, last request and connection health.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	label, status := m.viewStatus()
	parts := []string{
		bg.Render("artsearch", styles.Logo),
		bg.Render(label, styles.Text.Bold(true)) + bg.Space() + styles.StatusStyle(status).Render(status),
	}

	if host := m.apiHost(); host != "" {
		parts = append(parts, bg.Render("api", styles.FaintText)+bg.Space()+bg.Render(host, styles.MutedText))
	}

	parts = append(parts, m.requestSummary(styles, bg))

	snap := m.snapshot
	switch {
	case snap.IsOffline():
		parts = append(parts, bg.Render(fmt.Sprintf("OFFLINE (%d failures)", snap.ConsecutiveFailures), styles.DangerText))
	case snap.LastError != nil:
		parts = append(parts, bg.Render(truncate(snap.LastError.Error(), 48), styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// viewStatus names the hosted view and its state.
func (m Model) viewStatus() (string, string) {
	switch m.currentView {
	case ViewDetail:
		label := "Artwork"
		if m.detail != nil {
			label += " " + m.detail.ID()
			return label, m.detail.State().String()
		}
		return label, "loading"
	default:
		if m.search != nil {
			return "Search", m.search.State().String()
		}
		return "Search", "idle"
	}
}

func (m Model) apiHost() string {
	if m.client == nil {
		return ""
	}
	u, err := url.Parse(m.client.BaseURL())
	if err != nil {
		return ""
	}
	return u.Host
}

// requestSummary renders the request count and the last request's age and
// duration.
func (m Model) requestSummary(styles Styles, bg BgStyle) string {
	snap := m.snapshot
	if snap.Requests == 0 {
		return bg.Render("no requests yet", styles.FaintText)
	}
	now := m.now
	if now.IsZero() || now.Before(snap.LastRequest) {
		now = time.Now()
	}
	age := humanizeDuration(now.Sub(snap.LastRequest))
	return bg.Render(fmt.Sprintf("%d req", snap.Requests), styles.MutedText) + bg.Spaces(2) +
		bg.Render("last", styles.FaintText) + bg.Space() +
		bg.Render(fmt.Sprintf("%s (%dms)", age, snap.LastDuration.Milliseconds()), styles.Text)
}

// renderCommandBar renders the key hints for the current focus.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct {
		key  string
		desc string
	}

	var commands []cmd
	switch {
	case m.currentView == ViewDetail:
		commands = []cmd{
			{"esc/b", "Back"},
			{"j/k", "Links"},
			{"enter", "Open"},
			{"L", "Log"},
			{"h", "Help"},
			{"e", "Quit"},
		}
	case m.focus == focusQuery:
		commands = []cmd{
			{"enter", "Search"},
			{"tab", "Next field"},
			{"esc", "Leave field"},
			{"ctrl+c", "Quit"},
		}
	default:
		commands = []cmd{
			{"/", "Query"},
			{"tab", "Next field"},
			{"space", "Toggle"},
			{"j/k", "Results"},
			{"enter", "Open"},
			{"L", "Log"},
			{"h", "Help"},
			{"e", "Quit"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
