package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artsearch/internal/logtail"
)

const logTailLines = 300

var errNoLogFile = errors.New("no log file configured")

type logsLoadedMsg struct {
	lines []logtail.Line
	err   error
}

// loadLogs reads the tail of the log file off the UI goroutine.
func (m Model) loadLogs() tea.Cmd {
	path := ""
	if m.config != nil {
		path = m.config.LogFile
	}
	return func() tea.Msg {
		if path == "" {
			return logsLoadedMsg{err: errNoLogFile}
		}
		lines, err := logtail.Read(path, logTailLines)
		return logsLoadedMsg{lines: lines, err: err}
	}
}

// handleLogsLoaded stores the lines, following the tail unless the user has
// scrolled up.
func (m *Model) handleLogsLoaded(msg logsLoadedMsg) {
	follow := m.logViewport.AtBottom() || len(m.logLines) == 0
	m.logLines = msg.lines
	m.logErr = msg.err
	m.refreshLogViewport()
	if follow {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) refreshLogViewport() {
	m.logViewport.SetContent(m.renderLogLines())
}

// handleLogsKey processes keyboard input while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Logs, m.keys.Blur):
		m.showLogs = false
	case key.Matches(msg, m.keys.Down):
		m.logViewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logViewport.LineUp(1)
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfViewUp()
	}
	return m, nil
}

// renderLogLines colors each line by level.
func (m Model) renderLogLines() string {
	styles := m.theme.Styles()
	if m.logErr != nil {
		return styles.DangerText.Render("Unable to read log: " + m.logErr.Error())
	}
	if len(m.logLines) == 0 {
		return styles.MutedText.Render("Nothing logged yet.")
	}
	out := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		out = append(out, m.levelStyle(line.Level).Render(line.Text))
	}
	return strings.Join(out, "\n")
}

func (m Model) levelStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "error", "fatal", "panic":
		return styles.DangerText
	case "warning", "warn":
		return styles.WarningText
	case "debug", "trace":
		return styles.FaintText
	default:
		return styles.Text
	}
}

// renderLogs renders the activity log overlay as a titled box.
func (m Model) renderLogs() string {
	title := "Activity log"
	if m.config != nil && m.config.LogFile != "" {
		title += " · " + truncateMiddle(m.config.LogFile, maxInt(m.width/2, 10))
	}
	box := m.renderTitledBox(title, m.logViewport.View(), m.width, m.height-1)
	hint := m.theme.Styles().FaintText.Render(" j/k scroll  g/G top/bottom  esc/L close")
	return box + "\n" + hint
}

// renderTitledBox renders content inside a border with the title embedded
// in the top edge.
func (m Model) renderTitledBox(title, content string, width, height int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.BorderFocus))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := maxInt(width-2, 1)
	titleWidth := lipgloss.Width(title)
	leftPad := maxInt((innerWidth-titleWidth-2)/2, 0)
	rightPad := maxInt(innerWidth-titleWidth-2-leftPad, 0)

	top := bg.Render("┌", borderStyle) +
		bg.Render(repeatRune('─', leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(repeatRune('─', rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottom := bg.Render("└", borderStyle) +
		bg.Render(repeatRune('─', innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		Background(lipgloss.Color(m.theme.SurfaceAlt))
	side := bg.Render("│", borderStyle)

	lines := strings.Split(content, "\n")
	boxHeight := maxInt(height-2, 0)
	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	for i := 0; i < boxHeight; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString(side + contentStyle.Render(line) + side + "\n")
	}
	b.WriteString(bottom)
	return b.String()
}
