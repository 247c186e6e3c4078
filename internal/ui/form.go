package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/five82/artsearch/internal/view"
)

// formFocus is the search view control holding keyboard focus.
type formFocus int

const (
	focusQuery formFocus = iota
	focusSlow
	focusFail
	focusSubmit
	focusResults
)

const (
	queryLabel       = "Search"
	queryPlaceholder = "e.g. Monet"
	slowLabel        = "Simulate slow network"
	failLabel        = "Simulate error"
	submitLabel      = "Search"

	headerLines       = 2
	formLines         = 3
	queryFieldPadding = 12
)

// focusOrder returns the controls tab moves through. The results list joins
// the ring only when it has links.
func (m Model) focusOrder() []formFocus {
	order := []formFocus{focusQuery, focusSlow, focusFail, focusSubmit}
	if len(m.links()) > 0 {
		order = append(order, focusResults)
	}
	return order
}

// setFocus moves focus to f, focusing or blurring the query input to match.
func (m *Model) setFocus(f formFocus) tea.Cmd {
	if f == focusResults && len(m.links()) == 0 {
		f = focusSubmit
	}
	m.focus = f
	var cmd tea.Cmd
	if f == focusQuery {
		cmd = m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.refreshContent()
	return cmd
}

// moveFocus steps through focusOrder, wrapping at both ends.
func (m *Model) moveFocus(delta int) tea.Cmd {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return m.setFocus(order[idx])
}

// handleQueryKey processes keys while the query field has focus.
func (m Model) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submitSearch()
	case key.Matches(msg, m.keys.NextField):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Blur):
		return m, m.setFocus(focusSubmit)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSearchKey processes keys for the search view when focus is outside
// the query field. Enter submits from any form control, like implicit form
// submission; space toggles checkboxes and presses the button.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.FocusQuery):
		return m, m.setFocus(focusQuery)

	case key.Matches(msg, m.keys.Toggle):
		switch m.focus {
		case focusSlow:
			m.slow = !m.slow
		case focusFail:
			m.fail = !m.fail
		case focusSubmit:
			return m, m.submitSearch()
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.focus == focusResults {
			return m, m.followSelected()
		}
		return m, m.submitSearch()

	case key.Matches(msg, m.keys.Down):
		if m.focus != focusResults {
			return m, m.setFocus(focusResults)
		}
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		if m.focus == focusResults {
			m.moveSelection(-1)
		}
	case key.Matches(msg, m.keys.Top):
		if m.focus == focusResults {
			m.selectLink(0)
		}
	case key.Matches(msg, m.keys.Bottom):
		if m.focus == focusResults {
			m.selectLink(len(m.links()) - 1)
		}
	case key.Matches(msg, m.keys.HalfPageDown):
		m.contentViewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.contentViewport.HalfViewUp()
	}
	return m, nil
}

// submitSearch hands the form to the search view. A refused submission
// (blank query) does nothing.
func (m *Model) submitSearch() tea.Cmd {
	if m.search == nil {
		return nil
	}
	sub, ok := m.search.Submit(view.Form{Query: m.input.Value(), Slow: m.slow, Fail: m.fail})
	if !ok {
		return nil
	}
	log.WithFields(log.Fields{
		"seq":   sub.Seq,
		"query": sub.Query,
		"slow":  sub.Slow,
		"fail":  sub.Fail,
	}).Info("search submitted")

	m.selected = 0
	m.contentViewport.GotoTop()
	m.refreshContent()
	return runSearchCmd(m.ctx, m.gen, m.search, sub)
}

// renderForm renders the query field, the two checkboxes and the button.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)
	focused := styles.Selected.Bold(true)

	label := styles.MutedText
	if m.focus == focusQuery {
		label = styles.AccentText.Bold(true)
	}
	field := bg.Render(padRight(queryLabel, 8), label) + bg.Render("[", styles.FaintText) +
		m.input.View() + bg.Render("]", styles.FaintText)

	checkbox := func(text string, checked bool, f formFocus) string {
		mark := "[ ]"
		if checked {
			mark = "[x]"
		}
		style := styles.Text
		if m.focus == f {
			style = focused
		}
		return bg.Render(mark+" "+text, style)
	}

	button := styles.AccentText.Render("< " + submitLabel + " >")
	if m.focus == focusSubmit {
		button = focused.Render("< " + submitLabel + " >")
	}

	controls := bg.Join([]string{
		checkbox(slowLabel, m.slow, focusSlow),
		checkbox(failLabel, m.fail, focusFail),
		button,
	}, "   ")

	rule := styles.FaintText.Render(repeatRune('─', maxInt(m.width, 1)))
	return " " + field + "\n " + controls + "\n" + rule
}
