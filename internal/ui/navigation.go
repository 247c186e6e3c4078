package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/five82/artsearch/internal/artic"
	"github.com/five82/artsearch/internal/nav"
	"github.com/five82/artsearch/internal/view"
)

// activate selects and constructs the view for loc. A non-empty id opens the
// detail view and starts its fetch; anything else opens the search view with
// the query field seeded but not submitted. Every navigation goes through
// here, including the initial location.
func (m *Model) activate(loc nav.Location) tea.Cmd {
	m.gen++
	m.location = loc
	m.selected = 0
	m.content = &view.Container{}
	m.contentViewport.GotoTop()

	var (
		searcher artic.Searcher
		fetcher  artic.ArtworkFetcher
		images   view.ImageURLFunc
	)
	if m.client != nil {
		searcher = m.client
		fetcher = m.client
		images = m.client.ImageURL
	}

	entry := log.WithFields(log.Fields{"location": loc.String(), "gen": m.gen})

	if loc.IsDetail() {
		entry.Info("opening artwork")
		m.currentView = ViewDetail
		m.search = nil
		m.detail = view.NewDetail(m.content, fetcher, images, loc.ID, loc.Query)
		m.input.Blur()
		m.resize()
		return fetchDetailCmd(m.ctx, m.gen, m.detail)
	}

	entry.Info("opening search")
	m.currentView = ViewSearch
	m.detail = nil
	m.search = view.NewSearch(m.content, searcher, images, m.sim, loc.Query)
	m.slow, m.fail = false, false
	m.input.SetValue(loc.Query)
	m.input.CursorEnd()
	m.resize()
	return m.setFocus(focusQuery)
}

// follow navigates to href as if the link had been clicked.
func (m *Model) follow(href string) tea.Cmd {
	log.WithField("href", href).Debug("following link")
	return m.activate(nav.Parse(href))
}

// followSelected follows the highlighted link, if any.
func (m *Model) followSelected() tea.Cmd {
	links := m.links()
	if m.selected < 0 || m.selected >= len(links) {
		return nil
	}
	return m.follow(links[m.selected])
}

// Location returns the location of the hosted view.
func (m Model) Location() nav.Location {
	return m.location
}

// CurrentView returns the hosted view kind.
func (m Model) CurrentView() View {
	return m.currentView
}

func (m Model) links() []string {
	if m.content == nil {
		return nil
	}
	return m.content.Links()
}

// linksFocused reports whether link selection is live: always in the detail
// view, and in the search view once focus has moved into the results.
func (m Model) linksFocused() bool {
	return m.currentView == ViewDetail || m.focus == focusResults
}

func (m *Model) moveSelection(delta int) {
	m.selectLink(m.selected + delta)
}

// selectLink clamps idx into range and scrolls the link into view.
func (m *Model) selectLink(idx int) {
	n := len(m.links())
	if n == 0 {
		m.selected = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	m.selected = idx
	m.refreshContent()
}

// Fetch commands and their results

type searchResultMsg struct {
	gen uint64
	res view.SearchResult
}

type detailResultMsg struct {
	gen uint64
	res view.DetailResult
}

func runSearchCmd(ctx context.Context, gen uint64, search *view.Search, sub view.Submission) tea.Cmd {
	return func() tea.Msg {
		return searchResultMsg{gen: gen, res: search.Run(ctx, sub)}
	}
}

func fetchDetailCmd(ctx context.Context, gen uint64, detail *view.Detail) tea.Cmd {
	return func() tea.Msg {
		return detailResultMsg{gen: gen, res: detail.Run(ctx)}
	}
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	entry := log.WithFields(log.Fields{"seq": msg.res.Seq, "query": msg.res.Query})
	if msg.gen != m.gen || m.search == nil {
		entry.Debug("discarded search result for a view no longer shown")
		return m, nil
	}
	if !m.search.Complete(msg.res) {
		entry.Debug("discarded stale search result")
		return m, nil
	}

	switch {
	case errors.Is(msg.res.Err, view.ErrSimulated):
		entry.Warn("simulated search failure")
	case msg.res.Err != nil:
		entry.WithError(msg.res.Err).Warn("search failed")
	default:
		entry.WithField("items", len(msg.res.Items)).Info("search complete")
	}

	m.selected = 0
	m.refreshContent()
	return m, fetchSnapshotCmd(m.store)
}

func (m Model) handleDetailResult(msg detailResultMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.detail == nil {
		log.WithField("gen", msg.gen).Debug("discarded artwork result for a view no longer shown")
		return m, nil
	}
	m.detail.Complete(msg.res)

	entry := log.WithField("id", m.detail.ID())
	switch m.detail.State() {
	case view.DetailFailed:
		entry.WithError(msg.res.Err).Warn("artwork fetch failed")
	case view.DetailNotFound:
		entry.Info("artwork not found")
	default:
		entry.Info("artwork loaded")
	}

	m.selected = 0
	m.refreshContent()
	return m, fetchSnapshotCmd(m.store)
}
