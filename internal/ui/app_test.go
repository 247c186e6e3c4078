package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/artsearch/internal/artic"
	"github.com/five82/artsearch/internal/config"
	"github.com/five82/artsearch/internal/prefs"
	"github.com/five82/artsearch/internal/view"
)

type fakeBackend struct {
	mu         sync.Mutex
	items      []artic.SearchResultItem
	searchErr  error
	artwork    *artic.ArtworkDetail
	artworkErr error
	queries    []string
	ids        []string
}

func (f *fakeBackend) Search(_ context.Context, query string) ([]artic.SearchResultItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.items, f.searchErr
}

func (f *fakeBackend) Artwork(_ context.Context, id string) (*artic.ArtworkDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, id)
	return f.artwork, f.artworkErr
}

func (f *fakeBackend) ImageURL(imageID string, width int) (string, bool) {
	return artic.ImageURL("https://img.example/iiif/2", imageID, width)
}

func (f *fakeBackend) BaseURL() string {
	return "https://api.example/api/v1"
}

func (f *fakeBackend) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func monetBackend() *fakeBackend {
	return &fakeBackend{
		items: []artic.SearchResultItem{
			{ID: "27992", Title: "Water Lilies", ArtistTitle: "Claude Monet", DateDisplay: "1906", ImageID: "abc"},
			{ID: "16568", Title: "", ArtistTitle: "", DateDisplay: "", ImageID: ""},
		},
		artwork: &artic.ArtworkDetail{
			SearchResultItem: artic.SearchResultItem{ID: "27992", Title: "Water Lilies", ArtistTitle: "Claude Monet", DateDisplay: "1906", ImageID: "abc"},
			MediumDisplay:    "Oil on canvas",
		},
	}
}

func noSleep(context.Context, time.Duration) error { return nil }

func newTestModel(t *testing.T, backend Backend, location string) Model {
	t.Helper()
	m := New(Options{
		Client:     backend,
		Location:   location,
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
		Simulation: view.Simulation{Delay: time.Millisecond, Sleep: noSleep},
	})
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
	spaceKey    = tea.KeyMsg{Type: tea.KeySpace}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func contentText(m Model) string {
	var parts []string
	for _, n := range m.content.Nodes() {
		parts = append(parts, n.TextContent())
	}
	return strings.Join(parts, "\n")
}

func TestNew_SeededQueryIsNotSubmitted(t *testing.T) {
	backend := monetBackend()
	m := newTestModel(t, backend, "?q=Monet")

	if m.CurrentView() != ViewSearch {
		t.Fatalf("CurrentView = %v, want search", m.CurrentView())
	}
	if got := m.input.Value(); got != "Monet" {
		t.Fatalf("query field = %q, want Monet", got)
	}
	if len(m.content.Nodes()) != 0 {
		t.Fatalf("results container should start empty, got %q", contentText(m))
	}
	if backend.searchCount() != 0 {
		t.Fatalf("seeded query must not be searched")
	}
}

func TestSearchThenOpenResultThenBack(t *testing.T) {
	backend := monetBackend()
	m := newTestModel(t, backend, "?q=Monet")

	m, cmd := press(t, m, enterKey)
	if cmd == nil {
		t.Fatal("enter in query field should submit")
	}
	if got := contentText(m); got != "Searching..." {
		t.Fatalf("content while loading = %q, want Searching...", got)
	}

	m = update(t, m, cmd())
	links := m.links()
	if len(links) != 2 || links[0] != "?id=27992&q=Monet" {
		t.Fatalf("links = %v", links)
	}
	if out := m.View(); !strings.Contains(out, "Lilies") || !strings.Contains(out, "(untitled)") {
		t.Fatalf("rendered view missing results:\n%s", out)
	}

	m, _ = press(t, m, escKey)     // leave query field
	m, _ = press(t, m, runes("j")) // into results
	if m.focus != focusResults || m.selected != 0 {
		t.Fatalf("focus = %v selected = %d, want results/0", m.focus, m.selected)
	}

	m, cmd = press(t, m, enterKey)
	if m.CurrentView() != ViewDetail {
		t.Fatalf("CurrentView = %v, want detail", m.CurrentView())
	}
	if loc := m.Location(); loc.ID != "27992" || loc.Query != "Monet" {
		t.Fatalf("Location = %+v", loc)
	}
	if got := contentText(m); got != "Fetching artwork..." {
		t.Fatalf("detail loading content = %q", got)
	}

	m = update(t, m, cmd())
	if m.detail.State() != view.DetailRendered {
		t.Fatalf("detail state = %v, want rendered", m.detail.State())
	}
	if links := m.links(); len(links) != 1 || links[0] != "?q=Monet" {
		t.Fatalf("detail links = %v, want back link", links)
	}

	m, _ = press(t, m, escKey)
	if m.CurrentView() != ViewSearch || m.input.Value() != "Monet" {
		t.Fatalf("after back: view=%v query=%q", m.CurrentView(), m.input.Value())
	}
	if backend.searchCount() != 1 {
		t.Fatalf("back navigation must not search again, got %d searches", backend.searchCount())
	}
}

func TestDetailLocationFetchesOnStart(t *testing.T) {
	backend := monetBackend()
	m := newTestModel(t, backend, "?id=27992&q=Monet")

	if m.CurrentView() != ViewDetail {
		t.Fatalf("CurrentView = %v, want detail", m.CurrentView())
	}
	if m.initCmd == nil {
		t.Fatal("detail location should start a fetch")
	}
	m = update(t, m, m.initCmd())
	if len(backend.ids) != 1 || backend.ids[0] != "27992" {
		t.Fatalf("fetched ids = %v", backend.ids)
	}
	if !strings.Contains(contentText(m), "Oil on canvas") {
		t.Fatalf("detail content missing medium: %q", contentText(m))
	}
}

func TestBlankQueryIsIgnored(t *testing.T) {
	backend := monetBackend()
	m := newTestModel(t, backend, "")

	m, cmd := press(t, m, enterKey)
	if cmd != nil {
		t.Fatal("blank query should not produce a command")
	}
	if m.search.State() != view.SearchIdle || len(m.content.Nodes()) != 0 {
		t.Fatalf("blank submit changed state: %v %q", m.search.State(), contentText(m))
	}
}

func TestSimulatedErrorSkipsNetwork(t *testing.T) {
	backend := monetBackend()
	m := newTestModel(t, backend, "?q=Monet")

	m, _ = press(t, m, escKey)      // submit button
	m, _ = press(t, m, shiftTabKey) // error checkbox
	m, _ = press(t, m, spaceKey)
	if !m.fail || m.slow {
		t.Fatalf("checkboxes slow=%v fail=%v, want only fail", m.slow, m.fail)
	}

	m, cmd := press(t, m, enterKey)
	if cmd == nil {
		t.Fatal("enter on a checkbox should submit")
	}
	m = update(t, m, cmd())

	if got := contentText(m); got != "Search failed: simulated error" {
		t.Fatalf("content = %q", got)
	}
	if backend.searchCount() != 0 {
		t.Fatalf("simulated error must not hit the network")
	}
}

func TestStaleSearchResultIsDiscarded(t *testing.T) {
	backend := monetBackend()
	m := newTestModel(t, backend, "?q=Monet")

	m, first := press(t, m, enterKey)
	m, second := press(t, m, enterKey)

	m = update(t, m, first())
	if m.search.State() != view.SearchSubmitting || contentText(m) != "Searching..." {
		t.Fatalf("stale result rendered: %v %q", m.search.State(), contentText(m))
	}
	m = update(t, m, second())
	if len(m.links()) != 2 {
		t.Fatalf("latest result not rendered: %q", contentText(m))
	}
}

func TestDetailResultAfterNavigatingAwayIsDiscarded(t *testing.T) {
	backend := monetBackend()
	m := newTestModel(t, backend, "?id=27992&q=Monet")
	pending := m.initCmd

	m, _ = press(t, m, escKey)
	if m.CurrentView() != ViewSearch {
		t.Fatalf("CurrentView = %v, want search", m.CurrentView())
	}

	m = update(t, m, pending())
	if m.CurrentView() != ViewSearch || len(m.content.Nodes()) != 0 {
		t.Fatalf("late detail result leaked into search view: %q", contentText(m))
	}
}

func TestSearchFailureRendersMessage(t *testing.T) {
	backend := monetBackend()
	backend.searchErr = &artic.HTTPError{StatusCode: 500}
	m := newTestModel(t, backend, "?q=Monet")

	m, cmd := press(t, m, enterKey)
	m = update(t, m, cmd())
	if got := contentText(m); got != "Search failed: HTTP 500" {
		t.Fatalf("content = %q", got)
	}
	if m.search.State() != view.SearchFailed {
		t.Fatalf("state = %v, want failed", m.search.State())
	}
}

func TestLettersReachQueryField(t *testing.T) {
	m := newTestModel(t, monetBackend(), "?q=Monet")

	for _, r := range []string{"e", "h", "T", "L"} {
		m, _ = press(t, m, runes(r))
	}
	if got := m.input.Value(); got != "MonetehTL" {
		t.Fatalf("query = %q, want letters typed into the field", got)
	}
	if m.showHelp || m.showLogs || m.theme.Name != "Nightfox" {
		t.Fatalf("global keys fired while typing")
	}

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c returned %T, want tea.QuitMsg", cmd())
	}
}

func TestCycleThemePersists(t *testing.T) {
	m := newTestModel(t, monetBackend(), "")
	m, _ = press(t, m, escKey)
	m, _ = press(t, m, runes("T"))

	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", p.Theme)
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, monetBackend(), "?id=1")
	m, _ = press(t, m, runes("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("help overlay not shown")
	}
	m, _ = press(t, m, runes("x"))
	if m.showHelp {
		t.Fatal("help overlay should close on any key")
	}
}

func TestLogOverlayShowsTail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "artsearch.log")
	body := "time=\"2026-10-19T10:00:00Z\" level=info msg=\"opening search\"\n" +
		"time=\"2026-10-19T10:00:01Z\" level=warning msg=\"search failed\"\n"
	if err := os.WriteFile(logPath, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := config.Default()
	cfg.LogFile = logPath

	m := New(Options{
		Client:    monetBackend(),
		Config:    &cfg,
		Location:  "?id=1",
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})

	m, cmd := press(t, m, runes("L"))
	if !m.showLogs || cmd == nil {
		t.Fatal("L should open the log overlay and load the log")
	}
	m = update(t, m, cmd())
	if len(m.logLines) != 2 || m.logLines[1].Level != "warning" {
		t.Fatalf("logLines = %+v", m.logLines)
	}
	if !strings.Contains(m.View(), "failed") {
		t.Fatalf("overlay missing log text:\n%s", m.View())
	}

	m, _ = press(t, m, escKey)
	if m.showLogs {
		t.Fatal("esc should close the log overlay")
	}
	if m.CurrentView() != ViewDetail {
		t.Fatal("closing the overlay must not navigate")
	}
}

func TestLoadLogsWithoutConfig(t *testing.T) {
	m := newTestModel(t, monetBackend(), "")
	msg := m.loadLogs()().(logsLoadedMsg)
	if !errors.Is(msg.err, errNoLogFile) {
		t.Fatalf("err = %v, want errNoLogFile", msg.err)
	}
}
