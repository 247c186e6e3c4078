package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/five82/artsearch/internal/artic"
	"github.com/five82/artsearch/internal/config"
	"github.com/five82/artsearch/internal/logtail"
	"github.com/five82/artsearch/internal/nav"
	"github.com/five82/artsearch/internal/prefs"
	"github.com/five82/artsearch/internal/state"
	"github.com/five82/artsearch/internal/view"
)

// View identifies the page view currently hosted.
type View int

const (
	ViewSearch View = iota
	ViewDetail
)

func (v View) String() string {
	if v == ViewDetail {
		return "Artwork"
	}
	return "Search"
}

// Backend is what the views need from the API client.
type Backend interface {
	artic.Searcher
	artic.ArtworkFetcher
	ImageURL(imageID string, width int) (string, bool)
	BaseURL() string
}

var _ Backend = (*artic.Client)(nil)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Client     Backend
	Store      *state.Store
	Config     *config.Config
	ThemeName  string
	PrefsPath  string
	Location   string // initial "?id=..&q=.." location
	Simulation view.Simulation
	Tick       time.Duration // header refresh interval
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    Backend
	store     *state.Store
	config    *config.Config
	prefsPath string
	sim       view.Simulation
	tick      time.Duration

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Hosted view. gen changes on every navigation; results carrying an
	// older gen belong to a view that is gone.
	currentView View
	gen         uint64
	location    nav.Location
	content     *view.Container
	search      *view.Search
	detail      *view.Detail
	initCmd     tea.Cmd

	// Search form
	input    textinput.Model
	slow     bool
	fail     bool
	focus    formFocus
	selected int // index into content.Links()

	spinner         spinner.Model
	contentViewport viewport.Model

	// Header data
	snapshot state.Snapshot
	now      time.Time

	// Help overlay
	showHelp bool

	// Activity log overlay
	showLogs    bool
	logViewport viewport.Model
	logLines    []logtail.Line
	logErr      error
}

// New creates a new Bubble Tea model and activates opts.Location.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick == 0 {
		tick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sim := opts.Simulation
	if sim.Delay == 0 && opts.Config != nil {
		sim.Delay = opts.Config.SimulatedDelay
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = queryPlaceholder
	input.CharLimit = 200

	m := Model{
		ctx:             ctx,
		client:          opts.Client,
		store:           opts.Store,
		config:          opts.Config,
		prefsPath:       prefsPath,
		sim:             sim,
		tick:            tick,
		theme:           GetTheme(themeName),
		keys:            DefaultKeyMap(),
		input:           input,
		spinner:         spinner.New(spinner.WithSpinner(spinner.Dot)),
		contentViewport: viewport.New(80, 20),
		logViewport:     viewport.New(80, 20),
	}
	m.initCmd = m.activate(nav.Parse(opts.Location))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		tickCmd(m.tick),
		fetchSnapshotCmd(m.store),
		m.initCmd,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoading() {
			m.refreshContent()
		}
		return m, cmd

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case detailResultMsg:
		return m.handleDetailResult(msg)

	case logsLoadedMsg:
		m.handleLogsLoaded(msg)
		return m, nil
	}

	// Cursor blink and other input-internal messages.
	if m.currentView == ViewSearch && m.focus == focusQuery {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. While the query field has focus only
// form keys are intercepted; everything else is typed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	if m.currentView == ViewSearch && m.focus == focusQuery {
		return m.handleQueryKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		return m, m.loadLogs()
	}

	if m.currentView == ViewDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleSearchKey(msg)
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, m.follow(nav.BackHref(m.location.Query))
	case key.Matches(msg, m.keys.Submit):
		return m, m.followSelected()
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Top):
		m.selectLink(0)
	case key.Matches(msg, m.keys.Bottom):
		m.selectLink(len(m.links()) - 1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.contentViewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.contentViewport.HalfViewUp()
	}
	return m, nil
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			log.WithError(err).WithField("path", m.prefsPath).Warn("save preferences failed")
		}
	}
	m.refreshContent()
}

// handleTick refreshes the header and, while open, the log overlay.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	m.now = time.Time(msg)
	cmds := []tea.Cmd{tickCmd(m.tick), fetchSnapshotCmd(m.store)}
	if m.showLogs {
		cmds = append(cmds, m.loadLogs())
	}
	return m, tea.Batch(cmds...)
}

// isLoading reports whether the hosted view shows a loading placeholder.
func (m Model) isLoading() bool {
	switch m.currentView {
	case ViewDetail:
		return m.detail != nil && m.detail.State() == view.DetailLoading
	default:
		return m.search != nil && m.search.State() == view.SearchSubmitting
	}
}

// resize lays out the viewports for the current terminal size.
func (m *Model) resize() {
	contentHeight := m.height - headerLines
	if m.currentView == ViewSearch {
		contentHeight -= formLines
	}
	m.contentViewport.Width = maxInt(m.width, 1)
	m.contentViewport.Height = maxInt(contentHeight, 1)
	m.input.Width = maxInt(m.width-queryFieldPadding, 10)

	m.logViewport.Width = maxInt(m.width-4, 1)
	m.logViewport.Height = maxInt(m.height-4, 1)

	m.refreshContent()
	m.refreshLogViewport()
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	out := m.renderHeader() + "\n" + m.renderCommandBar() + "\n"
	if m.currentView == ViewSearch {
		out += m.renderForm() + "\n"
	}
	return out + m.contentViewport.View()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits. Cancelling
// opts.Context ends the program without an error.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
		opts.Context = ctx
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
