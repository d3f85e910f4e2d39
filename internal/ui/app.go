package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/logging"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/state"
	"github.com/five82/pokedex/internal/viewmodel"
)

// screen identifies the active screen.
type screen int

const (
	screenList screen = iota
	screenDetail
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Client     pokeapi.Fetcher
	Logger     *slog.Logger
	ThemeName  string
	LastViewed string // list cursor starts on this Pokémon once loaded
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    pokeapi.Fetcher
	logger    *slog.Logger
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	screen   screen
	width    int
	height   int
	showHelp bool

	// List state
	list       *viewmodel.List
	cursor     int
	lastViewed string
	restored   bool

	// Detail state
	detail       *viewmodel.Detail
	detailCtx    context.Context
	detailCancel context.CancelFunc

	// changes is signalled by view-model transitions; capacity one so
	// bursts collapse into a single redraw.
	changes chan struct{}
}

// New creates a new Bubble Tea model. The list load starts in Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	changes := make(chan struct{}, 1)
	list := viewmodel.NewList(opts.Client, viewmodel.WithLogger(logger))
	list.Subscribe(func(viewmodel.ListView) { signal(changes) })

	return Model{
		ctx:        ctx,
		client:     opts.Client,
		logger:     logger,
		prefsPath:  prefsPath,
		theme:      GetTheme(opts.ThemeName),
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		screen:     screenList,
		list:       list,
		lastViewed: strings.TrimSpace(opts.LastViewed),
		changes:    changes,
	}
}

// Run starts the program and blocks until the user quits or ctx is cancelled.
func Run(opts Options) error {
	model := New(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(model.ctx))
	final, err := program.Run()
	if m, ok := final.(Model); ok && m.detailCancel != nil {
		m.detailCancel()
	}
	if errors.Is(err, tea.ErrProgramKilled) && model.ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForChange(m.ctx, m.changes),
		loadCmd(m.ctx, m.list.Load),
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
		m.help.Width = msg.Width
		return m, nil

	case stateChangedMsg:
		m.restoreCursor()
		m.clampCursor()
		return m, waitForChange(m.ctx, m.changes)

	case loadDoneMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.detailCancel != nil {
			m.detailCancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		return m, m.retry()
	}

	switch m.screen {
	case screenList:
		return m.handleListKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.listItems()
	if len(items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(items) - 1
	case key.Matches(msg, m.keys.Open):
		return m.open(items[m.cursor].Name)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		if m.detailCancel != nil {
			m.detailCancel()
		}
		m.detail = nil
		m.detailCtx = nil
		m.detailCancel = nil
		m.screen = screenList
	}
	return m, nil
}

// open switches to the detail screen for name and starts its load.
func (m Model) open(name string) (tea.Model, tea.Cmd) {
	if m.detailCancel != nil {
		m.detailCancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	detail := viewmodel.NewDetail(name, m.client, viewmodel.WithLogger(m.logger))
	changes := m.changes
	detail.Subscribe(func(viewmodel.DetailView) { signal(changes) })

	m.detail = detail
	m.detailCtx = ctx
	m.detailCancel = cancel
	m.screen = screenDetail
	m.lastViewed = name
	m.savePrefs()
	return m, loadCmd(ctx, detail.Load)
}

// retry reloads whichever screen is showing.
func (m Model) retry() tea.Cmd {
	if m.screen == screenDetail && m.detail != nil {
		return loadCmd(m.detailCtx, m.detail.Load)
	}
	return loadCmd(m.ctx, m.list.Load)
}

func (m Model) listItems() []catalog.ListItem {
	view := m.list.State()
	if view.Kind() != state.KindLoaded {
		return nil
	}
	items, _ := view.Value()
	return items
}

// restoreCursor moves the cursor to the last viewed Pokémon the first time
// the list loads.
func (m *Model) restoreCursor() {
	if m.restored {
		return
	}
	items := m.listItems()
	if items == nil {
		return
	}
	m.restored = true
	for i, item := range items {
		if item.Name == m.lastViewed {
			m.cursor = i
			return
		}
	}
}

// clampCursor keeps the cursor on a loaded row. The position is left alone
// while the list reloads.
func (m *Model) clampCursor() {
	items := m.listItems()
	if items == nil {
		return
	}
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) savePrefs() {
	err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, LastViewed: m.lastViewed})
	if err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// Messages

type stateChangedMsg struct{}

type loadDoneMsg struct{}

func signal(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// waitForChange blocks until a view-model transition or ctx is done.
func waitForChange(ctx context.Context, ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ch:
			return stateChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func loadCmd[V any](ctx context.Context, load func(context.Context) V) tea.Cmd {
	return func() tea.Msg {
		load(ctx)
		return loadDoneMsg{}
	}
}
