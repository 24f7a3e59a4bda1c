package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdahlbac/palettegen/internal/logger"
	"github.com/sdahlbac/palettegen/internal/palette"
)

// AppOptions configures a new App.
type AppOptions struct {
	Columns        int
	Source         palette.Source
	Logger         *logger.Logger
	Unicode        bool
	StatusDuration time.Duration
	Clipboard      copyFunc
}

// App is the palette screen. Every key maps to one state transition on
// state followed by a re-render.
type App struct {
	state  *palette.State
	cursor int

	keys        keyMap
	help        help.Model
	snippetView viewport.Model
	status      *statusLine

	log            *logger.Logger
	clipboard      copyFunc
	unicode        bool
	statusDuration time.Duration

	width, height int
}

// NewApp creates a new application instance with a fresh random palette.
func NewApp(opts AppOptions) *App {
	if opts.Columns == 0 {
		opts.Columns = palette.DefaultColumns
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = systemClipboard
	}
	if opts.StatusDuration <= 0 {
		opts.StatusDuration = DefaultStatusDuration
	}

	app := &App{
		state:          palette.NewState(opts.Columns, opts.Source),
		keys:           newKeyMap(),
		help:           help.New(),
		snippetView:    viewport.New(DefaultWidth, SnippetRows),
		log:            opts.Logger,
		clipboard:      opts.Clipboard,
		unicode:        opts.Unicode,
		statusDuration: opts.StatusDuration,
	}
	app.styleHelp()

	app.log.WithFields(map[string]any{"columns": app.state.Columns()}).Info("palette created")
	return app
}

func (app *App) styleHelp() {
	app.help.Styles.ShortKey = app.help.Styles.ShortKey.Foreground(Rosewater)
	app.help.Styles.FullKey = app.help.Styles.FullKey.Foreground(Rosewater)
	app.help.Styles.ShortDesc = app.help.Styles.ShortDesc.Foreground(Subtext0)
	app.help.Styles.FullDesc = app.help.Styles.FullDesc.Foreground(Subtext0)
}

// Snapshot returns an immutable copy of the palette state.
func (app *App) Snapshot() palette.Snapshot {
	return app.state.Snapshot()
}

// Init implements tea.Model interface
func (app *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model interface
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return app.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return app.handleWindowSizeMsg(msg)
	case timer.TimeoutMsg:
		return app.handleStatusTimeout(msg)
	case timer.TickMsg, timer.StartStopMsg:
		return app.updateStatus(msg)
	}

	return app.updateSnippetView(msg)
}

// handleKeyMsg processes keyboard input
func (app *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, app.keys.Quit):
		return app, tea.Quit
	case key.Matches(msg, app.keys.Decrement):
		app.resize(app.state.Columns() - 1)
	case key.Matches(msg, app.keys.Increment):
		app.resize(app.state.Columns() + 1)
	case key.Matches(msg, app.keys.Regenerate):
		return app, app.regenerate()
	case key.Matches(msg, app.keys.Left):
		app.moveCursor(-1)
	case key.Matches(msg, app.keys.Right):
		app.moveCursor(1)
	case key.Matches(msg, app.keys.ToggleLock):
		app.toggleLock(app.cursor)
	case key.Matches(msg, app.keys.Snippet):
		app.generateSnippet(app.cursor)
	case key.Matches(msg, app.keys.Dismiss):
		app.clearSnippet()
	case key.Matches(msg, app.keys.Copy):
		return app, app.copyToClipboard()
	case key.Matches(msg, app.keys.Help):
		app.help.ShowAll = !app.help.ShowAll
	default:
		return app.updateSnippetView(msg)
	}

	return app, nil
}

// handleWindowSizeMsg processes window resize events
func (app *App) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	app.width, app.height = msg.Width, msg.Height

	w := app.contentWidth()
	app.help.Width = w
	app.snippetView.Width = max(w-snippetBoxStyle.GetHorizontalFrameSize(), 1)

	return app, nil
}

// handleStatusTimeout clears the status line once its own timer expires.
func (app *App) handleStatusTimeout(msg timer.TimeoutMsg) (tea.Model, tea.Cmd) {
	if app.status != nil && app.status.expiredBy(msg) {
		app.status = nil
	}
	return app, nil
}

func (app *App) updateStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	if app.status == nil {
		return app, nil
	}
	var cmd tea.Cmd
	app.status, cmd = app.status.Update(msg)
	return app, cmd
}

// updateSnippetView forwards scrolling input to the snippet panel.
func (app *App) updateSnippetView(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := app.state.Snippet(); !ok {
		return app, nil
	}
	var cmd tea.Cmd
	app.snippetView, cmd = app.snippetView.Update(msg)
	return app, cmd
}

func (app *App) resize(n int) {
	before := app.state.Columns()
	app.state.Resize(n)
	app.cursor = min(app.cursor, app.state.Columns()-1)

	app.log.WithFields(map[string]any{
		"from":    before,
		"columns": app.state.Columns(),
	}).Debug("palette resized")
}

func (app *App) regenerate() tea.Cmd {
	n := app.state.Regenerate()
	app.log.WithFields(map[string]any{
		"regenerated": n,
		"locked":      app.state.Palette().LockedCount(),
	}).Debug("palette regenerated")

	if n == 0 {
		return app.setStatus(AllLockedMsg, statusInfo)
	}
	return nil
}

func (app *App) moveCursor(delta int) {
	n := app.state.Columns()
	app.cursor = (app.cursor + delta + n) % n
}

func (app *App) toggleLock(i int) {
	locked := app.state.ToggleLock(i)
	app.log.WithFields(map[string]any{"index": i, "locked": locked}).Debug("lock toggled")
}

func (app *App) generateSnippet(i int) {
	sn, ok := app.state.GenerateSnippet(i)
	if !ok {
		return
	}
	app.snippetView.SetContent(sn.Text)
	app.snippetView.GotoTop()
	app.log.WithFields(map[string]any{"index": i, "color": sn.Color.String()}).Debug("snippet generated")
}

func (app *App) clearSnippet() {
	app.state.ClearSnippet()
	app.snippetView.SetContent("")
}

// copyToClipboard copies the current snippet, or the color under the cursor
// when no snippet is shown.
func (app *App) copyToClipboard() tea.Cmd {
	text := app.state.Palette().Color(app.cursor).String()
	what := text
	if sn, ok := app.state.Snippet(); ok {
		text = sn.Text
		what = palette.Label(sn.Index)
	}

	if err := app.clipboard(text); err != nil {
		app.log.WithFields(map[string]any{"error": err.Error()}).Warn("clipboard copy failed")
		return app.setStatus(err.Error(), statusError)
	}
	return app.setStatus(CopiedMessage+": "+what, statusSuccess)
}

// setStatus replaces the status line and starts its expiry timer.
func (app *App) setStatus(text string, kind statusKind) tea.Cmd {
	app.status = newStatusLine(text, kind, app.statusDuration)
	return app.status.Init()
}
