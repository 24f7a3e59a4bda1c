package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdahlbac/palettegen/internal/logger"
	"github.com/sdahlbac/palettegen/internal/palette"
)

// fakeClipboard records what was copied.
type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func newTestApp(t *testing.T, columns int) (*App, *fakeClipboard) {
	t.Helper()
	cb := &fakeClipboard{}
	app := NewApp(AppOptions{
		Columns:   columns,
		Source:    palette.NewSeededSource(1),
		Clipboard: cb.copy,
		Unicode:   true,
	})
	return app, cb
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, app *App, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = app.Update(msg)
		require.Same(t, app, model)
	}
	return cmd
}

func TestNewApp(t *testing.T) {
	app := NewApp(AppOptions{})

	snap := app.Snapshot()
	assert.Equal(t, palette.DefaultColumns, snap.Columns)
	assert.Len(t, snap.Colors, palette.DefaultColumns)
	assert.Equal(t, []bool{false, false, false, false, false}, snap.Locked)
	assert.Nil(t, snap.Snippet)
	assert.Zero(t, app.cursor)
	assert.Equal(t, DefaultStatusDuration, app.statusDuration)
	assert.Nil(t, app.Init())
}

func TestApp_ColumnControls(t *testing.T) {
	app, _ := newTestApp(t, 3)
	before := app.Snapshot().Colors

	press(t, app, keyRunes(KeyIncrement), keyRunes("="))
	snap := app.Snapshot()
	require.Equal(t, 5, snap.Columns)
	assert.Equal(t, before, snap.Colors[:3])

	press(t, app, keyRunes(KeyDecrement), keyRunes(KeyDecrement))
	snap = app.Snapshot()
	require.Equal(t, 3, snap.Columns)
	assert.Equal(t, before, snap.Colors)
}

func TestApp_DecrementClampsAtOne(t *testing.T) {
	app, _ := newTestApp(t, 2)

	for i := 0; i < 5; i++ {
		press(t, app, keyRunes(KeyDecrement))
	}

	snap := app.Snapshot()
	assert.Equal(t, 1, snap.Columns)
	assert.Len(t, snap.Colors, 1)
	assert.Len(t, snap.Locked, 1)
}

func TestApp_RegenerateRespectsLocks(t *testing.T) {
	app, _ := newTestApp(t, 4)

	press(t, app, keyRunes("x"), keyRunes("l"), keyRunes("l"), keyRunes("x"))
	before := app.Snapshot()
	require.Equal(t, []bool{true, false, true, false}, before.Locked)

	press(t, app, keyRunes(KeyRegenerate))
	after := app.Snapshot()

	assert.Equal(t, before.Locked, after.Locked)
	assert.Equal(t, before.Colors[0], after.Colors[0])
	assert.Equal(t, before.Colors[2], after.Colors[2])
	assert.NotEqual(t, before.Colors[1], after.Colors[1])
	assert.NotEqual(t, before.Colors[3], after.Colors[3])
}

func TestApp_RegenerateAllLocked(t *testing.T) {
	app, _ := newTestApp(t, 2)

	press(t, app, keyRunes("x"), keyRunes("l"), keyRunes("x"))
	before := app.Snapshot()

	cmd := press(t, app, keyRunes(KeyRegenerate))

	assert.Equal(t, before.Colors, app.Snapshot().Colors)
	require.NotNil(t, app.status)
	assert.Equal(t, statusInfo, app.status.kind)
	assert.Equal(t, AllLockedMsg, app.status.text)
	assert.NotNil(t, cmd, "status timer starts")
}

func TestApp_RegenerateWithoutLocksHasNoStatus(t *testing.T) {
	app, _ := newTestApp(t, 2)

	cmd := press(t, app, keyRunes(KeyRegenerate))

	assert.Nil(t, cmd)
	assert.Nil(t, app.status)
}

func TestApp_ToggleLockTwiceRestores(t *testing.T) {
	app, _ := newTestApp(t, 3)
	press(t, app, keyRunes("l"))

	press(t, app, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, app.Snapshot().Locked[1])

	press(t, app, keyRunes("x"))
	assert.False(t, app.Snapshot().Locked[1])
}

func TestApp_CursorMovement(t *testing.T) {
	app, _ := newTestApp(t, 3)

	press(t, app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, app.cursor)

	press(t, app, keyRunes("l"), keyRunes("l"))
	assert.Equal(t, 0, app.cursor, "wraps around")

	press(t, app, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, app.cursor)

	press(t, app, keyRunes(KeyDecrement))
	assert.Equal(t, 1, app.cursor, "clamped when the palette shrinks")
}

func TestApp_SnippetLifecycle(t *testing.T) {
	app, _ := newTestApp(t, 3)
	press(t, app, keyRunes("l"), keyRunes("l"))
	color := app.Snapshot().Colors[2]

	press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	snap := app.Snapshot()
	require.NotNil(t, snap.Snippet)
	assert.Equal(t, color, snap.Snippet.Color)
	assert.Contains(t, snap.Snippet.Text, string(color))
	assert.Contains(t, snap.Snippet.Text, "Exemplo componente 3")

	press(t, app, keyRunes(KeyRegenerate))
	assert.Equal(t, color, app.Snapshot().Snippet.Color, "snippet does not follow the palette")

	press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, app.Snapshot().Snippet)
}

func TestApp_CopyColorWithoutSnippet(t *testing.T) {
	app, cb := newTestApp(t, 2)

	cmd := press(t, app, keyRunes(KeyCopy))

	require.Equal(t, []string{string(app.Snapshot().Colors[0])}, cb.copied)
	require.NotNil(t, app.status)
	assert.Equal(t, statusSuccess, app.status.kind)
	assert.NotNil(t, cmd, "status timer starts")
}

func TestApp_CopySnippet(t *testing.T) {
	app, cb := newTestApp(t, 2)

	press(t, app, keyRunes("c"), keyRunes(KeyCopy))

	sn := app.Snapshot().Snippet
	require.NotNil(t, sn)
	require.Equal(t, []string{sn.Text}, cb.copied)
	assert.Contains(t, app.status.text, "Exemplo componente 1")
}

func TestApp_CopyFailureShowsError(t *testing.T) {
	app, cb := newTestApp(t, 2)
	cb.err = errors.New("no clipboard here")

	press(t, app, keyRunes(KeyCopy))

	require.NotNil(t, app.status)
	assert.Equal(t, statusError, app.status.kind)
	assert.Contains(t, app.status.text, "no clipboard here")
}

func TestApp_CopyFailureLogsWarning(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	cb := &fakeClipboard{err: errors.New("no clipboard here")}
	app := NewApp(AppOptions{Columns: 2, Logger: log, Clipboard: cb.copy})

	press(t, app, keyRunes(KeyCopy))

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "clipboard copy failed")
	assert.Contains(t, buf.String(), "no clipboard here")
}

func TestApp_StatusTimeout(t *testing.T) {
	app, _ := newTestApp(t, 2)
	press(t, app, keyRunes(KeyCopy))
	require.NotNil(t, app.status)
	id := app.status.timer.ID()

	press(t, app, timer.TimeoutMsg{ID: id + 1000})
	assert.NotNil(t, app.status, "other timers do not clear the status")

	press(t, app, timer.TimeoutMsg{ID: id})
	assert.Nil(t, app.status)
}

func TestApp_StaleTimeoutKeepsNewerStatus(t *testing.T) {
	app, _ := newTestApp(t, 2)
	press(t, app, keyRunes(KeyCopy))
	oldID := app.status.timer.ID()

	press(t, app, keyRunes(KeyCopy))
	require.NotEqual(t, oldID, app.status.timer.ID())

	press(t, app, timer.TimeoutMsg{ID: oldID})
	assert.NotNil(t, app.status)
}

func TestApp_TickWithoutStatus(t *testing.T) {
	app, _ := newTestApp(t, 2)

	cmd := press(t, app, timer.TickMsg{ID: 1})
	assert.Nil(t, cmd)
}

func TestApp_HelpToggle(t *testing.T) {
	app, _ := newTestApp(t, 2)

	press(t, app, keyRunes("?"))
	assert.True(t, app.help.ShowAll)
	press(t, app, keyRunes("?"))
	assert.False(t, app.help.ShowAll)
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t, 2)

	for _, msg := range []tea.KeyMsg{keyRunes(KeyQuit), {Type: tea.KeyCtrlC}} {
		cmd := press(t, app, msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestApp_UnknownKeyIsNoop(t *testing.T) {
	app, _ := newTestApp(t, 3)
	before := app.Snapshot()

	cmd := press(t, app, keyRunes("z"))

	assert.Nil(t, cmd)
	assert.Equal(t, before, app.Snapshot())
}

func TestApp_WindowSize(t *testing.T) {
	app, _ := newTestApp(t, 2)

	press(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, app.width)
	assert.Equal(t, 40, app.height)
	assert.Equal(t, 116, app.contentWidth())
	assert.Equal(t, 116, app.help.Width)
	assert.Equal(t, 112, app.snippetView.Width)
}

func TestApp_CustomStatusDuration(t *testing.T) {
	app := NewApp(AppOptions{StatusDuration: 5 * time.Second, Clipboard: (&fakeClipboard{}).copy})
	press(t, app, keyRunes(KeyCopy))

	require.NotNil(t, app.status)
	assert.Equal(t, 5*time.Second, app.status.timer.Timeout)
}

func BenchmarkApp_Regenerate(b *testing.B) {
	app := NewApp(AppOptions{Columns: 12, Source: palette.NewSeededSource(3)})
	msg := keyRunes(KeyRegenerate)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		app.Update(msg)
	}
}
