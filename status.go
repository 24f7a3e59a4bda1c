package main

import (
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusKind selects the color of a status message.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// statusLine is a transient message that disappears when its timer runs out.
type statusLine struct {
	text  string
	kind  statusKind
	timer timer.Model
}

// newStatusLine creates a status message shown for d.
func newStatusLine(text string, kind statusKind, d time.Duration) *statusLine {
	return &statusLine{
		text:  text,
		kind:  kind,
		timer: timer.NewWithInterval(d, 100*time.Millisecond),
	}
}

// Init starts the expiry timer.
func (s *statusLine) Init() tea.Cmd {
	return s.timer.Init()
}

// Update advances the timer. Ticks for other timers are ignored by the
// timer itself.
func (s *statusLine) Update(msg tea.Msg) (*statusLine, tea.Cmd) {
	var cmd tea.Cmd
	s.timer, cmd = s.timer.Update(msg)
	return s, cmd
}

// expiredBy reports whether msg is the timeout of this status line.
func (s *statusLine) expiredBy(msg timer.TimeoutMsg) bool {
	return msg.ID == s.timer.ID()
}

// View renders the message in its kind's color.
func (s *statusLine) View() string {
	var color lipgloss.Color
	switch s.kind {
	case statusSuccess:
		color = Success
	case statusError:
		color = Error
	default:
		color = Info
	}
	return lipgloss.NewStyle().Foreground(color).Render(s.text)
}
