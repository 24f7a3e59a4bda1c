package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sdahlbac/palettegen/internal/palette"
)

// View implements tea.Model interface
func (app *App) View() string {
	snap := app.state.Snapshot()

	sections := []string{
		titleStyle.Render(AppTitle),
		app.controlsView(snap),
		app.gridView(snap),
	}
	if snap.Snippet != nil {
		sections = append(sections, app.snippetPanelView())
	}
	sections = append(sections,
		headingStyle.Render(DemoTitle),
		app.demosView(snap),
	)
	if app.status != nil {
		sections = append(sections, app.status.View())
	}
	sections = append(sections, app.help.View(app.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// contentWidth is the usable width inside the document margins.
func (app *App) contentWidth() int {
	w := app.width
	if w <= 0 {
		w = DefaultWidth
	}
	return max(w-docStyle.GetHorizontalFrameSize(), MinSwatchWidth)
}

// controlsView renders the column counter and palette summary.
func (app *App) controlsView(snap palette.Snapshot) string {
	locked := 0
	for _, l := range snap.Locked {
		if l {
			locked++
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		controlStyle.Render(KeyDecrement),
		countStyle.Render(fmt.Sprintf("%d", snap.Columns)),
		controlStyle.Render(KeyIncrement),
		"  ",
		controlStyle.Render(RegenerateLabel),
		"  ",
		mutedStyle.Render(fmt.Sprintf("%d/%d locked", locked, snap.Columns)),
	)
}

// swatchWidth shares the content width evenly between n swatches, never
// going below MinSwatchWidth.
func (app *App) swatchWidth(n int) int {
	avail := app.contentWidth() - SwatchGap*(n-1)
	return max(avail/n, MinSwatchWidth)
}

// gridView renders one swatch per palette color.
func (app *App) gridView(snap palette.Snapshot) string {
	w := app.swatchWidth(snap.Columns)
	cells := make([]string, 0, 2*snap.Columns)
	for i, c := range snap.Colors {
		if i > 0 {
			cells = append(cells, strings.Repeat(" ", SwatchGap))
		}
		cells = append(cells, app.swatchView(c, snap.Locked[i], i == app.cursor, w))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (app *App) swatchView(c palette.Color, locked, selected bool, width int) string {
	border := InactiveBorder
	if selected {
		border = ActiveBorder
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(c.String()),
		"",
		app.lockGlyph(locked),
	)

	// Border is drawn outside Width, so the inner box shrinks by its frame.
	return lipgloss.NewStyle().
		Width(max(width-2, 1)).
		Height(SwatchHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(c)).
		Foreground(inkFor(c)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(content)
}

func (app *App) lockGlyph(locked bool) string {
	switch {
	case app.unicode && locked:
		return "🔒"
	case app.unicode:
		return "🔓"
	case locked:
		return "[locked]"
	default:
		return "[ ]"
	}
}

// inkFor picks a readable text color for use on top of c.
func inkFor(c palette.Color) lipgloss.Color {
	if c.IsLight() {
		return DarkInk
	}
	return LightInk
}

// snippetPanelView renders the read-only example code panel.
func (app *App) snippetPanelView() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		accentStyle.Render(SnippetTitle),
		"  ",
		mutedStyle.Render(SnippetHint),
	)
	box := snippetBoxStyle.Width(app.contentWidth() - 2).Render(app.snippetView.View())
	return lipgloss.JoinVertical(lipgloss.Left, header, box)
}

// demosView renders an example component per color, wrapped into rows that
// fit the content width.
func (app *App) demosView(snap palette.Snapshot) string {
	limit := app.contentWidth()

	var rows []string
	var row []string
	rowWidth := 0
	for i, c := range snap.Colors {
		block := demoView(c, i)
		w := lipgloss.Width(block)
		if len(row) > 0 && rowWidth+w > limit {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, block)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// demoView renders the example widgets styled with c.
func demoView(c palette.Color, index int) string {
	color := lipgloss.Color(c)

	heading := lipgloss.NewStyle().Bold(true).Foreground(color).Render(palette.Label(index))
	button := lipgloss.NewStyle().
		Background(color).
		Foreground(inkFor(c)).
		Padding(0, 2).
		Render(ButtonLabel)
	input := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(color).
		Foreground(color).
		Width(lipgloss.Width(InputPlaceholder) + 2).
		Render(InputPlaceholder)
	checkbox := lipgloss.NewStyle().Foreground(color).Render("[x]") + " " + CheckboxLabel

	return demoBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, "", button, input, checkbox))
}
