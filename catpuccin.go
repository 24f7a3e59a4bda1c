// Package main defines the Catppuccin Mocha colors used for the application chrome.
package main

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette
// Reference: https://github.com/catppuccin/catppuccin/tree/main
const (
	// Accent colors
	Rosewater = lipgloss.Color("#f5e0dc")
	Mauve     = lipgloss.Color("#cba6f7")
	Red       = lipgloss.Color("#f38ba8")
	Peach     = lipgloss.Color("#fab387")
	Green     = lipgloss.Color("#a6e3a1")
	Teal      = lipgloss.Color("#94e2d5")
	Lavender  = lipgloss.Color("#b4befe")

	// Text colors
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")

	// Surface colors
	Overlay0 = lipgloss.Color("#6c7086")
	Surface1 = lipgloss.Color("#45475a")
	Surface0 = lipgloss.Color("#313244")
	Mantle   = lipgloss.Color("#181825")
	Crust    = lipgloss.Color("#11111b")

	// Semantic colors for application states
	ActiveBorder   = Lavender
	InactiveBorder = Overlay0
	Success        = Green
	Error          = Red
	Info           = Teal
	Accent         = Mauve

	// Foregrounds placed on top of generated colors
	LightInk = lipgloss.Color("#ffffff")
	DarkInk  = Crust
)

// Global styles
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			Background(Mantle).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Rosewater).
			MarginTop(1)

	accentStyle = headingStyle.Foreground(Accent)

	mutedStyle = lipgloss.NewStyle().Foreground(Subtext0)

	controlStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface1).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Peach).
			Padding(0, 1)

	snippetBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Background(Surface0).
			Foreground(Text).
			Padding(0, 1)

	demoBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(InactiveBorder).
			Padding(0, 1).
			MarginRight(1)
)
