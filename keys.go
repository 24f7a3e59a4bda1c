package main

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the palette screen reacts to.
type keyMap struct {
	Decrement  key.Binding
	Increment  key.Binding
	Regenerate key.Binding
	Left       key.Binding
	Right      key.Binding
	ToggleLock key.Binding
	Snippet    key.Binding
	Copy       key.Binding
	Dismiss    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Decrement: key.NewBinding(
			key.WithKeys(KeyDecrement),
			key.WithHelp(KeyDecrement, "fewer columns"),
		),
		Increment: key.NewBinding(
			key.WithKeys(KeyIncrement, "="),
			key.WithHelp(KeyIncrement, "more columns"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys(KeyRegenerate, "g"),
			key.WithHelp(KeyRegenerate, "regenerate"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev color"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next color"),
		),
		ToggleLock: key.NewBinding(
			key.WithKeys(KeySpace, "space", "x"),
			key.WithHelp("space", "lock/unlock"),
		),
		Snippet: key.NewBinding(
			key.WithKeys(KeyEnter, "c"),
			key.WithHelp(KeyEnter, "example code"),
		),
		Copy: key.NewBinding(
			key.WithKeys(KeyCopy),
			key.WithHelp(KeyCopy, "copy"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys(KeyBack),
			key.WithHelp(KeyBack, "close example"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys(KeyQuit, KeyCtrlC),
			key.WithHelp(KeyQuit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrement, k.Increment, k.Regenerate, k.ToggleLock, k.Snippet, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrement, k.Increment, k.Regenerate},
		{k.Left, k.Right, k.ToggleLock},
		{k.Snippet, k.Copy, k.Dismiss},
		{k.Help, k.Quit},
	}
}
