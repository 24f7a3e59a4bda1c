// Package main implements a terminal color palette generator.
package main

import (
	"fmt"
	"os"
	"time"
)

// Application constants
const (
	// ExitCodeSuccess indicates successful program execution
	ExitCodeSuccess = 0
	// ExitCodeError indicates an error occurred during execution
	ExitCodeError = 1

	// Key bindings
	KeyQuit       = "q"
	KeyCtrlC      = "ctrl+c"
	KeyEnter      = "enter"
	KeyBack       = "esc"
	KeySpace      = " "
	KeyDecrement  = "-"
	KeyIncrement  = "+"
	KeyRegenerate = "r"
	KeyCopy       = "y"

	// UI text
	AppTitle        = "Gerador de Paletas de Cores"
	DemoTitle       = "Demonstração de Componentes"
	SnippetTitle    = "Exemplo de uso:"
	SnippetHint     = "esc close • y copy • ↑/↓ scroll"
	RegenerateLabel = "r Gerar Cores"
	CopiedMessage   = "Copied to clipboard"
	AllLockedMsg    = "All colors are locked"

	// Example widget labels
	ButtonLabel      = "Exemplo de Botão"
	InputPlaceholder = "Exemplo de input"
	CheckboxLabel    = "Exemplo de Checkbox"
)

// Layout constants
const (
	DefaultWidth   = 80
	MinSwatchWidth = 11
	SwatchHeight   = 5
	SwatchGap      = 1
	SnippetRows    = 15

	DefaultStatusDuration = 2 * time.Second
)

// main is the entry point of the application
func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCodeError)
	}
}

// run executes the command line with the given arguments
func run(args []string) error {
	state := &appState{}
	defer state.close()

	cmd := newRootCmd(state)
	cmd.SetArgs(args)
	return cmd.Execute()
}
