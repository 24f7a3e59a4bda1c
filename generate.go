package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/sdahlbac/palettegen/internal/palette"
)

// exportedPalette is the document written by generate for structured formats.
type exportedPalette struct {
	Columns int      `json:"columns" yaml:"columns" toml:"columns"`
	Colors  []string `json:"colors" yaml:"colors" toml:"colors"`
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatchRenderer returns the renderer used to color swatches written to w.
var swatchRenderer = func(w io.Writer) *lipgloss.Renderer {
	return lipgloss.NewRenderer(w)
}

func newGenerateCmd(state *appState) *cobra.Command {
	var (
		format string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a fresh random palette and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = state.cfg.Generate.Format
			}

			src := palette.DefaultSource()
			if seed != 0 {
				src = palette.NewSeededSource(seed)
			}
			p := palette.New(state.cfg.Columns, src)

			state.log.WithFields(map[string]any{
				"columns": p.Len(),
				"format":  format,
			}).Debug("palette generated")

			return writePalette(cmd.OutOrStdout(), p.Colors(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml, toml)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible palette (0 picks a random one)")

	return cmd
}

// writePalette encodes colors to w in the named format.
func writePalette(w io.Writer, colors []palette.Color, format string) error {
	doc := exportedPalette{Columns: len(colors), Colors: make([]string, len(colors))}
	for i, c := range colors {
		doc.Colors[i] = c.String()
	}

	switch format {
	case "text":
		return writeText(w, colors)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want text, json, yaml or toml)", format)
	}
}

// writeText prints one color per line, preceded by a swatch on terminals.
func writeText(w io.Writer, colors []palette.Color) error {
	var r *lipgloss.Renderer
	if isTerminal(w) {
		r = swatchRenderer(w)
	}
	for _, c := range colors {
		line := c.String()
		if r != nil {
			swatch := r.NewStyle().Background(lipgloss.Color(c)).Render("      ")
			line = swatch + " " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
