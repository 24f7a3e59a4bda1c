package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdahlbac/palettegen/internal/palette"
)

func newSnippetCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "snippet COLOR",
		Short: "Print the example component code for a color",
		Example: `  palettegen snippet '#abcdef'
  palettegen snippet 0af --index 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := palette.ParseColor(args[0])
			if err != nil {
				return err
			}
			if index < 0 {
				return fmt.Errorf("--index must not be negative, got %d", index)
			}

			sn := palette.GenerateSnippet(color, index)
			_, err = fmt.Fprint(cmd.OutOrStdout(), sn.Text)
			return err
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "0-based palette position used for the component label")

	return cmd
}
