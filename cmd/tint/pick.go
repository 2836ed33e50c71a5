package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tint/internal/palette"
)

type pickResult struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func pickCmd() *cobra.Command {
	var (
		slot     int
		selected string
		file     string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "pick <palette> <labels...>",
		Short: "Highlight selected labels and dim the rest",
		Long: "Every label gets the palette color at --slot. Labels named by --selected keep\n" +
			"it, the others get the same color dimmed. --selected takes a \", \"-separated list.",
		Example: "  tint pick starwars --slot 2 --selected Tatooine Tatooine Naboo Hoth",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolvePalette(cmd.Context(), args[:1], file)
			if err != nil {
				return err
			}

			labels := args[1:]
			colors := palette.PickAny(labels, palette.SplitList(selected), slot, base)

			if asJSON {
				out := make([]pickResult, len(labels))
				for i, l := range labels {
					out[i] = pickResult{Label: l, Color: colors[i]}
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			width := 0
			for _, l := range labels {
				width = max(width, len(l))
			}
			var b strings.Builder
			for i, l := range labels {
				fmt.Fprintf(&b, "%-*s %s\n", width, l, colors[i])
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().IntVar(&slot, "slot", 0, "palette index to color with, wraps around")
	cmd.Flags().StringVar(&selected, "selected", "", "selected label(s)")
	cmd.Flags().StringVar(&file, "file", "", "YAML palette file to look names up in")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
