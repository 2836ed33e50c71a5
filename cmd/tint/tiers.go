package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tint/internal/color"
	"github.com/garrettladley/tint/internal/palette"
	"github.com/garrettladley/tint/internal/tui/components/swatch"
)

type tiersResult struct {
	Name  string         `json:"name"`
	Tiers []palette.Tier `json:"tiers"`
}

func tiersCmd() *cobra.Command {
	var (
		factors []float64
		file    string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "tiers <palette | colors...>",
		Short: "Print a palette at several scale factors",
		Long:  "Prints the palette once per --factor. Without --factor the tiers are 1.0, 0.8 and 0.6.",
		Example: "  tint tiers generations\n" +
			"  tint tiers '#3366CC' '#DC3912' --factor 0.5\n" +
			"  tint tiers brand --file palettes.yaml --json",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range factors {
				if !color.ValidFactor(f) {
					return fmt.Errorf("%w: %v", color.ErrInvalidFactor, f)
				}
			}

			p, err := resolvePalette(cmd.Context(), args, file)
			if err != nil {
				return err
			}

			tiers := p.Tiers(factors...)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), tiersResult{Name: p.Name, Tiers: tiers})
			}

			var b strings.Builder
			fmt.Fprintln(&b, p.Name)
			for _, tier := range tiers {
				fmt.Fprintf(&b, "x%-5.2f %s\n", tier.Factor, swatch.Line(tier.Colors))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().Float64SliceVar(&factors, "factor", nil, "scale factor, repeatable")
	cmd.Flags().StringVar(&file, "file", "", "YAML palette file to look names up in")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
