package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tint/internal/color"
	"github.com/garrettladley/tint/internal/tui/components/ramp"
)

func rampCmd() *cobra.Command {
	var (
		maxFactor     float64
		width, height int
	)

	cmd := &cobra.Command{
		Use:     "ramp <color>",
		Short:   "Plot each channel of a color against the scale factor",
		Example: "  tint ramp '#A6B91A' --max 3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.Parse(args[0])
			if err != nil {
				return err
			}
			if !color.ValidFactor(maxFactor) || maxFactor == 0 {
				return fmt.Errorf("%w: --max must be positive", color.ErrInvalidFactor)
			}

			r := ramp.New(c, ramp.WithMaxFactor(maxFactor), ramp.WithSize(width, height))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Render())
			return err
		},
	}

	cmd.Flags().Float64Var(&maxFactor, "max", ramp.DefaultMaxFactor, "largest factor on the x axis")
	cmd.Flags().IntVar(&width, "width", ramp.DefaultWidth, "plot width in cells")
	cmd.Flags().IntVar(&height, "height", ramp.DefaultHeight, "plot height in cells")
	return cmd
}
