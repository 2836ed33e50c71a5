package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tint/internal/color"
)

type scaleResult struct {
	Input  string  `json:"input"`
	Factor float64 `json:"factor"`
	Result string  `json:"result"`
}

func scaleCmd() *cobra.Command {
	var (
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "scale <color> <factor>",
		Short: "Scale a hex color by a factor",
		Long: "Multiplies each channel of the color by factor, clamping to 0-255.\n" +
			"Invalid colors and negative factors are echoed back unless --strict is set.",
		Example: "  tint scale '#A6B91A' 0.8",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			factor, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("factor %q is not a number", args[1])
			}

			if strict {
				if _, err := color.Parse(input); err != nil {
					return err
				}
				if !color.ValidFactor(factor) {
					return fmt.Errorf("%w: %v", color.ErrInvalidFactor, factor)
				}
			}

			result := color.Scale(input, factor)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), scaleResult{Input: input, Factor: factor, Result: result})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on invalid colors or factors instead of echoing them")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
