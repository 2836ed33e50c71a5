package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/tint/internal/tui"
)

func previewCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "preview <palette | colors...>",
		Short: "Interactively scale a palette",
		Long:  "Opens a full-screen view of the palette. +/- change the factor by 0.05, r resets, q quits.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePalette(cmd.Context(), args, file)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}

			model := tui.New(p)
			program := tea.NewProgram(&model)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("preview failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML palette file to look names up in")
	return cmd
}
