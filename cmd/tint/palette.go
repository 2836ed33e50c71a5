package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tint/internal/palette"
	"github.com/garrettladley/tint/internal/storage"
	"github.com/garrettladley/tint/internal/tui/components/swatch"
)

func paletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Manage palettes saved on this machine",
	}
	cmd.AddCommand(
		paletteSaveCmd(),
		paletteListCmd(),
		paletteShowCmd(),
		paletteRmCmd(),
	)
	return cmd
}

func paletteSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "save <name> <colors...>",
		Short:   "Save a named palette",
		Example: "  tint palette save brand '#3366CC' '#DC3912' '#FF9900'",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]
			if palette.IsBuiltin(name) {
				return fmt.Errorf("%q is a built-in palette", name)
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			p := palette.New(name, args[1:]...)
			if err := store.Put(ctx, p); err != nil {
				return fmt.Errorf("failed to save palette: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d colors)\n", name, p.Len())
			return err
		},
	}
}

func paletteListCmd() *cobra.Command {
	var builtins bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			saved, err := store.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list palettes: %w", err)
			}

			var all []palette.Palette
			if builtins {
				all = append(all, palette.Builtins()...)
			}
			all = append(all, saved...)

			var b strings.Builder
			for _, p := range all {
				fmt.Fprintf(&b, "%-16s %s\n", p.Name, swatch.Line(p.Colors))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&builtins, "builtin", false, "include built-in palettes")
	return cmd
}

func paletteShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePalette(cmd.Context(), args, "")
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), swatch.New(p.Colors, swatch.WithLabel(p.Name)).Render())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func paletteRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Delete a saved palette",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			err = store.Delete(ctx, args[0])
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: %q", errUnknownPalette, args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to delete palette: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		},
	}
}
