package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/tint/internal/version"
)

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), rootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "tint",
		Short:   "Scale hex colors and derive palette tiers",
		Version: version.Get(),
	}

	root.AddCommand(
		scaleCmd(),
		tiersCmd(),
		pickCmd(),
		paletteCmd(),
		rampCmd(),
		previewCmd(),
	)
	return root
}
