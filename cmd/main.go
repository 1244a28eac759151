package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"charity/internal/config"
)

// main is the entry point of the charity site. It loads configuration and
// the logger once, then dispatches to a subcommand. Running without a
// subcommand serves the site.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	exitCode := 0
	serve := serveCmd(cfg, logger, &exitCode)
	rootCmd := &cobra.Command{
		Use:           "charity",
		Short:         "Charity donation site with Paystack payments",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(migrateCmd(cfg, logger))
	rootCmd.AddCommand(seedCmd(cfg, logger))
	rootCmd.AddCommand(probeCmd(cfg, logger))

	if err = rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
