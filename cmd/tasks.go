package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"charity/internal/adapter/paystack"
	"charity/internal/config"
	"charity/internal/db"
)

func migrateCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
}

func seedCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo campaigns into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection error: %w", err)
			}
			defer pool.Close()

			n, err := db.Seed(cmd.Context(), pool)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("seed finished", slog.Int("inserted", n))
			return nil
		},
	}
}

// probeCmd checks that the gateway is reachable with the configured keys.
func probeCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check connectivity to Paystack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Paystack.Validate(); err != nil {
				return err
			}
			banks, err := paystack.NewClient(cfg.Paystack, logger).Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("paystack probe: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Paystack connection successful! Found %d banks.\n", banks)
			return nil
		},
	}
}
