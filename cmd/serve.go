package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "charity/internal/adapter/http"
	"charity/internal/adapter/paystack"
	"charity/internal/adapter/postgres"
	"charity/internal/adapter/usecase"
	"charity/internal/config"
	"charity/internal/db"
)

const shutdownTimeout = 5 * time.Second

// serveCmd runs the site until SIGINT or SIGTERM. It optionally applies
// migrations and seeds demo campaigns first, then starts the HTTP server
// and shuts it down gracefully. exitCode receives 128+signal on a
// signal-triggered stop.
func serveCmd(cfg config.Config, logger *slog.Logger, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the donation site",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Paystack.Validate(); err != nil {
				return err
			}
			if cfg.Psql.RunMigrations {
				if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
					logger.Error("migration error", slog.Any("error", err))
				} else {
					logger.Info("migrations applied successfully")
				}
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			pool, err := db.NewPostgresPool(ctx, cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection error: %w", err)
			}
			defer pool.Close()

			if cfg.Psql.Seed {
				n, err := db.Seed(ctx, pool)
				if err != nil {
					logger.Error("seed error", slog.Any("error", err))
				} else if n > 0 {
					logger.Info("demo campaigns seeded", slog.Int("count", n))
				}
			}

			repo := postgres.NewDonationRepository(pool)
			gateway := paystack.NewClient(cfg.Paystack, logger)
			svc := usecase.NewDonationUseCase(repo, gateway, cfg.Site.CallbackURL(), logger)

			handler := httpadapter.NewHandler(svc, logger, cfg.Site, cfg.HTTP.StaticDir)
			srv := &http.Server{
				Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
				Handler:      handler.Router(),
				ReadTimeout:  cfg.HTTP.ReadTimeout,
				WriteTimeout: cfg.HTTP.WriteTimeout,
			}

			go func() {
				logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server error", slog.Any("error", err))
					cancel()
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)
			select {
			case value := <-quit:
				*exitCode = 128 + int(value.(syscall.Signal))
			case <-ctx.Done():
				*exitCode = 1
			}

			shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stop()
			if err = srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server shutdown error", slog.Any("error", err))
			} else {
				logger.Info("server gracefully stopped")
			}
			return nil
		},
	}
}
