package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restaurant/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// NewRootCommand builds the restaurant CLI.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "restaurant",
		Short:        "Restaurant ordering backend",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(serveCmd(&envFile), migrateCmd(&envFile))
	return root
}

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Provision the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(*envFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func migrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Provision the schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(*envFile)
			if err != nil {
				return err
			}

			logger := cfg.NewLogger()
			db, err := postgres.Open(cmd.Context(), cfg.Driver(), cfg.DSN(), logger)
			if err != nil {
				return err
			}
			defer func() { _ = postgres.Close(db) }()

			if err = postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			logger.InfoContext(cmd.Context(), "Schema provisioned", "driver", cfg.Driver())
			return nil
		},
	}
}

func serve(ctx context.Context, cfg Config) error {
	logger := cfg.NewLogger()

	db, err := postgres.Open(ctx, cfg.Driver(), cfg.DSN(), logger)
	if err != nil {
		return err
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		_ = postgres.Close(db)
		return err
	}

	app, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		_ = postgres.Close(db)
		return err
	}
	defer func() {
		if closeErr := app.Close(context.Background()); closeErr != nil {
			logger.Error("Failed to release resources", "error", closeErr)
		}
	}()

	e, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", cfg.HTTPPort, "driver", cfg.Driver())
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
