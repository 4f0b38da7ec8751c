package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"ourspace/internal/auth"
	"ourspace/internal/config"
	"ourspace/internal/handlers"
	"ourspace/internal/logging"
	"ourspace/internal/service"
	"ourspace/internal/store"
	"ourspace/internal/views"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "ourspace",
		Short:         "Shared to-do list, diary and movie watchlist",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "reset-db",
		Short: "Delete every task, diary entry and movie",
		Long:  "Drop and recreate all tables. There is no confirmation and no undo.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResetDB(cmd.Context(), configPath, cmd.OutOrStdout())
		},
	})

	return root
}

// setup loads configuration, installs the logger and opens the store.
func setup(configPath string) (*config.Config, *slog.Logger, *store.SQLiteStore, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := logging.NewLogger(cfg.Log)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s, err := store.NewSQLiteStore(cfg.Database.Path, cfg.Database.BusyTimeout)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return cfg, logger, s, nil
}

func runResetDB(ctx context.Context, configPath string, out io.Writer) error {
	_, logger, s, err := setup(configPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := service.New(s, logger).ResetStorage(ctx); err != nil {
		return err
	}

	fmt.Fprintln(out, "Database has been reset!")
	return nil
}

func runServe(ctx context.Context, configPath string) error {
	cfg, logger, s, err := setup(configPath)
	if err != nil {
		return err
	}
	defer s.Close()

	gate, err := auth.NewGate(cfg.Auth.Users)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	tmpl, err := views.Parse()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	h := handlers.New(service.New(s, logger), gate, tmpl, logger)

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: h.Router(handlers.RouterOptions{
			Static:       views.Static(),
			ResetEnabled: !cfg.Server.DisableReset,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("db", cfg.Database.Path),
			slog.Bool("reset_enabled", !cfg.Server.DisableReset),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
