package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"xorcrack/internal/api"
	"xorcrack/internal/app"
)

func main() {
	var configPath, addr string
	var verbose bool

	cmd := &cobra.Command{
		Use:          "xorcrackd",
		Short:        "HTTP server for single-byte XOR key recovery",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, addr, verbose)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(parent context.Context, configPath, addr string, verbose bool) error {
	cfg, err := app.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	// The server always computes locally.
	cfg.Server.URL = ""

	logger, err := app.NewLogger(cfg.Logging, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	w, err := app.NewWire(cfg, logger)
	if err != nil {
		return err
	}
	timeout, _ := cfg.ServerTimeout()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewHandler(w.Crack, logger.Named("http"), cfg.Server.MaxBodyBytes),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      timeout,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("xorcrackd listening",
			zap.String("addr", srv.Addr),
			zap.Stringer("keys", w.Breaker.Keys),
			zap.Int("workers", cfg.Batch.Workers),
		)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
