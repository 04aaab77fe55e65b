package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HerbHall/apidex/internal/catalog"
	"github.com/HerbHall/apidex/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Addr()
			}
			return runServe(cmd.Context(), a, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from server.host and server.port)")
	return cmd
}

func runServe(ctx context.Context, a *app, addr string) error {
	cfg, logger := a.cfg, a.logger

	handler := catalog.NewHandler(a.engine, logger,
		catalog.WithCache(cfg.GetDuration("cache.ttl"), cfg.GetDuration("cache.cleanup")),
	)
	srv := server.New(addr, logger, server.Options{
		ReadTimeout:  cfg.GetDuration("server.read_timeout"),
		WriteTimeout: cfg.GetDuration("server.write_timeout"),
		IdleTimeout:  cfg.GetDuration("server.idle_timeout"),
		RateLimit: server.RateLimitConfig{
			Enabled:  cfg.GetBool("server.rate_limit.enabled"),
			Requests: cfg.GetInt("server.rate_limit.requests"),
			Window:   cfg.GetDuration("server.rate_limit.window"),
		},
	}, handler)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Info("apidex server ready", zap.String("addr", addr))

	// Wait for shutdown signal
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetDuration("server.shutdown_timeout"))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
		return err
	}

	logger.Info("apidex server stopped")
	return nil
}
