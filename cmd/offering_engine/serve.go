package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"frizo/offering_engine/internal/api"
	"frizo/offering_engine/internal/config"
	"frizo/offering_engine/internal/logger"
	"frizo/offering_engine/internal/metrics"
	"frizo/offering_engine/internal/submission"
	"frizo/offering_engine/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("Starting Offering Engine",
		"version", version.Short(),
		"environment", cfg.Environment,
		"store", cfg.StoreDriver,
	)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Address(), err)
	}
	return serve(ctx, cfg, log, listener)
}

// serve runs the API on listener until ctx is cancelled, then drains in-flight
// requests for at most cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, listener net.Listener) error {
	store, err := submission.Open(ctx, cfg.StoreDriver, cfg.DatabaseURL)
	if err != nil {
		listener.Close()
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("Failed to close submission store", "error", err)
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Handler:           api.NewServer(store, metrics.New(), log).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Offering Engine is running", "address", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down Offering Engine...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Offering Engine stopped")
	return nil
}
