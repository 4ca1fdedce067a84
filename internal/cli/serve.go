package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pavilion-events/internal/catalog"
	"github.com/pfrederiksen/pavilion-events/internal/config"
	"github.com/pfrederiksen/pavilion-events/internal/logger"
	"github.com/pfrederiksen/pavilion-events/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP server",
		Long: `Serves the cached event catalog over HTTP. When refresh.interval is
set, a background ticker keeps the cache warm; otherwise refreshes only
happen through the authenticated cron endpoint.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	store := newStore(cfg)
	refresher := newRefresher(cfg, store)

	router := server.NewRouter(server.Options{
		Store:      store,
		Refresher:  refresher,
		CronSecret: cfg.Refresh.Secret,
	})

	srv := &http.Server{
		Addr:         cfg.Server.ListenAddress,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if interval := cfg.Refresh.Interval.Std(); interval > 0 {
		go runTicker(ctx, refresher, interval)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", logger.Fields{"addr": cfg.Server.ListenAddress})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runTicker refreshes on a fixed interval until ctx is cancelled. An
// immediate first run warms the cache at startup.
func runTicker(ctx context.Context, r *catalog.Refresher, interval time.Duration) {
	if _, err := r.Refresh(ctx); err != nil {
		logger.Error("scheduled refresh failed", nil, err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Refresh(ctx); err != nil {
				logger.Error("scheduled refresh failed", nil, err)
			}
		}
	}
}
