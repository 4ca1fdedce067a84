package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pavilion-events/internal/cache"
	"github.com/pfrederiksen/pavilion-events/internal/catalog"
	"github.com/pfrederiksen/pavilion-events/internal/config"
	"github.com/pfrederiksen/pavilion-events/internal/logger"
	"github.com/pfrederiksen/pavilion-events/internal/notifier"
	"github.com/pfrederiksen/pavilion-events/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pavilion-events",
		Short: "Scrape, cache and serve pavilion event listings",
		Long: `Maintains a periodically-refreshed catalog of shows at The Cynthia
Woods Mitchell Pavilion, scraped from the ticketing site's public venue
page, and serves it over HTTP with a 24h cache.`,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newRefreshCmd())
	cmd.AddCommand(newScrapeCmd())

	return cmd
}

// loadConfig loads configuration and applies the verbosity flag.
func loadConfig() (*config.Config, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newStore selects the cache backend: Redis when an address is configured,
// in-memory otherwise.
func newStore(cfg *config.Config) cache.Store {
	if cfg.Cache.RedisAddr != "" {
		return cache.NewRedis(cache.RedisOpts{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			Key:      cfg.Cache.Key,
			TTL:      cfg.Cache.TTL.Std(),
		})
	}
	return cache.NewMemory(cfg.Cache.TTL.Std())
}

// newScraper builds the scraper from config, falling back to the live
// venue page.
func newScraper(cfg *config.Config) *scraper.Scraper {
	baseURL := cfg.Scrape.BaseURL
	if baseURL == "" {
		baseURL = scraper.VenuePageURL
	}
	return scraper.NewWithOptions(baseURL, cfg.Scrape.Timeout.Std(), cfg.Scrape.MaxPages)
}

// newRefresher assembles the pipeline, attaching a notifier when enabled.
func newRefresher(cfg *config.Config, store cache.Store) *catalog.Refresher {
	r := catalog.NewRefresher(newScraper(cfg), store)

	if cfg.Refresh.Notify {
		if cfg.Refresh.DryRun {
			r.Notifier = notifier.NewDryRunNotifier()
		} else if tw, err := notifier.NewTwitterNotifier(); err != nil {
			logger.Warn("notifications disabled", logger.Fields{"error": err.Error()})
		} else {
			r.Notifier = tw
		}
	}
	return r
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
