package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Run one scrape-and-cache pass",
		Long: `Fetches the venue listing, normalizes it and commits a fresh snapshot
to the cache. Intended for external schedulers (cron, systemd timers).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := newStore(cfg)
			refresher := newRefresher(cfg, store)

			result, err := refresher.Refresh(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Cached %d events (%d newly listed) at %s\n",
				result.EventCount, result.NewListings, result.LastUpdated)
			return nil
		},
	}
}
