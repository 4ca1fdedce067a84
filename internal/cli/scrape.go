package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pavilion-events/internal/catalog"
	"github.com/pfrederiksen/pavilion-events/internal/event"
)

func newScrapeCmd() *cobra.Command {
	var (
		profileName string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape the venue page and print the normalized events",
		Long: `Fetches and normalizes the venue listing without touching the cache.
The client profile mirrors how the browser frontend labels events; the
server profile is what the refresh pipeline caches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var profile catalog.Profile
			switch profileName {
			case "server":
				profile = catalog.ServerProfile
			case "client":
				profile = catalog.ClientProfile
			default:
				return fmt.Errorf("unknown profile %q (want server or client)", profileName)
			}

			raws, err := newScraper(cfg).FetchAll(context.Background())
			if err != nil {
				return err
			}

			events := catalog.NormalizeAll(raws, profile)
			event.SortByDate(events)

			return WriteEvents(os.Stdout, events, OutputFormat(format))
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "server", "Normalization profile: server or client")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or text")

	return cmd
}
