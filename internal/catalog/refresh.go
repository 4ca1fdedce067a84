package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pfrederiksen/pavilion-events/internal/cache"
	"github.com/pfrederiksen/pavilion-events/internal/event"
	"github.com/pfrederiksen/pavilion-events/internal/logger"
	"github.com/pfrederiksen/pavilion-events/internal/metrics"
	"github.com/pfrederiksen/pavilion-events/internal/notifier"
	"github.com/pfrederiksen/pavilion-events/internal/scraper"
)

// Refresher runs the full scrape-normalize-cache pipeline. A run either
// commits a complete snapshot or commits nothing; the previous snapshot
// stays authoritative on any failure.
type Refresher struct {
	Scraper  *scraper.Scraper
	Store    cache.Store
	Profile  Profile
	Notifier notifier.Notifier // optional; announces newly listed shows
}

// NewRefresher creates a refresher with the server normalization profile.
func NewRefresher(s *scraper.Scraper, store cache.Store) *Refresher {
	return &Refresher{
		Scraper: s,
		Store:   store,
		Profile: ServerProfile,
	}
}

// Result summarizes a successful refresh run.
type Result struct {
	RunID       string `json:"runId"`
	EventCount  int    `json:"eventCount"`
	NewListings int    `json:"newListings"`
	LastUpdated string `json:"lastUpdated"`
}

// Refresh fetches the venue listing, builds a fresh snapshot and commits
// it to the cache. Reads of the previous snapshot are only used to detect
// newly listed shows; they never gate the commit.
func (r *Refresher) Refresh(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	start := time.Now()

	logger.Info("refresh started", logger.Fields{"run_id": runID})

	raws, err := r.Scraper.FetchAll(ctx)
	if err != nil {
		metrics.RefreshTotal.WithLabelValues("fetch_error").Inc()
		logger.Error("refresh fetch failed", logger.Fields{"run_id": runID}, err)
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	events := NormalizeAll(raws, r.Profile)

	// Best-effort read of the outgoing snapshot for diffing; a cache miss
	// or read error just means every event counts as new.
	previous, prevErr := r.Store.Get(ctx)
	if prevErr != nil {
		previous = nil
	}

	snap := event.NewSnapshot(events, time.Now())
	if err := r.Store.Put(ctx, snap); err != nil {
		metrics.RefreshTotal.WithLabelValues("cache_error").Inc()
		logger.Error("snapshot commit failed", logger.Fields{"run_id": runID}, err)
		return nil, fmt.Errorf("caching snapshot: %w", err)
	}

	fresh := event.Diff(previous, snap.Events)

	metrics.RefreshTotal.WithLabelValues("ok").Inc()
	metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	metrics.CachedEvents.Set(float64(len(snap.Events)))

	logger.Info("refresh complete", logger.Fields{
		"run_id":       runID,
		"events":       len(snap.Events),
		"new_listings": len(fresh),
		"duration_ms":  time.Since(start).Milliseconds(),
	})

	if r.Notifier != nil && len(fresh) > 0 {
		if err := r.Notifier.Notify(fresh); err != nil {
			// The snapshot is already committed; a failed announcement
			// must not fail the refresh.
			logger.Error("notification failed", logger.Fields{"run_id": runID}, err)
		}
	}

	return &Result{
		RunID:       runID,
		EventCount:  len(snap.Events),
		NewListings: len(fresh),
		LastUpdated: snap.LastUpdated,
	}, nil
}
