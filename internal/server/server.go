// Package server exposes the catalog over HTTP.
//
// Two endpoints carry the wire contract: GET /api/events serves the cached
// snapshot, degrading to the fixed fallback dataset so it never fails
// toward the client, and /api/cron triggers a refresh behind a
// shared-secret bearer credential. Health and Prometheus metrics endpoints
// ride along.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pfrederiksen/pavilion-events/internal/cache"
	"github.com/pfrederiksen/pavilion-events/internal/catalog"
)

// Refresher is the slice of the refresh pipeline the cron endpoint needs.
type Refresher interface {
	Refresh(ctx context.Context) (*catalog.Result, error)
}

// Options wires the server's collaborators.
type Options struct {
	Store      cache.Store
	Refresher  Refresher
	CronSecret string
}

// Server handles the catalog HTTP surface.
type Server struct {
	store      cache.Store
	refresher  Refresher
	cronSecret string
}

// NewRouter builds the HTTP handler with standard middleware.
func NewRouter(opts Options) http.Handler {
	s := &Server{
		store:      opts.Store,
		refresher:  opts.Refresher,
		cronSecret: opts.CronSecret,
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// The events endpoint is GET-only but must answer other methods itself
	// with the contract's 405 body (and CORS headers), so it is registered
	// for every method.
	r.HandleFunc("/api/events", s.handleEvents)
	r.Post("/api/cron", s.handleCron)

	return r
}
