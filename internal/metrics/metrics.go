// Package metrics exposes Prometheus collectors for the refresh pipeline
// and the serving layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RefreshTotal counts refresh runs by terminal status
	// ("ok", "fetch_error", "cache_error").
	RefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pavilion_refresh_total",
			Help: "Refresh pipeline runs by status.",
		},
		[]string{"status"},
	)

	// RefreshDuration observes end-to-end refresh latency.
	RefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pavilion_refresh_duration_seconds",
			Help:    "End-to-end refresh pipeline duration.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CachedEvents tracks the size of the last committed snapshot.
	CachedEvents = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pavilion_cached_events",
			Help: "Events in the most recently committed snapshot.",
		},
	)

	// CatalogRequests counts catalog reads by response source
	// ("cache" or "fallback").
	CatalogRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pavilion_catalog_requests_total",
			Help: "Catalog endpoint responses by data source.",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(RefreshTotal, RefreshDuration, CachedEvents, CatalogRequests)
}
