// Package cache stores the single catalog snapshot with a time-to-live.
//
// The cache holds exactly one logical entry. A snapshot written at time T
// is served for reads before T+TTL and treated as absent afterwards. Two
// implementations share the contract: a Redis-backed store relying on the
// server's native key expiry, and an in-memory store computing staleness
// from the write time (used for development and tests).
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/pfrederiksen/pavilion-events/internal/event"
)

// DefaultTTL is how long a snapshot stays servable after a write.
const DefaultTTL = 24 * time.Hour

// DefaultKey is the logical cache key for the catalog snapshot.
const DefaultKey = "pavilion-events"

// ErrNoSnapshot is returned by Get when no snapshot exists or the stored
// one has expired.
var ErrNoSnapshot = errors.New("cache: no snapshot")

// Store is the catalog cache contract. Put replaces the snapshot wholesale
// and restarts the TTL; Get returns ErrNoSnapshot on miss or expiry.
type Store interface {
	Get(ctx context.Context) (*event.Snapshot, error)
	Put(ctx context.Context, snap *event.Snapshot) error
}
