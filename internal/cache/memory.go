package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pfrederiksen/pavilion-events/internal/event"
)

// Memory is an in-process snapshot store with TTL semantics matching the
// Redis store. Expiry is checked on read; an expired snapshot is dropped.
type Memory struct {
	mu        sync.RWMutex
	snap      *event.Snapshot
	writtenAt time.Time
	ttl       time.Duration
}

// NewMemory creates an in-memory store with the given TTL (DefaultTTL when
// zero).
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl}
}

// Get returns the stored snapshot, or ErrNoSnapshot when absent or expired.
func (m *Memory) Get(ctx context.Context) (*event.Snapshot, error) {
	m.mu.RLock()
	snap, writtenAt := m.snap, m.writtenAt
	m.mu.RUnlock()

	if snap == nil {
		return nil, ErrNoSnapshot
	}
	if time.Since(writtenAt) >= m.ttl {
		m.mu.Lock()
		// Re-check under the write lock; a fresher Put may have landed.
		if m.snap == snap {
			m.snap = nil
		}
		m.mu.Unlock()
		return nil, ErrNoSnapshot
	}
	return snap, nil
}

// Put replaces the snapshot atomically and restarts the TTL.
func (m *Memory) Put(ctx context.Context, snap *event.Snapshot) error {
	m.mu.Lock()
	m.snap = snap
	m.writtenAt = time.Now()
	m.mu.Unlock()
	return nil
}
