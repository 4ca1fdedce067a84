package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pfrederiksen/pavilion-events/internal/event"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store misses", func(t *testing.T) {
		store := NewMemory(0)
		if _, err := store.Get(ctx); !errors.Is(err, ErrNoSnapshot) {
			t.Errorf("expected ErrNoSnapshot, got %v", err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		store := NewMemory(0)
		snap := event.NewSnapshot([]*event.Event{
			{ID: "a", Name: "Show", Date: "2025-08-01T20:00:00"},
		}, time.Now())

		if err := store.Put(ctx, snap); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(got.Events) != 1 || got.Events[0].ID != "a" {
			t.Errorf("unexpected snapshot contents: %+v", got)
		}
	})

	t.Run("expired snapshot treated as absent", func(t *testing.T) {
		store := NewMemory(5 * time.Millisecond)
		snap := event.NewSnapshot(nil, time.Now())

		if err := store.Put(ctx, snap); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		if _, err := store.Get(ctx); err != nil {
			t.Fatalf("Get immediately after Put failed: %v", err)
		}

		time.Sleep(20 * time.Millisecond)

		if _, err := store.Get(ctx); !errors.Is(err, ErrNoSnapshot) {
			t.Errorf("expected ErrNoSnapshot after TTL, got %v", err)
		}
	})

	t.Run("put restarts the TTL", func(t *testing.T) {
		store := NewMemory(40 * time.Millisecond)

		if err := store.Put(ctx, event.NewSnapshot(nil, time.Now())); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		time.Sleep(25 * time.Millisecond)
		if err := store.Put(ctx, event.NewSnapshot(nil, time.Now())); err != nil {
			t.Fatalf("second Put failed: %v", err)
		}
		time.Sleep(25 * time.Millisecond)

		// 50ms after the first write but only 25ms after the second.
		if _, err := store.Get(ctx); err != nil {
			t.Errorf("expected fresh snapshot after rewrite, got %v", err)
		}
	})
}
