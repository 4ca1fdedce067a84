package event

import (
	"sort"
	"time"
)

// Snapshot is the single cached catalog unit: the full event listing plus
// the time it was assembled. A snapshot is always replaced wholesale, never
// mutated in place.
type Snapshot struct {
	LastUpdated string   `json:"lastUpdated"`
	Events      []*Event `json:"events"`
}

// NewSnapshot assembles a snapshot from normalized events: duplicates by ID
// are dropped (first occurrence wins) and the listing is sorted ascending
// by date before it is frozen.
func NewSnapshot(events []*Event, at time.Time) *Snapshot {
	unique := DedupeByID(events)
	SortByDate(unique)
	return &Snapshot{
		LastUpdated: at.UTC().Format(time.RFC3339),
		Events:      unique,
	}
}

// DedupeByID drops events whose ID was already seen, keeping first-seen.
func DedupeByID(events []*Event) []*Event {
	seen := make(map[string]bool, len(events))
	unique := make([]*Event, 0, len(events))
	for _, evt := range events {
		if seen[evt.ID] {
			continue
		}
		seen[evt.ID] = true
		unique = append(unique, evt)
	}
	return unique
}

// SortByDate orders events ascending by start date. Events with an
// unparseable date sort to the end, keeping their relative order.
func SortByDate(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		ti, tj := events[i].When(), events[j].When()
		if ti.IsZero() {
			return false
		}
		if tj.IsZero() {
			return true
		}
		return ti.Before(tj)
	})
}

// Diff returns the events in current that were not present in the previous
// snapshot, keyed by ID. A nil previous snapshot means everything is new.
func Diff(previous *Snapshot, current []*Event) []*Event {
	known := make(map[string]bool)
	if previous != nil {
		for _, evt := range previous.Events {
			known[evt.ID] = true
		}
	}

	fresh := make([]*Event, 0)
	for _, evt := range current {
		if !known[evt.ID] {
			fresh = append(fresh, evt)
		}
	}
	return fresh
}
