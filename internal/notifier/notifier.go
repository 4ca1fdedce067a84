package notifier

import (
	"github.com/pfrederiksen/pavilion-events/internal/event"
)

// Notifier defines the interface for announcing newly listed events
type Notifier interface {
	// Notify posts announcements for the given events
	Notify(events []*event.Event) error
}
