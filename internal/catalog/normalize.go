package catalog

import (
	"github.com/pfrederiksen/pavilion-events/internal/event"
	"github.com/pfrederiksen/pavilion-events/internal/genre"
	"github.com/pfrederiksen/pavilion-events/internal/scraper"
)

// Fixed venue identity, used when the raw record carries no location.
const (
	DefaultVenueName    = "The Cynthia Woods Mitchell Pavilion"
	DefaultVenueAddress = "2005 Lake Robbins Dr, The Woodlands, TX 77380"
)

// Profile bundles the normalization policies that historically diverged
// between the scheduled refresh job and the browser client: the genre
// table and the artist fallback rule.
type Profile struct {
	Genre          *genre.Profile
	ArtistFallback event.ArtistFallback
}

// ServerProfile is used by the scheduled refresh pipeline.
var ServerProfile = Profile{
	Genre:          genre.Server,
	ArtistFallback: event.FallbackFullName,
}

// ClientProfile reproduces the browser client's normalization.
var ClientProfile = Profile{
	Genre:          genre.Client,
	ArtistFallback: event.FallbackFirstThreeWords,
}

// Normalize converts one raw record into a canonical Event. It is pure and
// total: missing optional fields degrade to defaults, never to errors.
func Normalize(raw scraper.RawEvent, p Profile) *event.Event {
	artist := event.ExtractArtist(raw.Name, p.ArtistFallback)

	evt := &event.Event{
		ID:          event.DeriveID(raw.URL, raw.Name, raw.StartDate),
		Name:        raw.Name,
		Date:        raw.StartDate,
		Artist:      artist,
		Genre:       p.Genre.Classify(artist, raw.Name),
		URL:         raw.URL,
		Description: raw.Description,
		Venue:       DefaultVenueName,
		Address:     DefaultVenueAddress,
		EventType:   raw.Type.String(),
		Status:      raw.EventStatus,
	}

	if raw.Location != nil {
		if raw.Location.Name != "" {
			evt.Venue = raw.Location.Name
		}
		if raw.Location.Address != "" {
			evt.Address = string(raw.Location.Address)
		}
	}
	if raw.Offers != nil {
		evt.Availability = raw.Offers.Availability
		evt.AvailableFrom = raw.Offers.ValidFrom
	}

	return evt
}

// NormalizeAll maps a deduplicated raw sequence into canonical events.
func NormalizeAll(raws []scraper.RawEvent, p Profile) []*event.Event {
	events := make([]*event.Event, 0, len(raws))
	for _, raw := range raws {
		events = append(events, Normalize(raw, p))
	}
	return events
}
