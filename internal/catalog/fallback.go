package catalog

import "github.com/pfrederiksen/pavilion-events/internal/event"

// FallbackEvents returns the fixed, hand-authored dataset served when no
// valid cached snapshot exists. It is never empty and never fails; callers
// under total backend failure still get usable data.
func FallbackEvents() []*event.Event {
	return []*event.Event{
		{
			ID:     "3A006132D7DB5895",
			Name:   `"Weird Al" Yankovic: Bigger & Weirder 2025 Tour`,
			Date:   "2025-08-01T20:00:00",
			Artist: `"Weird Al" Yankovic`,
			Genre:  "Comedy",
			URL:    "https://www.ticketmaster.com/event/3A006132D7DB5895",
		},
		{
			ID:     "3A0062AFB5E23EBB",
			Name:   "Falling In Reverse: God Is A Weapon Tour",
			Date:   "2025-08-14T18:15:00",
			Artist: "Falling In Reverse",
			Genre:  "Rock",
			URL:    "https://www.ticketmaster.com/event/3A0062AFB5E23EBB",
		},
		{
			ID:     "3A006231E6515041",
			Name:   "Jason Aldean: Full Throttle Tour 2025",
			Date:   "2025-08-15T19:30:00",
			Artist: "Jason Aldean",
			Genre:  "Country",
			URL:    "https://www.ticketmaster.com/event/3A006231E6515041",
		},
		{
			ID:     "3A006252AD863971",
			Name:   "Big Time Rush: In Real Life Worldwide",
			Date:   "2025-08-17T19:00:00",
			Artist: "Big Time Rush",
			Genre:  "Pop",
			URL:    "https://www.ticketmaster.com/event/3A006252AD863971",
		},
		{
			ID:     "3A006259DC044577",
			Name:   "The Offspring: SUPERCHARGED Worldwide in '25",
			Date:   "2025-08-23T19:00:00",
			Artist: "The Offspring",
			Genre:  "Rock",
			URL:    "https://www.ticketmaster.com/event/3A006259DC044577",
		},
	}
}
