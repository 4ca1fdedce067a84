package event

import "time"

// dateLayouts are tried in order when parsing a startDate string. The
// ticketing site's structured data uses local wall-clock times without a
// zone ("2025-08-01T20:00:00"); RFC3339 variants show up on some listings.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate attempts to parse an event date string.
// Returns time.Time{} (zero value) if parsing fails.
func ParseDate(date string) time.Time {
	if date == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// When returns the event's parsed start time, zero if unparseable.
func (e *Event) When() time.Time {
	return ParseDate(e.Date)
}

// IsUpcoming reports whether the event is in the future.
// Returns true if the date cannot be parsed (safer default).
func (e *Event) IsUpcoming() bool {
	t := e.When()
	if t.IsZero() {
		return true
	}
	return t.After(time.Now())
}
