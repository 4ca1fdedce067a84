package event

import (
	"crypto/sha1"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Event represents a canonical, normalized show listing at the pavilion.
// The JSON field names are the wire contract consumed by the web client
// and must stay stable.
type Event struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	Artist        string `json:"artist"`
	Genre         string `json:"genre"`
	URL           string `json:"url,omitempty"`
	Description   string `json:"description,omitempty"`
	Venue         string `json:"venue,omitempty"`
	Address       string `json:"address,omitempty"`
	EventType     string `json:"eventType,omitempty"`
	Status        string `json:"status,omitempty"`
	Availability  string `json:"availability,omitempty"`
	AvailableFrom string `json:"availableFrom,omitempty"`
}

// DeriveID returns a stable identifier for an event. The trailing path
// segment of the ticket URL is preferred (it is the ticketing site's own
// event key). When the URL has no usable segment, the ID is a SHA1 of
// name and start date, so the same listing maps to the same ID on every
// refresh.
func DeriveID(url, name, startDate string) string {
	if seg := trailingSegment(url); seg != "" {
		return seg
	}
	return GenerateID(name, startDate)
}

// GenerateID creates a deterministic ID from stable event fields.
func GenerateID(name, startDate string) string {
	h := sha1.New()
	h.Write([]byte(name + "|" + startDate))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// trailingSegment extracts the final path segment of a URL, ignoring any
// query string and trailing slashes. A URL with no path beyond the host
// yields "".
func trailingSegment(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	seg := path.Base(strings.TrimRight(u.Path, "/"))
	if seg == "." || seg == "/" {
		return ""
	}
	return seg
}
