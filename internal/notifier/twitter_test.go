package notifier

import (
	"strings"
	"testing"

	"github.com/pfrederiksen/pavilion-events/internal/event"
)

func TestFormatTweet(t *testing.T) {
	evt := &event.Event{
		ID:     "3A00624AD74F46E7",
		Name:   "The Lumineers: The Automatic World Tour",
		Date:   "2025-10-10T19:30:00",
		Artist: "The Lumineers",
		Genre:  "Folk",
		URL:    "https://www.ticketmaster.com/event/3A00624AD74F46E7",
	}

	tweet := formatTweet(evt)

	if !strings.Contains(tweet, evt.Name) {
		t.Error("tweet should contain the event name")
	}
	if !strings.Contains(tweet, evt.URL) {
		t.Error("tweet should contain the ticket URL")
	}
	if !strings.Contains(tweet, "Oct 10 2025") {
		t.Errorf("tweet should contain the formatted date, got:\n%s", tweet)
	}
}

func TestFormatTweetLengthLimit(t *testing.T) {
	evt := &event.Event{
		ID:   "long",
		Name: strings.Repeat("Very Long Event Name ", 20),
		URL:  "https://www.ticketmaster.com/event/" + strings.Repeat("X", 100),
	}

	tweet := formatTweet(evt)
	if len(tweet) > 280 {
		t.Errorf("tweet exceeds 280 characters: %d", len(tweet))
	}
	if !strings.HasSuffix(tweet, "...") {
		t.Error("truncated tweet should end with ellipsis")
	}
}

func TestFormatTweetOmitsUnknownDate(t *testing.T) {
	evt := &event.Event{ID: "x", Name: "Mystery Show", Date: "tba"}
	tweet := formatTweet(evt)
	if strings.Contains(tweet, "📅") {
		t.Error("tweet should omit the date line when the date is unparseable")
	}
}
