package scraper

import (
	"encoding/json"
	"os"
	"testing"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/venue_page.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestExtractJSONLD(t *testing.T) {
	raws := ExtractJSONLD(loadFixture(t))

	// Fixture: block 1 has 2 events + 1 non-event, block 2 is malformed,
	// block 3 has 2 events (one a repeat). Raw extraction keeps repeats;
	// dedup is a separate stage.
	if len(raws) != 4 {
		t.Fatalf("expected 4 raw events, got %d", len(raws))
	}

	first := raws[0]
	if first.Name != `"Weird Al" Yankovic: Bigger & Weirder 2025 Tour` {
		t.Errorf("unexpected first event name: %q", first.Name)
	}
	if first.StartDate != "2025-08-01T20:00:00" {
		t.Errorf("unexpected startDate: %q", first.StartDate)
	}
	if first.Location == nil || first.Location.Name != "The Cynthia Woods Mitchell Pavilion" {
		t.Error("expected location name to be populated")
	}
	if string(first.Location.Address) != "2005 Lake Robbins Dr, The Woodlands, TX 77380" {
		t.Errorf("postal address object should flatten to a string, got %q", first.Location.Address)
	}
	if first.Offers == nil || first.Offers.Availability != "https://schema.org/InStock" {
		t.Error("expected offers availability to be populated")
	}

	// Offers as array: first offer wins.
	second := raws[1]
	if second.Offers == nil || second.Offers.Availability != "https://schema.org/InStock" {
		t.Error("expected array-shaped offers to decode from first element")
	}

	// String-shaped address passes through.
	third := raws[2]
	if string(third.Location.Address) != "2005 Lake Robbins Dr, The Woodlands, TX 77380" {
		t.Errorf("string address should pass through, got %q", third.Location.Address)
	}
}

func TestExtractMalformedBlocksAreLocal(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">[{"@type":"MusicEvent","name":"A","startDate":"2025-08-01T20:00:00"}]</script>
		<script type="application/ld+json">{{{ broken</script>
		<script type="application/ld+json">not json either</script>
		<script type="application/ld+json">[{"@type":"MusicEvent","name":"B","startDate":"2025-09-01T20:00:00"}]</script>
		</head><body></body></html>`

	raws := Extract(html)
	if len(raws) != 2 {
		t.Fatalf("expected 2 events regardless of malformed blocks, got %d", len(raws))
	}
	if raws[0].Name != "A" || raws[1].Name != "B" {
		t.Errorf("expected document order A, B; got %q, %q", raws[0].Name, raws[1].Name)
	}
}

func TestExtractFiltersNonEvents(t *testing.T) {
	html := `<script type="application/ld+json">[
		{"@type":"Organization","name":"Ticketmaster"},
		{"@type":"MusicEvent","name":"Show"},
		{"@type":["Event","TheaterEvent"],"name":"Play"},
		{"@type":"WebSite","name":"Site"}
	]</script>`

	raws := Extract(html)
	if len(raws) != 2 {
		t.Fatalf("expected only event-typed records, got %d", len(raws))
	}
	if raws[0].Name != "Show" || raws[1].Name != "Play" {
		t.Errorf("wrong records kept: %q, %q", raws[0].Name, raws[1].Name)
	}
}

func TestTypeTagIsEvent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"string event subtype", `"MusicEvent"`, true},
		{"string non-event", `"Organization"`, false},
		{"array carrying Event", `["Event","MusicEvent"]`, true},
		{"array of subtypes only", `["MusicEvent","TheaterEvent"]`, false},
		{"empty array", `[]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tag TypeTag
			if err := json.Unmarshal([]byte(tt.raw), &tag); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.raw, err)
			}
			if got := tag.IsEvent(); got != tt.want {
				t.Errorf("IsEvent(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractNoEventsIsNotAnError(t *testing.T) {
	if raws := Extract("<html><body><p>maintenance</p></body></html>"); len(raws) != 0 {
		t.Errorf("expected zero events from empty page, got %d", len(raws))
	}
}

func TestExtractScriptVarFallback(t *testing.T) {
	html := `<html><body><script>
		var pageId = 7;
		var events = [{"@type":"MusicEvent","name":"Hidden Show","startDate":"2025-11-01T19:00:00","url":"https://www.ticketmaster.com/event/ABC123"}];
		initPage(events);
	</script></body></html>`

	raws := Extract(html)
	if len(raws) != 1 {
		t.Fatalf("expected script-var strategy to find 1 event, got %d", len(raws))
	}
	if raws[0].Name != "Hidden Show" {
		t.Errorf("unexpected event name: %q", raws[0].Name)
	}
}

func TestStrategyPriority(t *testing.T) {
	// Both forms present: JSON-LD wins.
	html := `<html><head>
		<script type="application/ld+json">[{"@type":"MusicEvent","name":"Primary"}]</script>
		<script>var events = [{"@type":"MusicEvent","name":"Secondary"}];</script>
		</head></html>`

	raws := Extract(html)
	if len(raws) != 1 || raws[0].Name != "Primary" {
		t.Fatalf("expected JSON-LD strategy to take priority, got %v", raws)
	}
}

func TestDedupeRaw(t *testing.T) {
	raws := []RawEvent{
		{Name: "first", URL: "https://www.ticketmaster.com/event/X"},
		{Name: "no url"},
		{Name: "second", URL: "https://www.ticketmaster.com/event/X"},
		{Name: "other", URL: "https://www.ticketmaster.com/event/Y"},
	}

	unique := DedupeRaw(raws)
	if len(unique) != 3 {
		t.Fatalf("expected 3 unique records, got %d", len(unique))
	}
	if unique[0].Name != "first" {
		t.Errorf("first occurrence should win, got %q", unique[0].Name)
	}
}
