package scraper

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RawEvent is an untyped bag of fields as they appear in the source page's
// structured data. Any field may be missing; normalization supplies
// defaults later.
type RawEvent struct {
	Type        TypeTag   `json:"@type"`
	Name        string    `json:"name"`
	StartDate   string    `json:"startDate"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Location    *Location `json:"location"`
	EventStatus string    `json:"eventStatus"`
	Offers      *Offers   `json:"offers"`
}

// Location carries the venue name and address from the raw record.
type Location struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// Offers carries ticket availability fields. The source emits either a
// single object or an array; for an array the first offer wins.
type Offers struct {
	Availability string `json:"availability"`
	ValidFrom    string `json:"validFrom"`
}

func (o *Offers) UnmarshalJSON(b []byte) error {
	type plain Offers
	var p plain
	if err := json.Unmarshal(b, &p); err == nil {
		*o = Offers(p)
		return nil
	}
	var arr []plain
	if err := json.Unmarshal(b, &arr); err == nil && len(arr) > 0 {
		*o = Offers(arr[0])
	}
	// Any other shape degrades to empty offers, not an error.
	return nil
}

// TypeTag is the record's "@type", which the source emits as either a
// string ("MusicEvent") or an array of strings (["Event","MusicEvent"]).
type TypeTag struct {
	tags      []string
	fromArray bool
}

// NewTypeTag builds a tag for a single-string "@type" value.
func NewTypeTag(s string) TypeTag {
	return TypeTag{tags: []string{s}}
}

func (t *TypeTag) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = TypeTag{tags: []string{s}}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*t = TypeTag{tags: arr, fromArray: true}
	}
	return nil
}

func (t TypeTag) String() string {
	return strings.Join(t.tags, ",")
}

// IsEvent reports whether the type tag marks an event record. String tags
// match any "Event" subtype ("MusicEvent" counts); array tags must carry
// the exact element "Event".
func (t TypeTag) IsEvent() bool {
	if t.fromArray {
		for _, s := range t.tags {
			if s == "Event" {
				return true
			}
		}
		return false
	}
	return len(t.tags) == 1 && strings.Contains(t.tags[0], "Event")
}

// Address is a venue address, emitted by the source as either a plain
// string or a PostalAddress object.
type Address string

func (a *Address) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Address(s)
		return nil
	}
	var postal struct {
		StreetAddress   string `json:"streetAddress"`
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
		PostalCode      string `json:"postalCode"`
	}
	if err := json.Unmarshal(b, &postal); err != nil {
		return nil
	}
	parts := make([]string, 0, 3)
	if postal.StreetAddress != "" {
		parts = append(parts, postal.StreetAddress)
	}
	if postal.AddressLocality != "" {
		parts = append(parts, postal.AddressLocality)
	}
	region := strings.TrimSpace(postal.AddressRegion + " " + postal.PostalCode)
	if region != "" {
		parts = append(parts, region)
	}
	*a = Address(strings.Join(parts, ", "))
	return nil
}

// Strategy extracts raw events from one page of markup. Strategies are
// best-effort: a strategy that finds nothing returns an empty slice.
type Strategy func(html string) []RawEvent

// Strategies is the prioritized list of extraction strategies. The JSON-LD
// blocks are authoritative when present; the embedded script-variable form
// was observed on an alternate listing page and is kept as a fallback.
var Strategies = []Strategy{
	ExtractJSONLD,
	ExtractScriptVar,
}

// Extract runs the strategies in priority order and returns the first
// non-empty result. Zero events is a valid, if degenerate, outcome.
func Extract(html string) []RawEvent {
	for _, strategy := range Strategies {
		if raws := strategy(html); len(raws) > 0 {
			return raws
		}
	}
	return nil
}

// ExtractJSONLD scans the markup for <script type="application/ld+json">
// blocks and collects every element whose type tag includes "Event".
// Malformed blocks and non-event elements are skipped silently; one bad
// block never aborts extraction of the others.
func ExtractJSONLD(html string) []RawEvent {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	events := make([]RawEvent, 0)
	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, sel *goquery.Selection) {
		events = append(events, decodeBlock(sel.Text())...)
	})
	return events
}

// eventsVarPattern matches the embedded "var events = [...];" assignment
// used by the alternate listing page.
var eventsVarPattern = regexp.MustCompile(`(?s)var\s+events\s*=\s*(\[.*?\]);`)

// ExtractScriptVar pulls events out of an embedded JavaScript variable
// assignment when no structured-data blocks are present.
func ExtractScriptVar(html string) []RawEvent {
	m := eventsVarPattern.FindStringSubmatch(html)
	if m == nil {
		return nil
	}
	return decodeBlock(m[1])
}

// decodeBlock parses one JSON array and keeps its event-typed elements.
// Elements are decoded individually so a single bad entry does not discard
// its siblings.
func decodeBlock(raw string) []RawEvent {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil
	}

	events := make([]RawEvent, 0, len(elements))
	for _, el := range elements {
		var evt RawEvent
		if err := json.Unmarshal(el, &evt); err != nil {
			continue
		}
		if evt.Type.IsEvent() {
			events = append(events, evt)
		}
	}
	return events
}

// DedupeRaw drops raw records whose URL was already seen, keeping
// first-seen. Pagination and repeated structured-data blocks on a single
// page commonly list the same event more than once. Records without a URL
// pass through; they are deduplicated by derived ID at snapshot assembly.
func DedupeRaw(raws []RawEvent) []RawEvent {
	seen := make(map[string]bool, len(raws))
	unique := make([]RawEvent, 0, len(raws))
	for _, raw := range raws {
		if raw.URL != "" {
			if seen[raw.URL] {
				continue
			}
			seen[raw.URL] = true
		}
		unique = append(unique, raw)
	}
	return unique
}
