package event

import (
	"regexp"
	"strings"
)

// ArtistFallback selects what to do when no headline pattern matches an
// event name. The scheduled refresh keeps the full name; the stricter
// variant used by the interactive scrape output truncates to the first
// three words. Both behaviors predate this codebase and are kept as-is.
type ArtistFallback int

const (
	FallbackFullName ArtistFallback = iota
	FallbackFirstThreeWords
)

// artistPatterns are tried in order; the first match wins. Order matters:
// "A Day To Remember & Yellowcard - Maximum Fun Tour" must resolve via the
// hyphen pattern (keeping the "&"), not the and/& pattern.
var artistPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([^:]+):`),                          // "Artist: Tour Name"
	regexp.MustCompile(`^([^-]+) -`),                         // "Artist - Tour Name"
	regexp.MustCompile(`(?i)^(.+?)\s+(?:with|w/|feat\.|featuring)`), // "Artist with Support"
	regexp.MustCompile(`(?i)^(.+?)\s+(?:&|and)\s+`),          // "Artist & Artist"
}

// ExtractArtist derives a headline artist from an event name.
func ExtractArtist(name string, fallback ArtistFallback) string {
	for _, pattern := range artistPatterns {
		if m := pattern.FindStringSubmatch(name); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	if fallback == FallbackFirstThreeWords {
		words := strings.Fields(name)
		if len(words) > 3 {
			words = words[:3]
		}
		return strings.Join(words, " ")
	}
	return name
}
