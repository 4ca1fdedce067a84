// Package genre assigns a genre label to an event by keyword lookup over
// the artist and event name.
//
// Two historical keyword tables exist: the one used by the scheduled
// refresh job and a slightly different one that shipped with the browser
// client. Rather than unify them, both are kept as Profile instances of a
// single parameterized classifier so each call site preserves its observed
// behavior.
package genre

import "strings"

// Entry pairs a genre with the keywords that select it. Entries are tested
// in order; the first genre with any substring match wins.
type Entry struct {
	Genre    string
	Keywords []string
}

// Heuristic is a secondary keyword check applied after the table misses
// and before the profile default.
type Heuristic struct {
	Keyword string
	Genre   string
}

// Profile is a complete classification policy: an ordered keyword table,
// optional fallback heuristics, and a default genre.
type Profile struct {
	Name       string
	Table      []Entry
	Heuristics []Heuristic
	Default    string
}

// Classify returns the genre for an event, lower-casing the concatenation
// of artist and event name and walking the profile's table in order.
// It always returns a non-empty genre.
func (p *Profile) Classify(artist, eventName string) string {
	text := strings.ToLower(artist + " " + eventName)

	for _, entry := range p.Table {
		for _, keyword := range entry.Keywords {
			if strings.Contains(text, keyword) {
				return entry.Genre
			}
		}
	}

	for _, h := range p.Heuristics {
		if strings.Contains(text, h.Keyword) {
			return h.Genre
		}
	}

	return p.Default
}

// Vocabulary returns the closed set of genres the profile can produce,
// including its default.
func (p *Profile) Vocabulary() []string {
	seen := make(map[string]bool)
	vocab := make([]string, 0, len(p.Table)+len(p.Heuristics)+1)
	add := func(g string) {
		if !seen[g] {
			seen[g] = true
			vocab = append(vocab, g)
		}
	}
	for _, entry := range p.Table {
		add(entry.Genre)
	}
	for _, h := range p.Heuristics {
		add(h.Genre)
	}
	add(p.Default)
	return vocab
}

// Server is the profile used by the scheduled refresh pipeline. The table
// mixes genre words with known headliner names; the default is Rock.
var Server = &Profile{
	Name: "server",
	Table: []Entry{
		{"Rock", []string{"rock", "alternative", "punk", "metal", "judas priest", "alice cooper", "offspring", "falling in reverse"}},
		{"Country", []string{"country", "aldean", "mccollum", "whiskey myers", "lainey wilson", "keith urban"}},
		{"Hip Hop", []string{"hip hop", "rap", "nelly", "ja rule", "lil wayne", "thuggish"}},
		{"Pop", []string{"pop", "big time rush"}},
		{"Comedy", []string{"weird al", "yankovic", "comedy"}},
		{"Family", []string{"kidz bop", "kids", "family"}},
		{"R&B", []string{"r&b", "r & b", "cookout", "charlie", "leon bridges"}},
		{"Folk", []string{"lumineers", "folk"}},
		{"Regional Mexican", []string{"junior h", "mexican"}},
		{"Alternative", []string{"day to remember", "yellowcard"}},
	},
	Default: "Rock",
}

// Client is the profile the browser client historically applied to raw
// data. Its table is genre-word only, it carries extra fallback
// heuristics, and it defaults to Pop.
var Client = &Profile{
	Name: "client",
	Table: []Entry{
		{"Rock", []string{"rock", "alternative", "indie", "punk", "metal"}},
		{"Pop", []string{"pop", "top 40", "mainstream"}},
		{"Country", []string{"country", "americana", "bluegrass"}},
		{"Hip Hop", []string{"hip hop", "rap", "r&b", "urban"}},
		{"Electronic", []string{"electronic", "edm", "dance", "house"}},
		{"Classical", []string{"classical", "orchestra", "symphony"}},
		{"Jazz", []string{"jazz", "blues", "soul"}},
		{"Comedy", []string{"comedy", "stand-up", "humor"}},
		{"Family", []string{"family", "kids", "children"}},
	},
	Heuristics: []Heuristic{
		{"tour", "Rock"},
		{"fest", "Pop"},
		{"symphony", "Classical"},
	},
	Default: "Pop",
}
