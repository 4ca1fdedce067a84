package genre

import "testing"

func TestServerClassify(t *testing.T) {
	tests := []struct {
		artist   string
		name     string
		expected string
	}{
		{"Alice Cooper", "Alice Cooper & Judas Priest Live", "Rock"},
		{"Judas Priest", "An Evening With", "Rock"},
		{`"Weird Al" Yankovic`, "Bigger & Weirder 2025 Tour", "Comedy"},
		{"Jason Aldean", "Full Throttle Tour 2025", "Country"},
		{"Nelly", "Where The Party At Tour", "Hip Hop"},
		{"KIDZ BOP", "KIDZ BOP LIVE Certified BOP Tour", "Family"},
		{"Charlie Wilson", "Uncle Charlie's R & B Cookout", "R&B"},
		{"The Lumineers", "The Automatic World Tour", "Folk"},
		{"Junior H", "$AD BOYZ LIVE & BROKEN TOUR", "Regional Mexican"},
		// No keyword anywhere: the refresh pipeline defaults to Rock.
		{"Mystery Act", "An Evening Of Surprises", "Rock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Server.Classify(tt.artist, tt.name)
			if got != tt.expected {
				t.Errorf("Server.Classify(%q, %q) = %q, expected %q", tt.artist, tt.name, got, tt.expected)
			}
		})
	}
}

func TestClientClassify(t *testing.T) {
	tests := []struct {
		artist   string
		name     string
		expected string
	}{
		{"The Offspring", "Punk Rock Night", "Rock"},
		{"Houston Symphony", "Holiday Symphony Spectacular", "Classical"},
		// Table misses, "tour" heuristic catches it.
		{"Parker McCollum", "Parker McCollum Tour", "Rock"},
		// Table misses, "fest" heuristic catches it.
		{"Various", "Fall Fest Lineup", "Pop"},
		// Nothing matches at all: the client default is Pop, not Rock.
		{"Mystery Act", "An Evening Of Surprises", "Pop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Client.Classify(tt.artist, tt.name)
			if got != tt.expected {
				t.Errorf("Client.Classify(%q, %q) = %q, expected %q", tt.artist, tt.name, got, tt.expected)
			}
		})
	}
}

func TestClassifyNeverEmpty(t *testing.T) {
	for _, p := range []*Profile{Server, Client} {
		if got := p.Classify("", ""); got == "" {
			t.Errorf("%s profile returned empty genre", p.Name)
		}
	}
}

func TestVocabularyClosed(t *testing.T) {
	vocab := make(map[string]bool)
	for _, g := range Server.Vocabulary() {
		vocab[g] = true
	}

	inputs := [][2]string{
		{"Alice Cooper", "Live"},
		{"Totally Unknown", "No Keywords Here"},
		{"Leon Bridges", "Leon Bridges: Live Tour"},
	}
	for _, in := range inputs {
		got := Server.Classify(in[0], in[1])
		if !vocab[got] {
			t.Errorf("Classify(%q, %q) = %q, outside the profile vocabulary", in[0], in[1], got)
		}
	}
}
