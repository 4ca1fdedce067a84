package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/pavilion-events/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteEvents writes the normalized events in the specified format
func WriteEvents(w io.Writer, events []*event.Event, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(events)
	case FormatText:
		return writeText(w, events)
	default:
		return fmt.Errorf("unknown format: %s (must be 'text' or 'json')", format)
	}
}

// writeText outputs events as human-readable text
func writeText(w io.Writer, events []*event.Event) error {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for _, evt := range events {
		fmt.Fprintf(w, "%s  [%s] %s\n", evt.Date, evt.Genre, evt.Name)
		if evt.Artist != "" && evt.Artist != evt.Name {
			fmt.Fprintf(w, "%*sArtist: %s\n", len(evt.Date)+2, "", evt.Artist)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d events\n", len(events))

	return nil
}
