// Package scraper provides HTTP fetching and structured-data extraction
// for the pavilion's public listing page.
//
// The scraper fetches the paginated venue page from the ticketing site and
// extracts raw event records from embedded JSON-LD blocks, falling back to
// an embedded script-variable form seen on an alternate page. Extraction is
// best-effort: malformed blocks are skipped without aborting the rest, and
// raw records are deduplicated by canonical URL before normalization.
package scraper
