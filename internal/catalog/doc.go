// Package catalog turns raw scraped records into the canonical cached
// catalog.
//
// Normalization derives a stable identifier, extracts the headline artist,
// classifies the genre and fills venue defaults. The Refresher composes
// the full pipeline: fetch, extract, dedupe, normalize, sort, and a single
// atomic snapshot commit to the cache. The package also owns the fixed
// fallback dataset served when no valid snapshot exists.
package catalog
