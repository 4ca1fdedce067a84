// Package event provides the canonical event record and snapshot types for
// pavilion show listings.
//
// Each event carries a deterministic identifier derived from its ticket URL
// (or a SHA1 of name and date when no URL is available), an artist name
// extracted from the listing title, and a genre assigned by keyword
// classification. A Snapshot freezes the full listing sorted by date and is
// the unit stored in and served from the catalog cache.
package event
