// Package cli wires configuration, the cache, the scraper and the HTTP
// server into the pavilion-events command tree.
package cli
