// Package notifier provides notification interfaces and implementations
// for newly listed pavilion shows.
//
// The notifier package supports announcing events that appear in a refresh
// but were absent from the previous snapshot. It handles OAuth
// authentication, rate limiting, and message formatting. Notification
// failures are reported to the caller but never fail a refresh.
package notifier
