// Package stores provides the Redis-backed sync cursor store used by the sync
// engine.
//
// # Design
//
// The cursor is a small HSET per prefix recording when the last sync ran and
// how many runs have completed. Advancing the cursor uses a single pipelined
// HSET/HINCRBY round-trip; reads tolerate a missing key and return a zero
// cursor.
//
// # Architecture boundaries
//
// This package owns persistence of sync progress. It does NOT decide when to
// sync or what a sync does — those responsibilities belong to the sync engine.
//
// # What this package must NOT do
//
//   - Record telemetry events.
//   - Import groomkit or any sibling internal package.
package stores
