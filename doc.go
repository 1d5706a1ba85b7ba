// Package groomkit provides the shared telemetry core for the pawdesk grooming
// suite: an audit-context-aware event recorder with a bounded in-memory trail,
// automatic escalation classification, and pluggable delivery sinks.
//
// The package is designed for concurrent workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// groomkit is the public surface. It exposes [Engine], [Builder], [Config], the
// [Recorder] telemetry pipeline, and value types (EventRecord, MetricsSnapshot,
// etc.). Reusable coordination — the bounded ring buffer, the sync cursor
// store — lives under internal/ and is never exported.
//
// # What this package must NOT do
//
//   - Guarantee delivery. The trail reachable through [Recorder.Snapshot] is
//     authoritative; sinks are best-effort.
//   - Fail a caller because a sink failed. Delivery errors and panics are
//     swallowed inside the dispatch loop.
//   - Perform I/O outside of Engine methods (construction via Builder is
//     allocation-only until Build).
//
// # Performance contract
//
// Record is the hot path. Buffer mutation happens under a short critical
// section; sink I/O runs on a separate dispatcher goroutine and never holds
// the buffer lock.
package groomkit
