// Package ring implements the fixed-capacity FIFO buffer behind every recorder.
//
// # Components
//
//   - [Buffer] — generic bounded store; appending to a full buffer evicts the
//     single oldest element.
//
// # Architecture boundaries
//
// This package owns bounding and eviction. It does NOT decide what goes into
// the buffer or when — that responsibility belongs to the Recorder.
//
// # What this package must NOT do
//
//   - Synchronize. Callers serialize access; the buffer itself is not safe
//     for concurrent use.
//   - Import groomkit or any sibling internal package.
package ring
