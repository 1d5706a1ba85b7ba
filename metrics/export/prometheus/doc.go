// Package prometheus provides Prometheus collectors for groomkit metrics.
//
// [NewPrometheusExporter] accepts a [groomkit.Engine] and exposes an [http.Handler]
// that renders all groomkit counters and histograms in Prometheus text exposition
// format. Counter names are prefixed groomkit_*_total; the single histogram is
// groomkit_sync_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
