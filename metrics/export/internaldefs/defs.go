package internaldefs

import (
	groomkit "github.com/pawdesk/groomkit"
)

// CounterDef defines a public type used by groomkit APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   groomkit.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by groomkit APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   groomkit.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the grooming engine.
var CounterDefs = []CounterDef{
	{ID: groomkit.MetricEventRecorded, Name: "groomkit_event_recorded_total", Help: "Events appended to audit trails."},
	{ID: groomkit.MetricEventEscalated, Name: "groomkit_event_escalated_total", Help: "Recorded events classified as high-severity."},
	{ID: groomkit.MetricChurnPrediction, Name: "groomkit_churn_prediction_total", Help: "Completed churn predictions."},
	{ID: groomkit.MetricAlertRaised, Name: "groomkit_alert_raised_total", Help: "Raised alerts of any severity."},
	{ID: groomkit.MetricAlertCritical, Name: "groomkit_alert_critical_total", Help: "Raised critical alerts."},
	{ID: groomkit.MetricRetentionTagged, Name: "groomkit_retention_tagged_total", Help: "Customers tagged by the retention engine."},
	{ID: groomkit.MetricNotificationQueued, Name: "groomkit_notification_queued_total", Help: "Accepted notification requests."},
	{ID: groomkit.MetricSyncRun, Name: "groomkit_sync_run_total", Help: "Completed sync runs."},
	{ID: groomkit.MetricSyncFailure, Name: "groomkit_sync_failure_total", Help: "Sync runs that failed against the backend."},
}

// HistogramDefs is an exported constant or variable used by the grooming engine.
var HistogramDefs = []HistogramDef{
	{ID: groomkit.MetricSyncLatency, Name: "groomkit_sync_latency_seconds", Help: "Sync run latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the grooming engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the grooming engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
