package groomkit

import (
	"errors"

	"github.com/pawdesk/groomkit/internal/stores"
)

// Component names stamped onto recorded events, one per business engine.
const (
	// ComponentChurn is an exported constant or variable used by the grooming engine.
	ComponentChurn = "churn_engine"
	// ComponentAlerts is an exported constant or variable used by the grooming engine.
	ComponentAlerts = "alerts_engine"
	// ComponentRetention is an exported constant or variable used by the grooming engine.
	ComponentRetention = "retention_engine"
	// ComponentNotifications is an exported constant or variable used by the grooming engine.
	ComponentNotifications = "notifications_engine"
	// ComponentSync is an exported constant or variable used by the grooming engine.
	ComponentSync = "sync_engine"
)

// ErrUnknownComponent is an exported constant or variable used by the grooming engine.
var ErrUnknownComponent = errors.New("groomkit: unknown component")

// Engine defines a public type used by groomkit APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config    Config
	auditCtx  *AuditContext
	metrics   *Metrics
	syncStore *stores.SyncStateStore

	churn         *Recorder
	alerts        *Recorder
	retention     *Recorder
	notifications *Recorder
	sync          *Recorder
}

// Close describes the close operation and its observable behavior.
//
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	for _, r := range e.recorders() {
		r.Close()
	}
}

// AuditContext returns the identity state shared by every recorder. The
// session subsystem writes it; everything else should only read.
func (e *Engine) AuditContext() *AuditContext {
	if e == nil {
		return nil
	}
	return e.auditCtx
}

// Snapshot returns an independent oldest-first copy of one component's audit
// trail.
func (e *Engine) Snapshot(component string) ([]EventRecord, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	r, err := e.recorder(component)
	if err != nil {
		return nil, err
	}
	return r.Snapshot(), nil
}

// RenderTrail renders one component's audit trail as human-readable lines.
func (e *Engine) RenderTrail(component string) (string, error) {
	records, err := e.Snapshot(component)
	if err != nil {
		return "", err
	}
	return RenderRecords(records), nil
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// TelemetryDropped returns the total number of deliveries dropped across all
// recorders because their dispatch queues were full.
func (e *Engine) TelemetryDropped() uint64 {
	if e == nil {
		return 0
	}
	var total uint64
	for _, r := range e.recorders() {
		total += r.Dropped()
	}
	return total
}

func (e *Engine) recorder(component string) (*Recorder, error) {
	var r *Recorder
	switch component {
	case ComponentChurn:
		r = e.churn
	case ComponentAlerts:
		r = e.alerts
	case ComponentRetention:
		r = e.retention
	case ComponentNotifications:
		r = e.notifications
	case ComponentSync:
		r = e.sync
	default:
		return nil, ErrUnknownComponent
	}
	if r == nil {
		return nil, ErrEngineNotReady
	}
	return r, nil
}

func (e *Engine) recorders() []*Recorder {
	out := make([]*Recorder, 0, 5)
	for _, r := range []*Recorder{e.churn, e.alerts, e.retention, e.notifications, e.sync} {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}
