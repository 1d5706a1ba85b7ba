package groomkit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pawdesk/groomkit/internal/ring"
)

// Recorder defines a public type used by groomkit APIs.
//
// Recorder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// A Recorder owns one bounded audit trail for one component. Record classifies
// the event, stamps the current audit context, appends under a short critical
// section, then hands the record to the delivery dispatcher. The in-memory
// trail is authoritative: it reflects every Record call regardless of what
// the delivery sink does with it.
type Recorder struct {
	component  string
	auditCtx   *AuditContext
	metrics    *Metrics
	dispatcher *deliveryDispatcher

	mu       sync.Mutex
	buffer   *ring.Buffer[EventRecord]
	lastTime time.Time
}

// NewRecorder creates a recorder with the given trail capacity (clamped to a
// minimum of one). A nil delivery is replaced with [NoOpDelivery]; a nil
// audit context records events with empty identity fields.
func NewRecorder(component string, capacity int, auditCtx *AuditContext, sink Delivery, cfg TelemetryConfig, metrics *Metrics) *Recorder {
	return &Recorder{
		component:  component,
		auditCtx:   auditCtx,
		metrics:    metrics,
		dispatcher: newDeliveryDispatcher(cfg, sink),
		buffer:     ring.New[EventRecord](capacity),
	}
}

// Record appends one event to the trail and forwards it to delivery.
//
// Record never fails and never rejects input: an empty name is accepted so
// that no audit-relevant call is silently dropped. The append is visible to
// any Snapshot issued after Record returns, even while delivery is still
// outstanding. Safe for concurrent use.
func (r *Recorder) Record(ctx context.Context, name string, metadata map[string]string) {
	if r == nil {
		return
	}

	escalate := classifyEscalation(name, metadata)

	role, staffID := r.auditCtx.Snapshot()
	if override, ok := roleFromContext(ctx); ok {
		role = override
	}
	if override, ok := staffIDFromContext(ctx); ok {
		staffID = override
	}

	record := EventRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Metadata:  cloneMetadata(metadata),
		Role:      role,
		StaffID:   staffID,
		Component: r.component,
		Escalate:  escalate,
	}

	r.mu.Lock()
	now := time.Now().UTC()
	if now.Before(r.lastTime) {
		now = r.lastTime
	}
	r.lastTime = now
	record.Timestamp = now
	r.buffer.Append(record)
	r.mu.Unlock()

	r.metricInc(MetricEventRecorded)
	if escalate {
		r.metricInc(MetricEventEscalated)
	}

	// Delivery runs outside the critical section; a slow or dead sink must
	// not stall Record or Snapshot.
	r.dispatcher.Enqueue(ctx, record)
}

// Snapshot returns an independent copy of the trail, oldest first. Mutating
// the returned slice does not affect the recorder. Safe to call concurrently
// with Record.
func (r *Recorder) Snapshot() []EventRecord {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buffer.Snapshot()
}

// Capacity returns the fixed trail capacity.
func (r *Recorder) Capacity() int {
	if r == nil {
		return 0
	}
	return r.buffer.Cap()
}

// Component returns the component name stamped onto recorded events.
func (r *Recorder) Component() string {
	if r == nil {
		return ""
	}
	return r.component
}

// Dropped returns how many deliveries were discarded because the dispatch
// queue was full. The trail itself never drops short of eviction.
func (r *Recorder) Dropped() uint64 {
	if r == nil {
		return 0
	}
	return r.dispatcher.Dropped()
}

// Close drains outstanding deliveries and stops the dispatch goroutine.
// Record calls after Close still append to the trail but are no longer
// forwarded.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	r.dispatcher.Close()
}

func (r *Recorder) metricInc(id MetricID) {
	if r == nil || r.metrics == nil {
		return
	}
	r.metrics.Inc(id)
}
