package groomkit

import "context"

// AlertSeverity defines a public type used by groomkit APIs.
//
// AlertSeverity instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AlertSeverity string

const (
	// SeverityInfo is an exported constant or variable used by the grooming engine.
	SeverityInfo AlertSeverity = "info"
	// SeverityWarning is an exported constant or variable used by the grooming engine.
	SeverityWarning AlertSeverity = "warning"
	// SeverityCritical is an exported constant or variable used by the grooming engine.
	SeverityCritical AlertSeverity = "critical"
)

// RaiseAlert describes the raisealert operation and its observable behavior.
//
// RaiseAlert may return an error when input validation or engine wiring fails.
// RaiseAlert does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) RaiseAlert(ctx context.Context, severity AlertSeverity, message string) error {
	if e == nil || e.alerts == nil {
		return ErrEngineNotReady
	}
	if message == "" {
		return ErrAlertMessageRequired
	}

	name := eventAlertRaised
	if severity == SeverityCritical {
		// The critical event name carries the escalation keyword, so the
		// classifier flags it without a separate severity field.
		name = eventAlertCritical
		e.metricInc(MetricAlertCritical)
	}

	e.metricInc(MetricAlertRaised)
	e.alerts.Record(ctx, name, map[string]string{
		"severity": string(severity),
		"message":  message,
	})

	return nil
}
