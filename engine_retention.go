package groomkit

import "context"

// RetentionTag is the tag assigned to one customer by the retention engine.
type RetentionTag struct {
	CustomerID string
	Tag        string
}

// TagRetention describes the tagretention operation and its observable behavior.
//
// TagRetention may return an error when input validation or engine wiring fails.
// TagRetention does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) TagRetention(ctx context.Context, customerID string) (RetentionTag, error) {
	if e == nil || e.retention == nil {
		return RetentionTag{}, ErrEngineNotReady
	}
	if customerID == "" {
		return RetentionTag{}, ErrCustomerRequired
	}

	tag := RetentionTag{
		CustomerID: customerID,
		Tag:        e.config.Retention.DefaultTag,
	}

	e.metricInc(MetricRetentionTagged)
	e.retention.Record(ctx, eventRetentionTagged, map[string]string{
		"customer_id": customerID,
		"tag":         tag.Tag,
	})

	return tag, nil
}
