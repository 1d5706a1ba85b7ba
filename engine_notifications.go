package groomkit

import "context"

// QueueNotification describes the queuenotification operation and its observable behavior.
//
// QueueNotification may return an error when input validation or engine wiring fails.
// QueueNotification does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) QueueNotification(ctx context.Context, customerID, channel, message string) error {
	if e == nil || e.notifications == nil {
		return ErrEngineNotReady
	}
	if customerID == "" {
		return ErrCustomerRequired
	}
	if channel == "" || message == "" {
		return ErrNotificationInvalid
	}

	if !e.notificationChannelAllowed(channel) {
		e.notifications.Record(ctx, eventNotificationRejected, map[string]string{
			"customer_id": customerID,
			"channel":     channel,
			"reason":      "channel_not_allowed",
		})
		return ErrNotificationInvalid
	}

	// Actual fan-out belongs to the messaging provider; this engine only
	// accepts and records the request.
	e.metricInc(MetricNotificationQueued)
	e.notifications.Record(ctx, eventNotificationQueued, map[string]string{
		"customer_id": customerID,
		"channel":     channel,
	})

	return nil
}

func (e *Engine) notificationChannelAllowed(channel string) bool {
	allowed := e.config.Notifications.Channels
	if len(allowed) == 0 {
		return true
	}
	for _, c := range allowed {
		if c == channel {
			return true
		}
	}
	return false
}
