package groomkit

const (
	eventChurnPredictionRequested = "churn_prediction_requested"
	eventChurnPredictionCompleted = "churn_prediction_completed"
	eventAlertRaised              = "alert_raised"
	eventAlertCritical            = "critical_alert_raised"
	eventRetentionTagged          = "retention_tagged"
	eventNotificationQueued       = "notification_queued"
	eventNotificationRejected     = "notification_rejected"
	eventSyncStarted              = "sync_started"
	eventSyncCompleted            = "sync_completed"
	eventSyncError                = "sync_error"
)
