package groomkit

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the grooming engine.
	ErrEngineNotReady = errors.New("groomkit: engine not ready")
	// ErrBuilderUsed is an exported constant or variable used by the grooming engine.
	ErrBuilderUsed = errors.New("groomkit: builder already used")
	// ErrSyncUnavailable is an exported constant or variable used by the grooming engine.
	ErrSyncUnavailable = errors.New("groomkit: sync backend unavailable")
	// ErrCustomerRequired is an exported constant or variable used by the grooming engine.
	ErrCustomerRequired = errors.New("groomkit: customer id required")
	// ErrNotificationInvalid is an exported constant or variable used by the grooming engine.
	ErrNotificationInvalid = errors.New("groomkit: notification channel and message required")
	// ErrAlertMessageRequired is an exported constant or variable used by the grooming engine.
	ErrAlertMessageRequired = errors.New("groomkit: alert message required")
)
