package groomkit

import (
	"context"
	"strconv"
	"time"
)

// SyncResult reports a completed sync run.
type SyncResult struct {
	RanAt time.Time
	Runs  uint64
}

// SyncNow describes the syncnow operation and its observable behavior.
//
// SyncNow may return an error when the sync backend is unavailable.
// SyncNow does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SyncNow(ctx context.Context) (SyncResult, error) {
	if e == nil || e.sync == nil {
		return SyncResult{}, ErrEngineNotReady
	}

	start := time.Now()
	e.sync.Record(ctx, eventSyncStarted, nil)

	if e.syncStore == nil {
		e.metricInc(MetricSyncFailure)
		e.sync.Record(ctx, eventSyncError, map[string]string{
			"error": "Critical failure: sync backend unavailable",
		})
		return SyncResult{}, ErrSyncUnavailable
	}

	ranAt := start.UTC()
	if err := e.syncStore.Advance(ctx, ranAt); err != nil {
		e.metricInc(MetricSyncFailure)
		e.sync.Record(ctx, eventSyncError, map[string]string{
			"error": "Critical failure: " + err.Error(),
		})
		return SyncResult{}, ErrSyncUnavailable
	}

	cursor, err := e.syncStore.Cursor(ctx)
	if err != nil {
		e.metricInc(MetricSyncFailure)
		e.sync.Record(ctx, eventSyncError, map[string]string{
			"error": "Critical failure: " + err.Error(),
		})
		return SyncResult{}, ErrSyncUnavailable
	}

	e.metricInc(MetricSyncRun)
	if e.metrics != nil {
		e.metrics.Observe(MetricSyncLatency, time.Since(start))
	}
	e.sync.Record(ctx, eventSyncCompleted, map[string]string{
		"runs": strconv.FormatUint(cursor.Runs, 10),
	})

	return SyncResult{RanAt: ranAt, Runs: cursor.Runs}, nil
}
