package groomkit

import (
	"sync"
	"testing"
	"time"
)

func TestMetricsIncAndValue(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricEventRecorded)
	m.Inc(MetricEventRecorded)
	m.Inc(MetricAlertCritical)

	if got := m.Value(MetricEventRecorded); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := m.Value(MetricAlertCritical); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := m.Value(MetricSyncRun); got != 0 {
		t.Fatalf("expected untouched counter 0, got %d", got)
	}
}

func TestMetricsDisabledIsInert(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricEventRecorded)
	m.Observe(MetricSyncLatency, 10*time.Millisecond)

	if got := m.Value(MetricEventRecorded); got != 0 {
		t.Fatalf("disabled metrics must not count, got %d", got)
	}

	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("disabled snapshot must be empty, got %+v", snap)
	}
}

func TestMetricsNilReceiverSafe(t *testing.T) {
	var m *Metrics

	m.Inc(MetricEventRecorded)
	m.Observe(MetricSyncLatency, time.Millisecond)

	if m.Value(MetricEventRecorded) != 0 {
		t.Fatal("nil Metrics should report zero")
	}
	if m.Enabled() || m.LatencyEnabled() {
		t.Fatal("nil Metrics should report disabled")
	}
}

func TestMetricsLatencyBuckets(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	durations := []time.Duration{
		2 * time.Millisecond,   // bucket 0
		8 * time.Millisecond,   // bucket 1
		40 * time.Millisecond,  // bucket 3
		900 * time.Millisecond, // bucket 7
	}
	for _, d := range durations {
		m.Observe(MetricSyncLatency, d)
	}

	snap := m.Snapshot()
	buckets, ok := snap.Histograms[MetricSyncLatency]
	if !ok {
		t.Fatal("expected sync latency histogram in snapshot")
	}
	want := []uint64{1, 1, 0, 1, 0, 0, 0, 1}
	for i, w := range want {
		if buckets[i] != w {
			t.Fatalf("bucket %d: expected %d, got %d (all: %v)", i, w, buckets[i], buckets)
		}
	}
}

func TestMetricsObserveIgnoresNonLatencyIDs(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricEventRecorded, 10*time.Millisecond)

	snap := m.Snapshot()
	if len(snap.Histograms[MetricSyncLatency]) > 0 {
		for _, v := range snap.Histograms[MetricSyncLatency] {
			if v != 0 {
				t.Fatalf("non-latency observe leaked into histogram: %v", snap.Histograms)
			}
		}
	}
}

func TestMetricsSnapshotIsIndependent(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricEventRecorded)

	snap := m.Snapshot()
	snap.Counters[MetricEventRecorded] = 99

	if m.Value(MetricEventRecorded) != 1 {
		t.Fatal("mutating the snapshot must not affect live counters")
	}
	if m.Snapshot().Counters[MetricEventRecorded] != 1 {
		t.Fatal("second snapshot must reflect live state, not the mutated copy")
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.Inc(MetricEventRecorded)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricEventRecorded); got != workers*perWorker {
		t.Fatalf("expected %d, got %d", workers*perWorker, got)
	}
}
