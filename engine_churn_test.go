package groomkit

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
)

func newTestEngine(t *testing.T, sink Delivery, rdb redis.UniversalClient) *Engine {
	t.Helper()

	builder := New().
		WithConfig(defaultConfig()).
		WithMetricsEnabled(true)
	if sink != nil {
		builder = builder.WithDelivery(sink)
	} else {
		builder = builder.WithDelivery(NoOpDelivery{})
	}
	if rdb != nil {
		builder = builder.WithRedis(rdb)
	}

	engine, err := builder.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine
}

func TestPredictChurnReturnsBaseline(t *testing.T) {
	engine := newTestEngine(t, nil, nil)
	ctx := context.Background()

	prediction, err := engine.PredictChurn(ctx, "cust-1")
	if err != nil {
		t.Fatalf("PredictChurn failed: %v", err)
	}
	if prediction.CustomerID != "cust-1" {
		t.Fatalf("unexpected customer id %q", prediction.CustomerID)
	}
	if prediction.Probability != defaultConfig().Churn.BaselineProbability {
		t.Fatalf("expected baseline probability, got %v", prediction.Probability)
	}
	if prediction.Model != churnModelVersion {
		t.Fatalf("expected model %q, got %q", churnModelVersion, prediction.Model)
	}
}

func TestPredictChurnRecordsRequestAndResult(t *testing.T) {
	engine := newTestEngine(t, nil, nil)
	ctx := context.Background()

	if _, err := engine.PredictChurn(ctx, "cust-1"); err != nil {
		t.Fatalf("PredictChurn failed: %v", err)
	}

	snap, err := engine.Snapshot(ComponentChurn)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap) != 2 {
		t.Fatalf("expected 2 recorded events, got %d", len(snap))
	}
	if snap[0].Name != eventChurnPredictionRequested || snap[1].Name != eventChurnPredictionCompleted {
		t.Fatalf("unexpected event sequence: %s, %s", snap[0].Name, snap[1].Name)
	}
	if snap[1].Metadata["customer_id"] != "cust-1" {
		t.Fatalf("expected customer id metadata, got %v", snap[1].Metadata)
	}
	if snap[0].Component != ComponentChurn {
		t.Fatalf("expected churn component stamp, got %q", snap[0].Component)
	}
}

func TestPredictChurnRequiresCustomer(t *testing.T) {
	engine := newTestEngine(t, nil, nil)

	_, err := engine.PredictChurn(context.Background(), "")
	if !errors.Is(err, ErrCustomerRequired) {
		t.Fatalf("expected ErrCustomerRequired, got %v", err)
	}
}

func TestPredictChurnDisabledEngine(t *testing.T) {
	cfg := defaultConfig()
	cfg.Churn.Enabled = false

	engine, err := New().WithConfig(cfg).WithDelivery(NoOpDelivery{}).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	if _, err := engine.PredictChurn(context.Background(), "cust-1"); !errors.Is(err, ErrEngineNotReady) {
		t.Fatalf("expected ErrEngineNotReady, got %v", err)
	}
	if _, err := engine.Snapshot(ComponentChurn); !errors.Is(err, ErrEngineNotReady) {
		t.Fatalf("expected ErrEngineNotReady from Snapshot, got %v", err)
	}
}
