package test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	groomkit "github.com/pawdesk/groomkit"
	"github.com/pawdesk/groomkit/session"
	"github.com/redis/go-redis/v9"
)

// Full-flow test: staff session login, one operation per engine, delivery to
// a Redis stream, then trail and metrics checks. Mirrors how an embedding
// application would wire the library.
func TestFullFlowAcrossEngines(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	engine, err := groomkit.New().
		WithRedis(rdb).
		WithDelivery(groomkit.NewRedisStreamDelivery(rdb, "groomkit:events", 0)).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	manager, err := session.NewManager([]byte("integration-key"))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	token, err := manager.Issue("staff-11", "manager", time.Minute)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := manager.Login(engine.AuditContext(), token); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	ctx := context.Background()

	if _, err := engine.PredictChurn(ctx, "cust-1"); err != nil {
		t.Fatalf("PredictChurn failed: %v", err)
	}
	if err := engine.RaiseAlert(ctx, groomkit.SeverityCritical, "escaped husky"); err != nil {
		t.Fatalf("RaiseAlert failed: %v", err)
	}
	if _, err := engine.TagRetention(ctx, "cust-1"); err != nil {
		t.Fatalf("TagRetention failed: %v", err)
	}
	if err := engine.QueueNotification(ctx, "cust-1", "sms", "appointment moved"); err != nil {
		t.Fatalf("QueueNotification failed: %v", err)
	}
	if _, err := engine.SyncNow(ctx); err != nil {
		t.Fatalf("SyncNow failed: %v", err)
	}

	manager.Logout(engine.AuditContext())

	// Every trail carries the signed-in identity captured at record time.
	for _, component := range []string{
		groomkit.ComponentChurn,
		groomkit.ComponentAlerts,
		groomkit.ComponentRetention,
		groomkit.ComponentNotifications,
		groomkit.ComponentSync,
	} {
		snap, err := engine.Snapshot(component)
		if err != nil {
			t.Fatalf("Snapshot(%s) failed: %v", component, err)
		}
		if len(snap) == 0 {
			t.Fatalf("%s: expected recorded events", component)
		}
		for _, rec := range snap {
			if rec.Role != "manager" || rec.StaffID != "staff-11" {
				t.Fatalf("%s: missing audit identity on %+v", component, rec)
			}
			if rec.Component != component {
				t.Fatalf("expected component %s, got %s", component, rec.Component)
			}
		}
	}

	trail, err := engine.RenderTrail(groomkit.ComponentAlerts)
	if err != nil {
		t.Fatalf("RenderTrail failed: %v", err)
	}
	if !strings.Contains(trail, "escalate:YES") || !strings.Contains(trail, "staffID:staff-11") {
		t.Fatalf("rendered trail missing audit fields:\n%s", trail)
	}

	metrics := engine.MetricsSnapshot()
	if metrics.Counters[groomkit.MetricEventRecorded] == 0 {
		t.Fatal("expected recorded-event counter to advance")
	}
	if metrics.Counters[groomkit.MetricAlertCritical] != 1 {
		t.Fatalf("expected one critical alert, got %d", metrics.Counters[groomkit.MetricAlertCritical])
	}
	if metrics.Counters[groomkit.MetricSyncRun] != 1 {
		t.Fatalf("expected one sync run, got %d", metrics.Counters[groomkit.MetricSyncRun])
	}

	// Close drains the dispatchers, so the stream holds every delivery.
	engine.Close()

	entries, err := rdb.XRange(ctx, "groomkit:events", "-", "+").Result()
	if err != nil {
		t.Fatalf("XRange failed: %v", err)
	}
	expected := int(metrics.Counters[groomkit.MetricEventRecorded])
	if len(entries) != expected {
		t.Fatalf("expected %d stream entries, got %d", expected, len(entries))
	}
	var sawEscalated bool
	for _, entry := range entries {
		if entry.Values["escalate"] == "true" {
			sawEscalated = true
		}
		if entry.Values["staff_id"] != "staff-11" {
			t.Fatalf("stream entry missing staff id: %v", entry.Values)
		}
	}
	if !sawEscalated {
		t.Fatal("expected at least one escalated entry in the stream")
	}
	if engine.TelemetryDropped() != 0 {
		t.Fatalf("blocking dispatch should not drop, got %d", engine.TelemetryDropped())
	}
}
