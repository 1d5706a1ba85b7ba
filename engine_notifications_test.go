package groomkit

import (
	"context"
	"errors"
	"testing"
)

func TestQueueNotificationRecordsEvent(t *testing.T) {
	engine := newTestEngine(t, nil, nil)

	err := engine.QueueNotification(context.Background(), "cust-4", "sms", "see you at 10")
	if err != nil {
		t.Fatalf("QueueNotification failed: %v", err)
	}

	snap, _ := engine.Snapshot(ComponentNotifications)
	if len(snap) != 1 || snap[0].Name != eventNotificationQueued {
		t.Fatalf("expected one %s event, got %+v", eventNotificationQueued, snap)
	}
	if snap[0].Metadata["channel"] != "sms" {
		t.Fatalf("expected channel metadata, got %v", snap[0].Metadata)
	}
}

func TestQueueNotificationValidatesInput(t *testing.T) {
	engine := newTestEngine(t, nil, nil)
	ctx := context.Background()

	if err := engine.QueueNotification(ctx, "", "sms", "msg"); !errors.Is(err, ErrCustomerRequired) {
		t.Fatalf("expected ErrCustomerRequired, got %v", err)
	}
	if err := engine.QueueNotification(ctx, "cust-4", "", "msg"); !errors.Is(err, ErrNotificationInvalid) {
		t.Fatalf("expected ErrNotificationInvalid for empty channel, got %v", err)
	}
	if err := engine.QueueNotification(ctx, "cust-4", "sms", ""); !errors.Is(err, ErrNotificationInvalid) {
		t.Fatalf("expected ErrNotificationInvalid for empty message, got %v", err)
	}
}

func TestQueueNotificationRejectsDisallowedChannel(t *testing.T) {
	cfg := defaultConfig()
	cfg.Notifications.Channels = []string{"sms", "email"}

	engine, err := New().WithConfig(cfg).WithDelivery(NoOpDelivery{}).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	ctx := context.Background()
	if err := engine.QueueNotification(ctx, "cust-4", "pigeon", "msg"); !errors.Is(err, ErrNotificationInvalid) {
		t.Fatalf("expected ErrNotificationInvalid, got %v", err)
	}

	snap, _ := engine.Snapshot(ComponentNotifications)
	if len(snap) != 1 || snap[0].Name != eventNotificationRejected {
		t.Fatalf("expected one %s event, got %+v", eventNotificationRejected, snap)
	}

	if err := engine.QueueNotification(ctx, "cust-4", "email", "msg"); err != nil {
		t.Fatalf("allowed channel rejected: %v", err)
	}
}
