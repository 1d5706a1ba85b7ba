package groomkit

import (
	"os"

	"github.com/pawdesk/groomkit/internal/stores"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by groomkit APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	auditCtx *AuditContext
	delivery Delivery

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithAuditContext describes the withauditcontext operation and its observable behavior.
//
// WithAuditContext does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditContext(auditCtx *AuditContext) *Builder {
	b.auditCtx = auditCtx
	return b
}

// WithDelivery describes the withdelivery operation and its observable behavior.
//
// WithDelivery does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithDelivery(sink Delivery) *Builder {
	b.delivery = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation or dependency wiring fails.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	auditCtx := b.auditCtx
	if auditCtx == nil {
		auditCtx = NewAuditContext()
	}

	sink := b.delivery
	if sink == nil {
		sink = NewConsoleDelivery(os.Stdout, cfg.Telemetry.Verbose)
	}

	metrics := NewMetrics(cfg.Metrics)

	engine := &Engine{
		config:   cfg,
		auditCtx: auditCtx,
		metrics:  metrics,
	}

	if cfg.Churn.Enabled {
		engine.churn = NewRecorder(ComponentChurn, cfg.Churn.TrailCapacity, auditCtx, sink, cfg.Telemetry, metrics)
	}
	if cfg.Alerts.Enabled {
		engine.alerts = NewRecorder(ComponentAlerts, cfg.Alerts.TrailCapacity, auditCtx, sink, cfg.Telemetry, metrics)
	}
	if cfg.Retention.Enabled {
		engine.retention = NewRecorder(ComponentRetention, cfg.Retention.TrailCapacity, auditCtx, sink, cfg.Telemetry, metrics)
	}
	if cfg.Notifications.Enabled {
		engine.notifications = NewRecorder(ComponentNotifications, cfg.Notifications.TrailCapacity, auditCtx, sink, cfg.Telemetry, metrics)
	}
	if cfg.Sync.Enabled {
		engine.sync = NewRecorder(ComponentSync, cfg.Sync.TrailCapacity, auditCtx, sink, cfg.Telemetry, metrics)
		if b.redis != nil {
			engine.syncStore = stores.NewSyncStateStore(b.redis, cfg.Sync.RedisPrefix)
		}
	}

	b.built = true
	return engine, nil
}
