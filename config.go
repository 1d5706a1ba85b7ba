package groomkit

import (
	"errors"
	"fmt"
)

// Config defines a public type used by groomkit APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Telemetry     TelemetryConfig
	Churn         ChurnConfig
	Alerts        AlertsConfig
	Retention     RetentionConfig
	Notifications NotificationsConfig
	Sync          SyncConfig
	Metrics       MetricsConfig
}

/*
====================================
TELEMETRY CONFIG
====================================
*/

// TelemetryConfig defines a public type used by groomkit APIs.
//
// TelemetryConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TelemetryConfig struct {
	// DispatchBuffer is the capacity of the queue between Record and the
	// delivery goroutine. Values below one are treated as one.
	DispatchBuffer int
	// DropIfFull makes Record discard the delivery (counting it) instead of
	// waiting when the dispatch queue is saturated. The trail append still
	// happens either way.
	DropIfFull bool
	// Verbose turns the default console sink on when no delivery is injected.
	Verbose bool
}

/*
====================================
ENGINE CONFIGS
====================================
*/

// ChurnConfig defines a public type used by groomkit APIs.
//
// ChurnConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ChurnConfig struct {
	Enabled             bool
	TrailCapacity       int
	BaselineProbability float64
}

// AlertsConfig defines a public type used by groomkit APIs.
//
// AlertsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AlertsConfig struct {
	Enabled       bool
	TrailCapacity int
}

// RetentionConfig defines a public type used by groomkit APIs.
//
// RetentionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RetentionConfig struct {
	Enabled       bool
	TrailCapacity int
	DefaultTag    string
}

// NotificationsConfig defines a public type used by groomkit APIs.
//
// NotificationsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type NotificationsConfig struct {
	Enabled       bool
	TrailCapacity int
	// Channels lists accepted notification channels. Empty means any.
	Channels []string
}

// SyncConfig defines a public type used by groomkit APIs.
//
// SyncConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SyncConfig struct {
	Enabled       bool
	TrailCapacity int
	RedisPrefix   string
	StreamName    string
	StreamMaxLen  int64
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by groomkit APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Telemetry: TelemetryConfig{
			DispatchBuffer: 64,
			DropIfFull:     false,
			Verbose:        false,
		},
		Churn: ChurnConfig{
			Enabled:             true,
			TrailCapacity:       30,
			BaselineProbability: 0.5,
		},
		Alerts: AlertsConfig{
			Enabled:       true,
			TrailCapacity: 50,
		},
		Retention: RetentionConfig{
			Enabled:       true,
			TrailCapacity: 20,
			DefaultTag:    "standard",
		},
		Notifications: NotificationsConfig{
			Enabled:       true,
			TrailCapacity: 30,
		},
		Sync: SyncConfig{
			Enabled:       true,
			TrailCapacity: 20,
			RedisPrefix:   "gk",
			StreamName:    "groomkit:events",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// PresetDevelopment returns a Config tuned for local development: verbose
// console output, blocking dispatch so nothing is dropped, latency histograms
// on.
func PresetDevelopment() Config {
	cfg := defaultConfig()
	cfg.Telemetry.Verbose = true
	cfg.Metrics.EnableLatencyHistograms = true
	return cfg
}

// PresetProduction returns a Config tuned for production: larger dispatch
// queue with drop-if-full so a dead sink cannot stall business operations.
func PresetProduction() Config {
	cfg := defaultConfig()
	cfg.Telemetry.DispatchBuffer = 1024
	cfg.Telemetry.DropIfFull = true
	return cfg
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if len(cfg.Notifications.Channels) > 0 {
		out.Notifications.Channels = append([]string(nil), cfg.Notifications.Channels...)
	}
	return out
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation fails.
func (c Config) Validate() error {
	for _, tc := range []struct {
		name     string
		enabled  bool
		capacity int
	}{
		{"churn", c.Churn.Enabled, c.Churn.TrailCapacity},
		{"alerts", c.Alerts.Enabled, c.Alerts.TrailCapacity},
		{"retention", c.Retention.Enabled, c.Retention.TrailCapacity},
		{"notifications", c.Notifications.Enabled, c.Notifications.TrailCapacity},
		{"sync", c.Sync.Enabled, c.Sync.TrailCapacity},
	} {
		if tc.enabled && tc.capacity < 1 {
			return fmt.Errorf("%s trail capacity must be >= 1, got %d", tc.name, tc.capacity)
		}
	}

	if c.Churn.Enabled && (c.Churn.BaselineProbability < 0 || c.Churn.BaselineProbability > 1) {
		return errors.New("churn baseline probability must be within [0, 1]")
	}

	if c.Sync.Enabled && c.Sync.RedisPrefix == "" {
		return errors.New("sync redis prefix must not be empty")
	}

	return nil
}
