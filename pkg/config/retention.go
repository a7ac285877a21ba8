package config

import "time"

// ReaperConfig controls the sandbox reaper and event retention behavior.
type ReaperConfig struct {
	// Interval is how often the reaper scans for expired sandboxes.
	Interval time.Duration

	// RunLogRetention is the maximum age of Event rows before deletion.
	// Per-session cleanup handles the normal case; this is a safety net.
	RunLogRetention time.Duration
}

// LoadReaperConfig reads reaper configuration from the environment.
func LoadReaperConfig() *ReaperConfig {
	cfg := DefaultReaperConfig()
	cfg.Interval = getEnvDuration("REAPER_INTERVAL", cfg.Interval)
	cfg.RunLogRetention = getEnvDuration("RUN_LOG_RETENTION_SECONDS", cfg.RunLogRetention)
	return cfg
}

// DefaultReaperConfig returns the built-in reaper defaults.
func DefaultReaperConfig() *ReaperConfig {
	return &ReaperConfig{
		Interval:        1 * time.Minute,
		RunLogRetention: 6 * time.Hour,
	}
}

// EventsConfig controls the event bus backlog and topic retention.
type EventsConfig struct {
	// BacklogSize is the number of most-recent events retained per topic
	// and replayed to newly-attached subscribers.
	BacklogSize int

	// TopicTTL is how long an idle topic's backlog is retained.
	TopicTTL time.Duration

	// HeartbeatInterval is the idle interval after which SSE handlers emit
	// a heartbeat comment line.
	HeartbeatInterval time.Duration
}

// LoadEventsConfig reads event bus configuration from the environment.
func LoadEventsConfig() *EventsConfig {
	cfg := DefaultEventsConfig()
	cfg.BacklogSize = getEnvInt("RUN_LOG_STREAM_MAXLEN", cfg.BacklogSize)
	cfg.TopicTTL = getEnvDuration("RUN_LOG_RETENTION_SECONDS", cfg.TopicTTL)
	return cfg
}

// DefaultEventsConfig returns the built-in event bus defaults.
func DefaultEventsConfig() *EventsConfig {
	return &EventsConfig{
		BacklogSize:       512,
		TopicTTL:          6 * time.Hour,
		HeartbeatInterval: 15 * time.Second,
	}
}
