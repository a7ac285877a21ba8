package config

import "time"

// QueueConfig contains worker pool configuration. These values control how
// conversation runs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int

	// MaxConcurrentRuns is the global limit of concurrent graph runs across
	// ALL replicas. Enforced by a database COUNT(*) check before claiming.
	MaxConcurrentRuns int

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// RunTimeout is the maximum wall-clock time for a single graph run.
	RunTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active runs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// HeartbeatInterval is how often a worker refreshes last_interaction_at
	// on the conversation it is processing (orphan detection input).
	HeartbeatInterval time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned runs.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a run can go without a heartbeat before
	// it is considered orphaned.
	OrphanThreshold time.Duration
}

// LoadQueueConfig reads queue configuration from the environment.
func LoadQueueConfig() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WorkerCount = getEnvInt("QUEUE_WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxConcurrentRuns = getEnvInt("QUEUE_MAX_CONCURRENT_RUNS", cfg.MaxConcurrentRuns)
	cfg.RunTimeout = getEnvDuration("QUEUE_RUN_TIMEOUT", cfg.RunTimeout)
	cfg.GracefulShutdownTimeout = getEnvDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	return cfg
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              30 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
