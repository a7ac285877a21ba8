// Package queue provides the worker pool that claims and processes agent runs.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/astraforge/astraforge/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no created conversations are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor processes one claimed conversation end to end: provisioning the
// sandbox, wiring the tool registry, and driving the agent graph. The
// executor writes terminal conversation state itself; the worker only covers
// the cases where it could not (timeout, cancellation, panic-shaped nils).
type RunExecutor interface {
	Execute(ctx context.Context, conv *ent.Conversation) *ExecutionResult
}

// ExecutionResult is the terminal outcome of a run as seen by the worker.
type ExecutionResult struct {
	Status string // completed, failed, cancelled
	Error  error  // set when the run did not complete
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
