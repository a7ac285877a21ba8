package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/conversation"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes agent runs.
type Worker struct {
	id        string
	podID     string
	db        *database.Client
	config    *config.QueueConfig
	executor  RunExecutor
	publisher events.Publisher
	pool      RunRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker creates a new queue worker. publisher may be nil (streaming
// disabled).
func NewWorker(id, podID string, db *database.Client, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry, publisher events.Publisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		db:           db,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort global capacity check; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.db.Conversation.Query().
		Where(conversation.StatusIn(
			conversation.StatusRunning,
			conversation.StatusPaused,
			conversation.StatusAwaitingAck,
		)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	conv, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", conv.ID, "worker_id", w.id)
	log.Info("Run claimed")

	w.publishRunStatus(ctx, conv.ID, models.RunStatusRunning)

	w.setStatus(WorkerStatusWorking, conv.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// Register cancel function for API-triggered cancellation
	w.pool.RegisterRun(conv.ID, cancelRun)
	defer w.pool.UnregisterRun(conv.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, conv.ID)

	result := w.executor.Execute(runCtx, conv)

	if result == nil {
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: models.RunStatusFailed,
				Error:  fmt.Errorf("run timed out after %v", w.config.RunTimeout),
			}
		case errors.Is(runCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: models.RunStatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: models.RunStatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	cancelHeartbeat()

	// Terminal write uses a background context; the run ctx may be cancelled
	if err := w.ensureTerminalStatus(context.Background(), conv.ID, result); err != nil {
		log.Error("Failed to write terminal run status", "error", err)
		return err
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete", "status", result.Status)
	return nil
}

// claimNextRun atomically claims the next created conversation using
// FOR UPDATE SKIP LOCKED, oldest first.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.Conversation, error) {
	tx, err := w.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	conv, err := tx.Conversation.Query().
		Where(conversation.StatusEQ(conversation.StatusCreated)).
		Order(ent.Asc(conversation.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	now := time.Now()
	conv, err = conv.Update().
		SetStatus(conversation.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return conv, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, runID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.db.Conversation.UpdateOneID(runID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
			}
		}
	}
}

// ensureTerminalStatus writes the terminal status when the graph driver did
// not get there itself (timeout, worker-level failure). A conversation the
// driver already finished is left untouched.
func (w *Worker) ensureTerminalStatus(ctx context.Context, runID string, result *ExecutionResult) error {
	conv, err := w.db.Conversation.Get(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to reload run: %w", err)
	}
	// blocked_policy ends the run without being terminal: the conversation
	// stays inspectable until an operator cancels or redispatches it.
	if models.IsTerminalRunStatus(conv.Status.String()) ||
		conv.Status.String() == models.RunStatusBlockedPolicy {
		return nil
	}

	status := result.Status
	if status == "" || !models.IsTerminalRunStatus(status) {
		status = models.RunStatusFailed
	}
	update := w.db.Conversation.UpdateOneID(runID).
		SetStatus(conversation.Status(status)).
		SetCompletedAt(time.Now())
	if result.Error != nil {
		update.SetErrorMessage(result.Error.Error())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}

	w.publishRunStatus(ctx, runID, status)
	return nil
}

// publishRunStatus publishes a run status event for live stream delivery.
// Non-blocking: errors are logged.
func (w *Worker) publishRunStatus(ctx context.Context, runID, status string) {
	if w.publisher == nil {
		return
	}
	payload := events.StatusPayload{
		Base:   events.NewBase(events.EventTypeStatus, runID),
		Entity: "run",
		Status: status,
	}
	if err := w.publisher.Publish(ctx, runID, payload); err != nil {
		slog.Warn("Failed to publish run status", "run_id", runID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
