package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/conversation"
	"github.com/astraforge/astraforge/pkg/database"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned runs.
// All pods run this independently; the operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds active runs with stale heartbeats and marks
// them failed. Paused runs count too: a dead worker can no longer deliver
// their inbox.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.db.Conversation.Query().
		Where(
			conversation.StatusIn(
				conversation.StatusRunning,
				conversation.StatusPaused,
				conversation.StatusAwaitingAck,
			),
			conversation.LastInteractionAtNotNil(),
			conversation.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, conv := range orphans {
		if err := p.recoverOrphanedRun(ctx, conv); err != nil {
			slog.Error("Failed to recover orphaned run",
				"run_id", conv.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun marks a single orphaned run as failed.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, conv *ent.Conversation) error {
	log := slog.With("run_id", conv.ID, "old_pod_id", conv.PodID)

	lastHeartbeat := "unknown"
	if conv.LastInteractionAt != nil {
		lastHeartbeat = conv.LastInteractionAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if conv.PodID != nil {
		podID = *conv.PodID
	}

	err := conv.Update().
		SetStatus(conversation.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}

	log.Warn("Orphaned run marked as failed", "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of runs owned by this pod
// that were active when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, db *database.Client, podID string) error {
	orphans, err := db.Conversation.Query().
		Where(
			conversation.StatusIn(
				conversation.StatusRunning,
				conversation.StatusPaused,
				conversation.StatusAwaitingAck,
			),
			conversation.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, conv := range orphans {
		err := conv.Update().
			SetStatus(conversation.StatusFailed).
			SetCompletedAt(now).
			SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while run was active", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"run_id", conv.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "run_id", conv.ID)
	}

	return nil
}
