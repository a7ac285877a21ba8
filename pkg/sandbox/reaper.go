package sandbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/event"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
)

// ReapReport summarizes one reaper pass.
type ReapReport struct {
	Checked    int
	Terminated int
}

// EventPruner lets the reaper expire in-memory event backlogs alongside the
// durable rows. Nil when the Postgres bus is in use.
type EventPruner interface {
	Prune() int
}

// Reaper terminates sandboxes past their idle timeout or max lifetime and
// expires old event rows. All operations are idempotent and safe to run
// from multiple pods.
type Reaper struct {
	cfg     *config.ReaperConfig
	db      *database.Client
	manager *Manager
	pruner  EventPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewReaper creates a reaper. pruner may be nil.
func NewReaper(cfg *config.ReaperConfig, db *database.Client, manager *Manager, pruner EventPruner) *Reaper {
	return &Reaper{
		cfg:     cfg,
		db:      db,
		manager: manager,
		pruner:  pruner,
	}
}

// Start launches the background reap loop.
func (r *Reaper) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	slog.Info("Reaper started",
		"interval", r.cfg.Interval,
		"event_retention", r.cfg.RunLogRetention)
}

// Stop signals the reap loop to exit and waits for it to finish.
func (r *Reaper) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	slog.Info("Reaper stopped")
}

func (r *Reaper) run(ctx context.Context) {
	defer close(r.done)

	r.runOnce(ctx)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Reaper) runOnce(ctx context.Context) {
	report, err := r.ReapExpired(ctx)
	if err != nil {
		slog.Error("Reaper: sandbox scan failed", "error", err)
	} else if report.Terminated > 0 {
		slog.Info("Reaper: terminated expired sandboxes",
			"checked", report.Checked, "terminated", report.Terminated)
	}

	r.pruneEvents(ctx)
}

// ReapExpired scans ready sessions and terminates those past a deadline.
// Deadlines are re-derived from the locked row inside Terminate, so a
// session touched between the scan and the kill is spared.
func (r *Reaper) ReapExpired(ctx context.Context) (*ReapReport, error) {
	now := time.Now()
	candidates, err := r.db.SandboxSession.Query().
		Where(sandboxsession.StatusEQ(sandboxsession.StatusReady)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReapReport{Checked: len(candidates)}
	for _, sess := range candidates {
		if expiryReason(sess, now) == "" {
			continue
		}

		// TerminateExpired re-derives the deadline from the locked row, so a
		// session that saw activity since the scan snapshot is spared.
		reason, err := r.manager.TerminateExpired(ctx, sess.ID)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			slog.Error("Reaper: terminate failed", "session_id", sess.ID, "error", err)
			continue
		}
		if reason == "" {
			continue
		}
		report.Terminated++
	}
	return report, nil
}

// expiryReason returns why a session should die now, or "" to spare it.
// Max lifetime wins over idle timeout when both have passed.
func expiryReason(sess *ent.SandboxSession, now time.Time) string {
	if sess.MaxLifetimeSec != nil && sess.ExpiresAt != nil && !now.Before(*sess.ExpiresAt) {
		return "max_lifetime"
	}
	if sess.IdleTimeoutSec != nil {
		idleDeadline := sess.LastActivityAt.Add(time.Duration(*sess.IdleTimeoutSec) * time.Second)
		if !now.Before(idleDeadline) {
			return "idle_timeout"
		}
	}
	return ""
}

// pruneEvents deletes event rows past the retention window and expires the
// in-memory backlog when one is configured.
func (r *Reaper) pruneEvents(ctx context.Context) {
	cutoff := time.Now().Add(-r.cfg.RunLogRetention)
	count, err := r.db.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Reaper: event cleanup failed", "error", err)
	} else if count > 0 {
		slog.Info("Reaper: deleted expired events", "count", count)
	}

	if r.pruner != nil {
		if pruned := r.pruner.Prune(); pruned > 0 {
			slog.Info("Reaper: pruned in-memory event backlog", "count", pruned)
		}
	}
}
