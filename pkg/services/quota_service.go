package services

import (
	"context"
	"fmt"
	"time"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/quotaledger"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
)

// QuotaService enforces per-workspace usage limits. Monthly counters live in
// quota_ledgers rows keyed (workspace_id, period) and are bumped under a row
// lock; the concurrency limit is checked against live rows instead of a
// counter so it self-corrects.
type QuotaService struct {
	db           *database.Client
	cfg          *config.QuotaConfig
	conversation *ConversationService
	session      *SessionService
}

// NewQuotaService creates a new QuotaService
func NewQuotaService(db *database.Client, cfg *config.QuotaConfig, conversation *ConversationService, session *SessionService) *QuotaService {
	return &QuotaService{
		db:           db,
		cfg:          cfg,
		conversation: conversation,
		session:      session,
	}
}

// currentPeriod returns the calendar month key, YYYY-MM in UTC.
func currentPeriod(now time.Time) string {
	return now.UTC().Format("2006-01")
}

// ConsumeRunRequest checks and consumes quota for starting a new agent run:
// one monthly request, one monthly sandbox creation, and a free concurrency
// slot. All three are verified before any counter moves.
func (s *QuotaService) ConsumeRunRequest(ctx context.Context, workspaceID string) error {
	active, err := s.conversation.CountActiveRuns(ctx, workspaceID)
	if err != nil {
		return err
	}
	if active >= s.cfg.ConcurrentSandboxes {
		return &QuotaExceededError{
			Limit:   "concurrent_sandboxes",
			Current: active,
			Max:     s.cfg.ConcurrentSandboxes,
		}
	}

	return s.consume(ctx, workspaceID, func(ledger *ent.QuotaLedger) (*QuotaExceededError, func(*ent.QuotaLedgerUpdateOne)) {
		if ledger.RequestsUsed >= s.cfg.RequestsPerMonth {
			return &QuotaExceededError{
				Limit:   "requests_per_month",
				Current: ledger.RequestsUsed,
				Max:     s.cfg.RequestsPerMonth,
			}, nil
		}
		if ledger.SandboxesCreated >= s.cfg.SandboxesPerMonth {
			return &QuotaExceededError{
				Limit:   "sandboxes_per_month",
				Current: ledger.SandboxesCreated,
				Max:     s.cfg.SandboxesPerMonth,
			}, nil
		}
		return nil, func(u *ent.QuotaLedgerUpdateOne) {
			u.AddRequestsUsed(1).AddSandboxesCreated(1)
		}
	})
}

// ConsumeSandboxCreate checks and consumes quota for a standalone sandbox
// created outside an agent run.
func (s *QuotaService) ConsumeSandboxCreate(ctx context.Context, workspaceID string) error {
	active, err := s.session.CountActiveSandboxes(ctx, workspaceID)
	if err != nil {
		return err
	}
	if active >= s.cfg.ConcurrentSandboxes {
		return &QuotaExceededError{
			Limit:   "concurrent_sandboxes",
			Current: active,
			Max:     s.cfg.ConcurrentSandboxes,
		}
	}

	return s.consume(ctx, workspaceID, func(ledger *ent.QuotaLedger) (*QuotaExceededError, func(*ent.QuotaLedgerUpdateOne)) {
		if ledger.SandboxesCreated >= s.cfg.SandboxesPerMonth {
			return &QuotaExceededError{
				Limit:   "sandboxes_per_month",
				Current: ledger.SandboxesCreated,
				Max:     s.cfg.SandboxesPerMonth,
			}, nil
		}
		return nil, func(u *ent.QuotaLedgerUpdateOne) {
			u.AddSandboxesCreated(1)
		}
	})
}

// consume locks (or creates) the workspace's ledger row for the current
// period, runs the check, and applies the increment inside one transaction.
func (s *QuotaService) consume(ctx context.Context, workspaceID string, check func(*ent.QuotaLedger) (*QuotaExceededError, func(*ent.QuotaLedgerUpdateOne))) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	period := currentPeriod(time.Now())

	tx, err := s.db.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ledger, err := tx.QuotaLedger.Query().
		Where(
			quotaledger.WorkspaceIDEQ(workspaceID),
			quotaledger.PeriodEQ(period),
		).
		ForUpdate().
		Only(writeCtx)
	if ent.IsNotFound(err) {
		ledger, err = tx.QuotaLedger.Create().
			SetWorkspaceID(workspaceID).
			SetPeriod(period).
			Save(writeCtx)
		if err != nil && ent.IsConstraintError(err) {
			// Lost the insert race; lock the row the winner created
			ledger, err = tx.QuotaLedger.Query().
				Where(
					quotaledger.WorkspaceIDEQ(workspaceID),
					quotaledger.PeriodEQ(period),
				).
				ForUpdate().
				Only(writeCtx)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to load quota ledger: %w", err)
	}

	quotaErr, apply := check(ledger)
	if quotaErr != nil {
		return quotaErr
	}

	update := tx.QuotaLedger.UpdateOneID(ledger.ID)
	apply(update)
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update quota ledger: %w", err)
	}
	return tx.Commit()
}

// Usage reports the current period's counters for a workspace. A missing
// ledger row means zero usage.
func (s *QuotaService) Usage(ctx context.Context, workspaceID string) (requestsUsed, sandboxesCreated int, err error) {
	ledger, err := s.db.QuotaLedger.Query().
		Where(
			quotaledger.WorkspaceIDEQ(workspaceID),
			quotaledger.PeriodEQ(currentPeriod(time.Now())),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("failed to read quota ledger: %w", err)
	}
	return ledger.RequestsUsed, ledger.SandboxesCreated, nil
}
