package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/conversation"
	"github.com/astraforge/astraforge/ent/document"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
	"github.com/astraforge/astraforge/pkg/models"
)

// ConversationService manages agent runs and their 1:1 sandbox binding. It is
// the persistence surface the graph driver runs against.
type ConversationService struct {
	db         *database.Client
	sandboxCfg *config.SandboxConfig
	logger     *slog.Logger
}

// NewConversationService creates a new ConversationService
func NewConversationService(db *database.Client, sandboxCfg *config.SandboxConfig, logger *slog.Logger) *ConversationService {
	return &ConversationService{
		db:         db,
		sandboxCfg: sandboxCfg,
		logger:     logger.With("component", "conversation_service"),
	}
}

// Create persists a conversation and its sandbox session row in one
// transaction. The two share an id. When no snapshot is requested explicitly,
// the workspace's most recent completed run donates its terminal snapshot so
// work carries over.
func (s *ConversationService) Create(ctx context.Context, req models.CreateRunRequest) (*ent.Conversation, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.Goal == "" {
		return nil, NewValidationError("goal", "required")
	}

	backend := req.Backend
	if backend == "" {
		backend = string(s.sandboxCfg.DefaultBackend)
	}
	switch backend {
	case models.BackendLocal, models.BackendCluster:
	default:
		return nil, NewValidationError("backend", "must be 'local' or 'cluster'")
	}

	runID := req.ConversationID
	if runID == "" {
		runID = uuid.New().String()
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.db.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	restoreSnapshot := req.SnapshotID
	if restoreSnapshot == "" {
		prev, err := tx.Conversation.Query().
			Where(
				conversation.WorkspaceIDEQ(req.WorkspaceID),
				conversation.StatusEQ(conversation.StatusCompleted),
				conversation.LastSnapshotIDNotNil(),
			).
			Order(ent.Desc(conversation.FieldCompletedAt)).
			First(writeCtx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to look up previous run: %w", err)
		}
		if prev != nil && prev.LastSnapshotID != nil {
			restoreSnapshot = *prev.LastSnapshotID
		}
	}

	sessionBuilder := tx.SandboxSession.Create().
		SetID(runID).
		SetUserID(req.UserID).
		SetWorkspaceID(req.WorkspaceID).
		SetBackend(sandboxsession.Backend(backend)).
		SetImage(s.sandboxCfg.Image).
		SetWorkspacePath(s.sandboxCfg.WorkspacePath).
		SetStatus(sandboxsession.StatusStarting).
		SetIdleTimeoutSec(int(s.sandboxCfg.DefaultIdleTimeout.Seconds())).
		SetMaxLifetimeSec(int(s.sandboxCfg.DefaultMaxLifetime.Seconds()))
	if restoreSnapshot != "" {
		sessionBuilder.SetRestoreSnapshotID(restoreSnapshot)
	}
	if _, err := sessionBuilder.Save(writeCtx); err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create sandbox session: %w", err)
	}

	conv, err := tx.Conversation.Create().
		SetID(runID).
		SetSessionID(runID).
		SetUserID(req.UserID).
		SetWorkspaceID(req.WorkspaceID).
		SetGoal(req.Goal).
		SetStatus(conversation.StatusCreated).
		SetIsResume(restoreSnapshot != "").
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit conversation: %w", err)
	}
	return conv, nil
}

// Get retrieves a conversation by ID
func (s *ConversationService) Get(ctx context.Context, runID string) (*ent.Conversation, error) {
	conv, err := s.db.Conversation.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// List lists conversations with filtering and pagination
func (s *ConversationService) List(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	query := s.db.Conversation.Query()

	if filters.Status != "" {
		query = query.Where(conversation.StatusEQ(conversation.Status(filters.Status)))
	}
	if filters.UserID != "" {
		query = query.Where(conversation.UserIDEQ(filters.UserID))
	}
	if filters.WorkspaceID != "" {
		query = query.Where(conversation.WorkspaceIDEQ(filters.WorkspaceID))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(conversation.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(conversation.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	conversations, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return &models.RunListResponse{
		Conversations: conversations,
		TotalCount:    totalCount,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// ClaimNextPending atomically claims the oldest created conversation using
// FOR UPDATE SKIP LOCKED, so contending workers pass over each other's
// in-flight claims instead of colliding on the head row. Returns (nil, nil)
// when nothing is pending.
func (s *ConversationService) ClaimNextPending(ctx context.Context, podID string) (*ent.Conversation, error) {
	// Use background context so claims aren't interrupted mid-transaction
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.db.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	conv, err := tx.Conversation.Query().
		Where(conversation.StatusEQ(conversation.StatusCreated)).
		Order(ent.Asc(conversation.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending conversations: %w", err)
	}

	now := time.Now()
	conv, err = conv.Update().
		SetStatus(conversation.StatusRunning).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return conv, nil
}

// Heartbeat records worker liveness for orphan detection.
func (s *ConversationService) Heartbeat(ctx context.Context, runID string) error {
	err := s.db.Conversation.UpdateOneID(runID).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

// FindOrphaned returns active conversations whose worker heartbeat went stale.
func (s *ConversationService) FindOrphaned(ctx context.Context, threshold time.Duration) ([]*ent.Conversation, error) {
	cutoff := time.Now().Add(-threshold)
	orphans, err := s.db.Conversation.Query().
		Where(
			conversation.StatusIn(
				conversation.StatusRunning,
				conversation.StatusPaused,
				conversation.StatusAwaitingAck,
			),
			conversation.LastInteractionAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned conversations: %w", err)
	}
	return orphans, nil
}

// MarkOrphansFailed fails conversations abandoned by a dead worker. The
// conditional update keeps a still-alive worker's run untouched if it
// heartbeats between the scan and the write.
func (s *ConversationService) MarkOrphansFailed(ctx context.Context, threshold time.Duration) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-threshold)
	count, err := s.db.Conversation.Update().
		Where(
			conversation.StatusIn(
				conversation.StatusRunning,
				conversation.StatusPaused,
				conversation.StatusAwaitingAck,
			),
			conversation.LastInteractionAtLT(cutoff),
		).
		SetStatus(conversation.StatusFailed).
		SetErrorMessage("worker heartbeat lost").
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark orphaned conversations failed: %w", err)
	}
	if count > 0 {
		s.logger.Warn("marked orphaned conversations failed", "count", count)
	}
	return count, nil
}

// CountActiveRuns returns how many concurrency-slot-holding runs a workspace
// has right now.
func (s *ConversationService) CountActiveRuns(ctx context.Context, workspaceID string) (int, error) {
	count, err := s.db.Conversation.Query().
		Where(
			conversation.WorkspaceIDEQ(workspaceID),
			conversation.StatusIn(
				conversation.StatusCreated,
				conversation.StatusRunning,
				conversation.StatusPaused,
				conversation.StatusAwaitingAck,
				conversation.StatusBlockedPolicy,
			),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active runs: %w", err)
	}
	return count, nil
}

// Redispatch puts a terminal conversation back on the queue with a new goal,
// marking it a resume so the driver continues the saved transcript.
func (s *ConversationService) Redispatch(ctx context.Context, runID, goal string) (*ent.Conversation, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.db.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	conv, err := tx.Conversation.Query().
		Where(conversation.ID(runID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock conversation: %w", err)
	}
	if !models.IsTerminalRunStatus(conv.Status.String()) {
		return nil, fmt.Errorf("%w: %s -> created", ErrInvalidTransition, conv.Status)
	}

	builder := tx.Conversation.UpdateOneID(runID).
		SetStatus(conversation.StatusCreated).
		SetIsResume(true).
		ClearStartedAt().
		ClearCompletedAt().
		ClearPodID().
		ClearErrorMessage()
	if goal != "" {
		builder.SetGoal(goal)
	}
	conv, err = builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to redispatch conversation: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit redispatch: %w", err)
	}
	return conv, nil
}

// Status implements the driver's store surface.
func (s *ConversationService) Status(ctx context.Context, runID string) (string, error) {
	conv, err := s.db.Conversation.Query().
		Where(conversation.ID(runID)).
		Select(conversation.FieldStatus).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read conversation status: %w", err)
	}
	return conv.Status.String(), nil
}

// SetStatus applies a run status transition, validating against the lifecycle.
func (s *ConversationService) SetStatus(ctx context.Context, runID, status string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.db.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	conv, err := tx.Conversation.Query().
		Where(conversation.ID(runID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock conversation: %w", err)
	}

	current := conv.Status.String()
	if current == status {
		return tx.Commit()
	}
	if models.IsTerminalRunStatus(current) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
	}

	builder := tx.Conversation.UpdateOneID(runID).
		SetStatus(conversation.Status(status)).
		SetLastInteractionAt(time.Now())
	if models.IsTerminalRunStatus(status) {
		builder.SetCompletedAt(time.Now())
	}
	if err := builder.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update conversation status: %w", err)
	}
	return tx.Commit()
}

// SetSummary stores the summarizer's running progress summary.
func (s *ConversationService) SetSummary(ctx context.Context, runID, summary string) error {
	err := s.db.Conversation.UpdateOneID(runID).
		SetSummary(summary).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update conversation summary: %w", err)
	}
	return nil
}

// Complete marks a run successful with its final answer and terminal snapshot.
// Uses background context so the terminal write survives run cancellation.
func (s *ConversationService) Complete(ctx context.Context, runID, finalAnswer, summary, snapshotID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.db.Conversation.UpdateOneID(runID).
		SetStatus(conversation.StatusCompleted).
		SetFinalAnswer(finalAnswer).
		SetCompletedAt(time.Now())
	if summary != "" {
		builder.SetSummary(summary)
	}
	if snapshotID != "" {
		builder.SetLastSnapshotID(snapshotID)
	}
	if err := builder.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete conversation: %w", err)
	}
	return nil
}

// Fail marks a run failed with the error message.
func (s *ConversationService) Fail(ctx context.Context, runID, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.db.Conversation.UpdateOneID(runID).
		SetStatus(conversation.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark conversation failed: %w", err)
	}
	return nil
}

// Documents lists uploaded document filenames for the agent system prompt.
func (s *ConversationService) Documents(ctx context.Context, runID string) ([]string, error) {
	docs, err := s.db.Document.Query().
		Where(document.ConversationIDEQ(runID)).
		Order(ent.Asc(document.FieldCreatedAt)).
		Select(document.FieldFilename).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}
