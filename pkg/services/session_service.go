package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/artifact"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
	"github.com/astraforge/astraforge/pkg/models"
)

// SessionService manages sandbox session rows. Runtime side effects
// (provision, exec, destroy) live in the sandbox lifecycle manager; this
// service owns persistence and status-transition rules.
type SessionService struct {
	db  *database.Client
	cfg *config.SandboxConfig
}

// NewSessionService creates a new SessionService
func NewSessionService(db *database.Client, cfg *config.SandboxConfig) *SessionService {
	return &SessionService{db: db, cfg: cfg}
}

// allowedTransitions lists the legal session status edges. Terminal states
// have no outgoing edges; everything else is rejected.
var allowedTransitions = map[string][]string{
	models.SessionStatusStarting: {models.SessionStatusReady, models.SessionStatusFailed, models.SessionStatusTerminated},
	models.SessionStatusReady:    {models.SessionStatusFailed, models.SessionStatusTerminated},
	models.SessionStatusFailed:   {models.SessionStatusStarting, models.SessionStatusTerminated},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateSession persists a new sandbox session row in status starting.
func (s *SessionService) CreateSession(ctx context.Context, req models.CreateSandboxRequest) (*ent.SandboxSession, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}

	backend := req.Backend
	if backend == "" {
		backend = string(s.cfg.DefaultBackend)
	}
	switch backend {
	case models.BackendLocal, models.BackendCluster:
	default:
		return nil, NewValidationError("backend", "must be 'local' or 'cluster'")
	}

	image := req.Image
	if image == "" {
		image = s.cfg.Image
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	idleTimeout := int(s.cfg.DefaultIdleTimeout.Seconds())
	if req.IdleTimeoutSec != nil {
		idleTimeout = *req.IdleTimeoutSec
	}
	maxLifetime := int(s.cfg.DefaultMaxLifetime.Seconds())
	if req.MaxLifetimeSec != nil {
		maxLifetime = *req.MaxLifetimeSec
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.db.SandboxSession.Create().
		SetID(sessionID).
		SetUserID(req.UserID).
		SetWorkspaceID(req.WorkspaceID).
		SetBackend(sandboxsession.Backend(backend)).
		SetImage(image).
		SetWorkspacePath(s.cfg.WorkspacePath).
		SetStatus(sandboxsession.StatusStarting).
		SetIdleTimeoutSec(idleTimeout).
		SetMaxLifetimeSec(maxLifetime)

	if req.CPULimit != "" {
		builder.SetCPULimit(req.CPULimit)
	}
	if req.MemoryLimit != "" {
		builder.SetMemoryLimit(req.MemoryLimit)
	}
	if req.RestoreSnapshotID != "" {
		builder.SetRestoreSnapshotID(req.RestoreSnapshotID)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	session, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.SandboxSession, error) {
	session, err := s.db.SandboxSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions lists sessions with filtering and pagination
func (s *SessionService) ListSessions(ctx context.Context, filters models.SandboxFilters) (*models.SandboxListResponse, error) {
	query := s.db.SandboxSession.Query()

	if filters.Status != "" {
		query = query.Where(sandboxsession.StatusEQ(sandboxsession.Status(filters.Status)))
	}
	if filters.UserID != "" {
		query = query.Where(sandboxsession.UserIDEQ(filters.UserID))
	}
	if filters.WorkspaceID != "" {
		query = query.Where(sandboxsession.WorkspaceIDEQ(filters.WorkspaceID))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(sandboxsession.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(sandboxsession.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(sandboxsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SandboxListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateSessionStatus applies a status transition under a row lock, rejecting
// edges the lifecycle does not permit.
func (s *SessionService) UpdateSessionStatus(ctx context.Context, sessionID, status string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.db.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	session, err := tx.SandboxSession.Query().
		Where(sandboxsession.ID(sessionID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock session: %w", err)
	}

	current := session.Status.String()
	if current == status {
		return tx.Commit()
	}
	if !transitionAllowed(current, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
	}

	err = tx.SandboxSession.UpdateOneID(sessionID).
		SetStatus(sandboxsession.Status(status)).
		SetLastActivityAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return tx.Commit()
}

// CountActiveSandboxes returns how many non-terminal sandboxes a workspace
// holds right now.
func (s *SessionService) CountActiveSandboxes(ctx context.Context, workspaceID string) (int, error) {
	count, err := s.db.SandboxSession.Query().
		Where(
			sandboxsession.WorkspaceIDEQ(workspaceID),
			sandboxsession.StatusIn(sandboxsession.StatusStarting, sandboxsession.StatusReady),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active sandboxes: %w", err)
	}
	return count, nil
}

// ListArtifacts returns a session's exported artifacts, newest first.
func (s *SessionService) ListArtifacts(ctx context.Context, sessionID string) ([]*ent.Artifact, error) {
	return s.db.Artifact.Query().
		Where(artifact.SessionID(sessionID)).
		Order(ent.Desc(artifact.FieldCreatedAt)).
		All(ctx)
}

// GetArtifact retrieves one artifact, scoped to its session.
func (s *SessionService) GetArtifact(ctx context.Context, sessionID, artifactID string) (*ent.Artifact, error) {
	row, err := s.db.Artifact.Query().
		Where(artifact.ID(artifactID), artifact.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return row, nil
}
