// Package sandbox is the lifecycle aggregate for sandbox sessions: it
// provisions runtime instances, executes workspace commands, moves files in
// and out, snapshots workspaces, and terminates sandboxes. All state
// transitions go through the session row under row-level locks.
package sandbox

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/masking"
	"github.com/astraforge/astraforge/pkg/runner"
	"github.com/astraforge/astraforge/pkg/runtime"
)

// screenshotScript probes for a usable capture tool and emits a base64 PNG
// of the root window on stdout. Exits 3 when no tooling is present.
const screenshotScript = `
set -e
out=$(mktemp /tmp/shot-XXXXXX.png)
if command -v import >/dev/null 2>&1; then
  import -window root "$out"
elif command -v xwd >/dev/null 2>&1 && command -v convert >/dev/null 2>&1; then
  xwd -root -silent | convert xwd:- png:"$out"
else
  echo "no screenshot tooling available" >&2
  exit 3
fi
base64 "$out"
rm -f "$out"
`

// Manager is the aggregate root for sandbox sessions.
type Manager struct {
	db        *database.Client
	adapters  map[string]runtime.Adapter
	publisher events.Publisher
	snapshots *SnapshotStore
	cfg       *config.SandboxConfig
	logger    *slog.Logger
}

// NewManager creates a lifecycle manager over the given backends.
func NewManager(
	db *database.Client,
	adapters map[string]runtime.Adapter,
	publisher events.Publisher,
	snapshots *SnapshotStore,
	cfg *config.SandboxConfig,
	logger *slog.Logger,
) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		db:        db,
		adapters:  adapters,
		publisher: publisher,
		snapshots: snapshots,
		cfg:       cfg,
		logger:    logger,
	}
}

// Snapshots exposes the snapshot store.
func (m *Manager) Snapshots() *SnapshotStore {
	return m.snapshots
}

func (m *Manager) adapterFor(backend string) (runtime.Adapter, error) {
	adapter, ok := m.adapters[backend]
	if !ok {
		return nil, fmt.Errorf("no runtime adapter for backend %q", backend)
	}
	return adapter, nil
}

func (m *Manager) getSession(ctx context.Context, sessionID string) (*ent.SandboxSession, error) {
	sess, err := m.db.SandboxSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return sess, nil
}

// Provision makes the session's sandbox live. Idempotent: a ready session
// whose instance is still running is a no-op. A restore_snapshot_id on the
// row is honored as part of provisioning.
func (m *Manager) Provision(ctx context.Context, sessionID string) (*ent.SandboxSession, error) {
	sess, err := m.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	adapter, err := m.adapterFor(sess.Backend.String())
	if err != nil {
		return nil, err
	}

	if sess.Status == sandboxsession.StatusReady && sess.BackendRef != nil {
		if inst, parseErr := runtime.ParseRef(*sess.BackendRef); parseErr == nil {
			if alive, aliveErr := adapter.Alive(ctx, inst); aliveErr == nil && alive {
				return sess, nil
			}
		}
	}
	if sess.Status == sandboxsession.StatusTerminated {
		return nil, &NotReadyError{SessionID: sessionID, Status: sess.Status.String()}
	}

	inst, err := adapter.Provision(ctx, m.provisionSpec(sess))
	if err != nil {
		m.markFailed(ctx, sessionID, err)
		return nil, &ProvisionError{SessionID: sessionID, Err: err}
	}

	// The exec channel doubles as the control plane, so the control endpoint
	// is the backend ref itself.
	update := m.db.SandboxSession.UpdateOneID(sessionID).
		SetStatus(sandboxsession.StatusReady).
		SetBackendRef(inst.Ref()).
		SetControlEndpoint(inst.Ref()).
		SetLastActivityAt(time.Now()).
		ClearErrorMessage()
	if sess.MaxLifetimeSec != nil {
		update.SetExpiresAt(sess.CreatedAt.Add(time.Duration(*sess.MaxLifetimeSec) * time.Second))
	}
	sess, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark session ready: %w", err)
	}

	if sess.RestoreSnapshotID != nil && *sess.RestoreSnapshotID != "" {
		snap, err := m.db.Snapshot.Get(ctx, *sess.RestoreSnapshotID)
		if err != nil {
			m.markFailed(ctx, sessionID, fmt.Errorf("restore snapshot %s: %w", *sess.RestoreSnapshotID, err))
			return nil, &ProvisionError{SessionID: sessionID, Err: err}
		}
		if err := m.snapshots.Restore(ctx, sess, snap); err != nil {
			m.markFailed(ctx, sessionID, err)
			return nil, &ProvisionError{SessionID: sessionID, Err: err}
		}
	}

	m.publishStatus(ctx, sessionID, "session", sandboxsession.StatusReady.String(), "")
	m.logger.Info("sandbox provisioned",
		"session_id", sessionID, "backend", sess.Backend, "ref", inst.Ref())
	return sess, nil
}

func (m *Manager) provisionSpec(sess *ent.SandboxSession) runtime.ProvisionSpec {
	spec := runtime.ProvisionSpec{
		SessionID:     sess.ID,
		Image:         sess.Image,
		CPULimit:      sess.CPULimit,
		MemoryLimit:   sess.MemoryLimit,
		WorkspacePath: sess.WorkspacePath,
		Labels:        map[string]string{"astraforge.workspace": sess.WorkspaceID},
		ReadOnlyRoot:  m.cfg.DockerReadOnly,
		PidsLimit:     m.cfg.DockerPidsLimit,
		Network:       m.cfg.DockerNetwork,
		User:          m.cfg.DockerUser,
		RunAsUser:     m.cfg.ClusterRunAsUser,
	}
	if spec.CPULimit == "" {
		spec.CPULimit = m.cfg.DockerCPULimit
	}
	if spec.MemoryLimit == "" {
		spec.MemoryLimit = m.cfg.DockerMemLimit
	}
	return spec
}

func (m *Manager) markFailed(ctx context.Context, sessionID string, cause error) {
	_, err := m.db.SandboxSession.UpdateOneID(sessionID).
		SetStatus(sandboxsession.StatusFailed).
		SetErrorMessage(cause.Error()).
		Save(ctx)
	if err != nil {
		m.logger.Error("failed to mark session failed", "session_id", sessionID, "error", err)
	}
	m.publishStatus(ctx, sessionID, "session", sandboxsession.StatusFailed.String(), cause.Error())
}

// Execute runs a shell command in the session workspace. A non-ready session
// is reprovisioned once, restoring the latest snapshot when one is recorded.
// Non-zero exits are results, not errors.
func (m *Manager) Execute(ctx context.Context, sessionID, command, cwd string, timeoutSec int, stream func(string)) (*runner.Result, error) {
	sess, err := m.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != sandboxsession.StatusReady {
		sess, err = m.reprovision(ctx, sess)
		if err != nil {
			return nil, err
		}
	}

	adapter, err := m.adapterFor(sess.Backend.String())
	if err != nil {
		return nil, err
	}
	if sess.BackendRef == nil {
		return nil, &NotReadyError{SessionID: sessionID, Status: sess.Status.String()}
	}
	inst, err := runtime.ParseRef(*sess.BackendRef)
	if err != nil {
		return nil, err
	}

	wrapped := command
	if timeoutSec > 0 {
		wrapped = fmt.Sprintf("timeout %d sh -c %s", timeoutSec, runtime.ShellQuote(command))
	}
	if cwd == "" {
		cwd = sess.WorkspacePath
	}

	result, err := adapter.Exec(ctx, inst, wrapped, runtime.ExecOptions{
		Cwd:          cwd,
		AllowFailure: true,
		Stream: func(line string) {
			if stream != nil {
				stream(line)
			}
			payload := events.LogPayload{Base: events.NewBase(events.EventTypeLog, sessionID), Line: masking.Redact(line)}
			if pubErr := m.publisher.Publish(ctx, sessionID, payload); pubErr != nil {
				m.logger.Warn("failed to publish log event", "session_id", sessionID, "error", pubErr)
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sandbox exec failed: %w", err)
	}

	_, updErr := m.db.SandboxSession.UpdateOneID(sessionID).
		SetLastActivityAt(time.Now()).
		AddCPUSeconds(result.Duration.Seconds()).
		Save(ctx)
	if updErr != nil {
		m.logger.Warn("failed to advance last_activity_at", "session_id", sessionID, "error", updErr)
	}

	cmdPayload := events.CommandPayload{
		Base:       events.NewBase(events.EventTypeCommand, sessionID),
		Command:    command,
		ExitCode:   result.ExitCode,
		DurationMs: result.Duration.Milliseconds(),
		Truncated:  result.Truncated,
	}
	if pubErr := m.publisher.Publish(ctx, sessionID, cmdPayload); pubErr != nil {
		m.logger.Warn("failed to publish command event", "session_id", sessionID, "error", pubErr)
	}

	return result, nil
}

// reprovision retries provisioning for a non-ready session, seeding the
// restore intent from metadata.latest_snapshot_id when present.
func (m *Manager) reprovision(ctx context.Context, sess *ent.SandboxSession) (*ent.SandboxSession, error) {
	if sess.Status == sandboxsession.StatusTerminated {
		return nil, &NotReadyError{SessionID: sess.ID, Status: sess.Status.String()}
	}

	if latest, ok := sess.Metadata["latest_snapshot_id"].(string); ok && latest != "" {
		if _, err := m.db.SandboxSession.UpdateOneID(sess.ID).SetRestoreSnapshotID(latest).Save(ctx); err != nil {
			m.logger.Warn("failed to record restore intent", "session_id", sess.ID, "error", err)
		}
	}

	restored, err := m.Provision(ctx, sess.ID)
	if err != nil {
		return nil, &NotReadyError{SessionID: sess.ID, Status: sess.Status.String()}
	}
	return restored, nil
}

// Upload writes content to a path inside the sandbox, creating parent
// directories. Content travels base64-encoded through the exec channel.
func (m *Manager) Upload(ctx context.Context, sessionID, path string, content []byte) error {
	encoded := base64.StdEncoding.EncodeToString(content)
	dir := filepath.Dir(path)
	command := fmt.Sprintf("mkdir -p %s && printf '%%s' %s | base64 -d > %s",
		runtime.ShellQuote(dir), runtime.ShellQuote(encoded), runtime.ShellQuote(path))

	result, err := m.Execute(ctx, sessionID, command, "", 0, nil)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("upload to %s failed (exit %d): %s", path, result.ExitCode, result.Output)
	}
	return nil
}

// ReadFile reads a sandbox file, base64-encoded over the exec channel.
// Truncated reports whether maxBytes cut the content short.
func (m *Manager) ReadFile(ctx context.Context, sessionID, path string, maxBytes int64) (content []byte, truncated bool, err error) {
	command := fmt.Sprintf("base64 < %s", runtime.ShellQuote(path))
	result, err := m.Execute(ctx, sessionID, command, "", 0, nil)
	if err != nil {
		return nil, false, err
	}
	if result.ExitCode != 0 {
		return nil, false, fmt.Errorf("read of %s failed (exit %d): %s", path, result.ExitCode, result.Output)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(result.Output, "\n", ""))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode file content: %w", err)
	}
	if maxBytes > 0 && int64(len(decoded)) > maxBytes {
		return decoded[:maxBytes], true, nil
	}
	return decoded, false, nil
}

// ExportFile promotes a sandbox file to a downloadable Artifact.
func (m *Manager) ExportFile(ctx context.Context, sessionID, path, filename, contentType string) (*ent.Artifact, error) {
	content, _, err := m.ReadFile(ctx, sessionID, path, 0)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		filename = filepath.Base(path)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	artifactID := uuid.New().String()
	localDir := filepath.Join(m.cfg.DataDir, "artifacts", sessionID)
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact dir: %w", err)
	}
	localPath := filepath.Join(localDir, artifactID+"_"+filename)
	if err := os.WriteFile(localPath, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write artifact: %w", err)
	}

	downloadURL := fmt.Sprintf("/api/v1/sandboxes/%s/artifacts/%s", sessionID, artifactID)
	if m.cfg.ArtifactBaseURL != "" {
		downloadURL = strings.TrimSuffix(m.cfg.ArtifactBaseURL, "/") + "/" + artifactID
	}

	artifact, err := m.db.Artifact.Create().
		SetID(artifactID).
		SetSessionID(sessionID).
		SetFilename(filename).
		SetContentType(contentType).
		SetSizeBytes(int64(len(content))).
		SetStoragePath(localPath).
		SetDownloadURL(downloadURL).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist artifact: %w", err)
	}

	payload := events.ToolArtifactPayload{
		Base:        events.NewBase(events.EventTypeToolArtifact, sessionID),
		ArtifactID:  artifactID,
		Filename:    filename,
		ContentType: contentType,
		SizeBytes:   int64(len(content)),
		DownloadURL: downloadURL,
	}
	if pubErr := m.publisher.Publish(ctx, sessionID, payload); pubErr != nil {
		m.logger.Warn("failed to publish artifact event", "session_id", sessionID, "error", pubErr)
	}

	return artifact, nil
}

// CaptureScreenshot grabs a PNG of the sandbox display. Fails cleanly when
// the image has no capture tooling.
func (m *Manager) CaptureScreenshot(ctx context.Context, sessionID string) ([]byte, error) {
	result, err := m.Execute(ctx, sessionID, screenshotScript, "", 30, nil)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("screenshot capture failed (exit %d): %s", result.ExitCode, result.Output)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(result.Output, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}
	return decoded, nil
}

// AutoSnapshot captures a labelled snapshot of the session workspace and
// returns its id. Used for the terminal snapshot at the end of a run.
func (m *Manager) AutoSnapshot(ctx context.Context, sessionID, label string) (string, error) {
	sess, err := m.getSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	snap, err := m.snapshots.Create(ctx, sess, nil, nil, label)
	if err != nil {
		return "", err
	}
	return snap.ID, nil
}

// Heartbeat records client liveness for a session.
func (m *Manager) Heartbeat(ctx context.Context, sessionID string) error {
	now := time.Now()
	err := m.db.SandboxSession.UpdateOneID(sessionID).
		SetLastHeartbeatAt(now).
		SetLastActivityAt(now).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

// Terminate destroys the sandbox and moves the session to terminated.
// Idempotent; the runtime destroy is best-effort. The status re-check runs
// under a row lock so Terminate can race the Reaper and controllers safely.
func (m *Manager) Terminate(ctx context.Context, sessionID, reason string) error {
	tx, err := m.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := tx.SandboxSession.Query().
		Where(sandboxsession.ID(sessionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to lock session: %w", err)
	}

	if sess.Status == sandboxsession.StatusTerminated {
		return tx.Commit()
	}

	if err := m.terminateLocked(ctx, tx, sess, reason); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit termination: %w", err)
	}

	m.publishStatus(ctx, sessionID, "session", sandboxsession.StatusTerminated.String(), reason)
	m.logger.Info("sandbox terminated", "session_id", sessionID, "reason", reason)
	return nil
}

// TerminateExpired terminates the session only if a deadline has actually
// passed on the row as locked, so an Execute that advanced last_activity_at
// after the caller's scan spares the session. Returns the reason applied, or
// "" when the session was spared.
func (m *Manager) TerminateExpired(ctx context.Context, sessionID string) (string, error) {
	tx, err := m.db.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := tx.SandboxSession.Query().
		Where(sandboxsession.ID(sessionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("failed to lock session: %w", err)
	}

	if sess.Status != sandboxsession.StatusReady {
		return "", tx.Commit()
	}
	reason := expiryReason(sess, time.Now())
	if reason == "" {
		return "", tx.Commit()
	}

	if err := m.terminateLocked(ctx, tx, sess, reason); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit termination: %w", err)
	}

	m.publishStatus(ctx, sessionID, "session", sandboxsession.StatusTerminated.String(), reason)
	m.logger.Info("sandbox terminated", "session_id", sessionID, "reason", reason)
	return reason, nil
}

// terminateLocked destroys the runtime instance and marks the locked session
// row terminated. The caller owns the transaction.
func (m *Manager) terminateLocked(ctx context.Context, tx *ent.Tx, sess *ent.SandboxSession, reason string) error {
	if sess.BackendRef != nil {
		if adapter, aErr := m.adapterFor(sess.Backend.String()); aErr == nil {
			if inst, pErr := runtime.ParseRef(*sess.BackendRef); pErr == nil {
				if dErr := adapter.Destroy(ctx, inst); dErr != nil {
					m.logger.Warn("best-effort destroy failed",
						"session_id", sess.ID, "error", dErr)
				}
			}
		}
	}

	metadata := sess.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	if reason != "" {
		metadata["terminated_reason"] = reason
	}

	_, err := tx.SandboxSession.UpdateOneID(sess.ID).
		SetStatus(sandboxsession.StatusTerminated).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark session terminated: %w", err)
	}
	return nil
}

func (m *Manager) publishStatus(ctx context.Context, sessionID, entity, status, message string) {
	payload := events.StatusPayload{
		Base:    events.NewBase(events.EventTypeStatus, sessionID),
		Entity:  entity,
		Status:  status,
		Message: message,
	}
	if err := m.publisher.Publish(ctx, sessionID, payload); err != nil {
		m.logger.Warn("failed to publish status event",
			"session_id", sessionID, "status", status, "error", err)
	}
}
