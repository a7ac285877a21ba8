package sandbox

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/snapshot"
	"github.com/astraforge/astraforge/pkg/database"
	"github.com/astraforge/astraforge/pkg/runtime"
)

// snapshotDirName is the in-sandbox directory holding archives, relative to
// the workspace.
const snapshotDirName = ".sandbox-snapshots"

// SnapshotStore creates and restores workspace archives. Archives are
// produced inside the sandbox with tar and optionally offloaded to an
// S3-compatible bucket so they survive sandbox termination.
//
// The store never interprets archive contents.
type SnapshotStore struct {
	db       *database.Client
	adapters map[string]runtime.Adapter
	objects  *ObjectStore // nil when offload is disabled
	logger   *slog.Logger

	// Per-session locks: concurrent snapshot/restore on one session would
	// interleave tar streams.
	locks sync.Map // session id → *sync.Mutex
}

// NewSnapshotStore creates the store. objects may be nil.
func NewSnapshotStore(db *database.Client, adapters map[string]runtime.Adapter, objects *ObjectStore, logger *slog.Logger) *SnapshotStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotStore{
		db:       db,
		adapters: adapters,
		objects:  objects,
		logger:   logger,
	}
}

func (s *SnapshotStore) lock(sessionID string) func() {
	muAny, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *SnapshotStore) instance(sess *ent.SandboxSession) (runtime.Adapter, *runtime.Instance, error) {
	adapter, ok := s.adapters[sess.Backend.String()]
	if !ok {
		return nil, nil, fmt.Errorf("no runtime adapter for backend %q", sess.Backend)
	}
	if sess.BackendRef == nil {
		return nil, nil, &NotReadyError{SessionID: sess.ID, Status: sess.Status.String()}
	}
	inst, err := runtime.ParseRef(*sess.BackendRef)
	if err != nil {
		return nil, nil, err
	}
	return adapter, inst, nil
}

// Create archives the requested workspace paths into a new snapshot.
// Defaults to the whole workspace when includePaths is empty.
func (s *SnapshotStore) Create(ctx context.Context, sess *ent.SandboxSession, includePaths, excludePaths []string, label string) (*ent.Snapshot, error) {
	unlock := s.lock(sess.ID)
	defer unlock()

	adapter, inst, err := s.instance(sess)
	if err != nil {
		return nil, err
	}

	snapshotID := uuid.New().String()
	archivePath := path.Join(sess.WorkspacePath, snapshotDirName, snapshotID+".tar.gz")

	if len(includePaths) == 0 {
		includePaths = []string{sess.WorkspacePath}
	}
	// The archive directory must never archive itself.
	excludePaths = append(excludePaths, path.Join(sess.WorkspacePath, snapshotDirName))

	var sb strings.Builder
	fmt.Fprintf(&sb, "mkdir -p %s && tar -czf %s",
		runtime.ShellQuote(path.Dir(archivePath)), runtime.ShellQuote(archivePath))
	for _, ex := range excludePaths {
		fmt.Fprintf(&sb, " --exclude=%s", runtime.ShellQuote(ex))
	}
	for _, inc := range includePaths {
		fmt.Fprintf(&sb, " %s", runtime.ShellQuote(inc))
	}
	// tar exits 1 on "file changed as we read it"; the archive is still valid.
	sb.WriteString(" || [ $? -eq 1 ]")

	if _, err := adapter.Exec(ctx, inst, sb.String(), runtime.ExecOptions{}); err != nil {
		return nil, fmt.Errorf("snapshot archive failed: %w", err)
	}

	sizeResult, err := adapter.Exec(ctx, inst,
		fmt.Sprintf("stat -c %%s %s", runtime.ShellQuote(archivePath)), runtime.ExecOptions{})
	if err != nil {
		return nil, fmt.Errorf("snapshot stat failed: %w", err)
	}
	sizeBytes, _ := strconv.ParseInt(strings.TrimSpace(sizeResult.Output), 10, 64)

	create := s.db.Snapshot.Create().
		SetID(snapshotID).
		SetSessionID(sess.ID).
		SetArchivePath(archivePath).
		SetSizeBytes(sizeBytes).
		SetIncludePaths(includePaths).
		SetExcludePaths(excludePaths)
	if label != "" {
		create.SetLabel(label)
	}

	if s.objects != nil {
		key := s.objects.Key(sess.ID, snapshotID)
		if err := s.offload(ctx, adapter, inst, archivePath, key); err != nil {
			return nil, fmt.Errorf("snapshot offload failed: %w", err)
		}
		create.SetObjectStoreKey(key)
	}

	snap, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}

	if err := s.recordLatest(ctx, sess.ID, snapshotID); err != nil {
		s.logger.Warn("failed to record latest snapshot", "session_id", sess.ID, "error", err)
	}

	s.logger.Info("snapshot created",
		"session_id", sess.ID, "snapshot_id", snapshotID, "size_bytes", sizeBytes)
	return snap, nil
}

// offload reads the archive out of the sandbox and uploads it.
func (s *SnapshotStore) offload(ctx context.Context, adapter runtime.Adapter, inst *runtime.Instance, archivePath, key string) error {
	result, err := adapter.Exec(ctx, inst,
		fmt.Sprintf("base64 < %s", runtime.ShellQuote(archivePath)),
		runtime.ExecOptions{MaxOutputBytes: 256 << 20})
	if err != nil {
		return err
	}
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(result.Output, "\n", ""))
	if err != nil {
		return fmt.Errorf("failed to decode archive: %w", err)
	}
	return s.objects.Put(ctx, key, bytes.NewReader(raw))
}

// Restore unpacks a snapshot archive into the sandbox filesystem. When the
// archive file is gone (fresh sandbox) and an object-store copy exists, it
// is fetched first.
//
// The tar flags are mandatory: without them a restore would clobber
// ownership metadata and live-mounted directories.
func (s *SnapshotStore) Restore(ctx context.Context, sess *ent.SandboxSession, snap *ent.Snapshot) error {
	unlock := s.lock(sess.ID)
	defer unlock()

	adapter, inst, err := s.instance(sess)
	if err != nil {
		return err
	}

	present, err := adapter.Exec(ctx, inst,
		fmt.Sprintf("test -f %s", runtime.ShellQuote(snap.ArchivePath)),
		runtime.ExecOptions{AllowFailure: true})
	if err != nil {
		return fmt.Errorf("restore probe failed: %w", err)
	}
	if present.ExitCode != 0 {
		if s.objects == nil || snap.ObjectStoreKey == nil {
			return fmt.Errorf("snapshot archive %s is gone and no object-store copy exists", snap.ArchivePath)
		}
		if err := s.fetch(ctx, adapter, inst, *snap.ObjectStoreKey, snap.ArchivePath); err != nil {
			return fmt.Errorf("snapshot fetch failed: %w", err)
		}
	}

	restoreCmd := fmt.Sprintf(
		"tar -xzf %s -C / --no-same-owner --no-same-permissions --no-overwrite-dir -m",
		runtime.ShellQuote(snap.ArchivePath))
	if _, err := adapter.Exec(ctx, inst, restoreCmd, runtime.ExecOptions{}); err != nil {
		return fmt.Errorf("snapshot restore failed: %w", err)
	}

	if err := s.recordLatest(ctx, sess.ID, snap.ID); err != nil {
		s.logger.Warn("failed to record latest snapshot", "session_id", sess.ID, "error", err)
	}

	s.logger.Info("snapshot restored", "session_id", sess.ID, "snapshot_id", snap.ID)
	return nil
}

// fetch downloads an offloaded archive and writes it into the sandbox.
func (s *SnapshotStore) fetch(ctx context.Context, adapter runtime.Adapter, inst *runtime.Instance, key, archivePath string) error {
	body, err := s.objects.Get(ctx, key)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	raw, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read archive from object store: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	command := fmt.Sprintf("mkdir -p %s && base64 -d > %s",
		runtime.ShellQuote(path.Dir(archivePath)), runtime.ShellQuote(archivePath))
	_, err = adapter.Exec(ctx, inst, command, runtime.ExecOptions{
		Stdin: strings.NewReader(encoded),
	})
	return err
}

// recordLatest stores latest_snapshot_id in the session metadata.
func (s *SnapshotStore) recordLatest(ctx context.Context, sessionID, snapshotID string) error {
	sess, err := s.db.SandboxSession.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	metadata := sess.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["latest_snapshot_id"] = snapshotID
	return s.db.SandboxSession.UpdateOneID(sessionID).SetMetadata(metadata).Exec(ctx)
}

// List returns a session's snapshots, newest first.
func (s *SnapshotStore) List(ctx context.Context, sessionID string) ([]*ent.Snapshot, error) {
	return s.db.Snapshot.Query().
		Where(snapshot.SessionID(sessionID)).
		Order(ent.Desc(snapshot.FieldCreatedAt)).
		All(ctx)
}
