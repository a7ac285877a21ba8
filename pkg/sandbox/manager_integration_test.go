package sandbox_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/runner"
	"github.com/astraforge/astraforge/pkg/runtime"
	"github.com/astraforge/astraforge/pkg/sandbox"
	"github.com/astraforge/astraforge/test/util"
)

// fakeAdapter satisfies runtime.Adapter without a container daemon.
type fakeAdapter struct {
	mu        sync.Mutex
	destroyed []string
}

func (a *fakeAdapter) Provision(_ context.Context, spec runtime.ProvisionSpec) (*runtime.Instance, error) {
	return &runtime.Instance{Backend: runtime.BackendLocal, Name: "fake-" + spec.SessionID}, nil
}

func (a *fakeAdapter) Exec(_ context.Context, _ *runtime.Instance, _ string, _ runtime.ExecOptions) (*runner.Result, error) {
	return &runner.Result{}, nil
}

func (a *fakeAdapter) CopyTo(context.Context, *runtime.Instance, string, string) error   { return nil }
func (a *fakeAdapter) CopyFrom(context.Context, *runtime.Instance, string, string) error { return nil }

func (a *fakeAdapter) Alive(context.Context, *runtime.Instance) (bool, error) { return true, nil }

func (a *fakeAdapter) Destroy(_ context.Context, inst *runtime.Instance) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.destroyed = append(a.destroyed, inst.Name)
	return nil
}

func setupManager(t *testing.T) (*database.Client, *sandbox.Manager, *fakeAdapter) {
	entClient, db := util.SetupTestDatabase(t)
	dbc := database.NewClientFromEnt(entClient, db)
	adapter := &fakeAdapter{}
	bus := events.NewMemoryBus(events.NewHub(), 512, time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mgr := sandbox.NewManager(dbc,
		map[string]runtime.Adapter{runtime.BackendLocal: adapter},
		bus, nil, &config.SandboxConfig{}, logger)
	return dbc, mgr, adapter
}

func createSession(t *testing.T, dbc *database.Client, id string) *ent.SandboxSessionCreate {
	t.Helper()
	return dbc.SandboxSession.Create().
		SetID(id).
		SetUserID("user-1").
		SetWorkspaceID("ws-1").
		SetBackend(sandboxsession.BackendLocal).
		SetImage("astraforge-sandbox:test")
}

func TestManager_ProvisionPopulatesRuntimeHandle(t *testing.T) {
	dbc, mgr, _ := setupManager(t)
	ctx := context.Background()

	_, err := createSession(t, dbc, "s1").
		SetMaxLifetimeSec(3600).
		Save(ctx)
	require.NoError(t, err)

	sess, err := mgr.Provision(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, sandboxsession.StatusReady, sess.Status)
	require.NotNil(t, sess.BackendRef)
	assert.Equal(t, "local://fake-s1", *sess.BackendRef)
	require.NotNil(t, sess.ControlEndpoint)
	assert.Equal(t, *sess.BackendRef, *sess.ControlEndpoint)
	require.NotNil(t, sess.ExpiresAt)
}

func TestReaper_TerminatesIdleSessions(t *testing.T) {
	dbc, mgr, adapter := setupManager(t)
	ctx := context.Background()

	_, err := createSession(t, dbc, "s1").
		SetStatus(sandboxsession.StatusReady).
		SetBackendRef("local://fake-s1").
		SetIdleTimeoutSec(60).
		SetLastActivityAt(time.Now().Add(-120 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	reaper := sandbox.NewReaper(&config.ReaperConfig{
		Interval:        time.Minute,
		RunLogRetention: time.Hour,
	}, dbc, mgr, nil)

	report, err := reaper.ReapExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 1, report.Terminated)

	sess, err := dbc.SandboxSession.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sandboxsession.StatusTerminated, sess.Status)
	assert.Equal(t, "idle_timeout", sess.Metadata["terminated_reason"])

	adapter.mu.Lock()
	assert.Contains(t, adapter.destroyed, "fake-s1")
	adapter.mu.Unlock()
}

func TestManager_TerminateExpiredSparesActiveSession(t *testing.T) {
	dbc, mgr, _ := setupManager(t)
	ctx := context.Background()

	// Idle deadline is configured but activity is recent, as after an Execute
	// that landed between a reaper scan and its kill.
	_, err := createSession(t, dbc, "s1").
		SetStatus(sandboxsession.StatusReady).
		SetBackendRef("local://fake-s1").
		SetIdleTimeoutSec(60).
		SetLastActivityAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	reason, err := mgr.TerminateExpired(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, reason)

	sess, err := dbc.SandboxSession.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sandboxsession.StatusReady, sess.Status)
}

func TestManager_TerminateExpiredKillsOverdueSession(t *testing.T) {
	dbc, mgr, _ := setupManager(t)
	ctx := context.Background()

	_, err := createSession(t, dbc, "s1").
		SetStatus(sandboxsession.StatusReady).
		SetBackendRef("local://fake-s1").
		SetMaxLifetimeSec(3600).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	reason, err := mgr.TerminateExpired(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "max_lifetime", reason)

	sess, err := dbc.SandboxSession.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sandboxsession.StatusTerminated, sess.Status)
	assert.Equal(t, "max_lifetime", sess.Metadata["terminated_reason"])
}
