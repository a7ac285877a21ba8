package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraforge/astraforge/ent/conversation"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/models"
	"github.com/astraforge/astraforge/pkg/services"
	"github.com/astraforge/astraforge/test/util"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSandboxConfig() *config.SandboxConfig {
	return &config.SandboxConfig{
		Image:              "astraforge-sandbox:test",
		DefaultBackend:     config.BackendLocal,
		WorkspacePath:      "/workspace",
		DefaultIdleTimeout: 30 * time.Minute,
		DefaultMaxLifetime: 4 * time.Hour,
	}
}

func setupServices(t *testing.T) (*database.Client, *services.SessionService, *services.ConversationService) {
	entClient, db := util.SetupTestDatabase(t)
	dbc := database.NewClientFromEnt(entClient, db)
	cfg := testSandboxConfig()
	return dbc,
		services.NewSessionService(dbc, cfg),
		services.NewConversationService(dbc, cfg, testLogger())
}

func TestSessionService_CreateAppliesDefaults(t *testing.T) {
	_, sessions, _ := setupServices(t)
	ctx := context.Background()

	sess, err := sessions.CreateSession(ctx, models.CreateSandboxRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, sandboxsession.StatusStarting, sess.Status)
	assert.Equal(t, sandboxsession.BackendLocal, sess.Backend)
	assert.Equal(t, "astraforge-sandbox:test", sess.Image)
	assert.Equal(t, "/workspace", sess.WorkspacePath)
	require.NotNil(t, sess.IdleTimeoutSec)
	assert.Equal(t, int(30*time.Minute/time.Second), *sess.IdleTimeoutSec)

	got, err := sessions.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
}

func TestSessionService_StatusTransitions(t *testing.T) {
	_, sessions, _ := setupServices(t)
	ctx := context.Background()

	sess, err := sessions.CreateSession(ctx, models.CreateSandboxRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
	})
	require.NoError(t, err)

	require.NoError(t, sessions.UpdateSessionStatus(ctx, sess.ID, models.SessionStatusReady))

	// ready -> starting is not a legal edge
	err = sessions.UpdateSessionStatus(ctx, sess.ID, models.SessionStatusStarting)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	require.NoError(t, sessions.UpdateSessionStatus(ctx, sess.ID, models.SessionStatusTerminated))

	// terminated is terminal
	err = sessions.UpdateSessionStatus(ctx, sess.ID, models.SessionStatusReady)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	// Same-status writes are a no-op, not an error
	require.NoError(t, sessions.UpdateSessionStatus(ctx, sess.ID, models.SessionStatusTerminated))
}

func TestConversationService_CreateBindsSession(t *testing.T) {
	dbc, _, conversations := setupServices(t)
	ctx := context.Background()

	conv, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		Goal:        "list the workspace files",
	})
	require.NoError(t, err)

	assert.Equal(t, conv.ID, conv.SessionID)
	assert.Equal(t, conversation.StatusCreated, conv.Status)
	assert.False(t, conv.IsResume)

	sess, err := dbc.SandboxSession.Get(ctx, conv.SessionID)
	require.NoError(t, err)
	assert.Equal(t, sandboxsession.StatusStarting, sess.Status)
	assert.Equal(t, "ws-1", sess.WorkspaceID)
}

func TestConversationService_SnapshotInheritance(t *testing.T) {
	dbc, _, conversations := setupServices(t)
	ctx := context.Background()

	first, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		Goal:        "set up the project",
	})
	require.NoError(t, err)

	require.NoError(t, conversations.SetStatus(ctx, first.ID, models.RunStatusRunning))
	require.NoError(t, conversations.Complete(ctx, first.ID, "done", "set up complete", "snap-abc"))

	second, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		Goal:        "continue the project",
	})
	require.NoError(t, err)

	assert.True(t, second.IsResume)
	sess, err := dbc.SandboxSession.Get(ctx, second.SessionID)
	require.NoError(t, err)
	require.NotNil(t, sess.RestoreSnapshotID)
	assert.Equal(t, "snap-abc", *sess.RestoreSnapshotID)

	// A different workspace inherits nothing
	other, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-2",
		Goal:        "fresh start",
	})
	require.NoError(t, err)
	assert.False(t, other.IsResume)
}

func TestConversationService_ClaimNextPending(t *testing.T) {
	_, _, conversations := setupServices(t)
	ctx := context.Background()

	first, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID: "user-1", WorkspaceID: "ws-1", Goal: "first",
	})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID: "user-1", WorkspaceID: "ws-1", Goal: "second",
	})
	require.NoError(t, err)

	claimed, err := conversations.ClaimNextPending(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, conversation.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-a", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)

	claimed, err = conversations.ClaimNextPending(ctx, "pod-b")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, second.ID, claimed.ID)

	claimed, err = conversations.ClaimNextPending(ctx, "pod-a")
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestConversationService_Redispatch(t *testing.T) {
	_, _, conversations := setupServices(t)
	ctx := context.Background()

	conv, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID: "user-1", WorkspaceID: "ws-1", Goal: "original goal",
	})
	require.NoError(t, err)

	// A non-terminal run cannot be re-dispatched
	_, err = conversations.Redispatch(ctx, conv.ID, "new goal")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	require.NoError(t, conversations.SetStatus(ctx, conv.ID, models.RunStatusRunning))
	require.NoError(t, conversations.Fail(ctx, conv.ID, "sandbox exploded"))

	redone, err := conversations.Redispatch(ctx, conv.ID, "new goal")
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusCreated, redone.Status)
	assert.Equal(t, "new goal", redone.Goal)
	assert.True(t, redone.IsResume)
	assert.Nil(t, redone.PodID)
	assert.Nil(t, redone.CompletedAt)
	assert.Nil(t, redone.ErrorMessage)
}

func TestConversationService_TerminalStatusImmutable(t *testing.T) {
	_, _, conversations := setupServices(t)
	ctx := context.Background()

	conv, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID: "user-1", WorkspaceID: "ws-1", Goal: "goal",
	})
	require.NoError(t, err)

	require.NoError(t, conversations.SetStatus(ctx, conv.ID, models.RunStatusRunning))
	require.NoError(t, conversations.SetStatus(ctx, conv.ID, models.RunStatusCancelled))

	err = conversations.SetStatus(ctx, conv.ID, models.RunStatusRunning)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	status, err := conversations.Status(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCancelled, status)
}

func TestConversationService_OrphanRecovery(t *testing.T) {
	dbc, _, conversations := setupServices(t)
	ctx := context.Background()

	conv, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID: "user-1", WorkspaceID: "ws-1", Goal: "goal",
	})
	require.NoError(t, err)

	claimed, err := conversations.ClaimNextPending(ctx, "pod-dead")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Age the heartbeat past the threshold
	err = dbc.Conversation.UpdateOneID(conv.ID).
		SetLastInteractionAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	orphans, err := conversations.FindOrphaned(ctx, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)

	count, err := conversations.MarkOrphansFailed(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := conversations.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "worker heartbeat lost", *got.ErrorMessage)
}

func TestQuotaService_MonthlyRequestLimit(t *testing.T) {
	dbc, sessions, conversations := setupServices(t)
	ctx := context.Background()

	quotas := services.NewQuotaService(dbc, &config.QuotaConfig{
		RequestsPerMonth:    2,
		ConcurrentSandboxes: 10,
		SandboxesPerMonth:   10,
	}, conversations, sessions)

	require.NoError(t, quotas.ConsumeRunRequest(ctx, "ws-1"))
	require.NoError(t, quotas.ConsumeRunRequest(ctx, "ws-1"))

	err := quotas.ConsumeRunRequest(ctx, "ws-1")
	require.Error(t, err)
	assert.True(t, services.IsQuotaExceeded(err))
	qe := err.(*services.QuotaExceededError)
	assert.Equal(t, "requests_per_month", qe.Limit)

	// Another workspace has its own ledger
	require.NoError(t, quotas.ConsumeRunRequest(ctx, "ws-2"))

	requests, sandboxes, err := quotas.Usage(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	assert.Equal(t, 2, sandboxes)
}

func TestQuotaService_ConcurrencyLimit(t *testing.T) {
	dbc, sessions, conversations := setupServices(t)
	ctx := context.Background()

	quotas := services.NewQuotaService(dbc, &config.QuotaConfig{
		RequestsPerMonth:    100,
		ConcurrentSandboxes: 1,
		SandboxesPerMonth:   100,
	}, conversations, sessions)

	conv, err := conversations.Create(ctx, models.CreateRunRequest{
		UserID: "user-1", WorkspaceID: "ws-1", Goal: "hold the slot",
	})
	require.NoError(t, err)

	err = quotas.ConsumeRunRequest(ctx, "ws-1")
	require.Error(t, err)
	assert.True(t, services.IsQuotaExceeded(err))
	assert.Equal(t, "concurrent_sandboxes", err.(*services.QuotaExceededError).Limit)

	// Finishing the run frees the slot without touching any counter
	require.NoError(t, conversations.SetStatus(ctx, conv.ID, models.RunStatusRunning))
	require.NoError(t, conversations.Fail(ctx, conv.ID, "gone"))
	require.NoError(t, quotas.ConsumeRunRequest(ctx, "ws-1"))
}

func TestEventService_BacklogReplay(t *testing.T) {
	dbc, sessions, _ := setupServices(t)
	ctx := context.Background()

	sess, err := sessions.CreateSession(ctx, models.CreateSandboxRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
	})
	require.NoError(t, err)

	publisher := events.NewPostgresPublisher(dbc.DB())
	require.NoError(t, publisher.Publish(ctx, sess.ID, events.StatusPayload{
		Base:   events.NewBase(events.EventTypeStatus, sess.ID),
		Entity: "run",
		Status: models.RunStatusRunning,
	}))
	require.NoError(t, publisher.Publish(ctx, sess.ID, events.LogPayload{
		Base: events.NewBase(events.EventTypeLog, sess.ID),
		Line: "hello",
	}))

	backlog := services.NewEventService(dbc.DB())
	channel := events.StreamChannel(sess.ID)

	all, err := backlog.EventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, events.EventTypeStatus, all[0].Payload["type"])
	assert.Equal(t, events.EventTypeLog, all[1].Payload["type"])
	assert.Less(t, all[0].Seq, all[1].Seq)
	// Replayed payloads carry their seq, matching live NOTIFY delivery
	assert.EqualValues(t, all[0].Seq, all[0].Payload["seq"])

	tail, err := backlog.EventsSince(ctx, channel, all[0].Seq, 0)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, events.EventTypeLog, tail[0].Payload["type"])
}
