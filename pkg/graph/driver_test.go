package graph

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraforge/astraforge/pkg/computeruse"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/llm"
	"github.com/astraforge/astraforge/pkg/models"
	"github.com/astraforge/astraforge/pkg/tools"
)

type fakeStore struct {
	mu          sync.Mutex
	status      string
	summary     string
	finalAnswer string
	snapshotID  string
	failMessage string
	documents   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{status: models.RunStatusRunning}
}

func (s *fakeStore) Status(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, nil
}

func (s *fakeStore) SetStatus(_ context.Context, _, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	return nil
}

func (s *fakeStore) SetSummary(_ context.Context, _, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
	return nil
}

func (s *fakeStore) Complete(_ context.Context, _, finalAnswer, summary, snapshotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = models.RunStatusCompleted
	s.finalAnswer = finalAnswer
	s.summary = summary
	s.snapshotID = snapshotID
	return nil
}

func (s *fakeStore) Fail(_ context.Context, _, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = models.RunStatusFailed
	s.failMessage = message
	return nil
}

func (s *fakeStore) Documents(_ context.Context, _ string) ([]string, error) {
	return s.documents, nil
}

type fakeTool struct {
	name   string
	result *tools.Result
	err    error
	calls  []map[string]any
}

func (t *fakeTool) Name() string            { return t.name }
func (t *fakeTool) Description() string     { return t.name }
func (t *fakeTool) Schema() map[string]any  { return map[string]any{"type": "object"} }
func (t *fakeTool) Invoke(_ context.Context, args map[string]any) (*tools.Result, error) {
	t.calls = append(t.calls, args)
	if t.err != nil {
		return nil, t.err
	}
	return t.result, nil
}

type fakeSnapshotter struct {
	id  string
	err error
}

func (s *fakeSnapshotter) AutoSnapshot(_ context.Context, _, _ string) (string, error) {
	return s.id, s.err
}

func plannerResponse(steps ...PlanStep) *llm.Response {
	out := plannerOutput{Plan: "## Plan", PlanSteps: steps}
	raw, _ := json.Marshal(out)
	return &llm.Response{Content: string(raw)}
}

func drainBacklog(t *testing.T, bus *events.MemoryBus, runID string) []map[string]any {
	t.Helper()
	backlog, err := bus.EventsSince(context.Background(), events.StreamChannel(runID), 0, 0)
	require.NoError(t, err)
	out := make([]map[string]any, 0, len(backlog))
	for _, ev := range backlog {
		out = append(out, ev.Payload)
	}
	return out
}

func eventTypes(evs []map[string]any) []string {
	types := make([]string, len(evs))
	for i, ev := range evs {
		types[i], _ = ev["type"].(string)
	}
	return types
}

func newTestDriver(client llm.Client, registry *tools.Registry, store Store, snap Snapshotter) (*Driver, *events.MemoryBus, *Inbox, *MemoryCheckpointer) {
	bus := events.NewMemoryBus(events.NewHub(), 512, time.Hour)
	inbox := NewInbox()
	cp := NewMemoryCheckpointer()
	d := NewDriver(client, registry, store, cp, inbox, bus, snap, nil, nil)
	return d, bus, inbox, cp
}

func TestDriver_CompletesWithToolCall(t *testing.T) {
	shell := &fakeTool{name: "shell", result: &tools.Result{Output: "hello\n"}}
	registry := tools.NewRegistry()
	registry.Register(shell)

	client := llm.NewScriptedClient(
		// planner
		plannerResponse(PlanStep{Title: "run", Description: "echo", Status: StepInProgress}),
		// agent: one tool call
		&llm.Response{ToolCalls: []models.ToolCall{
			{ID: "c1", Name: "shell", Arguments: map[string]any{"command": "echo hello"}},
		}},
		// summarizer
		&llm.Response{Content: "ran the command"},
		// planner again, step completed
		plannerResponse(PlanStep{Title: "run", Description: "echo", Status: StepCompleted}),
		// agent: final answer
		&llm.Response{Content: "<final_answer>done: hello</final_answer>"},
	)

	store := newFakeStore()
	snap := &fakeSnapshotter{id: "snap-1"}
	d, bus, _, cp := newTestDriver(client, registry, store, snap)

	require.NoError(t, d.Run(context.Background(), "run-1", "say hello"))

	assert.Equal(t, models.RunStatusCompleted, store.status)
	assert.Equal(t, "done: hello", store.finalAnswer)
	assert.Equal(t, "snap-1", store.snapshotID)
	require.Len(t, shell.calls, 1)
	assert.Equal(t, "echo hello", shell.calls[0]["command"])

	evs := drainBacklog(t, bus, "run-1")
	types := eventTypes(evs)
	assert.Equal(t, events.EventTypeCompleted, types[len(types)-1])

	// tool_start precedes its tool_result, nothing in between for this call
	startIdx, resultIdx := -1, -1
	for i, ev := range evs {
		switch ev["type"] {
		case events.EventTypeToolStart:
			startIdx = i
			assert.Equal(t, "c1", ev["tool_call_id"])
		case events.EventTypeToolResult:
			resultIdx = i
			assert.Equal(t, "c1", ev["tool_call_id"])
			assert.Equal(t, "hello\n", ev["content"])
		}
	}
	require.GreaterOrEqual(t, startIdx, 0)
	assert.Greater(t, resultIdx, startIdx)

	// checkpoint survives the terminal transition for later resume
	state, _, err := cp.Load(context.Background(), "run-1")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, NodeTerminal, state.Next)
}

func TestDriver_PlannerFallbackOnUnstructuredOutput(t *testing.T) {
	registry := tools.NewRegistry()
	client := llm.NewScriptedClient(
		&llm.Response{Content: "just do the thing"},
		&llm.Response{Content: "<final_answer>ok</final_answer>"},
	)

	store := newFakeStore()
	d, _, _, cp := newTestDriver(client, registry, store, nil)

	// The fallback step is in_progress, so check_completion re-enters the
	// cycle; cancel it to stop the run after the first checkpoint.
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = store.SetStatus(context.Background(), "run-2", models.RunStatusCancelled)
	}()

	_ = d.Run(context.Background(), "run-2", "goal")

	state, _, err := cp.Load(context.Background(), "run-2")
	require.NoError(t, err)
	require.NotNil(t, state)
	require.Len(t, state.PlanSteps, 1)
	assert.Equal(t, StepInProgress, state.PlanSteps[0].Status)
	assert.Equal(t, "just do the thing", state.PlanSteps[0].Description)
}

func TestDriver_InterruptWaitsForInbox(t *testing.T) {
	registry := tools.NewRegistry()
	client := llm.NewScriptedClient(
		plannerResponse(PlanStep{Title: "ask", Description: "ask the user", Status: StepInProgress}),
		&llm.Response{ToolCalls: []models.ToolCall{
			{ID: "q1", Name: tools.ToolAskUser, Arguments: map[string]any{"question": "which color?"}},
		}},
		// summarizer after resume
		&llm.Response{Content: "user said blue"},
		plannerResponse(PlanStep{Title: "ask", Description: "ask the user", Status: StepCompleted}),
		&llm.Response{Content: "<final_answer>blue</final_answer>"},
	)

	store := newFakeStore()
	d, bus, inbox, _ := newTestDriver(client, registry, store, nil)

	go func() {
		// Wait until the run pauses, then answer.
		for {
			status, _ := store.Status(context.Background(), "run-3")
			if status == models.RunStatusPaused {
				inbox.Push("run-3", "blue")
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	require.NoError(t, d.Run(context.Background(), "run-3", "pick a color"))
	assert.Equal(t, models.RunStatusCompleted, store.status)
	assert.Equal(t, "blue", store.finalAnswer)

	evs := drainBacklog(t, bus, "run-3")
	var sawInterrupt bool
	for _, ev := range evs {
		if ev["type"] == events.EventTypeInterrupt {
			sawInterrupt = true
			assert.Equal(t, "ask_user", ev["kind"])
			assert.Equal(t, "which color?", ev["question"])
		}
	}
	assert.True(t, sawInterrupt)
}

func TestDriver_CancelDuringInterrupt(t *testing.T) {
	registry := tools.NewRegistry()
	client := llm.NewScriptedClient(
		plannerResponse(PlanStep{Title: "ask", Description: "ask", Status: StepInProgress}),
		&llm.Response{ToolCalls: []models.ToolCall{
			{ID: "q1", Name: tools.ToolAskUser, Arguments: map[string]any{"question": "?"}},
		}},
	)

	store := newFakeStore()
	d, _, inbox, _ := newTestDriver(client, registry, store, nil)

	go func() {
		for {
			status, _ := store.Status(context.Background(), "run-4")
			if status == models.RunStatusPaused {
				_ = store.SetStatus(context.Background(), "run-4", models.RunStatusCancelled)
				inbox.Push("run-4", SentinelCancel)
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	require.NoError(t, d.Run(context.Background(), "run-4", "goal"))
	assert.Equal(t, models.RunStatusCancelled, store.status)
	assert.Empty(t, store.finalAnswer)
}

func TestDriver_FailureEmitsErrorEvent(t *testing.T) {
	boom := &fakeTool{name: "shell", err: assert.AnError}
	registry := tools.NewRegistry()
	registry.Register(boom)

	client := llm.NewScriptedClient(
		plannerResponse(PlanStep{Title: "run", Description: "x", Status: StepInProgress}),
		&llm.Response{ToolCalls: []models.ToolCall{
			{ID: "c1", Name: "shell", Arguments: map[string]any{"command": "x"}},
		}},
	)

	store := newFakeStore()
	d, bus, _, _ := newTestDriver(client, registry, store, nil)

	err := d.Run(context.Background(), "run-5", "goal")
	require.Error(t, err)
	assert.Equal(t, models.RunStatusFailed, store.status)
	assert.NotEmpty(t, store.failMessage)

	types := eventTypes(drainBacklog(t, bus, "run-5"))
	assert.Equal(t, events.EventTypeError, types[len(types)-1])
}

func TestDriver_UnknownToolFeedsBackAsContractFailure(t *testing.T) {
	registry := tools.NewRegistry()
	client := llm.NewScriptedClient(
		plannerResponse(PlanStep{Title: "x", Description: "x", Status: StepInProgress}),
		&llm.Response{ToolCalls: []models.ToolCall{
			{ID: "c1", Name: "nonexistent", Arguments: map[string]any{}},
		}},
		&llm.Response{Content: "summary"},
		plannerResponse(PlanStep{Title: "x", Description: "x", Status: StepCompleted}),
		&llm.Response{Content: "TASK COMPLETED"},
	)

	store := newFakeStore()
	d, _, _, cp := newTestDriver(client, registry, store, nil)

	require.NoError(t, d.Run(context.Background(), "run-6", "goal"))
	assert.Equal(t, models.RunStatusCompleted, store.status)

	state, _, err := cp.Load(context.Background(), "run-6")
	require.NoError(t, err)
	var toolMsg *models.Message
	for i := range state.Messages {
		if state.Messages[i].Role == models.RoleTool {
			toolMsg = &state.Messages[i]
		}
	}
	require.NotNil(t, toolMsg)
	assert.True(t, toolMsg.IsError)
	assert.Contains(t, toolMsg.Content, "unknown tool")
}

// holdOnceTool refuses its first invocation with the given error, then
// succeeds. Models a browser call that passes policy after acknowledgement.
type holdOnceTool struct {
	name  string
	held  error
	calls int
}

func (t *holdOnceTool) Name() string           { return t.name }
func (t *holdOnceTool) Description() string    { return t.name }
func (t *holdOnceTool) Schema() map[string]any { return map[string]any{"type": "object"} }
func (t *holdOnceTool) Invoke(_ context.Context, _ map[string]any) (*tools.Result, error) {
	t.calls++
	if t.calls == 1 {
		return nil, t.held
	}
	return &tools.Result{Output: "opened"}, nil
}

type fakeApprover struct {
	mu    sync.Mutex
	calls []*computeruse.ComputerCall
}

func (a *fakeApprover) Approve(call *computeruse.ComputerCall) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, call)
}

// failingCheckpointer rejects every save, as a durable store outage would.
type failingCheckpointer struct{}

func (failingCheckpointer) Save(context.Context, string, *State, string) error {
	return assert.AnError
}
func (failingCheckpointer) Load(context.Context, string) (*State, string, error) {
	return nil, "", nil
}
func (failingCheckpointer) Delete(context.Context, string) error { return nil }

func TestDriver_PolicyBlockEndsRun(t *testing.T) {
	blocked := &fakeTool{name: "browser_open", err: &computeruse.PolicyError{
		Call: &computeruse.ComputerCall{
			CallID: "b1",
			Type:   computeruse.ActionVisitURL,
			URL:    "https://evil.com/",
		},
		Decision: computeruse.Decision{
			Action: computeruse.DecisionBlock,
			Code:   computeruse.CodeDomainBlocked,
			Reason: "domain evil.com is not allowed",
		},
	}}
	registry := tools.NewRegistry()
	registry.Register(blocked)

	client := llm.NewScriptedClient(
		plannerResponse(PlanStep{Title: "browse", Description: "open the page", Status: StepInProgress}),
		&llm.Response{ToolCalls: []models.ToolCall{
			{ID: "c1", Name: "browser_open", Arguments: map[string]any{"url": "https://evil.com/"}},
		}},
	)

	store := newFakeStore()
	d, bus, _, cp := newTestDriver(client, registry, store, nil)

	// A policy block ends the run without a failure transition.
	require.NoError(t, d.Run(context.Background(), "run-8", "visit the site"))
	assert.Equal(t, models.RunStatusBlockedPolicy, store.status)
	assert.Empty(t, store.failMessage)

	var decision map[string]any
	for _, ev := range drainBacklog(t, bus, "run-8") {
		if ev["type"] == events.EventTypePolicyDecision {
			decision = ev
		}
	}
	require.NotNil(t, decision)
	assert.Equal(t, "block", decision["decision"])
	assert.Equal(t, "domain_blocked", decision["reason"])
	assert.Equal(t, "https://evil.com/", decision["url"])

	// The refusal lands in the transcript so a redispatched run sees it.
	state, _, err := cp.Load(context.Background(), "run-8")
	require.NoError(t, err)
	require.NotNil(t, state)
	last := state.Messages[len(state.Messages)-1]
	assert.Equal(t, models.RoleTool, last.Role)
	assert.True(t, last.IsError)
}

func TestDriver_PolicyAckSuspendsAndResumes(t *testing.T) {
	heldCall := &computeruse.ComputerCall{
		CallID: "b1",
		Type:   computeruse.ActionVisitURL,
		URL:    "https://internal.example.com/admin",
	}
	browser := &holdOnceTool{name: "browser_open", held: &computeruse.PolicyError{
		Call: heldCall,
		Decision: computeruse.Decision{
			Action: computeruse.DecisionRequireAck,
			Code:   computeruse.CodeApprovalRequired,
			Reason: "sensitive domain requires acknowledgement",
		},
	}}
	registry := tools.NewRegistry()
	registry.Register(browser)

	client := llm.NewScriptedClient(
		plannerResponse(PlanStep{Title: "browse", Description: "open admin", Status: StepInProgress}),
		&llm.Response{ToolCalls: []models.ToolCall{
			{ID: "c1", Name: "browser_open", Arguments: map[string]any{"url": heldCall.URL}},
		}},
		// summarizer after the acknowledged call succeeds
		&llm.Response{Content: "opened the page"},
		plannerResponse(PlanStep{Title: "browse", Description: "open admin", Status: StepCompleted}),
		&llm.Response{Content: "<final_answer>done</final_answer>"},
	)

	store := newFakeStore()
	bus := events.NewMemoryBus(events.NewHub(), 512, time.Hour)
	inbox := NewInbox()
	cp := NewMemoryCheckpointer()
	approver := &fakeApprover{}
	d := NewDriver(client, registry, store, cp, inbox, bus, nil, approver, nil)

	go func() {
		for {
			status, _ := store.Status(context.Background(), "run-9")
			if status == models.RunStatusAwaitingAck {
				inbox.Push("run-9", SentinelUserDone)
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	require.NoError(t, d.Run(context.Background(), "run-9", "open the admin page"))
	assert.Equal(t, models.RunStatusCompleted, store.status)
	assert.Equal(t, "done", store.finalAnswer)
	assert.Equal(t, 2, browser.calls)

	approver.mu.Lock()
	require.Len(t, approver.calls, 1)
	assert.Equal(t, heldCall.URL, approver.calls[0].URL)
	approver.mu.Unlock()

	var decision map[string]any
	for _, ev := range drainBacklog(t, bus, "run-9") {
		if ev["type"] == events.EventTypePolicyDecision {
			decision = ev
		}
	}
	require.NotNil(t, decision)
	assert.Equal(t, "require_ack", decision["decision"])
	assert.Equal(t, "approval_required", decision["reason"])
}

func TestDriver_PolicyAckCancelAborts(t *testing.T) {
	browser := &holdOnceTool{name: "browser_open", held: &computeruse.PolicyError{
		Call: &computeruse.ComputerCall{CallID: "b1", Type: computeruse.ActionVisitURL, URL: "https://internal.example.com/"},
		Decision: computeruse.Decision{
			Action: computeruse.DecisionRequireAck,
			Code:   computeruse.CodeApprovalRequired,
			Reason: "sensitive domain requires acknowledgement",
		},
	}}
	registry := tools.NewRegistry()
	registry.Register(browser)

	client := llm.NewScriptedClient(
		plannerResponse(PlanStep{Title: "browse", Description: "open", Status: StepInProgress}),
		&llm.Response{ToolCalls: []models.ToolCall{
			{ID: "c1", Name: "browser_open", Arguments: map[string]any{}},
		}},
	)

	store := newFakeStore()
	d, _, inbox, _ := newTestDriver(client, registry, store, nil)

	go func() {
		for {
			status, _ := store.Status(context.Background(), "run-10")
			if status == models.RunStatusAwaitingAck {
				_ = store.SetStatus(context.Background(), "run-10", models.RunStatusCancelled)
				inbox.Push("run-10", SentinelCancel)
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	require.NoError(t, d.Run(context.Background(), "run-10", "goal"))
	assert.Equal(t, models.RunStatusCancelled, store.status)
	assert.Equal(t, 1, browser.calls)
}

func TestDriver_CheckpointFallsBackToMemory(t *testing.T) {
	registry := tools.NewRegistry()
	client := llm.NewScriptedClient(
		plannerResponse(PlanStep{Title: "x", Description: "x", Status: StepCompleted}),
		&llm.Response{Content: "<final_answer>ok</final_answer>"},
	)

	store := newFakeStore()
	bus := events.NewMemoryBus(events.NewHub(), 512, time.Hour)
	d := NewDriver(client, registry, store, failingCheckpointer{}, NewInbox(), bus, nil, nil, nil)

	// The run survives the durable checkpoint outage and keeps resumable
	// state in memory.
	require.NoError(t, d.Run(context.Background(), "run-11", "goal"))
	assert.Equal(t, models.RunStatusCompleted, store.status)

	mem, ok := d.checkpointer.(*MemoryCheckpointer)
	require.True(t, ok)
	state, _, err := mem.Load(context.Background(), "run-11")
	require.NoError(t, err)
	require.NotNil(t, state)
}

func TestDriver_ResumesFromCheckpoint(t *testing.T) {
	registry := tools.NewRegistry()
	store := newFakeStore()

	// First process: checkpoint mid-run, then stop.
	cp := NewMemoryCheckpointer()
	state := NewState("goal")
	state.Plan = "## Plan"
	state.PlanSteps = []PlanStep{{Title: "x", Description: "x", Status: StepCompleted}}
	state.Messages = append(state.Messages, models.Message{
		Role: models.RoleAssistant, Content: "<final_answer>resumed</final_answer>",
	})
	require.NoError(t, cp.Save(context.Background(), "run-7", state, NodeCheckCompletion))

	bus := events.NewMemoryBus(events.NewHub(), 512, time.Hour)
	d := NewDriver(llm.NewScriptedClient(), registry, store, cp, NewInbox(), bus, nil, nil, nil)

	// No model calls are needed: the checkpoint resumes directly at the
	// completion check.
	require.NoError(t, d.Run(context.Background(), "run-7", "ignored"))
	assert.Equal(t, models.RunStatusCompleted, store.status)
	assert.Equal(t, "resumed", store.finalAnswer)
}

func TestHasTerminalMarker(t *testing.T) {
	assert.True(t, hasTerminalMarker("<final_answer>x</final_answer>"))
	assert.True(t, hasTerminalMarker("<FINAL_ANSWER>x</FINAL_ANSWER>"))
	assert.True(t, hasTerminalMarker("all done. TASK COMPLETED"))
	assert.False(t, hasTerminalMarker("task completed"))
	assert.False(t, hasTerminalMarker("still working"))
}

func TestExtractFinalAnswer(t *testing.T) {
	assert.Equal(t, "the answer",
		extractFinalAnswer("preamble <final_answer>\nthe answer\n</final_answer> trailer"))
	assert.Equal(t, "TASK COMPLETED", extractFinalAnswer("TASK COMPLETED"))
}

func TestParsePlannerOutput(t *testing.T) {
	out, err := parsePlannerOutput("```json\n{\"plan\": \"p\", \"plan_steps\": [{\"title\": \"t\", \"description\": \"d\", \"status\": \"todo\"}]}\n```")
	require.NoError(t, err)
	assert.Equal(t, "p", out.Plan)
	require.Len(t, out.PlanSteps, 1)

	_, err = parsePlannerOutput("not json at all")
	assert.Error(t, err)

	_, err = parsePlannerOutput(`{"plan": "p", "plan_steps": [{"title": "t", "status": "bogus"}]}`)
	assert.Error(t, err)
}

func TestInbox_PushPop(t *testing.T) {
	inbox := NewInbox()
	assert.True(t, inbox.Push("s1", "hello"))

	msg, err := inbox.Pop(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "hello", msg)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = inbox.Pop(ctx, "s1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStateEncodeDecodeRoundTrip(t *testing.T) {
	state := NewState("goal")
	state.Plan = "## Plan"
	state.PlanSteps = []PlanStep{{Title: "t", Description: "d", Status: StepTodo}}
	state.Summary = "so far"
	state.PendingInterrupt = &models.ToolCall{ID: "q1", Name: "ask_user", Arguments: map[string]any{"question": "?"}}
	state.Steps = 7

	encoded, err := state.Encode()
	require.NoError(t, err)
	decoded, err := DecodeState(encoded)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}
