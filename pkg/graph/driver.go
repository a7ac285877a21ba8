package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/astraforge/astraforge/pkg/computeruse"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/llm"
	"github.com/astraforge/astraforge/pkg/models"
	"github.com/astraforge/astraforge/pkg/tools"
)

// DefaultMaxSteps bounds node transitions per run.
const DefaultMaxSteps = 100

// eventContentCap truncates tool output inside events; the full output stays
// in the transcript.
const eventContentCap = 4096

// errAborted signals a cooperative cancellation observed mid-node. The run
// exits without a terminal write; the controller already set the status.
var errAborted = errors.New("run aborted")

// Store is the conversation persistence surface the driver needs.
type Store interface {
	Status(ctx context.Context, runID string) (string, error)
	SetStatus(ctx context.Context, runID, status string) error
	SetSummary(ctx context.Context, runID, summary string) error
	Complete(ctx context.Context, runID, finalAnswer, summary, snapshotID string) error
	Fail(ctx context.Context, runID, message string) error
	// Documents lists uploaded document filenames for the system prompt.
	Documents(ctx context.Context, runID string) ([]string, error)
}

// Snapshotter takes the terminal auto-snapshot. Implementations are
// best-effort; the driver tolerates failure.
type Snapshotter interface {
	AutoSnapshot(ctx context.Context, sessionID, label string) (snapshotID string, err error)
}

// Approver records operator acknowledgement of a held browser action so a
// retried call passes policy. Implemented by the computer-use session; nil
// when the run has no browser.
type Approver interface {
	Approve(call *computeruse.ComputerCall)
}

// Driver executes the agent graph for one conversation. Single-threaded
// cooperative: one node at a time, a checkpoint after every transition, and a
// status read before each node for cancellation.
type Driver struct {
	llm          llm.Client
	registry     *tools.Registry
	store        Store
	checkpointer Checkpointer
	inbox        *Inbox
	publisher    events.Publisher
	snapshotter  Snapshotter // nil disables auto-snapshots
	approver     Approver    // nil when no browser session exists
	logger       *slog.Logger

	maxSteps  int
	maxTokens int
}

// NewDriver wires a driver. snapshotter and approver may be nil.
func NewDriver(
	llmClient llm.Client,
	registry *tools.Registry,
	store Store,
	checkpointer Checkpointer,
	inbox *Inbox,
	publisher events.Publisher,
	snapshotter Snapshotter,
	approver Approver,
	logger *slog.Logger,
) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		llm:          llmClient,
		registry:     registry,
		store:        store,
		checkpointer: checkpointer,
		inbox:        inbox,
		publisher:    publisher,
		snapshotter:  snapshotter,
		approver:     approver,
		logger:       logger,
		maxSteps:     DefaultMaxSteps,
		maxTokens:    8192,
	}
}

// Run executes the graph until a terminal transition. The conversation id
// doubles as the session id. Re-entry resumes from the last checkpoint.
func (d *Driver) Run(ctx context.Context, runID, goal string) error {
	state, next, err := d.checkpointer.Load(ctx, runID)
	if err != nil {
		d.logger.Warn("failed to load checkpoint, starting fresh", "run_id", runID, "error", err)
		state = nil
	}
	if state == nil {
		state = NewState(goal)
	} else if next != "" {
		state.Next = next
	}

	if err := d.loop(ctx, runID, state); err != nil {
		if errors.Is(err, errAborted) {
			return nil
		}
		d.fail(ctx, runID, err)
		return err
	}
	return nil
}

func (d *Driver) loop(ctx context.Context, runID string, state *State) error {
	for {
		status, err := d.store.Status(ctx, runID)
		if err != nil {
			return fmt.Errorf("failed to read run status: %w", err)
		}
		if status == models.RunStatusCancelled || status == models.RunStatusFailed ||
			status == models.RunStatusBlockedPolicy {
			d.logger.Info("run aborted by status", "run_id", runID, "status", status)
			return errAborted
		}

		if state.Next == NodeTerminal {
			return d.finish(ctx, runID, state)
		}
		if state.Steps >= d.maxSteps {
			return fmt.Errorf("run exceeded %d node transitions", d.maxSteps)
		}
		state.Steps++

		switch state.Next {
		case NodePlanner:
			err = d.planner(ctx, state)
		case NodeAgent:
			err = d.agent(ctx, runID, state)
		case NodeTools:
			err = d.toolsNode(ctx, runID, state)
		case NodeInterrupt:
			err = d.interrupt(ctx, runID, state)
		case NodeObserver:
			err = d.observer(ctx, runID, state)
		case NodeSummarizer:
			err = d.summarizer(ctx, runID, state)
		case NodeCheckCompletion:
			d.checkCompletion(state)
		default:
			return fmt.Errorf("unknown graph node %q", state.Next)
		}
		if err != nil {
			return err
		}

		d.checkpoint(ctx, runID, state)
	}
}

// checkpoint persists the state after a node transition. A durable-store
// failure degrades to an in-memory checkpointer for the rest of the run
// rather than killing it.
func (d *Driver) checkpoint(ctx context.Context, runID string, state *State) {
	cpErr := d.checkpointer.Save(ctx, runID, state, state.Next)
	if cpErr == nil {
		return
	}
	if _, inMemory := d.checkpointer.(*MemoryCheckpointer); inMemory {
		d.logger.Warn("checkpoint write failed", "run_id", runID, "error", cpErr)
		return
	}
	d.logger.Warn("durable checkpoint write failed, continuing with in-memory checkpoints",
		"run_id", runID, "error", cpErr)
	mem := NewMemoryCheckpointer()
	if memErr := mem.Save(ctx, runID, state, state.Next); memErr != nil {
		d.logger.Error("in-memory checkpoint write failed", "run_id", runID, "error", memErr)
		return
	}
	d.checkpointer = mem
}

// planner updates the plan. Structured output first; free-form markdown falls
// back to a single in-progress step.
func (d *Driver) planner(ctx context.Context, state *State) error {
	resp, err := d.llm.Complete(ctx, &llm.Request{
		System: plannerSystemPrompt,
		Messages: []models.Message{
			{Role: models.RoleUser, Content: plannerUserPrompt(state)},
		},
		MaxTokens: d.maxTokens,
	})
	if err != nil {
		return fmt.Errorf("planner model call failed: %w", err)
	}

	if out, parseErr := parsePlannerOutput(resp.Content); parseErr == nil {
		state.Plan = out.Plan
		state.PlanSteps = out.PlanSteps
	} else {
		d.logger.Debug("planner structured output invalid, using free-form plan", "error", parseErr)
		state.Plan = resp.Content
		state.PlanSteps = []PlanStep{{
			Title:       "Plan",
			Description: resp.Content,
			Status:      StepInProgress,
		}}
	}
	state.Next = NodeAgent
	return nil
}

// agent runs the tool-augmented model turn and routes on its output.
func (d *Driver) agent(ctx context.Context, runID string, state *State) error {
	documents, err := d.store.Documents(ctx, runID)
	if err != nil {
		d.logger.Warn("failed to list documents", "run_id", runID, "error", err)
	}

	resp, err := d.llm.Complete(ctx, &llm.Request{
		System:    agentSystemPrompt(state, documents),
		Messages:  state.Messages,
		Tools:     d.registry.Definitions(),
		MaxTokens: d.maxTokens,
	})
	if err != nil {
		return fmt.Errorf("agent model call failed: %w", err)
	}

	msg := models.Message{Role: models.RoleAssistant, Content: resp.Content}
	if len(resp.ToolCalls) > 0 {
		// One tool call per step; extras are dropped.
		if len(resp.ToolCalls) > 1 {
			d.logger.Warn("model emitted multiple tool calls, keeping the first",
				"run_id", runID, "count", len(resp.ToolCalls))
		}
		msg.ToolCalls = resp.ToolCalls[:1]
	}
	state.Messages = append(state.Messages, msg)

	if msg.Content != "" {
		d.publish(ctx, runID, events.MessagePayload{
			Base:    events.NewBase(events.EventTypeAssistantMessage, runID),
			Content: msg.Content,
		})
	}

	switch {
	case len(msg.ToolCalls) > 0 && tools.IsInterruptTool(msg.ToolCalls[0].Name):
		call := msg.ToolCalls[0]
		state.PendingInterrupt = &call
		state.Next = NodeInterrupt
	case len(msg.ToolCalls) > 0:
		state.Next = NodeTools
	case hasTerminalMarker(msg.Content):
		state.Next = NodeCheckCompletion
	default:
		state.Next = NodeObserver
	}
	return nil
}

// toolsNode executes the pending tool call and appends its result to the
// transcript. Contract failures feed back to the model; infrastructure
// failures fail the run.
func (d *Driver) toolsNode(ctx context.Context, runID string, state *State) error {
	last := state.lastAssistant()
	if last == nil || len(last.ToolCalls) == 0 {
		state.Next = NodeObserver
		return nil
	}
	call := last.ToolCalls[0]

	d.publish(ctx, runID, events.ToolStartPayload{
		Base:       events.NewBase(events.EventTypeToolStart, runID),
		ToolCallID: call.ID,
		ToolName:   call.Name,
		Arguments:  call.Arguments,
	})

	var result *tools.Result
	tool, ok := d.registry.Get(call.Name)
	if !ok {
		result = tools.Errorf("unknown tool %q", call.Name)
	} else {
		var invokeErr error
		result, invokeErr = tool.Invoke(ctx, call.Arguments)
		var policyErr *computeruse.PolicyError
		if errors.As(invokeErr, &policyErr) {
			return d.policyHold(ctx, runID, state, call, policyErr)
		}
		if invokeErr != nil {
			return fmt.Errorf("tool %s failed: %w", call.Name, invokeErr)
		}
	}

	content := result.Output
	if len(content) > eventContentCap {
		content = content[:eventContentCap] + "\n... [truncated]"
	}
	d.publish(ctx, runID, events.ToolResultPayload{
		Base:       events.NewBase(events.EventTypeToolResult, runID),
		ToolCallID: call.ID,
		ToolName:   call.Name,
		Content:    content,
		IsError:    result.IsError,
	})

	state.Messages = append(state.Messages, models.Message{
		Role:       models.RoleTool,
		Content:    result.Output,
		ToolCallID: call.ID,
		ToolName:   call.Name,
		IsError:    result.IsError,
	})
	state.TerminalOutput = result.Output
	state.Next = NodeObserver
	return nil
}

// policyHold commits a non-allow policy verdict to the run lifecycle. A
// block ends the run as blocked_policy; a require_ack persists the held call
// and suspends the run as awaiting_ack until an operator resumes or cancels
// it through the inbox.
func (d *Driver) policyHold(ctx context.Context, runID string, state *State, call models.ToolCall, policyErr *computeruse.PolicyError) error {
	d.publish(ctx, runID, events.PolicyDecisionPayload{
		Base:     events.NewBase(events.EventTypePolicyDecision, runID),
		CallID:   policyErr.Call.CallID,
		Action:   policyErr.Call.Type,
		URL:      policyErr.Call.URL,
		Decision: policyErr.Decision.Action,
		Reason:   policyErr.Decision.Code,
		Message:  policyErr.Decision.Reason,
		Checks:   policyErr.Decision.Checks,
	})

	if policyErr.Decision.Action == computeruse.DecisionBlock {
		state.Messages = append(state.Messages, models.Message{
			Role:       models.RoleTool,
			Content:    policyErr.Error(),
			ToolCallID: call.ID,
			ToolName:   call.Name,
			IsError:    true,
		})
		if err := d.store.SetStatus(ctx, runID, models.RunStatusBlockedPolicy); err != nil {
			return fmt.Errorf("failed to block run: %w", err)
		}
		d.checkpoint(ctx, runID, state)
		d.logger.Info("run blocked by policy",
			"run_id", runID, "call_id", policyErr.Call.CallID, "reason", policyErr.Decision.Code)
		return errAborted
	}

	state.PendingPolicy = &PolicyHold{
		ToolCallID: call.ID,
		ToolName:   call.Name,
		Call:       policyErr.Call,
		Decision:   policyErr.Decision,
	}
	state.Next = NodeTools
	d.checkpoint(ctx, runID, state)

	if err := d.store.SetStatus(ctx, runID, models.RunStatusAwaitingAck); err != nil {
		return fmt.Errorf("failed to suspend run: %w", err)
	}

	reply, err := d.inbox.Pop(ctx, runID)
	if err != nil {
		return fmt.Errorf("acknowledgement wait ended: %w", err)
	}
	if reply == SentinelCancel {
		return errAborted
	}

	if err := d.store.SetStatus(ctx, runID, models.RunStatusRunning); err != nil {
		return fmt.Errorf("failed to resume run: %w", err)
	}

	state.PendingPolicy = nil
	if d.approver == nil {
		state.Messages = append(state.Messages, models.Message{
			Role:       models.RoleTool,
			Content:    policyErr.Error(),
			ToolCallID: call.ID,
			ToolName:   call.Name,
			IsError:    true,
		})
		state.Next = NodeObserver
		return nil
	}

	// The operator acknowledged the hold: record the approval and re-run the
	// held tool call, which now passes policy.
	d.approver.Approve(policyErr.Call)
	state.Next = NodeTools
	return nil
}

// interrupt suspends the run on the inbox until the user replies, resumes,
// or cancels.
func (d *Driver) interrupt(ctx context.Context, runID string, state *State) error {
	pending := state.PendingInterrupt
	if pending == nil {
		state.Next = NodeObserver
		return nil
	}

	question := ""
	if q, ok := pending.Arguments["question"].(string); ok {
		question = q
	} else if r, ok := pending.Arguments["reason"].(string); ok {
		question = r
	}

	kind := "ask_user"
	if pending.Name == tools.ToolRequestTakeover {
		kind = "takeover"
	}
	d.publish(ctx, runID, events.InterruptPayload{
		Base:     events.NewBase(events.EventTypeInterrupt, runID),
		Kind:     kind,
		Question: question,
		Action: map[string]any{
			"action":      "wait_for_user",
			"description": question,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		},
	})

	if err := d.store.SetStatus(ctx, runID, models.RunStatusPaused); err != nil {
		return fmt.Errorf("failed to pause run: %w", err)
	}

	reply, err := d.inbox.Pop(ctx, runID)
	if err != nil {
		return fmt.Errorf("interrupt wait ended: %w", err)
	}
	if reply == SentinelCancel {
		return errAborted
	}

	if err := d.store.SetStatus(ctx, runID, models.RunStatusRunning); err != nil {
		return fmt.Errorf("failed to resume run: %w", err)
	}

	resultContent := "The user resumed the run."
	if reply != SentinelUserDone && reply != "" {
		resultContent = reply
	}
	state.Messages = append(state.Messages, models.Message{
		Role:       models.RoleTool,
		Content:    resultContent,
		ToolCallID: pending.ID,
		ToolName:   pending.Name,
	})
	if reply != SentinelUserDone && reply != "" {
		state.Messages = append(state.Messages, models.Message{
			Role:    models.RoleUser,
			Content: reply,
		})
	}

	state.PendingInterrupt = nil
	state.Next = NodeObserver
	return nil
}

// observer refreshes the file tree and surfaces progress as a status event.
func (d *Driver) observer(ctx context.Context, runID string, state *State) error {
	if tool, ok := d.registry.Get("list_files"); ok {
		if result, err := tool.Invoke(ctx, map[string]any{}); err == nil && !result.IsError {
			state.FileTree = result.Output
		} else if err != nil {
			d.logger.Warn("file tree refresh failed", "run_id", runID, "error", err)
		}
	}

	message := "working"
	if state.TerminalOutput != "" {
		message = "captured tool output"
	}
	d.publish(ctx, runID, events.StatusPayload{
		Base:    events.NewBase(events.EventTypeStatus, runID),
		Entity:  "run",
		Status:  models.RunStatusRunning,
		Message: message,
	})

	state.Next = NodeSummarizer
	return nil
}

// summarizer maintains the running progress summary.
func (d *Driver) summarizer(ctx context.Context, runID string, state *State) error {
	resp, err := d.llm.Complete(ctx, &llm.Request{
		System: summarizerSystemPrompt,
		Messages: []models.Message{
			{Role: models.RoleUser, Content: summarizerUserPrompt(state)},
		},
		MaxTokens: d.maxTokens,
	})
	if err != nil {
		return fmt.Errorf("summarizer model call failed: %w", err)
	}

	state.Summary = resp.Content
	if err := d.store.SetSummary(ctx, runID, state.Summary); err != nil {
		d.logger.Warn("failed to persist summary", "run_id", runID, "error", err)
	}
	state.Next = NodePlanner
	return nil
}

// checkCompletion arbitrates the terminal transition from plan_steps alone.
func (d *Driver) checkCompletion(state *State) {
	if state.allStepsCompleted() {
		state.Next = NodeTerminal
		return
	}
	state.Messages = append(state.Messages, models.Message{
		Role:    models.RoleUser,
		Content: outstandingStepsPrompt(state.outstandingSteps()),
	})
	state.Next = NodeObserver
}

// finish commits the terminal transition: final answer extraction, the
// best-effort auto-snapshot, and the completed event.
func (d *Driver) finish(ctx context.Context, runID string, state *State) error {
	finalAnswer := ""
	if last := state.lastAssistant(); last != nil {
		finalAnswer = extractFinalAnswer(last.Content)
	}

	snapshotID := ""
	if d.snapshotter != nil {
		id, err := d.snapshotter.AutoSnapshot(ctx, runID, "auto-final")
		if err != nil {
			// Snapshot failure is not terminal for the run.
			d.logger.Warn("terminal auto-snapshot failed", "run_id", runID, "error", err)
			d.publish(ctx, runID, events.StatusPayload{
				Base:    events.NewBase(events.EventTypeStatus, runID),
				Entity:  "run",
				Status:  models.RunStatusRunning,
				Message: "auto-snapshot failed: " + err.Error(),
			})
		} else {
			snapshotID = id
		}
	}

	if err := d.store.Complete(ctx, runID, finalAnswer, state.Summary, snapshotID); err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}

	d.publish(ctx, runID, events.CompletedPayload{
		Base:        events.NewBase(events.EventTypeCompleted, runID),
		FinalAnswer: finalAnswer,
		Summary:     state.Summary,
		SnapshotID:  snapshotID,
	})
	d.logger.Info("run completed", "run_id", runID, "steps", state.Steps)
	return nil
}

// fail commits the failure transition with a best-effort failure snapshot.
func (d *Driver) fail(ctx context.Context, runID string, cause error) {
	if d.snapshotter != nil {
		if _, err := d.snapshotter.AutoSnapshot(ctx, runID, "auto-failure"); err != nil {
			d.logger.Warn("failure snapshot failed", "run_id", runID, "error", err)
		}
	}
	if err := d.store.Fail(ctx, runID, cause.Error()); err != nil {
		d.logger.Error("failed to mark run failed", "run_id", runID, "error", err)
	}
	d.publish(ctx, runID, events.ErrorPayload{
		Base:    events.NewBase(events.EventTypeError, runID),
		Message: cause.Error(),
	})
}

func (d *Driver) publish(ctx context.Context, runID string, payload any) {
	if err := d.publisher.Publish(ctx, runID, payload); err != nil {
		d.logger.Warn("failed to publish event", "run_id", runID, "error", err)
	}
}
