package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/pkg/computeruse"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/graph"
	"github.com/astraforge/astraforge/pkg/llm"
	"github.com/astraforge/astraforge/pkg/models"
	"github.com/astraforge/astraforge/pkg/sandbox"
	"github.com/astraforge/astraforge/pkg/tools"
)

// GraphExecutor processes one claimed conversation: provisions its sandbox,
// builds the tool registry, and drives the agent graph to a terminal state.
// All intermediate state (transcript, checkpoints, events) is written by the
// driver during processing; the executor only reports the outcome.
type GraphExecutor struct {
	manager      *sandbox.Manager
	store        graph.Store
	checkpointer graph.Checkpointer
	inbox        *graph.Inbox
	publisher    events.Publisher
	llm          llm.Client
	computerUse  *config.ComputerUseConfig
	logger       *slog.Logger
}

// NewGraphExecutor creates an executor. computerUse may be nil to disable the
// browser tool family.
func NewGraphExecutor(
	manager *sandbox.Manager,
	store graph.Store,
	checkpointer graph.Checkpointer,
	inbox *graph.Inbox,
	publisher events.Publisher,
	llmClient llm.Client,
	computerUse *config.ComputerUseConfig,
	logger *slog.Logger,
) *GraphExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &GraphExecutor{
		manager:      manager,
		store:        store,
		checkpointer: checkpointer,
		inbox:        inbox,
		publisher:    publisher,
		llm:          llmClient,
		computerUse:  computerUse,
		logger:       logger.With("component", "executor"),
	}
}

// Execute runs a conversation to completion.
func (e *GraphExecutor) Execute(ctx context.Context, conv *ent.Conversation) *ExecutionResult {
	log := e.logger.With("run_id", conv.ID)

	if _, err := e.manager.Provision(ctx, conv.SessionID); err != nil {
		log.Error("sandbox provisioning failed", "error", err)
		failErr := fmt.Errorf("sandbox provisioning failed: %w", err)
		if storeErr := e.store.Fail(ctx, conv.ID, failErr.Error()); storeErr != nil {
			log.Error("failed to record provisioning failure", "error", storeErr)
		}
		return &ExecutionResult{Status: models.RunStatusFailed, Error: failErr}
	}

	var browser tools.Browser
	var approver graph.Approver
	if e.computerUse != nil {
		session, err := computeruse.NewSession(ctx, e.computerUse, conv.ID, e.logger)
		if err != nil {
			// The run proceeds without browser_open rather than failing outright
			log.Warn("browser session unavailable", "error", err)
		} else {
			defer session.Close()
			browser = session
			approver = session
		}
	}

	registry := tools.NewSandboxRegistry(e.manager, conv.SessionID, browser)
	driver := graph.NewDriver(
		e.llm,
		registry,
		e.store,
		e.checkpointer,
		e.inbox,
		e.publisher,
		e.manager,
		approver,
		e.logger,
	)

	runErr := driver.Run(ctx, conv.ID, conv.Goal)
	e.inbox.Drop(conv.ID)

	status, statusErr := e.store.Status(context.Background(), conv.ID)
	if statusErr != nil {
		log.Error("failed to read terminal run status", "error", statusErr)
		status = models.RunStatusFailed
	}

	result := &ExecutionResult{Status: status, Error: runErr}
	if runErr != nil && !models.IsTerminalRunStatus(status) {
		result.Status = models.RunStatusFailed
	}
	return result
}
