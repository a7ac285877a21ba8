package computeruse

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/astraforge/astraforge/pkg/config"
)

// PolicyError reports a call the policy refused to execute. The run
// controller maps a block to blocked_policy and a require_ack to
// awaiting_ack.
type PolicyError struct {
	Call     *ComputerCall
	Decision Decision
}

func (e *PolicyError) Error() string {
	verb := "blocked"
	if e.Decision.Action == DecisionRequireAck {
		verb = "held for acknowledgement"
	}
	return fmt.Sprintf("%s %s by policy: %s", e.Call.Type, verb, e.Decision.Reason)
}

// Session is the policy-gated entry point for one run's browser actions.
// Every call is validated, evaluated against policy, executed, and traced in
// that order. Trace failures never fail the action.
type Session struct {
	policy  *Policy
	browser *Browser
	trace   *TraceRecorder // nil when tracing is disabled
	logger  *slog.Logger

	mu        sync.Mutex
	approvals map[string]bool
}

// NewSession launches a browser session for a run. When cfg.TraceDir is set, a
// trace is recorded under <TraceDir>/<runID>.
func NewSession(ctx context.Context, cfg *config.ComputerUseConfig, runID string, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	browser, err := NewBrowser(ctx)
	if err != nil {
		return nil, err
	}

	var trace *TraceRecorder
	if cfg.TraceDir != "" {
		trace, err = NewTraceRecorder(cfg.TraceDir, runID, map[string]any{
			"approval_mode":   cfg.ApprovalMode,
			"allowed_domains": cfg.AllowedDomains,
			"blocked_domains": cfg.BlockedDomains,
			"viewport":        browser.Viewport(),
		})
		if err != nil {
			browser.Close()
			return nil, err
		}
	}

	return &Session{
		policy:    NewPolicy(cfg),
		browser:   browser,
		trace:     trace,
		logger:    logger,
		approvals: make(map[string]bool),
	}, nil
}

// approvalKey fingerprints a call by its action content. Approvals key on
// content rather than call_id because a retried action gets a fresh id.
func approvalKey(c *ComputerCall) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d,%d", c.Type, c.URL, c.Text, c.Query, c.X, c.Y)
}

// Approve records an operator acknowledgement for a held call. The approval
// admits exactly one matching require_ack execution; blocks are never
// approvable.
func (s *Session) Approve(call *ComputerCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approvals[approvalKey(call)] = true
}

// consumeApproval returns whether an approval exists for the call, removing
// it so acknowledgements are single-use.
func (s *Session) consumeApproval(call *ComputerCall) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := approvalKey(call)
	if !s.approvals[key] {
		return false
	}
	delete(s.approvals, key)
	return true
}

// Do evaluates and executes one call. A non-allow decision returns without an
// observation; the caller suspends or terminates the run accordingly.
func (s *Session) Do(ctx context.Context, call *ComputerCall) (Decision, *Observation, error) {
	call.EnsureCallID()
	if err := call.Validate(); err != nil {
		return Decision{}, nil, err
	}

	decision := s.policy.Evaluate(call)
	if decision.Action == DecisionRequireAck && s.consumeApproval(call) {
		decision = Decision{Action: DecisionAllow, Code: CodeOperatorAck, Reason: "acknowledged by operator"}
	}
	if decision.Action != DecisionAllow {
		s.logger.Info("browser action held by policy",
			"call_id", call.CallID, "type", call.Type,
			"decision", decision.Action, "reason", decision.Reason)
		if s.trace != nil {
			if err := s.trace.RecordDecision(call, decision); err != nil {
				s.logger.Warn("failed to record trace decision", "error", err)
			}
		}
		return decision, nil, nil
	}

	obs, err := s.browser.Execute(ctx, call)
	if err != nil {
		return decision, nil, err
	}

	if s.trace != nil {
		if err := s.trace.RecordStep(call, decision, obs); err != nil {
			s.logger.Warn("failed to record trace step", "error", err)
		}
	}
	return decision, obs, nil
}

// Open implements the browser_open tool: navigate to a URL and return a page
// summary with a screenshot.
func (s *Session) Open(ctx context.Context, url string) (string, string, error) {
	call := &ComputerCall{Type: ActionVisitURL, URL: url}
	decision, obs, err := s.Do(ctx, call)
	if err != nil {
		return "", "", err
	}
	if decision.Action != DecisionAllow {
		return "", "", &PolicyError{Call: call, Decision: decision}
	}
	if obs.Execution.Status != ExecutionSuccess {
		return "", "", fmt.Errorf("navigation to %s failed: %s", url, obs.Execution.ErrorMessage)
	}
	summary := fmt.Sprintf("opened %s", obs.URL)
	if obs.Title != "" {
		summary = fmt.Sprintf("opened %q (%s)", obs.Title, obs.URL)
	}
	return summary, obs.ScreenshotB64, nil
}

// Close ends the run: the browser shuts down and the trace is finalized.
func (s *Session) Close() {
	s.browser.Close()
	if s.trace != nil {
		if err := s.trace.Close(); err != nil {
			s.logger.Warn("failed to finalize trace", "error", err)
		}
	}
}
