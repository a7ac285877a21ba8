// Package graph runs the agent execution graph for one conversation: a
// cooperatively-scheduled node cycle (planner, agent, tools, interrupt,
// observer, summarizer) with a durable checkpoint after every transition and
// a blocking inbox for human interrupts.
package graph

import (
	"encoding/json"
	"fmt"

	"github.com/astraforge/astraforge/pkg/computeruse"
	"github.com/astraforge/astraforge/pkg/models"
)

// Node names. Next on the state selects which node runs.
const (
	NodePlanner         = "planner"
	NodeAgent           = "agent"
	NodeTools           = "tools"
	NodeInterrupt       = "interrupt"
	NodeObserver        = "observer"
	NodeSummarizer      = "summarizer"
	NodeCheckCompletion = "check_completion"
	NodeTerminal        = "terminal"
)

// Plan step statuses.
const (
	StepTodo       = "todo"
	StepInProgress = "in_progress"
	StepCompleted  = "completed"
)

// PlanStep is one item of the planner's structured plan.
type PlanStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// PolicyHold is a browser action suspended on a require_ack verdict. It
// persists the held call and its safety checks so an operator can inspect
// and resume the run, including across a process restart.
type PolicyHold struct {
	ToolCallID string                    `json:"tool_call_id"`
	ToolName   string                    `json:"tool_name"`
	Call       *computeruse.ComputerCall `json:"call"`
	Decision   computeruse.Decision      `json:"decision"`
}

// State is the serializable graph state. It round-trips through the
// checkpoint row as JSON, so every field must survive encoding.
type State struct {
	Goal           string           `json:"goal"`
	Messages       []models.Message `json:"messages"`
	Plan           string           `json:"plan,omitempty"`
	PlanSteps      []PlanStep       `json:"plan_steps,omitempty"`
	Summary        string           `json:"summary,omitempty"`
	TerminalOutput string           `json:"terminal_output,omitempty"`
	FileTree       string           `json:"file_tree,omitempty"`
	Next           string           `json:"next"`

	// PendingInterrupt holds the question/reason of an in-flight interrupt
	// tool call so a resumed process can pair the eventual reply.
	PendingInterrupt *models.ToolCall `json:"pending_interrupt,omitempty"`

	// PendingPolicy holds a browser action awaiting operator
	// acknowledgement while the run sits in awaiting_ack.
	PendingPolicy *PolicyHold `json:"pending_policy,omitempty"`

	// Steps counts executed node transitions, bounding runaway cycles.
	Steps int `json:"steps"`
}

// NewState builds the entry state for a fresh run.
func NewState(goal string) *State {
	return &State{
		Goal: goal,
		Messages: []models.Message{
			{Role: models.RoleUser, Content: goal},
		},
		Next: NodePlanner,
	}
}

// Encode serializes the state for the checkpoint row.
func (s *State) Encode() (map[string]interface{}, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode graph state: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to encode graph state: %w", err)
	}
	return m, nil
}

// DecodeState rebuilds a State from a checkpoint row.
func DecodeState(m map[string]interface{}) (*State, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to decode graph state: %w", err)
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode graph state: %w", err)
	}
	return &s, nil
}

// lastAssistant returns the most recent assistant message, or nil.
func (s *State) lastAssistant() *models.Message {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == models.RoleAssistant {
			return &s.Messages[i]
		}
	}
	return nil
}

// allStepsCompleted reports whether the plan is finished. An empty plan
// counts as finished.
func (s *State) allStepsCompleted() bool {
	for _, step := range s.PlanSteps {
		if step.Status != StepCompleted {
			return false
		}
	}
	return true
}

// outstandingSteps lists the plan steps not yet completed.
func (s *State) outstandingSteps() []PlanStep {
	var out []PlanStep
	for _, step := range s.PlanSteps {
		if step.Status != StepCompleted {
			out = append(out, step)
		}
	}
	return out
}
