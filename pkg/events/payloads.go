package events

import (
	"time"

	"github.com/google/uuid"
)

// NewBase fills the common fields for an event payload.
func NewBase(eventType, sessionID string) Base {
	return Base{
		Type:      eventType,
		EventID:   uuid.New().String(),
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
	}
}

// StatusPayload announces a session or run status transition.
type StatusPayload struct {
	Base
	Entity  string `json:"entity"` // "session" or "run"
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// CommandPayload announces a sandbox command execution.
type CommandPayload struct {
	Base
	Command    string `json:"command"`
	ExitCode   int    `json:"exit_code"`
	DurationMs int64  `json:"duration_ms"`
	Truncated  bool   `json:"truncated,omitempty"`
}

// LogPayload carries one line of sandbox command output.
type LogPayload struct {
	Base
	Line string `json:"line"`
}

// ToolStartPayload announces the start of a tool call.
type ToolStartPayload struct {
	Base
	ToolCallID string         `json:"tool_call_id"`
	ToolName   string         `json:"tool_name"`
	Arguments  map[string]any `json:"arguments,omitempty"`
}

// ToolResultPayload carries the outcome of a tool call. Content is truncated
// at publish time; the full result lives in the transcript.
type ToolResultPayload struct {
	Base
	ToolCallID string `json:"tool_call_id"`
	ToolName   string `json:"tool_name"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error,omitempty"`
}

// ToolArtifactPayload announces a file exported from the sandbox.
type ToolArtifactPayload struct {
	Base
	ArtifactID  string `json:"artifact_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	DownloadURL string `json:"download_url,omitempty"`
}

// MessagePayload carries an assistant or user transcript message.
type MessagePayload struct {
	Base
	Content string `json:"content"`
}

// DocumentPayload announces a document uploaded into a run.
type DocumentPayload struct {
	Base
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	SizeBytes  int64  `json:"size_bytes"`
}

// InterruptPayload pauses a run pending user input. Kind is "ask_user" or
// "takeover"; for policy acknowledgements it is "approval" with the blocked
// action attached.
type InterruptPayload struct {
	Base
	Kind     string         `json:"kind"`
	Question string         `json:"question,omitempty"`
	Action   map[string]any `json:"action,omitempty"`
}

// PolicyDecisionPayload records a non-allow policy verdict on a browser
// action. Decision is "block" or "require_ack"; Reason is the stable code
// (e.g. "domain_blocked") and Message the human-readable detail.
type PolicyDecisionPayload struct {
	Base
	CallID   string `json:"call_id"`
	Action   string `json:"action"`
	URL      string `json:"url,omitempty"`
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
	Message  string `json:"message,omitempty"`
	Checks   any    `json:"checks,omitempty"`
}

// CompletedPayload is the terminal success event for a run.
type CompletedPayload struct {
	Base
	FinalAnswer string `json:"final_answer,omitempty"`
	Summary     string `json:"summary,omitempty"`
	SnapshotID  string `json:"snapshot_id,omitempty"`
}

// ErrorPayload is the terminal failure event for a run or session.
type ErrorPayload struct {
	Base
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// HeartbeatPayload is the transient keepalive event.
type HeartbeatPayload struct {
	Base
}
