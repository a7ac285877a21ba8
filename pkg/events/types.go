// Package events provides ordered per-session event streams. Events are
// persisted to the events table and broadcast via PostgreSQL NOTIFY/LISTEN
// for cross-pod delivery; an in-memory backend serves single-process and
// test deployments. SSE handlers subscribe through the Hub and replay the
// persisted backlog before switching to live delivery.
package events

import "time"

// Persistent event types (stored + broadcast).
const (
	// Session lifecycle transitions (starting/ready/failed/terminated) and
	// run status transitions.
	EventTypeStatus = "status"

	// Sandbox command lifecycle.
	EventTypeCommand = "command"
	EventTypeLog     = "log"

	// Agent tool lifecycle.
	EventTypeToolStart    = "tool_start"
	EventTypeToolResult   = "tool_result"
	EventTypeToolArtifact = "tool_artifact"

	// Transcript events.
	EventTypeAssistantMessage = "assistant_message"
	EventTypeUserMessage      = "user_message"
	EventTypeDocumentUploaded = "document_uploaded"

	// Run interrupts: ask_user questions and takeover acknowledgements.
	EventTypeInterrupt = "interrupt"

	// Policy verdicts on browser actions. A block ends the run; a
	// require_ack suspends it until an operator decides.
	EventTypePolicyDecision = "policy_decision"

	// Terminal run events. The SSE handler closes the stream after either.
	EventTypeCompleted = "completed"
	EventTypeError     = "error"
)

// Transient event types (broadcast only, never persisted).
const (
	EventTypeHeartbeat = "heartbeat"
)

// StreamChannel returns the channel name for a session's event stream.
// Format: "stream:{session_id}"
func StreamChannel(sessionID string) string {
	return "stream:" + sessionID
}

// IsTerminalEventType reports whether an event type ends the stream.
func IsTerminalEventType(eventType string) bool {
	return eventType == EventTypeCompleted || eventType == EventTypeError
}

// Base carries the fields common to every event payload.
type Base struct {
	Type      string    `json:"type"`
	EventID   string    `json:"event_id"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}
