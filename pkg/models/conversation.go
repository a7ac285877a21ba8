package models

import (
	"time"

	"github.com/astraforge/astraforge/ent"
)

// Conversation status values.
const (
	RunStatusCreated       = "created"
	RunStatusRunning       = "running"
	RunStatusPaused        = "paused"
	RunStatusAwaitingAck   = "awaiting_ack"
	RunStatusBlockedPolicy = "blocked_policy"
	RunStatusCompleted     = "completed"
	RunStatusFailed        = "failed"
	RunStatusCancelled     = "cancelled"
)

// IsTerminalRunStatus reports whether a conversation has finished.
func IsTerminalRunStatus(status string) bool {
	switch status {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled:
		return true
	}
	return false
}

// IsActiveRunStatus reports whether a conversation holds a concurrency slot.
func IsActiveRunStatus(status string) bool {
	switch status {
	case RunStatusRunning, RunStatusPaused, RunStatusAwaitingAck, RunStatusBlockedPolicy:
		return true
	}
	return false
}

// CreateRunRequest starts a new agent run.
type CreateRunRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	UserID         string `json:"user_id"`
	WorkspaceID    string `json:"workspace_id"`
	Goal           string `json:"goal"`
	SnapshotID     string `json:"snapshot_id,omitempty"`
	Backend        string `json:"backend,omitempty"`
}

// ResumeRunRequest resumes a completed or failed run, optionally from a
// specific snapshot.
type ResumeRunRequest struct {
	Goal       string `json:"goal,omitempty"`
	SnapshotID string `json:"snapshot_id,omitempty"`
}

// UserMessageRequest delivers a user reply into a paused run's inbox.
type UserMessageRequest struct {
	Content string `json:"content"`
}

// RunFilters contains filtering options for listing conversations.
type RunFilters struct {
	Status        string     `json:"status,omitempty"`
	UserID        string     `json:"user_id,omitempty"`
	WorkspaceID   string     `json:"workspace_id,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// RunResponse wraps a Conversation with optional loaded edges.
type RunResponse struct {
	*ent.Conversation
}

// RunListResponse contains a paginated conversation list.
type RunListResponse struct {
	Conversations []*ent.Conversation `json:"conversations"`
	TotalCount    int                 `json:"total_count"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
}

// DocumentResponse wraps an uploaded Document row.
type DocumentResponse struct {
	*ent.Document
}
