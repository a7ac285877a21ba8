package models

import (
	"time"

	"github.com/astraforge/astraforge/ent"
)

// Session status values. Transitions are one-way once terminal:
// starting -> ready -> terminated, with failed reachable from starting/ready.
const (
	SessionStatusStarting   = "starting"
	SessionStatusReady      = "ready"
	SessionStatusFailed     = "failed"
	SessionStatusTerminated = "terminated"
)

// Sandbox backend identifiers.
const (
	BackendLocal   = "local"
	BackendCluster = "cluster"
)

// IsTerminalSessionStatus reports whether a session can no longer change state.
func IsTerminalSessionStatus(status string) bool {
	return status == SessionStatusFailed || status == SessionStatusTerminated
}

// CreateSandboxRequest contains fields for provisioning a new sandbox session.
type CreateSandboxRequest struct {
	SessionID         string         `json:"session_id,omitempty"`
	UserID            string         `json:"user_id"`
	WorkspaceID       string         `json:"workspace_id"`
	Backend           string         `json:"backend,omitempty"`
	Image             string         `json:"image,omitempty"`
	CPULimit          string         `json:"cpu_limit,omitempty"`
	MemoryLimit       string         `json:"memory_limit,omitempty"`
	IdleTimeoutSec    *int           `json:"idle_timeout_sec,omitempty"`
	MaxLifetimeSec    *int           `json:"max_lifetime_sec,omitempty"`
	RestoreSnapshotID string         `json:"restore_snapshot_id,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// SandboxFilters contains filtering options for listing sessions.
type SandboxFilters struct {
	Status        string     `json:"status,omitempty"`
	UserID        string     `json:"user_id,omitempty"`
	WorkspaceID   string     `json:"workspace_id,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// SandboxResponse wraps a SandboxSession with optional loaded edges.
type SandboxResponse struct {
	*ent.SandboxSession
}

// SandboxListResponse contains a paginated session list.
type SandboxListResponse struct {
	Sessions   []*ent.SandboxSession `json:"sessions"`
	TotalCount int                   `json:"total_count"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}

// ExecRequest asks a sandbox to run a shell command in its workspace.
type ExecRequest struct {
	Command    string `json:"command"`
	Cwd        string `json:"cwd,omitempty"`
	TimeoutSec int    `json:"timeout_sec,omitempty"`
}

// ExecResponse carries the outcome of a sandbox command. The runner merges
// stderr into stdout, so stderr is always empty.
type ExecResponse struct {
	ExitCode    int     `json:"exit_code"`
	Stdout      string  `json:"stdout"`
	Stderr      string  `json:"stderr"`
	Truncated   bool    `json:"truncated,omitempty"`
	DurationSec float64 `json:"duration_sec"`
}

// UploadRequest writes base64-encoded content to a path inside the sandbox.
type UploadRequest struct {
	Path          string `json:"path"`
	ContentBase64 string `json:"content_base64"`
}

// FileContentResponse returns file bytes read out of the sandbox.
type FileContentResponse struct {
	Path          string `json:"path"`
	ContentBase64 string `json:"content_base64"`
	SizeBytes     int64  `json:"size_bytes"`
	Truncated     bool   `json:"truncated"`
}
