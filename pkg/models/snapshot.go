package models

import (
	"github.com/astraforge/astraforge/ent"
)

// CreateSnapshotRequest captures the workspace of a running session.
type CreateSnapshotRequest struct {
	Label        string   `json:"label,omitempty"`
	IncludePaths []string `json:"include_paths,omitempty"`
	ExcludePaths []string `json:"exclude_paths,omitempty"`
}

// SnapshotResponse wraps a Snapshot row.
type SnapshotResponse struct {
	*ent.Snapshot
}

// SnapshotListResponse contains all snapshots for a session, newest first.
type SnapshotListResponse struct {
	Snapshots []*ent.Snapshot `json:"snapshots"`
}

// ArtifactListResponse contains exported artifacts for a session.
type ArtifactListResponse struct {
	Artifacts []*ent.Artifact `json:"artifacts"`
}

// ExportFileRequest copies a sandbox file out as a downloadable artifact.
type ExportFileRequest struct {
	Path string `json:"path"`
}
