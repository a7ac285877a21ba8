// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/astraforge/astraforge/ent/apikey"
	"github.com/astraforge/astraforge/ent/artifact"
	"github.com/astraforge/astraforge/ent/checkpoint"
	"github.com/astraforge/astraforge/ent/conversation"
	"github.com/astraforge/astraforge/ent/document"
	"github.com/astraforge/astraforge/ent/event"
	"github.com/astraforge/astraforge/ent/quotaledger"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/ent/schema"
	"github.com/astraforge/astraforge/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[4].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescContentType is the schema descriptor for content_type field.
	artifactDescContentType := artifactFields[3].Descriptor()
	// artifact.DefaultContentType holds the default value on creation for the content_type field.
	artifact.DefaultContentType = artifactDescContentType.Default.(string)
	// artifactDescSizeBytes is the schema descriptor for size_bytes field.
	artifactDescSizeBytes := artifactFields[4].Descriptor()
	// artifact.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	artifact.DefaultSizeBytes = artifactDescSizeBytes.Default.(int64)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[7].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointDescUpdatedAt := checkpointFields[4].Descriptor()
	// checkpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpoint.DefaultUpdatedAt = checkpointDescUpdatedAt.Default.(func() time.Time)
	// checkpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkpoint.UpdateDefaultUpdatedAt = checkpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescIsResume is the schema descriptor for is_resume field.
	conversationDescIsResume := conversationFields[10].Descriptor()
	// conversation.DefaultIsResume holds the default value on creation for the is_resume field.
	conversation.DefaultIsResume = conversationDescIsResume.Default.(bool)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[11].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescContentType is the schema descriptor for content_type field.
	documentDescContentType := documentFields[3].Descriptor()
	// document.DefaultContentType holds the default value on creation for the content_type field.
	document.DefaultContentType = documentDescContentType.Default.(string)
	// documentDescSizeBytes is the schema descriptor for size_bytes field.
	documentDescSizeBytes := documentFields[4].Descriptor()
	// document.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	document.DefaultSizeBytes = documentDescSizeBytes.Default.(int64)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[6].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	quotaledgerFields := schema.QuotaLedger{}.Fields()
	_ = quotaledgerFields
	// quotaledgerDescRequestsUsed is the schema descriptor for requests_used field.
	quotaledgerDescRequestsUsed := quotaledgerFields[2].Descriptor()
	// quotaledger.DefaultRequestsUsed holds the default value on creation for the requests_used field.
	quotaledger.DefaultRequestsUsed = quotaledgerDescRequestsUsed.Default.(int)
	// quotaledgerDescSandboxesCreated is the schema descriptor for sandboxes_created field.
	quotaledgerDescSandboxesCreated := quotaledgerFields[3].Descriptor()
	// quotaledger.DefaultSandboxesCreated holds the default value on creation for the sandboxes_created field.
	quotaledger.DefaultSandboxesCreated = quotaledgerDescSandboxesCreated.Default.(int)
	// quotaledgerDescUpdatedAt is the schema descriptor for updated_at field.
	quotaledgerDescUpdatedAt := quotaledgerFields[4].Descriptor()
	// quotaledger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quotaledger.DefaultUpdatedAt = quotaledgerDescUpdatedAt.Default.(func() time.Time)
	// quotaledger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quotaledger.UpdateDefaultUpdatedAt = quotaledgerDescUpdatedAt.UpdateDefault.(func() time.Time)
	sandboxsessionFields := schema.SandboxSession{}.Fields()
	_ = sandboxsessionFields
	// sandboxsessionDescWorkspacePath is the schema descriptor for workspace_path field.
	sandboxsessionDescWorkspacePath := sandboxsessionFields[12].Descriptor()
	// sandboxsession.DefaultWorkspacePath holds the default value on creation for the workspace_path field.
	sandboxsession.DefaultWorkspacePath = sandboxsessionDescWorkspacePath.Default.(string)
	// sandboxsessionDescCreatedAt is the schema descriptor for created_at field.
	sandboxsessionDescCreatedAt := sandboxsessionFields[14].Descriptor()
	// sandboxsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	sandboxsession.DefaultCreatedAt = sandboxsessionDescCreatedAt.Default.(func() time.Time)
	// sandboxsessionDescLastActivityAt is the schema descriptor for last_activity_at field.
	sandboxsessionDescLastActivityAt := sandboxsessionFields[15].Descriptor()
	// sandboxsession.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	sandboxsession.DefaultLastActivityAt = sandboxsessionDescLastActivityAt.Default.(func() time.Time)
	// sandboxsessionDescLastHeartbeatAt is the schema descriptor for last_heartbeat_at field.
	sandboxsessionDescLastHeartbeatAt := sandboxsessionFields[16].Descriptor()
	// sandboxsession.DefaultLastHeartbeatAt holds the default value on creation for the last_heartbeat_at field.
	sandboxsession.DefaultLastHeartbeatAt = sandboxsessionDescLastHeartbeatAt.Default.(func() time.Time)
	// sandboxsessionDescCPUSeconds is the schema descriptor for cpu_seconds field.
	sandboxsessionDescCPUSeconds := sandboxsessionFields[21].Descriptor()
	// sandboxsession.DefaultCPUSeconds holds the default value on creation for the cpu_seconds field.
	sandboxsession.DefaultCPUSeconds = sandboxsessionDescCPUSeconds.Default.(float64)
	// sandboxsessionDescStorageBytes is the schema descriptor for storage_bytes field.
	sandboxsessionDescStorageBytes := sandboxsessionFields[22].Descriptor()
	// sandboxsession.DefaultStorageBytes holds the default value on creation for the storage_bytes field.
	sandboxsession.DefaultStorageBytes = sandboxsessionDescStorageBytes.Default.(int64)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescSizeBytes is the schema descriptor for size_bytes field.
	snapshotDescSizeBytes := snapshotFields[5].Descriptor()
	// snapshot.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	snapshot.DefaultSizeBytes = snapshotDescSizeBytes.Default.(int64)
	// snapshotDescCreatedAt is the schema descriptor for created_at field.
	snapshotDescCreatedAt := snapshotFields[8].Descriptor()
	// snapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	snapshot.DefaultCreatedAt = snapshotDescCreatedAt.Default.(func() time.Time)
}
