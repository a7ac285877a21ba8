// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "key_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_user_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[1]},
			},
		},
	}
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "application/octet-stream"},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "download_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_sandbox_sessions_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[7]},
				RefColumns: []*schema.Column{SandboxSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[7], ArtifactsColumns[6]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeJSON},
		{Name: "next_node", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_conversations_checkpoint",
				Columns:    []*schema.Column{CheckpointsColumns[4]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "running", "paused", "awaiting_ack", "blocked_policy", "completed", "failed", "cancelled"}, Default: "created"},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "final_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "last_snapshot_id", Type: field.TypeString, Nullable: true},
		{Name: "is_resume", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_status",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[5]},
			},
			{
				Name:    "conversation_session_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
			{
				Name:    "conversation_user_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[2]},
			},
			{
				Name:    "conversation_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3], ConversationsColumns[11]},
			},
			{
				Name:    "conversation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[5], ConversationsColumns[11]},
			},
			{
				Name:    "conversation_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[5], ConversationsColumns[15]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "application/octet-stream"},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_conversations_documents",
				Columns:    []*schema.Column{DocumentsColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_sandbox_sessions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{SandboxSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// QuotaLedgersColumns holds the columns for the "quota_ledgers" table.
	QuotaLedgersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "period", Type: field.TypeString},
		{Name: "requests_used", Type: field.TypeInt, Default: 0},
		{Name: "sandboxes_created", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuotaLedgersTable holds the schema information for the "quota_ledgers" table.
	QuotaLedgersTable = &schema.Table{
		Name:       "quota_ledgers",
		Columns:    QuotaLedgersColumns,
		PrimaryKey: []*schema.Column{QuotaLedgersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quotaledger_workspace_id_period",
				Unique:  true,
				Columns: []*schema.Column{QuotaLedgersColumns[1], QuotaLedgersColumns[2]},
			},
		},
	}
	// SandboxSessionsColumns holds the columns for the "sandbox_sessions" table.
	SandboxSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "backend", Type: field.TypeEnum, Enums: []string{"local", "cluster"}},
		{Name: "image", Type: field.TypeString},
		{Name: "cpu_limit", Type: field.TypeString, Nullable: true},
		{Name: "memory_limit", Type: field.TypeString, Nullable: true},
		{Name: "ephemeral_storage", Type: field.TypeString, Nullable: true},
		{Name: "network_policy", Type: field.TypeString, Nullable: true},
		{Name: "security_profile", Type: field.TypeString, Nullable: true},
		{Name: "backend_ref", Type: field.TypeString, Nullable: true},
		{Name: "control_endpoint", Type: field.TypeString, Nullable: true},
		{Name: "workspace_path", Type: field.TypeString, Default: "/workspace"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"starting", "ready", "failed", "terminated"}, Default: "starting"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "last_heartbeat_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "idle_timeout_sec", Type: field.TypeInt, Nullable: true},
		{Name: "max_lifetime_sec", Type: field.TypeInt, Nullable: true},
		{Name: "restore_snapshot_id", Type: field.TypeString, Nullable: true},
		{Name: "cpu_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "storage_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// SandboxSessionsTable holds the schema information for the "sandbox_sessions" table.
	SandboxSessionsTable = &schema.Table{
		Name:       "sandbox_sessions",
		Columns:    SandboxSessionsColumns,
		PrimaryKey: []*schema.Column{SandboxSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sandboxsession_status",
				Unique:  false,
				Columns: []*schema.Column{SandboxSessionsColumns[13]},
			},
			{
				Name:    "sandboxsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{SandboxSessionsColumns[1]},
			},
			{
				Name:    "sandboxsession_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{SandboxSessionsColumns[2]},
			},
			{
				Name:    "sandboxsession_status_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{SandboxSessionsColumns[13], SandboxSessionsColumns[15]},
			},
			{
				Name:    "sandboxsession_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{SandboxSessionsColumns[13], SandboxSessionsColumns[17]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "archive_path", Type: field.TypeString},
		{Name: "object_store_key", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "include_paths", Type: field.TypeJSON, Nullable: true},
		{Name: "exclude_paths", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "snapshots_sandbox_sessions_snapshots",
				Columns:    []*schema.Column{SnapshotsColumns[8]},
				RefColumns: []*schema.Column{SandboxSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[8], SnapshotsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		ArtifactsTable,
		CheckpointsTable,
		ConversationsTable,
		DocumentsTable,
		EventsTable,
		QuotaLedgersTable,
		SandboxSessionsTable,
		SnapshotsTable,
	}
)

func init() {
	ArtifactsTable.ForeignKeys[0].RefTable = SandboxSessionsTable
	CheckpointsTable.ForeignKeys[0].RefTable = ConversationsTable
	DocumentsTable.ForeignKeys[0].RefTable = ConversationsTable
	EventsTable.ForeignKeys[0].RefTable = SandboxSessionsTable
	SnapshotsTable.ForeignKeys[0].RefTable = SandboxSessionsTable
}
