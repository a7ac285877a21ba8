package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SandboxSession holds the schema definition for the SandboxSession entity:
// an isolated container-backed execution environment owned by one user.
type SandboxSession struct {
	ent.Schema
}

// Fields of the SandboxSession.
func (SandboxSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Owning user (external reference)"),
		field.String("workspace_id").
			Immutable().
			Comment("Owning workspace (external reference)"),

		// Runtime descriptor
		field.Enum("backend").
			Values("local", "cluster").
			Immutable(),
		field.String("image").
			Immutable(),
		field.String("cpu_limit").
			Optional(),
		field.String("memory_limit").
			Optional(),
		field.String("ephemeral_storage").
			Optional(),
		field.String("network_policy").
			Optional(),
		field.String("security_profile").
			Optional(),

		// Runtime handle
		field.String("backend_ref").
			Optional().
			Nillable().
			Comment("local://<name> or cluster://<namespace>/<pod>"),
		field.String("control_endpoint").
			Optional().
			Nillable(),
		field.String("workspace_path").
			Default("/workspace"),

		// Lifecycle
		field.Enum("status").
			Values("starting", "ready", "failed", "terminated").
			Default("starting"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity_at").
			Default(time.Now),
		field.Time("last_heartbeat_at").
			Default(time.Now),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("created_at + max_lifetime_sec when set"),
		field.Int("idle_timeout_sec").
			Optional().
			Nillable(),
		field.Int("max_lifetime_sec").
			Optional().
			Nillable(),

		// Restore intent
		field.String("restore_snapshot_id").
			Optional().
			Nillable(),

		// Accounting
		field.Float("cpu_seconds").
			Default(0),
		field.Int64("storage_bytes").
			Default(0),

		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Free-form: latest_snapshot_id, terminated_reason, ..."),
	}
}

// Edges of the SandboxSession.
func (SandboxSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("snapshots", Snapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SandboxSession.
func (SandboxSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("workspace_id"),
		index.Fields("status", "last_activity_at"),
		index.Fields("status", "expires_at"),
	}
}
