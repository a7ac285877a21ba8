package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity: the
// agent execution bound to a sandbox session. A conversation may outlive its
// sandbox; terminal state persists.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable().
			Comment("Equal to the sandbox session id for the 1:1 binding"),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.Text("goal"),
		field.Enum("status").
			Values(
				"created",
				"running",
				"paused",
				"awaiting_ack",
				"blocked_policy",
				"completed",
				"failed",
				"cancelled",
			).
			Default("created"),
		field.Text("summary").
			Optional().
			Comment("Running progress summary maintained by the summarizer node"),
		field.Text("final_answer").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("last_snapshot_id").
			Optional().
			Nillable().
			Comment("Terminal auto-snapshot, consulted by the next create"),
		field.Bool("is_resume").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the run"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Worker heartbeat; orphan detection input"),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoint", Checkpoint.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("workspace_id", "created_at"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
