package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity: a file
// promoted out of a sandbox and given a stable download URL.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("filename").
			Immutable(),
		field.String("content_type").
			Default("application/octet-stream").
			Immutable(),
		field.Int64("size_bytes").
			Default(0).
			Immutable(),
		field.String("storage_path").
			Immutable().
			Comment("In-sandbox source path (or remote key)"),
		field.String("download_url").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", SandboxSession.Type).
			Ref("artifacts").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
