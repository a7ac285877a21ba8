package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot holds the schema definition for the Snapshot entity: an immutable
// compressed archive of selected workspace paths at one instant.
type Snapshot struct {
	ent.Schema
}

// Fields of the Snapshot.
func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("label").
			Optional().
			Immutable(),
		field.String("archive_path").
			Immutable().
			Comment("In-sandbox tar.gz path under <workspace>/.sandbox-snapshots/"),
		field.String("object_store_key").
			Optional().
			Nillable().
			Immutable().
			Comment("snapshots/<session_id>/<snapshot_id>.tar.gz when offloaded"),
		field.Int64("size_bytes").
			Default(0).
			Immutable(),
		field.Strings("include_paths").
			Optional().
			Immutable(),
		field.Strings("exclude_paths").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Snapshot.
func (Snapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", SandboxSession.Type).
			Ref("snapshots").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Snapshot.
func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
