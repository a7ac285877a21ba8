package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Checkpoint holds the schema definition for the Checkpoint entity: the
// durable record of conversation graph state and next node, written after
// every node transition so a run can resume after restart.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Unique().
			Immutable(),
		field.JSON("state", map[string]interface{}{}).
			Comment("Serialized graph.State"),
		field.String("next_node"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("checkpoint").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}
