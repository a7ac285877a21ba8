package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for the Document entity: a file
// uploaded into a conversation and staged under /workspace/uploads/.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
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
			Comment("In-sandbox path under <workspace>/uploads/"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("documents").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
	}
}
