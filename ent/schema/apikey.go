package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIKey holds the schema definition for the APIKey entity. Key material is
// a 32-byte URL-safe random token; only its SHA-256 hex digest is stored.
type APIKey struct {
	ent.Schema
}

// Fields of the APIKey.
func (APIKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("name").
			Optional(),
		field.String("key_hash").
			Unique().
			Immutable().
			Comment("SHA-256 hex of the raw token"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the APIKey.
func (APIKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
