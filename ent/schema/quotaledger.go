package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuotaLedger holds the schema definition for the QuotaLedger entity: a
// per-workspace-per-period usage counter row, updated under row locks.
type QuotaLedger struct {
	ent.Schema
}

// Fields of the QuotaLedger.
func (QuotaLedger) Fields() []ent.Field {
	return []ent.Field{
		field.String("workspace_id").
			Immutable(),
		field.String("period").
			Immutable().
			Comment("Calendar month, YYYY-MM"),
		field.Int("requests_used").
			Default(0),
		field.Int("sandboxes_created").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the QuotaLedger.
func (QuotaLedger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "period").
			Unique(),
	}
}
