package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadActivity holds the schema definition for the LeadActivity entity.
// Activities are the lead's immutable timeline; every mutating lead action
// writes one in the same transaction as the mutation it records.
type LeadActivity struct {
	ent.Schema
}

// Fields of the LeadActivity.
func (LeadActivity) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("Lead this entry belongs to"),
		field.Int("user_id").
			Positive().
			Comment("User who performed the action"),
		field.Enum("type").
			Values("called", "whatsapp", "emailed", "status_change", "note_added", "assigned", "converted").
			Comment("Activity type"),
		field.String("detail").
			Optional().
			MaxLen(2000).
			Comment("Human-readable description"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Structured payload (old/new status, assignee id, ...)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the LeadActivity.
func (LeadActivity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("activities").
			Field("lead_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("lead_activities").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the LeadActivity.
func (LeadActivity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at"),
		index.Fields("user_id", "created_at"),
		index.Fields("type"),
	}
}
