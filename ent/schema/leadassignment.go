package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadAssignment holds the schema definition for the LeadAssignment entity.
// Assignments are append-only: assigning a lead to another salesperson never
// removes or deactivates earlier rows, so a lead can be worked by several
// salespeople at once, each tracking their own status.
type LeadAssignment struct {
	ent.Schema
}

// Fields of the LeadAssignment.
func (LeadAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("Assigned lead"),
		field.Int("sales_person_id").
			Positive().
			Comment("Salesperson who owns this assignment"),
		field.Int("assigned_by").
			Positive().
			Comment("User who made the assignment"),
		field.Enum("status").
			Values("new", "contacted", "interested", "pitched", "follow_up", "converted", "not_interested", "lost").
			Default("new").
			Comment("Per-assignment status, independent of the lead's top-level status"),
		field.String("notes").
			Optional().
			MaxLen(2000).
			Comment("Assignment notes"),
		field.Time("assigned_at").
			Default(time.Now).
			Immutable().
			Comment("When the assignment was made"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the LeadAssignment.
func (LeadAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("assignments").
			Field("lead_id").
			Unique().
			Required(),
		edge.From("sales_person", User.Type).
			Ref("lead_assignments").
			Field("sales_person_id").
			Unique().
			Required(),
	}
}

// Indexes of the LeadAssignment.
func (LeadAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "sales_person_id"),
		index.Fields("sales_person_id", "status"),
		index.Fields("assigned_at"),
	}
}
