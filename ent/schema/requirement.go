package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Requirement holds the schema definition for the Requirement entity.
// A requirement is a project scope owned by one client; it owns tasks.
type Requirement struct {
	ent.Schema
}

// Fields of the Requirement.
func (Requirement) Fields() []ent.Field {
	return []ent.Field{
		field.String("requirement_number").
			NotEmpty().
			Unique().
			Comment("Human-readable sequential number (REQ-0001)"),
		field.String("requirement_name").
			NotEmpty().
			Comment("Project scope name"),
		field.Int("client_id").
			Positive().
			Comment("Owning client"),
		field.Enum("status").
			Values("active", "on_hold", "completed", "cancelled").
			Default("active").
			Comment("Requirement status"),
		field.JSON("assigned_employees", []int{}).
			Optional().
			Comment("Employee ids working on this requirement; set semantics, grows via task assignment"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Requirement.
func (Requirement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", Company.Type).
			Ref("requirements").
			Field("client_id").
			Unique().
			Required(),
		edge.To("tasks", Task.Type),
		edge.To("submissions", Submission.Type),
	}
}

// Indexes of the Requirement.
func (Requirement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "status"),
		index.Fields("created_at"),
	}
}
