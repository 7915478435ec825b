package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Company holds the client company record.
type Company struct {
	ent.Schema
}

// Fields of the Company.
func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Unique().
			Comment("Account backing this client (role=client), 1:1"),
		field.String("company_name").
			NotEmpty().
			Comment("Company name"),
		field.String("industry").
			Optional().
			Comment("Industry"),
		field.Enum("status").
			Values("lead", "prospect", "active").
			Default("prospect").
			Comment("Relationship stage"),
		field.Int("sales_person_id").
			Positive().
			Comment("Owning salesperson"),
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

// Edges of the Company.
func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("client_profile").
			Field("user_id").
			Unique().
			Required(),
		edge.From("sales_person", User.Type).
			Ref("owned_clients").
			Field("sales_person_id").
			Unique().
			Required(),
		edge.To("requirements", Requirement.Type),
		edge.To("submissions", Submission.Type),
		edge.To("feedback", Feedback.Type),
	}
}

// Indexes of the Company.
func (Company) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sales_person_id", "status"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
