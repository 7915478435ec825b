package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Contact or business name"),
		field.String("company").
			Optional().
			Comment("Company name"),
		field.String("email").
			Optional().
			Comment("Email address"),
		field.String("phone").
			Optional().
			Comment("Phone number, E.164 when normalizable"),
		field.String("city").
			Optional().
			Comment("City"),
		field.String("country").
			Optional().
			MaxLen(2).
			Comment("ISO 3166-1 alpha-2 country code"),
		field.String("website").
			Optional().
			Comment("Website URL"),
		field.String("source").
			Optional().
			Comment("Where the lead came from (referral, website, csv-import, ...)"),
		field.Enum("status").
			Values("new", "contacted", "interested", "pitched", "follow_up", "converted", "not_interested", "lost").
			Default("new").
			Comment("Top-level pipeline status, owned by admins"),
		field.JSON("pitched_services", []string{}).
			Optional().
			Comment("Services pitched to this lead"),
		field.String("import_batch_id").
			Optional().
			Comment("Shared id tagging all rows of one CSV import"),
		field.Int("created_by").
			Optional().
			Comment("User who created or imported the lead"),
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

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("assignments", LeadAssignment.Type).
			Comment("Assignment history; append-only"),
		edge.To("activities", LeadActivity.Type).
			Comment("Typed activity timeline; append-only"),
		edge.To("notes", LeadNote.Type).
			Comment("Free-form notes on this lead"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("email"),
		index.Fields("phone"),
		index.Fields("import_batch_id"),
		index.Fields("created_at"),
	}
}
