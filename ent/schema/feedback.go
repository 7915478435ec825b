package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Feedback holds the schema definition for the Feedback entity.
type Feedback struct {
	ent.Schema
}

// Fields of the Feedback.
func (Feedback) Fields() []ent.Field {
	return []ent.Field{
		field.Int("client_id").
			Positive().
			Comment("Client the feedback is about"),
		field.Int("author_id").
			Positive().
			Comment("User who wrote the feedback"),
		field.Int("submission_id").
			Optional().
			Nillable().
			Comment("Submission that prompted the feedback, if any"),
		field.Int("rating").
			Min(1).
			Max(5).
			Comment("Star rating 1-5"),
		field.Text("comment").
			Optional().
			MaxLen(5000).
			Comment("Free-form comment"),
		field.Enum("sentiment").
			Values("positive", "neutral", "negative").
			Comment("Derived from rating: >=4 positive, >=2 neutral, else negative"),
		field.Bool("is_public").
			Default(false).
			Comment("Whether the feedback may be shown publicly"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Feedback.
func (Feedback) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", Company.Type).
			Ref("feedback").
			Field("client_id").
			Unique().
			Required(),
		edge.From("author", User.Type).
			Ref("feedback_given").
			Field("author_id").
			Unique().
			Required(),
		edge.From("submission", Submission.Type).
			Ref("feedback").
			Field("submission_id").
			Unique(),
	}
}

// Indexes of the Feedback.
func (Feedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "created_at"),
		index.Fields("is_public", "sentiment"),
	}
}
