package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.Int("query_id").
			Positive().
			Comment("Thread this message belongs to"),
		field.Int("sender_id").
			Positive().
			Comment("Sending user"),
		field.Text("content").
			NotEmpty().
			MaxLen(10000).
			Comment("Message body"),
		field.Bool("is_edited").
			Default(false).
			Comment("True once the sender edits the message"),
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

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("query", Thread.Type).
			Ref("messages").
			Field("query_id").
			Unique().
			Required(),
		edge.From("sender", User.Type).
			Ref("messages").
			Field("sender_id").
			Unique().
			Required(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("query_id", "created_at"),
		index.Fields("sender_id", "created_at"),
	}
}
