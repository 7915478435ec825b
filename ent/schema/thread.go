package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Thread holds the schema definition for the Thread entity,
// a per-task discussion thread.
type Thread struct {
	ent.Schema
}

// Fields of the Thread.
func (Thread) Fields() []ent.Field {
	return []ent.Field{
		field.String("query_number").
			NotEmpty().
			Unique().
			Comment("Sequential number (QRY-0001)"),
		field.Int("task_id").
			Positive().
			Comment("Task this thread is scoped to"),
		field.String("title").
			NotEmpty().
			Comment("Thread title"),
		field.Text("description").
			Optional().
			Comment("Opening description"),
		field.Enum("status").
			Values("active", "resolved").
			Default("active").
			Comment("Resolved threads can be reopened; there is no terminal state"),
		field.JSON("participants", []int{}).
			Optional().
			Comment("Participant user ids; the creator is always first"),
		field.Time("last_message_at").
			Optional().
			Nillable().
			Comment("Denormalized from messages for list views"),
		field.String("last_message_preview").
			Optional().
			MaxLen(160).
			Comment("Denormalized truncated preview of the latest message"),
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

// Edges of the Thread.
func (Thread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("queries").
			Field("task_id").
			Unique().
			Required(),
		edge.To("messages", Message.Type),
	}
}

// Indexes of the Thread.
func (Thread) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "status"),
		index.Fields("last_message_at"),
	}
}
