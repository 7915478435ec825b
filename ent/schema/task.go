package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subtask is one checklist entry embedded in a task.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_number").
			NotEmpty().
			Unique().
			Comment("Sequential number (TSK-0001), allocated from the counter inside the insert transaction"),
		field.String("title").
			NotEmpty().
			Comment("Task title"),
		field.Text("description").
			Optional().
			Comment("Task description"),
		field.Int("requirement_id").
			Positive().
			Comment("Parent requirement"),
		field.Int("assigned_to").
			Optional().
			Nillable().
			Comment("Single assignee, optional"),
		field.JSON("requested_by", []int{}).
			Optional().
			Comment("Users who asked to be assigned; set semantics, cleared on assignment"),
		field.Enum("status").
			Values("todo", "in_progress", "review", "blocked", "done", "cancelled").
			Default("todo").
			Comment("Task status"),
		field.Bool("status_manual").
			Default(false).
			Comment("True when status was set explicitly; subtask-driven derivation then leaves it alone until progress reaches 100"),
		field.Int("progress").
			Default(0).
			Min(0).
			Max(100).
			Comment("Derived from subtask completion: round(100*completed/total)"),
		field.JSON("subtasks", []Subtask{}).
			Optional().
			Comment("Ordered checklist"),
		field.Time("due_date").
			Optional().
			Nillable().
			Comment("Due date"),
		field.Time("completed_date").
			Optional().
			Nillable().
			Comment("Stamped when the task reaches done"),
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

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("requirement", Requirement.Type).
			Ref("tasks").
			Field("requirement_id").
			Unique().
			Required(),
		edge.From("assignee", User.Type).
			Ref("assigned_tasks").
			Field("assigned_to").
			Unique(),
		edge.To("queries", Thread.Type),
		edge.To("submissions", Submission.Type),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("requirement_id", "status"),
		index.Fields("assigned_to", "status"),
		index.Fields("created_at"),
	}
}
