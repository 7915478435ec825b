package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RequestedChange is one reviewer-requested change on a submission.
// Each item tracks its own completion independent of the submission status.
type RequestedChange struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Submission holds the schema definition for the Submission entity,
// a deliverable package tied to a task and reviewed by the client.
type Submission struct {
	ent.Schema
}

// Fields of the Submission.
func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("submission_number").
			NotEmpty().
			Unique().
			Comment("Sequential number (SUB-0001)"),
		field.String("title").
			NotEmpty().
			Comment("Submission title"),
		field.Text("description").
			Optional().
			Comment("Submission description"),
		field.Int("task_id").
			Positive().
			Comment("Task the deliverables belong to"),
		field.Int("requirement_id").
			Positive().
			Comment("Parent requirement"),
		field.Int("client_id").
			Positive().
			Comment("Reviewing client"),
		field.Int("submitted_by").
			Positive().
			Comment("Employee who submitted"),
		field.JSON("deliverables", []string{}).
			Optional().
			Comment("Storage keys of the delivered files"),
		field.Enum("status").
			Values("pending", "under_review", "approved", "rejected", "changes_requested").
			Default("pending").
			Comment("Review state"),
		field.JSON("requested_changes", []RequestedChange{}).
			Optional().
			Comment("Reviewer-requested changes"),
		field.Text("review_notes").
			Optional().
			Comment("Reviewer notes; required for every verdict except approval"),
		field.Int("reviewed_by").
			Optional().
			Nillable().
			Comment("Reviewing user"),
		field.Time("reviewed_at").
			Optional().
			Nillable().
			Comment("When the verdict was recorded"),
		field.Int("resubmission_of").
			Optional().
			Nillable().
			Comment("Submission this one replaces after a changes-requested verdict"),
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

// Edges of the Submission.
func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("submissions").
			Field("task_id").
			Unique().
			Required(),
		edge.From("requirement", Requirement.Type).
			Ref("submissions").
			Field("requirement_id").
			Unique().
			Required(),
		edge.From("client", Company.Type).
			Ref("submissions").
			Field("client_id").
			Unique().
			Required(),
		edge.From("submitter", User.Type).
			Ref("submissions").
			Field("submitted_by").
			Unique().
			Required(),
		edge.To("feedback", Feedback.Type),
	}
}

// Indexes of the Submission.
func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "status"),
		index.Fields("client_id", "status"),
		index.Fields("created_at"),
	}
}
