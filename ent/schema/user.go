package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			NotEmpty().
			Comment("User full name"),
		field.String("username").
			NotEmpty().
			Comment("Display/login handle"),
		field.String("email").
			NotEmpty().
			Comment("Email address; unique among non-deleted users (enforced in the service layer so a soft-deleted account does not block re-registration)"),
		field.String("phone").
			Optional().
			Comment("Phone number"),
		field.Enum("role").
			Values("admin", "sales", "employee", "client", "superadmin").
			Default("employee").
			Comment("Role for access control"),
		field.String("password_hash").
			Optional().
			Sensitive().
			Comment("Bcrypt hashed password; empty until the user sets one"),
		field.String("magic_link_token").
			Optional().
			Nillable().
			Sensitive().
			Comment("SHA256 hex of the active magic-link token; at most one active token"),
		field.Time("magic_link_expires_at").
			Optional().
			Nillable().
			Comment("Expiry of the active magic-link token"),
		field.Bool("is_active").
			Default(true).
			Comment("Inactive users cannot log in"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete timestamp"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("client_profile", Company.Type).
			Unique().
			Comment("Client record for role=client accounts"),
		edge.To("owned_clients", Company.Type).
			Comment("Clients owned as salesperson"),
		edge.To("lead_assignments", LeadAssignment.Type).
			Comment("Leads assigned to this salesperson"),
		edge.To("lead_activities", LeadActivity.Type).
			Comment("Lead activity entries written by this user"),
		edge.To("lead_notes", LeadNote.Type).
			Comment("Lead notes written by this user"),
		edge.To("assigned_tasks", Task.Type).
			Comment("Tasks assigned to this user"),
		edge.To("messages", Message.Type).
			Comment("Query thread messages sent by this user"),
		edge.To("submissions", Submission.Type).
			Comment("Submissions created by this user"),
		edge.To("uploaded_files", File.Type).
			Comment("Files uploaded by this user"),
		edge.To("feedback_given", Feedback.Type).
			Comment("Feedback authored by this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("username"),
		index.Fields("role"),
		index.Fields("magic_link_token"),
		index.Fields("created_at"),
	}
}
