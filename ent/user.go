// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User full name
	FullName string `json:"full_name,omitempty"`
	// Display/login handle
	Username string `json:"username,omitempty"`
	// Email address; unique among non-deleted users (enforced in the service layer so a soft-deleted account does not block re-registration)
	Email string `json:"email,omitempty"`
	// Phone number
	Phone string `json:"phone,omitempty"`
	// Role for access control
	Role user.Role `json:"role,omitempty"`
	// Bcrypt hashed password; empty until the user sets one
	PasswordHash string `json:"-"`
	// SHA256 hex of the active magic-link token; at most one active token
	MagicLinkToken *string `json:"-"`
	// Expiry of the active magic-link token
	MagicLinkExpiresAt *time.Time `json:"magic_link_expires_at,omitempty"`
	// Inactive users cannot log in
	IsActive bool `json:"is_active,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete timestamp
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Client record for role=client accounts
	ClientProfile *Company `json:"client_profile,omitempty"`
	// Clients owned as salesperson
	OwnedClients []*Company `json:"owned_clients,omitempty"`
	// Leads assigned to this salesperson
	LeadAssignments []*LeadAssignment `json:"lead_assignments,omitempty"`
	// Lead activity entries written by this user
	LeadActivities []*LeadActivity `json:"lead_activities,omitempty"`
	// Lead notes written by this user
	LeadNotes []*LeadNote `json:"lead_notes,omitempty"`
	// Tasks assigned to this user
	AssignedTasks []*Task `json:"assigned_tasks,omitempty"`
	// Query thread messages sent by this user
	Messages []*Message `json:"messages,omitempty"`
	// Submissions created by this user
	Submissions []*Submission `json:"submissions,omitempty"`
	// Files uploaded by this user
	UploadedFiles []*File `json:"uploaded_files,omitempty"`
	// Feedback authored by this user
	FeedbackGiven []*Feedback `json:"feedback_given,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [10]bool
}

// ClientProfileOrErr returns the ClientProfile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) ClientProfileOrErr() (*Company, error) {
	if e.ClientProfile != nil {
		return e.ClientProfile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "client_profile"}
}

// OwnedClientsOrErr returns the OwnedClients value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) OwnedClientsOrErr() ([]*Company, error) {
	if e.loadedTypes[1] {
		return e.OwnedClients, nil
	}
	return nil, &NotLoadedError{edge: "owned_clients"}
}

// LeadAssignmentsOrErr returns the LeadAssignments value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) LeadAssignmentsOrErr() ([]*LeadAssignment, error) {
	if e.loadedTypes[2] {
		return e.LeadAssignments, nil
	}
	return nil, &NotLoadedError{edge: "lead_assignments"}
}

// LeadActivitiesOrErr returns the LeadActivities value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) LeadActivitiesOrErr() ([]*LeadActivity, error) {
	if e.loadedTypes[3] {
		return e.LeadActivities, nil
	}
	return nil, &NotLoadedError{edge: "lead_activities"}
}

// LeadNotesOrErr returns the LeadNotes value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) LeadNotesOrErr() ([]*LeadNote, error) {
	if e.loadedTypes[4] {
		return e.LeadNotes, nil
	}
	return nil, &NotLoadedError{edge: "lead_notes"}
}

// AssignedTasksOrErr returns the AssignedTasks value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AssignedTasksOrErr() ([]*Task, error) {
	if e.loadedTypes[5] {
		return e.AssignedTasks, nil
	}
	return nil, &NotLoadedError{edge: "assigned_tasks"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[6] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[7] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// UploadedFilesOrErr returns the UploadedFiles value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) UploadedFilesOrErr() ([]*File, error) {
	if e.loadedTypes[8] {
		return e.UploadedFiles, nil
	}
	return nil, &NotLoadedError{edge: "uploaded_files"}
}

// FeedbackGivenOrErr returns the FeedbackGiven value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) FeedbackGivenOrErr() ([]*Feedback, error) {
	if e.loadedTypes[9] {
		return e.FeedbackGiven, nil
	}
	return nil, &NotLoadedError{edge: "feedback_given"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldIsActive:
			values[i] = new(sql.NullBool)
		case user.FieldID:
			values[i] = new(sql.NullInt64)
		case user.FieldFullName, user.FieldUsername, user.FieldEmail, user.FieldPhone, user.FieldRole, user.FieldPasswordHash, user.FieldMagicLinkToken:
			values[i] = new(sql.NullString)
		case user.FieldMagicLinkExpiresAt, user.FieldCreatedAt, user.FieldUpdatedAt, user.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case user.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case user.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case user.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = user.Role(value.String)
			}
		case user.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case user.FieldMagicLinkToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field magic_link_token", values[i])
			} else if value.Valid {
				_m.MagicLinkToken = new(string)
				*_m.MagicLinkToken = value.String
			}
		case user.FieldMagicLinkExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field magic_link_expires_at", values[i])
			} else if value.Valid {
				_m.MagicLinkExpiresAt = new(time.Time)
				*_m.MagicLinkExpiresAt = value.Time
			}
		case user.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case user.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClientProfile queries the "client_profile" edge of the User entity.
func (_m *User) QueryClientProfile() *CompanyQuery {
	return NewUserClient(_m.config).QueryClientProfile(_m)
}

// QueryOwnedClients queries the "owned_clients" edge of the User entity.
func (_m *User) QueryOwnedClients() *CompanyQuery {
	return NewUserClient(_m.config).QueryOwnedClients(_m)
}

// QueryLeadAssignments queries the "lead_assignments" edge of the User entity.
func (_m *User) QueryLeadAssignments() *LeadAssignmentQuery {
	return NewUserClient(_m.config).QueryLeadAssignments(_m)
}

// QueryLeadActivities queries the "lead_activities" edge of the User entity.
func (_m *User) QueryLeadActivities() *LeadActivityQuery {
	return NewUserClient(_m.config).QueryLeadActivities(_m)
}

// QueryLeadNotes queries the "lead_notes" edge of the User entity.
func (_m *User) QueryLeadNotes() *LeadNoteQuery {
	return NewUserClient(_m.config).QueryLeadNotes(_m)
}

// QueryAssignedTasks queries the "assigned_tasks" edge of the User entity.
func (_m *User) QueryAssignedTasks() *TaskQuery {
	return NewUserClient(_m.config).QueryAssignedTasks(_m)
}

// QueryMessages queries the "messages" edge of the User entity.
func (_m *User) QueryMessages() *MessageQuery {
	return NewUserClient(_m.config).QueryMessages(_m)
}

// QuerySubmissions queries the "submissions" edge of the User entity.
func (_m *User) QuerySubmissions() *SubmissionQuery {
	return NewUserClient(_m.config).QuerySubmissions(_m)
}

// QueryUploadedFiles queries the "uploaded_files" edge of the User entity.
func (_m *User) QueryUploadedFiles() *FileQuery {
	return NewUserClient(_m.config).QueryUploadedFiles(_m)
}

// QueryFeedbackGiven queries the "feedback_given" edge of the User entity.
func (_m *User) QueryFeedbackGiven() *FeedbackQuery {
	return NewUserClient(_m.config).QueryFeedbackGiven(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("magic_link_token=<sensitive>")
	builder.WriteString(", ")
	if v := _m.MagicLinkExpiresAt; v != nil {
		builder.WriteString("magic_link_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
