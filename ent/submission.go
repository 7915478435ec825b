// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/user"
)

// Submission is the model entity for the Submission schema.
type Submission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Sequential number (SUB-0001)
	SubmissionNumber string `json:"submission_number,omitempty"`
	// Submission title
	Title string `json:"title,omitempty"`
	// Submission description
	Description string `json:"description,omitempty"`
	// Task the deliverables belong to
	TaskID int `json:"task_id,omitempty"`
	// Parent requirement
	RequirementID int `json:"requirement_id,omitempty"`
	// Reviewing client
	ClientID int `json:"client_id,omitempty"`
	// Employee who submitted
	SubmittedBy int `json:"submitted_by,omitempty"`
	// Storage keys of the delivered files
	Deliverables []string `json:"deliverables,omitempty"`
	// Review state
	Status submission.Status `json:"status,omitempty"`
	// Reviewer-requested changes
	RequestedChanges []schema.RequestedChange `json:"requested_changes,omitempty"`
	// Reviewer notes; required for every verdict except approval
	ReviewNotes string `json:"review_notes,omitempty"`
	// Reviewing user
	ReviewedBy *int `json:"reviewed_by,omitempty"`
	// When the verdict was recorded
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// Submission this one replaces after a changes-requested verdict
	ResubmissionOf *int `json:"resubmission_of,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmissionQuery when eager-loading is set.
	Edges        SubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubmissionEdges holds the relations/edges for other nodes in the graph.
type SubmissionEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// Requirement holds the value of the requirement edge.
	Requirement *Requirement `json:"requirement,omitempty"`
	// Client holds the value of the client edge.
	Client *Company `json:"client,omitempty"`
	// Submitter holds the value of the submitter edge.
	Submitter *User `json:"submitter,omitempty"`
	// Feedback holds the value of the feedback edge.
	Feedback []*Feedback `json:"feedback,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// RequirementOrErr returns the Requirement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) RequirementOrErr() (*Requirement, error) {
	if e.Requirement != nil {
		return e.Requirement, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: requirement.Label}
	}
	return nil, &NotLoadedError{edge: "requirement"}
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) ClientOrErr() (*Company, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// SubmitterOrErr returns the Submitter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) SubmitterOrErr() (*User, error) {
	if e.Submitter != nil {
		return e.Submitter, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "submitter"}
}

// FeedbackOrErr returns the Feedback value or an error if the edge
// was not loaded in eager-loading.
func (e SubmissionEdges) FeedbackOrErr() ([]*Feedback, error) {
	if e.loadedTypes[4] {
		return e.Feedback, nil
	}
	return nil, &NotLoadedError{edge: "feedback"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submission.FieldDeliverables, submission.FieldRequestedChanges:
			values[i] = new([]byte)
		case submission.FieldID, submission.FieldTaskID, submission.FieldRequirementID, submission.FieldClientID, submission.FieldSubmittedBy, submission.FieldReviewedBy, submission.FieldResubmissionOf:
			values[i] = new(sql.NullInt64)
		case submission.FieldSubmissionNumber, submission.FieldTitle, submission.FieldDescription, submission.FieldStatus, submission.FieldReviewNotes:
			values[i] = new(sql.NullString)
		case submission.FieldReviewedAt, submission.FieldCreatedAt, submission.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submission fields.
func (_m *Submission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case submission.FieldSubmissionNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submission_number", values[i])
			} else if value.Valid {
				_m.SubmissionNumber = value.String
			}
		case submission.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case submission.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case submission.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = int(value.Int64)
			}
		case submission.FieldRequirementID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requirement_id", values[i])
			} else if value.Valid {
				_m.RequirementID = int(value.Int64)
			}
		case submission.FieldClientID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				_m.ClientID = int(value.Int64)
			}
		case submission.FieldSubmittedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_by", values[i])
			} else if value.Valid {
				_m.SubmittedBy = int(value.Int64)
			}
		case submission.FieldDeliverables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field deliverables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Deliverables); err != nil {
					return fmt.Errorf("unmarshal field deliverables: %w", err)
				}
			}
		case submission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = submission.Status(value.String)
			}
		case submission.FieldRequestedChanges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field requested_changes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestedChanges); err != nil {
					return fmt.Errorf("unmarshal field requested_changes: %w", err)
				}
			}
		case submission.FieldReviewNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_notes", values[i])
			} else if value.Valid {
				_m.ReviewNotes = value.String
			}
		case submission.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = new(int)
				*_m.ReviewedBy = int(value.Int64)
			}
		case submission.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case submission.FieldResubmissionOf:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field resubmission_of", values[i])
			} else if value.Valid {
				_m.ResubmissionOf = new(int)
				*_m.ResubmissionOf = int(value.Int64)
			}
		case submission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Submission.
// This includes values selected through modifiers, order, etc.
func (_m *Submission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the Submission entity.
func (_m *Submission) QueryTask() *TaskQuery {
	return NewSubmissionClient(_m.config).QueryTask(_m)
}

// QueryRequirement queries the "requirement" edge of the Submission entity.
func (_m *Submission) QueryRequirement() *RequirementQuery {
	return NewSubmissionClient(_m.config).QueryRequirement(_m)
}

// QueryClient queries the "client" edge of the Submission entity.
func (_m *Submission) QueryClient() *CompanyQuery {
	return NewSubmissionClient(_m.config).QueryClient(_m)
}

// QuerySubmitter queries the "submitter" edge of the Submission entity.
func (_m *Submission) QuerySubmitter() *UserQuery {
	return NewSubmissionClient(_m.config).QuerySubmitter(_m)
}

// QueryFeedback queries the "feedback" edge of the Submission entity.
func (_m *Submission) QueryFeedback() *FeedbackQuery {
	return NewSubmissionClient(_m.config).QueryFeedback(_m)
}

// Update returns a builder for updating this Submission.
// Note that you need to call Submission.Unwrap() before calling this method if this Submission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submission) Update() *SubmissionUpdateOne {
	return NewSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submission) Unwrap() *Submission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Submission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submission) String() string {
	var builder strings.Builder
	builder.WriteString("Submission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("submission_number=")
	builder.WriteString(_m.SubmissionNumber)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	builder.WriteString("requirement_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequirementID))
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteString(", ")
	builder.WriteString("submitted_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmittedBy))
	builder.WriteString(", ")
	builder.WriteString("deliverables=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deliverables))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("requested_changes=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestedChanges))
	builder.WriteString(", ")
	builder.WriteString("review_notes=")
	builder.WriteString(_m.ReviewNotes)
	builder.WriteString(", ")
	if v := _m.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResubmissionOf; v != nil {
		builder.WriteString("resubmission_of=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Submissions is a parsable slice of Submission.
type Submissions []*Submission
