// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/user"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Sequential number (TSK-0001), allocated from the counter inside the insert transaction
	TaskNumber string `json:"task_number,omitempty"`
	// Task title
	Title string `json:"title,omitempty"`
	// Task description
	Description string `json:"description,omitempty"`
	// Parent requirement
	RequirementID int `json:"requirement_id,omitempty"`
	// Single assignee, optional
	AssignedTo *int `json:"assigned_to,omitempty"`
	// Users who asked to be assigned; set semantics, cleared on assignment
	RequestedBy []int `json:"requested_by,omitempty"`
	// Task status
	Status task.Status `json:"status,omitempty"`
	// True when status was set explicitly; subtask-driven derivation then leaves it alone until progress reaches 100
	StatusManual bool `json:"status_manual,omitempty"`
	// Derived from subtask completion: round(100*completed/total)
	Progress int `json:"progress,omitempty"`
	// Ordered checklist
	Subtasks []schema.Subtask `json:"subtasks,omitempty"`
	// Due date
	DueDate *time.Time `json:"due_date,omitempty"`
	// Stamped when the task reaches done
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Requirement holds the value of the requirement edge.
	Requirement *Requirement `json:"requirement,omitempty"`
	// Assignee holds the value of the assignee edge.
	Assignee *User `json:"assignee,omitempty"`
	// Queries holds the value of the queries edge.
	Queries []*Thread `json:"queries,omitempty"`
	// Submissions holds the value of the submissions edge.
	Submissions []*Submission `json:"submissions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// RequirementOrErr returns the Requirement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) RequirementOrErr() (*Requirement, error) {
	if e.Requirement != nil {
		return e.Requirement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: requirement.Label}
	}
	return nil, &NotLoadedError{edge: "requirement"}
}

// AssigneeOrErr returns the Assignee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) AssigneeOrErr() (*User, error) {
	if e.Assignee != nil {
		return e.Assignee, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "assignee"}
}

// QueriesOrErr returns the Queries value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) QueriesOrErr() ([]*Thread, error) {
	if e.loadedTypes[2] {
		return e.Queries, nil
	}
	return nil, &NotLoadedError{edge: "queries"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[3] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldRequestedBy, task.FieldSubtasks:
			values[i] = new([]byte)
		case task.FieldStatusManual:
			values[i] = new(sql.NullBool)
		case task.FieldID, task.FieldRequirementID, task.FieldAssignedTo, task.FieldProgress:
			values[i] = new(sql.NullInt64)
		case task.FieldTaskNumber, task.FieldTitle, task.FieldDescription, task.FieldStatus:
			values[i] = new(sql.NullString)
		case task.FieldDueDate, task.FieldCompletedDate, task.FieldCreatedAt, task.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case task.FieldTaskNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_number", values[i])
			} else if value.Valid {
				_m.TaskNumber = value.String
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldRequirementID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requirement_id", values[i])
			} else if value.Valid {
				_m.RequirementID = int(value.Int64)
			}
		case task.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = new(int)
				*_m.AssignedTo = int(value.Int64)
			}
		case task.FieldRequestedBy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestedBy); err != nil {
					return fmt.Errorf("unmarshal field requested_by: %w", err)
				}
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldStatusManual:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field status_manual", values[i])
			} else if value.Valid {
				_m.StatusManual = value.Bool
			}
		case task.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case task.FieldSubtasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subtasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Subtasks); err != nil {
					return fmt.Errorf("unmarshal field subtasks: %w", err)
				}
			}
		case task.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case task.FieldCompletedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_date", values[i])
			} else if value.Valid {
				_m.CompletedDate = new(time.Time)
				*_m.CompletedDate = value.Time
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequirement queries the "requirement" edge of the Task entity.
func (_m *Task) QueryRequirement() *RequirementQuery {
	return NewTaskClient(_m.config).QueryRequirement(_m)
}

// QueryAssignee queries the "assignee" edge of the Task entity.
func (_m *Task) QueryAssignee() *UserQuery {
	return NewTaskClient(_m.config).QueryAssignee(_m)
}

// QueryQueries queries the "queries" edge of the Task entity.
func (_m *Task) QueryQueries() *ThreadQuery {
	return NewTaskClient(_m.config).QueryQueries(_m)
}

// QuerySubmissions queries the "submissions" edge of the Task entity.
func (_m *Task) QuerySubmissions() *SubmissionQuery {
	return NewTaskClient(_m.config).QuerySubmissions(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_number=")
	builder.WriteString(_m.TaskNumber)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("requirement_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequirementID))
	builder.WriteString(", ")
	if v := _m.AssignedTo; v != nil {
		builder.WriteString("assigned_to=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("requested_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestedBy))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("status_manual=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusManual))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("subtasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtasks))
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedDate; v != nil {
		builder.WriteString("completed_date=")
		builder.WriteString(v.Format(time.ANSIC))
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

// Tasks is a parsable slice of Task.
type Tasks []*Task
