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
)

// Requirement is the model entity for the Requirement schema.
type Requirement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Human-readable sequential number (REQ-0001)
	RequirementNumber string `json:"requirement_number,omitempty"`
	// Project scope name
	RequirementName string `json:"requirement_name,omitempty"`
	// Owning client
	ClientID int `json:"client_id,omitempty"`
	// Requirement status
	Status requirement.Status `json:"status,omitempty"`
	// Employee ids working on this requirement; set semantics, grows via task assignment
	AssignedEmployees []int `json:"assigned_employees,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequirementQuery when eager-loading is set.
	Edges        RequirementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequirementEdges holds the relations/edges for other nodes in the graph.
type RequirementEdges struct {
	// Client holds the value of the client edge.
	Client *Company `json:"client,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Submissions holds the value of the submissions edge.
	Submissions []*Submission `json:"submissions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequirementEdges) ClientOrErr() (*Company, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e RequirementEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[1] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e RequirementEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[2] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Requirement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case requirement.FieldAssignedEmployees:
			values[i] = new([]byte)
		case requirement.FieldID, requirement.FieldClientID:
			values[i] = new(sql.NullInt64)
		case requirement.FieldRequirementNumber, requirement.FieldRequirementName, requirement.FieldStatus:
			values[i] = new(sql.NullString)
		case requirement.FieldCreatedAt, requirement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Requirement fields.
func (_m *Requirement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case requirement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case requirement.FieldRequirementNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requirement_number", values[i])
			} else if value.Valid {
				_m.RequirementNumber = value.String
			}
		case requirement.FieldRequirementName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requirement_name", values[i])
			} else if value.Valid {
				_m.RequirementName = value.String
			}
		case requirement.FieldClientID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				_m.ClientID = int(value.Int64)
			}
		case requirement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = requirement.Status(value.String)
			}
		case requirement.FieldAssignedEmployees:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_employees", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssignedEmployees); err != nil {
					return fmt.Errorf("unmarshal field assigned_employees: %w", err)
				}
			}
		case requirement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case requirement.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Requirement.
// This includes values selected through modifiers, order, etc.
func (_m *Requirement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClient queries the "client" edge of the Requirement entity.
func (_m *Requirement) QueryClient() *CompanyQuery {
	return NewRequirementClient(_m.config).QueryClient(_m)
}

// QueryTasks queries the "tasks" edge of the Requirement entity.
func (_m *Requirement) QueryTasks() *TaskQuery {
	return NewRequirementClient(_m.config).QueryTasks(_m)
}

// QuerySubmissions queries the "submissions" edge of the Requirement entity.
func (_m *Requirement) QuerySubmissions() *SubmissionQuery {
	return NewRequirementClient(_m.config).QuerySubmissions(_m)
}

// Update returns a builder for updating this Requirement.
// Note that you need to call Requirement.Unwrap() before calling this method if this Requirement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Requirement) Update() *RequirementUpdateOne {
	return NewRequirementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Requirement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Requirement) Unwrap() *Requirement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Requirement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Requirement) String() string {
	var builder strings.Builder
	builder.WriteString("Requirement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("requirement_number=")
	builder.WriteString(_m.RequirementNumber)
	builder.WriteString(", ")
	builder.WriteString("requirement_name=")
	builder.WriteString(_m.RequirementName)
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("assigned_employees=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedEmployees))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Requirements is a parsable slice of Requirement.
type Requirements []*Requirement
