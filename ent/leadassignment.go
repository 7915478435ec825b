// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agencydesk/agencydesk/ent/lead"
	"github.com/agencydesk/agencydesk/ent/leadassignment"
	"github.com/agencydesk/agencydesk/ent/user"
)

// LeadAssignment is the model entity for the LeadAssignment schema.
type LeadAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Assigned lead
	LeadID int `json:"lead_id,omitempty"`
	// Salesperson who owns this assignment
	SalesPersonID int `json:"sales_person_id,omitempty"`
	// User who made the assignment
	AssignedBy int `json:"assigned_by,omitempty"`
	// Per-assignment status, independent of the lead's top-level status
	Status leadassignment.Status `json:"status,omitempty"`
	// Assignment notes
	Notes string `json:"notes,omitempty"`
	// When the assignment was made
	AssignedAt time.Time `json:"assigned_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadAssignmentQuery when eager-loading is set.
	Edges        LeadAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadAssignmentEdges holds the relations/edges for other nodes in the graph.
type LeadAssignmentEdges struct {
	// Lead holds the value of the lead edge.
	Lead *Lead `json:"lead,omitempty"`
	// SalesPerson holds the value of the sales_person edge.
	SalesPerson *User `json:"sales_person,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadAssignmentEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// SalesPersonOrErr returns the SalesPerson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadAssignmentEdges) SalesPersonOrErr() (*User, error) {
	if e.SalesPerson != nil {
		return e.SalesPerson, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "sales_person"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeadAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leadassignment.FieldID, leadassignment.FieldLeadID, leadassignment.FieldSalesPersonID, leadassignment.FieldAssignedBy:
			values[i] = new(sql.NullInt64)
		case leadassignment.FieldStatus, leadassignment.FieldNotes:
			values[i] = new(sql.NullString)
		case leadassignment.FieldAssignedAt, leadassignment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeadAssignment fields.
func (_m *LeadAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leadassignment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case leadassignment.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case leadassignment.FieldSalesPersonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sales_person_id", values[i])
			} else if value.Valid {
				_m.SalesPersonID = int(value.Int64)
			}
		case leadassignment.FieldAssignedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_by", values[i])
			} else if value.Valid {
				_m.AssignedBy = int(value.Int64)
			}
		case leadassignment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = leadassignment.Status(value.String)
			}
		case leadassignment.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case leadassignment.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = value.Time
			}
		case leadassignment.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LeadAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *LeadAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLead queries the "lead" edge of the LeadAssignment entity.
func (_m *LeadAssignment) QueryLead() *LeadQuery {
	return NewLeadAssignmentClient(_m.config).QueryLead(_m)
}

// QuerySalesPerson queries the "sales_person" edge of the LeadAssignment entity.
func (_m *LeadAssignment) QuerySalesPerson() *UserQuery {
	return NewLeadAssignmentClient(_m.config).QuerySalesPerson(_m)
}

// Update returns a builder for updating this LeadAssignment.
// Note that you need to call LeadAssignment.Unwrap() before calling this method if this LeadAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeadAssignment) Update() *LeadAssignmentUpdateOne {
	return NewLeadAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeadAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeadAssignment) Unwrap() *LeadAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeadAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeadAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("LeadAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	builder.WriteString("sales_person_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SalesPersonID))
	builder.WriteString(", ")
	builder.WriteString("assigned_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedBy))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("assigned_at=")
	builder.WriteString(_m.AssignedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeadAssignments is a parsable slice of LeadAssignment.
type LeadAssignments []*LeadAssignment
