// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agencydesk/agencydesk/ent/lead"
	"github.com/agencydesk/agencydesk/ent/leadassignment"
	"github.com/agencydesk/agencydesk/ent/predicate"
	"github.com/agencydesk/agencydesk/ent/user"
)

// LeadAssignmentUpdate is the builder for updating LeadAssignment entities.
type LeadAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *LeadAssignmentMutation
}

// Where appends a list predicates to the LeadAssignmentUpdate builder.
func (_u *LeadAssignmentUpdate) Where(ps ...predicate.LeadAssignment) *LeadAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadAssignmentUpdate) SetLeadID(v int) *LeadAssignmentUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadAssignmentUpdate) SetNillableLeadID(v *int) *LeadAssignmentUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetSalesPersonID sets the "sales_person_id" field.
func (_u *LeadAssignmentUpdate) SetSalesPersonID(v int) *LeadAssignmentUpdate {
	_u.mutation.SetSalesPersonID(v)
	return _u
}

// SetNillableSalesPersonID sets the "sales_person_id" field if the given value is not nil.
func (_u *LeadAssignmentUpdate) SetNillableSalesPersonID(v *int) *LeadAssignmentUpdate {
	if v != nil {
		_u.SetSalesPersonID(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *LeadAssignmentUpdate) SetAssignedBy(v int) *LeadAssignmentUpdate {
	_u.mutation.ResetAssignedBy()
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *LeadAssignmentUpdate) SetNillableAssignedBy(v *int) *LeadAssignmentUpdate {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// AddAssignedBy adds value to the "assigned_by" field.
func (_u *LeadAssignmentUpdate) AddAssignedBy(v int) *LeadAssignmentUpdate {
	_u.mutation.AddAssignedBy(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadAssignmentUpdate) SetStatus(v leadassignment.Status) *LeadAssignmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadAssignmentUpdate) SetNillableStatus(v *leadassignment.Status) *LeadAssignmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadAssignmentUpdate) SetNotes(v string) *LeadAssignmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadAssignmentUpdate) SetNillableNotes(v *string) *LeadAssignmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadAssignmentUpdate) ClearNotes() *LeadAssignmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadAssignmentUpdate) SetUpdatedAt(v time.Time) *LeadAssignmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadAssignmentUpdate) SetLead(v *Lead) *LeadAssignmentUpdate {
	return _u.SetLeadID(v.ID)
}

// SetSalesPerson sets the "sales_person" edge to the User entity.
func (_u *LeadAssignmentUpdate) SetSalesPerson(v *User) *LeadAssignmentUpdate {
	return _u.SetSalesPersonID(v.ID)
}

// Mutation returns the LeadAssignmentMutation object of the builder.
func (_u *LeadAssignmentUpdate) Mutation() *LeadAssignmentMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadAssignmentUpdate) ClearLead() *LeadAssignmentUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearSalesPerson clears the "sales_person" edge to the User entity.
func (_u *LeadAssignmentUpdate) ClearSalesPerson() *LeadAssignmentUpdate {
	_u.mutation.ClearSalesPerson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadAssignmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadAssignmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leadassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadAssignmentUpdate) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadassignment.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SalesPersonID(); ok {
		if err := leadassignment.SalesPersonIDValidator(v); err != nil {
			return &ValidationError{Name: "sales_person_id", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.sales_person_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedBy(); ok {
		if err := leadassignment.AssignedByValidator(v); err != nil {
			return &ValidationError{Name: "assigned_by", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.assigned_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := leadassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := leadassignment.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.notes": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadAssignment.lead"`)
	}
	if _u.mutation.SalesPersonCleared() && len(_u.mutation.SalesPersonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadAssignment.sales_person"`)
	}
	return nil
}

func (_u *LeadAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadassignment.Table, leadassignment.Columns, sqlgraph.NewFieldSpec(leadassignment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(leadassignment.FieldAssignedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedBy(); ok {
		_spec.AddField(leadassignment.FieldAssignedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(leadassignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(leadassignment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(leadassignment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leadassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadassignment.LeadTable,
			Columns: []string{leadassignment.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadassignment.LeadTable,
			Columns: []string{leadassignment.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SalesPersonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadassignment.SalesPersonTable,
			Columns: []string{leadassignment.SalesPersonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SalesPersonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadassignment.SalesPersonTable,
			Columns: []string{leadassignment.SalesPersonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadAssignmentUpdateOne is the builder for updating a single LeadAssignment entity.
type LeadAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadAssignmentMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadAssignmentUpdateOne) SetLeadID(v int) *LeadAssignmentUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadAssignmentUpdateOne) SetNillableLeadID(v *int) *LeadAssignmentUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetSalesPersonID sets the "sales_person_id" field.
func (_u *LeadAssignmentUpdateOne) SetSalesPersonID(v int) *LeadAssignmentUpdateOne {
	_u.mutation.SetSalesPersonID(v)
	return _u
}

// SetNillableSalesPersonID sets the "sales_person_id" field if the given value is not nil.
func (_u *LeadAssignmentUpdateOne) SetNillableSalesPersonID(v *int) *LeadAssignmentUpdateOne {
	if v != nil {
		_u.SetSalesPersonID(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *LeadAssignmentUpdateOne) SetAssignedBy(v int) *LeadAssignmentUpdateOne {
	_u.mutation.ResetAssignedBy()
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *LeadAssignmentUpdateOne) SetNillableAssignedBy(v *int) *LeadAssignmentUpdateOne {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// AddAssignedBy adds value to the "assigned_by" field.
func (_u *LeadAssignmentUpdateOne) AddAssignedBy(v int) *LeadAssignmentUpdateOne {
	_u.mutation.AddAssignedBy(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadAssignmentUpdateOne) SetStatus(v leadassignment.Status) *LeadAssignmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadAssignmentUpdateOne) SetNillableStatus(v *leadassignment.Status) *LeadAssignmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadAssignmentUpdateOne) SetNotes(v string) *LeadAssignmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadAssignmentUpdateOne) SetNillableNotes(v *string) *LeadAssignmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadAssignmentUpdateOne) ClearNotes() *LeadAssignmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadAssignmentUpdateOne) SetUpdatedAt(v time.Time) *LeadAssignmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadAssignmentUpdateOne) SetLead(v *Lead) *LeadAssignmentUpdateOne {
	return _u.SetLeadID(v.ID)
}

// SetSalesPerson sets the "sales_person" edge to the User entity.
func (_u *LeadAssignmentUpdateOne) SetSalesPerson(v *User) *LeadAssignmentUpdateOne {
	return _u.SetSalesPersonID(v.ID)
}

// Mutation returns the LeadAssignmentMutation object of the builder.
func (_u *LeadAssignmentUpdateOne) Mutation() *LeadAssignmentMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadAssignmentUpdateOne) ClearLead() *LeadAssignmentUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearSalesPerson clears the "sales_person" edge to the User entity.
func (_u *LeadAssignmentUpdateOne) ClearSalesPerson() *LeadAssignmentUpdateOne {
	_u.mutation.ClearSalesPerson()
	return _u
}

// Where appends a list predicates to the LeadAssignmentUpdate builder.
func (_u *LeadAssignmentUpdateOne) Where(ps ...predicate.LeadAssignment) *LeadAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadAssignmentUpdateOne) Select(field string, fields ...string) *LeadAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeadAssignment entity.
func (_u *LeadAssignmentUpdateOne) Save(ctx context.Context) (*LeadAssignment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadAssignmentUpdateOne) SaveX(ctx context.Context) *LeadAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadAssignmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leadassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadAssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadassignment.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SalesPersonID(); ok {
		if err := leadassignment.SalesPersonIDValidator(v); err != nil {
			return &ValidationError{Name: "sales_person_id", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.sales_person_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedBy(); ok {
		if err := leadassignment.AssignedByValidator(v); err != nil {
			return &ValidationError{Name: "assigned_by", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.assigned_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := leadassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := leadassignment.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.notes": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadAssignment.lead"`)
	}
	if _u.mutation.SalesPersonCleared() && len(_u.mutation.SalesPersonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadAssignment.sales_person"`)
	}
	return nil
}

func (_u *LeadAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *LeadAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadassignment.Table, leadassignment.Columns, sqlgraph.NewFieldSpec(leadassignment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeadAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadassignment.FieldID)
		for _, f := range fields {
			if !leadassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leadassignment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(leadassignment.FieldAssignedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedBy(); ok {
		_spec.AddField(leadassignment.FieldAssignedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(leadassignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(leadassignment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(leadassignment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leadassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadassignment.LeadTable,
			Columns: []string{leadassignment.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadassignment.LeadTable,
			Columns: []string{leadassignment.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SalesPersonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadassignment.SalesPersonTable,
			Columns: []string{leadassignment.SalesPersonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SalesPersonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadassignment.SalesPersonTable,
			Columns: []string{leadassignment.SalesPersonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LeadAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
