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
	"github.com/agencydesk/agencydesk/ent/leadnote"
	"github.com/agencydesk/agencydesk/ent/predicate"
	"github.com/agencydesk/agencydesk/ent/user"
)

// LeadNoteUpdate is the builder for updating LeadNote entities.
type LeadNoteUpdate struct {
	config
	hooks    []Hook
	mutation *LeadNoteMutation
}

// Where appends a list predicates to the LeadNoteUpdate builder.
func (_u *LeadNoteUpdate) Where(ps ...predicate.LeadNote) *LeadNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadNoteUpdate) SetLeadID(v int) *LeadNoteUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadNoteUpdate) SetNillableLeadID(v *int) *LeadNoteUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LeadNoteUpdate) SetUserID(v int) *LeadNoteUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LeadNoteUpdate) SetNillableUserID(v *int) *LeadNoteUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *LeadNoteUpdate) SetContent(v string) *LeadNoteUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *LeadNoteUpdate) SetNillableContent(v *string) *LeadNoteUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsPinned sets the "is_pinned" field.
func (_u *LeadNoteUpdate) SetIsPinned(v bool) *LeadNoteUpdate {
	_u.mutation.SetIsPinned(v)
	return _u
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_u *LeadNoteUpdate) SetNillableIsPinned(v *bool) *LeadNoteUpdate {
	if v != nil {
		_u.SetIsPinned(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadNoteUpdate) SetUpdatedAt(v time.Time) *LeadNoteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadNoteUpdate) SetLead(v *Lead) *LeadNoteUpdate {
	return _u.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *LeadNoteUpdate) SetUser(v *User) *LeadNoteUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the LeadNoteMutation object of the builder.
func (_u *LeadNoteUpdate) Mutation() *LeadNoteMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadNoteUpdate) ClearLead() *LeadNoteUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *LeadNoteUpdate) ClearUser() *LeadNoteUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadNoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadNoteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leadnote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadNoteUpdate) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadnote.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadNote.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := leadnote.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadNote.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := leadnote.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "LeadNote.content": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadNote.lead"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadNote.user"`)
	}
	return nil
}

func (_u *LeadNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadnote.Table, leadnote.Columns, sqlgraph.NewFieldSpec(leadnote.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(leadnote.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPinned(); ok {
		_spec.SetField(leadnote.FieldIsPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leadnote.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadnote.LeadTable,
			Columns: []string{leadnote.LeadColumn},
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
			Table:   leadnote.LeadTable,
			Columns: []string{leadnote.LeadColumn},
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
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadnote.UserTable,
			Columns: []string{leadnote.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadnote.UserTable,
			Columns: []string{leadnote.UserColumn},
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
			err = &NotFoundError{leadnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadNoteUpdateOne is the builder for updating a single LeadNote entity.
type LeadNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadNoteMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadNoteUpdateOne) SetLeadID(v int) *LeadNoteUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadNoteUpdateOne) SetNillableLeadID(v *int) *LeadNoteUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LeadNoteUpdateOne) SetUserID(v int) *LeadNoteUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LeadNoteUpdateOne) SetNillableUserID(v *int) *LeadNoteUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *LeadNoteUpdateOne) SetContent(v string) *LeadNoteUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *LeadNoteUpdateOne) SetNillableContent(v *string) *LeadNoteUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsPinned sets the "is_pinned" field.
func (_u *LeadNoteUpdateOne) SetIsPinned(v bool) *LeadNoteUpdateOne {
	_u.mutation.SetIsPinned(v)
	return _u
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_u *LeadNoteUpdateOne) SetNillableIsPinned(v *bool) *LeadNoteUpdateOne {
	if v != nil {
		_u.SetIsPinned(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadNoteUpdateOne) SetUpdatedAt(v time.Time) *LeadNoteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadNoteUpdateOne) SetLead(v *Lead) *LeadNoteUpdateOne {
	return _u.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *LeadNoteUpdateOne) SetUser(v *User) *LeadNoteUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the LeadNoteMutation object of the builder.
func (_u *LeadNoteUpdateOne) Mutation() *LeadNoteMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadNoteUpdateOne) ClearLead() *LeadNoteUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *LeadNoteUpdateOne) ClearUser() *LeadNoteUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the LeadNoteUpdate builder.
func (_u *LeadNoteUpdateOne) Where(ps ...predicate.LeadNote) *LeadNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadNoteUpdateOne) Select(field string, fields ...string) *LeadNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeadNote entity.
func (_u *LeadNoteUpdateOne) Save(ctx context.Context) (*LeadNote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadNoteUpdateOne) SaveX(ctx context.Context) *LeadNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadNoteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leadnote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadNoteUpdateOne) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadnote.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadNote.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := leadnote.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadNote.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := leadnote.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "LeadNote.content": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadNote.lead"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadNote.user"`)
	}
	return nil
}

func (_u *LeadNoteUpdateOne) sqlSave(ctx context.Context) (_node *LeadNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadnote.Table, leadnote.Columns, sqlgraph.NewFieldSpec(leadnote.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeadNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadnote.FieldID)
		for _, f := range fields {
			if !leadnote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leadnote.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(leadnote.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPinned(); ok {
		_spec.SetField(leadnote.FieldIsPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leadnote.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadnote.LeadTable,
			Columns: []string{leadnote.LeadColumn},
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
			Table:   leadnote.LeadTable,
			Columns: []string{leadnote.LeadColumn},
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
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadnote.UserTable,
			Columns: []string{leadnote.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadnote.UserTable,
			Columns: []string{leadnote.UserColumn},
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
	_node = &LeadNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
