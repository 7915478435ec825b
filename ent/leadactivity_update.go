// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agencydesk/agencydesk/ent/lead"
	"github.com/agencydesk/agencydesk/ent/leadactivity"
	"github.com/agencydesk/agencydesk/ent/predicate"
	"github.com/agencydesk/agencydesk/ent/user"
)

// LeadActivityUpdate is the builder for updating LeadActivity entities.
type LeadActivityUpdate struct {
	config
	hooks    []Hook
	mutation *LeadActivityMutation
}

// Where appends a list predicates to the LeadActivityUpdate builder.
func (_u *LeadActivityUpdate) Where(ps ...predicate.LeadActivity) *LeadActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadActivityUpdate) SetLeadID(v int) *LeadActivityUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadActivityUpdate) SetNillableLeadID(v *int) *LeadActivityUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LeadActivityUpdate) SetUserID(v int) *LeadActivityUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LeadActivityUpdate) SetNillableUserID(v *int) *LeadActivityUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *LeadActivityUpdate) SetType(v leadactivity.Type) *LeadActivityUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *LeadActivityUpdate) SetNillableType(v *leadactivity.Type) *LeadActivityUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *LeadActivityUpdate) SetDetail(v string) *LeadActivityUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *LeadActivityUpdate) SetNillableDetail(v *string) *LeadActivityUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *LeadActivityUpdate) ClearDetail() *LeadActivityUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LeadActivityUpdate) SetMetadata(v map[string]interface{}) *LeadActivityUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LeadActivityUpdate) ClearMetadata() *LeadActivityUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadActivityUpdate) SetLead(v *Lead) *LeadActivityUpdate {
	return _u.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *LeadActivityUpdate) SetUser(v *User) *LeadActivityUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the LeadActivityMutation object of the builder.
func (_u *LeadActivityUpdate) Mutation() *LeadActivityMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadActivityUpdate) ClearLead() *LeadActivityUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *LeadActivityUpdate) ClearUser() *LeadActivityUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadActivityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadActivityUpdate) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadactivity.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := leadactivity.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := leadactivity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Detail(); ok {
		if err := leadactivity.DetailValidator(v); err != nil {
			return &ValidationError{Name: "detail", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.detail": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadActivity.lead"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadActivity.user"`)
	}
	return nil
}

func (_u *LeadActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadactivity.Table, leadactivity.Columns, sqlgraph.NewFieldSpec(leadactivity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(leadactivity.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(leadactivity.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(leadactivity.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(leadactivity.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(leadactivity.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadactivity.LeadTable,
			Columns: []string{leadactivity.LeadColumn},
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
			Table:   leadactivity.LeadTable,
			Columns: []string{leadactivity.LeadColumn},
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
			Table:   leadactivity.UserTable,
			Columns: []string{leadactivity.UserColumn},
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
			Table:   leadactivity.UserTable,
			Columns: []string{leadactivity.UserColumn},
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
			err = &NotFoundError{leadactivity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadActivityUpdateOne is the builder for updating a single LeadActivity entity.
type LeadActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadActivityMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadActivityUpdateOne) SetLeadID(v int) *LeadActivityUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadActivityUpdateOne) SetNillableLeadID(v *int) *LeadActivityUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LeadActivityUpdateOne) SetUserID(v int) *LeadActivityUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LeadActivityUpdateOne) SetNillableUserID(v *int) *LeadActivityUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *LeadActivityUpdateOne) SetType(v leadactivity.Type) *LeadActivityUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *LeadActivityUpdateOne) SetNillableType(v *leadactivity.Type) *LeadActivityUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *LeadActivityUpdateOne) SetDetail(v string) *LeadActivityUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *LeadActivityUpdateOne) SetNillableDetail(v *string) *LeadActivityUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *LeadActivityUpdateOne) ClearDetail() *LeadActivityUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LeadActivityUpdateOne) SetMetadata(v map[string]interface{}) *LeadActivityUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LeadActivityUpdateOne) ClearMetadata() *LeadActivityUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadActivityUpdateOne) SetLead(v *Lead) *LeadActivityUpdateOne {
	return _u.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *LeadActivityUpdateOne) SetUser(v *User) *LeadActivityUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the LeadActivityMutation object of the builder.
func (_u *LeadActivityUpdateOne) Mutation() *LeadActivityMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadActivityUpdateOne) ClearLead() *LeadActivityUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *LeadActivityUpdateOne) ClearUser() *LeadActivityUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the LeadActivityUpdate builder.
func (_u *LeadActivityUpdateOne) Where(ps ...predicate.LeadActivity) *LeadActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadActivityUpdateOne) Select(field string, fields ...string) *LeadActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeadActivity entity.
func (_u *LeadActivityUpdateOne) Save(ctx context.Context) (*LeadActivity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadActivityUpdateOne) SaveX(ctx context.Context) *LeadActivity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadActivityUpdateOne) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadactivity.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := leadactivity.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := leadactivity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Detail(); ok {
		if err := leadactivity.DetailValidator(v); err != nil {
			return &ValidationError{Name: "detail", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.detail": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadActivity.lead"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadActivity.user"`)
	}
	return nil
}

func (_u *LeadActivityUpdateOne) sqlSave(ctx context.Context) (_node *LeadActivity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadactivity.Table, leadactivity.Columns, sqlgraph.NewFieldSpec(leadactivity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeadActivity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadactivity.FieldID)
		for _, f := range fields {
			if !leadactivity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leadactivity.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(leadactivity.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(leadactivity.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(leadactivity.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(leadactivity.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(leadactivity.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadactivity.LeadTable,
			Columns: []string{leadactivity.LeadColumn},
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
			Table:   leadactivity.LeadTable,
			Columns: []string{leadactivity.LeadColumn},
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
			Table:   leadactivity.UserTable,
			Columns: []string{leadactivity.UserColumn},
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
			Table:   leadactivity.UserTable,
			Columns: []string{leadactivity.UserColumn},
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
	_node = &LeadActivity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadactivity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
