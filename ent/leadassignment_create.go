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
	"github.com/agencydesk/agencydesk/ent/user"
)

// LeadAssignmentCreate is the builder for creating a LeadAssignment entity.
type LeadAssignmentCreate struct {
	config
	mutation *LeadAssignmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLeadID sets the "lead_id" field.
func (_c *LeadAssignmentCreate) SetLeadID(v int) *LeadAssignmentCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetSalesPersonID sets the "sales_person_id" field.
func (_c *LeadAssignmentCreate) SetSalesPersonID(v int) *LeadAssignmentCreate {
	_c.mutation.SetSalesPersonID(v)
	return _c
}

// SetAssignedBy sets the "assigned_by" field.
func (_c *LeadAssignmentCreate) SetAssignedBy(v int) *LeadAssignmentCreate {
	_c.mutation.SetAssignedBy(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LeadAssignmentCreate) SetStatus(v leadassignment.Status) *LeadAssignmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LeadAssignmentCreate) SetNillableStatus(v *leadassignment.Status) *LeadAssignmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *LeadAssignmentCreate) SetNotes(v string) *LeadAssignmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *LeadAssignmentCreate) SetNillableNotes(v *string) *LeadAssignmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *LeadAssignmentCreate) SetAssignedAt(v time.Time) *LeadAssignmentCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *LeadAssignmentCreate) SetNillableAssignedAt(v *time.Time) *LeadAssignmentCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadAssignmentCreate) SetUpdatedAt(v time.Time) *LeadAssignmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadAssignmentCreate) SetNillableUpdatedAt(v *time.Time) *LeadAssignmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *LeadAssignmentCreate) SetLead(v *Lead) *LeadAssignmentCreate {
	return _c.SetLeadID(v.ID)
}

// SetSalesPerson sets the "sales_person" edge to the User entity.
func (_c *LeadAssignmentCreate) SetSalesPerson(v *User) *LeadAssignmentCreate {
	return _c.SetSalesPersonID(v.ID)
}

// Mutation returns the LeadAssignmentMutation object of the builder.
func (_c *LeadAssignmentCreate) Mutation() *LeadAssignmentMutation {
	return _c.mutation
}

// Save creates the LeadAssignment in the database.
func (_c *LeadAssignmentCreate) Save(ctx context.Context) (*LeadAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadAssignmentCreate) SaveX(ctx context.Context) *LeadAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadAssignmentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := leadassignment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		v := leadassignment.DefaultAssignedAt()
		_c.mutation.SetAssignedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := leadassignment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadAssignmentCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "LeadAssignment.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := leadassignment.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SalesPersonID(); !ok {
		return &ValidationError{Name: "sales_person_id", err: errors.New(`ent: missing required field "LeadAssignment.sales_person_id"`)}
	}
	if v, ok := _c.mutation.SalesPersonID(); ok {
		if err := leadassignment.SalesPersonIDValidator(v); err != nil {
			return &ValidationError{Name: "sales_person_id", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.sales_person_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignedBy(); !ok {
		return &ValidationError{Name: "assigned_by", err: errors.New(`ent: missing required field "LeadAssignment.assigned_by"`)}
	}
	if v, ok := _c.mutation.AssignedBy(); ok {
		if err := leadassignment.AssignedByValidator(v); err != nil {
			return &ValidationError{Name: "assigned_by", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.assigned_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LeadAssignment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := leadassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Notes(); ok {
		if err := leadassignment.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`ent: validator failed for field "LeadAssignment.notes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		return &ValidationError{Name: "assigned_at", err: errors.New(`ent: missing required field "LeadAssignment.assigned_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LeadAssignment.updated_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "LeadAssignment.lead"`)}
	}
	if len(_c.mutation.SalesPersonIDs()) == 0 {
		return &ValidationError{Name: "sales_person", err: errors.New(`ent: missing required edge "LeadAssignment.sales_person"`)}
	}
	return nil
}

func (_c *LeadAssignmentCreate) sqlSave(ctx context.Context) (*LeadAssignment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadAssignmentCreate) createSpec() (*LeadAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leadassignment.Table, sqlgraph.NewFieldSpec(leadassignment.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AssignedBy(); ok {
		_spec.SetField(leadassignment.FieldAssignedBy, field.TypeInt, value)
		_node.AssignedBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(leadassignment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(leadassignment.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(leadassignment.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(leadassignment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
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
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SalesPersonIDs(); len(nodes) > 0 {
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
		_node.SalesPersonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeadAssignment.Create().
//		SetLeadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadAssignmentUpsert) {
//			SetLeadID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadAssignmentCreate) OnConflict(opts ...sql.ConflictOption) *LeadAssignmentUpsertOne {
	_c.conflict = opts
	return &LeadAssignmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeadAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadAssignmentCreate) OnConflictColumns(columns ...string) *LeadAssignmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadAssignmentUpsertOne{
		create: _c,
	}
}

type (
	// LeadAssignmentUpsertOne is the builder for "upsert"-ing
	//  one LeadAssignment node.
	LeadAssignmentUpsertOne struct {
		create *LeadAssignmentCreate
	}

	// LeadAssignmentUpsert is the "OnConflict" setter.
	LeadAssignmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetLeadID sets the "lead_id" field.
func (u *LeadAssignmentUpsert) SetLeadID(v int) *LeadAssignmentUpsert {
	u.Set(leadassignment.FieldLeadID, v)
	return u
}

// UpdateLeadID sets the "lead_id" field to the value that was provided on create.
func (u *LeadAssignmentUpsert) UpdateLeadID() *LeadAssignmentUpsert {
	u.SetExcluded(leadassignment.FieldLeadID)
	return u
}

// SetSalesPersonID sets the "sales_person_id" field.
func (u *LeadAssignmentUpsert) SetSalesPersonID(v int) *LeadAssignmentUpsert {
	u.Set(leadassignment.FieldSalesPersonID, v)
	return u
}

// UpdateSalesPersonID sets the "sales_person_id" field to the value that was provided on create.
func (u *LeadAssignmentUpsert) UpdateSalesPersonID() *LeadAssignmentUpsert {
	u.SetExcluded(leadassignment.FieldSalesPersonID)
	return u
}

// SetAssignedBy sets the "assigned_by" field.
func (u *LeadAssignmentUpsert) SetAssignedBy(v int) *LeadAssignmentUpsert {
	u.Set(leadassignment.FieldAssignedBy, v)
	return u
}

// UpdateAssignedBy sets the "assigned_by" field to the value that was provided on create.
func (u *LeadAssignmentUpsert) UpdateAssignedBy() *LeadAssignmentUpsert {
	u.SetExcluded(leadassignment.FieldAssignedBy)
	return u
}

// AddAssignedBy adds v to the "assigned_by" field.
func (u *LeadAssignmentUpsert) AddAssignedBy(v int) *LeadAssignmentUpsert {
	u.Add(leadassignment.FieldAssignedBy, v)
	return u
}

// SetStatus sets the "status" field.
func (u *LeadAssignmentUpsert) SetStatus(v leadassignment.Status) *LeadAssignmentUpsert {
	u.Set(leadassignment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeadAssignmentUpsert) UpdateStatus() *LeadAssignmentUpsert {
	u.SetExcluded(leadassignment.FieldStatus)
	return u
}

// SetNotes sets the "notes" field.
func (u *LeadAssignmentUpsert) SetNotes(v string) *LeadAssignmentUpsert {
	u.Set(leadassignment.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *LeadAssignmentUpsert) UpdateNotes() *LeadAssignmentUpsert {
	u.SetExcluded(leadassignment.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *LeadAssignmentUpsert) ClearNotes() *LeadAssignmentUpsert {
	u.SetNull(leadassignment.FieldNotes)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadAssignmentUpsert) SetUpdatedAt(v time.Time) *LeadAssignmentUpsert {
	u.Set(leadassignment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadAssignmentUpsert) UpdateUpdatedAt() *LeadAssignmentUpsert {
	u.SetExcluded(leadassignment.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LeadAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadAssignmentUpsertOne) UpdateNewValues() *LeadAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.AssignedAt(); exists {
			s.SetIgnore(leadassignment.FieldAssignedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeadAssignment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeadAssignmentUpsertOne) Ignore() *LeadAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadAssignmentUpsertOne) DoNothing() *LeadAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadAssignmentCreate.OnConflict
// documentation for more info.
func (u *LeadAssignmentUpsertOne) Update(set func(*LeadAssignmentUpsert)) *LeadAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetLeadID sets the "lead_id" field.
func (u *LeadAssignmentUpsertOne) SetLeadID(v int) *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetLeadID(v)
	})
}

// UpdateLeadID sets the "lead_id" field to the value that was provided on create.
func (u *LeadAssignmentUpsertOne) UpdateLeadID() *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateLeadID()
	})
}

// SetSalesPersonID sets the "sales_person_id" field.
func (u *LeadAssignmentUpsertOne) SetSalesPersonID(v int) *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetSalesPersonID(v)
	})
}

// UpdateSalesPersonID sets the "sales_person_id" field to the value that was provided on create.
func (u *LeadAssignmentUpsertOne) UpdateSalesPersonID() *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateSalesPersonID()
	})
}

// SetAssignedBy sets the "assigned_by" field.
func (u *LeadAssignmentUpsertOne) SetAssignedBy(v int) *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetAssignedBy(v)
	})
}

// AddAssignedBy adds v to the "assigned_by" field.
func (u *LeadAssignmentUpsertOne) AddAssignedBy(v int) *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.AddAssignedBy(v)
	})
}

// UpdateAssignedBy sets the "assigned_by" field to the value that was provided on create.
func (u *LeadAssignmentUpsertOne) UpdateAssignedBy() *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateAssignedBy()
	})
}

// SetStatus sets the "status" field.
func (u *LeadAssignmentUpsertOne) SetStatus(v leadassignment.Status) *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeadAssignmentUpsertOne) UpdateStatus() *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateStatus()
	})
}

// SetNotes sets the "notes" field.
func (u *LeadAssignmentUpsertOne) SetNotes(v string) *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *LeadAssignmentUpsertOne) UpdateNotes() *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *LeadAssignmentUpsertOne) ClearNotes() *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.ClearNotes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadAssignmentUpsertOne) SetUpdatedAt(v time.Time) *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadAssignmentUpsertOne) UpdateUpdatedAt() *LeadAssignmentUpsertOne {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadAssignmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadAssignmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadAssignmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeadAssignmentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeadAssignmentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeadAssignmentCreateBulk is the builder for creating many LeadAssignment entities in bulk.
type LeadAssignmentCreateBulk struct {
	config
	err      error
	builders []*LeadAssignmentCreate
	conflict []sql.ConflictOption
}

// Save creates the LeadAssignment entities in the database.
func (_c *LeadAssignmentCreateBulk) Save(ctx context.Context) ([]*LeadAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeadAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadAssignmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LeadAssignmentCreateBulk) SaveX(ctx context.Context) []*LeadAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeadAssignment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadAssignmentUpsert) {
//			SetLeadID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadAssignmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeadAssignmentUpsertBulk {
	_c.conflict = opts
	return &LeadAssignmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeadAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadAssignmentCreateBulk) OnConflictColumns(columns ...string) *LeadAssignmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadAssignmentUpsertBulk{
		create: _c,
	}
}

// LeadAssignmentUpsertBulk is the builder for "upsert"-ing
// a bulk of LeadAssignment nodes.
type LeadAssignmentUpsertBulk struct {
	create *LeadAssignmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LeadAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadAssignmentUpsertBulk) UpdateNewValues() *LeadAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.AssignedAt(); exists {
				s.SetIgnore(leadassignment.FieldAssignedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeadAssignment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeadAssignmentUpsertBulk) Ignore() *LeadAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadAssignmentUpsertBulk) DoNothing() *LeadAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadAssignmentCreateBulk.OnConflict
// documentation for more info.
func (u *LeadAssignmentUpsertBulk) Update(set func(*LeadAssignmentUpsert)) *LeadAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetLeadID sets the "lead_id" field.
func (u *LeadAssignmentUpsertBulk) SetLeadID(v int) *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetLeadID(v)
	})
}

// UpdateLeadID sets the "lead_id" field to the value that was provided on create.
func (u *LeadAssignmentUpsertBulk) UpdateLeadID() *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateLeadID()
	})
}

// SetSalesPersonID sets the "sales_person_id" field.
func (u *LeadAssignmentUpsertBulk) SetSalesPersonID(v int) *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetSalesPersonID(v)
	})
}

// UpdateSalesPersonID sets the "sales_person_id" field to the value that was provided on create.
func (u *LeadAssignmentUpsertBulk) UpdateSalesPersonID() *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateSalesPersonID()
	})
}

// SetAssignedBy sets the "assigned_by" field.
func (u *LeadAssignmentUpsertBulk) SetAssignedBy(v int) *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetAssignedBy(v)
	})
}

// AddAssignedBy adds v to the "assigned_by" field.
func (u *LeadAssignmentUpsertBulk) AddAssignedBy(v int) *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.AddAssignedBy(v)
	})
}

// UpdateAssignedBy sets the "assigned_by" field to the value that was provided on create.
func (u *LeadAssignmentUpsertBulk) UpdateAssignedBy() *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateAssignedBy()
	})
}

// SetStatus sets the "status" field.
func (u *LeadAssignmentUpsertBulk) SetStatus(v leadassignment.Status) *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeadAssignmentUpsertBulk) UpdateStatus() *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateStatus()
	})
}

// SetNotes sets the "notes" field.
func (u *LeadAssignmentUpsertBulk) SetNotes(v string) *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *LeadAssignmentUpsertBulk) UpdateNotes() *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *LeadAssignmentUpsertBulk) ClearNotes() *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.ClearNotes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadAssignmentUpsertBulk) SetUpdatedAt(v time.Time) *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadAssignmentUpsertBulk) UpdateUpdatedAt() *LeadAssignmentUpsertBulk {
	return u.Update(func(s *LeadAssignmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadAssignmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeadAssignmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadAssignmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadAssignmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
