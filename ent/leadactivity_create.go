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
	"github.com/agencydesk/agencydesk/ent/leadactivity"
	"github.com/agencydesk/agencydesk/ent/user"
)

// LeadActivityCreate is the builder for creating a LeadActivity entity.
type LeadActivityCreate struct {
	config
	mutation *LeadActivityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLeadID sets the "lead_id" field.
func (_c *LeadActivityCreate) SetLeadID(v int) *LeadActivityCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LeadActivityCreate) SetUserID(v int) *LeadActivityCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *LeadActivityCreate) SetType(v leadactivity.Type) *LeadActivityCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *LeadActivityCreate) SetDetail(v string) *LeadActivityCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *LeadActivityCreate) SetNillableDetail(v *string) *LeadActivityCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *LeadActivityCreate) SetMetadata(v map[string]interface{}) *LeadActivityCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadActivityCreate) SetCreatedAt(v time.Time) *LeadActivityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadActivityCreate) SetNillableCreatedAt(v *time.Time) *LeadActivityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *LeadActivityCreate) SetLead(v *Lead) *LeadActivityCreate {
	return _c.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *LeadActivityCreate) SetUser(v *User) *LeadActivityCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the LeadActivityMutation object of the builder.
func (_c *LeadActivityCreate) Mutation() *LeadActivityMutation {
	return _c.mutation
}

// Save creates the LeadActivity in the database.
func (_c *LeadActivityCreate) Save(ctx context.Context) (*LeadActivity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadActivityCreate) SaveX(ctx context.Context) *LeadActivity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadActivityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadActivityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadActivityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := leadactivity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadActivityCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "LeadActivity.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := leadactivity.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LeadActivity.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := leadactivity.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "LeadActivity.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := leadactivity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Detail(); ok {
		if err := leadactivity.DetailValidator(v); err != nil {
			return &ValidationError{Name: "detail", err: fmt.Errorf(`ent: validator failed for field "LeadActivity.detail": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LeadActivity.created_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "LeadActivity.lead"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "LeadActivity.user"`)}
	}
	return nil
}

func (_c *LeadActivityCreate) sqlSave(ctx context.Context) (*LeadActivity, error) {
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

func (_c *LeadActivityCreate) createSpec() (*LeadActivity, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadActivity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leadactivity.Table, sqlgraph.NewFieldSpec(leadactivity.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(leadactivity.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(leadactivity.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(leadactivity.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(leadactivity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
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
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeadActivity.Create().
//		SetLeadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadActivityUpsert) {
//			SetLeadID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadActivityCreate) OnConflict(opts ...sql.ConflictOption) *LeadActivityUpsertOne {
	_c.conflict = opts
	return &LeadActivityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeadActivity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadActivityCreate) OnConflictColumns(columns ...string) *LeadActivityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadActivityUpsertOne{
		create: _c,
	}
}

type (
	// LeadActivityUpsertOne is the builder for "upsert"-ing
	//  one LeadActivity node.
	LeadActivityUpsertOne struct {
		create *LeadActivityCreate
	}

	// LeadActivityUpsert is the "OnConflict" setter.
	LeadActivityUpsert struct {
		*sql.UpdateSet
	}
)

// SetLeadID sets the "lead_id" field.
func (u *LeadActivityUpsert) SetLeadID(v int) *LeadActivityUpsert {
	u.Set(leadactivity.FieldLeadID, v)
	return u
}

// UpdateLeadID sets the "lead_id" field to the value that was provided on create.
func (u *LeadActivityUpsert) UpdateLeadID() *LeadActivityUpsert {
	u.SetExcluded(leadactivity.FieldLeadID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *LeadActivityUpsert) SetUserID(v int) *LeadActivityUpsert {
	u.Set(leadactivity.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LeadActivityUpsert) UpdateUserID() *LeadActivityUpsert {
	u.SetExcluded(leadactivity.FieldUserID)
	return u
}

// SetType sets the "type" field.
func (u *LeadActivityUpsert) SetType(v leadactivity.Type) *LeadActivityUpsert {
	u.Set(leadactivity.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *LeadActivityUpsert) UpdateType() *LeadActivityUpsert {
	u.SetExcluded(leadactivity.FieldType)
	return u
}

// SetDetail sets the "detail" field.
func (u *LeadActivityUpsert) SetDetail(v string) *LeadActivityUpsert {
	u.Set(leadactivity.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *LeadActivityUpsert) UpdateDetail() *LeadActivityUpsert {
	u.SetExcluded(leadactivity.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *LeadActivityUpsert) ClearDetail() *LeadActivityUpsert {
	u.SetNull(leadactivity.FieldDetail)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *LeadActivityUpsert) SetMetadata(v map[string]interface{}) *LeadActivityUpsert {
	u.Set(leadactivity.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LeadActivityUpsert) UpdateMetadata() *LeadActivityUpsert {
	u.SetExcluded(leadactivity.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LeadActivityUpsert) ClearMetadata() *LeadActivityUpsert {
	u.SetNull(leadactivity.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LeadActivity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadActivityUpsertOne) UpdateNewValues() *LeadActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(leadactivity.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeadActivity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeadActivityUpsertOne) Ignore() *LeadActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadActivityUpsertOne) DoNothing() *LeadActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadActivityCreate.OnConflict
// documentation for more info.
func (u *LeadActivityUpsertOne) Update(set func(*LeadActivityUpsert)) *LeadActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadActivityUpsert{UpdateSet: update})
	}))
	return u
}

// SetLeadID sets the "lead_id" field.
func (u *LeadActivityUpsertOne) SetLeadID(v int) *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetLeadID(v)
	})
}

// UpdateLeadID sets the "lead_id" field to the value that was provided on create.
func (u *LeadActivityUpsertOne) UpdateLeadID() *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateLeadID()
	})
}

// SetUserID sets the "user_id" field.
func (u *LeadActivityUpsertOne) SetUserID(v int) *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LeadActivityUpsertOne) UpdateUserID() *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateUserID()
	})
}

// SetType sets the "type" field.
func (u *LeadActivityUpsertOne) SetType(v leadactivity.Type) *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *LeadActivityUpsertOne) UpdateType() *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateType()
	})
}

// SetDetail sets the "detail" field.
func (u *LeadActivityUpsertOne) SetDetail(v string) *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *LeadActivityUpsertOne) UpdateDetail() *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *LeadActivityUpsertOne) ClearDetail() *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.ClearDetail()
	})
}

// SetMetadata sets the "metadata" field.
func (u *LeadActivityUpsertOne) SetMetadata(v map[string]interface{}) *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LeadActivityUpsertOne) UpdateMetadata() *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LeadActivityUpsertOne) ClearMetadata() *LeadActivityUpsertOne {
	return u.Update(func(s *LeadActivityUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *LeadActivityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadActivityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadActivityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeadActivityUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeadActivityUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeadActivityCreateBulk is the builder for creating many LeadActivity entities in bulk.
type LeadActivityCreateBulk struct {
	config
	err      error
	builders []*LeadActivityCreate
	conflict []sql.ConflictOption
}

// Save creates the LeadActivity entities in the database.
func (_c *LeadActivityCreateBulk) Save(ctx context.Context) ([]*LeadActivity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeadActivity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadActivityMutation)
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
func (_c *LeadActivityCreateBulk) SaveX(ctx context.Context) []*LeadActivity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadActivityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadActivityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeadActivity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadActivityUpsert) {
//			SetLeadID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadActivityCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeadActivityUpsertBulk {
	_c.conflict = opts
	return &LeadActivityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeadActivity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadActivityCreateBulk) OnConflictColumns(columns ...string) *LeadActivityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadActivityUpsertBulk{
		create: _c,
	}
}

// LeadActivityUpsertBulk is the builder for "upsert"-ing
// a bulk of LeadActivity nodes.
type LeadActivityUpsertBulk struct {
	create *LeadActivityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LeadActivity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadActivityUpsertBulk) UpdateNewValues() *LeadActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(leadactivity.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeadActivity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeadActivityUpsertBulk) Ignore() *LeadActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadActivityUpsertBulk) DoNothing() *LeadActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadActivityCreateBulk.OnConflict
// documentation for more info.
func (u *LeadActivityUpsertBulk) Update(set func(*LeadActivityUpsert)) *LeadActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadActivityUpsert{UpdateSet: update})
	}))
	return u
}

// SetLeadID sets the "lead_id" field.
func (u *LeadActivityUpsertBulk) SetLeadID(v int) *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetLeadID(v)
	})
}

// UpdateLeadID sets the "lead_id" field to the value that was provided on create.
func (u *LeadActivityUpsertBulk) UpdateLeadID() *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateLeadID()
	})
}

// SetUserID sets the "user_id" field.
func (u *LeadActivityUpsertBulk) SetUserID(v int) *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LeadActivityUpsertBulk) UpdateUserID() *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateUserID()
	})
}

// SetType sets the "type" field.
func (u *LeadActivityUpsertBulk) SetType(v leadactivity.Type) *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *LeadActivityUpsertBulk) UpdateType() *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateType()
	})
}

// SetDetail sets the "detail" field.
func (u *LeadActivityUpsertBulk) SetDetail(v string) *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *LeadActivityUpsertBulk) UpdateDetail() *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *LeadActivityUpsertBulk) ClearDetail() *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.ClearDetail()
	})
}

// SetMetadata sets the "metadata" field.
func (u *LeadActivityUpsertBulk) SetMetadata(v map[string]interface{}) *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LeadActivityUpsertBulk) UpdateMetadata() *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LeadActivityUpsertBulk) ClearMetadata() *LeadActivityUpsertBulk {
	return u.Update(func(s *LeadActivityUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *LeadActivityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeadActivityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadActivityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadActivityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
