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
	"github.com/agencydesk/agencydesk/ent/user"
)

// LeadNoteCreate is the builder for creating a LeadNote entity.
type LeadNoteCreate struct {
	config
	mutation *LeadNoteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLeadID sets the "lead_id" field.
func (_c *LeadNoteCreate) SetLeadID(v int) *LeadNoteCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LeadNoteCreate) SetUserID(v int) *LeadNoteCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *LeadNoteCreate) SetContent(v string) *LeadNoteCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetIsPinned sets the "is_pinned" field.
func (_c *LeadNoteCreate) SetIsPinned(v bool) *LeadNoteCreate {
	_c.mutation.SetIsPinned(v)
	return _c
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_c *LeadNoteCreate) SetNillableIsPinned(v *bool) *LeadNoteCreate {
	if v != nil {
		_c.SetIsPinned(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadNoteCreate) SetCreatedAt(v time.Time) *LeadNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadNoteCreate) SetNillableCreatedAt(v *time.Time) *LeadNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadNoteCreate) SetUpdatedAt(v time.Time) *LeadNoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadNoteCreate) SetNillableUpdatedAt(v *time.Time) *LeadNoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *LeadNoteCreate) SetLead(v *Lead) *LeadNoteCreate {
	return _c.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *LeadNoteCreate) SetUser(v *User) *LeadNoteCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the LeadNoteMutation object of the builder.
func (_c *LeadNoteCreate) Mutation() *LeadNoteMutation {
	return _c.mutation
}

// Save creates the LeadNote in the database.
func (_c *LeadNoteCreate) Save(ctx context.Context) (*LeadNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadNoteCreate) SaveX(ctx context.Context) *LeadNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadNoteCreate) defaults() {
	if _, ok := _c.mutation.IsPinned(); !ok {
		v := leadnote.DefaultIsPinned
		_c.mutation.SetIsPinned(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := leadnote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := leadnote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadNoteCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "LeadNote.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := leadnote.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadNote.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LeadNote.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := leadnote.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadNote.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "LeadNote.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := leadnote.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "LeadNote.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPinned(); !ok {
		return &ValidationError{Name: "is_pinned", err: errors.New(`ent: missing required field "LeadNote.is_pinned"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LeadNote.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LeadNote.updated_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "LeadNote.lead"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "LeadNote.user"`)}
	}
	return nil
}

func (_c *LeadNoteCreate) sqlSave(ctx context.Context) (*LeadNote, error) {
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

func (_c *LeadNoteCreate) createSpec() (*LeadNote, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leadnote.Table, sqlgraph.NewFieldSpec(leadnote.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(leadnote.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.IsPinned(); ok {
		_spec.SetField(leadnote.FieldIsPinned, field.TypeBool, value)
		_node.IsPinned = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(leadnote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(leadnote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
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
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeadNote.Create().
//		SetLeadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadNoteUpsert) {
//			SetLeadID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadNoteCreate) OnConflict(opts ...sql.ConflictOption) *LeadNoteUpsertOne {
	_c.conflict = opts
	return &LeadNoteUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeadNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadNoteCreate) OnConflictColumns(columns ...string) *LeadNoteUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadNoteUpsertOne{
		create: _c,
	}
}

type (
	// LeadNoteUpsertOne is the builder for "upsert"-ing
	//  one LeadNote node.
	LeadNoteUpsertOne struct {
		create *LeadNoteCreate
	}

	// LeadNoteUpsert is the "OnConflict" setter.
	LeadNoteUpsert struct {
		*sql.UpdateSet
	}
)

// SetLeadID sets the "lead_id" field.
func (u *LeadNoteUpsert) SetLeadID(v int) *LeadNoteUpsert {
	u.Set(leadnote.FieldLeadID, v)
	return u
}

// UpdateLeadID sets the "lead_id" field to the value that was provided on create.
func (u *LeadNoteUpsert) UpdateLeadID() *LeadNoteUpsert {
	u.SetExcluded(leadnote.FieldLeadID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *LeadNoteUpsert) SetUserID(v int) *LeadNoteUpsert {
	u.Set(leadnote.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LeadNoteUpsert) UpdateUserID() *LeadNoteUpsert {
	u.SetExcluded(leadnote.FieldUserID)
	return u
}

// SetContent sets the "content" field.
func (u *LeadNoteUpsert) SetContent(v string) *LeadNoteUpsert {
	u.Set(leadnote.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *LeadNoteUpsert) UpdateContent() *LeadNoteUpsert {
	u.SetExcluded(leadnote.FieldContent)
	return u
}

// SetIsPinned sets the "is_pinned" field.
func (u *LeadNoteUpsert) SetIsPinned(v bool) *LeadNoteUpsert {
	u.Set(leadnote.FieldIsPinned, v)
	return u
}

// UpdateIsPinned sets the "is_pinned" field to the value that was provided on create.
func (u *LeadNoteUpsert) UpdateIsPinned() *LeadNoteUpsert {
	u.SetExcluded(leadnote.FieldIsPinned)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadNoteUpsert) SetUpdatedAt(v time.Time) *LeadNoteUpsert {
	u.Set(leadnote.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadNoteUpsert) UpdateUpdatedAt() *LeadNoteUpsert {
	u.SetExcluded(leadnote.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LeadNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadNoteUpsertOne) UpdateNewValues() *LeadNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(leadnote.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeadNote.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeadNoteUpsertOne) Ignore() *LeadNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadNoteUpsertOne) DoNothing() *LeadNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadNoteCreate.OnConflict
// documentation for more info.
func (u *LeadNoteUpsertOne) Update(set func(*LeadNoteUpsert)) *LeadNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetLeadID sets the "lead_id" field.
func (u *LeadNoteUpsertOne) SetLeadID(v int) *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetLeadID(v)
	})
}

// UpdateLeadID sets the "lead_id" field to the value that was provided on create.
func (u *LeadNoteUpsertOne) UpdateLeadID() *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateLeadID()
	})
}

// SetUserID sets the "user_id" field.
func (u *LeadNoteUpsertOne) SetUserID(v int) *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LeadNoteUpsertOne) UpdateUserID() *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateUserID()
	})
}

// SetContent sets the "content" field.
func (u *LeadNoteUpsertOne) SetContent(v string) *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *LeadNoteUpsertOne) UpdateContent() *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateContent()
	})
}

// SetIsPinned sets the "is_pinned" field.
func (u *LeadNoteUpsertOne) SetIsPinned(v bool) *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetIsPinned(v)
	})
}

// UpdateIsPinned sets the "is_pinned" field to the value that was provided on create.
func (u *LeadNoteUpsertOne) UpdateIsPinned() *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateIsPinned()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadNoteUpsertOne) SetUpdatedAt(v time.Time) *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadNoteUpsertOne) UpdateUpdatedAt() *LeadNoteUpsertOne {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadNoteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadNoteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadNoteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeadNoteUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeadNoteUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeadNoteCreateBulk is the builder for creating many LeadNote entities in bulk.
type LeadNoteCreateBulk struct {
	config
	err      error
	builders []*LeadNoteCreate
	conflict []sql.ConflictOption
}

// Save creates the LeadNote entities in the database.
func (_c *LeadNoteCreateBulk) Save(ctx context.Context) ([]*LeadNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeadNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadNoteMutation)
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
func (_c *LeadNoteCreateBulk) SaveX(ctx context.Context) []*LeadNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeadNote.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadNoteUpsert) {
//			SetLeadID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadNoteCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeadNoteUpsertBulk {
	_c.conflict = opts
	return &LeadNoteUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeadNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadNoteCreateBulk) OnConflictColumns(columns ...string) *LeadNoteUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadNoteUpsertBulk{
		create: _c,
	}
}

// LeadNoteUpsertBulk is the builder for "upsert"-ing
// a bulk of LeadNote nodes.
type LeadNoteUpsertBulk struct {
	create *LeadNoteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LeadNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadNoteUpsertBulk) UpdateNewValues() *LeadNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(leadnote.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeadNote.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeadNoteUpsertBulk) Ignore() *LeadNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadNoteUpsertBulk) DoNothing() *LeadNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadNoteCreateBulk.OnConflict
// documentation for more info.
func (u *LeadNoteUpsertBulk) Update(set func(*LeadNoteUpsert)) *LeadNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetLeadID sets the "lead_id" field.
func (u *LeadNoteUpsertBulk) SetLeadID(v int) *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetLeadID(v)
	})
}

// UpdateLeadID sets the "lead_id" field to the value that was provided on create.
func (u *LeadNoteUpsertBulk) UpdateLeadID() *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateLeadID()
	})
}

// SetUserID sets the "user_id" field.
func (u *LeadNoteUpsertBulk) SetUserID(v int) *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LeadNoteUpsertBulk) UpdateUserID() *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateUserID()
	})
}

// SetContent sets the "content" field.
func (u *LeadNoteUpsertBulk) SetContent(v string) *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *LeadNoteUpsertBulk) UpdateContent() *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateContent()
	})
}

// SetIsPinned sets the "is_pinned" field.
func (u *LeadNoteUpsertBulk) SetIsPinned(v bool) *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetIsPinned(v)
	})
}

// UpdateIsPinned sets the "is_pinned" field to the value that was provided on create.
func (u *LeadNoteUpsertBulk) UpdateIsPinned() *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateIsPinned()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadNoteUpsertBulk) SetUpdatedAt(v time.Time) *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadNoteUpsertBulk) UpdateUpdatedAt() *LeadNoteUpsertBulk {
	return u.Update(func(s *LeadNoteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadNoteUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeadNoteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadNoteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadNoteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
