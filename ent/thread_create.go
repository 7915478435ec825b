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
	"github.com/agencydesk/agencydesk/ent/message"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/thread"
)

// ThreadCreate is the builder for creating a Thread entity.
type ThreadCreate struct {
	config
	mutation *ThreadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueryNumber sets the "query_number" field.
func (_c *ThreadCreate) SetQueryNumber(v string) *ThreadCreate {
	_c.mutation.SetQueryNumber(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ThreadCreate) SetTaskID(v int) *ThreadCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ThreadCreate) SetTitle(v string) *ThreadCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ThreadCreate) SetDescription(v string) *ThreadCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableDescription(v *string) *ThreadCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ThreadCreate) SetStatus(v thread.Status) *ThreadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableStatus(v *thread.Status) *ThreadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParticipants sets the "participants" field.
func (_c *ThreadCreate) SetParticipants(v []int) *ThreadCreate {
	_c.mutation.SetParticipants(v)
	return _c
}

// SetLastMessageAt sets the "last_message_at" field.
func (_c *ThreadCreate) SetLastMessageAt(v time.Time) *ThreadCreate {
	_c.mutation.SetLastMessageAt(v)
	return _c
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableLastMessageAt(v *time.Time) *ThreadCreate {
	if v != nil {
		_c.SetLastMessageAt(*v)
	}
	return _c
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (_c *ThreadCreate) SetLastMessagePreview(v string) *ThreadCreate {
	_c.mutation.SetLastMessagePreview(v)
	return _c
}

// SetNillableLastMessagePreview sets the "last_message_preview" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableLastMessagePreview(v *string) *ThreadCreate {
	if v != nil {
		_c.SetLastMessagePreview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThreadCreate) SetCreatedAt(v time.Time) *ThreadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableCreatedAt(v *time.Time) *ThreadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ThreadCreate) SetUpdatedAt(v time.Time) *ThreadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableUpdatedAt(v *time.Time) *ThreadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *ThreadCreate) SetTask(v *Task) *ThreadCreate {
	return _c.SetTaskID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ThreadCreate) AddMessageIDs(ids ...int) *ThreadCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ThreadCreate) AddMessages(v ...*Message) *ThreadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the ThreadMutation object of the builder.
func (_c *ThreadCreate) Mutation() *ThreadMutation {
	return _c.mutation
}

// Save creates the Thread in the database.
func (_c *ThreadCreate) Save(ctx context.Context) (*Thread, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThreadCreate) SaveX(ctx context.Context) *Thread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThreadCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := thread.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := thread.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := thread.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThreadCreate) check() error {
	if _, ok := _c.mutation.QueryNumber(); !ok {
		return &ValidationError{Name: "query_number", err: errors.New(`ent: missing required field "Thread.query_number"`)}
	}
	if v, ok := _c.mutation.QueryNumber(); ok {
		if err := thread.QueryNumberValidator(v); err != nil {
			return &ValidationError{Name: "query_number", err: fmt.Errorf(`ent: validator failed for field "Thread.query_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Thread.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := thread.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "Thread.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Thread.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := thread.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Thread.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Thread.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := thread.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Thread.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastMessagePreview(); ok {
		if err := thread.LastMessagePreviewValidator(v); err != nil {
			return &ValidationError{Name: "last_message_preview", err: fmt.Errorf(`ent: validator failed for field "Thread.last_message_preview": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Thread.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Thread.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Thread.task"`)}
	}
	return nil
}

func (_c *ThreadCreate) sqlSave(ctx context.Context) (*Thread, error) {
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

func (_c *ThreadCreate) createSpec() (*Thread, *sqlgraph.CreateSpec) {
	var (
		_node = &Thread{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(thread.Table, sqlgraph.NewFieldSpec(thread.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.QueryNumber(); ok {
		_spec.SetField(thread.FieldQueryNumber, field.TypeString, value)
		_node.QueryNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(thread.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(thread.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(thread.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Participants(); ok {
		_spec.SetField(thread.FieldParticipants, field.TypeJSON, value)
		_node.Participants = value
	}
	if value, ok := _c.mutation.LastMessageAt(); ok {
		_spec.SetField(thread.FieldLastMessageAt, field.TypeTime, value)
		_node.LastMessageAt = &value
	}
	if value, ok := _c.mutation.LastMessagePreview(); ok {
		_spec.SetField(thread.FieldLastMessagePreview, field.TypeString, value)
		_node.LastMessagePreview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(thread.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(thread.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   thread.TaskTable,
			Columns: []string{thread.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.MessagesTable,
			Columns: []string{thread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Thread.Create().
//		SetQueryNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadUpsert) {
//			SetQueryNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadCreate) OnConflict(opts ...sql.ConflictOption) *ThreadUpsertOne {
	_c.conflict = opts
	return &ThreadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadCreate) OnConflictColumns(columns ...string) *ThreadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadUpsertOne{
		create: _c,
	}
}

type (
	// ThreadUpsertOne is the builder for "upsert"-ing
	//  one Thread node.
	ThreadUpsertOne struct {
		create *ThreadCreate
	}

	// ThreadUpsert is the "OnConflict" setter.
	ThreadUpsert struct {
		*sql.UpdateSet
	}
)

// SetQueryNumber sets the "query_number" field.
func (u *ThreadUpsert) SetQueryNumber(v string) *ThreadUpsert {
	u.Set(thread.FieldQueryNumber, v)
	return u
}

// UpdateQueryNumber sets the "query_number" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateQueryNumber() *ThreadUpsert {
	u.SetExcluded(thread.FieldQueryNumber)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *ThreadUpsert) SetTaskID(v int) *ThreadUpsert {
	u.Set(thread.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateTaskID() *ThreadUpsert {
	u.SetExcluded(thread.FieldTaskID)
	return u
}

// SetTitle sets the "title" field.
func (u *ThreadUpsert) SetTitle(v string) *ThreadUpsert {
	u.Set(thread.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateTitle() *ThreadUpsert {
	u.SetExcluded(thread.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ThreadUpsert) SetDescription(v string) *ThreadUpsert {
	u.Set(thread.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateDescription() *ThreadUpsert {
	u.SetExcluded(thread.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ThreadUpsert) ClearDescription() *ThreadUpsert {
	u.SetNull(thread.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *ThreadUpsert) SetStatus(v thread.Status) *ThreadUpsert {
	u.Set(thread.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateStatus() *ThreadUpsert {
	u.SetExcluded(thread.FieldStatus)
	return u
}

// SetParticipants sets the "participants" field.
func (u *ThreadUpsert) SetParticipants(v []int) *ThreadUpsert {
	u.Set(thread.FieldParticipants, v)
	return u
}

// UpdateParticipants sets the "participants" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateParticipants() *ThreadUpsert {
	u.SetExcluded(thread.FieldParticipants)
	return u
}

// ClearParticipants clears the value of the "participants" field.
func (u *ThreadUpsert) ClearParticipants() *ThreadUpsert {
	u.SetNull(thread.FieldParticipants)
	return u
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ThreadUpsert) SetLastMessageAt(v time.Time) *ThreadUpsert {
	u.Set(thread.FieldLastMessageAt, v)
	return u
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateLastMessageAt() *ThreadUpsert {
	u.SetExcluded(thread.FieldLastMessageAt)
	return u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ThreadUpsert) ClearLastMessageAt() *ThreadUpsert {
	u.SetNull(thread.FieldLastMessageAt)
	return u
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (u *ThreadUpsert) SetLastMessagePreview(v string) *ThreadUpsert {
	u.Set(thread.FieldLastMessagePreview, v)
	return u
}

// UpdateLastMessagePreview sets the "last_message_preview" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateLastMessagePreview() *ThreadUpsert {
	u.SetExcluded(thread.FieldLastMessagePreview)
	return u
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (u *ThreadUpsert) ClearLastMessagePreview() *ThreadUpsert {
	u.SetNull(thread.FieldLastMessagePreview)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThreadUpsert) SetUpdatedAt(v time.Time) *ThreadUpsert {
	u.Set(thread.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateUpdatedAt() *ThreadUpsert {
	u.SetExcluded(thread.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ThreadUpsertOne) UpdateNewValues() *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(thread.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Thread.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ThreadUpsertOne) Ignore() *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadUpsertOne) DoNothing() *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadCreate.OnConflict
// documentation for more info.
func (u *ThreadUpsertOne) Update(set func(*ThreadUpsert)) *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueryNumber sets the "query_number" field.
func (u *ThreadUpsertOne) SetQueryNumber(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetQueryNumber(v)
	})
}

// UpdateQueryNumber sets the "query_number" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateQueryNumber() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateQueryNumber()
	})
}

// SetTaskID sets the "task_id" field.
func (u *ThreadUpsertOne) SetTaskID(v int) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateTaskID() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateTaskID()
	})
}

// SetTitle sets the "title" field.
func (u *ThreadUpsertOne) SetTitle(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateTitle() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ThreadUpsertOne) SetDescription(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateDescription() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ThreadUpsertOne) ClearDescription() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ThreadUpsertOne) SetStatus(v thread.Status) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateStatus() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateStatus()
	})
}

// SetParticipants sets the "participants" field.
func (u *ThreadUpsertOne) SetParticipants(v []int) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetParticipants(v)
	})
}

// UpdateParticipants sets the "participants" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateParticipants() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateParticipants()
	})
}

// ClearParticipants clears the value of the "participants" field.
func (u *ThreadUpsertOne) ClearParticipants() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearParticipants()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ThreadUpsertOne) SetLastMessageAt(v time.Time) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateLastMessageAt() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateLastMessageAt()
	})
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ThreadUpsertOne) ClearLastMessageAt() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearLastMessageAt()
	})
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (u *ThreadUpsertOne) SetLastMessagePreview(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetLastMessagePreview(v)
	})
}

// UpdateLastMessagePreview sets the "last_message_preview" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateLastMessagePreview() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateLastMessagePreview()
	})
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (u *ThreadUpsertOne) ClearLastMessagePreview() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearLastMessagePreview()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThreadUpsertOne) SetUpdatedAt(v time.Time) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateUpdatedAt() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ThreadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ThreadUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ThreadUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ThreadCreateBulk is the builder for creating many Thread entities in bulk.
type ThreadCreateBulk struct {
	config
	err      error
	builders []*ThreadCreate
	conflict []sql.ConflictOption
}

// Save creates the Thread entities in the database.
func (_c *ThreadCreateBulk) Save(ctx context.Context) ([]*Thread, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Thread, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThreadMutation)
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
func (_c *ThreadCreateBulk) SaveX(ctx context.Context) []*Thread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Thread.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadUpsert) {
//			SetQueryNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadCreateBulk) OnConflict(opts ...sql.ConflictOption) *ThreadUpsertBulk {
	_c.conflict = opts
	return &ThreadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadCreateBulk) OnConflictColumns(columns ...string) *ThreadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadUpsertBulk{
		create: _c,
	}
}

// ThreadUpsertBulk is the builder for "upsert"-ing
// a bulk of Thread nodes.
type ThreadUpsertBulk struct {
	create *ThreadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ThreadUpsertBulk) UpdateNewValues() *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(thread.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ThreadUpsertBulk) Ignore() *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadUpsertBulk) DoNothing() *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadCreateBulk.OnConflict
// documentation for more info.
func (u *ThreadUpsertBulk) Update(set func(*ThreadUpsert)) *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueryNumber sets the "query_number" field.
func (u *ThreadUpsertBulk) SetQueryNumber(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetQueryNumber(v)
	})
}

// UpdateQueryNumber sets the "query_number" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateQueryNumber() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateQueryNumber()
	})
}

// SetTaskID sets the "task_id" field.
func (u *ThreadUpsertBulk) SetTaskID(v int) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateTaskID() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateTaskID()
	})
}

// SetTitle sets the "title" field.
func (u *ThreadUpsertBulk) SetTitle(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateTitle() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ThreadUpsertBulk) SetDescription(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateDescription() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ThreadUpsertBulk) ClearDescription() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ThreadUpsertBulk) SetStatus(v thread.Status) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateStatus() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateStatus()
	})
}

// SetParticipants sets the "participants" field.
func (u *ThreadUpsertBulk) SetParticipants(v []int) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetParticipants(v)
	})
}

// UpdateParticipants sets the "participants" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateParticipants() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateParticipants()
	})
}

// ClearParticipants clears the value of the "participants" field.
func (u *ThreadUpsertBulk) ClearParticipants() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearParticipants()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ThreadUpsertBulk) SetLastMessageAt(v time.Time) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateLastMessageAt() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateLastMessageAt()
	})
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ThreadUpsertBulk) ClearLastMessageAt() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearLastMessageAt()
	})
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (u *ThreadUpsertBulk) SetLastMessagePreview(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetLastMessagePreview(v)
	})
}

// UpdateLastMessagePreview sets the "last_message_preview" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateLastMessagePreview() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateLastMessagePreview()
	})
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (u *ThreadUpsertBulk) ClearLastMessagePreview() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearLastMessagePreview()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThreadUpsertBulk) SetUpdatedAt(v time.Time) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateUpdatedAt() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ThreadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ThreadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
