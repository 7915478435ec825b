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
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
)

// RequirementCreate is the builder for creating a Requirement entity.
type RequirementCreate struct {
	config
	mutation *RequirementMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRequirementNumber sets the "requirement_number" field.
func (_c *RequirementCreate) SetRequirementNumber(v string) *RequirementCreate {
	_c.mutation.SetRequirementNumber(v)
	return _c
}

// SetRequirementName sets the "requirement_name" field.
func (_c *RequirementCreate) SetRequirementName(v string) *RequirementCreate {
	_c.mutation.SetRequirementName(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *RequirementCreate) SetClientID(v int) *RequirementCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RequirementCreate) SetStatus(v requirement.Status) *RequirementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableStatus(v *requirement.Status) *RequirementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssignedEmployees sets the "assigned_employees" field.
func (_c *RequirementCreate) SetAssignedEmployees(v []int) *RequirementCreate {
	_c.mutation.SetAssignedEmployees(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequirementCreate) SetCreatedAt(v time.Time) *RequirementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableCreatedAt(v *time.Time) *RequirementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequirementCreate) SetUpdatedAt(v time.Time) *RequirementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableUpdatedAt(v *time.Time) *RequirementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClient sets the "client" edge to the Company entity.
func (_c *RequirementCreate) SetClient(v *Company) *RequirementCreate {
	return _c.SetClientID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *RequirementCreate) AddTaskIDs(ids ...int) *RequirementCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *RequirementCreate) AddTasks(v ...*Task) *RequirementCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *RequirementCreate) AddSubmissionIDs(ids ...int) *RequirementCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *RequirementCreate) AddSubmissions(v ...*Submission) *RequirementCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// Mutation returns the RequirementMutation object of the builder.
func (_c *RequirementCreate) Mutation() *RequirementMutation {
	return _c.mutation
}

// Save creates the Requirement in the database.
func (_c *RequirementCreate) Save(ctx context.Context) (*Requirement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequirementCreate) SaveX(ctx context.Context) *Requirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequirementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequirementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequirementCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := requirement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requirement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := requirement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequirementCreate) check() error {
	if _, ok := _c.mutation.RequirementNumber(); !ok {
		return &ValidationError{Name: "requirement_number", err: errors.New(`ent: missing required field "Requirement.requirement_number"`)}
	}
	if v, ok := _c.mutation.RequirementNumber(); ok {
		if err := requirement.RequirementNumberValidator(v); err != nil {
			return &ValidationError{Name: "requirement_number", err: fmt.Errorf(`ent: validator failed for field "Requirement.requirement_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequirementName(); !ok {
		return &ValidationError{Name: "requirement_name", err: errors.New(`ent: missing required field "Requirement.requirement_name"`)}
	}
	if v, ok := _c.mutation.RequirementName(); ok {
		if err := requirement.RequirementNameValidator(v); err != nil {
			return &ValidationError{Name: "requirement_name", err: fmt.Errorf(`ent: validator failed for field "Requirement.requirement_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "Requirement.client_id"`)}
	}
	if v, ok := _c.mutation.ClientID(); ok {
		if err := requirement.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Requirement.client_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Requirement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := requirement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Requirement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Requirement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Requirement.updated_at"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "Requirement.client"`)}
	}
	return nil
}

func (_c *RequirementCreate) sqlSave(ctx context.Context) (*Requirement, error) {
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

func (_c *RequirementCreate) createSpec() (*Requirement, *sqlgraph.CreateSpec) {
	var (
		_node = &Requirement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requirement.Table, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.RequirementNumber(); ok {
		_spec.SetField(requirement.FieldRequirementNumber, field.TypeString, value)
		_node.RequirementNumber = value
	}
	if value, ok := _c.mutation.RequirementName(); ok {
		_spec.SetField(requirement.FieldRequirementName, field.TypeString, value)
		_node.RequirementName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(requirement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AssignedEmployees(); ok {
		_spec.SetField(requirement.FieldAssignedEmployees, field.TypeJSON, value)
		_node.AssignedEmployees = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requirement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requirement.ClientTable,
			Columns: []string{requirement.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   requirement.TasksTable,
			Columns: []string{requirement.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   requirement.SubmissionsTable,
			Columns: []string{requirement.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
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
//	client.Requirement.Create().
//		SetRequirementNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RequirementUpsert) {
//			SetRequirementNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *RequirementCreate) OnConflict(opts ...sql.ConflictOption) *RequirementUpsertOne {
	_c.conflict = opts
	return &RequirementUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Requirement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RequirementCreate) OnConflictColumns(columns ...string) *RequirementUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RequirementUpsertOne{
		create: _c,
	}
}

type (
	// RequirementUpsertOne is the builder for "upsert"-ing
	//  one Requirement node.
	RequirementUpsertOne struct {
		create *RequirementCreate
	}

	// RequirementUpsert is the "OnConflict" setter.
	RequirementUpsert struct {
		*sql.UpdateSet
	}
)

// SetRequirementNumber sets the "requirement_number" field.
func (u *RequirementUpsert) SetRequirementNumber(v string) *RequirementUpsert {
	u.Set(requirement.FieldRequirementNumber, v)
	return u
}

// UpdateRequirementNumber sets the "requirement_number" field to the value that was provided on create.
func (u *RequirementUpsert) UpdateRequirementNumber() *RequirementUpsert {
	u.SetExcluded(requirement.FieldRequirementNumber)
	return u
}

// SetRequirementName sets the "requirement_name" field.
func (u *RequirementUpsert) SetRequirementName(v string) *RequirementUpsert {
	u.Set(requirement.FieldRequirementName, v)
	return u
}

// UpdateRequirementName sets the "requirement_name" field to the value that was provided on create.
func (u *RequirementUpsert) UpdateRequirementName() *RequirementUpsert {
	u.SetExcluded(requirement.FieldRequirementName)
	return u
}

// SetClientID sets the "client_id" field.
func (u *RequirementUpsert) SetClientID(v int) *RequirementUpsert {
	u.Set(requirement.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *RequirementUpsert) UpdateClientID() *RequirementUpsert {
	u.SetExcluded(requirement.FieldClientID)
	return u
}

// SetStatus sets the "status" field.
func (u *RequirementUpsert) SetStatus(v requirement.Status) *RequirementUpsert {
	u.Set(requirement.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RequirementUpsert) UpdateStatus() *RequirementUpsert {
	u.SetExcluded(requirement.FieldStatus)
	return u
}

// SetAssignedEmployees sets the "assigned_employees" field.
func (u *RequirementUpsert) SetAssignedEmployees(v []int) *RequirementUpsert {
	u.Set(requirement.FieldAssignedEmployees, v)
	return u
}

// UpdateAssignedEmployees sets the "assigned_employees" field to the value that was provided on create.
func (u *RequirementUpsert) UpdateAssignedEmployees() *RequirementUpsert {
	u.SetExcluded(requirement.FieldAssignedEmployees)
	return u
}

// ClearAssignedEmployees clears the value of the "assigned_employees" field.
func (u *RequirementUpsert) ClearAssignedEmployees() *RequirementUpsert {
	u.SetNull(requirement.FieldAssignedEmployees)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RequirementUpsert) SetUpdatedAt(v time.Time) *RequirementUpsert {
	u.Set(requirement.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RequirementUpsert) UpdateUpdatedAt() *RequirementUpsert {
	u.SetExcluded(requirement.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Requirement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RequirementUpsertOne) UpdateNewValues() *RequirementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(requirement.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Requirement.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RequirementUpsertOne) Ignore() *RequirementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RequirementUpsertOne) DoNothing() *RequirementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RequirementCreate.OnConflict
// documentation for more info.
func (u *RequirementUpsertOne) Update(set func(*RequirementUpsert)) *RequirementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RequirementUpsert{UpdateSet: update})
	}))
	return u
}

// SetRequirementNumber sets the "requirement_number" field.
func (u *RequirementUpsertOne) SetRequirementNumber(v string) *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.SetRequirementNumber(v)
	})
}

// UpdateRequirementNumber sets the "requirement_number" field to the value that was provided on create.
func (u *RequirementUpsertOne) UpdateRequirementNumber() *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateRequirementNumber()
	})
}

// SetRequirementName sets the "requirement_name" field.
func (u *RequirementUpsertOne) SetRequirementName(v string) *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.SetRequirementName(v)
	})
}

// UpdateRequirementName sets the "requirement_name" field to the value that was provided on create.
func (u *RequirementUpsertOne) UpdateRequirementName() *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateRequirementName()
	})
}

// SetClientID sets the "client_id" field.
func (u *RequirementUpsertOne) SetClientID(v int) *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *RequirementUpsertOne) UpdateClientID() *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateClientID()
	})
}

// SetStatus sets the "status" field.
func (u *RequirementUpsertOne) SetStatus(v requirement.Status) *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RequirementUpsertOne) UpdateStatus() *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateStatus()
	})
}

// SetAssignedEmployees sets the "assigned_employees" field.
func (u *RequirementUpsertOne) SetAssignedEmployees(v []int) *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.SetAssignedEmployees(v)
	})
}

// UpdateAssignedEmployees sets the "assigned_employees" field to the value that was provided on create.
func (u *RequirementUpsertOne) UpdateAssignedEmployees() *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateAssignedEmployees()
	})
}

// ClearAssignedEmployees clears the value of the "assigned_employees" field.
func (u *RequirementUpsertOne) ClearAssignedEmployees() *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.ClearAssignedEmployees()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RequirementUpsertOne) SetUpdatedAt(v time.Time) *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RequirementUpsertOne) UpdateUpdatedAt() *RequirementUpsertOne {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RequirementUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RequirementCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RequirementUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RequirementUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RequirementUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RequirementCreateBulk is the builder for creating many Requirement entities in bulk.
type RequirementCreateBulk struct {
	config
	err      error
	builders []*RequirementCreate
	conflict []sql.ConflictOption
}

// Save creates the Requirement entities in the database.
func (_c *RequirementCreateBulk) Save(ctx context.Context) ([]*Requirement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Requirement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequirementMutation)
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
func (_c *RequirementCreateBulk) SaveX(ctx context.Context) []*Requirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequirementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequirementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Requirement.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RequirementUpsert) {
//			SetRequirementNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *RequirementCreateBulk) OnConflict(opts ...sql.ConflictOption) *RequirementUpsertBulk {
	_c.conflict = opts
	return &RequirementUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Requirement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RequirementCreateBulk) OnConflictColumns(columns ...string) *RequirementUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RequirementUpsertBulk{
		create: _c,
	}
}

// RequirementUpsertBulk is the builder for "upsert"-ing
// a bulk of Requirement nodes.
type RequirementUpsertBulk struct {
	create *RequirementCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Requirement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RequirementUpsertBulk) UpdateNewValues() *RequirementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(requirement.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Requirement.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RequirementUpsertBulk) Ignore() *RequirementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RequirementUpsertBulk) DoNothing() *RequirementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RequirementCreateBulk.OnConflict
// documentation for more info.
func (u *RequirementUpsertBulk) Update(set func(*RequirementUpsert)) *RequirementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RequirementUpsert{UpdateSet: update})
	}))
	return u
}

// SetRequirementNumber sets the "requirement_number" field.
func (u *RequirementUpsertBulk) SetRequirementNumber(v string) *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.SetRequirementNumber(v)
	})
}

// UpdateRequirementNumber sets the "requirement_number" field to the value that was provided on create.
func (u *RequirementUpsertBulk) UpdateRequirementNumber() *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateRequirementNumber()
	})
}

// SetRequirementName sets the "requirement_name" field.
func (u *RequirementUpsertBulk) SetRequirementName(v string) *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.SetRequirementName(v)
	})
}

// UpdateRequirementName sets the "requirement_name" field to the value that was provided on create.
func (u *RequirementUpsertBulk) UpdateRequirementName() *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateRequirementName()
	})
}

// SetClientID sets the "client_id" field.
func (u *RequirementUpsertBulk) SetClientID(v int) *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *RequirementUpsertBulk) UpdateClientID() *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateClientID()
	})
}

// SetStatus sets the "status" field.
func (u *RequirementUpsertBulk) SetStatus(v requirement.Status) *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RequirementUpsertBulk) UpdateStatus() *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateStatus()
	})
}

// SetAssignedEmployees sets the "assigned_employees" field.
func (u *RequirementUpsertBulk) SetAssignedEmployees(v []int) *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.SetAssignedEmployees(v)
	})
}

// UpdateAssignedEmployees sets the "assigned_employees" field to the value that was provided on create.
func (u *RequirementUpsertBulk) UpdateAssignedEmployees() *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateAssignedEmployees()
	})
}

// ClearAssignedEmployees clears the value of the "assigned_employees" field.
func (u *RequirementUpsertBulk) ClearAssignedEmployees() *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.ClearAssignedEmployees()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RequirementUpsertBulk) SetUpdatedAt(v time.Time) *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RequirementUpsertBulk) UpdateUpdatedAt() *RequirementUpsertBulk {
	return u.Update(func(s *RequirementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RequirementUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RequirementCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RequirementCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RequirementUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
