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
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/thread"
	"github.com/agencydesk/agencydesk/ent/user"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskNumber sets the "task_number" field.
func (_c *TaskCreate) SetTaskNumber(v string) *TaskCreate {
	_c.mutation.SetTaskNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequirementID sets the "requirement_id" field.
func (_c *TaskCreate) SetRequirementID(v int) *TaskCreate {
	_c.mutation.SetRequirementID(v)
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *TaskCreate) SetAssignedTo(v int) *TaskCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedTo(v *int) *TaskCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *TaskCreate) SetRequestedBy(v []int) *TaskCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusManual sets the "status_manual" field.
func (_c *TaskCreate) SetStatusManual(v bool) *TaskCreate {
	_c.mutation.SetStatusManual(v)
	return _c
}

// SetNillableStatusManual sets the "status_manual" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatusManual(v *bool) *TaskCreate {
	if v != nil {
		_c.SetStatusManual(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *TaskCreate) SetProgress(v int) *TaskCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProgress(v *int) *TaskCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetSubtasks sets the "subtasks" field.
func (_c *TaskCreate) SetSubtasks(v []schema.Subtask) *TaskCreate {
	_c.mutation.SetSubtasks(v)
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *TaskCreate) SetDueDate(v time.Time) *TaskCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDueDate(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetCompletedDate sets the "completed_date" field.
func (_c *TaskCreate) SetCompletedDate(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedDate(v)
	return _c
}

// SetNillableCompletedDate sets the "completed_date" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedDate(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (_c *TaskCreate) SetRequirement(v *Requirement) *TaskCreate {
	return _c.SetRequirementID(v.ID)
}

// SetAssigneeID sets the "assignee" edge to the User entity by ID.
func (_c *TaskCreate) SetAssigneeID(id int) *TaskCreate {
	_c.mutation.SetAssigneeID(id)
	return _c
}

// SetNillableAssigneeID sets the "assignee" edge to the User entity by ID if the given value is not nil.
func (_c *TaskCreate) SetNillableAssigneeID(id *int) *TaskCreate {
	if id != nil {
		_c = _c.SetAssigneeID(*id)
	}
	return _c
}

// SetAssignee sets the "assignee" edge to the User entity.
func (_c *TaskCreate) SetAssignee(v *User) *TaskCreate {
	return _c.SetAssigneeID(v.ID)
}

// AddQueryIDs adds the "queries" edge to the Thread entity by IDs.
func (_c *TaskCreate) AddQueryIDs(ids ...int) *TaskCreate {
	_c.mutation.AddQueryIDs(ids...)
	return _c
}

// AddQueries adds the "queries" edges to the Thread entity.
func (_c *TaskCreate) AddQueries(v ...*Thread) *TaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQueryIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *TaskCreate) AddSubmissionIDs(ids ...int) *TaskCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *TaskCreate) AddSubmissions(v ...*Submission) *TaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StatusManual(); !ok {
		v := task.DefaultStatusManual
		_c.mutation.SetStatusManual(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := task.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.TaskNumber(); !ok {
		return &ValidationError{Name: "task_number", err: errors.New(`ent: missing required field "Task.task_number"`)}
	}
	if v, ok := _c.mutation.TaskNumber(); ok {
		if err := task.TaskNumberValidator(v); err != nil {
			return &ValidationError{Name: "task_number", err: fmt.Errorf(`ent: validator failed for field "Task.task_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequirementID(); !ok {
		return &ValidationError{Name: "requirement_id", err: errors.New(`ent: missing required field "Task.requirement_id"`)}
	}
	if v, ok := _c.mutation.RequirementID(); ok {
		if err := task.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "Task.requirement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusManual(); !ok {
		return &ValidationError{Name: "status_manual", err: errors.New(`ent: missing required field "Task.status_manual"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Task.progress"`)}
	}
	if v, ok := _c.mutation.Progress(); ok {
		if err := task.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Task.progress": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	if len(_c.mutation.RequirementIDs()) == 0 {
		return &ValidationError{Name: "requirement", err: errors.New(`ent: missing required edge "Task.requirement"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TaskNumber(); ok {
		_spec.SetField(task.FieldTaskNumber, field.TypeString, value)
		_node.TaskNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(task.FieldRequestedBy, field.TypeJSON, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusManual(); ok {
		_spec.SetField(task.FieldStatusManual, field.TypeBool, value)
		_node.StatusManual = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Subtasks(); ok {
		_spec.SetField(task.FieldSubtasks, field.TypeJSON, value)
		_node.Subtasks = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(task.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.CompletedDate(); ok {
		_spec.SetField(task.FieldCompletedDate, field.TypeTime, value)
		_node.CompletedDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RequirementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.RequirementTable,
			Columns: []string{task.RequirementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequirementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssigneeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssignedTo = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QueriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.QueriesTable,
			Columns: []string{task.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeInt),
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
			Table:   task.SubmissionsTable,
			Columns: []string{task.SubmissionsColumn},
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
//	client.Task.Create().
//		SetTaskNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTaskNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskNumber sets the "task_number" field.
func (u *TaskUpsert) SetTaskNumber(v string) *TaskUpsert {
	u.Set(task.FieldTaskNumber, v)
	return u
}

// UpdateTaskNumber sets the "task_number" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTaskNumber() *TaskUpsert {
	u.SetExcluded(task.FieldTaskNumber)
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsert) SetTitle(v string) *TaskUpsert {
	u.Set(task.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTitle() *TaskUpsert {
	u.SetExcluded(task.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsert) ClearDescription() *TaskUpsert {
	u.SetNull(task.FieldDescription)
	return u
}

// SetRequirementID sets the "requirement_id" field.
func (u *TaskUpsert) SetRequirementID(v int) *TaskUpsert {
	u.Set(task.FieldRequirementID, v)
	return u
}

// UpdateRequirementID sets the "requirement_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRequirementID() *TaskUpsert {
	u.SetExcluded(task.FieldRequirementID)
	return u
}

// SetAssignedTo sets the "assigned_to" field.
func (u *TaskUpsert) SetAssignedTo(v int) *TaskUpsert {
	u.Set(task.FieldAssignedTo, v)
	return u
}

// UpdateAssignedTo sets the "assigned_to" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAssignedTo() *TaskUpsert {
	u.SetExcluded(task.FieldAssignedTo)
	return u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (u *TaskUpsert) ClearAssignedTo() *TaskUpsert {
	u.SetNull(task.FieldAssignedTo)
	return u
}

// SetRequestedBy sets the "requested_by" field.
func (u *TaskUpsert) SetRequestedBy(v []int) *TaskUpsert {
	u.Set(task.FieldRequestedBy, v)
	return u
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRequestedBy() *TaskUpsert {
	u.SetExcluded(task.FieldRequestedBy)
	return u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (u *TaskUpsert) ClearRequestedBy() *TaskUpsert {
	u.SetNull(task.FieldRequestedBy)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetStatusManual sets the "status_manual" field.
func (u *TaskUpsert) SetStatusManual(v bool) *TaskUpsert {
	u.Set(task.FieldStatusManual, v)
	return u
}

// UpdateStatusManual sets the "status_manual" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatusManual() *TaskUpsert {
	u.SetExcluded(task.FieldStatusManual)
	return u
}

// SetProgress sets the "progress" field.
func (u *TaskUpsert) SetProgress(v int) *TaskUpsert {
	u.Set(task.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProgress() *TaskUpsert {
	u.SetExcluded(task.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *TaskUpsert) AddProgress(v int) *TaskUpsert {
	u.Add(task.FieldProgress, v)
	return u
}

// SetSubtasks sets the "subtasks" field.
func (u *TaskUpsert) SetSubtasks(v []schema.Subtask) *TaskUpsert {
	u.Set(task.FieldSubtasks, v)
	return u
}

// UpdateSubtasks sets the "subtasks" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSubtasks() *TaskUpsert {
	u.SetExcluded(task.FieldSubtasks)
	return u
}

// ClearSubtasks clears the value of the "subtasks" field.
func (u *TaskUpsert) ClearSubtasks() *TaskUpsert {
	u.SetNull(task.FieldSubtasks)
	return u
}

// SetDueDate sets the "due_date" field.
func (u *TaskUpsert) SetDueDate(v time.Time) *TaskUpsert {
	u.Set(task.FieldDueDate, v)
	return u
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDueDate() *TaskUpsert {
	u.SetExcluded(task.FieldDueDate)
	return u
}

// ClearDueDate clears the value of the "due_date" field.
func (u *TaskUpsert) ClearDueDate() *TaskUpsert {
	u.SetNull(task.FieldDueDate)
	return u
}

// SetCompletedDate sets the "completed_date" field.
func (u *TaskUpsert) SetCompletedDate(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedDate, v)
	return u
}

// UpdateCompletedDate sets the "completed_date" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedDate() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedDate)
	return u
}

// ClearCompletedDate clears the value of the "completed_date" field.
func (u *TaskUpsert) ClearCompletedDate() *TaskUpsert {
	u.SetNull(task.FieldCompletedDate)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskNumber sets the "task_number" field.
func (u *TaskUpsertOne) SetTaskNumber(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskNumber(v)
	})
}

// UpdateTaskNumber sets the "task_number" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTaskNumber() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskNumber()
	})
}

// SetTitle sets the "title" field.
func (u *TaskUpsertOne) SetTitle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTitle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertOne) ClearDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetRequirementID sets the "requirement_id" field.
func (u *TaskUpsertOne) SetRequirementID(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequirementID(v)
	})
}

// UpdateRequirementID sets the "requirement_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRequirementID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequirementID()
	})
}

// SetAssignedTo sets the "assigned_to" field.
func (u *TaskUpsertOne) SetAssignedTo(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedTo(v)
	})
}

// UpdateAssignedTo sets the "assigned_to" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAssignedTo() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedTo()
	})
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (u *TaskUpsertOne) ClearAssignedTo() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedTo()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *TaskUpsertOne) SetRequestedBy(v []int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRequestedBy() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequestedBy()
	})
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (u *TaskUpsertOne) ClearRequestedBy() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRequestedBy()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusManual sets the "status_manual" field.
func (u *TaskUpsertOne) SetStatusManual(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatusManual(v)
	})
}

// UpdateStatusManual sets the "status_manual" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatusManual() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatusManual()
	})
}

// SetProgress sets the "progress" field.
func (u *TaskUpsertOne) SetProgress(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *TaskUpsertOne) AddProgress(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProgress() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgress()
	})
}

// SetSubtasks sets the "subtasks" field.
func (u *TaskUpsertOne) SetSubtasks(v []schema.Subtask) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSubtasks(v)
	})
}

// UpdateSubtasks sets the "subtasks" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSubtasks() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSubtasks()
	})
}

// ClearSubtasks clears the value of the "subtasks" field.
func (u *TaskUpsertOne) ClearSubtasks() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSubtasks()
	})
}

// SetDueDate sets the "due_date" field.
func (u *TaskUpsertOne) SetDueDate(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDueDate() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *TaskUpsertOne) ClearDueDate() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDueDate()
	})
}

// SetCompletedDate sets the "completed_date" field.
func (u *TaskUpsertOne) SetCompletedDate(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedDate(v)
	})
}

// UpdateCompletedDate sets the "completed_date" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedDate() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedDate()
	})
}

// ClearCompletedDate clears the value of the "completed_date" field.
func (u *TaskUpsertOne) ClearCompletedDate() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedDate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTaskNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskNumber sets the "task_number" field.
func (u *TaskUpsertBulk) SetTaskNumber(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskNumber(v)
	})
}

// UpdateTaskNumber sets the "task_number" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTaskNumber() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskNumber()
	})
}

// SetTitle sets the "title" field.
func (u *TaskUpsertBulk) SetTitle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTitle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertBulk) ClearDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetRequirementID sets the "requirement_id" field.
func (u *TaskUpsertBulk) SetRequirementID(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequirementID(v)
	})
}

// UpdateRequirementID sets the "requirement_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRequirementID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequirementID()
	})
}

// SetAssignedTo sets the "assigned_to" field.
func (u *TaskUpsertBulk) SetAssignedTo(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedTo(v)
	})
}

// UpdateAssignedTo sets the "assigned_to" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAssignedTo() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedTo()
	})
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (u *TaskUpsertBulk) ClearAssignedTo() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedTo()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *TaskUpsertBulk) SetRequestedBy(v []int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRequestedBy() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequestedBy()
	})
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (u *TaskUpsertBulk) ClearRequestedBy() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRequestedBy()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusManual sets the "status_manual" field.
func (u *TaskUpsertBulk) SetStatusManual(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatusManual(v)
	})
}

// UpdateStatusManual sets the "status_manual" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatusManual() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatusManual()
	})
}

// SetProgress sets the "progress" field.
func (u *TaskUpsertBulk) SetProgress(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *TaskUpsertBulk) AddProgress(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProgress() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgress()
	})
}

// SetSubtasks sets the "subtasks" field.
func (u *TaskUpsertBulk) SetSubtasks(v []schema.Subtask) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSubtasks(v)
	})
}

// UpdateSubtasks sets the "subtasks" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSubtasks() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSubtasks()
	})
}

// ClearSubtasks clears the value of the "subtasks" field.
func (u *TaskUpsertBulk) ClearSubtasks() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSubtasks()
	})
}

// SetDueDate sets the "due_date" field.
func (u *TaskUpsertBulk) SetDueDate(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDueDate() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *TaskUpsertBulk) ClearDueDate() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDueDate()
	})
}

// SetCompletedDate sets the "completed_date" field.
func (u *TaskUpsertBulk) SetCompletedDate(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedDate(v)
	})
}

// UpdateCompletedDate sets the "completed_date" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedDate() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedDate()
	})
}

// ClearCompletedDate clears the value of the "completed_date" field.
func (u *TaskUpsertBulk) ClearCompletedDate() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedDate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
