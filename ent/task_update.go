// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agencydesk/agencydesk/ent/predicate"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/thread"
	"github.com/agencydesk/agencydesk/ent/user"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskNumber sets the "task_number" field.
func (_u *TaskUpdate) SetTaskNumber(v string) *TaskUpdate {
	_u.mutation.SetTaskNumber(v)
	return _u
}

// SetNillableTaskNumber sets the "task_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskNumber(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTaskNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequirementID sets the "requirement_id" field.
func (_u *TaskUpdate) SetRequirementID(v int) *TaskUpdate {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRequirementID(v *int) *TaskUpdate {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *TaskUpdate) SetAssignedTo(v int) *TaskUpdate {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedTo(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *TaskUpdate) ClearAssignedTo() *TaskUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *TaskUpdate) SetRequestedBy(v []int) *TaskUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// AppendRequestedBy appends value to the "requested_by" field.
func (_u *TaskUpdate) AppendRequestedBy(v []int) *TaskUpdate {
	_u.mutation.AppendRequestedBy(v)
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *TaskUpdate) ClearRequestedBy() *TaskUpdate {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusManual sets the "status_manual" field.
func (_u *TaskUpdate) SetStatusManual(v bool) *TaskUpdate {
	_u.mutation.SetStatusManual(v)
	return _u
}

// SetNillableStatusManual sets the "status_manual" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatusManual(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetStatusManual(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdate) SetProgress(v int) *TaskUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProgress(v *int) *TaskUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdate) AddProgress(v int) *TaskUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetSubtasks sets the "subtasks" field.
func (_u *TaskUpdate) SetSubtasks(v []schema.Subtask) *TaskUpdate {
	_u.mutation.SetSubtasks(v)
	return _u
}

// AppendSubtasks appends value to the "subtasks" field.
func (_u *TaskUpdate) AppendSubtasks(v []schema.Subtask) *TaskUpdate {
	_u.mutation.AppendSubtasks(v)
	return _u
}

// ClearSubtasks clears the value of the "subtasks" field.
func (_u *TaskUpdate) ClearSubtasks() *TaskUpdate {
	_u.mutation.ClearSubtasks()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *TaskUpdate) SetDueDate(v time.Time) *TaskUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDueDate(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *TaskUpdate) ClearDueDate() *TaskUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCompletedDate sets the "completed_date" field.
func (_u *TaskUpdate) SetCompletedDate(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedDate(v)
	return _u
}

// SetNillableCompletedDate sets the "completed_date" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedDate(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedDate(*v)
	}
	return _u
}

// ClearCompletedDate clears the value of the "completed_date" field.
func (_u *TaskUpdate) ClearCompletedDate() *TaskUpdate {
	_u.mutation.ClearCompletedDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (_u *TaskUpdate) SetRequirement(v *Requirement) *TaskUpdate {
	return _u.SetRequirementID(v.ID)
}

// SetAssigneeID sets the "assignee" edge to the User entity by ID.
func (_u *TaskUpdate) SetAssigneeID(id int) *TaskUpdate {
	_u.mutation.SetAssigneeID(id)
	return _u
}

// SetNillableAssigneeID sets the "assignee" edge to the User entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssigneeID(id *int) *TaskUpdate {
	if id != nil {
		_u = _u.SetAssigneeID(*id)
	}
	return _u
}

// SetAssignee sets the "assignee" edge to the User entity.
func (_u *TaskUpdate) SetAssignee(v *User) *TaskUpdate {
	return _u.SetAssigneeID(v.ID)
}

// AddQueryIDs adds the "queries" edge to the Thread entity by IDs.
func (_u *TaskUpdate) AddQueryIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the Thread entity.
func (_u *TaskUpdate) AddQueries(v ...*Thread) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *TaskUpdate) AddSubmissionIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *TaskUpdate) AddSubmissions(v ...*Submission) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearRequirement clears the "requirement" edge to the Requirement entity.
func (_u *TaskUpdate) ClearRequirement() *TaskUpdate {
	_u.mutation.ClearRequirement()
	return _u
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (_u *TaskUpdate) ClearAssignee() *TaskUpdate {
	_u.mutation.ClearAssignee()
	return _u
}

// ClearQueries clears all "queries" edges to the Thread entity.
func (_u *TaskUpdate) ClearQueries() *TaskUpdate {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to Thread entities by IDs.
func (_u *TaskUpdate) RemoveQueryIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to Thread entities.
func (_u *TaskUpdate) RemoveQueries(v ...*Thread) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *TaskUpdate) ClearSubmissions() *TaskUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *TaskUpdate) RemoveSubmissionIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *TaskUpdate) RemoveSubmissions(v ...*Submission) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.TaskNumber(); ok {
		if err := task.TaskNumberValidator(v); err != nil {
			return &ValidationError{Name: "task_number", err: fmt.Errorf(`ent: validator failed for field "Task.task_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequirementID(); ok {
		if err := task.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "Task.requirement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := task.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Task.progress": %w`, err)}
		}
	}
	if _u.mutation.RequirementCleared() && len(_u.mutation.RequirementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.requirement"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskNumber(); ok {
		_spec.SetField(task.FieldTaskNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(task.FieldRequestedBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestedBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldRequestedBy, value)
		})
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(task.FieldRequestedBy, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusManual(); ok {
		_spec.SetField(task.FieldStatusManual, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subtasks(); ok {
		_spec.SetField(task.FieldSubtasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubtasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldSubtasks, value)
		})
	}
	if _u.mutation.SubtasksCleared() {
		_spec.ClearField(task.FieldSubtasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(task.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(task.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedDate(); ok {
		_spec.SetField(task.FieldCompletedDate, field.TypeTime, value)
	}
	if _u.mutation.CompletedDateCleared() {
		_spec.ClearField(task.FieldCompletedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequirementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssigneeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssigneeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QueriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTaskNumber sets the "task_number" field.
func (_u *TaskUpdateOne) SetTaskNumber(v string) *TaskUpdateOne {
	_u.mutation.SetTaskNumber(v)
	return _u
}

// SetNillableTaskNumber sets the "task_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskNumber(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequirementID sets the "requirement_id" field.
func (_u *TaskUpdateOne) SetRequirementID(v int) *TaskUpdateOne {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRequirementID(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *TaskUpdateOne) SetAssignedTo(v int) *TaskUpdateOne {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedTo(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *TaskUpdateOne) ClearAssignedTo() *TaskUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *TaskUpdateOne) SetRequestedBy(v []int) *TaskUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// AppendRequestedBy appends value to the "requested_by" field.
func (_u *TaskUpdateOne) AppendRequestedBy(v []int) *TaskUpdateOne {
	_u.mutation.AppendRequestedBy(v)
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *TaskUpdateOne) ClearRequestedBy() *TaskUpdateOne {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusManual sets the "status_manual" field.
func (_u *TaskUpdateOne) SetStatusManual(v bool) *TaskUpdateOne {
	_u.mutation.SetStatusManual(v)
	return _u
}

// SetNillableStatusManual sets the "status_manual" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatusManual(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetStatusManual(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdateOne) SetProgress(v int) *TaskUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProgress(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdateOne) AddProgress(v int) *TaskUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetSubtasks sets the "subtasks" field.
func (_u *TaskUpdateOne) SetSubtasks(v []schema.Subtask) *TaskUpdateOne {
	_u.mutation.SetSubtasks(v)
	return _u
}

// AppendSubtasks appends value to the "subtasks" field.
func (_u *TaskUpdateOne) AppendSubtasks(v []schema.Subtask) *TaskUpdateOne {
	_u.mutation.AppendSubtasks(v)
	return _u
}

// ClearSubtasks clears the value of the "subtasks" field.
func (_u *TaskUpdateOne) ClearSubtasks() *TaskUpdateOne {
	_u.mutation.ClearSubtasks()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *TaskUpdateOne) SetDueDate(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDueDate(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *TaskUpdateOne) ClearDueDate() *TaskUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCompletedDate sets the "completed_date" field.
func (_u *TaskUpdateOne) SetCompletedDate(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedDate(v)
	return _u
}

// SetNillableCompletedDate sets the "completed_date" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedDate(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedDate(*v)
	}
	return _u
}

// ClearCompletedDate clears the value of the "completed_date" field.
func (_u *TaskUpdateOne) ClearCompletedDate() *TaskUpdateOne {
	_u.mutation.ClearCompletedDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (_u *TaskUpdateOne) SetRequirement(v *Requirement) *TaskUpdateOne {
	return _u.SetRequirementID(v.ID)
}

// SetAssigneeID sets the "assignee" edge to the User entity by ID.
func (_u *TaskUpdateOne) SetAssigneeID(id int) *TaskUpdateOne {
	_u.mutation.SetAssigneeID(id)
	return _u
}

// SetNillableAssigneeID sets the "assignee" edge to the User entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssigneeID(id *int) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetAssigneeID(*id)
	}
	return _u
}

// SetAssignee sets the "assignee" edge to the User entity.
func (_u *TaskUpdateOne) SetAssignee(v *User) *TaskUpdateOne {
	return _u.SetAssigneeID(v.ID)
}

// AddQueryIDs adds the "queries" edge to the Thread entity by IDs.
func (_u *TaskUpdateOne) AddQueryIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the Thread entity.
func (_u *TaskUpdateOne) AddQueries(v ...*Thread) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *TaskUpdateOne) AddSubmissionIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *TaskUpdateOne) AddSubmissions(v ...*Submission) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearRequirement clears the "requirement" edge to the Requirement entity.
func (_u *TaskUpdateOne) ClearRequirement() *TaskUpdateOne {
	_u.mutation.ClearRequirement()
	return _u
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (_u *TaskUpdateOne) ClearAssignee() *TaskUpdateOne {
	_u.mutation.ClearAssignee()
	return _u
}

// ClearQueries clears all "queries" edges to the Thread entity.
func (_u *TaskUpdateOne) ClearQueries() *TaskUpdateOne {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to Thread entities by IDs.
func (_u *TaskUpdateOne) RemoveQueryIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to Thread entities.
func (_u *TaskUpdateOne) RemoveQueries(v ...*Thread) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *TaskUpdateOne) ClearSubmissions() *TaskUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *TaskUpdateOne) RemoveSubmissionIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *TaskUpdateOne) RemoveSubmissions(v ...*Submission) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskNumber(); ok {
		if err := task.TaskNumberValidator(v); err != nil {
			return &ValidationError{Name: "task_number", err: fmt.Errorf(`ent: validator failed for field "Task.task_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequirementID(); ok {
		if err := task.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "Task.requirement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := task.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Task.progress": %w`, err)}
		}
	}
	if _u.mutation.RequirementCleared() && len(_u.mutation.RequirementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.requirement"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.TaskNumber(); ok {
		_spec.SetField(task.FieldTaskNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(task.FieldRequestedBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestedBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldRequestedBy, value)
		})
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(task.FieldRequestedBy, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusManual(); ok {
		_spec.SetField(task.FieldStatusManual, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subtasks(); ok {
		_spec.SetField(task.FieldSubtasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubtasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldSubtasks, value)
		})
	}
	if _u.mutation.SubtasksCleared() {
		_spec.ClearField(task.FieldSubtasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(task.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(task.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedDate(); ok {
		_spec.SetField(task.FieldCompletedDate, field.TypeTime, value)
	}
	if _u.mutation.CompletedDateCleared() {
		_spec.ClearField(task.FieldCompletedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequirementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssigneeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssigneeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QueriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
