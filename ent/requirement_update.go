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
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/predicate"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
)

// RequirementUpdate is the builder for updating Requirement entities.
type RequirementUpdate struct {
	config
	hooks    []Hook
	mutation *RequirementMutation
}

// Where appends a list predicates to the RequirementUpdate builder.
func (_u *RequirementUpdate) Where(ps ...predicate.Requirement) *RequirementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequirementNumber sets the "requirement_number" field.
func (_u *RequirementUpdate) SetRequirementNumber(v string) *RequirementUpdate {
	_u.mutation.SetRequirementNumber(v)
	return _u
}

// SetNillableRequirementNumber sets the "requirement_number" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableRequirementNumber(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetRequirementNumber(*v)
	}
	return _u
}

// SetRequirementName sets the "requirement_name" field.
func (_u *RequirementUpdate) SetRequirementName(v string) *RequirementUpdate {
	_u.mutation.SetRequirementName(v)
	return _u
}

// SetNillableRequirementName sets the "requirement_name" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableRequirementName(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetRequirementName(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *RequirementUpdate) SetClientID(v int) *RequirementUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableClientID(v *int) *RequirementUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequirementUpdate) SetStatus(v requirement.Status) *RequirementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableStatus(v *requirement.Status) *RequirementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedEmployees sets the "assigned_employees" field.
func (_u *RequirementUpdate) SetAssignedEmployees(v []int) *RequirementUpdate {
	_u.mutation.SetAssignedEmployees(v)
	return _u
}

// AppendAssignedEmployees appends value to the "assigned_employees" field.
func (_u *RequirementUpdate) AppendAssignedEmployees(v []int) *RequirementUpdate {
	_u.mutation.AppendAssignedEmployees(v)
	return _u
}

// ClearAssignedEmployees clears the value of the "assigned_employees" field.
func (_u *RequirementUpdate) ClearAssignedEmployees() *RequirementUpdate {
	_u.mutation.ClearAssignedEmployees()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequirementUpdate) SetUpdatedAt(v time.Time) *RequirementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClient sets the "client" edge to the Company entity.
func (_u *RequirementUpdate) SetClient(v *Company) *RequirementUpdate {
	return _u.SetClientID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *RequirementUpdate) AddTaskIDs(ids ...int) *RequirementUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *RequirementUpdate) AddTasks(v ...*Task) *RequirementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *RequirementUpdate) AddSubmissionIDs(ids ...int) *RequirementUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *RequirementUpdate) AddSubmissions(v ...*Submission) *RequirementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the RequirementMutation object of the builder.
func (_u *RequirementUpdate) Mutation() *RequirementMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Company entity.
func (_u *RequirementUpdate) ClearClient() *RequirementUpdate {
	_u.mutation.ClearClient()
	return _u
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *RequirementUpdate) ClearTasks() *RequirementUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *RequirementUpdate) RemoveTaskIDs(ids ...int) *RequirementUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *RequirementUpdate) RemoveTasks(v ...*Task) *RequirementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *RequirementUpdate) ClearSubmissions() *RequirementUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *RequirementUpdate) RemoveSubmissionIDs(ids ...int) *RequirementUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *RequirementUpdate) RemoveSubmissions(v ...*Submission) *RequirementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequirementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequirementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequirementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequirementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequirementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requirement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequirementUpdate) check() error {
	if v, ok := _u.mutation.RequirementNumber(); ok {
		if err := requirement.RequirementNumberValidator(v); err != nil {
			return &ValidationError{Name: "requirement_number", err: fmt.Errorf(`ent: validator failed for field "Requirement.requirement_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequirementName(); ok {
		if err := requirement.RequirementNameValidator(v); err != nil {
			return &ValidationError{Name: "requirement_name", err: fmt.Errorf(`ent: validator failed for field "Requirement.requirement_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientID(); ok {
		if err := requirement.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Requirement.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := requirement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Requirement.status": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Requirement.client"`)
	}
	return nil
}

func (_u *RequirementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requirement.Table, requirement.Columns, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequirementNumber(); ok {
		_spec.SetField(requirement.FieldRequirementNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequirementName(); ok {
		_spec.SetField(requirement.FieldRequirementName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requirement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedEmployees(); ok {
		_spec.SetField(requirement.FieldAssignedEmployees, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssignedEmployees(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, requirement.FieldAssignedEmployees, value)
		})
	}
	if _u.mutation.AssignedEmployeesCleared() {
		_spec.ClearField(requirement.FieldAssignedEmployees, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequirementUpdateOne is the builder for updating a single Requirement entity.
type RequirementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequirementMutation
}

// SetRequirementNumber sets the "requirement_number" field.
func (_u *RequirementUpdateOne) SetRequirementNumber(v string) *RequirementUpdateOne {
	_u.mutation.SetRequirementNumber(v)
	return _u
}

// SetNillableRequirementNumber sets the "requirement_number" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableRequirementNumber(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetRequirementNumber(*v)
	}
	return _u
}

// SetRequirementName sets the "requirement_name" field.
func (_u *RequirementUpdateOne) SetRequirementName(v string) *RequirementUpdateOne {
	_u.mutation.SetRequirementName(v)
	return _u
}

// SetNillableRequirementName sets the "requirement_name" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableRequirementName(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetRequirementName(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *RequirementUpdateOne) SetClientID(v int) *RequirementUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableClientID(v *int) *RequirementUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequirementUpdateOne) SetStatus(v requirement.Status) *RequirementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableStatus(v *requirement.Status) *RequirementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedEmployees sets the "assigned_employees" field.
func (_u *RequirementUpdateOne) SetAssignedEmployees(v []int) *RequirementUpdateOne {
	_u.mutation.SetAssignedEmployees(v)
	return _u
}

// AppendAssignedEmployees appends value to the "assigned_employees" field.
func (_u *RequirementUpdateOne) AppendAssignedEmployees(v []int) *RequirementUpdateOne {
	_u.mutation.AppendAssignedEmployees(v)
	return _u
}

// ClearAssignedEmployees clears the value of the "assigned_employees" field.
func (_u *RequirementUpdateOne) ClearAssignedEmployees() *RequirementUpdateOne {
	_u.mutation.ClearAssignedEmployees()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequirementUpdateOne) SetUpdatedAt(v time.Time) *RequirementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClient sets the "client" edge to the Company entity.
func (_u *RequirementUpdateOne) SetClient(v *Company) *RequirementUpdateOne {
	return _u.SetClientID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *RequirementUpdateOne) AddTaskIDs(ids ...int) *RequirementUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *RequirementUpdateOne) AddTasks(v ...*Task) *RequirementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *RequirementUpdateOne) AddSubmissionIDs(ids ...int) *RequirementUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *RequirementUpdateOne) AddSubmissions(v ...*Submission) *RequirementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the RequirementMutation object of the builder.
func (_u *RequirementUpdateOne) Mutation() *RequirementMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Company entity.
func (_u *RequirementUpdateOne) ClearClient() *RequirementUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *RequirementUpdateOne) ClearTasks() *RequirementUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *RequirementUpdateOne) RemoveTaskIDs(ids ...int) *RequirementUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *RequirementUpdateOne) RemoveTasks(v ...*Task) *RequirementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *RequirementUpdateOne) ClearSubmissions() *RequirementUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *RequirementUpdateOne) RemoveSubmissionIDs(ids ...int) *RequirementUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *RequirementUpdateOne) RemoveSubmissions(v ...*Submission) *RequirementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Where appends a list predicates to the RequirementUpdate builder.
func (_u *RequirementUpdateOne) Where(ps ...predicate.Requirement) *RequirementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequirementUpdateOne) Select(field string, fields ...string) *RequirementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Requirement entity.
func (_u *RequirementUpdateOne) Save(ctx context.Context) (*Requirement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequirementUpdateOne) SaveX(ctx context.Context) *Requirement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequirementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequirementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequirementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requirement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequirementUpdateOne) check() error {
	if v, ok := _u.mutation.RequirementNumber(); ok {
		if err := requirement.RequirementNumberValidator(v); err != nil {
			return &ValidationError{Name: "requirement_number", err: fmt.Errorf(`ent: validator failed for field "Requirement.requirement_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequirementName(); ok {
		if err := requirement.RequirementNameValidator(v); err != nil {
			return &ValidationError{Name: "requirement_name", err: fmt.Errorf(`ent: validator failed for field "Requirement.requirement_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientID(); ok {
		if err := requirement.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Requirement.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := requirement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Requirement.status": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Requirement.client"`)
	}
	return nil
}

func (_u *RequirementUpdateOne) sqlSave(ctx context.Context) (_node *Requirement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requirement.Table, requirement.Columns, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Requirement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requirement.FieldID)
		for _, f := range fields {
			if !requirement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requirement.FieldID {
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
	if value, ok := _u.mutation.RequirementNumber(); ok {
		_spec.SetField(requirement.FieldRequirementNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequirementName(); ok {
		_spec.SetField(requirement.FieldRequirementName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requirement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedEmployees(); ok {
		_spec.SetField(requirement.FieldAssignedEmployees, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssignedEmployees(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, requirement.FieldAssignedEmployees, value)
		})
	}
	if _u.mutation.AssignedEmployeesCleared() {
		_spec.ClearField(requirement.FieldAssignedEmployees, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Requirement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
