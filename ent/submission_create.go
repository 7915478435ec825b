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
	"github.com/agencydesk/agencydesk/ent/feedback"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/user"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSubmissionNumber sets the "submission_number" field.
func (_c *SubmissionCreate) SetSubmissionNumber(v string) *SubmissionCreate {
	_c.mutation.SetSubmissionNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SubmissionCreate) SetTitle(v string) *SubmissionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SubmissionCreate) SetDescription(v string) *SubmissionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableDescription(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *SubmissionCreate) SetTaskID(v int) *SubmissionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetRequirementID sets the "requirement_id" field.
func (_c *SubmissionCreate) SetRequirementID(v int) *SubmissionCreate {
	_c.mutation.SetRequirementID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *SubmissionCreate) SetClientID(v int) *SubmissionCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetSubmittedBy sets the "submitted_by" field.
func (_c *SubmissionCreate) SetSubmittedBy(v int) *SubmissionCreate {
	_c.mutation.SetSubmittedBy(v)
	return _c
}

// SetDeliverables sets the "deliverables" field.
func (_c *SubmissionCreate) SetDeliverables(v []string) *SubmissionCreate {
	_c.mutation.SetDeliverables(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v submission.Status) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStatus(v *submission.Status) *SubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestedChanges sets the "requested_changes" field.
func (_c *SubmissionCreate) SetRequestedChanges(v []schema.RequestedChange) *SubmissionCreate {
	_c.mutation.SetRequestedChanges(v)
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *SubmissionCreate) SetReviewNotes(v string) *SubmissionCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableReviewNotes(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetReviewNotes(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *SubmissionCreate) SetReviewedBy(v int) *SubmissionCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableReviewedBy(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *SubmissionCreate) SetReviewedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableReviewedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetResubmissionOf sets the "resubmission_of" field.
func (_c *SubmissionCreate) SetResubmissionOf(v int) *SubmissionCreate {
	_c.mutation.SetResubmissionOf(v)
	return _c
}

// SetNillableResubmissionOf sets the "resubmission_of" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableResubmissionOf(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetResubmissionOf(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionCreate) SetUpdatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *SubmissionCreate) SetTask(v *Task) *SubmissionCreate {
	return _c.SetTaskID(v.ID)
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (_c *SubmissionCreate) SetRequirement(v *Requirement) *SubmissionCreate {
	return _c.SetRequirementID(v.ID)
}

// SetClient sets the "client" edge to the Company entity.
func (_c *SubmissionCreate) SetClient(v *Company) *SubmissionCreate {
	return _c.SetClientID(v.ID)
}

// SetSubmitterID sets the "submitter" edge to the User entity by ID.
func (_c *SubmissionCreate) SetSubmitterID(id int) *SubmissionCreate {
	_c.mutation.SetSubmitterID(id)
	return _c
}

// SetSubmitter sets the "submitter" edge to the User entity.
func (_c *SubmissionCreate) SetSubmitter(v *User) *SubmissionCreate {
	return _c.SetSubmitterID(v.ID)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_c *SubmissionCreate) AddFeedbackIDs(ids ...int) *SubmissionCreate {
	_c.mutation.AddFeedbackIDs(ids...)
	return _c
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_c *SubmissionCreate) AddFeedback(v ...*Feedback) *SubmissionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeedbackIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := submission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.SubmissionNumber(); !ok {
		return &ValidationError{Name: "submission_number", err: errors.New(`ent: missing required field "Submission.submission_number"`)}
	}
	if v, ok := _c.mutation.SubmissionNumber(); ok {
		if err := submission.SubmissionNumberValidator(v); err != nil {
			return &ValidationError{Name: "submission_number", err: fmt.Errorf(`ent: validator failed for field "Submission.submission_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Submission.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := submission.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Submission.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Submission.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := submission.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "Submission.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequirementID(); !ok {
		return &ValidationError{Name: "requirement_id", err: errors.New(`ent: missing required field "Submission.requirement_id"`)}
	}
	if v, ok := _c.mutation.RequirementID(); ok {
		if err := submission.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "Submission.requirement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "Submission.client_id"`)}
	}
	if v, ok := _c.mutation.ClientID(); ok {
		if err := submission.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Submission.client_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedBy(); !ok {
		return &ValidationError{Name: "submitted_by", err: errors.New(`ent: missing required field "Submission.submitted_by"`)}
	}
	if v, ok := _c.mutation.SubmittedBy(); ok {
		if err := submission.SubmittedByValidator(v); err != nil {
			return &ValidationError{Name: "submitted_by", err: fmt.Errorf(`ent: validator failed for field "Submission.submitted_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Submission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Submission.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Submission.task"`)}
	}
	if len(_c.mutation.RequirementIDs()) == 0 {
		return &ValidationError{Name: "requirement", err: errors.New(`ent: missing required edge "Submission.requirement"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "Submission.client"`)}
	}
	if len(_c.mutation.SubmitterIDs()) == 0 {
		return &ValidationError{Name: "submitter", err: errors.New(`ent: missing required edge "Submission.submitter"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SubmissionNumber(); ok {
		_spec.SetField(submission.FieldSubmissionNumber, field.TypeString, value)
		_node.SubmissionNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(submission.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(submission.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Deliverables(); ok {
		_spec.SetField(submission.FieldDeliverables, field.TypeJSON, value)
		_node.Deliverables = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestedChanges(); ok {
		_spec.SetField(submission.FieldRequestedChanges, field.TypeJSON, value)
		_node.RequestedChanges = value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(submission.FieldReviewNotes, field.TypeString, value)
		_node.ReviewNotes = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(submission.FieldReviewedBy, field.TypeInt, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(submission.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.ResubmissionOf(); ok {
		_spec.SetField(submission.FieldResubmissionOf, field.TypeInt, value)
		_node.ResubmissionOf = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.TaskTable,
			Columns: []string{submission.TaskColumn},
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
	if nodes := _c.mutation.RequirementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.RequirementTable,
			Columns: []string{submission.RequirementColumn},
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
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.ClientTable,
			Columns: []string{submission.ClientColumn},
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
	if nodes := _c.mutation.SubmitterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.SubmitterTable,
			Columns: []string{submission.SubmitterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubmittedBy = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeedbackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.FeedbackTable,
			Columns: []string{submission.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeInt),
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
//	client.Submission.Create().
//		SetSubmissionNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmissionUpsert) {
//			SetSubmissionNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmissionCreate) OnConflict(opts ...sql.ConflictOption) *SubmissionUpsertOne {
	_c.conflict = opts
	return &SubmissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmissionCreate) OnConflictColumns(columns ...string) *SubmissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmissionUpsertOne{
		create: _c,
	}
}

type (
	// SubmissionUpsertOne is the builder for "upsert"-ing
	//  one Submission node.
	SubmissionUpsertOne struct {
		create *SubmissionCreate
	}

	// SubmissionUpsert is the "OnConflict" setter.
	SubmissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSubmissionNumber sets the "submission_number" field.
func (u *SubmissionUpsert) SetSubmissionNumber(v string) *SubmissionUpsert {
	u.Set(submission.FieldSubmissionNumber, v)
	return u
}

// UpdateSubmissionNumber sets the "submission_number" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateSubmissionNumber() *SubmissionUpsert {
	u.SetExcluded(submission.FieldSubmissionNumber)
	return u
}

// SetTitle sets the "title" field.
func (u *SubmissionUpsert) SetTitle(v string) *SubmissionUpsert {
	u.Set(submission.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateTitle() *SubmissionUpsert {
	u.SetExcluded(submission.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *SubmissionUpsert) SetDescription(v string) *SubmissionUpsert {
	u.Set(submission.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateDescription() *SubmissionUpsert {
	u.SetExcluded(submission.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *SubmissionUpsert) ClearDescription() *SubmissionUpsert {
	u.SetNull(submission.FieldDescription)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *SubmissionUpsert) SetTaskID(v int) *SubmissionUpsert {
	u.Set(submission.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateTaskID() *SubmissionUpsert {
	u.SetExcluded(submission.FieldTaskID)
	return u
}

// SetRequirementID sets the "requirement_id" field.
func (u *SubmissionUpsert) SetRequirementID(v int) *SubmissionUpsert {
	u.Set(submission.FieldRequirementID, v)
	return u
}

// UpdateRequirementID sets the "requirement_id" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateRequirementID() *SubmissionUpsert {
	u.SetExcluded(submission.FieldRequirementID)
	return u
}

// SetClientID sets the "client_id" field.
func (u *SubmissionUpsert) SetClientID(v int) *SubmissionUpsert {
	u.Set(submission.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateClientID() *SubmissionUpsert {
	u.SetExcluded(submission.FieldClientID)
	return u
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *SubmissionUpsert) SetSubmittedBy(v int) *SubmissionUpsert {
	u.Set(submission.FieldSubmittedBy, v)
	return u
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateSubmittedBy() *SubmissionUpsert {
	u.SetExcluded(submission.FieldSubmittedBy)
	return u
}

// SetDeliverables sets the "deliverables" field.
func (u *SubmissionUpsert) SetDeliverables(v []string) *SubmissionUpsert {
	u.Set(submission.FieldDeliverables, v)
	return u
}

// UpdateDeliverables sets the "deliverables" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateDeliverables() *SubmissionUpsert {
	u.SetExcluded(submission.FieldDeliverables)
	return u
}

// ClearDeliverables clears the value of the "deliverables" field.
func (u *SubmissionUpsert) ClearDeliverables() *SubmissionUpsert {
	u.SetNull(submission.FieldDeliverables)
	return u
}

// SetStatus sets the "status" field.
func (u *SubmissionUpsert) SetStatus(v submission.Status) *SubmissionUpsert {
	u.Set(submission.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateStatus() *SubmissionUpsert {
	u.SetExcluded(submission.FieldStatus)
	return u
}

// SetRequestedChanges sets the "requested_changes" field.
func (u *SubmissionUpsert) SetRequestedChanges(v []schema.RequestedChange) *SubmissionUpsert {
	u.Set(submission.FieldRequestedChanges, v)
	return u
}

// UpdateRequestedChanges sets the "requested_changes" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateRequestedChanges() *SubmissionUpsert {
	u.SetExcluded(submission.FieldRequestedChanges)
	return u
}

// ClearRequestedChanges clears the value of the "requested_changes" field.
func (u *SubmissionUpsert) ClearRequestedChanges() *SubmissionUpsert {
	u.SetNull(submission.FieldRequestedChanges)
	return u
}

// SetReviewNotes sets the "review_notes" field.
func (u *SubmissionUpsert) SetReviewNotes(v string) *SubmissionUpsert {
	u.Set(submission.FieldReviewNotes, v)
	return u
}

// UpdateReviewNotes sets the "review_notes" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateReviewNotes() *SubmissionUpsert {
	u.SetExcluded(submission.FieldReviewNotes)
	return u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (u *SubmissionUpsert) ClearReviewNotes() *SubmissionUpsert {
	u.SetNull(submission.FieldReviewNotes)
	return u
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *SubmissionUpsert) SetReviewedBy(v int) *SubmissionUpsert {
	u.Set(submission.FieldReviewedBy, v)
	return u
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateReviewedBy() *SubmissionUpsert {
	u.SetExcluded(submission.FieldReviewedBy)
	return u
}

// AddReviewedBy adds v to the "reviewed_by" field.
func (u *SubmissionUpsert) AddReviewedBy(v int) *SubmissionUpsert {
	u.Add(submission.FieldReviewedBy, v)
	return u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *SubmissionUpsert) ClearReviewedBy() *SubmissionUpsert {
	u.SetNull(submission.FieldReviewedBy)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *SubmissionUpsert) SetReviewedAt(v time.Time) *SubmissionUpsert {
	u.Set(submission.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateReviewedAt() *SubmissionUpsert {
	u.SetExcluded(submission.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *SubmissionUpsert) ClearReviewedAt() *SubmissionUpsert {
	u.SetNull(submission.FieldReviewedAt)
	return u
}

// SetResubmissionOf sets the "resubmission_of" field.
func (u *SubmissionUpsert) SetResubmissionOf(v int) *SubmissionUpsert {
	u.Set(submission.FieldResubmissionOf, v)
	return u
}

// UpdateResubmissionOf sets the "resubmission_of" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateResubmissionOf() *SubmissionUpsert {
	u.SetExcluded(submission.FieldResubmissionOf)
	return u
}

// AddResubmissionOf adds v to the "resubmission_of" field.
func (u *SubmissionUpsert) AddResubmissionOf(v int) *SubmissionUpsert {
	u.Add(submission.FieldResubmissionOf, v)
	return u
}

// ClearResubmissionOf clears the value of the "resubmission_of" field.
func (u *SubmissionUpsert) ClearResubmissionOf() *SubmissionUpsert {
	u.SetNull(submission.FieldResubmissionOf)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubmissionUpsert) SetUpdatedAt(v time.Time) *SubmissionUpsert {
	u.Set(submission.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateUpdatedAt() *SubmissionUpsert {
	u.SetExcluded(submission.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubmissionUpsertOne) UpdateNewValues() *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(submission.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Submission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubmissionUpsertOne) Ignore() *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmissionUpsertOne) DoNothing() *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmissionCreate.OnConflict
// documentation for more info.
func (u *SubmissionUpsertOne) Update(set func(*SubmissionUpsert)) *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubmissionNumber sets the "submission_number" field.
func (u *SubmissionUpsertOne) SetSubmissionNumber(v string) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetSubmissionNumber(v)
	})
}

// UpdateSubmissionNumber sets the "submission_number" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateSubmissionNumber() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateSubmissionNumber()
	})
}

// SetTitle sets the "title" field.
func (u *SubmissionUpsertOne) SetTitle(v string) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateTitle() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *SubmissionUpsertOne) SetDescription(v string) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateDescription() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *SubmissionUpsertOne) ClearDescription() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearDescription()
	})
}

// SetTaskID sets the "task_id" field.
func (u *SubmissionUpsertOne) SetTaskID(v int) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateTaskID() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateTaskID()
	})
}

// SetRequirementID sets the "requirement_id" field.
func (u *SubmissionUpsertOne) SetRequirementID(v int) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetRequirementID(v)
	})
}

// UpdateRequirementID sets the "requirement_id" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateRequirementID() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateRequirementID()
	})
}

// SetClientID sets the "client_id" field.
func (u *SubmissionUpsertOne) SetClientID(v int) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateClientID() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateClientID()
	})
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *SubmissionUpsertOne) SetSubmittedBy(v int) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetSubmittedBy(v)
	})
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateSubmittedBy() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateSubmittedBy()
	})
}

// SetDeliverables sets the "deliverables" field.
func (u *SubmissionUpsertOne) SetDeliverables(v []string) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetDeliverables(v)
	})
}

// UpdateDeliverables sets the "deliverables" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateDeliverables() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateDeliverables()
	})
}

// ClearDeliverables clears the value of the "deliverables" field.
func (u *SubmissionUpsertOne) ClearDeliverables() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearDeliverables()
	})
}

// SetStatus sets the "status" field.
func (u *SubmissionUpsertOne) SetStatus(v submission.Status) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateStatus() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedChanges sets the "requested_changes" field.
func (u *SubmissionUpsertOne) SetRequestedChanges(v []schema.RequestedChange) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetRequestedChanges(v)
	})
}

// UpdateRequestedChanges sets the "requested_changes" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateRequestedChanges() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateRequestedChanges()
	})
}

// ClearRequestedChanges clears the value of the "requested_changes" field.
func (u *SubmissionUpsertOne) ClearRequestedChanges() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearRequestedChanges()
	})
}

// SetReviewNotes sets the "review_notes" field.
func (u *SubmissionUpsertOne) SetReviewNotes(v string) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetReviewNotes(v)
	})
}

// UpdateReviewNotes sets the "review_notes" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateReviewNotes() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateReviewNotes()
	})
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (u *SubmissionUpsertOne) ClearReviewNotes() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearReviewNotes()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *SubmissionUpsertOne) SetReviewedBy(v int) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetReviewedBy(v)
	})
}

// AddReviewedBy adds v to the "reviewed_by" field.
func (u *SubmissionUpsertOne) AddReviewedBy(v int) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.AddReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateReviewedBy() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *SubmissionUpsertOne) ClearReviewedBy() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *SubmissionUpsertOne) SetReviewedAt(v time.Time) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateReviewedAt() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *SubmissionUpsertOne) ClearReviewedAt() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearReviewedAt()
	})
}

// SetResubmissionOf sets the "resubmission_of" field.
func (u *SubmissionUpsertOne) SetResubmissionOf(v int) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetResubmissionOf(v)
	})
}

// AddResubmissionOf adds v to the "resubmission_of" field.
func (u *SubmissionUpsertOne) AddResubmissionOf(v int) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.AddResubmissionOf(v)
	})
}

// UpdateResubmissionOf sets the "resubmission_of" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateResubmissionOf() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateResubmissionOf()
	})
}

// ClearResubmissionOf clears the value of the "resubmission_of" field.
func (u *SubmissionUpsertOne) ClearResubmissionOf() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearResubmissionOf()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubmissionUpsertOne) SetUpdatedAt(v time.Time) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateUpdatedAt() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubmissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubmissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubmissionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubmissionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
	conflict []sql.ConflictOption
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Submission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmissionUpsert) {
//			SetSubmissionNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubmissionUpsertBulk {
	_c.conflict = opts
	return &SubmissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmissionCreateBulk) OnConflictColumns(columns ...string) *SubmissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmissionUpsertBulk{
		create: _c,
	}
}

// SubmissionUpsertBulk is the builder for "upsert"-ing
// a bulk of Submission nodes.
type SubmissionUpsertBulk struct {
	create *SubmissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubmissionUpsertBulk) UpdateNewValues() *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(submission.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubmissionUpsertBulk) Ignore() *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmissionUpsertBulk) DoNothing() *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmissionCreateBulk.OnConflict
// documentation for more info.
func (u *SubmissionUpsertBulk) Update(set func(*SubmissionUpsert)) *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubmissionNumber sets the "submission_number" field.
func (u *SubmissionUpsertBulk) SetSubmissionNumber(v string) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetSubmissionNumber(v)
	})
}

// UpdateSubmissionNumber sets the "submission_number" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateSubmissionNumber() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateSubmissionNumber()
	})
}

// SetTitle sets the "title" field.
func (u *SubmissionUpsertBulk) SetTitle(v string) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateTitle() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *SubmissionUpsertBulk) SetDescription(v string) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateDescription() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *SubmissionUpsertBulk) ClearDescription() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearDescription()
	})
}

// SetTaskID sets the "task_id" field.
func (u *SubmissionUpsertBulk) SetTaskID(v int) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateTaskID() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateTaskID()
	})
}

// SetRequirementID sets the "requirement_id" field.
func (u *SubmissionUpsertBulk) SetRequirementID(v int) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetRequirementID(v)
	})
}

// UpdateRequirementID sets the "requirement_id" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateRequirementID() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateRequirementID()
	})
}

// SetClientID sets the "client_id" field.
func (u *SubmissionUpsertBulk) SetClientID(v int) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateClientID() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateClientID()
	})
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *SubmissionUpsertBulk) SetSubmittedBy(v int) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetSubmittedBy(v)
	})
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateSubmittedBy() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateSubmittedBy()
	})
}

// SetDeliverables sets the "deliverables" field.
func (u *SubmissionUpsertBulk) SetDeliverables(v []string) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetDeliverables(v)
	})
}

// UpdateDeliverables sets the "deliverables" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateDeliverables() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateDeliverables()
	})
}

// ClearDeliverables clears the value of the "deliverables" field.
func (u *SubmissionUpsertBulk) ClearDeliverables() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearDeliverables()
	})
}

// SetStatus sets the "status" field.
func (u *SubmissionUpsertBulk) SetStatus(v submission.Status) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateStatus() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedChanges sets the "requested_changes" field.
func (u *SubmissionUpsertBulk) SetRequestedChanges(v []schema.RequestedChange) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetRequestedChanges(v)
	})
}

// UpdateRequestedChanges sets the "requested_changes" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateRequestedChanges() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateRequestedChanges()
	})
}

// ClearRequestedChanges clears the value of the "requested_changes" field.
func (u *SubmissionUpsertBulk) ClearRequestedChanges() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearRequestedChanges()
	})
}

// SetReviewNotes sets the "review_notes" field.
func (u *SubmissionUpsertBulk) SetReviewNotes(v string) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetReviewNotes(v)
	})
}

// UpdateReviewNotes sets the "review_notes" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateReviewNotes() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateReviewNotes()
	})
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (u *SubmissionUpsertBulk) ClearReviewNotes() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearReviewNotes()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *SubmissionUpsertBulk) SetReviewedBy(v int) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetReviewedBy(v)
	})
}

// AddReviewedBy adds v to the "reviewed_by" field.
func (u *SubmissionUpsertBulk) AddReviewedBy(v int) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.AddReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateReviewedBy() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *SubmissionUpsertBulk) ClearReviewedBy() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *SubmissionUpsertBulk) SetReviewedAt(v time.Time) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateReviewedAt() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *SubmissionUpsertBulk) ClearReviewedAt() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearReviewedAt()
	})
}

// SetResubmissionOf sets the "resubmission_of" field.
func (u *SubmissionUpsertBulk) SetResubmissionOf(v int) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetResubmissionOf(v)
	})
}

// AddResubmissionOf adds v to the "resubmission_of" field.
func (u *SubmissionUpsertBulk) AddResubmissionOf(v int) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.AddResubmissionOf(v)
	})
}

// UpdateResubmissionOf sets the "resubmission_of" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateResubmissionOf() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateResubmissionOf()
	})
}

// ClearResubmissionOf clears the value of the "resubmission_of" field.
func (u *SubmissionUpsertBulk) ClearResubmissionOf() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearResubmissionOf()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubmissionUpsertBulk) SetUpdatedAt(v time.Time) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateUpdatedAt() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubmissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubmissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubmissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
