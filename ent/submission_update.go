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
	"github.com/agencydesk/agencydesk/ent/feedback"
	"github.com/agencydesk/agencydesk/ent/predicate"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/user"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionNumber sets the "submission_number" field.
func (_u *SubmissionUpdate) SetSubmissionNumber(v string) *SubmissionUpdate {
	_u.mutation.SetSubmissionNumber(v)
	return _u
}

// SetNillableSubmissionNumber sets the "submission_number" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmissionNumber(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmissionNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubmissionUpdate) SetTitle(v string) *SubmissionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTitle(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubmissionUpdate) SetDescription(v string) *SubmissionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableDescription(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubmissionUpdate) ClearDescription() *SubmissionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SubmissionUpdate) SetTaskID(v int) *SubmissionUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTaskID(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetRequirementID sets the "requirement_id" field.
func (_u *SubmissionUpdate) SetRequirementID(v int) *SubmissionUpdate {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableRequirementID(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *SubmissionUpdate) SetClientID(v int) *SubmissionUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableClientID(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *SubmissionUpdate) SetSubmittedBy(v int) *SubmissionUpdate {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmittedBy(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// SetDeliverables sets the "deliverables" field.
func (_u *SubmissionUpdate) SetDeliverables(v []string) *SubmissionUpdate {
	_u.mutation.SetDeliverables(v)
	return _u
}

// AppendDeliverables appends value to the "deliverables" field.
func (_u *SubmissionUpdate) AppendDeliverables(v []string) *SubmissionUpdate {
	_u.mutation.AppendDeliverables(v)
	return _u
}

// ClearDeliverables clears the value of the "deliverables" field.
func (_u *SubmissionUpdate) ClearDeliverables() *SubmissionUpdate {
	_u.mutation.ClearDeliverables()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v submission.Status) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *submission.Status) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestedChanges sets the "requested_changes" field.
func (_u *SubmissionUpdate) SetRequestedChanges(v []schema.RequestedChange) *SubmissionUpdate {
	_u.mutation.SetRequestedChanges(v)
	return _u
}

// AppendRequestedChanges appends value to the "requested_changes" field.
func (_u *SubmissionUpdate) AppendRequestedChanges(v []schema.RequestedChange) *SubmissionUpdate {
	_u.mutation.AppendRequestedChanges(v)
	return _u
}

// ClearRequestedChanges clears the value of the "requested_changes" field.
func (_u *SubmissionUpdate) ClearRequestedChanges() *SubmissionUpdate {
	_u.mutation.ClearRequestedChanges()
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *SubmissionUpdate) SetReviewNotes(v string) *SubmissionUpdate {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableReviewNotes(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *SubmissionUpdate) ClearReviewNotes() *SubmissionUpdate {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *SubmissionUpdate) SetReviewedBy(v int) *SubmissionUpdate {
	_u.mutation.ResetReviewedBy()
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableReviewedBy(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// AddReviewedBy adds value to the "reviewed_by" field.
func (_u *SubmissionUpdate) AddReviewedBy(v int) *SubmissionUpdate {
	_u.mutation.AddReviewedBy(v)
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *SubmissionUpdate) ClearReviewedBy() *SubmissionUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *SubmissionUpdate) SetReviewedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableReviewedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *SubmissionUpdate) ClearReviewedAt() *SubmissionUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetResubmissionOf sets the "resubmission_of" field.
func (_u *SubmissionUpdate) SetResubmissionOf(v int) *SubmissionUpdate {
	_u.mutation.ResetResubmissionOf()
	_u.mutation.SetResubmissionOf(v)
	return _u
}

// SetNillableResubmissionOf sets the "resubmission_of" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableResubmissionOf(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetResubmissionOf(*v)
	}
	return _u
}

// AddResubmissionOf adds value to the "resubmission_of" field.
func (_u *SubmissionUpdate) AddResubmissionOf(v int) *SubmissionUpdate {
	_u.mutation.AddResubmissionOf(v)
	return _u
}

// ClearResubmissionOf clears the value of the "resubmission_of" field.
func (_u *SubmissionUpdate) ClearResubmissionOf() *SubmissionUpdate {
	_u.mutation.ClearResubmissionOf()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *SubmissionUpdate) SetTask(v *Task) *SubmissionUpdate {
	return _u.SetTaskID(v.ID)
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (_u *SubmissionUpdate) SetRequirement(v *Requirement) *SubmissionUpdate {
	return _u.SetRequirementID(v.ID)
}

// SetClient sets the "client" edge to the Company entity.
func (_u *SubmissionUpdate) SetClient(v *Company) *SubmissionUpdate {
	return _u.SetClientID(v.ID)
}

// SetSubmitterID sets the "submitter" edge to the User entity by ID.
func (_u *SubmissionUpdate) SetSubmitterID(id int) *SubmissionUpdate {
	_u.mutation.SetSubmitterID(id)
	return _u
}

// SetSubmitter sets the "submitter" edge to the User entity.
func (_u *SubmissionUpdate) SetSubmitter(v *User) *SubmissionUpdate {
	return _u.SetSubmitterID(v.ID)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_u *SubmissionUpdate) AddFeedbackIDs(ids ...int) *SubmissionUpdate {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_u *SubmissionUpdate) AddFeedback(v ...*Feedback) *SubmissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *SubmissionUpdate) ClearTask() *SubmissionUpdate {
	_u.mutation.ClearTask()
	return _u
}

// ClearRequirement clears the "requirement" edge to the Requirement entity.
func (_u *SubmissionUpdate) ClearRequirement() *SubmissionUpdate {
	_u.mutation.ClearRequirement()
	return _u
}

// ClearClient clears the "client" edge to the Company entity.
func (_u *SubmissionUpdate) ClearClient() *SubmissionUpdate {
	_u.mutation.ClearClient()
	return _u
}

// ClearSubmitter clears the "submitter" edge to the User entity.
func (_u *SubmissionUpdate) ClearSubmitter() *SubmissionUpdate {
	_u.mutation.ClearSubmitter()
	return _u
}

// ClearFeedback clears all "feedback" edges to the Feedback entity.
func (_u *SubmissionUpdate) ClearFeedback() *SubmissionUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to Feedback entities by IDs.
func (_u *SubmissionUpdate) RemoveFeedbackIDs(ids ...int) *SubmissionUpdate {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to Feedback entities.
func (_u *SubmissionUpdate) RemoveFeedback(v ...*Feedback) *SubmissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.SubmissionNumber(); ok {
		if err := submission.SubmissionNumberValidator(v); err != nil {
			return &ValidationError{Name: "submission_number", err: fmt.Errorf(`ent: validator failed for field "Submission.submission_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := submission.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Submission.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := submission.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "Submission.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequirementID(); ok {
		if err := submission.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "Submission.requirement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientID(); ok {
		if err := submission.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Submission.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedBy(); ok {
		if err := submission.SubmittedByValidator(v); err != nil {
			return &ValidationError{Name: "submitted_by", err: fmt.Errorf(`ent: validator failed for field "Submission.submitted_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.task"`)
	}
	if _u.mutation.RequirementCleared() && len(_u.mutation.RequirementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.requirement"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.client"`)
	}
	if _u.mutation.SubmitterCleared() && len(_u.mutation.SubmitterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.submitter"`)
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubmissionNumber(); ok {
		_spec.SetField(submission.FieldSubmissionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(submission.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(submission.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(submission.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Deliverables(); ok {
		_spec.SetField(submission.FieldDeliverables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeliverables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldDeliverables, value)
		})
	}
	if _u.mutation.DeliverablesCleared() {
		_spec.ClearField(submission.FieldDeliverables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedChanges(); ok {
		_spec.SetField(submission.FieldRequestedChanges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestedChanges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldRequestedChanges, value)
		})
	}
	if _u.mutation.RequestedChangesCleared() {
		_spec.ClearField(submission.FieldRequestedChanges, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(submission.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(submission.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(submission.FieldReviewedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewedBy(); ok {
		_spec.AddField(submission.FieldReviewedBy, field.TypeInt, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(submission.FieldReviewedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(submission.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(submission.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResubmissionOf(); ok {
		_spec.SetField(submission.FieldResubmissionOf, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResubmissionOf(); ok {
		_spec.AddField(submission.FieldResubmissionOf, field.TypeInt, value)
	}
	if _u.mutation.ResubmissionOfCleared() {
		_spec.ClearField(submission.FieldResubmissionOf, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RequirementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmitterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmitterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetSubmissionNumber sets the "submission_number" field.
func (_u *SubmissionUpdateOne) SetSubmissionNumber(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmissionNumber(v)
	return _u
}

// SetNillableSubmissionNumber sets the "submission_number" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmissionNumber(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmissionNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubmissionUpdateOne) SetTitle(v string) *SubmissionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTitle(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubmissionUpdateOne) SetDescription(v string) *SubmissionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableDescription(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubmissionUpdateOne) ClearDescription() *SubmissionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SubmissionUpdateOne) SetTaskID(v int) *SubmissionUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTaskID(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetRequirementID sets the "requirement_id" field.
func (_u *SubmissionUpdateOne) SetRequirementID(v int) *SubmissionUpdateOne {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableRequirementID(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *SubmissionUpdateOne) SetClientID(v int) *SubmissionUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableClientID(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *SubmissionUpdateOne) SetSubmittedBy(v int) *SubmissionUpdateOne {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmittedBy(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// SetDeliverables sets the "deliverables" field.
func (_u *SubmissionUpdateOne) SetDeliverables(v []string) *SubmissionUpdateOne {
	_u.mutation.SetDeliverables(v)
	return _u
}

// AppendDeliverables appends value to the "deliverables" field.
func (_u *SubmissionUpdateOne) AppendDeliverables(v []string) *SubmissionUpdateOne {
	_u.mutation.AppendDeliverables(v)
	return _u
}

// ClearDeliverables clears the value of the "deliverables" field.
func (_u *SubmissionUpdateOne) ClearDeliverables() *SubmissionUpdateOne {
	_u.mutation.ClearDeliverables()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v submission.Status) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *submission.Status) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestedChanges sets the "requested_changes" field.
func (_u *SubmissionUpdateOne) SetRequestedChanges(v []schema.RequestedChange) *SubmissionUpdateOne {
	_u.mutation.SetRequestedChanges(v)
	return _u
}

// AppendRequestedChanges appends value to the "requested_changes" field.
func (_u *SubmissionUpdateOne) AppendRequestedChanges(v []schema.RequestedChange) *SubmissionUpdateOne {
	_u.mutation.AppendRequestedChanges(v)
	return _u
}

// ClearRequestedChanges clears the value of the "requested_changes" field.
func (_u *SubmissionUpdateOne) ClearRequestedChanges() *SubmissionUpdateOne {
	_u.mutation.ClearRequestedChanges()
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *SubmissionUpdateOne) SetReviewNotes(v string) *SubmissionUpdateOne {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableReviewNotes(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *SubmissionUpdateOne) ClearReviewNotes() *SubmissionUpdateOne {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *SubmissionUpdateOne) SetReviewedBy(v int) *SubmissionUpdateOne {
	_u.mutation.ResetReviewedBy()
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableReviewedBy(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// AddReviewedBy adds value to the "reviewed_by" field.
func (_u *SubmissionUpdateOne) AddReviewedBy(v int) *SubmissionUpdateOne {
	_u.mutation.AddReviewedBy(v)
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *SubmissionUpdateOne) ClearReviewedBy() *SubmissionUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *SubmissionUpdateOne) SetReviewedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableReviewedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *SubmissionUpdateOne) ClearReviewedAt() *SubmissionUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetResubmissionOf sets the "resubmission_of" field.
func (_u *SubmissionUpdateOne) SetResubmissionOf(v int) *SubmissionUpdateOne {
	_u.mutation.ResetResubmissionOf()
	_u.mutation.SetResubmissionOf(v)
	return _u
}

// SetNillableResubmissionOf sets the "resubmission_of" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableResubmissionOf(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetResubmissionOf(*v)
	}
	return _u
}

// AddResubmissionOf adds value to the "resubmission_of" field.
func (_u *SubmissionUpdateOne) AddResubmissionOf(v int) *SubmissionUpdateOne {
	_u.mutation.AddResubmissionOf(v)
	return _u
}

// ClearResubmissionOf clears the value of the "resubmission_of" field.
func (_u *SubmissionUpdateOne) ClearResubmissionOf() *SubmissionUpdateOne {
	_u.mutation.ClearResubmissionOf()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *SubmissionUpdateOne) SetTask(v *Task) *SubmissionUpdateOne {
	return _u.SetTaskID(v.ID)
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (_u *SubmissionUpdateOne) SetRequirement(v *Requirement) *SubmissionUpdateOne {
	return _u.SetRequirementID(v.ID)
}

// SetClient sets the "client" edge to the Company entity.
func (_u *SubmissionUpdateOne) SetClient(v *Company) *SubmissionUpdateOne {
	return _u.SetClientID(v.ID)
}

// SetSubmitterID sets the "submitter" edge to the User entity by ID.
func (_u *SubmissionUpdateOne) SetSubmitterID(id int) *SubmissionUpdateOne {
	_u.mutation.SetSubmitterID(id)
	return _u
}

// SetSubmitter sets the "submitter" edge to the User entity.
func (_u *SubmissionUpdateOne) SetSubmitter(v *User) *SubmissionUpdateOne {
	return _u.SetSubmitterID(v.ID)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_u *SubmissionUpdateOne) AddFeedbackIDs(ids ...int) *SubmissionUpdateOne {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_u *SubmissionUpdateOne) AddFeedback(v ...*Feedback) *SubmissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *SubmissionUpdateOne) ClearTask() *SubmissionUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// ClearRequirement clears the "requirement" edge to the Requirement entity.
func (_u *SubmissionUpdateOne) ClearRequirement() *SubmissionUpdateOne {
	_u.mutation.ClearRequirement()
	return _u
}

// ClearClient clears the "client" edge to the Company entity.
func (_u *SubmissionUpdateOne) ClearClient() *SubmissionUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// ClearSubmitter clears the "submitter" edge to the User entity.
func (_u *SubmissionUpdateOne) ClearSubmitter() *SubmissionUpdateOne {
	_u.mutation.ClearSubmitter()
	return _u
}

// ClearFeedback clears all "feedback" edges to the Feedback entity.
func (_u *SubmissionUpdateOne) ClearFeedback() *SubmissionUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to Feedback entities by IDs.
func (_u *SubmissionUpdateOne) RemoveFeedbackIDs(ids ...int) *SubmissionUpdateOne {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to Feedback entities.
func (_u *SubmissionUpdateOne) RemoveFeedback(v ...*Feedback) *SubmissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.SubmissionNumber(); ok {
		if err := submission.SubmissionNumberValidator(v); err != nil {
			return &ValidationError{Name: "submission_number", err: fmt.Errorf(`ent: validator failed for field "Submission.submission_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := submission.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Submission.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := submission.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "Submission.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequirementID(); ok {
		if err := submission.RequirementIDValidator(v); err != nil {
			return &ValidationError{Name: "requirement_id", err: fmt.Errorf(`ent: validator failed for field "Submission.requirement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientID(); ok {
		if err := submission.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Submission.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedBy(); ok {
		if err := submission.SubmittedByValidator(v); err != nil {
			return &ValidationError{Name: "submitted_by", err: fmt.Errorf(`ent: validator failed for field "Submission.submitted_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.task"`)
	}
	if _u.mutation.RequirementCleared() && len(_u.mutation.RequirementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.requirement"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.client"`)
	}
	if _u.mutation.SubmitterCleared() && len(_u.mutation.SubmitterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.submitter"`)
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.SubmissionNumber(); ok {
		_spec.SetField(submission.FieldSubmissionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(submission.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(submission.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(submission.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Deliverables(); ok {
		_spec.SetField(submission.FieldDeliverables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeliverables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldDeliverables, value)
		})
	}
	if _u.mutation.DeliverablesCleared() {
		_spec.ClearField(submission.FieldDeliverables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedChanges(); ok {
		_spec.SetField(submission.FieldRequestedChanges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestedChanges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldRequestedChanges, value)
		})
	}
	if _u.mutation.RequestedChangesCleared() {
		_spec.ClearField(submission.FieldRequestedChanges, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(submission.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(submission.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(submission.FieldReviewedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewedBy(); ok {
		_spec.AddField(submission.FieldReviewedBy, field.TypeInt, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(submission.FieldReviewedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(submission.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(submission.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResubmissionOf(); ok {
		_spec.SetField(submission.FieldResubmissionOf, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResubmissionOf(); ok {
		_spec.AddField(submission.FieldResubmissionOf, field.TypeInt, value)
	}
	if _u.mutation.ResubmissionOfCleared() {
		_spec.ClearField(submission.FieldResubmissionOf, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RequirementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmitterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmitterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
