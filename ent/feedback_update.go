// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/feedback"
	"github.com/agencydesk/agencydesk/ent/predicate"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/user"
)

// FeedbackUpdate is the builder for updating Feedback entities.
type FeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackMutation
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (_u *FeedbackUpdate) Where(ps ...predicate.Feedback) *FeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *FeedbackUpdate) SetClientID(v int) *FeedbackUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableClientID(v *int) *FeedbackUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *FeedbackUpdate) SetAuthorID(v int) *FeedbackUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableAuthorID(v *int) *FeedbackUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *FeedbackUpdate) SetSubmissionID(v int) *FeedbackUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableSubmissionID(v *int) *FeedbackUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// ClearSubmissionID clears the value of the "submission_id" field.
func (_u *FeedbackUpdate) ClearSubmissionID() *FeedbackUpdate {
	_u.mutation.ClearSubmissionID()
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackUpdate) SetRating(v int) *FeedbackUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableRating(v *int) *FeedbackUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FeedbackUpdate) AddRating(v int) *FeedbackUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackUpdate) SetComment(v string) *FeedbackUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableComment(v *string) *FeedbackUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *FeedbackUpdate) ClearComment() *FeedbackUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *FeedbackUpdate) SetSentiment(v feedback.Sentiment) *FeedbackUpdate {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableSentiment(v *feedback.Sentiment) *FeedbackUpdate {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *FeedbackUpdate) SetIsPublic(v bool) *FeedbackUpdate {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableIsPublic(v *bool) *FeedbackUpdate {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetClient sets the "client" edge to the Company entity.
func (_u *FeedbackUpdate) SetClient(v *Company) *FeedbackUpdate {
	return _u.SetClientID(v.ID)
}

// SetAuthor sets the "author" edge to the User entity.
func (_u *FeedbackUpdate) SetAuthor(v *User) *FeedbackUpdate {
	return _u.SetAuthorID(v.ID)
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *FeedbackUpdate) SetSubmission(v *Submission) *FeedbackUpdate {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the FeedbackMutation object of the builder.
func (_u *FeedbackUpdate) Mutation() *FeedbackMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Company entity.
func (_u *FeedbackUpdate) ClearClient() *FeedbackUpdate {
	_u.mutation.ClearClient()
	return _u
}

// ClearAuthor clears the "author" edge to the User entity.
func (_u *FeedbackUpdate) ClearAuthor() *FeedbackUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *FeedbackUpdate) ClearSubmission() *FeedbackUpdate {
	_u.mutation.ClearSubmission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackUpdate) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := feedback.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Feedback.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthorID(); ok {
		if err := feedback.AuthorIDValidator(v); err != nil {
			return &ValidationError{Name: "author_id", err: fmt.Errorf(`ent: validator failed for field "Feedback.author_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Feedback.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Comment(); ok {
		if err := feedback.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "Feedback.comment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sentiment(); ok {
		if err := feedback.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "Feedback.sentiment": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feedback.client"`)
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feedback.author"`)
	}
	return nil
}

func (_u *FeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(feedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(feedback.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(feedback.FieldSentiment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(feedback.FieldIsPublic, field.TypeBool, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.ClientTable,
			Columns: []string{feedback.ClientColumn},
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
			Table:   feedback.ClientTable,
			Columns: []string{feedback.ClientColumn},
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
	if _u.mutation.AuthorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.AuthorTable,
			Columns: []string{feedback.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.AuthorTable,
			Columns: []string{feedback.AuthorColumn},
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
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.SubmissionTable,
			Columns: []string{feedback.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.SubmissionTable,
			Columns: []string{feedback.SubmissionColumn},
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
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackUpdateOne is the builder for updating a single Feedback entity.
type FeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackMutation
}

// SetClientID sets the "client_id" field.
func (_u *FeedbackUpdateOne) SetClientID(v int) *FeedbackUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableClientID(v *int) *FeedbackUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *FeedbackUpdateOne) SetAuthorID(v int) *FeedbackUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableAuthorID(v *int) *FeedbackUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *FeedbackUpdateOne) SetSubmissionID(v int) *FeedbackUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableSubmissionID(v *int) *FeedbackUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// ClearSubmissionID clears the value of the "submission_id" field.
func (_u *FeedbackUpdateOne) ClearSubmissionID() *FeedbackUpdateOne {
	_u.mutation.ClearSubmissionID()
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackUpdateOne) SetRating(v int) *FeedbackUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableRating(v *int) *FeedbackUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FeedbackUpdateOne) AddRating(v int) *FeedbackUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackUpdateOne) SetComment(v string) *FeedbackUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableComment(v *string) *FeedbackUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *FeedbackUpdateOne) ClearComment() *FeedbackUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *FeedbackUpdateOne) SetSentiment(v feedback.Sentiment) *FeedbackUpdateOne {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableSentiment(v *feedback.Sentiment) *FeedbackUpdateOne {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *FeedbackUpdateOne) SetIsPublic(v bool) *FeedbackUpdateOne {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableIsPublic(v *bool) *FeedbackUpdateOne {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetClient sets the "client" edge to the Company entity.
func (_u *FeedbackUpdateOne) SetClient(v *Company) *FeedbackUpdateOne {
	return _u.SetClientID(v.ID)
}

// SetAuthor sets the "author" edge to the User entity.
func (_u *FeedbackUpdateOne) SetAuthor(v *User) *FeedbackUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *FeedbackUpdateOne) SetSubmission(v *Submission) *FeedbackUpdateOne {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the FeedbackMutation object of the builder.
func (_u *FeedbackUpdateOne) Mutation() *FeedbackMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Company entity.
func (_u *FeedbackUpdateOne) ClearClient() *FeedbackUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// ClearAuthor clears the "author" edge to the User entity.
func (_u *FeedbackUpdateOne) ClearAuthor() *FeedbackUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *FeedbackUpdateOne) ClearSubmission() *FeedbackUpdateOne {
	_u.mutation.ClearSubmission()
	return _u
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (_u *FeedbackUpdateOne) Where(ps ...predicate.Feedback) *FeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackUpdateOne) Select(field string, fields ...string) *FeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Feedback entity.
func (_u *FeedbackUpdateOne) Save(ctx context.Context) (*Feedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackUpdateOne) SaveX(ctx context.Context) *Feedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackUpdateOne) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := feedback.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Feedback.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthorID(); ok {
		if err := feedback.AuthorIDValidator(v); err != nil {
			return &ValidationError{Name: "author_id", err: fmt.Errorf(`ent: validator failed for field "Feedback.author_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Feedback.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Comment(); ok {
		if err := feedback.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "Feedback.comment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sentiment(); ok {
		if err := feedback.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "Feedback.sentiment": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feedback.client"`)
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feedback.author"`)
	}
	return nil
}

func (_u *FeedbackUpdateOne) sqlSave(ctx context.Context) (_node *Feedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedback.FieldID)
		for _, f := range fields {
			if !feedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedback.FieldID {
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
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(feedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(feedback.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(feedback.FieldSentiment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(feedback.FieldIsPublic, field.TypeBool, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.ClientTable,
			Columns: []string{feedback.ClientColumn},
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
			Table:   feedback.ClientTable,
			Columns: []string{feedback.ClientColumn},
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
	if _u.mutation.AuthorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.AuthorTable,
			Columns: []string{feedback.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.AuthorTable,
			Columns: []string{feedback.AuthorColumn},
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
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.SubmissionTable,
			Columns: []string{feedback.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.SubmissionTable,
			Columns: []string{feedback.SubmissionColumn},
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
	_node = &Feedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
