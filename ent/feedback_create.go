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
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/user"
)

// FeedbackCreate is the builder for creating a Feedback entity.
type FeedbackCreate struct {
	config
	mutation *FeedbackMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetClientID sets the "client_id" field.
func (_c *FeedbackCreate) SetClientID(v int) *FeedbackCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *FeedbackCreate) SetAuthorID(v int) *FeedbackCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetSubmissionID sets the "submission_id" field.
func (_c *FeedbackCreate) SetSubmissionID(v int) *FeedbackCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableSubmissionID(v *int) *FeedbackCreate {
	if v != nil {
		_c.SetSubmissionID(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *FeedbackCreate) SetRating(v int) *FeedbackCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *FeedbackCreate) SetComment(v string) *FeedbackCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableComment(v *string) *FeedbackCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetSentiment sets the "sentiment" field.
func (_c *FeedbackCreate) SetSentiment(v feedback.Sentiment) *FeedbackCreate {
	_c.mutation.SetSentiment(v)
	return _c
}

// SetIsPublic sets the "is_public" field.
func (_c *FeedbackCreate) SetIsPublic(v bool) *FeedbackCreate {
	_c.mutation.SetIsPublic(v)
	return _c
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableIsPublic(v *bool) *FeedbackCreate {
	if v != nil {
		_c.SetIsPublic(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackCreate) SetCreatedAt(v time.Time) *FeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableCreatedAt(v *time.Time) *FeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClient sets the "client" edge to the Company entity.
func (_c *FeedbackCreate) SetClient(v *Company) *FeedbackCreate {
	return _c.SetClientID(v.ID)
}

// SetAuthor sets the "author" edge to the User entity.
func (_c *FeedbackCreate) SetAuthor(v *User) *FeedbackCreate {
	return _c.SetAuthorID(v.ID)
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *FeedbackCreate) SetSubmission(v *Submission) *FeedbackCreate {
	return _c.SetSubmissionID(v.ID)
}

// Mutation returns the FeedbackMutation object of the builder.
func (_c *FeedbackCreate) Mutation() *FeedbackMutation {
	return _c.mutation
}

// Save creates the Feedback in the database.
func (_c *FeedbackCreate) Save(ctx context.Context) (*Feedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackCreate) SaveX(ctx context.Context) *Feedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackCreate) defaults() {
	if _, ok := _c.mutation.IsPublic(); !ok {
		v := feedback.DefaultIsPublic
		_c.mutation.SetIsPublic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackCreate) check() error {
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "Feedback.client_id"`)}
	}
	if v, ok := _c.mutation.ClientID(); ok {
		if err := feedback.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Feedback.client_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "Feedback.author_id"`)}
	}
	if v, ok := _c.mutation.AuthorID(); ok {
		if err := feedback.AuthorIDValidator(v); err != nil {
			return &ValidationError{Name: "author_id", err: fmt.Errorf(`ent: validator failed for field "Feedback.author_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "Feedback.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := feedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Feedback.rating": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Comment(); ok {
		if err := feedback.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "Feedback.comment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sentiment(); !ok {
		return &ValidationError{Name: "sentiment", err: errors.New(`ent: missing required field "Feedback.sentiment"`)}
	}
	if v, ok := _c.mutation.Sentiment(); ok {
		if err := feedback.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "Feedback.sentiment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		return &ValidationError{Name: "is_public", err: errors.New(`ent: missing required field "Feedback.is_public"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Feedback.created_at"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "Feedback.client"`)}
	}
	if len(_c.mutation.AuthorIDs()) == 0 {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required edge "Feedback.author"`)}
	}
	return nil
}

func (_c *FeedbackCreate) sqlSave(ctx context.Context) (*Feedback, error) {
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

func (_c *FeedbackCreate) createSpec() (*Feedback, *sqlgraph.CreateSpec) {
	var (
		_node = &Feedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedback.Table, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(feedback.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(feedback.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.Sentiment(); ok {
		_spec.SetField(feedback.FieldSentiment, field.TypeEnum, value)
		_node.Sentiment = value
	}
	if value, ok := _c.mutation.IsPublic(); ok {
		_spec.SetField(feedback.FieldIsPublic, field.TypeBool, value)
		_node.IsPublic = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
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
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_node.AuthorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_node.SubmissionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Feedback.Create().
//		SetClientID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedbackUpsert) {
//			SetClientID(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedbackCreate) OnConflict(opts ...sql.ConflictOption) *FeedbackUpsertOne {
	_c.conflict = opts
	return &FeedbackUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedbackCreate) OnConflictColumns(columns ...string) *FeedbackUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedbackUpsertOne{
		create: _c,
	}
}

type (
	// FeedbackUpsertOne is the builder for "upsert"-ing
	//  one Feedback node.
	FeedbackUpsertOne struct {
		create *FeedbackCreate
	}

	// FeedbackUpsert is the "OnConflict" setter.
	FeedbackUpsert struct {
		*sql.UpdateSet
	}
)

// SetClientID sets the "client_id" field.
func (u *FeedbackUpsert) SetClientID(v int) *FeedbackUpsert {
	u.Set(feedback.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateClientID() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldClientID)
	return u
}

// SetAuthorID sets the "author_id" field.
func (u *FeedbackUpsert) SetAuthorID(v int) *FeedbackUpsert {
	u.Set(feedback.FieldAuthorID, v)
	return u
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateAuthorID() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldAuthorID)
	return u
}

// SetSubmissionID sets the "submission_id" field.
func (u *FeedbackUpsert) SetSubmissionID(v int) *FeedbackUpsert {
	u.Set(feedback.FieldSubmissionID, v)
	return u
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateSubmissionID() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldSubmissionID)
	return u
}

// ClearSubmissionID clears the value of the "submission_id" field.
func (u *FeedbackUpsert) ClearSubmissionID() *FeedbackUpsert {
	u.SetNull(feedback.FieldSubmissionID)
	return u
}

// SetRating sets the "rating" field.
func (u *FeedbackUpsert) SetRating(v int) *FeedbackUpsert {
	u.Set(feedback.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateRating() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *FeedbackUpsert) AddRating(v int) *FeedbackUpsert {
	u.Add(feedback.FieldRating, v)
	return u
}

// SetComment sets the "comment" field.
func (u *FeedbackUpsert) SetComment(v string) *FeedbackUpsert {
	u.Set(feedback.FieldComment, v)
	return u
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateComment() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldComment)
	return u
}

// ClearComment clears the value of the "comment" field.
func (u *FeedbackUpsert) ClearComment() *FeedbackUpsert {
	u.SetNull(feedback.FieldComment)
	return u
}

// SetSentiment sets the "sentiment" field.
func (u *FeedbackUpsert) SetSentiment(v feedback.Sentiment) *FeedbackUpsert {
	u.Set(feedback.FieldSentiment, v)
	return u
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateSentiment() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldSentiment)
	return u
}

// SetIsPublic sets the "is_public" field.
func (u *FeedbackUpsert) SetIsPublic(v bool) *FeedbackUpsert {
	u.Set(feedback.FieldIsPublic, v)
	return u
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateIsPublic() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldIsPublic)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FeedbackUpsertOne) UpdateNewValues() *FeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(feedback.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Feedback.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FeedbackUpsertOne) Ignore() *FeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedbackUpsertOne) DoNothing() *FeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedbackCreate.OnConflict
// documentation for more info.
func (u *FeedbackUpsertOne) Update(set func(*FeedbackUpsert)) *FeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// SetClientID sets the "client_id" field.
func (u *FeedbackUpsertOne) SetClientID(v int) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateClientID() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateClientID()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *FeedbackUpsertOne) SetAuthorID(v int) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateAuthorID() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateAuthorID()
	})
}

// SetSubmissionID sets the "submission_id" field.
func (u *FeedbackUpsertOne) SetSubmissionID(v int) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateSubmissionID() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateSubmissionID()
	})
}

// ClearSubmissionID clears the value of the "submission_id" field.
func (u *FeedbackUpsertOne) ClearSubmissionID() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearSubmissionID()
	})
}

// SetRating sets the "rating" field.
func (u *FeedbackUpsertOne) SetRating(v int) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *FeedbackUpsertOne) AddRating(v int) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateRating() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateRating()
	})
}

// SetComment sets the "comment" field.
func (u *FeedbackUpsertOne) SetComment(v string) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateComment() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *FeedbackUpsertOne) ClearComment() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearComment()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *FeedbackUpsertOne) SetSentiment(v feedback.Sentiment) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateSentiment() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateSentiment()
	})
}

// SetIsPublic sets the "is_public" field.
func (u *FeedbackUpsertOne) SetIsPublic(v bool) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetIsPublic(v)
	})
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateIsPublic() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateIsPublic()
	})
}

// Exec executes the query.
func (u *FeedbackUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedbackCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedbackUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FeedbackUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FeedbackUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FeedbackCreateBulk is the builder for creating many Feedback entities in bulk.
type FeedbackCreateBulk struct {
	config
	err      error
	builders []*FeedbackCreate
	conflict []sql.ConflictOption
}

// Save creates the Feedback entities in the database.
func (_c *FeedbackCreateBulk) Save(ctx context.Context) ([]*Feedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Feedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackMutation)
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
func (_c *FeedbackCreateBulk) SaveX(ctx context.Context) []*Feedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Feedback.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedbackUpsert) {
//			SetClientID(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedbackCreateBulk) OnConflict(opts ...sql.ConflictOption) *FeedbackUpsertBulk {
	_c.conflict = opts
	return &FeedbackUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedbackCreateBulk) OnConflictColumns(columns ...string) *FeedbackUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedbackUpsertBulk{
		create: _c,
	}
}

// FeedbackUpsertBulk is the builder for "upsert"-ing
// a bulk of Feedback nodes.
type FeedbackUpsertBulk struct {
	create *FeedbackCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FeedbackUpsertBulk) UpdateNewValues() *FeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(feedback.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FeedbackUpsertBulk) Ignore() *FeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedbackUpsertBulk) DoNothing() *FeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedbackCreateBulk.OnConflict
// documentation for more info.
func (u *FeedbackUpsertBulk) Update(set func(*FeedbackUpsert)) *FeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// SetClientID sets the "client_id" field.
func (u *FeedbackUpsertBulk) SetClientID(v int) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateClientID() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateClientID()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *FeedbackUpsertBulk) SetAuthorID(v int) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateAuthorID() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateAuthorID()
	})
}

// SetSubmissionID sets the "submission_id" field.
func (u *FeedbackUpsertBulk) SetSubmissionID(v int) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateSubmissionID() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateSubmissionID()
	})
}

// ClearSubmissionID clears the value of the "submission_id" field.
func (u *FeedbackUpsertBulk) ClearSubmissionID() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearSubmissionID()
	})
}

// SetRating sets the "rating" field.
func (u *FeedbackUpsertBulk) SetRating(v int) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *FeedbackUpsertBulk) AddRating(v int) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateRating() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateRating()
	})
}

// SetComment sets the "comment" field.
func (u *FeedbackUpsertBulk) SetComment(v string) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateComment() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *FeedbackUpsertBulk) ClearComment() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearComment()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *FeedbackUpsertBulk) SetSentiment(v feedback.Sentiment) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateSentiment() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateSentiment()
	})
}

// SetIsPublic sets the "is_public" field.
func (u *FeedbackUpsertBulk) SetIsPublic(v bool) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetIsPublic(v)
	})
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateIsPublic() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateIsPublic()
	})
}

// Exec executes the query.
func (u *FeedbackUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FeedbackCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedbackCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedbackUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
