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
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/user"
)

// CompanyCreate is the builder for creating a Company entity.
type CompanyCreate struct {
	config
	mutation *CompanyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CompanyCreate) SetUserID(v int) *CompanyCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *CompanyCreate) SetCompanyName(v string) *CompanyCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *CompanyCreate) SetIndustry(v string) *CompanyCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableIndustry(v *string) *CompanyCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CompanyCreate) SetStatus(v company.Status) *CompanyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableStatus(v *company.Status) *CompanyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSalesPersonID sets the "sales_person_id" field.
func (_c *CompanyCreate) SetSalesPersonID(v int) *CompanyCreate {
	_c.mutation.SetSalesPersonID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyCreate) SetCreatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableCreatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompanyCreate) SetUpdatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableUpdatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CompanyCreate) SetUser(v *User) *CompanyCreate {
	return _c.SetUserID(v.ID)
}

// SetSalesPerson sets the "sales_person" edge to the User entity.
func (_c *CompanyCreate) SetSalesPerson(v *User) *CompanyCreate {
	return _c.SetSalesPersonID(v.ID)
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by IDs.
func (_c *CompanyCreate) AddRequirementIDs(ids ...int) *CompanyCreate {
	_c.mutation.AddRequirementIDs(ids...)
	return _c
}

// AddRequirements adds the "requirements" edges to the Requirement entity.
func (_c *CompanyCreate) AddRequirements(v ...*Requirement) *CompanyCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRequirementIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *CompanyCreate) AddSubmissionIDs(ids ...int) *CompanyCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *CompanyCreate) AddSubmissions(v ...*Submission) *CompanyCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_c *CompanyCreate) AddFeedbackIDs(ids ...int) *CompanyCreate {
	_c.mutation.AddFeedbackIDs(ids...)
	return _c
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_c *CompanyCreate) AddFeedback(v ...*Feedback) *CompanyCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeedbackIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_c *CompanyCreate) Mutation() *CompanyMutation {
	return _c.mutation
}

// Save creates the Company in the database.
func (_c *CompanyCreate) Save(ctx context.Context) (*Company, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyCreate) SaveX(ctx context.Context) *Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := company.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := company.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := company.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Company.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := company.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Company.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Company.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := company.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Company.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Company.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := company.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Company.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SalesPersonID(); !ok {
		return &ValidationError{Name: "sales_person_id", err: errors.New(`ent: missing required field "Company.sales_person_id"`)}
	}
	if v, ok := _c.mutation.SalesPersonID(); ok {
		if err := company.SalesPersonIDValidator(v); err != nil {
			return &ValidationError{Name: "sales_person_id", err: fmt.Errorf(`ent: validator failed for field "Company.sales_person_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Company.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Company.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Company.user"`)}
	}
	if len(_c.mutation.SalesPersonIDs()) == 0 {
		return &ValidationError{Name: "sales_person", err: errors.New(`ent: missing required edge "Company.sales_person"`)}
	}
	return nil
}

func (_c *CompanyCreate) sqlSave(ctx context.Context) (*Company, error) {
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

func (_c *CompanyCreate) createSpec() (*Company, *sqlgraph.CreateSpec) {
	var (
		_node = &Company{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(company.Table, sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(company.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(company.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(company.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   company.UserTable,
			Columns: []string{company.UserColumn},
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
	if nodes := _c.mutation.SalesPersonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   company.SalesPersonTable,
			Columns: []string{company.SalesPersonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SalesPersonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RequirementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.RequirementsTable,
			Columns: []string{company.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeInt),
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
			Table:   company.SubmissionsTable,
			Columns: []string{company.SubmissionsColumn},
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
	if nodes := _c.mutation.FeedbackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FeedbackTable,
			Columns: []string{company.FeedbackColumn},
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
//	client.Company.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompanyUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CompanyCreate) OnConflict(opts ...sql.ConflictOption) *CompanyUpsertOne {
	_c.conflict = opts
	return &CompanyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompanyCreate) OnConflictColumns(columns ...string) *CompanyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompanyUpsertOne{
		create: _c,
	}
}

type (
	// CompanyUpsertOne is the builder for "upsert"-ing
	//  one Company node.
	CompanyUpsertOne struct {
		create *CompanyCreate
	}

	// CompanyUpsert is the "OnConflict" setter.
	CompanyUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *CompanyUpsert) SetUserID(v int) *CompanyUpsert {
	u.Set(company.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateUserID() *CompanyUpsert {
	u.SetExcluded(company.FieldUserID)
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *CompanyUpsert) SetCompanyName(v string) *CompanyUpsert {
	u.Set(company.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateCompanyName() *CompanyUpsert {
	u.SetExcluded(company.FieldCompanyName)
	return u
}

// SetIndustry sets the "industry" field.
func (u *CompanyUpsert) SetIndustry(v string) *CompanyUpsert {
	u.Set(company.FieldIndustry, v)
	return u
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateIndustry() *CompanyUpsert {
	u.SetExcluded(company.FieldIndustry)
	return u
}

// ClearIndustry clears the value of the "industry" field.
func (u *CompanyUpsert) ClearIndustry() *CompanyUpsert {
	u.SetNull(company.FieldIndustry)
	return u
}

// SetStatus sets the "status" field.
func (u *CompanyUpsert) SetStatus(v company.Status) *CompanyUpsert {
	u.Set(company.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateStatus() *CompanyUpsert {
	u.SetExcluded(company.FieldStatus)
	return u
}

// SetSalesPersonID sets the "sales_person_id" field.
func (u *CompanyUpsert) SetSalesPersonID(v int) *CompanyUpsert {
	u.Set(company.FieldSalesPersonID, v)
	return u
}

// UpdateSalesPersonID sets the "sales_person_id" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateSalesPersonID() *CompanyUpsert {
	u.SetExcluded(company.FieldSalesPersonID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CompanyUpsert) SetUpdatedAt(v time.Time) *CompanyUpsert {
	u.Set(company.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateUpdatedAt() *CompanyUpsert {
	u.SetExcluded(company.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompanyUpsertOne) UpdateNewValues() *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(company.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Company.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CompanyUpsertOne) Ignore() *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompanyUpsertOne) DoNothing() *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompanyCreate.OnConflict
// documentation for more info.
func (u *CompanyUpsertOne) Update(set func(*CompanyUpsert)) *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompanyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CompanyUpsertOne) SetUserID(v int) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateUserID() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateUserID()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *CompanyUpsertOne) SetCompanyName(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateCompanyName() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateCompanyName()
	})
}

// SetIndustry sets the "industry" field.
func (u *CompanyUpsertOne) SetIndustry(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateIndustry() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *CompanyUpsertOne) ClearIndustry() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearIndustry()
	})
}

// SetStatus sets the "status" field.
func (u *CompanyUpsertOne) SetStatus(v company.Status) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateStatus() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateStatus()
	})
}

// SetSalesPersonID sets the "sales_person_id" field.
func (u *CompanyUpsertOne) SetSalesPersonID(v int) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetSalesPersonID(v)
	})
}

// UpdateSalesPersonID sets the "sales_person_id" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateSalesPersonID() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateSalesPersonID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CompanyUpsertOne) SetUpdatedAt(v time.Time) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateUpdatedAt() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CompanyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompanyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompanyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CompanyUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CompanyUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CompanyCreateBulk is the builder for creating many Company entities in bulk.
type CompanyCreateBulk struct {
	config
	err      error
	builders []*CompanyCreate
	conflict []sql.ConflictOption
}

// Save creates the Company entities in the database.
func (_c *CompanyCreateBulk) Save(ctx context.Context) ([]*Company, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Company, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyMutation)
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
func (_c *CompanyCreateBulk) SaveX(ctx context.Context) []*Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Company.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompanyUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CompanyCreateBulk) OnConflict(opts ...sql.ConflictOption) *CompanyUpsertBulk {
	_c.conflict = opts
	return &CompanyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompanyCreateBulk) OnConflictColumns(columns ...string) *CompanyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompanyUpsertBulk{
		create: _c,
	}
}

// CompanyUpsertBulk is the builder for "upsert"-ing
// a bulk of Company nodes.
type CompanyUpsertBulk struct {
	create *CompanyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompanyUpsertBulk) UpdateNewValues() *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(company.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CompanyUpsertBulk) Ignore() *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompanyUpsertBulk) DoNothing() *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompanyCreateBulk.OnConflict
// documentation for more info.
func (u *CompanyUpsertBulk) Update(set func(*CompanyUpsert)) *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompanyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CompanyUpsertBulk) SetUserID(v int) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateUserID() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateUserID()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *CompanyUpsertBulk) SetCompanyName(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateCompanyName() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateCompanyName()
	})
}

// SetIndustry sets the "industry" field.
func (u *CompanyUpsertBulk) SetIndustry(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateIndustry() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *CompanyUpsertBulk) ClearIndustry() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearIndustry()
	})
}

// SetStatus sets the "status" field.
func (u *CompanyUpsertBulk) SetStatus(v company.Status) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateStatus() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateStatus()
	})
}

// SetSalesPersonID sets the "sales_person_id" field.
func (u *CompanyUpsertBulk) SetSalesPersonID(v int) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetSalesPersonID(v)
	})
}

// UpdateSalesPersonID sets the "sales_person_id" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateSalesPersonID() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateSalesPersonID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CompanyUpsertBulk) SetUpdatedAt(v time.Time) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateUpdatedAt() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CompanyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CompanyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompanyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompanyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
