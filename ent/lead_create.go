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
	"github.com/agencydesk/agencydesk/ent/lead"
	"github.com/agencydesk/agencydesk/ent/leadactivity"
	"github.com/agencydesk/agencydesk/ent/leadassignment"
	"github.com/agencydesk/agencydesk/ent/leadnote"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *LeadCreate) SetName(v string) *LeadCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCompany sets the "company" field.
func (_c *LeadCreate) SetCompany(v string) *LeadCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompany(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEmail(v *string) *LeadCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LeadCreate) SetPhone(v string) *LeadCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *LeadCreate) SetNillablePhone(v *string) *LeadCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *LeadCreate) SetCity(v string) *LeadCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCity(v *string) *LeadCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *LeadCreate) SetCountry(v string) *LeadCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCountry(v *string) *LeadCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *LeadCreate) SetWebsite(v string) *LeadCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *LeadCreate) SetNillableWebsite(v *string) *LeadCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *LeadCreate) SetSource(v string) *LeadCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSource(v *string) *LeadCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LeadCreate) SetStatus(v lead.Status) *LeadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStatus(v *lead.Status) *LeadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPitchedServices sets the "pitched_services" field.
func (_c *LeadCreate) SetPitchedServices(v []string) *LeadCreate {
	_c.mutation.SetPitchedServices(v)
	return _c
}

// SetImportBatchID sets the "import_batch_id" field.
func (_c *LeadCreate) SetImportBatchID(v string) *LeadCreate {
	_c.mutation.SetImportBatchID(v)
	return _c
}

// SetNillableImportBatchID sets the "import_batch_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableImportBatchID(v *string) *LeadCreate {
	if v != nil {
		_c.SetImportBatchID(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *LeadCreate) SetCreatedBy(v int) *LeadCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedBy(v *int) *LeadCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadCreate) SetUpdatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUpdatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddAssignmentIDs adds the "assignments" edge to the LeadAssignment entity by IDs.
func (_c *LeadCreate) AddAssignmentIDs(ids ...int) *LeadCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the LeadAssignment entity.
func (_c *LeadCreate) AddAssignments(v ...*LeadAssignment) *LeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the LeadActivity entity by IDs.
func (_c *LeadCreate) AddActivityIDs(ids ...int) *LeadCreate {
	_c.mutation.AddActivityIDs(ids...)
	return _c
}

// AddActivities adds the "activities" edges to the LeadActivity entity.
func (_c *LeadCreate) AddActivities(v ...*LeadActivity) *LeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivityIDs(ids...)
}

// AddNoteIDs adds the "notes" edge to the LeadNote entity by IDs.
func (_c *LeadCreate) AddNoteIDs(ids ...int) *LeadCreate {
	_c.mutation.AddNoteIDs(ids...)
	return _c
}

// AddNotes adds the "notes" edges to the LeadNote entity.
func (_c *LeadCreate) AddNotes(v ...*LeadNote) *LeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNoteIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := lead.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Lead.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Country(); ok {
		if err := lead.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Lead.country": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Lead.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lead.updated_at"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
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

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(lead.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(lead.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(lead.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PitchedServices(); ok {
		_spec.SetField(lead.FieldPitchedServices, field.TypeJSON, value)
		_node.PitchedServices = value
	}
	if value, ok := _c.mutation.ImportBatchID(); ok {
		_spec.SetField(lead.FieldImportBatchID, field.TypeString, value)
		_node.ImportBatchID = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(lead.FieldCreatedBy, field.TypeInt, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.AssignmentsTable,
			Columns: []string{lead.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ActivitiesTable,
			Columns: []string{lead.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadactivity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.NotesTable,
			Columns: []string{lead.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadnote.FieldID, field.TypeInt),
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
//	client.Lead.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadCreate) OnConflict(opts ...sql.ConflictOption) *LeadUpsertOne {
	_c.conflict = opts
	return &LeadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadCreate) OnConflictColumns(columns ...string) *LeadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadUpsertOne{
		create: _c,
	}
}

type (
	// LeadUpsertOne is the builder for "upsert"-ing
	//  one Lead node.
	LeadUpsertOne struct {
		create *LeadCreate
	}

	// LeadUpsert is the "OnConflict" setter.
	LeadUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *LeadUpsert) SetName(v string) *LeadUpsert {
	u.Set(lead.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LeadUpsert) UpdateName() *LeadUpsert {
	u.SetExcluded(lead.FieldName)
	return u
}

// SetCompany sets the "company" field.
func (u *LeadUpsert) SetCompany(v string) *LeadUpsert {
	u.Set(lead.FieldCompany, v)
	return u
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCompany() *LeadUpsert {
	u.SetExcluded(lead.FieldCompany)
	return u
}

// ClearCompany clears the value of the "company" field.
func (u *LeadUpsert) ClearCompany() *LeadUpsert {
	u.SetNull(lead.FieldCompany)
	return u
}

// SetEmail sets the "email" field.
func (u *LeadUpsert) SetEmail(v string) *LeadUpsert {
	u.Set(lead.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LeadUpsert) UpdateEmail() *LeadUpsert {
	u.SetExcluded(lead.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *LeadUpsert) ClearEmail() *LeadUpsert {
	u.SetNull(lead.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *LeadUpsert) SetPhone(v string) *LeadUpsert {
	u.Set(lead.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LeadUpsert) UpdatePhone() *LeadUpsert {
	u.SetExcluded(lead.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *LeadUpsert) ClearPhone() *LeadUpsert {
	u.SetNull(lead.FieldPhone)
	return u
}

// SetCity sets the "city" field.
func (u *LeadUpsert) SetCity(v string) *LeadUpsert {
	u.Set(lead.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCity() *LeadUpsert {
	u.SetExcluded(lead.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *LeadUpsert) ClearCity() *LeadUpsert {
	u.SetNull(lead.FieldCity)
	return u
}

// SetCountry sets the "country" field.
func (u *LeadUpsert) SetCountry(v string) *LeadUpsert {
	u.Set(lead.FieldCountry, v)
	return u
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCountry() *LeadUpsert {
	u.SetExcluded(lead.FieldCountry)
	return u
}

// ClearCountry clears the value of the "country" field.
func (u *LeadUpsert) ClearCountry() *LeadUpsert {
	u.SetNull(lead.FieldCountry)
	return u
}

// SetWebsite sets the "website" field.
func (u *LeadUpsert) SetWebsite(v string) *LeadUpsert {
	u.Set(lead.FieldWebsite, v)
	return u
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *LeadUpsert) UpdateWebsite() *LeadUpsert {
	u.SetExcluded(lead.FieldWebsite)
	return u
}

// ClearWebsite clears the value of the "website" field.
func (u *LeadUpsert) ClearWebsite() *LeadUpsert {
	u.SetNull(lead.FieldWebsite)
	return u
}

// SetSource sets the "source" field.
func (u *LeadUpsert) SetSource(v string) *LeadUpsert {
	u.Set(lead.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *LeadUpsert) UpdateSource() *LeadUpsert {
	u.SetExcluded(lead.FieldSource)
	return u
}

// ClearSource clears the value of the "source" field.
func (u *LeadUpsert) ClearSource() *LeadUpsert {
	u.SetNull(lead.FieldSource)
	return u
}

// SetStatus sets the "status" field.
func (u *LeadUpsert) SetStatus(v lead.Status) *LeadUpsert {
	u.Set(lead.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeadUpsert) UpdateStatus() *LeadUpsert {
	u.SetExcluded(lead.FieldStatus)
	return u
}

// SetPitchedServices sets the "pitched_services" field.
func (u *LeadUpsert) SetPitchedServices(v []string) *LeadUpsert {
	u.Set(lead.FieldPitchedServices, v)
	return u
}

// UpdatePitchedServices sets the "pitched_services" field to the value that was provided on create.
func (u *LeadUpsert) UpdatePitchedServices() *LeadUpsert {
	u.SetExcluded(lead.FieldPitchedServices)
	return u
}

// ClearPitchedServices clears the value of the "pitched_services" field.
func (u *LeadUpsert) ClearPitchedServices() *LeadUpsert {
	u.SetNull(lead.FieldPitchedServices)
	return u
}

// SetImportBatchID sets the "import_batch_id" field.
func (u *LeadUpsert) SetImportBatchID(v string) *LeadUpsert {
	u.Set(lead.FieldImportBatchID, v)
	return u
}

// UpdateImportBatchID sets the "import_batch_id" field to the value that was provided on create.
func (u *LeadUpsert) UpdateImportBatchID() *LeadUpsert {
	u.SetExcluded(lead.FieldImportBatchID)
	return u
}

// ClearImportBatchID clears the value of the "import_batch_id" field.
func (u *LeadUpsert) ClearImportBatchID() *LeadUpsert {
	u.SetNull(lead.FieldImportBatchID)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *LeadUpsert) SetCreatedBy(v int) *LeadUpsert {
	u.Set(lead.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCreatedBy() *LeadUpsert {
	u.SetExcluded(lead.FieldCreatedBy)
	return u
}

// AddCreatedBy adds v to the "created_by" field.
func (u *LeadUpsert) AddCreatedBy(v int) *LeadUpsert {
	u.Add(lead.FieldCreatedBy, v)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *LeadUpsert) ClearCreatedBy() *LeadUpsert {
	u.SetNull(lead.FieldCreatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadUpsert) SetUpdatedAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateUpdatedAt() *LeadUpsert {
	u.SetExcluded(lead.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadUpsertOne) UpdateNewValues() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lead.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeadUpsertOne) Ignore() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadUpsertOne) DoNothing() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadCreate.OnConflict
// documentation for more info.
func (u *LeadUpsertOne) Update(set func(*LeadUpsert)) *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *LeadUpsertOne) SetName(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateName()
	})
}

// SetCompany sets the "company" field.
func (u *LeadUpsertOne) SetCompany(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCompany() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompany()
	})
}

// ClearCompany clears the value of the "company" field.
func (u *LeadUpsertOne) ClearCompany() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompany()
	})
}

// SetEmail sets the "email" field.
func (u *LeadUpsertOne) SetEmail(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateEmail() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *LeadUpsertOne) ClearEmail() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *LeadUpsertOne) SetPhone(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdatePhone() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *LeadUpsertOne) ClearPhone() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearPhone()
	})
}

// SetCity sets the "city" field.
func (u *LeadUpsertOne) SetCity(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCity() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *LeadUpsertOne) ClearCity() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCity()
	})
}

// SetCountry sets the "country" field.
func (u *LeadUpsertOne) SetCountry(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCountry() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *LeadUpsertOne) ClearCountry() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCountry()
	})
}

// SetWebsite sets the "website" field.
func (u *LeadUpsertOne) SetWebsite(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateWebsite() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *LeadUpsertOne) ClearWebsite() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWebsite()
	})
}

// SetSource sets the "source" field.
func (u *LeadUpsertOne) SetSource(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateSource() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateSource()
	})
}

// ClearSource clears the value of the "source" field.
func (u *LeadUpsertOne) ClearSource() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearSource()
	})
}

// SetStatus sets the "status" field.
func (u *LeadUpsertOne) SetStatus(v lead.Status) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateStatus() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateStatus()
	})
}

// SetPitchedServices sets the "pitched_services" field.
func (u *LeadUpsertOne) SetPitchedServices(v []string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetPitchedServices(v)
	})
}

// UpdatePitchedServices sets the "pitched_services" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdatePitchedServices() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePitchedServices()
	})
}

// ClearPitchedServices clears the value of the "pitched_services" field.
func (u *LeadUpsertOne) ClearPitchedServices() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearPitchedServices()
	})
}

// SetImportBatchID sets the "import_batch_id" field.
func (u *LeadUpsertOne) SetImportBatchID(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetImportBatchID(v)
	})
}

// UpdateImportBatchID sets the "import_batch_id" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateImportBatchID() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateImportBatchID()
	})
}

// ClearImportBatchID clears the value of the "import_batch_id" field.
func (u *LeadUpsertOne) ClearImportBatchID() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearImportBatchID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *LeadUpsertOne) SetCreatedBy(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCreatedBy(v)
	})
}

// AddCreatedBy adds v to the "created_by" field.
func (u *LeadUpsertOne) AddCreatedBy(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.AddCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCreatedBy() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *LeadUpsertOne) ClearCreatedBy() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadUpsertOne) SetUpdatedAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateUpdatedAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeadUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeadUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
	conflict []sql.ConflictOption
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
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
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lead.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeadUpsertBulk {
	_c.conflict = opts
	return &LeadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadCreateBulk) OnConflictColumns(columns ...string) *LeadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadUpsertBulk{
		create: _c,
	}
}

// LeadUpsertBulk is the builder for "upsert"-ing
// a bulk of Lead nodes.
type LeadUpsertBulk struct {
	create *LeadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadUpsertBulk) UpdateNewValues() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lead.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeadUpsertBulk) Ignore() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadUpsertBulk) DoNothing() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadCreateBulk.OnConflict
// documentation for more info.
func (u *LeadUpsertBulk) Update(set func(*LeadUpsert)) *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *LeadUpsertBulk) SetName(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateName()
	})
}

// SetCompany sets the "company" field.
func (u *LeadUpsertBulk) SetCompany(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCompany() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompany()
	})
}

// ClearCompany clears the value of the "company" field.
func (u *LeadUpsertBulk) ClearCompany() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompany()
	})
}

// SetEmail sets the "email" field.
func (u *LeadUpsertBulk) SetEmail(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateEmail() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *LeadUpsertBulk) ClearEmail() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *LeadUpsertBulk) SetPhone(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdatePhone() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *LeadUpsertBulk) ClearPhone() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearPhone()
	})
}

// SetCity sets the "city" field.
func (u *LeadUpsertBulk) SetCity(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCity() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *LeadUpsertBulk) ClearCity() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCity()
	})
}

// SetCountry sets the "country" field.
func (u *LeadUpsertBulk) SetCountry(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCountry() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *LeadUpsertBulk) ClearCountry() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCountry()
	})
}

// SetWebsite sets the "website" field.
func (u *LeadUpsertBulk) SetWebsite(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateWebsite() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *LeadUpsertBulk) ClearWebsite() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWebsite()
	})
}

// SetSource sets the "source" field.
func (u *LeadUpsertBulk) SetSource(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateSource() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateSource()
	})
}

// ClearSource clears the value of the "source" field.
func (u *LeadUpsertBulk) ClearSource() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearSource()
	})
}

// SetStatus sets the "status" field.
func (u *LeadUpsertBulk) SetStatus(v lead.Status) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateStatus() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateStatus()
	})
}

// SetPitchedServices sets the "pitched_services" field.
func (u *LeadUpsertBulk) SetPitchedServices(v []string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetPitchedServices(v)
	})
}

// UpdatePitchedServices sets the "pitched_services" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdatePitchedServices() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePitchedServices()
	})
}

// ClearPitchedServices clears the value of the "pitched_services" field.
func (u *LeadUpsertBulk) ClearPitchedServices() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearPitchedServices()
	})
}

// SetImportBatchID sets the "import_batch_id" field.
func (u *LeadUpsertBulk) SetImportBatchID(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetImportBatchID(v)
	})
}

// UpdateImportBatchID sets the "import_batch_id" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateImportBatchID() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateImportBatchID()
	})
}

// ClearImportBatchID clears the value of the "import_batch_id" field.
func (u *LeadUpsertBulk) ClearImportBatchID() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearImportBatchID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *LeadUpsertBulk) SetCreatedBy(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCreatedBy(v)
	})
}

// AddCreatedBy adds v to the "created_by" field.
func (u *LeadUpsertBulk) AddCreatedBy(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.AddCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCreatedBy() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *LeadUpsertBulk) ClearCreatedBy() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadUpsertBulk) SetUpdatedAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateUpdatedAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
