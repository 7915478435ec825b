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
	"github.com/agencydesk/agencydesk/ent/file"
	"github.com/agencydesk/agencydesk/ent/user"
)

// FileCreate is the builder for creating a File entity.
type FileCreate struct {
	config
	mutation *FileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFileName sets the "file_name" field.
func (_c *FileCreate) SetFileName(v string) *FileCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *FileCreate) SetFileType(v string) *FileCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_c *FileCreate) SetNillableFileType(v *string) *FileCreate {
	if v != nil {
		_c.SetFileType(*v)
	}
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *FileCreate) SetFileSize(v int64) *FileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *FileCreate) SetNillableFileSize(v *int64) *FileCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *FileCreate) SetStorageKey(v string) *FileCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetUploadedBy sets the "uploaded_by" field.
func (_c *FileCreate) SetUploadedBy(v int) *FileCreate {
	_c.mutation.SetUploadedBy(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *FileCreate) SetEntityType(v string) *FileCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *FileCreate) SetEntityID(v int) *FileCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FileCreate) SetCreatedAt(v time.Time) *FileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FileCreate) SetNillableCreatedAt(v *time.Time) *FileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *FileCreate) SetDeletedAt(v time.Time) *FileCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *FileCreate) SetNillableDeletedAt(v *time.Time) *FileCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUploaderID sets the "uploader" edge to the User entity by ID.
func (_c *FileCreate) SetUploaderID(id int) *FileCreate {
	_c.mutation.SetUploaderID(id)
	return _c
}

// SetUploader sets the "uploader" edge to the User entity.
func (_c *FileCreate) SetUploader(v *User) *FileCreate {
	return _c.SetUploaderID(v.ID)
}

// Mutation returns the FileMutation object of the builder.
func (_c *FileCreate) Mutation() *FileMutation {
	return _c.mutation
}

// Save creates the File in the database.
func (_c *FileCreate) Save(ctx context.Context) (*File, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileCreate) SaveX(ctx context.Context) *File {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FileCreate) defaults() {
	if _, ok := _c.mutation.FileSize(); !ok {
		v := file.DefaultFileSize
		_c.mutation.SetFileSize(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := file.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileCreate) check() error {
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "File.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := file.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "File.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "File.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := file.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "File.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "File.storage_key"`)}
	}
	if v, ok := _c.mutation.StorageKey(); ok {
		if err := file.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "File.storage_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedBy(); !ok {
		return &ValidationError{Name: "uploaded_by", err: errors.New(`ent: missing required field "File.uploaded_by"`)}
	}
	if v, ok := _c.mutation.UploadedBy(); ok {
		if err := file.UploadedByValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_by", err: fmt.Errorf(`ent: validator failed for field "File.uploaded_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "File.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := file.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "File.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "File.entity_id"`)}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := file.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "File.entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "File.created_at"`)}
	}
	if len(_c.mutation.UploaderIDs()) == 0 {
		return &ValidationError{Name: "uploader", err: errors.New(`ent: missing required edge "File.uploader"`)}
	}
	return nil
}

func (_c *FileCreate) sqlSave(ctx context.Context) (*File, error) {
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

func (_c *FileCreate) createSpec() (*File, *sqlgraph.CreateSpec) {
	var (
		_node = &File{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(file.Table, sqlgraph.NewFieldSpec(file.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(file.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(file.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(file.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(file.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(file.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(file.FieldEntityID, field.TypeInt, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(file.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(file.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.UploaderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   file.UploaderTable,
			Columns: []string{file.UploaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UploadedBy = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.File.Create().
//		SetFileName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileUpsert) {
//			SetFileName(v+v).
//		}).
//		Exec(ctx)
func (_c *FileCreate) OnConflict(opts ...sql.ConflictOption) *FileUpsertOne {
	_c.conflict = opts
	return &FileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.File.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileCreate) OnConflictColumns(columns ...string) *FileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileUpsertOne{
		create: _c,
	}
}

type (
	// FileUpsertOne is the builder for "upsert"-ing
	//  one File node.
	FileUpsertOne struct {
		create *FileCreate
	}

	// FileUpsert is the "OnConflict" setter.
	FileUpsert struct {
		*sql.UpdateSet
	}
)

// SetFileName sets the "file_name" field.
func (u *FileUpsert) SetFileName(v string) *FileUpsert {
	u.Set(file.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *FileUpsert) UpdateFileName() *FileUpsert {
	u.SetExcluded(file.FieldFileName)
	return u
}

// SetFileType sets the "file_type" field.
func (u *FileUpsert) SetFileType(v string) *FileUpsert {
	u.Set(file.FieldFileType, v)
	return u
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *FileUpsert) UpdateFileType() *FileUpsert {
	u.SetExcluded(file.FieldFileType)
	return u
}

// ClearFileType clears the value of the "file_type" field.
func (u *FileUpsert) ClearFileType() *FileUpsert {
	u.SetNull(file.FieldFileType)
	return u
}

// SetFileSize sets the "file_size" field.
func (u *FileUpsert) SetFileSize(v int64) *FileUpsert {
	u.Set(file.FieldFileSize, v)
	return u
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *FileUpsert) UpdateFileSize() *FileUpsert {
	u.SetExcluded(file.FieldFileSize)
	return u
}

// AddFileSize adds v to the "file_size" field.
func (u *FileUpsert) AddFileSize(v int64) *FileUpsert {
	u.Add(file.FieldFileSize, v)
	return u
}

// SetStorageKey sets the "storage_key" field.
func (u *FileUpsert) SetStorageKey(v string) *FileUpsert {
	u.Set(file.FieldStorageKey, v)
	return u
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *FileUpsert) UpdateStorageKey() *FileUpsert {
	u.SetExcluded(file.FieldStorageKey)
	return u
}

// SetUploadedBy sets the "uploaded_by" field.
func (u *FileUpsert) SetUploadedBy(v int) *FileUpsert {
	u.Set(file.FieldUploadedBy, v)
	return u
}

// UpdateUploadedBy sets the "uploaded_by" field to the value that was provided on create.
func (u *FileUpsert) UpdateUploadedBy() *FileUpsert {
	u.SetExcluded(file.FieldUploadedBy)
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *FileUpsert) SetEntityType(v string) *FileUpsert {
	u.Set(file.FieldEntityType, v)
	return u
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *FileUpsert) UpdateEntityType() *FileUpsert {
	u.SetExcluded(file.FieldEntityType)
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *FileUpsert) SetEntityID(v int) *FileUpsert {
	u.Set(file.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *FileUpsert) UpdateEntityID() *FileUpsert {
	u.SetExcluded(file.FieldEntityID)
	return u
}

// AddEntityID adds v to the "entity_id" field.
func (u *FileUpsert) AddEntityID(v int) *FileUpsert {
	u.Add(file.FieldEntityID, v)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *FileUpsert) SetDeletedAt(v time.Time) *FileUpsert {
	u.Set(file.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *FileUpsert) UpdateDeletedAt() *FileUpsert {
	u.SetExcluded(file.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *FileUpsert) ClearDeletedAt() *FileUpsert {
	u.SetNull(file.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.File.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FileUpsertOne) UpdateNewValues() *FileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(file.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.File.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FileUpsertOne) Ignore() *FileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileUpsertOne) DoNothing() *FileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileCreate.OnConflict
// documentation for more info.
func (u *FileUpsertOne) Update(set func(*FileUpsert)) *FileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileName sets the "file_name" field.
func (u *FileUpsertOne) SetFileName(v string) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *FileUpsertOne) UpdateFileName() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.UpdateFileName()
	})
}

// SetFileType sets the "file_type" field.
func (u *FileUpsertOne) SetFileType(v string) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *FileUpsertOne) UpdateFileType() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.UpdateFileType()
	})
}

// ClearFileType clears the value of the "file_type" field.
func (u *FileUpsertOne) ClearFileType() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.ClearFileType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *FileUpsertOne) SetFileSize(v int64) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *FileUpsertOne) AddFileSize(v int64) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *FileUpsertOne) UpdateFileSize() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.UpdateFileSize()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *FileUpsertOne) SetStorageKey(v string) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *FileUpsertOne) UpdateStorageKey() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.UpdateStorageKey()
	})
}

// SetUploadedBy sets the "uploaded_by" field.
func (u *FileUpsertOne) SetUploadedBy(v int) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.SetUploadedBy(v)
	})
}

// UpdateUploadedBy sets the "uploaded_by" field to the value that was provided on create.
func (u *FileUpsertOne) UpdateUploadedBy() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.UpdateUploadedBy()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *FileUpsertOne) SetEntityType(v string) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *FileUpsertOne) UpdateEntityType() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.UpdateEntityType()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *FileUpsertOne) SetEntityID(v int) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.SetEntityID(v)
	})
}

// AddEntityID adds v to the "entity_id" field.
func (u *FileUpsertOne) AddEntityID(v int) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.AddEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *FileUpsertOne) UpdateEntityID() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.UpdateEntityID()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *FileUpsertOne) SetDeletedAt(v time.Time) *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *FileUpsertOne) UpdateDeletedAt() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *FileUpsertOne) ClearDeletedAt() *FileUpsertOne {
	return u.Update(func(s *FileUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *FileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FileUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FileCreateBulk is the builder for creating many File entities in bulk.
type FileCreateBulk struct {
	config
	err      error
	builders []*FileCreate
	conflict []sql.ConflictOption
}

// Save creates the File entities in the database.
func (_c *FileCreateBulk) Save(ctx context.Context) ([]*File, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*File, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileMutation)
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
func (_c *FileCreateBulk) SaveX(ctx context.Context) []*File {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.File.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileUpsert) {
//			SetFileName(v+v).
//		}).
//		Exec(ctx)
func (_c *FileCreateBulk) OnConflict(opts ...sql.ConflictOption) *FileUpsertBulk {
	_c.conflict = opts
	return &FileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.File.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileCreateBulk) OnConflictColumns(columns ...string) *FileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileUpsertBulk{
		create: _c,
	}
}

// FileUpsertBulk is the builder for "upsert"-ing
// a bulk of File nodes.
type FileUpsertBulk struct {
	create *FileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.File.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FileUpsertBulk) UpdateNewValues() *FileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(file.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.File.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FileUpsertBulk) Ignore() *FileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileUpsertBulk) DoNothing() *FileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileCreateBulk.OnConflict
// documentation for more info.
func (u *FileUpsertBulk) Update(set func(*FileUpsert)) *FileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileName sets the "file_name" field.
func (u *FileUpsertBulk) SetFileName(v string) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *FileUpsertBulk) UpdateFileName() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.UpdateFileName()
	})
}

// SetFileType sets the "file_type" field.
func (u *FileUpsertBulk) SetFileType(v string) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *FileUpsertBulk) UpdateFileType() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.UpdateFileType()
	})
}

// ClearFileType clears the value of the "file_type" field.
func (u *FileUpsertBulk) ClearFileType() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.ClearFileType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *FileUpsertBulk) SetFileSize(v int64) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *FileUpsertBulk) AddFileSize(v int64) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *FileUpsertBulk) UpdateFileSize() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.UpdateFileSize()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *FileUpsertBulk) SetStorageKey(v string) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *FileUpsertBulk) UpdateStorageKey() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.UpdateStorageKey()
	})
}

// SetUploadedBy sets the "uploaded_by" field.
func (u *FileUpsertBulk) SetUploadedBy(v int) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.SetUploadedBy(v)
	})
}

// UpdateUploadedBy sets the "uploaded_by" field to the value that was provided on create.
func (u *FileUpsertBulk) UpdateUploadedBy() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.UpdateUploadedBy()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *FileUpsertBulk) SetEntityType(v string) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *FileUpsertBulk) UpdateEntityType() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.UpdateEntityType()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *FileUpsertBulk) SetEntityID(v int) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.SetEntityID(v)
	})
}

// AddEntityID adds v to the "entity_id" field.
func (u *FileUpsertBulk) AddEntityID(v int) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.AddEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *FileUpsertBulk) UpdateEntityID() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.UpdateEntityID()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *FileUpsertBulk) SetDeletedAt(v time.Time) *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *FileUpsertBulk) UpdateDeletedAt() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *FileUpsertBulk) ClearDeletedAt() *FileUpsertBulk {
	return u.Update(func(s *FileUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *FileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
