package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// File holds the schema definition for the File entity. Rows are metadata
// only; the blob lives in object storage under storage_key and is uploaded
// and fetched through presigned URLs. Several rows may share one storage_key
// (copy-to-entity duplicates the row, not the blob).
type File struct {
	ent.Schema
}

// Fields of the File.
func (File) Fields() []ent.Field {
	return []ent.Field{
		field.String("file_name").
			NotEmpty().
			Comment("Original file name"),
		field.String("file_type").
			Optional().
			Comment("MIME type"),
		field.Int64("file_size").
			NonNegative().
			Default(0).
			Comment("Size in bytes"),
		field.String("storage_key").
			NotEmpty().
			Comment("Object storage key; never reclaimed on delete"),
		field.Int("uploaded_by").
			Positive().
			Comment("Uploading user"),
		field.String("entity_type").
			NotEmpty().
			Comment("Entity kind this file is attached to (lead, task, submission, ...)"),
		field.Int("entity_id").
			Positive().
			Comment("Attached entity id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete timestamp; default queries exclude deleted rows"),
	}
}

// Edges of the File.
func (File) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("uploader", User.Type).
			Ref("uploaded_files").
			Field("uploaded_by").
			Unique().
			Required(),
	}
}

// Indexes of the File.
func (File) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("storage_key"),
		index.Fields("uploaded_by", "created_at"),
	}
}
