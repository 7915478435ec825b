package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Counter holds the schema definition for the Counter entity, a named
// monotonic sequence. Document numbers (REQ/TSK/QRY/SUB) are allocated by
// incrementing the scoped counter inside the same transaction as the insert,
// so concurrent writers cannot race to the same number.
type Counter struct {
	ent.Schema
}

// Fields of the Counter.
func (Counter) Fields() []ent.Field {
	return []ent.Field{
		field.String("scope").
			NotEmpty().
			Unique().
			Comment("Sequence name (task, requirement, query, submission)"),
		field.Int("value").
			Default(0).
			NonNegative().
			Comment("Last allocated value"),
	}
}

// Indexes of the Counter.
func (Counter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope").Unique(),
	}
}
