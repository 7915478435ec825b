// Code generated by ent, DO NOT EDIT.

package thread

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agencydesk/agencydesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldID, id))
}

// QueryNumber applies equality check predicate on the "query_number" field. It's identical to QueryNumberEQ.
func QueryNumber(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldQueryNumber, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldTaskID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldDescription, v))
}

// LastMessageAt applies equality check predicate on the "last_message_at" field. It's identical to LastMessageAtEQ.
func LastMessageAt(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldLastMessageAt, v))
}

// LastMessagePreview applies equality check predicate on the "last_message_preview" field. It's identical to LastMessagePreviewEQ.
func LastMessagePreview(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldLastMessagePreview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldUpdatedAt, v))
}

// QueryNumberEQ applies the EQ predicate on the "query_number" field.
func QueryNumberEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldQueryNumber, v))
}

// QueryNumberNEQ applies the NEQ predicate on the "query_number" field.
func QueryNumberNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldQueryNumber, v))
}

// QueryNumberIn applies the In predicate on the "query_number" field.
func QueryNumberIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldQueryNumber, vs...))
}

// QueryNumberNotIn applies the NotIn predicate on the "query_number" field.
func QueryNumberNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldQueryNumber, vs...))
}

// QueryNumberGT applies the GT predicate on the "query_number" field.
func QueryNumberGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldQueryNumber, v))
}

// QueryNumberGTE applies the GTE predicate on the "query_number" field.
func QueryNumberGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldQueryNumber, v))
}

// QueryNumberLT applies the LT predicate on the "query_number" field.
func QueryNumberLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldQueryNumber, v))
}

// QueryNumberLTE applies the LTE predicate on the "query_number" field.
func QueryNumberLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldQueryNumber, v))
}

// QueryNumberContains applies the Contains predicate on the "query_number" field.
func QueryNumberContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldQueryNumber, v))
}

// QueryNumberHasPrefix applies the HasPrefix predicate on the "query_number" field.
func QueryNumberHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldQueryNumber, v))
}

// QueryNumberHasSuffix applies the HasSuffix predicate on the "query_number" field.
func QueryNumberHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldQueryNumber, v))
}

// QueryNumberEqualFold applies the EqualFold predicate on the "query_number" field.
func QueryNumberEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldQueryNumber, v))
}

// QueryNumberContainsFold applies the ContainsFold predicate on the "query_number" field.
func QueryNumberContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldQueryNumber, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldTaskID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Thread {
	return predicate.Thread(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Thread {
	return predicate.Thread(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldStatus, vs...))
}

// ParticipantsIsNil applies the IsNil predicate on the "participants" field.
func ParticipantsIsNil() predicate.Thread {
	return predicate.Thread(sql.FieldIsNull(FieldParticipants))
}

// ParticipantsNotNil applies the NotNil predicate on the "participants" field.
func ParticipantsNotNil() predicate.Thread {
	return predicate.Thread(sql.FieldNotNull(FieldParticipants))
}

// LastMessageAtEQ applies the EQ predicate on the "last_message_at" field.
func LastMessageAtEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldLastMessageAt, v))
}

// LastMessageAtNEQ applies the NEQ predicate on the "last_message_at" field.
func LastMessageAtNEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldLastMessageAt, v))
}

// LastMessageAtIn applies the In predicate on the "last_message_at" field.
func LastMessageAtIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldLastMessageAt, vs...))
}

// LastMessageAtNotIn applies the NotIn predicate on the "last_message_at" field.
func LastMessageAtNotIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldLastMessageAt, vs...))
}

// LastMessageAtGT applies the GT predicate on the "last_message_at" field.
func LastMessageAtGT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldLastMessageAt, v))
}

// LastMessageAtGTE applies the GTE predicate on the "last_message_at" field.
func LastMessageAtGTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldLastMessageAt, v))
}

// LastMessageAtLT applies the LT predicate on the "last_message_at" field.
func LastMessageAtLT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldLastMessageAt, v))
}

// LastMessageAtLTE applies the LTE predicate on the "last_message_at" field.
func LastMessageAtLTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldLastMessageAt, v))
}

// LastMessageAtIsNil applies the IsNil predicate on the "last_message_at" field.
func LastMessageAtIsNil() predicate.Thread {
	return predicate.Thread(sql.FieldIsNull(FieldLastMessageAt))
}

// LastMessageAtNotNil applies the NotNil predicate on the "last_message_at" field.
func LastMessageAtNotNil() predicate.Thread {
	return predicate.Thread(sql.FieldNotNull(FieldLastMessageAt))
}

// LastMessagePreviewEQ applies the EQ predicate on the "last_message_preview" field.
func LastMessagePreviewEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldLastMessagePreview, v))
}

// LastMessagePreviewNEQ applies the NEQ predicate on the "last_message_preview" field.
func LastMessagePreviewNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldLastMessagePreview, v))
}

// LastMessagePreviewIn applies the In predicate on the "last_message_preview" field.
func LastMessagePreviewIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldLastMessagePreview, vs...))
}

// LastMessagePreviewNotIn applies the NotIn predicate on the "last_message_preview" field.
func LastMessagePreviewNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldLastMessagePreview, vs...))
}

// LastMessagePreviewGT applies the GT predicate on the "last_message_preview" field.
func LastMessagePreviewGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldLastMessagePreview, v))
}

// LastMessagePreviewGTE applies the GTE predicate on the "last_message_preview" field.
func LastMessagePreviewGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldLastMessagePreview, v))
}

// LastMessagePreviewLT applies the LT predicate on the "last_message_preview" field.
func LastMessagePreviewLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldLastMessagePreview, v))
}

// LastMessagePreviewLTE applies the LTE predicate on the "last_message_preview" field.
func LastMessagePreviewLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldLastMessagePreview, v))
}

// LastMessagePreviewContains applies the Contains predicate on the "last_message_preview" field.
func LastMessagePreviewContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldLastMessagePreview, v))
}

// LastMessagePreviewHasPrefix applies the HasPrefix predicate on the "last_message_preview" field.
func LastMessagePreviewHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldLastMessagePreview, v))
}

// LastMessagePreviewHasSuffix applies the HasSuffix predicate on the "last_message_preview" field.
func LastMessagePreviewHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldLastMessagePreview, v))
}

// LastMessagePreviewIsNil applies the IsNil predicate on the "last_message_preview" field.
func LastMessagePreviewIsNil() predicate.Thread {
	return predicate.Thread(sql.FieldIsNull(FieldLastMessagePreview))
}

// LastMessagePreviewNotNil applies the NotNil predicate on the "last_message_preview" field.
func LastMessagePreviewNotNil() predicate.Thread {
	return predicate.Thread(sql.FieldNotNull(FieldLastMessagePreview))
}

// LastMessagePreviewEqualFold applies the EqualFold predicate on the "last_message_preview" field.
func LastMessagePreviewEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldLastMessagePreview, v))
}

// LastMessagePreviewContainsFold applies the ContainsFold predicate on the "last_message_preview" field.
func LastMessagePreviewContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldLastMessagePreview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Thread) predicate.Thread {
	return predicate.Thread(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Thread) predicate.Thread {
	return predicate.Thread(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Thread) predicate.Thread {
	return predicate.Thread(sql.NotPredicates(p))
}
