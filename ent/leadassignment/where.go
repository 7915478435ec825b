// Code generated by ent, DO NOT EDIT.

package leadassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agencydesk/agencydesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldLeadID, v))
}

// SalesPersonID applies equality check predicate on the "sales_person_id" field. It's identical to SalesPersonIDEQ.
func SalesPersonID(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldSalesPersonID, v))
}

// AssignedBy applies equality check predicate on the "assigned_by" field. It's identical to AssignedByEQ.
func AssignedBy(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldAssignedBy, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldNotes, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldAssignedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNotIn(FieldLeadID, vs...))
}

// SalesPersonIDEQ applies the EQ predicate on the "sales_person_id" field.
func SalesPersonIDEQ(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldSalesPersonID, v))
}

// SalesPersonIDNEQ applies the NEQ predicate on the "sales_person_id" field.
func SalesPersonIDNEQ(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNEQ(FieldSalesPersonID, v))
}

// SalesPersonIDIn applies the In predicate on the "sales_person_id" field.
func SalesPersonIDIn(vs ...int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldIn(FieldSalesPersonID, vs...))
}

// SalesPersonIDNotIn applies the NotIn predicate on the "sales_person_id" field.
func SalesPersonIDNotIn(vs ...int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNotIn(FieldSalesPersonID, vs...))
}

// AssignedByEQ applies the EQ predicate on the "assigned_by" field.
func AssignedByEQ(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldAssignedBy, v))
}

// AssignedByNEQ applies the NEQ predicate on the "assigned_by" field.
func AssignedByNEQ(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNEQ(FieldAssignedBy, v))
}

// AssignedByIn applies the In predicate on the "assigned_by" field.
func AssignedByIn(vs ...int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldIn(FieldAssignedBy, vs...))
}

// AssignedByNotIn applies the NotIn predicate on the "assigned_by" field.
func AssignedByNotIn(vs ...int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNotIn(FieldAssignedBy, vs...))
}

// AssignedByGT applies the GT predicate on the "assigned_by" field.
func AssignedByGT(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGT(FieldAssignedBy, v))
}

// AssignedByGTE applies the GTE predicate on the "assigned_by" field.
func AssignedByGTE(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGTE(FieldAssignedBy, v))
}

// AssignedByLT applies the LT predicate on the "assigned_by" field.
func AssignedByLT(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLT(FieldAssignedBy, v))
}

// AssignedByLTE applies the LTE predicate on the "assigned_by" field.
func AssignedByLTE(v int) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLTE(FieldAssignedBy, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNotIn(FieldStatus, vs...))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldContainsFold(FieldNotes, v))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLTE(FieldAssignedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.LeadAssignment {
	return predicate.LeadAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.LeadAssignment {
	return predicate.LeadAssignment(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSalesPerson applies the HasEdge predicate on the "sales_person" edge.
func HasSalesPerson() predicate.LeadAssignment {
	return predicate.LeadAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SalesPersonTable, SalesPersonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSalesPersonWith applies the HasEdge predicate on the "sales_person" edge with a given conditions (other predicates).
func HasSalesPersonWith(preds ...predicate.User) predicate.LeadAssignment {
	return predicate.LeadAssignment(func(s *sql.Selector) {
		step := newSalesPersonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeadAssignment) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeadAssignment) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeadAssignment) predicate.LeadAssignment {
	return predicate.LeadAssignment(sql.NotPredicates(p))
}
