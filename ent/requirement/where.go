// Code generated by ent, DO NOT EDIT.

package requirement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agencydesk/agencydesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldID, id))
}

// RequirementNumber applies equality check predicate on the "requirement_number" field. It's identical to RequirementNumberEQ.
func RequirementNumber(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldRequirementNumber, v))
}

// RequirementName applies equality check predicate on the "requirement_name" field. It's identical to RequirementNameEQ.
func RequirementName(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldRequirementName, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldClientID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequirementNumberEQ applies the EQ predicate on the "requirement_number" field.
func RequirementNumberEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldRequirementNumber, v))
}

// RequirementNumberNEQ applies the NEQ predicate on the "requirement_number" field.
func RequirementNumberNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldRequirementNumber, v))
}

// RequirementNumberIn applies the In predicate on the "requirement_number" field.
func RequirementNumberIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldRequirementNumber, vs...))
}

// RequirementNumberNotIn applies the NotIn predicate on the "requirement_number" field.
func RequirementNumberNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldRequirementNumber, vs...))
}

// RequirementNumberGT applies the GT predicate on the "requirement_number" field.
func RequirementNumberGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldRequirementNumber, v))
}

// RequirementNumberGTE applies the GTE predicate on the "requirement_number" field.
func RequirementNumberGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldRequirementNumber, v))
}

// RequirementNumberLT applies the LT predicate on the "requirement_number" field.
func RequirementNumberLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldRequirementNumber, v))
}

// RequirementNumberLTE applies the LTE predicate on the "requirement_number" field.
func RequirementNumberLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldRequirementNumber, v))
}

// RequirementNumberContains applies the Contains predicate on the "requirement_number" field.
func RequirementNumberContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldRequirementNumber, v))
}

// RequirementNumberHasPrefix applies the HasPrefix predicate on the "requirement_number" field.
func RequirementNumberHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldRequirementNumber, v))
}

// RequirementNumberHasSuffix applies the HasSuffix predicate on the "requirement_number" field.
func RequirementNumberHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldRequirementNumber, v))
}

// RequirementNumberEqualFold applies the EqualFold predicate on the "requirement_number" field.
func RequirementNumberEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldRequirementNumber, v))
}

// RequirementNumberContainsFold applies the ContainsFold predicate on the "requirement_number" field.
func RequirementNumberContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldRequirementNumber, v))
}

// RequirementNameEQ applies the EQ predicate on the "requirement_name" field.
func RequirementNameEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldRequirementName, v))
}

// RequirementNameNEQ applies the NEQ predicate on the "requirement_name" field.
func RequirementNameNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldRequirementName, v))
}

// RequirementNameIn applies the In predicate on the "requirement_name" field.
func RequirementNameIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldRequirementName, vs...))
}

// RequirementNameNotIn applies the NotIn predicate on the "requirement_name" field.
func RequirementNameNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldRequirementName, vs...))
}

// RequirementNameGT applies the GT predicate on the "requirement_name" field.
func RequirementNameGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldRequirementName, v))
}

// RequirementNameGTE applies the GTE predicate on the "requirement_name" field.
func RequirementNameGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldRequirementName, v))
}

// RequirementNameLT applies the LT predicate on the "requirement_name" field.
func RequirementNameLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldRequirementName, v))
}

// RequirementNameLTE applies the LTE predicate on the "requirement_name" field.
func RequirementNameLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldRequirementName, v))
}

// RequirementNameContains applies the Contains predicate on the "requirement_name" field.
func RequirementNameContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldRequirementName, v))
}

// RequirementNameHasPrefix applies the HasPrefix predicate on the "requirement_name" field.
func RequirementNameHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldRequirementName, v))
}

// RequirementNameHasSuffix applies the HasSuffix predicate on the "requirement_name" field.
func RequirementNameHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldRequirementName, v))
}

// RequirementNameEqualFold applies the EqualFold predicate on the "requirement_name" field.
func RequirementNameEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldRequirementName, v))
}

// RequirementNameContainsFold applies the ContainsFold predicate on the "requirement_name" field.
func RequirementNameContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldRequirementName, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldClientID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldStatus, vs...))
}

// AssignedEmployeesIsNil applies the IsNil predicate on the "assigned_employees" field.
func AssignedEmployeesIsNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldIsNull(FieldAssignedEmployees))
}

// AssignedEmployeesNotNil applies the NotNil predicate on the "assigned_employees" field.
func AssignedEmployeesNotNil() predicate.Requirement {
	return predicate.Requirement(sql.FieldNotNull(FieldAssignedEmployees))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.Company) predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Requirement) predicate.Requirement {
	return predicate.Requirement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Requirement) predicate.Requirement {
	return predicate.Requirement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Requirement) predicate.Requirement {
	return predicate.Requirement(sql.NotPredicates(p))
}
