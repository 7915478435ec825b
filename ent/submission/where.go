// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agencydesk/agencydesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// SubmissionNumber applies equality check predicate on the "submission_number" field. It's identical to SubmissionNumberEQ.
func SubmissionNumber(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmissionNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDescription, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTaskID, v))
}

// RequirementID applies equality check predicate on the "requirement_id" field. It's identical to RequirementIDEQ.
func RequirementID(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldRequirementID, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldClientID, v))
}

// SubmittedBy applies equality check predicate on the "submitted_by" field. It's identical to SubmittedByEQ.
func SubmittedBy(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedBy, v))
}

// ReviewNotes applies equality check predicate on the "review_notes" field. It's identical to ReviewNotesEQ.
func ReviewNotes(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldReviewedAt, v))
}

// ResubmissionOf applies equality check predicate on the "resubmission_of" field. It's identical to ResubmissionOfEQ.
func ResubmissionOf(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldResubmissionOf, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubmissionNumberEQ applies the EQ predicate on the "submission_number" field.
func SubmissionNumberEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmissionNumber, v))
}

// SubmissionNumberNEQ applies the NEQ predicate on the "submission_number" field.
func SubmissionNumberNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmissionNumber, v))
}

// SubmissionNumberIn applies the In predicate on the "submission_number" field.
func SubmissionNumberIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmissionNumber, vs...))
}

// SubmissionNumberNotIn applies the NotIn predicate on the "submission_number" field.
func SubmissionNumberNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmissionNumber, vs...))
}

// SubmissionNumberGT applies the GT predicate on the "submission_number" field.
func SubmissionNumberGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmissionNumber, v))
}

// SubmissionNumberGTE applies the GTE predicate on the "submission_number" field.
func SubmissionNumberGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmissionNumber, v))
}

// SubmissionNumberLT applies the LT predicate on the "submission_number" field.
func SubmissionNumberLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmissionNumber, v))
}

// SubmissionNumberLTE applies the LTE predicate on the "submission_number" field.
func SubmissionNumberLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmissionNumber, v))
}

// SubmissionNumberContains applies the Contains predicate on the "submission_number" field.
func SubmissionNumberContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmissionNumber, v))
}

// SubmissionNumberHasPrefix applies the HasPrefix predicate on the "submission_number" field.
func SubmissionNumberHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmissionNumber, v))
}

// SubmissionNumberHasSuffix applies the HasSuffix predicate on the "submission_number" field.
func SubmissionNumberHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmissionNumber, v))
}

// SubmissionNumberEqualFold applies the EqualFold predicate on the "submission_number" field.
func SubmissionNumberEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmissionNumber, v))
}

// SubmissionNumberContainsFold applies the ContainsFold predicate on the "submission_number" field.
func SubmissionNumberContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmissionNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldDescription, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTaskID, vs...))
}

// RequirementIDEQ applies the EQ predicate on the "requirement_id" field.
func RequirementIDEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldRequirementID, v))
}

// RequirementIDNEQ applies the NEQ predicate on the "requirement_id" field.
func RequirementIDNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldRequirementID, v))
}

// RequirementIDIn applies the In predicate on the "requirement_id" field.
func RequirementIDIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldRequirementID, vs...))
}

// RequirementIDNotIn applies the NotIn predicate on the "requirement_id" field.
func RequirementIDNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldRequirementID, vs...))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldClientID, vs...))
}

// SubmittedByEQ applies the EQ predicate on the "submitted_by" field.
func SubmittedByEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedBy, v))
}

// SubmittedByNEQ applies the NEQ predicate on the "submitted_by" field.
func SubmittedByNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmittedBy, v))
}

// SubmittedByIn applies the In predicate on the "submitted_by" field.
func SubmittedByIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmittedBy, vs...))
}

// SubmittedByNotIn applies the NotIn predicate on the "submitted_by" field.
func SubmittedByNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmittedBy, vs...))
}

// DeliverablesIsNil applies the IsNil predicate on the "deliverables" field.
func DeliverablesIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldDeliverables))
}

// DeliverablesNotNil applies the NotNil predicate on the "deliverables" field.
func DeliverablesNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldDeliverables))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestedChangesIsNil applies the IsNil predicate on the "requested_changes" field.
func RequestedChangesIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldRequestedChanges))
}

// RequestedChangesNotNil applies the NotNil predicate on the "requested_changes" field.
func RequestedChangesNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldRequestedChanges))
}

// ReviewNotesEQ applies the EQ predicate on the "review_notes" field.
func ReviewNotesEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewNotesNEQ applies the NEQ predicate on the "review_notes" field.
func ReviewNotesNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldReviewNotes, v))
}

// ReviewNotesIn applies the In predicate on the "review_notes" field.
func ReviewNotesIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldReviewNotes, vs...))
}

// ReviewNotesNotIn applies the NotIn predicate on the "review_notes" field.
func ReviewNotesNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldReviewNotes, vs...))
}

// ReviewNotesGT applies the GT predicate on the "review_notes" field.
func ReviewNotesGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldReviewNotes, v))
}

// ReviewNotesGTE applies the GTE predicate on the "review_notes" field.
func ReviewNotesGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldReviewNotes, v))
}

// ReviewNotesLT applies the LT predicate on the "review_notes" field.
func ReviewNotesLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldReviewNotes, v))
}

// ReviewNotesLTE applies the LTE predicate on the "review_notes" field.
func ReviewNotesLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldReviewNotes, v))
}

// ReviewNotesContains applies the Contains predicate on the "review_notes" field.
func ReviewNotesContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldReviewNotes, v))
}

// ReviewNotesHasPrefix applies the HasPrefix predicate on the "review_notes" field.
func ReviewNotesHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldReviewNotes, v))
}

// ReviewNotesHasSuffix applies the HasSuffix predicate on the "review_notes" field.
func ReviewNotesHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldReviewNotes, v))
}

// ReviewNotesIsNil applies the IsNil predicate on the "review_notes" field.
func ReviewNotesIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldReviewNotes))
}

// ReviewNotesNotNil applies the NotNil predicate on the "review_notes" field.
func ReviewNotesNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldReviewNotes))
}

// ReviewNotesEqualFold applies the EqualFold predicate on the "review_notes" field.
func ReviewNotesEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldReviewNotes, v))
}

// ReviewNotesContainsFold applies the ContainsFold predicate on the "review_notes" field.
func ReviewNotesContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldReviewNotes, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldReviewedAt))
}

// ResubmissionOfEQ applies the EQ predicate on the "resubmission_of" field.
func ResubmissionOfEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldResubmissionOf, v))
}

// ResubmissionOfNEQ applies the NEQ predicate on the "resubmission_of" field.
func ResubmissionOfNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldResubmissionOf, v))
}

// ResubmissionOfIn applies the In predicate on the "resubmission_of" field.
func ResubmissionOfIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldResubmissionOf, vs...))
}

// ResubmissionOfNotIn applies the NotIn predicate on the "resubmission_of" field.
func ResubmissionOfNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldResubmissionOf, vs...))
}

// ResubmissionOfGT applies the GT predicate on the "resubmission_of" field.
func ResubmissionOfGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldResubmissionOf, v))
}

// ResubmissionOfGTE applies the GTE predicate on the "resubmission_of" field.
func ResubmissionOfGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldResubmissionOf, v))
}

// ResubmissionOfLT applies the LT predicate on the "resubmission_of" field.
func ResubmissionOfLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldResubmissionOf, v))
}

// ResubmissionOfLTE applies the LTE predicate on the "resubmission_of" field.
func ResubmissionOfLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldResubmissionOf, v))
}

// ResubmissionOfIsNil applies the IsNil predicate on the "resubmission_of" field.
func ResubmissionOfIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldResubmissionOf))
}

// ResubmissionOfNotNil applies the NotNil predicate on the "resubmission_of" field.
func ResubmissionOfNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldResubmissionOf))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRequirement applies the HasEdge predicate on the "requirement" edge.
func HasRequirement() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequirementTable, RequirementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequirementWith applies the HasEdge predicate on the "requirement" edge with a given conditions (other predicates).
func HasRequirementWith(preds ...predicate.Requirement) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newRequirementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.Company) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmitter applies the HasEdge predicate on the "submitter" edge.
func HasSubmitter() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmitterTable, SubmitterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmitterWith applies the HasEdge predicate on the "submitter" edge with a given conditions (other predicates).
func HasSubmitterWith(preds ...predicate.User) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newSubmitterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeedback applies the HasEdge predicate on the "feedback" edge.
func HasFeedback() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FeedbackTable, FeedbackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedbackWith applies the HasEdge predicate on the "feedback" edge with a given conditions (other predicates).
func HasFeedbackWith(preds ...predicate.Feedback) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newFeedbackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
