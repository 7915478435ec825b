// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/counter"
	"github.com/agencydesk/agencydesk/ent/feedback"
	"github.com/agencydesk/agencydesk/ent/file"
	"github.com/agencydesk/agencydesk/ent/lead"
	"github.com/agencydesk/agencydesk/ent/leadactivity"
	"github.com/agencydesk/agencydesk/ent/leadassignment"
	"github.com/agencydesk/agencydesk/ent/leadnote"
	"github.com/agencydesk/agencydesk/ent/message"
	"github.com/agencydesk/agencydesk/ent/predicate"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/thread"
	"github.com/agencydesk/agencydesk/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompany        = "Company"
	TypeCounter        = "Counter"
	TypeFeedback       = "Feedback"
	TypeFile           = "File"
	TypeLead           = "Lead"
	TypeLeadActivity   = "LeadActivity"
	TypeLeadAssignment = "LeadAssignment"
	TypeLeadNote       = "LeadNote"
	TypeMessage        = "Message"
	TypeRequirement    = "Requirement"
	TypeSubmission     = "Submission"
	TypeTask           = "Task"
	TypeThread         = "Thread"
	TypeUser           = "User"
)

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	company_name        *string
	industry            *string
	status              *company.Status
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	user                *int
	cleareduser         bool
	sales_person        *int
	clearedsales_person bool
	requirements        map[int]struct{}
	removedrequirements map[int]struct{}
	clearedrequirements bool
	submissions         map[int]struct{}
	removedsubmissions  map[int]struct{}
	clearedsubmissions  bool
	feedback            map[int]struct{}
	removedfeedback     map[int]struct{}
	clearedfeedback     bool
	done                bool
	oldValue            func(context.Context) (*Company, error)
	predicates          []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id int) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CompanyMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CompanyMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CompanyMutation) ResetUserID() {
	m.user = nil
}

// SetCompanyName sets the "company_name" field.
func (m *CompanyMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *CompanyMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *CompanyMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetIndustry sets the "industry" field.
func (m *CompanyMutation) SetIndustry(s string) {
	m.industry = &s
}

// Industry returns the value of the "industry" field in the mutation.
func (m *CompanyMutation) Industry() (r string, exists bool) {
	v := m.industry
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustry returns the old "industry" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldIndustry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustry: %w", err)
	}
	return oldValue.Industry, nil
}

// ClearIndustry clears the value of the "industry" field.
func (m *CompanyMutation) ClearIndustry() {
	m.industry = nil
	m.clearedFields[company.FieldIndustry] = struct{}{}
}

// IndustryCleared returns if the "industry" field was cleared in this mutation.
func (m *CompanyMutation) IndustryCleared() bool {
	_, ok := m.clearedFields[company.FieldIndustry]
	return ok
}

// ResetIndustry resets all changes to the "industry" field.
func (m *CompanyMutation) ResetIndustry() {
	m.industry = nil
	delete(m.clearedFields, company.FieldIndustry)
}

// SetStatus sets the "status" field.
func (m *CompanyMutation) SetStatus(c company.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CompanyMutation) Status() (r company.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldStatus(ctx context.Context) (v company.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CompanyMutation) ResetStatus() {
	m.status = nil
}

// SetSalesPersonID sets the "sales_person_id" field.
func (m *CompanyMutation) SetSalesPersonID(i int) {
	m.sales_person = &i
}

// SalesPersonID returns the value of the "sales_person_id" field in the mutation.
func (m *CompanyMutation) SalesPersonID() (r int, exists bool) {
	v := m.sales_person
	if v == nil {
		return
	}
	return *v, true
}

// OldSalesPersonID returns the old "sales_person_id" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldSalesPersonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalesPersonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalesPersonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalesPersonID: %w", err)
	}
	return oldValue.SalesPersonID, nil
}

// ResetSalesPersonID resets all changes to the "sales_person_id" field.
func (m *CompanyMutation) ResetSalesPersonID() {
	m.sales_person = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *CompanyMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[company.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *CompanyMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *CompanyMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *CompanyMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearSalesPerson clears the "sales_person" edge to the User entity.
func (m *CompanyMutation) ClearSalesPerson() {
	m.clearedsales_person = true
	m.clearedFields[company.FieldSalesPersonID] = struct{}{}
}

// SalesPersonCleared reports if the "sales_person" edge to the User entity was cleared.
func (m *CompanyMutation) SalesPersonCleared() bool {
	return m.clearedsales_person
}

// SalesPersonIDs returns the "sales_person" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SalesPersonID instead. It exists only for internal usage by the builders.
func (m *CompanyMutation) SalesPersonIDs() (ids []int) {
	if id := m.sales_person; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSalesPerson resets all changes to the "sales_person" edge.
func (m *CompanyMutation) ResetSalesPerson() {
	m.sales_person = nil
	m.clearedsales_person = false
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by ids.
func (m *CompanyMutation) AddRequirementIDs(ids ...int) {
	if m.requirements == nil {
		m.requirements = make(map[int]struct{})
	}
	for i := range ids {
		m.requirements[ids[i]] = struct{}{}
	}
}

// ClearRequirements clears the "requirements" edge to the Requirement entity.
func (m *CompanyMutation) ClearRequirements() {
	m.clearedrequirements = true
}

// RequirementsCleared reports if the "requirements" edge to the Requirement entity was cleared.
func (m *CompanyMutation) RequirementsCleared() bool {
	return m.clearedrequirements
}

// RemoveRequirementIDs removes the "requirements" edge to the Requirement entity by IDs.
func (m *CompanyMutation) RemoveRequirementIDs(ids ...int) {
	if m.removedrequirements == nil {
		m.removedrequirements = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.requirements, ids[i])
		m.removedrequirements[ids[i]] = struct{}{}
	}
}

// RemovedRequirements returns the removed IDs of the "requirements" edge to the Requirement entity.
func (m *CompanyMutation) RemovedRequirementsIDs() (ids []int) {
	for id := range m.removedrequirements {
		ids = append(ids, id)
	}
	return
}

// RequirementsIDs returns the "requirements" edge IDs in the mutation.
func (m *CompanyMutation) RequirementsIDs() (ids []int) {
	for id := range m.requirements {
		ids = append(ids, id)
	}
	return
}

// ResetRequirements resets all changes to the "requirements" edge.
func (m *CompanyMutation) ResetRequirements() {
	m.requirements = nil
	m.clearedrequirements = false
	m.removedrequirements = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *CompanyMutation) AddSubmissionIDs(ids ...int) {
	if m.submissions == nil {
		m.submissions = make(map[int]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *CompanyMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *CompanyMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *CompanyMutation) RemoveSubmissionIDs(ids ...int) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *CompanyMutation) RemovedSubmissionsIDs() (ids []int) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *CompanyMutation) SubmissionsIDs() (ids []int) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *CompanyMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by ids.
func (m *CompanyMutation) AddFeedbackIDs(ids ...int) {
	if m.feedback == nil {
		m.feedback = make(map[int]struct{})
	}
	for i := range ids {
		m.feedback[ids[i]] = struct{}{}
	}
}

// ClearFeedback clears the "feedback" edge to the Feedback entity.
func (m *CompanyMutation) ClearFeedback() {
	m.clearedfeedback = true
}

// FeedbackCleared reports if the "feedback" edge to the Feedback entity was cleared.
func (m *CompanyMutation) FeedbackCleared() bool {
	return m.clearedfeedback
}

// RemoveFeedbackIDs removes the "feedback" edge to the Feedback entity by IDs.
func (m *CompanyMutation) RemoveFeedbackIDs(ids ...int) {
	if m.removedfeedback == nil {
		m.removedfeedback = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.feedback, ids[i])
		m.removedfeedback[ids[i]] = struct{}{}
	}
}

// RemovedFeedback returns the removed IDs of the "feedback" edge to the Feedback entity.
func (m *CompanyMutation) RemovedFeedbackIDs() (ids []int) {
	for id := range m.removedfeedback {
		ids = append(ids, id)
	}
	return
}

// FeedbackIDs returns the "feedback" edge IDs in the mutation.
func (m *CompanyMutation) FeedbackIDs() (ids []int) {
	for id := range m.feedback {
		ids = append(ids, id)
	}
	return
}

// ResetFeedback resets all changes to the "feedback" edge.
func (m *CompanyMutation) ResetFeedback() {
	m.feedback = nil
	m.clearedfeedback = false
	m.removedfeedback = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user != nil {
		fields = append(fields, company.FieldUserID)
	}
	if m.company_name != nil {
		fields = append(fields, company.FieldCompanyName)
	}
	if m.industry != nil {
		fields = append(fields, company.FieldIndustry)
	}
	if m.status != nil {
		fields = append(fields, company.FieldStatus)
	}
	if m.sales_person != nil {
		fields = append(fields, company.FieldSalesPersonID)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldUserID:
		return m.UserID()
	case company.FieldCompanyName:
		return m.CompanyName()
	case company.FieldIndustry:
		return m.Industry()
	case company.FieldStatus:
		return m.Status()
	case company.FieldSalesPersonID:
		return m.SalesPersonID()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldUserID:
		return m.OldUserID(ctx)
	case company.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case company.FieldIndustry:
		return m.OldIndustry(ctx)
	case company.FieldStatus:
		return m.OldStatus(ctx)
	case company.FieldSalesPersonID:
		return m.OldSalesPersonID(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case company.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case company.FieldIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustry(v)
		return nil
	case company.FieldStatus:
		v, ok := value.(company.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case company.FieldSalesPersonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalesPersonID(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldIndustry) {
		fields = append(fields, company.FieldIndustry)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldIndustry:
		m.ClearIndustry()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldUserID:
		m.ResetUserID()
		return nil
	case company.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case company.FieldIndustry:
		m.ResetIndustry()
		return nil
	case company.FieldStatus:
		m.ResetStatus()
		return nil
	case company.FieldSalesPersonID:
		m.ResetSalesPersonID()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.user != nil {
		edges = append(edges, company.EdgeUser)
	}
	if m.sales_person != nil {
		edges = append(edges, company.EdgeSalesPerson)
	}
	if m.requirements != nil {
		edges = append(edges, company.EdgeRequirements)
	}
	if m.submissions != nil {
		edges = append(edges, company.EdgeSubmissions)
	}
	if m.feedback != nil {
		edges = append(edges, company.EdgeFeedback)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case company.EdgeSalesPerson:
		if id := m.sales_person; id != nil {
			return []ent.Value{*id}
		}
	case company.EdgeRequirements:
		ids := make([]ent.Value, 0, len(m.requirements))
		for id := range m.requirements {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.feedback))
		for id := range m.feedback {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedrequirements != nil {
		edges = append(edges, company.EdgeRequirements)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, company.EdgeSubmissions)
	}
	if m.removedfeedback != nil {
		edges = append(edges, company.EdgeFeedback)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeRequirements:
		ids := make([]ent.Value, 0, len(m.removedrequirements))
		for id := range m.removedrequirements {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.removedfeedback))
		for id := range m.removedfeedback {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.cleareduser {
		edges = append(edges, company.EdgeUser)
	}
	if m.clearedsales_person {
		edges = append(edges, company.EdgeSalesPerson)
	}
	if m.clearedrequirements {
		edges = append(edges, company.EdgeRequirements)
	}
	if m.clearedsubmissions {
		edges = append(edges, company.EdgeSubmissions)
	}
	if m.clearedfeedback {
		edges = append(edges, company.EdgeFeedback)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeUser:
		return m.cleareduser
	case company.EdgeSalesPerson:
		return m.clearedsales_person
	case company.EdgeRequirements:
		return m.clearedrequirements
	case company.EdgeSubmissions:
		return m.clearedsubmissions
	case company.EdgeFeedback:
		return m.clearedfeedback
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	case company.EdgeUser:
		m.ClearUser()
		return nil
	case company.EdgeSalesPerson:
		m.ClearSalesPerson()
		return nil
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeUser:
		m.ResetUser()
		return nil
	case company.EdgeSalesPerson:
		m.ResetSalesPerson()
		return nil
	case company.EdgeRequirements:
		m.ResetRequirements()
		return nil
	case company.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	case company.EdgeFeedback:
		m.ResetFeedback()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// CounterMutation represents an operation that mutates the Counter nodes in the graph.
type CounterMutation struct {
	config
	op            Op
	typ           string
	id            *int
	scope         *string
	value         *int
	addvalue      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Counter, error)
	predicates    []predicate.Counter
}

var _ ent.Mutation = (*CounterMutation)(nil)

// counterOption allows management of the mutation configuration using functional options.
type counterOption func(*CounterMutation)

// newCounterMutation creates new mutation for the Counter entity.
func newCounterMutation(c config, op Op, opts ...counterOption) *CounterMutation {
	m := &CounterMutation{
		config:        c,
		op:            op,
		typ:           TypeCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCounterID sets the ID field of the mutation.
func withCounterID(id int) counterOption {
	return func(m *CounterMutation) {
		var (
			err   error
			once  sync.Once
			value *Counter
		)
		m.oldValue = func(ctx context.Context) (*Counter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Counter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCounter sets the old Counter of the mutation.
func withCounter(node *Counter) counterOption {
	return func(m *CounterMutation) {
		m.oldValue = func(context.Context) (*Counter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CounterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CounterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Counter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScope sets the "scope" field.
func (m *CounterMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *CounterMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Counter entity.
// If the Counter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CounterMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *CounterMutation) ResetScope() {
	m.scope = nil
}

// SetValue sets the "value" field.
func (m *CounterMutation) SetValue(i int) {
	m.value = &i
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *CounterMutation) Value() (r int, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Counter entity.
// If the Counter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CounterMutation) OldValue(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds i to the "value" field.
func (m *CounterMutation) AddValue(i int) {
	if m.addvalue != nil {
		*m.addvalue += i
	} else {
		m.addvalue = &i
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *CounterMutation) AddedValue() (r int, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *CounterMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// Where appends a list predicates to the CounterMutation builder.
func (m *CounterMutation) Where(ps ...predicate.Counter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Counter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Counter).
func (m *CounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CounterMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.scope != nil {
		fields = append(fields, counter.FieldScope)
	}
	if m.value != nil {
		fields = append(fields, counter.FieldValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case counter.FieldScope:
		return m.Scope()
	case counter.FieldValue:
		return m.Value()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case counter.FieldScope:
		return m.OldScope(ctx)
	case counter.FieldValue:
		return m.OldValue(ctx)
	}
	return nil, fmt.Errorf("unknown Counter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case counter.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case counter.FieldValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	}
	return fmt.Errorf("unknown Counter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CounterMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, counter.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case counter.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case counter.FieldValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown Counter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Counter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CounterMutation) ResetField(name string) error {
	switch name {
	case counter.FieldScope:
		m.ResetScope()
		return nil
	case counter.FieldValue:
		m.ResetValue()
		return nil
	}
	return fmt.Errorf("unknown Counter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Counter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Counter edge %s", name)
}

// FeedbackMutation represents an operation that mutates the Feedback nodes in the graph.
type FeedbackMutation struct {
	config
	op                Op
	typ               string
	id                *int
	rating            *int
	addrating         *int
	comment           *string
	sentiment         *feedback.Sentiment
	is_public         *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	client            *int
	clearedclient     bool
	author            *int
	clearedauthor     bool
	submission        *int
	clearedsubmission bool
	done              bool
	oldValue          func(context.Context) (*Feedback, error)
	predicates        []predicate.Feedback
}

var _ ent.Mutation = (*FeedbackMutation)(nil)

// feedbackOption allows management of the mutation configuration using functional options.
type feedbackOption func(*FeedbackMutation)

// newFeedbackMutation creates new mutation for the Feedback entity.
func newFeedbackMutation(c config, op Op, opts ...feedbackOption) *FeedbackMutation {
	m := &FeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackID sets the ID field of the mutation.
func withFeedbackID(id int) feedbackOption {
	return func(m *FeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *Feedback
		)
		m.oldValue = func(ctx context.Context) (*Feedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedback sets the old Feedback of the mutation.
func withFeedback(node *Feedback) feedbackOption {
	return func(m *FeedbackMutation) {
		m.oldValue = func(context.Context) (*Feedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *FeedbackMutation) SetClientID(i int) {
	m.client = &i
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *FeedbackMutation) ClientID() (r int, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldClientID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *FeedbackMutation) ResetClientID() {
	m.client = nil
}

// SetAuthorID sets the "author_id" field.
func (m *FeedbackMutation) SetAuthorID(i int) {
	m.author = &i
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *FeedbackMutation) AuthorID() (r int, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldAuthorID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *FeedbackMutation) ResetAuthorID() {
	m.author = nil
}

// SetSubmissionID sets the "submission_id" field.
func (m *FeedbackMutation) SetSubmissionID(i int) {
	m.submission = &i
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *FeedbackMutation) SubmissionID() (r int, exists bool) {
	v := m.submission
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldSubmissionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ClearSubmissionID clears the value of the "submission_id" field.
func (m *FeedbackMutation) ClearSubmissionID() {
	m.submission = nil
	m.clearedFields[feedback.FieldSubmissionID] = struct{}{}
}

// SubmissionIDCleared returns if the "submission_id" field was cleared in this mutation.
func (m *FeedbackMutation) SubmissionIDCleared() bool {
	_, ok := m.clearedFields[feedback.FieldSubmissionID]
	return ok
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *FeedbackMutation) ResetSubmissionID() {
	m.submission = nil
	delete(m.clearedFields, feedback.FieldSubmissionID)
}

// SetRating sets the "rating" field.
func (m *FeedbackMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *FeedbackMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *FeedbackMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *FeedbackMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *FeedbackMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetComment sets the "comment" field.
func (m *FeedbackMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *FeedbackMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *FeedbackMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[feedback.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *FeedbackMutation) CommentCleared() bool {
	_, ok := m.clearedFields[feedback.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *FeedbackMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, feedback.FieldComment)
}

// SetSentiment sets the "sentiment" field.
func (m *FeedbackMutation) SetSentiment(f feedback.Sentiment) {
	m.sentiment = &f
}

// Sentiment returns the value of the "sentiment" field in the mutation.
func (m *FeedbackMutation) Sentiment() (r feedback.Sentiment, exists bool) {
	v := m.sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldSentiment returns the old "sentiment" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldSentiment(ctx context.Context) (v feedback.Sentiment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentiment: %w", err)
	}
	return oldValue.Sentiment, nil
}

// ResetSentiment resets all changes to the "sentiment" field.
func (m *FeedbackMutation) ResetSentiment() {
	m.sentiment = nil
}

// SetIsPublic sets the "is_public" field.
func (m *FeedbackMutation) SetIsPublic(b bool) {
	m.is_public = &b
}

// IsPublic returns the value of the "is_public" field in the mutation.
func (m *FeedbackMutation) IsPublic() (r bool, exists bool) {
	v := m.is_public
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublic returns the old "is_public" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldIsPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublic: %w", err)
	}
	return oldValue.IsPublic, nil
}

// ResetIsPublic resets all changes to the "is_public" field.
func (m *FeedbackMutation) ResetIsPublic() {
	m.is_public = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClient clears the "client" edge to the Company entity.
func (m *FeedbackMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[feedback.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Company entity was cleared.
func (m *FeedbackMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *FeedbackMutation) ClientIDs() (ids []int) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *FeedbackMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// ClearAuthor clears the "author" edge to the User entity.
func (m *FeedbackMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[feedback.FieldAuthorID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the User entity was cleared.
func (m *FeedbackMutation) AuthorCleared() bool {
	return m.clearedauthor
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *FeedbackMutation) AuthorIDs() (ids []int) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *FeedbackMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (m *FeedbackMutation) ClearSubmission() {
	m.clearedsubmission = true
	m.clearedFields[feedback.FieldSubmissionID] = struct{}{}
}

// SubmissionCleared reports if the "submission" edge to the Submission entity was cleared.
func (m *FeedbackMutation) SubmissionCleared() bool {
	return m.SubmissionIDCleared() || m.clearedsubmission
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *FeedbackMutation) SubmissionIDs() (ids []int) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *FeedbackMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// Where appends a list predicates to the FeedbackMutation builder.
func (m *FeedbackMutation) Where(ps ...predicate.Feedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feedback).
func (m *FeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.client != nil {
		fields = append(fields, feedback.FieldClientID)
	}
	if m.author != nil {
		fields = append(fields, feedback.FieldAuthorID)
	}
	if m.submission != nil {
		fields = append(fields, feedback.FieldSubmissionID)
	}
	if m.rating != nil {
		fields = append(fields, feedback.FieldRating)
	}
	if m.comment != nil {
		fields = append(fields, feedback.FieldComment)
	}
	if m.sentiment != nil {
		fields = append(fields, feedback.FieldSentiment)
	}
	if m.is_public != nil {
		fields = append(fields, feedback.FieldIsPublic)
	}
	if m.created_at != nil {
		fields = append(fields, feedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldClientID:
		return m.ClientID()
	case feedback.FieldAuthorID:
		return m.AuthorID()
	case feedback.FieldSubmissionID:
		return m.SubmissionID()
	case feedback.FieldRating:
		return m.Rating()
	case feedback.FieldComment:
		return m.Comment()
	case feedback.FieldSentiment:
		return m.Sentiment()
	case feedback.FieldIsPublic:
		return m.IsPublic()
	case feedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedback.FieldClientID:
		return m.OldClientID(ctx)
	case feedback.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case feedback.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case feedback.FieldRating:
		return m.OldRating(ctx)
	case feedback.FieldComment:
		return m.OldComment(ctx)
	case feedback.FieldSentiment:
		return m.OldSentiment(ctx)
	case feedback.FieldIsPublic:
		return m.OldIsPublic(ctx)
	case feedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Feedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldClientID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case feedback.FieldAuthorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case feedback.FieldSubmissionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case feedback.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case feedback.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case feedback.FieldSentiment:
		v, ok := value.(feedback.Sentiment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentiment(v)
		return nil
	case feedback.FieldIsPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublic(v)
		return nil
	case feedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, feedback.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedback.FieldSubmissionID) {
		fields = append(fields, feedback.FieldSubmissionID)
	}
	if m.FieldCleared(feedback.FieldComment) {
		fields = append(fields, feedback.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackMutation) ClearField(name string) error {
	switch name {
	case feedback.FieldSubmissionID:
		m.ClearSubmissionID()
		return nil
	case feedback.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown Feedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackMutation) ResetField(name string) error {
	switch name {
	case feedback.FieldClientID:
		m.ResetClientID()
		return nil
	case feedback.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case feedback.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case feedback.FieldRating:
		m.ResetRating()
		return nil
	case feedback.FieldComment:
		m.ResetComment()
		return nil
	case feedback.FieldSentiment:
		m.ResetSentiment()
		return nil
	case feedback.FieldIsPublic:
		m.ResetIsPublic()
		return nil
	case feedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.client != nil {
		edges = append(edges, feedback.EdgeClient)
	}
	if m.author != nil {
		edges = append(edges, feedback.EdgeAuthor)
	}
	if m.submission != nil {
		edges = append(edges, feedback.EdgeSubmission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedback.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case feedback.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	case feedback.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedclient {
		edges = append(edges, feedback.EdgeClient)
	}
	if m.clearedauthor {
		edges = append(edges, feedback.EdgeAuthor)
	}
	if m.clearedsubmission {
		edges = append(edges, feedback.EdgeSubmission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackMutation) EdgeCleared(name string) bool {
	switch name {
	case feedback.EdgeClient:
		return m.clearedclient
	case feedback.EdgeAuthor:
		return m.clearedauthor
	case feedback.EdgeSubmission:
		return m.clearedsubmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackMutation) ClearEdge(name string) error {
	switch name {
	case feedback.EdgeClient:
		m.ClearClient()
		return nil
	case feedback.EdgeAuthor:
		m.ClearAuthor()
		return nil
	case feedback.EdgeSubmission:
		m.ClearSubmission()
		return nil
	}
	return fmt.Errorf("unknown Feedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackMutation) ResetEdge(name string) error {
	switch name {
	case feedback.EdgeClient:
		m.ResetClient()
		return nil
	case feedback.EdgeAuthor:
		m.ResetAuthor()
		return nil
	case feedback.EdgeSubmission:
		m.ResetSubmission()
		return nil
	}
	return fmt.Errorf("unknown Feedback edge %s", name)
}

// FileMutation represents an operation that mutates the File nodes in the graph.
type FileMutation struct {
	config
	op              Op
	typ             string
	id              *int
	file_name       *string
	file_type       *string
	file_size       *int64
	addfile_size    *int64
	storage_key     *string
	entity_type     *string
	entity_id       *int
	addentity_id    *int
	created_at      *time.Time
	deleted_at      *time.Time
	clearedFields   map[string]struct{}
	uploader        *int
	cleareduploader bool
	done            bool
	oldValue        func(context.Context) (*File, error)
	predicates      []predicate.File
}

var _ ent.Mutation = (*FileMutation)(nil)

// fileOption allows management of the mutation configuration using functional options.
type fileOption func(*FileMutation)

// newFileMutation creates new mutation for the File entity.
func newFileMutation(c config, op Op, opts ...fileOption) *FileMutation {
	m := &FileMutation{
		config:        c,
		op:            op,
		typ:           TypeFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileID sets the ID field of the mutation.
func withFileID(id int) fileOption {
	return func(m *FileMutation) {
		var (
			err   error
			once  sync.Once
			value *File
		)
		m.oldValue = func(ctx context.Context) (*File, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().File.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFile sets the old File of the mutation.
func withFile(node *File) fileOption {
	return func(m *FileMutation) {
		m.oldValue = func(context.Context) (*File, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().File.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileName sets the "file_name" field.
func (m *FileMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *FileMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *FileMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileType sets the "file_type" field.
func (m *FileMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *FileMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ClearFileType clears the value of the "file_type" field.
func (m *FileMutation) ClearFileType() {
	m.file_type = nil
	m.clearedFields[file.FieldFileType] = struct{}{}
}

// FileTypeCleared returns if the "file_type" field was cleared in this mutation.
func (m *FileMutation) FileTypeCleared() bool {
	_, ok := m.clearedFields[file.FieldFileType]
	return ok
}

// ResetFileType resets all changes to the "file_type" field.
func (m *FileMutation) ResetFileType() {
	m.file_type = nil
	delete(m.clearedFields, file.FieldFileType)
}

// SetFileSize sets the "file_size" field.
func (m *FileMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *FileMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *FileMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *FileMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *FileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *FileMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *FileMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *FileMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetUploadedBy sets the "uploaded_by" field.
func (m *FileMutation) SetUploadedBy(i int) {
	m.uploader = &i
}

// UploadedBy returns the value of the "uploaded_by" field in the mutation.
func (m *FileMutation) UploadedBy() (r int, exists bool) {
	v := m.uploader
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedBy returns the old "uploaded_by" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldUploadedBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedBy: %w", err)
	}
	return oldValue.UploadedBy, nil
}

// ResetUploadedBy resets all changes to the "uploaded_by" field.
func (m *FileMutation) ResetUploadedBy() {
	m.uploader = nil
}

// SetEntityType sets the "entity_type" field.
func (m *FileMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *FileMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *FileMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *FileMutation) SetEntityID(i int) {
	m.entity_id = &i
	m.addentity_id = nil
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *FileMutation) EntityID() (r int, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldEntityID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// AddEntityID adds i to the "entity_id" field.
func (m *FileMutation) AddEntityID(i int) {
	if m.addentity_id != nil {
		*m.addentity_id += i
	} else {
		m.addentity_id = &i
	}
}

// AddedEntityID returns the value that was added to the "entity_id" field in this mutation.
func (m *FileMutation) AddedEntityID() (r int, exists bool) {
	v := m.addentity_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *FileMutation) ResetEntityID() {
	m.entity_id = nil
	m.addentity_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *FileMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *FileMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *FileMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[file.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *FileMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[file.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *FileMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, file.FieldDeletedAt)
}

// SetUploaderID sets the "uploader" edge to the User entity by id.
func (m *FileMutation) SetUploaderID(id int) {
	m.uploader = &id
}

// ClearUploader clears the "uploader" edge to the User entity.
func (m *FileMutation) ClearUploader() {
	m.cleareduploader = true
	m.clearedFields[file.FieldUploadedBy] = struct{}{}
}

// UploaderCleared reports if the "uploader" edge to the User entity was cleared.
func (m *FileMutation) UploaderCleared() bool {
	return m.cleareduploader
}

// UploaderID returns the "uploader" edge ID in the mutation.
func (m *FileMutation) UploaderID() (id int, exists bool) {
	if m.uploader != nil {
		return *m.uploader, true
	}
	return
}

// UploaderIDs returns the "uploader" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UploaderID instead. It exists only for internal usage by the builders.
func (m *FileMutation) UploaderIDs() (ids []int) {
	if id := m.uploader; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUploader resets all changes to the "uploader" edge.
func (m *FileMutation) ResetUploader() {
	m.uploader = nil
	m.cleareduploader = false
}

// Where appends a list predicates to the FileMutation builder.
func (m *FileMutation) Where(ps ...predicate.File) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.File, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (File).
func (m *FileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.file_name != nil {
		fields = append(fields, file.FieldFileName)
	}
	if m.file_type != nil {
		fields = append(fields, file.FieldFileType)
	}
	if m.file_size != nil {
		fields = append(fields, file.FieldFileSize)
	}
	if m.storage_key != nil {
		fields = append(fields, file.FieldStorageKey)
	}
	if m.uploader != nil {
		fields = append(fields, file.FieldUploadedBy)
	}
	if m.entity_type != nil {
		fields = append(fields, file.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, file.FieldEntityID)
	}
	if m.created_at != nil {
		fields = append(fields, file.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, file.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case file.FieldFileName:
		return m.FileName()
	case file.FieldFileType:
		return m.FileType()
	case file.FieldFileSize:
		return m.FileSize()
	case file.FieldStorageKey:
		return m.StorageKey()
	case file.FieldUploadedBy:
		return m.UploadedBy()
	case file.FieldEntityType:
		return m.EntityType()
	case file.FieldEntityID:
		return m.EntityID()
	case file.FieldCreatedAt:
		return m.CreatedAt()
	case file.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case file.FieldFileName:
		return m.OldFileName(ctx)
	case file.FieldFileType:
		return m.OldFileType(ctx)
	case file.FieldFileSize:
		return m.OldFileSize(ctx)
	case file.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case file.FieldUploadedBy:
		return m.OldUploadedBy(ctx)
	case file.FieldEntityType:
		return m.OldEntityType(ctx)
	case file.FieldEntityID:
		return m.OldEntityID(ctx)
	case file.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case file.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown File field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case file.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case file.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case file.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case file.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case file.FieldUploadedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedBy(v)
		return nil
	case file.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case file.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case file.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case file.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown File field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, file.FieldFileSize)
	}
	if m.addentity_id != nil {
		fields = append(fields, file.FieldEntityID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case file.FieldFileSize:
		return m.AddedFileSize()
	case file.FieldEntityID:
		return m.AddedEntityID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case file.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case file.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntityID(v)
		return nil
	}
	return fmt.Errorf("unknown File numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(file.FieldFileType) {
		fields = append(fields, file.FieldFileType)
	}
	if m.FieldCleared(file.FieldDeletedAt) {
		fields = append(fields, file.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileMutation) ClearField(name string) error {
	switch name {
	case file.FieldFileType:
		m.ClearFileType()
		return nil
	case file.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown File nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileMutation) ResetField(name string) error {
	switch name {
	case file.FieldFileName:
		m.ResetFileName()
		return nil
	case file.FieldFileType:
		m.ResetFileType()
		return nil
	case file.FieldFileSize:
		m.ResetFileSize()
		return nil
	case file.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case file.FieldUploadedBy:
		m.ResetUploadedBy()
		return nil
	case file.FieldEntityType:
		m.ResetEntityType()
		return nil
	case file.FieldEntityID:
		m.ResetEntityID()
		return nil
	case file.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case file.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown File field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.uploader != nil {
		edges = append(edges, file.EdgeUploader)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case file.EdgeUploader:
		if id := m.uploader; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduploader {
		edges = append(edges, file.EdgeUploader)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileMutation) EdgeCleared(name string) bool {
	switch name {
	case file.EdgeUploader:
		return m.cleareduploader
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileMutation) ClearEdge(name string) error {
	switch name {
	case file.EdgeUploader:
		m.ClearUploader()
		return nil
	}
	return fmt.Errorf("unknown File unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileMutation) ResetEdge(name string) error {
	switch name {
	case file.EdgeUploader:
		m.ResetUploader()
		return nil
	}
	return fmt.Errorf("unknown File edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	name                   *string
	company                *string
	email                  *string
	phone                  *string
	city                   *string
	country                *string
	website                *string
	source                 *string
	status                 *lead.Status
	pitched_services       *[]string
	appendpitched_services []string
	import_batch_id        *string
	created_by             *int
	addcreated_by          *int
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	assignments            map[int]struct{}
	removedassignments     map[int]struct{}
	clearedassignments     bool
	activities             map[int]struct{}
	removedactivities      map[int]struct{}
	clearedactivities      bool
	notes                  map[int]struct{}
	removednotes           map[int]struct{}
	clearednotes           bool
	done                   bool
	oldValue               func(context.Context) (*Lead, error)
	predicates             []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LeadMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LeadMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LeadMutation) ResetName() {
	m.name = nil
}

// SetCompany sets the "company" field.
func (m *LeadMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *LeadMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *LeadMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[lead.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *LeadMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *LeadMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, lead.FieldCompany)
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *LeadMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[lead.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *LeadMutation) EmailCleared() bool {
	_, ok := m.clearedFields[lead.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, lead.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *LeadMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[lead.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *LeadMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[lead.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, lead.FieldPhone)
}

// SetCity sets the "city" field.
func (m *LeadMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *LeadMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *LeadMutation) ClearCity() {
	m.city = nil
	m.clearedFields[lead.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *LeadMutation) CityCleared() bool {
	_, ok := m.clearedFields[lead.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *LeadMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, lead.FieldCity)
}

// SetCountry sets the "country" field.
func (m *LeadMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *LeadMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *LeadMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[lead.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *LeadMutation) CountryCleared() bool {
	_, ok := m.clearedFields[lead.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *LeadMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, lead.FieldCountry)
}

// SetWebsite sets the "website" field.
func (m *LeadMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *LeadMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *LeadMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[lead.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *LeadMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[lead.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *LeadMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, lead.FieldWebsite)
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *LeadMutation) ClearSource() {
	m.source = nil
	m.clearedFields[lead.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *LeadMutation) SourceCleared() bool {
	_, ok := m.clearedFields[lead.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, lead.FieldSource)
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetPitchedServices sets the "pitched_services" field.
func (m *LeadMutation) SetPitchedServices(s []string) {
	m.pitched_services = &s
	m.appendpitched_services = nil
}

// PitchedServices returns the value of the "pitched_services" field in the mutation.
func (m *LeadMutation) PitchedServices() (r []string, exists bool) {
	v := m.pitched_services
	if v == nil {
		return
	}
	return *v, true
}

// OldPitchedServices returns the old "pitched_services" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPitchedServices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPitchedServices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPitchedServices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPitchedServices: %w", err)
	}
	return oldValue.PitchedServices, nil
}

// AppendPitchedServices adds s to the "pitched_services" field.
func (m *LeadMutation) AppendPitchedServices(s []string) {
	m.appendpitched_services = append(m.appendpitched_services, s...)
}

// AppendedPitchedServices returns the list of values that were appended to the "pitched_services" field in this mutation.
func (m *LeadMutation) AppendedPitchedServices() ([]string, bool) {
	if len(m.appendpitched_services) == 0 {
		return nil, false
	}
	return m.appendpitched_services, true
}

// ClearPitchedServices clears the value of the "pitched_services" field.
func (m *LeadMutation) ClearPitchedServices() {
	m.pitched_services = nil
	m.appendpitched_services = nil
	m.clearedFields[lead.FieldPitchedServices] = struct{}{}
}

// PitchedServicesCleared returns if the "pitched_services" field was cleared in this mutation.
func (m *LeadMutation) PitchedServicesCleared() bool {
	_, ok := m.clearedFields[lead.FieldPitchedServices]
	return ok
}

// ResetPitchedServices resets all changes to the "pitched_services" field.
func (m *LeadMutation) ResetPitchedServices() {
	m.pitched_services = nil
	m.appendpitched_services = nil
	delete(m.clearedFields, lead.FieldPitchedServices)
}

// SetImportBatchID sets the "import_batch_id" field.
func (m *LeadMutation) SetImportBatchID(s string) {
	m.import_batch_id = &s
}

// ImportBatchID returns the value of the "import_batch_id" field in the mutation.
func (m *LeadMutation) ImportBatchID() (r string, exists bool) {
	v := m.import_batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportBatchID returns the old "import_batch_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldImportBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportBatchID: %w", err)
	}
	return oldValue.ImportBatchID, nil
}

// ClearImportBatchID clears the value of the "import_batch_id" field.
func (m *LeadMutation) ClearImportBatchID() {
	m.import_batch_id = nil
	m.clearedFields[lead.FieldImportBatchID] = struct{}{}
}

// ImportBatchIDCleared returns if the "import_batch_id" field was cleared in this mutation.
func (m *LeadMutation) ImportBatchIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldImportBatchID]
	return ok
}

// ResetImportBatchID resets all changes to the "import_batch_id" field.
func (m *LeadMutation) ResetImportBatchID() {
	m.import_batch_id = nil
	delete(m.clearedFields, lead.FieldImportBatchID)
}

// SetCreatedBy sets the "created_by" field.
func (m *LeadMutation) SetCreatedBy(i int) {
	m.created_by = &i
	m.addcreated_by = nil
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *LeadMutation) CreatedBy() (r int, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// AddCreatedBy adds i to the "created_by" field.
func (m *LeadMutation) AddCreatedBy(i int) {
	if m.addcreated_by != nil {
		*m.addcreated_by += i
	} else {
		m.addcreated_by = &i
	}
}

// AddedCreatedBy returns the value that was added to the "created_by" field in this mutation.
func (m *LeadMutation) AddedCreatedBy() (r int, exists bool) {
	v := m.addcreated_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *LeadMutation) ClearCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
	m.clearedFields[lead.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *LeadMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[lead.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *LeadMutation) ResetCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
	delete(m.clearedFields, lead.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAssignmentIDs adds the "assignments" edge to the LeadAssignment entity by ids.
func (m *LeadMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the LeadAssignment entity.
func (m *LeadMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the LeadAssignment entity was cleared.
func (m *LeadMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the LeadAssignment entity by IDs.
func (m *LeadMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the LeadAssignment entity.
func (m *LeadMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *LeadMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *LeadMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddActivityIDs adds the "activities" edge to the LeadActivity entity by ids.
func (m *LeadMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the LeadActivity entity.
func (m *LeadMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the LeadActivity entity was cleared.
func (m *LeadMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the LeadActivity entity by IDs.
func (m *LeadMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the LeadActivity entity.
func (m *LeadMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *LeadMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *LeadMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// AddNoteIDs adds the "notes" edge to the LeadNote entity by ids.
func (m *LeadMutation) AddNoteIDs(ids ...int) {
	if m.notes == nil {
		m.notes = make(map[int]struct{})
	}
	for i := range ids {
		m.notes[ids[i]] = struct{}{}
	}
}

// ClearNotes clears the "notes" edge to the LeadNote entity.
func (m *LeadMutation) ClearNotes() {
	m.clearednotes = true
}

// NotesCleared reports if the "notes" edge to the LeadNote entity was cleared.
func (m *LeadMutation) NotesCleared() bool {
	return m.clearednotes
}

// RemoveNoteIDs removes the "notes" edge to the LeadNote entity by IDs.
func (m *LeadMutation) RemoveNoteIDs(ids ...int) {
	if m.removednotes == nil {
		m.removednotes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.notes, ids[i])
		m.removednotes[ids[i]] = struct{}{}
	}
}

// RemovedNotes returns the removed IDs of the "notes" edge to the LeadNote entity.
func (m *LeadMutation) RemovedNotesIDs() (ids []int) {
	for id := range m.removednotes {
		ids = append(ids, id)
	}
	return
}

// NotesIDs returns the "notes" edge IDs in the mutation.
func (m *LeadMutation) NotesIDs() (ids []int) {
	for id := range m.notes {
		ids = append(ids, id)
	}
	return
}

// ResetNotes resets all changes to the "notes" edge.
func (m *LeadMutation) ResetNotes() {
	m.notes = nil
	m.clearednotes = false
	m.removednotes = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, lead.FieldName)
	}
	if m.company != nil {
		fields = append(fields, lead.FieldCompany)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.city != nil {
		fields = append(fields, lead.FieldCity)
	}
	if m.country != nil {
		fields = append(fields, lead.FieldCountry)
	}
	if m.website != nil {
		fields = append(fields, lead.FieldWebsite)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.pitched_services != nil {
		fields = append(fields, lead.FieldPitchedServices)
	}
	if m.import_batch_id != nil {
		fields = append(fields, lead.FieldImportBatchID)
	}
	if m.created_by != nil {
		fields = append(fields, lead.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldName:
		return m.Name()
	case lead.FieldCompany:
		return m.Company()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldCity:
		return m.City()
	case lead.FieldCountry:
		return m.Country()
	case lead.FieldWebsite:
		return m.Website()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldPitchedServices:
		return m.PitchedServices()
	case lead.FieldImportBatchID:
		return m.ImportBatchID()
	case lead.FieldCreatedBy:
		return m.CreatedBy()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldName:
		return m.OldName(ctx)
	case lead.FieldCompany:
		return m.OldCompany(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldCity:
		return m.OldCity(ctx)
	case lead.FieldCountry:
		return m.OldCountry(ctx)
	case lead.FieldWebsite:
		return m.OldWebsite(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldPitchedServices:
		return m.OldPitchedServices(ctx)
	case lead.FieldImportBatchID:
		return m.OldImportBatchID(ctx)
	case lead.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lead.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case lead.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case lead.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldPitchedServices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPitchedServices(v)
		return nil
	case lead.FieldImportBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportBatchID(v)
		return nil
	case lead.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_by != nil {
		fields = append(fields, lead.FieldCreatedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldCreatedBy:
		return m.AddedCreatedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lead.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldCompany) {
		fields = append(fields, lead.FieldCompany)
	}
	if m.FieldCleared(lead.FieldEmail) {
		fields = append(fields, lead.FieldEmail)
	}
	if m.FieldCleared(lead.FieldPhone) {
		fields = append(fields, lead.FieldPhone)
	}
	if m.FieldCleared(lead.FieldCity) {
		fields = append(fields, lead.FieldCity)
	}
	if m.FieldCleared(lead.FieldCountry) {
		fields = append(fields, lead.FieldCountry)
	}
	if m.FieldCleared(lead.FieldWebsite) {
		fields = append(fields, lead.FieldWebsite)
	}
	if m.FieldCleared(lead.FieldSource) {
		fields = append(fields, lead.FieldSource)
	}
	if m.FieldCleared(lead.FieldPitchedServices) {
		fields = append(fields, lead.FieldPitchedServices)
	}
	if m.FieldCleared(lead.FieldImportBatchID) {
		fields = append(fields, lead.FieldImportBatchID)
	}
	if m.FieldCleared(lead.FieldCreatedBy) {
		fields = append(fields, lead.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldCompany:
		m.ClearCompany()
		return nil
	case lead.FieldEmail:
		m.ClearEmail()
		return nil
	case lead.FieldPhone:
		m.ClearPhone()
		return nil
	case lead.FieldCity:
		m.ClearCity()
		return nil
	case lead.FieldCountry:
		m.ClearCountry()
		return nil
	case lead.FieldWebsite:
		m.ClearWebsite()
		return nil
	case lead.FieldSource:
		m.ClearSource()
		return nil
	case lead.FieldPitchedServices:
		m.ClearPitchedServices()
		return nil
	case lead.FieldImportBatchID:
		m.ClearImportBatchID()
		return nil
	case lead.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldName:
		m.ResetName()
		return nil
	case lead.FieldCompany:
		m.ResetCompany()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldCity:
		m.ResetCity()
		return nil
	case lead.FieldCountry:
		m.ResetCountry()
		return nil
	case lead.FieldWebsite:
		m.ResetWebsite()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldPitchedServices:
		m.ResetPitchedServices()
		return nil
	case lead.FieldImportBatchID:
		m.ResetImportBatchID()
		return nil
	case lead.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.assignments != nil {
		edges = append(edges, lead.EdgeAssignments)
	}
	if m.activities != nil {
		edges = append(edges, lead.EdgeActivities)
	}
	if m.notes != nil {
		edges = append(edges, lead.EdgeNotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.notes))
		for id := range m.notes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedassignments != nil {
		edges = append(edges, lead.EdgeAssignments)
	}
	if m.removedactivities != nil {
		edges = append(edges, lead.EdgeActivities)
	}
	if m.removednotes != nil {
		edges = append(edges, lead.EdgeNotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.removednotes))
		for id := range m.removednotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedassignments {
		edges = append(edges, lead.EdgeAssignments)
	}
	if m.clearedactivities {
		edges = append(edges, lead.EdgeActivities)
	}
	if m.clearednotes {
		edges = append(edges, lead.EdgeNotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeAssignments:
		return m.clearedassignments
	case lead.EdgeActivities:
		return m.clearedactivities
	case lead.EdgeNotes:
		return m.clearednotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case lead.EdgeActivities:
		m.ResetActivities()
		return nil
	case lead.EdgeNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// LeadActivityMutation represents an operation that mutates the LeadActivity nodes in the graph.
type LeadActivityMutation struct {
	config
	op            Op
	typ           string
	id            *int
	_type         *leadactivity.Type
	detail        *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	lead          *int
	clearedlead   bool
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*LeadActivity, error)
	predicates    []predicate.LeadActivity
}

var _ ent.Mutation = (*LeadActivityMutation)(nil)

// leadactivityOption allows management of the mutation configuration using functional options.
type leadactivityOption func(*LeadActivityMutation)

// newLeadActivityMutation creates new mutation for the LeadActivity entity.
func newLeadActivityMutation(c config, op Op, opts ...leadactivityOption) *LeadActivityMutation {
	m := &LeadActivityMutation{
		config:        c,
		op:            op,
		typ:           TypeLeadActivity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadActivityID sets the ID field of the mutation.
func withLeadActivityID(id int) leadactivityOption {
	return func(m *LeadActivityMutation) {
		var (
			err   error
			once  sync.Once
			value *LeadActivity
		)
		m.oldValue = func(ctx context.Context) (*LeadActivity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeadActivity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeadActivity sets the old LeadActivity of the mutation.
func withLeadActivity(node *LeadActivity) leadactivityOption {
	return func(m *LeadActivityMutation) {
		m.oldValue = func(context.Context) (*LeadActivity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadActivityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadActivityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadActivityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadActivityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeadActivity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *LeadActivityMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *LeadActivityMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the LeadActivity entity.
// If the LeadActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadActivityMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *LeadActivityMutation) ResetLeadID() {
	m.lead = nil
}

// SetUserID sets the "user_id" field.
func (m *LeadActivityMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LeadActivityMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LeadActivity entity.
// If the LeadActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadActivityMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LeadActivityMutation) ResetUserID() {
	m.user = nil
}

// SetType sets the "type" field.
func (m *LeadActivityMutation) SetType(l leadactivity.Type) {
	m._type = &l
}

// GetType returns the value of the "type" field in the mutation.
func (m *LeadActivityMutation) GetType() (r leadactivity.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the LeadActivity entity.
// If the LeadActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadActivityMutation) OldType(ctx context.Context) (v leadactivity.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *LeadActivityMutation) ResetType() {
	m._type = nil
}

// SetDetail sets the "detail" field.
func (m *LeadActivityMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *LeadActivityMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the LeadActivity entity.
// If the LeadActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadActivityMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *LeadActivityMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[leadactivity.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *LeadActivityMutation) DetailCleared() bool {
	_, ok := m.clearedFields[leadactivity.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *LeadActivityMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, leadactivity.FieldDetail)
}

// SetMetadata sets the "metadata" field.
func (m *LeadActivityMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *LeadActivityMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the LeadActivity entity.
// If the LeadActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadActivityMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *LeadActivityMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[leadactivity.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *LeadActivityMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[leadactivity.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *LeadActivityMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, leadactivity.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadActivityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadActivityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LeadActivity entity.
// If the LeadActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadActivityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadActivityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *LeadActivityMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[leadactivity.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *LeadActivityMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *LeadActivityMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *LeadActivityMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *LeadActivityMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[leadactivity.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *LeadActivityMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *LeadActivityMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *LeadActivityMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the LeadActivityMutation builder.
func (m *LeadActivityMutation) Where(ps ...predicate.LeadActivity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadActivityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadActivityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeadActivity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadActivityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadActivityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeadActivity).
func (m *LeadActivityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadActivityMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.lead != nil {
		fields = append(fields, leadactivity.FieldLeadID)
	}
	if m.user != nil {
		fields = append(fields, leadactivity.FieldUserID)
	}
	if m._type != nil {
		fields = append(fields, leadactivity.FieldType)
	}
	if m.detail != nil {
		fields = append(fields, leadactivity.FieldDetail)
	}
	if m.metadata != nil {
		fields = append(fields, leadactivity.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, leadactivity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadActivityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leadactivity.FieldLeadID:
		return m.LeadID()
	case leadactivity.FieldUserID:
		return m.UserID()
	case leadactivity.FieldType:
		return m.GetType()
	case leadactivity.FieldDetail:
		return m.Detail()
	case leadactivity.FieldMetadata:
		return m.Metadata()
	case leadactivity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadActivityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leadactivity.FieldLeadID:
		return m.OldLeadID(ctx)
	case leadactivity.FieldUserID:
		return m.OldUserID(ctx)
	case leadactivity.FieldType:
		return m.OldType(ctx)
	case leadactivity.FieldDetail:
		return m.OldDetail(ctx)
	case leadactivity.FieldMetadata:
		return m.OldMetadata(ctx)
	case leadactivity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeadActivity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadActivityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leadactivity.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case leadactivity.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case leadactivity.FieldType:
		v, ok := value.(leadactivity.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case leadactivity.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case leadactivity.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case leadactivity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeadActivity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadActivityMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadActivityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadActivityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LeadActivity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadActivityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leadactivity.FieldDetail) {
		fields = append(fields, leadactivity.FieldDetail)
	}
	if m.FieldCleared(leadactivity.FieldMetadata) {
		fields = append(fields, leadactivity.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadActivityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadActivityMutation) ClearField(name string) error {
	switch name {
	case leadactivity.FieldDetail:
		m.ClearDetail()
		return nil
	case leadactivity.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown LeadActivity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadActivityMutation) ResetField(name string) error {
	switch name {
	case leadactivity.FieldLeadID:
		m.ResetLeadID()
		return nil
	case leadactivity.FieldUserID:
		m.ResetUserID()
		return nil
	case leadactivity.FieldType:
		m.ResetType()
		return nil
	case leadactivity.FieldDetail:
		m.ResetDetail()
		return nil
	case leadactivity.FieldMetadata:
		m.ResetMetadata()
		return nil
	case leadactivity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeadActivity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadActivityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lead != nil {
		edges = append(edges, leadactivity.EdgeLead)
	}
	if m.user != nil {
		edges = append(edges, leadactivity.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadActivityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case leadactivity.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case leadactivity.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadActivityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadActivityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadActivityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlead {
		edges = append(edges, leadactivity.EdgeLead)
	}
	if m.cleareduser {
		edges = append(edges, leadactivity.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadActivityMutation) EdgeCleared(name string) bool {
	switch name {
	case leadactivity.EdgeLead:
		return m.clearedlead
	case leadactivity.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadActivityMutation) ClearEdge(name string) error {
	switch name {
	case leadactivity.EdgeLead:
		m.ClearLead()
		return nil
	case leadactivity.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown LeadActivity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadActivityMutation) ResetEdge(name string) error {
	switch name {
	case leadactivity.EdgeLead:
		m.ResetLead()
		return nil
	case leadactivity.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown LeadActivity edge %s", name)
}

// LeadAssignmentMutation represents an operation that mutates the LeadAssignment nodes in the graph.
type LeadAssignmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	assigned_by         *int
	addassigned_by      *int
	status              *leadassignment.Status
	notes               *string
	assigned_at         *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	lead                *int
	clearedlead         bool
	sales_person        *int
	clearedsales_person bool
	done                bool
	oldValue            func(context.Context) (*LeadAssignment, error)
	predicates          []predicate.LeadAssignment
}

var _ ent.Mutation = (*LeadAssignmentMutation)(nil)

// leadassignmentOption allows management of the mutation configuration using functional options.
type leadassignmentOption func(*LeadAssignmentMutation)

// newLeadAssignmentMutation creates new mutation for the LeadAssignment entity.
func newLeadAssignmentMutation(c config, op Op, opts ...leadassignmentOption) *LeadAssignmentMutation {
	m := &LeadAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeLeadAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadAssignmentID sets the ID field of the mutation.
func withLeadAssignmentID(id int) leadassignmentOption {
	return func(m *LeadAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *LeadAssignment
		)
		m.oldValue = func(ctx context.Context) (*LeadAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeadAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeadAssignment sets the old LeadAssignment of the mutation.
func withLeadAssignment(node *LeadAssignment) leadassignmentOption {
	return func(m *LeadAssignmentMutation) {
		m.oldValue = func(context.Context) (*LeadAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadAssignmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadAssignmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeadAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *LeadAssignmentMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *LeadAssignmentMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the LeadAssignment entity.
// If the LeadAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAssignmentMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *LeadAssignmentMutation) ResetLeadID() {
	m.lead = nil
}

// SetSalesPersonID sets the "sales_person_id" field.
func (m *LeadAssignmentMutation) SetSalesPersonID(i int) {
	m.sales_person = &i
}

// SalesPersonID returns the value of the "sales_person_id" field in the mutation.
func (m *LeadAssignmentMutation) SalesPersonID() (r int, exists bool) {
	v := m.sales_person
	if v == nil {
		return
	}
	return *v, true
}

// OldSalesPersonID returns the old "sales_person_id" field's value of the LeadAssignment entity.
// If the LeadAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAssignmentMutation) OldSalesPersonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalesPersonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalesPersonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalesPersonID: %w", err)
	}
	return oldValue.SalesPersonID, nil
}

// ResetSalesPersonID resets all changes to the "sales_person_id" field.
func (m *LeadAssignmentMutation) ResetSalesPersonID() {
	m.sales_person = nil
}

// SetAssignedBy sets the "assigned_by" field.
func (m *LeadAssignmentMutation) SetAssignedBy(i int) {
	m.assigned_by = &i
	m.addassigned_by = nil
}

// AssignedBy returns the value of the "assigned_by" field in the mutation.
func (m *LeadAssignmentMutation) AssignedBy() (r int, exists bool) {
	v := m.assigned_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedBy returns the old "assigned_by" field's value of the LeadAssignment entity.
// If the LeadAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAssignmentMutation) OldAssignedBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedBy: %w", err)
	}
	return oldValue.AssignedBy, nil
}

// AddAssignedBy adds i to the "assigned_by" field.
func (m *LeadAssignmentMutation) AddAssignedBy(i int) {
	if m.addassigned_by != nil {
		*m.addassigned_by += i
	} else {
		m.addassigned_by = &i
	}
}

// AddedAssignedBy returns the value that was added to the "assigned_by" field in this mutation.
func (m *LeadAssignmentMutation) AddedAssignedBy() (r int, exists bool) {
	v := m.addassigned_by
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssignedBy resets all changes to the "assigned_by" field.
func (m *LeadAssignmentMutation) ResetAssignedBy() {
	m.assigned_by = nil
	m.addassigned_by = nil
}

// SetStatus sets the "status" field.
func (m *LeadAssignmentMutation) SetStatus(l leadassignment.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadAssignmentMutation) Status() (r leadassignment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LeadAssignment entity.
// If the LeadAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAssignmentMutation) OldStatus(ctx context.Context) (v leadassignment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadAssignmentMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *LeadAssignmentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *LeadAssignmentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the LeadAssignment entity.
// If the LeadAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAssignmentMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *LeadAssignmentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[leadassignment.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *LeadAssignmentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[leadassignment.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *LeadAssignmentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, leadassignment.FieldNotes)
}

// SetAssignedAt sets the "assigned_at" field.
func (m *LeadAssignmentMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *LeadAssignmentMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the LeadAssignment entity.
// If the LeadAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAssignmentMutation) OldAssignedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *LeadAssignmentMutation) ResetAssignedAt() {
	m.assigned_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadAssignmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadAssignmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LeadAssignment entity.
// If the LeadAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAssignmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadAssignmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *LeadAssignmentMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[leadassignment.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *LeadAssignmentMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *LeadAssignmentMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *LeadAssignmentMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// ClearSalesPerson clears the "sales_person" edge to the User entity.
func (m *LeadAssignmentMutation) ClearSalesPerson() {
	m.clearedsales_person = true
	m.clearedFields[leadassignment.FieldSalesPersonID] = struct{}{}
}

// SalesPersonCleared reports if the "sales_person" edge to the User entity was cleared.
func (m *LeadAssignmentMutation) SalesPersonCleared() bool {
	return m.clearedsales_person
}

// SalesPersonIDs returns the "sales_person" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SalesPersonID instead. It exists only for internal usage by the builders.
func (m *LeadAssignmentMutation) SalesPersonIDs() (ids []int) {
	if id := m.sales_person; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSalesPerson resets all changes to the "sales_person" edge.
func (m *LeadAssignmentMutation) ResetSalesPerson() {
	m.sales_person = nil
	m.clearedsales_person = false
}

// Where appends a list predicates to the LeadAssignmentMutation builder.
func (m *LeadAssignmentMutation) Where(ps ...predicate.LeadAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeadAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeadAssignment).
func (m *LeadAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.lead != nil {
		fields = append(fields, leadassignment.FieldLeadID)
	}
	if m.sales_person != nil {
		fields = append(fields, leadassignment.FieldSalesPersonID)
	}
	if m.assigned_by != nil {
		fields = append(fields, leadassignment.FieldAssignedBy)
	}
	if m.status != nil {
		fields = append(fields, leadassignment.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, leadassignment.FieldNotes)
	}
	if m.assigned_at != nil {
		fields = append(fields, leadassignment.FieldAssignedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, leadassignment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leadassignment.FieldLeadID:
		return m.LeadID()
	case leadassignment.FieldSalesPersonID:
		return m.SalesPersonID()
	case leadassignment.FieldAssignedBy:
		return m.AssignedBy()
	case leadassignment.FieldStatus:
		return m.Status()
	case leadassignment.FieldNotes:
		return m.Notes()
	case leadassignment.FieldAssignedAt:
		return m.AssignedAt()
	case leadassignment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leadassignment.FieldLeadID:
		return m.OldLeadID(ctx)
	case leadassignment.FieldSalesPersonID:
		return m.OldSalesPersonID(ctx)
	case leadassignment.FieldAssignedBy:
		return m.OldAssignedBy(ctx)
	case leadassignment.FieldStatus:
		return m.OldStatus(ctx)
	case leadassignment.FieldNotes:
		return m.OldNotes(ctx)
	case leadassignment.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	case leadassignment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeadAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leadassignment.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case leadassignment.FieldSalesPersonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalesPersonID(v)
		return nil
	case leadassignment.FieldAssignedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedBy(v)
		return nil
	case leadassignment.FieldStatus:
		v, ok := value.(leadassignment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case leadassignment.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case leadassignment.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	case leadassignment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeadAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadAssignmentMutation) AddedFields() []string {
	var fields []string
	if m.addassigned_by != nil {
		fields = append(fields, leadassignment.FieldAssignedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case leadassignment.FieldAssignedBy:
		return m.AddedAssignedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case leadassignment.FieldAssignedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssignedBy(v)
		return nil
	}
	return fmt.Errorf("unknown LeadAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadAssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leadassignment.FieldNotes) {
		fields = append(fields, leadassignment.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadAssignmentMutation) ClearField(name string) error {
	switch name {
	case leadassignment.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown LeadAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadAssignmentMutation) ResetField(name string) error {
	switch name {
	case leadassignment.FieldLeadID:
		m.ResetLeadID()
		return nil
	case leadassignment.FieldSalesPersonID:
		m.ResetSalesPersonID()
		return nil
	case leadassignment.FieldAssignedBy:
		m.ResetAssignedBy()
		return nil
	case leadassignment.FieldStatus:
		m.ResetStatus()
		return nil
	case leadassignment.FieldNotes:
		m.ResetNotes()
		return nil
	case leadassignment.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	case leadassignment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeadAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lead != nil {
		edges = append(edges, leadassignment.EdgeLead)
	}
	if m.sales_person != nil {
		edges = append(edges, leadassignment.EdgeSalesPerson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case leadassignment.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case leadassignment.EdgeSalesPerson:
		if id := m.sales_person; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlead {
		edges = append(edges, leadassignment.EdgeLead)
	}
	if m.clearedsales_person {
		edges = append(edges, leadassignment.EdgeSalesPerson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case leadassignment.EdgeLead:
		return m.clearedlead
	case leadassignment.EdgeSalesPerson:
		return m.clearedsales_person
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case leadassignment.EdgeLead:
		m.ClearLead()
		return nil
	case leadassignment.EdgeSalesPerson:
		m.ClearSalesPerson()
		return nil
	}
	return fmt.Errorf("unknown LeadAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case leadassignment.EdgeLead:
		m.ResetLead()
		return nil
	case leadassignment.EdgeSalesPerson:
		m.ResetSalesPerson()
		return nil
	}
	return fmt.Errorf("unknown LeadAssignment edge %s", name)
}

// LeadNoteMutation represents an operation that mutates the LeadNote nodes in the graph.
type LeadNoteMutation struct {
	config
	op            Op
	typ           string
	id            *int
	content       *string
	is_pinned     *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	lead          *int
	clearedlead   bool
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*LeadNote, error)
	predicates    []predicate.LeadNote
}

var _ ent.Mutation = (*LeadNoteMutation)(nil)

// leadnoteOption allows management of the mutation configuration using functional options.
type leadnoteOption func(*LeadNoteMutation)

// newLeadNoteMutation creates new mutation for the LeadNote entity.
func newLeadNoteMutation(c config, op Op, opts ...leadnoteOption) *LeadNoteMutation {
	m := &LeadNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeLeadNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadNoteID sets the ID field of the mutation.
func withLeadNoteID(id int) leadnoteOption {
	return func(m *LeadNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *LeadNote
		)
		m.oldValue = func(ctx context.Context) (*LeadNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeadNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeadNote sets the old LeadNote of the mutation.
func withLeadNote(node *LeadNote) leadnoteOption {
	return func(m *LeadNoteMutation) {
		m.oldValue = func(context.Context) (*LeadNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadNoteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadNoteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeadNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *LeadNoteMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *LeadNoteMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the LeadNote entity.
// If the LeadNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadNoteMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *LeadNoteMutation) ResetLeadID() {
	m.lead = nil
}

// SetUserID sets the "user_id" field.
func (m *LeadNoteMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LeadNoteMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LeadNote entity.
// If the LeadNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadNoteMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LeadNoteMutation) ResetUserID() {
	m.user = nil
}

// SetContent sets the "content" field.
func (m *LeadNoteMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *LeadNoteMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the LeadNote entity.
// If the LeadNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadNoteMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *LeadNoteMutation) ResetContent() {
	m.content = nil
}

// SetIsPinned sets the "is_pinned" field.
func (m *LeadNoteMutation) SetIsPinned(b bool) {
	m.is_pinned = &b
}

// IsPinned returns the value of the "is_pinned" field in the mutation.
func (m *LeadNoteMutation) IsPinned() (r bool, exists bool) {
	v := m.is_pinned
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPinned returns the old "is_pinned" field's value of the LeadNote entity.
// If the LeadNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadNoteMutation) OldIsPinned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPinned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPinned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPinned: %w", err)
	}
	return oldValue.IsPinned, nil
}

// ResetIsPinned resets all changes to the "is_pinned" field.
func (m *LeadNoteMutation) ResetIsPinned() {
	m.is_pinned = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadNoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadNoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LeadNote entity.
// If the LeadNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadNoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadNoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadNoteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadNoteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LeadNote entity.
// If the LeadNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadNoteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadNoteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *LeadNoteMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[leadnote.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *LeadNoteMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *LeadNoteMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *LeadNoteMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *LeadNoteMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[leadnote.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *LeadNoteMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *LeadNoteMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *LeadNoteMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the LeadNoteMutation builder.
func (m *LeadNoteMutation) Where(ps ...predicate.LeadNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeadNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeadNote).
func (m *LeadNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadNoteMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.lead != nil {
		fields = append(fields, leadnote.FieldLeadID)
	}
	if m.user != nil {
		fields = append(fields, leadnote.FieldUserID)
	}
	if m.content != nil {
		fields = append(fields, leadnote.FieldContent)
	}
	if m.is_pinned != nil {
		fields = append(fields, leadnote.FieldIsPinned)
	}
	if m.created_at != nil {
		fields = append(fields, leadnote.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, leadnote.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leadnote.FieldLeadID:
		return m.LeadID()
	case leadnote.FieldUserID:
		return m.UserID()
	case leadnote.FieldContent:
		return m.Content()
	case leadnote.FieldIsPinned:
		return m.IsPinned()
	case leadnote.FieldCreatedAt:
		return m.CreatedAt()
	case leadnote.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leadnote.FieldLeadID:
		return m.OldLeadID(ctx)
	case leadnote.FieldUserID:
		return m.OldUserID(ctx)
	case leadnote.FieldContent:
		return m.OldContent(ctx)
	case leadnote.FieldIsPinned:
		return m.OldIsPinned(ctx)
	case leadnote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case leadnote.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeadNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leadnote.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case leadnote.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case leadnote.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case leadnote.FieldIsPinned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPinned(v)
		return nil
	case leadnote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case leadnote.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeadNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadNoteMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadNoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LeadNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadNoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadNoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LeadNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadNoteMutation) ResetField(name string) error {
	switch name {
	case leadnote.FieldLeadID:
		m.ResetLeadID()
		return nil
	case leadnote.FieldUserID:
		m.ResetUserID()
		return nil
	case leadnote.FieldContent:
		m.ResetContent()
		return nil
	case leadnote.FieldIsPinned:
		m.ResetIsPinned()
		return nil
	case leadnote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case leadnote.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeadNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lead != nil {
		edges = append(edges, leadnote.EdgeLead)
	}
	if m.user != nil {
		edges = append(edges, leadnote.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadNoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case leadnote.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case leadnote.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlead {
		edges = append(edges, leadnote.EdgeLead)
	}
	if m.cleareduser {
		edges = append(edges, leadnote.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadNoteMutation) EdgeCleared(name string) bool {
	switch name {
	case leadnote.EdgeLead:
		return m.clearedlead
	case leadnote.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadNoteMutation) ClearEdge(name string) error {
	switch name {
	case leadnote.EdgeLead:
		m.ClearLead()
		return nil
	case leadnote.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown LeadNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadNoteMutation) ResetEdge(name string) error {
	switch name {
	case leadnote.EdgeLead:
		m.ResetLead()
		return nil
	case leadnote.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown LeadNote edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op            Op
	typ           string
	id            *int
	content       *string
	is_edited     *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	query         *int
	clearedquery  bool
	sender        *int
	clearedsender bool
	done          bool
	oldValue      func(context.Context) (*Message, error)
	predicates    []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id int) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueryID sets the "query_id" field.
func (m *MessageMutation) SetQueryID(i int) {
	m.query = &i
}

// QueryID returns the value of the "query_id" field in the mutation.
func (m *MessageMutation) QueryID() (r int, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryID returns the old "query_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldQueryID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryID: %w", err)
	}
	return oldValue.QueryID, nil
}

// ResetQueryID resets all changes to the "query_id" field.
func (m *MessageMutation) ResetQueryID() {
	m.query = nil
}

// SetSenderID sets the "sender_id" field.
func (m *MessageMutation) SetSenderID(i int) {
	m.sender = &i
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *MessageMutation) SenderID() (r int, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *MessageMutation) ResetSenderID() {
	m.sender = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetIsEdited sets the "is_edited" field.
func (m *MessageMutation) SetIsEdited(b bool) {
	m.is_edited = &b
}

// IsEdited returns the value of the "is_edited" field in the mutation.
func (m *MessageMutation) IsEdited() (r bool, exists bool) {
	v := m.is_edited
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEdited returns the old "is_edited" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIsEdited(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEdited is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEdited requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEdited: %w", err)
	}
	return oldValue.IsEdited, nil
}

// ResetIsEdited resets all changes to the "is_edited" field.
func (m *MessageMutation) ResetIsEdited() {
	m.is_edited = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MessageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MessageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MessageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearQuery clears the "query" edge to the Thread entity.
func (m *MessageMutation) ClearQuery() {
	m.clearedquery = true
	m.clearedFields[message.FieldQueryID] = struct{}{}
}

// QueryCleared reports if the "query" edge to the Thread entity was cleared.
func (m *MessageMutation) QueryCleared() bool {
	return m.clearedquery
}

// QueryIDs returns the "query" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QueryID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) QueryIDs() (ids []int) {
	if id := m.query; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuery resets all changes to the "query" edge.
func (m *MessageMutation) ResetQuery() {
	m.query = nil
	m.clearedquery = false
}

// ClearSender clears the "sender" edge to the User entity.
func (m *MessageMutation) ClearSender() {
	m.clearedsender = true
	m.clearedFields[message.FieldSenderID] = struct{}{}
}

// SenderCleared reports if the "sender" edge to the User entity was cleared.
func (m *MessageMutation) SenderCleared() bool {
	return m.clearedsender
}

// SenderIDs returns the "sender" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SenderID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) SenderIDs() (ids []int) {
	if id := m.sender; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSender resets all changes to the "sender" edge.
func (m *MessageMutation) ResetSender() {
	m.sender = nil
	m.clearedsender = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.query != nil {
		fields = append(fields, message.FieldQueryID)
	}
	if m.sender != nil {
		fields = append(fields, message.FieldSenderID)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.is_edited != nil {
		fields = append(fields, message.FieldIsEdited)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, message.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldQueryID:
		return m.QueryID()
	case message.FieldSenderID:
		return m.SenderID()
	case message.FieldContent:
		return m.Content()
	case message.FieldIsEdited:
		return m.IsEdited()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	case message.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldQueryID:
		return m.OldQueryID(ctx)
	case message.FieldSenderID:
		return m.OldSenderID(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldIsEdited:
		return m.OldIsEdited(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case message.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldQueryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryID(v)
		return nil
	case message.FieldSenderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldIsEdited:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEdited(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case message.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldQueryID:
		m.ResetQueryID()
		return nil
	case message.FieldSenderID:
		m.ResetSenderID()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldIsEdited:
		m.ResetIsEdited()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case message.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.query != nil {
		edges = append(edges, message.EdgeQuery)
	}
	if m.sender != nil {
		edges = append(edges, message.EdgeSender)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeQuery:
		if id := m.query; id != nil {
			return []ent.Value{*id}
		}
	case message.EdgeSender:
		if id := m.sender; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedquery {
		edges = append(edges, message.EdgeQuery)
	}
	if m.clearedsender {
		edges = append(edges, message.EdgeSender)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeQuery:
		return m.clearedquery
	case message.EdgeSender:
		return m.clearedsender
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeQuery:
		m.ClearQuery()
		return nil
	case message.EdgeSender:
		m.ClearSender()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeQuery:
		m.ResetQuery()
		return nil
	case message.EdgeSender:
		m.ResetSender()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// RequirementMutation represents an operation that mutates the Requirement nodes in the graph.
type RequirementMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	requirement_number       *string
	requirement_name         *string
	status                   *requirement.Status
	assigned_employees       *[]int
	appendassigned_employees []int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	client                   *int
	clearedclient            bool
	tasks                    map[int]struct{}
	removedtasks             map[int]struct{}
	clearedtasks             bool
	submissions              map[int]struct{}
	removedsubmissions       map[int]struct{}
	clearedsubmissions       bool
	done                     bool
	oldValue                 func(context.Context) (*Requirement, error)
	predicates               []predicate.Requirement
}

var _ ent.Mutation = (*RequirementMutation)(nil)

// requirementOption allows management of the mutation configuration using functional options.
type requirementOption func(*RequirementMutation)

// newRequirementMutation creates new mutation for the Requirement entity.
func newRequirementMutation(c config, op Op, opts ...requirementOption) *RequirementMutation {
	m := &RequirementMutation{
		config:        c,
		op:            op,
		typ:           TypeRequirement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequirementID sets the ID field of the mutation.
func withRequirementID(id int) requirementOption {
	return func(m *RequirementMutation) {
		var (
			err   error
			once  sync.Once
			value *Requirement
		)
		m.oldValue = func(ctx context.Context) (*Requirement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Requirement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequirement sets the old Requirement of the mutation.
func withRequirement(node *Requirement) requirementOption {
	return func(m *RequirementMutation) {
		m.oldValue = func(context.Context) (*Requirement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequirementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequirementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequirementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequirementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Requirement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequirementNumber sets the "requirement_number" field.
func (m *RequirementMutation) SetRequirementNumber(s string) {
	m.requirement_number = &s
}

// RequirementNumber returns the value of the "requirement_number" field in the mutation.
func (m *RequirementMutation) RequirementNumber() (r string, exists bool) {
	v := m.requirement_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirementNumber returns the old "requirement_number" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldRequirementNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirementNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirementNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirementNumber: %w", err)
	}
	return oldValue.RequirementNumber, nil
}

// ResetRequirementNumber resets all changes to the "requirement_number" field.
func (m *RequirementMutation) ResetRequirementNumber() {
	m.requirement_number = nil
}

// SetRequirementName sets the "requirement_name" field.
func (m *RequirementMutation) SetRequirementName(s string) {
	m.requirement_name = &s
}

// RequirementName returns the value of the "requirement_name" field in the mutation.
func (m *RequirementMutation) RequirementName() (r string, exists bool) {
	v := m.requirement_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirementName returns the old "requirement_name" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldRequirementName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirementName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirementName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirementName: %w", err)
	}
	return oldValue.RequirementName, nil
}

// ResetRequirementName resets all changes to the "requirement_name" field.
func (m *RequirementMutation) ResetRequirementName() {
	m.requirement_name = nil
}

// SetClientID sets the "client_id" field.
func (m *RequirementMutation) SetClientID(i int) {
	m.client = &i
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *RequirementMutation) ClientID() (r int, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldClientID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *RequirementMutation) ResetClientID() {
	m.client = nil
}

// SetStatus sets the "status" field.
func (m *RequirementMutation) SetStatus(r requirement.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RequirementMutation) Status() (r requirement.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldStatus(ctx context.Context) (v requirement.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RequirementMutation) ResetStatus() {
	m.status = nil
}

// SetAssignedEmployees sets the "assigned_employees" field.
func (m *RequirementMutation) SetAssignedEmployees(i []int) {
	m.assigned_employees = &i
	m.appendassigned_employees = nil
}

// AssignedEmployees returns the value of the "assigned_employees" field in the mutation.
func (m *RequirementMutation) AssignedEmployees() (r []int, exists bool) {
	v := m.assigned_employees
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedEmployees returns the old "assigned_employees" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldAssignedEmployees(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedEmployees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedEmployees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedEmployees: %w", err)
	}
	return oldValue.AssignedEmployees, nil
}

// AppendAssignedEmployees adds i to the "assigned_employees" field.
func (m *RequirementMutation) AppendAssignedEmployees(i []int) {
	m.appendassigned_employees = append(m.appendassigned_employees, i...)
}

// AppendedAssignedEmployees returns the list of values that were appended to the "assigned_employees" field in this mutation.
func (m *RequirementMutation) AppendedAssignedEmployees() ([]int, bool) {
	if len(m.appendassigned_employees) == 0 {
		return nil, false
	}
	return m.appendassigned_employees, true
}

// ClearAssignedEmployees clears the value of the "assigned_employees" field.
func (m *RequirementMutation) ClearAssignedEmployees() {
	m.assigned_employees = nil
	m.appendassigned_employees = nil
	m.clearedFields[requirement.FieldAssignedEmployees] = struct{}{}
}

// AssignedEmployeesCleared returns if the "assigned_employees" field was cleared in this mutation.
func (m *RequirementMutation) AssignedEmployeesCleared() bool {
	_, ok := m.clearedFields[requirement.FieldAssignedEmployees]
	return ok
}

// ResetAssignedEmployees resets all changes to the "assigned_employees" field.
func (m *RequirementMutation) ResetAssignedEmployees() {
	m.assigned_employees = nil
	m.appendassigned_employees = nil
	delete(m.clearedFields, requirement.FieldAssignedEmployees)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequirementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequirementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequirementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequirementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequirementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RequirementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClient clears the "client" edge to the Company entity.
func (m *RequirementMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[requirement.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Company entity was cleared.
func (m *RequirementMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *RequirementMutation) ClientIDs() (ids []int) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *RequirementMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *RequirementMutation) AddTaskIDs(ids ...int) {
	if m.tasks == nil {
		m.tasks = make(map[int]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *RequirementMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *RequirementMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *RequirementMutation) RemoveTaskIDs(ids ...int) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *RequirementMutation) RemovedTasksIDs() (ids []int) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *RequirementMutation) TasksIDs() (ids []int) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *RequirementMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *RequirementMutation) AddSubmissionIDs(ids ...int) {
	if m.submissions == nil {
		m.submissions = make(map[int]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *RequirementMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *RequirementMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *RequirementMutation) RemoveSubmissionIDs(ids ...int) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *RequirementMutation) RemovedSubmissionsIDs() (ids []int) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *RequirementMutation) SubmissionsIDs() (ids []int) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *RequirementMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// Where appends a list predicates to the RequirementMutation builder.
func (m *RequirementMutation) Where(ps ...predicate.Requirement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequirementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequirementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Requirement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequirementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequirementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Requirement).
func (m *RequirementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequirementMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.requirement_number != nil {
		fields = append(fields, requirement.FieldRequirementNumber)
	}
	if m.requirement_name != nil {
		fields = append(fields, requirement.FieldRequirementName)
	}
	if m.client != nil {
		fields = append(fields, requirement.FieldClientID)
	}
	if m.status != nil {
		fields = append(fields, requirement.FieldStatus)
	}
	if m.assigned_employees != nil {
		fields = append(fields, requirement.FieldAssignedEmployees)
	}
	if m.created_at != nil {
		fields = append(fields, requirement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, requirement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequirementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requirement.FieldRequirementNumber:
		return m.RequirementNumber()
	case requirement.FieldRequirementName:
		return m.RequirementName()
	case requirement.FieldClientID:
		return m.ClientID()
	case requirement.FieldStatus:
		return m.Status()
	case requirement.FieldAssignedEmployees:
		return m.AssignedEmployees()
	case requirement.FieldCreatedAt:
		return m.CreatedAt()
	case requirement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequirementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requirement.FieldRequirementNumber:
		return m.OldRequirementNumber(ctx)
	case requirement.FieldRequirementName:
		return m.OldRequirementName(ctx)
	case requirement.FieldClientID:
		return m.OldClientID(ctx)
	case requirement.FieldStatus:
		return m.OldStatus(ctx)
	case requirement.FieldAssignedEmployees:
		return m.OldAssignedEmployees(ctx)
	case requirement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case requirement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Requirement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequirementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requirement.FieldRequirementNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirementNumber(v)
		return nil
	case requirement.FieldRequirementName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirementName(v)
		return nil
	case requirement.FieldClientID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case requirement.FieldStatus:
		v, ok := value.(requirement.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case requirement.FieldAssignedEmployees:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedEmployees(v)
		return nil
	case requirement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case requirement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Requirement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequirementMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequirementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequirementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Requirement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequirementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(requirement.FieldAssignedEmployees) {
		fields = append(fields, requirement.FieldAssignedEmployees)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequirementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequirementMutation) ClearField(name string) error {
	switch name {
	case requirement.FieldAssignedEmployees:
		m.ClearAssignedEmployees()
		return nil
	}
	return fmt.Errorf("unknown Requirement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequirementMutation) ResetField(name string) error {
	switch name {
	case requirement.FieldRequirementNumber:
		m.ResetRequirementNumber()
		return nil
	case requirement.FieldRequirementName:
		m.ResetRequirementName()
		return nil
	case requirement.FieldClientID:
		m.ResetClientID()
		return nil
	case requirement.FieldStatus:
		m.ResetStatus()
		return nil
	case requirement.FieldAssignedEmployees:
		m.ResetAssignedEmployees()
		return nil
	case requirement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case requirement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Requirement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequirementMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.client != nil {
		edges = append(edges, requirement.EdgeClient)
	}
	if m.tasks != nil {
		edges = append(edges, requirement.EdgeTasks)
	}
	if m.submissions != nil {
		edges = append(edges, requirement.EdgeSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequirementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case requirement.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case requirement.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case requirement.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequirementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtasks != nil {
		edges = append(edges, requirement.EdgeTasks)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, requirement.EdgeSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequirementMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case requirement.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case requirement.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequirementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedclient {
		edges = append(edges, requirement.EdgeClient)
	}
	if m.clearedtasks {
		edges = append(edges, requirement.EdgeTasks)
	}
	if m.clearedsubmissions {
		edges = append(edges, requirement.EdgeSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequirementMutation) EdgeCleared(name string) bool {
	switch name {
	case requirement.EdgeClient:
		return m.clearedclient
	case requirement.EdgeTasks:
		return m.clearedtasks
	case requirement.EdgeSubmissions:
		return m.clearedsubmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequirementMutation) ClearEdge(name string) error {
	switch name {
	case requirement.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown Requirement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequirementMutation) ResetEdge(name string) error {
	switch name {
	case requirement.EdgeClient:
		m.ResetClient()
		return nil
	case requirement.EdgeTasks:
		m.ResetTasks()
		return nil
	case requirement.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	}
	return fmt.Errorf("unknown Requirement edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	submission_number       *string
	title                   *string
	description             *string
	deliverables            *[]string
	appenddeliverables      []string
	status                  *submission.Status
	requested_changes       *[]schema.RequestedChange
	appendrequested_changes []schema.RequestedChange
	review_notes            *string
	reviewed_by             *int
	addreviewed_by          *int
	reviewed_at             *time.Time
	resubmission_of         *int
	addresubmission_of      *int
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	task                    *int
	clearedtask             bool
	requirement             *int
	clearedrequirement      bool
	client                  *int
	clearedclient           bool
	submitter               *int
	clearedsubmitter        bool
	feedback                map[int]struct{}
	removedfeedback         map[int]struct{}
	clearedfeedback         bool
	done                    bool
	oldValue                func(context.Context) (*Submission, error)
	predicates              []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id int) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubmissionNumber sets the "submission_number" field.
func (m *SubmissionMutation) SetSubmissionNumber(s string) {
	m.submission_number = &s
}

// SubmissionNumber returns the value of the "submission_number" field in the mutation.
func (m *SubmissionMutation) SubmissionNumber() (r string, exists bool) {
	v := m.submission_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionNumber returns the old "submission_number" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSubmissionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionNumber: %w", err)
	}
	return oldValue.SubmissionNumber, nil
}

// ResetSubmissionNumber resets all changes to the "submission_number" field.
func (m *SubmissionMutation) ResetSubmissionNumber() {
	m.submission_number = nil
}

// SetTitle sets the "title" field.
func (m *SubmissionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SubmissionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SubmissionMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *SubmissionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubmissionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SubmissionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[submission.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SubmissionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[submission.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SubmissionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, submission.FieldDescription)
}

// SetTaskID sets the "task_id" field.
func (m *SubmissionMutation) SetTaskID(i int) {
	m.task = &i
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SubmissionMutation) TaskID() (r int, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldTaskID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SubmissionMutation) ResetTaskID() {
	m.task = nil
}

// SetRequirementID sets the "requirement_id" field.
func (m *SubmissionMutation) SetRequirementID(i int) {
	m.requirement = &i
}

// RequirementID returns the value of the "requirement_id" field in the mutation.
func (m *SubmissionMutation) RequirementID() (r int, exists bool) {
	v := m.requirement
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirementID returns the old "requirement_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldRequirementID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirementID: %w", err)
	}
	return oldValue.RequirementID, nil
}

// ResetRequirementID resets all changes to the "requirement_id" field.
func (m *SubmissionMutation) ResetRequirementID() {
	m.requirement = nil
}

// SetClientID sets the "client_id" field.
func (m *SubmissionMutation) SetClientID(i int) {
	m.client = &i
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *SubmissionMutation) ClientID() (r int, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldClientID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *SubmissionMutation) ResetClientID() {
	m.client = nil
}

// SetSubmittedBy sets the "submitted_by" field.
func (m *SubmissionMutation) SetSubmittedBy(i int) {
	m.submitter = &i
}

// SubmittedBy returns the value of the "submitted_by" field in the mutation.
func (m *SubmissionMutation) SubmittedBy() (r int, exists bool) {
	v := m.submitter
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedBy returns the old "submitted_by" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSubmittedBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedBy: %w", err)
	}
	return oldValue.SubmittedBy, nil
}

// ResetSubmittedBy resets all changes to the "submitted_by" field.
func (m *SubmissionMutation) ResetSubmittedBy() {
	m.submitter = nil
}

// SetDeliverables sets the "deliverables" field.
func (m *SubmissionMutation) SetDeliverables(s []string) {
	m.deliverables = &s
	m.appenddeliverables = nil
}

// Deliverables returns the value of the "deliverables" field in the mutation.
func (m *SubmissionMutation) Deliverables() (r []string, exists bool) {
	v := m.deliverables
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliverables returns the old "deliverables" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldDeliverables(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliverables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliverables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliverables: %w", err)
	}
	return oldValue.Deliverables, nil
}

// AppendDeliverables adds s to the "deliverables" field.
func (m *SubmissionMutation) AppendDeliverables(s []string) {
	m.appenddeliverables = append(m.appenddeliverables, s...)
}

// AppendedDeliverables returns the list of values that were appended to the "deliverables" field in this mutation.
func (m *SubmissionMutation) AppendedDeliverables() ([]string, bool) {
	if len(m.appenddeliverables) == 0 {
		return nil, false
	}
	return m.appenddeliverables, true
}

// ClearDeliverables clears the value of the "deliverables" field.
func (m *SubmissionMutation) ClearDeliverables() {
	m.deliverables = nil
	m.appenddeliverables = nil
	m.clearedFields[submission.FieldDeliverables] = struct{}{}
}

// DeliverablesCleared returns if the "deliverables" field was cleared in this mutation.
func (m *SubmissionMutation) DeliverablesCleared() bool {
	_, ok := m.clearedFields[submission.FieldDeliverables]
	return ok
}

// ResetDeliverables resets all changes to the "deliverables" field.
func (m *SubmissionMutation) ResetDeliverables() {
	m.deliverables = nil
	m.appenddeliverables = nil
	delete(m.clearedFields, submission.FieldDeliverables)
}

// SetStatus sets the "status" field.
func (m *SubmissionMutation) SetStatus(s submission.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubmissionMutation) Status() (r submission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldStatus(ctx context.Context) (v submission.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubmissionMutation) ResetStatus() {
	m.status = nil
}

// SetRequestedChanges sets the "requested_changes" field.
func (m *SubmissionMutation) SetRequestedChanges(sc []schema.RequestedChange) {
	m.requested_changes = &sc
	m.appendrequested_changes = nil
}

// RequestedChanges returns the value of the "requested_changes" field in the mutation.
func (m *SubmissionMutation) RequestedChanges() (r []schema.RequestedChange, exists bool) {
	v := m.requested_changes
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedChanges returns the old "requested_changes" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldRequestedChanges(ctx context.Context) (v []schema.RequestedChange, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedChanges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedChanges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedChanges: %w", err)
	}
	return oldValue.RequestedChanges, nil
}

// AppendRequestedChanges adds sc to the "requested_changes" field.
func (m *SubmissionMutation) AppendRequestedChanges(sc []schema.RequestedChange) {
	m.appendrequested_changes = append(m.appendrequested_changes, sc...)
}

// AppendedRequestedChanges returns the list of values that were appended to the "requested_changes" field in this mutation.
func (m *SubmissionMutation) AppendedRequestedChanges() ([]schema.RequestedChange, bool) {
	if len(m.appendrequested_changes) == 0 {
		return nil, false
	}
	return m.appendrequested_changes, true
}

// ClearRequestedChanges clears the value of the "requested_changes" field.
func (m *SubmissionMutation) ClearRequestedChanges() {
	m.requested_changes = nil
	m.appendrequested_changes = nil
	m.clearedFields[submission.FieldRequestedChanges] = struct{}{}
}

// RequestedChangesCleared returns if the "requested_changes" field was cleared in this mutation.
func (m *SubmissionMutation) RequestedChangesCleared() bool {
	_, ok := m.clearedFields[submission.FieldRequestedChanges]
	return ok
}

// ResetRequestedChanges resets all changes to the "requested_changes" field.
func (m *SubmissionMutation) ResetRequestedChanges() {
	m.requested_changes = nil
	m.appendrequested_changes = nil
	delete(m.clearedFields, submission.FieldRequestedChanges)
}

// SetReviewNotes sets the "review_notes" field.
func (m *SubmissionMutation) SetReviewNotes(s string) {
	m.review_notes = &s
}

// ReviewNotes returns the value of the "review_notes" field in the mutation.
func (m *SubmissionMutation) ReviewNotes() (r string, exists bool) {
	v := m.review_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewNotes returns the old "review_notes" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldReviewNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewNotes: %w", err)
	}
	return oldValue.ReviewNotes, nil
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (m *SubmissionMutation) ClearReviewNotes() {
	m.review_notes = nil
	m.clearedFields[submission.FieldReviewNotes] = struct{}{}
}

// ReviewNotesCleared returns if the "review_notes" field was cleared in this mutation.
func (m *SubmissionMutation) ReviewNotesCleared() bool {
	_, ok := m.clearedFields[submission.FieldReviewNotes]
	return ok
}

// ResetReviewNotes resets all changes to the "review_notes" field.
func (m *SubmissionMutation) ResetReviewNotes() {
	m.review_notes = nil
	delete(m.clearedFields, submission.FieldReviewNotes)
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *SubmissionMutation) SetReviewedBy(i int) {
	m.reviewed_by = &i
	m.addreviewed_by = nil
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *SubmissionMutation) ReviewedBy() (r int, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldReviewedBy(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// AddReviewedBy adds i to the "reviewed_by" field.
func (m *SubmissionMutation) AddReviewedBy(i int) {
	if m.addreviewed_by != nil {
		*m.addreviewed_by += i
	} else {
		m.addreviewed_by = &i
	}
}

// AddedReviewedBy returns the value that was added to the "reviewed_by" field in this mutation.
func (m *SubmissionMutation) AddedReviewedBy() (r int, exists bool) {
	v := m.addreviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *SubmissionMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.addreviewed_by = nil
	m.clearedFields[submission.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *SubmissionMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[submission.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *SubmissionMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	m.addreviewed_by = nil
	delete(m.clearedFields, submission.FieldReviewedBy)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *SubmissionMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *SubmissionMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *SubmissionMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[submission.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *SubmissionMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[submission.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *SubmissionMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, submission.FieldReviewedAt)
}

// SetResubmissionOf sets the "resubmission_of" field.
func (m *SubmissionMutation) SetResubmissionOf(i int) {
	m.resubmission_of = &i
	m.addresubmission_of = nil
}

// ResubmissionOf returns the value of the "resubmission_of" field in the mutation.
func (m *SubmissionMutation) ResubmissionOf() (r int, exists bool) {
	v := m.resubmission_of
	if v == nil {
		return
	}
	return *v, true
}

// OldResubmissionOf returns the old "resubmission_of" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldResubmissionOf(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResubmissionOf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResubmissionOf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResubmissionOf: %w", err)
	}
	return oldValue.ResubmissionOf, nil
}

// AddResubmissionOf adds i to the "resubmission_of" field.
func (m *SubmissionMutation) AddResubmissionOf(i int) {
	if m.addresubmission_of != nil {
		*m.addresubmission_of += i
	} else {
		m.addresubmission_of = &i
	}
}

// AddedResubmissionOf returns the value that was added to the "resubmission_of" field in this mutation.
func (m *SubmissionMutation) AddedResubmissionOf() (r int, exists bool) {
	v := m.addresubmission_of
	if v == nil {
		return
	}
	return *v, true
}

// ClearResubmissionOf clears the value of the "resubmission_of" field.
func (m *SubmissionMutation) ClearResubmissionOf() {
	m.resubmission_of = nil
	m.addresubmission_of = nil
	m.clearedFields[submission.FieldResubmissionOf] = struct{}{}
}

// ResubmissionOfCleared returns if the "resubmission_of" field was cleared in this mutation.
func (m *SubmissionMutation) ResubmissionOfCleared() bool {
	_, ok := m.clearedFields[submission.FieldResubmissionOf]
	return ok
}

// ResetResubmissionOf resets all changes to the "resubmission_of" field.
func (m *SubmissionMutation) ResetResubmissionOf() {
	m.resubmission_of = nil
	m.addresubmission_of = nil
	delete(m.clearedFields, submission.FieldResubmissionOf)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubmissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubmissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubmissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SubmissionMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[submission.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SubmissionMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) TaskIDs() (ids []int) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SubmissionMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// ClearRequirement clears the "requirement" edge to the Requirement entity.
func (m *SubmissionMutation) ClearRequirement() {
	m.clearedrequirement = true
	m.clearedFields[submission.FieldRequirementID] = struct{}{}
}

// RequirementCleared reports if the "requirement" edge to the Requirement entity was cleared.
func (m *SubmissionMutation) RequirementCleared() bool {
	return m.clearedrequirement
}

// RequirementIDs returns the "requirement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequirementID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) RequirementIDs() (ids []int) {
	if id := m.requirement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequirement resets all changes to the "requirement" edge.
func (m *SubmissionMutation) ResetRequirement() {
	m.requirement = nil
	m.clearedrequirement = false
}

// ClearClient clears the "client" edge to the Company entity.
func (m *SubmissionMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[submission.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Company entity was cleared.
func (m *SubmissionMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) ClientIDs() (ids []int) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *SubmissionMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// SetSubmitterID sets the "submitter" edge to the User entity by id.
func (m *SubmissionMutation) SetSubmitterID(id int) {
	m.submitter = &id
}

// ClearSubmitter clears the "submitter" edge to the User entity.
func (m *SubmissionMutation) ClearSubmitter() {
	m.clearedsubmitter = true
	m.clearedFields[submission.FieldSubmittedBy] = struct{}{}
}

// SubmitterCleared reports if the "submitter" edge to the User entity was cleared.
func (m *SubmissionMutation) SubmitterCleared() bool {
	return m.clearedsubmitter
}

// SubmitterID returns the "submitter" edge ID in the mutation.
func (m *SubmissionMutation) SubmitterID() (id int, exists bool) {
	if m.submitter != nil {
		return *m.submitter, true
	}
	return
}

// SubmitterIDs returns the "submitter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmitterID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) SubmitterIDs() (ids []int) {
	if id := m.submitter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmitter resets all changes to the "submitter" edge.
func (m *SubmissionMutation) ResetSubmitter() {
	m.submitter = nil
	m.clearedsubmitter = false
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by ids.
func (m *SubmissionMutation) AddFeedbackIDs(ids ...int) {
	if m.feedback == nil {
		m.feedback = make(map[int]struct{})
	}
	for i := range ids {
		m.feedback[ids[i]] = struct{}{}
	}
}

// ClearFeedback clears the "feedback" edge to the Feedback entity.
func (m *SubmissionMutation) ClearFeedback() {
	m.clearedfeedback = true
}

// FeedbackCleared reports if the "feedback" edge to the Feedback entity was cleared.
func (m *SubmissionMutation) FeedbackCleared() bool {
	return m.clearedfeedback
}

// RemoveFeedbackIDs removes the "feedback" edge to the Feedback entity by IDs.
func (m *SubmissionMutation) RemoveFeedbackIDs(ids ...int) {
	if m.removedfeedback == nil {
		m.removedfeedback = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.feedback, ids[i])
		m.removedfeedback[ids[i]] = struct{}{}
	}
}

// RemovedFeedback returns the removed IDs of the "feedback" edge to the Feedback entity.
func (m *SubmissionMutation) RemovedFeedbackIDs() (ids []int) {
	for id := range m.removedfeedback {
		ids = append(ids, id)
	}
	return
}

// FeedbackIDs returns the "feedback" edge IDs in the mutation.
func (m *SubmissionMutation) FeedbackIDs() (ids []int) {
	for id := range m.feedback {
		ids = append(ids, id)
	}
	return
}

// ResetFeedback resets all changes to the "feedback" edge.
func (m *SubmissionMutation) ResetFeedback() {
	m.feedback = nil
	m.clearedfeedback = false
	m.removedfeedback = nil
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.submission_number != nil {
		fields = append(fields, submission.FieldSubmissionNumber)
	}
	if m.title != nil {
		fields = append(fields, submission.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, submission.FieldDescription)
	}
	if m.task != nil {
		fields = append(fields, submission.FieldTaskID)
	}
	if m.requirement != nil {
		fields = append(fields, submission.FieldRequirementID)
	}
	if m.client != nil {
		fields = append(fields, submission.FieldClientID)
	}
	if m.submitter != nil {
		fields = append(fields, submission.FieldSubmittedBy)
	}
	if m.deliverables != nil {
		fields = append(fields, submission.FieldDeliverables)
	}
	if m.status != nil {
		fields = append(fields, submission.FieldStatus)
	}
	if m.requested_changes != nil {
		fields = append(fields, submission.FieldRequestedChanges)
	}
	if m.review_notes != nil {
		fields = append(fields, submission.FieldReviewNotes)
	}
	if m.reviewed_by != nil {
		fields = append(fields, submission.FieldReviewedBy)
	}
	if m.reviewed_at != nil {
		fields = append(fields, submission.FieldReviewedAt)
	}
	if m.resubmission_of != nil {
		fields = append(fields, submission.FieldResubmissionOf)
	}
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, submission.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldSubmissionNumber:
		return m.SubmissionNumber()
	case submission.FieldTitle:
		return m.Title()
	case submission.FieldDescription:
		return m.Description()
	case submission.FieldTaskID:
		return m.TaskID()
	case submission.FieldRequirementID:
		return m.RequirementID()
	case submission.FieldClientID:
		return m.ClientID()
	case submission.FieldSubmittedBy:
		return m.SubmittedBy()
	case submission.FieldDeliverables:
		return m.Deliverables()
	case submission.FieldStatus:
		return m.Status()
	case submission.FieldRequestedChanges:
		return m.RequestedChanges()
	case submission.FieldReviewNotes:
		return m.ReviewNotes()
	case submission.FieldReviewedBy:
		return m.ReviewedBy()
	case submission.FieldReviewedAt:
		return m.ReviewedAt()
	case submission.FieldResubmissionOf:
		return m.ResubmissionOf()
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	case submission.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldSubmissionNumber:
		return m.OldSubmissionNumber(ctx)
	case submission.FieldTitle:
		return m.OldTitle(ctx)
	case submission.FieldDescription:
		return m.OldDescription(ctx)
	case submission.FieldTaskID:
		return m.OldTaskID(ctx)
	case submission.FieldRequirementID:
		return m.OldRequirementID(ctx)
	case submission.FieldClientID:
		return m.OldClientID(ctx)
	case submission.FieldSubmittedBy:
		return m.OldSubmittedBy(ctx)
	case submission.FieldDeliverables:
		return m.OldDeliverables(ctx)
	case submission.FieldStatus:
		return m.OldStatus(ctx)
	case submission.FieldRequestedChanges:
		return m.OldRequestedChanges(ctx)
	case submission.FieldReviewNotes:
		return m.OldReviewNotes(ctx)
	case submission.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case submission.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case submission.FieldResubmissionOf:
		return m.OldResubmissionOf(ctx)
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldSubmissionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionNumber(v)
		return nil
	case submission.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case submission.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case submission.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case submission.FieldRequirementID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirementID(v)
		return nil
	case submission.FieldClientID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case submission.FieldSubmittedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedBy(v)
		return nil
	case submission.FieldDeliverables:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliverables(v)
		return nil
	case submission.FieldStatus:
		v, ok := value.(submission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case submission.FieldRequestedChanges:
		v, ok := value.([]schema.RequestedChange)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedChanges(v)
		return nil
	case submission.FieldReviewNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewNotes(v)
		return nil
	case submission.FieldReviewedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case submission.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case submission.FieldResubmissionOf:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResubmissionOf(v)
		return nil
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addreviewed_by != nil {
		fields = append(fields, submission.FieldReviewedBy)
	}
	if m.addresubmission_of != nil {
		fields = append(fields, submission.FieldResubmissionOf)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldReviewedBy:
		return m.AddedReviewedBy()
	case submission.FieldResubmissionOf:
		return m.AddedResubmissionOf()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submission.FieldReviewedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewedBy(v)
		return nil
	case submission.FieldResubmissionOf:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResubmissionOf(v)
		return nil
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldDescription) {
		fields = append(fields, submission.FieldDescription)
	}
	if m.FieldCleared(submission.FieldDeliverables) {
		fields = append(fields, submission.FieldDeliverables)
	}
	if m.FieldCleared(submission.FieldRequestedChanges) {
		fields = append(fields, submission.FieldRequestedChanges)
	}
	if m.FieldCleared(submission.FieldReviewNotes) {
		fields = append(fields, submission.FieldReviewNotes)
	}
	if m.FieldCleared(submission.FieldReviewedBy) {
		fields = append(fields, submission.FieldReviewedBy)
	}
	if m.FieldCleared(submission.FieldReviewedAt) {
		fields = append(fields, submission.FieldReviewedAt)
	}
	if m.FieldCleared(submission.FieldResubmissionOf) {
		fields = append(fields, submission.FieldResubmissionOf)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldDescription:
		m.ClearDescription()
		return nil
	case submission.FieldDeliverables:
		m.ClearDeliverables()
		return nil
	case submission.FieldRequestedChanges:
		m.ClearRequestedChanges()
		return nil
	case submission.FieldReviewNotes:
		m.ClearReviewNotes()
		return nil
	case submission.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case submission.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	case submission.FieldResubmissionOf:
		m.ClearResubmissionOf()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldSubmissionNumber:
		m.ResetSubmissionNumber()
		return nil
	case submission.FieldTitle:
		m.ResetTitle()
		return nil
	case submission.FieldDescription:
		m.ResetDescription()
		return nil
	case submission.FieldTaskID:
		m.ResetTaskID()
		return nil
	case submission.FieldRequirementID:
		m.ResetRequirementID()
		return nil
	case submission.FieldClientID:
		m.ResetClientID()
		return nil
	case submission.FieldSubmittedBy:
		m.ResetSubmittedBy()
		return nil
	case submission.FieldDeliverables:
		m.ResetDeliverables()
		return nil
	case submission.FieldStatus:
		m.ResetStatus()
		return nil
	case submission.FieldRequestedChanges:
		m.ResetRequestedChanges()
		return nil
	case submission.FieldReviewNotes:
		m.ResetReviewNotes()
		return nil
	case submission.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case submission.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case submission.FieldResubmissionOf:
		m.ResetResubmissionOf()
		return nil
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.task != nil {
		edges = append(edges, submission.EdgeTask)
	}
	if m.requirement != nil {
		edges = append(edges, submission.EdgeRequirement)
	}
	if m.client != nil {
		edges = append(edges, submission.EdgeClient)
	}
	if m.submitter != nil {
		edges = append(edges, submission.EdgeSubmitter)
	}
	if m.feedback != nil {
		edges = append(edges, submission.EdgeFeedback)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeRequirement:
		if id := m.requirement; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeSubmitter:
		if id := m.submitter; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.feedback))
		for id := range m.feedback {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedfeedback != nil {
		edges = append(edges, submission.EdgeFeedback)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.removedfeedback))
		for id := range m.removedfeedback {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedtask {
		edges = append(edges, submission.EdgeTask)
	}
	if m.clearedrequirement {
		edges = append(edges, submission.EdgeRequirement)
	}
	if m.clearedclient {
		edges = append(edges, submission.EdgeClient)
	}
	if m.clearedsubmitter {
		edges = append(edges, submission.EdgeSubmitter)
	}
	if m.clearedfeedback {
		edges = append(edges, submission.EdgeFeedback)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case submission.EdgeTask:
		return m.clearedtask
	case submission.EdgeRequirement:
		return m.clearedrequirement
	case submission.EdgeClient:
		return m.clearedclient
	case submission.EdgeSubmitter:
		return m.clearedsubmitter
	case submission.EdgeFeedback:
		return m.clearedfeedback
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	switch name {
	case submission.EdgeTask:
		m.ClearTask()
		return nil
	case submission.EdgeRequirement:
		m.ClearRequirement()
		return nil
	case submission.EdgeClient:
		m.ClearClient()
		return nil
	case submission.EdgeSubmitter:
		m.ClearSubmitter()
		return nil
	}
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	switch name {
	case submission.EdgeTask:
		m.ResetTask()
		return nil
	case submission.EdgeRequirement:
		m.ResetRequirement()
		return nil
	case submission.EdgeClient:
		m.ResetClient()
		return nil
	case submission.EdgeSubmitter:
		m.ResetSubmitter()
		return nil
	case submission.EdgeFeedback:
		m.ResetFeedback()
		return nil
	}
	return fmt.Errorf("unknown Submission edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	task_number        *string
	title              *string
	description        *string
	requested_by       *[]int
	appendrequested_by []int
	status             *task.Status
	status_manual      *bool
	progress           *int
	addprogress        *int
	subtasks           *[]schema.Subtask
	appendsubtasks     []schema.Subtask
	due_date           *time.Time
	completed_date     *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	requirement        *int
	clearedrequirement bool
	assignee           *int
	clearedassignee    bool
	queries            map[int]struct{}
	removedqueries     map[int]struct{}
	clearedqueries     bool
	submissions        map[int]struct{}
	removedsubmissions map[int]struct{}
	clearedsubmissions bool
	done               bool
	oldValue           func(context.Context) (*Task, error)
	predicates         []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id int) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskNumber sets the "task_number" field.
func (m *TaskMutation) SetTaskNumber(s string) {
	m.task_number = &s
}

// TaskNumber returns the value of the "task_number" field in the mutation.
func (m *TaskMutation) TaskNumber() (r string, exists bool) {
	v := m.task_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskNumber returns the old "task_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskNumber: %w", err)
	}
	return oldValue.TaskNumber, nil
}

// ResetTaskNumber resets all changes to the "task_number" field.
func (m *TaskMutation) ResetTaskNumber() {
	m.task_number = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetRequirementID sets the "requirement_id" field.
func (m *TaskMutation) SetRequirementID(i int) {
	m.requirement = &i
}

// RequirementID returns the value of the "requirement_id" field in the mutation.
func (m *TaskMutation) RequirementID() (r int, exists bool) {
	v := m.requirement
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirementID returns the old "requirement_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequirementID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirementID: %w", err)
	}
	return oldValue.RequirementID, nil
}

// ResetRequirementID resets all changes to the "requirement_id" field.
func (m *TaskMutation) ResetRequirementID() {
	m.requirement = nil
}

// SetAssignedTo sets the "assigned_to" field.
func (m *TaskMutation) SetAssignedTo(i int) {
	m.assignee = &i
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *TaskMutation) AssignedTo() (r int, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedTo(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (m *TaskMutation) ClearAssignedTo() {
	m.assignee = nil
	m.clearedFields[task.FieldAssignedTo] = struct{}{}
}

// AssignedToCleared returns if the "assigned_to" field was cleared in this mutation.
func (m *TaskMutation) AssignedToCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedTo]
	return ok
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *TaskMutation) ResetAssignedTo() {
	m.assignee = nil
	delete(m.clearedFields, task.FieldAssignedTo)
}

// SetRequestedBy sets the "requested_by" field.
func (m *TaskMutation) SetRequestedBy(i []int) {
	m.requested_by = &i
	m.appendrequested_by = nil
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *TaskMutation) RequestedBy() (r []int, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequestedBy(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// AppendRequestedBy adds i to the "requested_by" field.
func (m *TaskMutation) AppendRequestedBy(i []int) {
	m.appendrequested_by = append(m.appendrequested_by, i...)
}

// AppendedRequestedBy returns the list of values that were appended to the "requested_by" field in this mutation.
func (m *TaskMutation) AppendedRequestedBy() ([]int, bool) {
	if len(m.appendrequested_by) == 0 {
		return nil, false
	}
	return m.appendrequested_by, true
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (m *TaskMutation) ClearRequestedBy() {
	m.requested_by = nil
	m.appendrequested_by = nil
	m.clearedFields[task.FieldRequestedBy] = struct{}{}
}

// RequestedByCleared returns if the "requested_by" field was cleared in this mutation.
func (m *TaskMutation) RequestedByCleared() bool {
	_, ok := m.clearedFields[task.FieldRequestedBy]
	return ok
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *TaskMutation) ResetRequestedBy() {
	m.requested_by = nil
	m.appendrequested_by = nil
	delete(m.clearedFields, task.FieldRequestedBy)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetStatusManual sets the "status_manual" field.
func (m *TaskMutation) SetStatusManual(b bool) {
	m.status_manual = &b
}

// StatusManual returns the value of the "status_manual" field in the mutation.
func (m *TaskMutation) StatusManual() (r bool, exists bool) {
	v := m.status_manual
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusManual returns the old "status_manual" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatusManual(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusManual is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusManual requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusManual: %w", err)
	}
	return oldValue.StatusManual, nil
}

// ResetStatusManual resets all changes to the "status_manual" field.
func (m *TaskMutation) ResetStatusManual() {
	m.status_manual = nil
}

// SetProgress sets the "progress" field.
func (m *TaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *TaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *TaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *TaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *TaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetSubtasks sets the "subtasks" field.
func (m *TaskMutation) SetSubtasks(s []schema.Subtask) {
	m.subtasks = &s
	m.appendsubtasks = nil
}

// Subtasks returns the value of the "subtasks" field in the mutation.
func (m *TaskMutation) Subtasks() (r []schema.Subtask, exists bool) {
	v := m.subtasks
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtasks returns the old "subtasks" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSubtasks(ctx context.Context) (v []schema.Subtask, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtasks: %w", err)
	}
	return oldValue.Subtasks, nil
}

// AppendSubtasks adds s to the "subtasks" field.
func (m *TaskMutation) AppendSubtasks(s []schema.Subtask) {
	m.appendsubtasks = append(m.appendsubtasks, s...)
}

// AppendedSubtasks returns the list of values that were appended to the "subtasks" field in this mutation.
func (m *TaskMutation) AppendedSubtasks() ([]schema.Subtask, bool) {
	if len(m.appendsubtasks) == 0 {
		return nil, false
	}
	return m.appendsubtasks, true
}

// ClearSubtasks clears the value of the "subtasks" field.
func (m *TaskMutation) ClearSubtasks() {
	m.subtasks = nil
	m.appendsubtasks = nil
	m.clearedFields[task.FieldSubtasks] = struct{}{}
}

// SubtasksCleared returns if the "subtasks" field was cleared in this mutation.
func (m *TaskMutation) SubtasksCleared() bool {
	_, ok := m.clearedFields[task.FieldSubtasks]
	return ok
}

// ResetSubtasks resets all changes to the "subtasks" field.
func (m *TaskMutation) ResetSubtasks() {
	m.subtasks = nil
	m.appendsubtasks = nil
	delete(m.clearedFields, task.FieldSubtasks)
}

// SetDueDate sets the "due_date" field.
func (m *TaskMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *TaskMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *TaskMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[task.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *TaskMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[task.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *TaskMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, task.FieldDueDate)
}

// SetCompletedDate sets the "completed_date" field.
func (m *TaskMutation) SetCompletedDate(t time.Time) {
	m.completed_date = &t
}

// CompletedDate returns the value of the "completed_date" field in the mutation.
func (m *TaskMutation) CompletedDate() (r time.Time, exists bool) {
	v := m.completed_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedDate returns the old "completed_date" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedDate: %w", err)
	}
	return oldValue.CompletedDate, nil
}

// ClearCompletedDate clears the value of the "completed_date" field.
func (m *TaskMutation) ClearCompletedDate() {
	m.completed_date = nil
	m.clearedFields[task.FieldCompletedDate] = struct{}{}
}

// CompletedDateCleared returns if the "completed_date" field was cleared in this mutation.
func (m *TaskMutation) CompletedDateCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedDate]
	return ok
}

// ResetCompletedDate resets all changes to the "completed_date" field.
func (m *TaskMutation) ResetCompletedDate() {
	m.completed_date = nil
	delete(m.clearedFields, task.FieldCompletedDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRequirement clears the "requirement" edge to the Requirement entity.
func (m *TaskMutation) ClearRequirement() {
	m.clearedrequirement = true
	m.clearedFields[task.FieldRequirementID] = struct{}{}
}

// RequirementCleared reports if the "requirement" edge to the Requirement entity was cleared.
func (m *TaskMutation) RequirementCleared() bool {
	return m.clearedrequirement
}

// RequirementIDs returns the "requirement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequirementID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) RequirementIDs() (ids []int) {
	if id := m.requirement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequirement resets all changes to the "requirement" edge.
func (m *TaskMutation) ResetRequirement() {
	m.requirement = nil
	m.clearedrequirement = false
}

// SetAssigneeID sets the "assignee" edge to the User entity by id.
func (m *TaskMutation) SetAssigneeID(id int) {
	m.assignee = &id
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (m *TaskMutation) ClearAssignee() {
	m.clearedassignee = true
	m.clearedFields[task.FieldAssignedTo] = struct{}{}
}

// AssigneeCleared reports if the "assignee" edge to the User entity was cleared.
func (m *TaskMutation) AssigneeCleared() bool {
	return m.AssignedToCleared() || m.clearedassignee
}

// AssigneeID returns the "assignee" edge ID in the mutation.
func (m *TaskMutation) AssigneeID() (id int, exists bool) {
	if m.assignee != nil {
		return *m.assignee, true
	}
	return
}

// AssigneeIDs returns the "assignee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssigneeID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) AssigneeIDs() (ids []int) {
	if id := m.assignee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignee resets all changes to the "assignee" edge.
func (m *TaskMutation) ResetAssignee() {
	m.assignee = nil
	m.clearedassignee = false
}

// AddQueryIDs adds the "queries" edge to the Thread entity by ids.
func (m *TaskMutation) AddQueryIDs(ids ...int) {
	if m.queries == nil {
		m.queries = make(map[int]struct{})
	}
	for i := range ids {
		m.queries[ids[i]] = struct{}{}
	}
}

// ClearQueries clears the "queries" edge to the Thread entity.
func (m *TaskMutation) ClearQueries() {
	m.clearedqueries = true
}

// QueriesCleared reports if the "queries" edge to the Thread entity was cleared.
func (m *TaskMutation) QueriesCleared() bool {
	return m.clearedqueries
}

// RemoveQueryIDs removes the "queries" edge to the Thread entity by IDs.
func (m *TaskMutation) RemoveQueryIDs(ids ...int) {
	if m.removedqueries == nil {
		m.removedqueries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.queries, ids[i])
		m.removedqueries[ids[i]] = struct{}{}
	}
}

// RemovedQueries returns the removed IDs of the "queries" edge to the Thread entity.
func (m *TaskMutation) RemovedQueriesIDs() (ids []int) {
	for id := range m.removedqueries {
		ids = append(ids, id)
	}
	return
}

// QueriesIDs returns the "queries" edge IDs in the mutation.
func (m *TaskMutation) QueriesIDs() (ids []int) {
	for id := range m.queries {
		ids = append(ids, id)
	}
	return
}

// ResetQueries resets all changes to the "queries" edge.
func (m *TaskMutation) ResetQueries() {
	m.queries = nil
	m.clearedqueries = false
	m.removedqueries = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *TaskMutation) AddSubmissionIDs(ids ...int) {
	if m.submissions == nil {
		m.submissions = make(map[int]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *TaskMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *TaskMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *TaskMutation) RemoveSubmissionIDs(ids ...int) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *TaskMutation) RemovedSubmissionsIDs() (ids []int) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *TaskMutation) SubmissionsIDs() (ids []int) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *TaskMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.task_number != nil {
		fields = append(fields, task.FieldTaskNumber)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.requirement != nil {
		fields = append(fields, task.FieldRequirementID)
	}
	if m.assignee != nil {
		fields = append(fields, task.FieldAssignedTo)
	}
	if m.requested_by != nil {
		fields = append(fields, task.FieldRequestedBy)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.status_manual != nil {
		fields = append(fields, task.FieldStatusManual)
	}
	if m.progress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.subtasks != nil {
		fields = append(fields, task.FieldSubtasks)
	}
	if m.due_date != nil {
		fields = append(fields, task.FieldDueDate)
	}
	if m.completed_date != nil {
		fields = append(fields, task.FieldCompletedDate)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTaskNumber:
		return m.TaskNumber()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldRequirementID:
		return m.RequirementID()
	case task.FieldAssignedTo:
		return m.AssignedTo()
	case task.FieldRequestedBy:
		return m.RequestedBy()
	case task.FieldStatus:
		return m.Status()
	case task.FieldStatusManual:
		return m.StatusManual()
	case task.FieldProgress:
		return m.Progress()
	case task.FieldSubtasks:
		return m.Subtasks()
	case task.FieldDueDate:
		return m.DueDate()
	case task.FieldCompletedDate:
		return m.CompletedDate()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTaskNumber:
		return m.OldTaskNumber(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldRequirementID:
		return m.OldRequirementID(ctx)
	case task.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case task.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldStatusManual:
		return m.OldStatusManual(ctx)
	case task.FieldProgress:
		return m.OldProgress(ctx)
	case task.FieldSubtasks:
		return m.OldSubtasks(ctx)
	case task.FieldDueDate:
		return m.OldDueDate(ctx)
	case task.FieldCompletedDate:
		return m.OldCompletedDate(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTaskNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskNumber(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldRequirementID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirementID(v)
		return nil
	case task.FieldAssignedTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case task.FieldRequestedBy:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldStatusManual:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusManual(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case task.FieldSubtasks:
		v, ok := value.([]schema.Subtask)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtasks(v)
		return nil
	case task.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case task.FieldCompletedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedDate(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, task.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldAssignedTo) {
		fields = append(fields, task.FieldAssignedTo)
	}
	if m.FieldCleared(task.FieldRequestedBy) {
		fields = append(fields, task.FieldRequestedBy)
	}
	if m.FieldCleared(task.FieldSubtasks) {
		fields = append(fields, task.FieldSubtasks)
	}
	if m.FieldCleared(task.FieldDueDate) {
		fields = append(fields, task.FieldDueDate)
	}
	if m.FieldCleared(task.FieldCompletedDate) {
		fields = append(fields, task.FieldCompletedDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldAssignedTo:
		m.ClearAssignedTo()
		return nil
	case task.FieldRequestedBy:
		m.ClearRequestedBy()
		return nil
	case task.FieldSubtasks:
		m.ClearSubtasks()
		return nil
	case task.FieldDueDate:
		m.ClearDueDate()
		return nil
	case task.FieldCompletedDate:
		m.ClearCompletedDate()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTaskNumber:
		m.ResetTaskNumber()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldRequirementID:
		m.ResetRequirementID()
		return nil
	case task.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case task.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldStatusManual:
		m.ResetStatusManual()
		return nil
	case task.FieldProgress:
		m.ResetProgress()
		return nil
	case task.FieldSubtasks:
		m.ResetSubtasks()
		return nil
	case task.FieldDueDate:
		m.ResetDueDate()
		return nil
	case task.FieldCompletedDate:
		m.ResetCompletedDate()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.requirement != nil {
		edges = append(edges, task.EdgeRequirement)
	}
	if m.assignee != nil {
		edges = append(edges, task.EdgeAssignee)
	}
	if m.queries != nil {
		edges = append(edges, task.EdgeQueries)
	}
	if m.submissions != nil {
		edges = append(edges, task.EdgeSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeRequirement:
		if id := m.requirement; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeAssignee:
		if id := m.assignee; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.queries))
		for id := range m.queries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedqueries != nil {
		edges = append(edges, task.EdgeQueries)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, task.EdgeSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.removedqueries))
		for id := range m.removedqueries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedrequirement {
		edges = append(edges, task.EdgeRequirement)
	}
	if m.clearedassignee {
		edges = append(edges, task.EdgeAssignee)
	}
	if m.clearedqueries {
		edges = append(edges, task.EdgeQueries)
	}
	if m.clearedsubmissions {
		edges = append(edges, task.EdgeSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeRequirement:
		return m.clearedrequirement
	case task.EdgeAssignee:
		return m.clearedassignee
	case task.EdgeQueries:
		return m.clearedqueries
	case task.EdgeSubmissions:
		return m.clearedsubmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeRequirement:
		m.ClearRequirement()
		return nil
	case task.EdgeAssignee:
		m.ClearAssignee()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeRequirement:
		m.ResetRequirement()
		return nil
	case task.EdgeAssignee:
		m.ResetAssignee()
		return nil
	case task.EdgeQueries:
		m.ResetQueries()
		return nil
	case task.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// ThreadMutation represents an operation that mutates the Thread nodes in the graph.
type ThreadMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	query_number         *string
	title                *string
	description          *string
	status               *thread.Status
	participants         *[]int
	appendparticipants   []int
	last_message_at      *time.Time
	last_message_preview *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	task                 *int
	clearedtask          bool
	messages             map[int]struct{}
	removedmessages      map[int]struct{}
	clearedmessages      bool
	done                 bool
	oldValue             func(context.Context) (*Thread, error)
	predicates           []predicate.Thread
}

var _ ent.Mutation = (*ThreadMutation)(nil)

// threadOption allows management of the mutation configuration using functional options.
type threadOption func(*ThreadMutation)

// newThreadMutation creates new mutation for the Thread entity.
func newThreadMutation(c config, op Op, opts ...threadOption) *ThreadMutation {
	m := &ThreadMutation{
		config:        c,
		op:            op,
		typ:           TypeThread,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThreadID sets the ID field of the mutation.
func withThreadID(id int) threadOption {
	return func(m *ThreadMutation) {
		var (
			err   error
			once  sync.Once
			value *Thread
		)
		m.oldValue = func(ctx context.Context) (*Thread, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Thread.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThread sets the old Thread of the mutation.
func withThread(node *Thread) threadOption {
	return func(m *ThreadMutation) {
		m.oldValue = func(context.Context) (*Thread, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThreadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThreadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThreadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThreadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Thread.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueryNumber sets the "query_number" field.
func (m *ThreadMutation) SetQueryNumber(s string) {
	m.query_number = &s
}

// QueryNumber returns the value of the "query_number" field in the mutation.
func (m *ThreadMutation) QueryNumber() (r string, exists bool) {
	v := m.query_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryNumber returns the old "query_number" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldQueryNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryNumber: %w", err)
	}
	return oldValue.QueryNumber, nil
}

// ResetQueryNumber resets all changes to the "query_number" field.
func (m *ThreadMutation) ResetQueryNumber() {
	m.query_number = nil
}

// SetTaskID sets the "task_id" field.
func (m *ThreadMutation) SetTaskID(i int) {
	m.task = &i
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ThreadMutation) TaskID() (r int, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldTaskID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ThreadMutation) ResetTaskID() {
	m.task = nil
}

// SetTitle sets the "title" field.
func (m *ThreadMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ThreadMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ThreadMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ThreadMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ThreadMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ThreadMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[thread.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ThreadMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[thread.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ThreadMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, thread.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *ThreadMutation) SetStatus(t thread.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ThreadMutation) Status() (r thread.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldStatus(ctx context.Context) (v thread.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ThreadMutation) ResetStatus() {
	m.status = nil
}

// SetParticipants sets the "participants" field.
func (m *ThreadMutation) SetParticipants(i []int) {
	m.participants = &i
	m.appendparticipants = nil
}

// Participants returns the value of the "participants" field in the mutation.
func (m *ThreadMutation) Participants() (r []int, exists bool) {
	v := m.participants
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipants returns the old "participants" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldParticipants(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipants: %w", err)
	}
	return oldValue.Participants, nil
}

// AppendParticipants adds i to the "participants" field.
func (m *ThreadMutation) AppendParticipants(i []int) {
	m.appendparticipants = append(m.appendparticipants, i...)
}

// AppendedParticipants returns the list of values that were appended to the "participants" field in this mutation.
func (m *ThreadMutation) AppendedParticipants() ([]int, bool) {
	if len(m.appendparticipants) == 0 {
		return nil, false
	}
	return m.appendparticipants, true
}

// ClearParticipants clears the value of the "participants" field.
func (m *ThreadMutation) ClearParticipants() {
	m.participants = nil
	m.appendparticipants = nil
	m.clearedFields[thread.FieldParticipants] = struct{}{}
}

// ParticipantsCleared returns if the "participants" field was cleared in this mutation.
func (m *ThreadMutation) ParticipantsCleared() bool {
	_, ok := m.clearedFields[thread.FieldParticipants]
	return ok
}

// ResetParticipants resets all changes to the "participants" field.
func (m *ThreadMutation) ResetParticipants() {
	m.participants = nil
	m.appendparticipants = nil
	delete(m.clearedFields, thread.FieldParticipants)
}

// SetLastMessageAt sets the "last_message_at" field.
func (m *ThreadMutation) SetLastMessageAt(t time.Time) {
	m.last_message_at = &t
}

// LastMessageAt returns the value of the "last_message_at" field in the mutation.
func (m *ThreadMutation) LastMessageAt() (r time.Time, exists bool) {
	v := m.last_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageAt returns the old "last_message_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldLastMessageAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageAt: %w", err)
	}
	return oldValue.LastMessageAt, nil
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (m *ThreadMutation) ClearLastMessageAt() {
	m.last_message_at = nil
	m.clearedFields[thread.FieldLastMessageAt] = struct{}{}
}

// LastMessageAtCleared returns if the "last_message_at" field was cleared in this mutation.
func (m *ThreadMutation) LastMessageAtCleared() bool {
	_, ok := m.clearedFields[thread.FieldLastMessageAt]
	return ok
}

// ResetLastMessageAt resets all changes to the "last_message_at" field.
func (m *ThreadMutation) ResetLastMessageAt() {
	m.last_message_at = nil
	delete(m.clearedFields, thread.FieldLastMessageAt)
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (m *ThreadMutation) SetLastMessagePreview(s string) {
	m.last_message_preview = &s
}

// LastMessagePreview returns the value of the "last_message_preview" field in the mutation.
func (m *ThreadMutation) LastMessagePreview() (r string, exists bool) {
	v := m.last_message_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessagePreview returns the old "last_message_preview" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldLastMessagePreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessagePreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessagePreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessagePreview: %w", err)
	}
	return oldValue.LastMessagePreview, nil
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (m *ThreadMutation) ClearLastMessagePreview() {
	m.last_message_preview = nil
	m.clearedFields[thread.FieldLastMessagePreview] = struct{}{}
}

// LastMessagePreviewCleared returns if the "last_message_preview" field was cleared in this mutation.
func (m *ThreadMutation) LastMessagePreviewCleared() bool {
	_, ok := m.clearedFields[thread.FieldLastMessagePreview]
	return ok
}

// ResetLastMessagePreview resets all changes to the "last_message_preview" field.
func (m *ThreadMutation) ResetLastMessagePreview() {
	m.last_message_preview = nil
	delete(m.clearedFields, thread.FieldLastMessagePreview)
}

// SetCreatedAt sets the "created_at" field.
func (m *ThreadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThreadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ThreadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ThreadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ThreadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ThreadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ThreadMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[thread.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ThreadMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ThreadMutation) TaskIDs() (ids []int) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ThreadMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ThreadMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ThreadMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ThreadMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ThreadMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ThreadMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ThreadMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ThreadMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ThreadMutation builder.
func (m *ThreadMutation) Where(ps ...predicate.Thread) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThreadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThreadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Thread, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThreadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThreadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Thread).
func (m *ThreadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThreadMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.query_number != nil {
		fields = append(fields, thread.FieldQueryNumber)
	}
	if m.task != nil {
		fields = append(fields, thread.FieldTaskID)
	}
	if m.title != nil {
		fields = append(fields, thread.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, thread.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, thread.FieldStatus)
	}
	if m.participants != nil {
		fields = append(fields, thread.FieldParticipants)
	}
	if m.last_message_at != nil {
		fields = append(fields, thread.FieldLastMessageAt)
	}
	if m.last_message_preview != nil {
		fields = append(fields, thread.FieldLastMessagePreview)
	}
	if m.created_at != nil {
		fields = append(fields, thread.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, thread.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThreadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thread.FieldQueryNumber:
		return m.QueryNumber()
	case thread.FieldTaskID:
		return m.TaskID()
	case thread.FieldTitle:
		return m.Title()
	case thread.FieldDescription:
		return m.Description()
	case thread.FieldStatus:
		return m.Status()
	case thread.FieldParticipants:
		return m.Participants()
	case thread.FieldLastMessageAt:
		return m.LastMessageAt()
	case thread.FieldLastMessagePreview:
		return m.LastMessagePreview()
	case thread.FieldCreatedAt:
		return m.CreatedAt()
	case thread.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThreadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thread.FieldQueryNumber:
		return m.OldQueryNumber(ctx)
	case thread.FieldTaskID:
		return m.OldTaskID(ctx)
	case thread.FieldTitle:
		return m.OldTitle(ctx)
	case thread.FieldDescription:
		return m.OldDescription(ctx)
	case thread.FieldStatus:
		return m.OldStatus(ctx)
	case thread.FieldParticipants:
		return m.OldParticipants(ctx)
	case thread.FieldLastMessageAt:
		return m.OldLastMessageAt(ctx)
	case thread.FieldLastMessagePreview:
		return m.OldLastMessagePreview(ctx)
	case thread.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case thread.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Thread field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thread.FieldQueryNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryNumber(v)
		return nil
	case thread.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case thread.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case thread.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case thread.FieldStatus:
		v, ok := value.(thread.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case thread.FieldParticipants:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipants(v)
		return nil
	case thread.FieldLastMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageAt(v)
		return nil
	case thread.FieldLastMessagePreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessagePreview(v)
		return nil
	case thread.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case thread.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThreadMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThreadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Thread numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThreadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(thread.FieldDescription) {
		fields = append(fields, thread.FieldDescription)
	}
	if m.FieldCleared(thread.FieldParticipants) {
		fields = append(fields, thread.FieldParticipants)
	}
	if m.FieldCleared(thread.FieldLastMessageAt) {
		fields = append(fields, thread.FieldLastMessageAt)
	}
	if m.FieldCleared(thread.FieldLastMessagePreview) {
		fields = append(fields, thread.FieldLastMessagePreview)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThreadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThreadMutation) ClearField(name string) error {
	switch name {
	case thread.FieldDescription:
		m.ClearDescription()
		return nil
	case thread.FieldParticipants:
		m.ClearParticipants()
		return nil
	case thread.FieldLastMessageAt:
		m.ClearLastMessageAt()
		return nil
	case thread.FieldLastMessagePreview:
		m.ClearLastMessagePreview()
		return nil
	}
	return fmt.Errorf("unknown Thread nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThreadMutation) ResetField(name string) error {
	switch name {
	case thread.FieldQueryNumber:
		m.ResetQueryNumber()
		return nil
	case thread.FieldTaskID:
		m.ResetTaskID()
		return nil
	case thread.FieldTitle:
		m.ResetTitle()
		return nil
	case thread.FieldDescription:
		m.ResetDescription()
		return nil
	case thread.FieldStatus:
		m.ResetStatus()
		return nil
	case thread.FieldParticipants:
		m.ResetParticipants()
		return nil
	case thread.FieldLastMessageAt:
		m.ResetLastMessageAt()
		return nil
	case thread.FieldLastMessagePreview:
		m.ResetLastMessagePreview()
		return nil
	case thread.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case thread.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThreadMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.task != nil {
		edges = append(edges, thread.EdgeTask)
	}
	if m.messages != nil {
		edges = append(edges, thread.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThreadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case thread.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case thread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThreadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, thread.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThreadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case thread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThreadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtask {
		edges = append(edges, thread.EdgeTask)
	}
	if m.clearedmessages {
		edges = append(edges, thread.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThreadMutation) EdgeCleared(name string) bool {
	switch name {
	case thread.EdgeTask:
		return m.clearedtask
	case thread.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThreadMutation) ClearEdge(name string) error {
	switch name {
	case thread.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Thread unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThreadMutation) ResetEdge(name string) error {
	switch name {
	case thread.EdgeTask:
		m.ResetTask()
		return nil
	case thread.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Thread edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	full_name               *string
	username                *string
	email                   *string
	phone                   *string
	role                    *user.Role
	password_hash           *string
	magic_link_token        *string
	magic_link_expires_at   *time.Time
	is_active               *bool
	created_at              *time.Time
	updated_at              *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	client_profile          *int
	clearedclient_profile   bool
	owned_clients           map[int]struct{}
	removedowned_clients    map[int]struct{}
	clearedowned_clients    bool
	lead_assignments        map[int]struct{}
	removedlead_assignments map[int]struct{}
	clearedlead_assignments bool
	lead_activities         map[int]struct{}
	removedlead_activities  map[int]struct{}
	clearedlead_activities  bool
	lead_notes              map[int]struct{}
	removedlead_notes       map[int]struct{}
	clearedlead_notes       bool
	assigned_tasks          map[int]struct{}
	removedassigned_tasks   map[int]struct{}
	clearedassigned_tasks   bool
	messages                map[int]struct{}
	removedmessages         map[int]struct{}
	clearedmessages         bool
	submissions             map[int]struct{}
	removedsubmissions      map[int]struct{}
	clearedsubmissions      bool
	uploaded_files          map[int]struct{}
	removeduploaded_files   map[int]struct{}
	cleareduploaded_files   bool
	feedback_given          map[int]struct{}
	removedfeedback_given   map[int]struct{}
	clearedfeedback_given   bool
	done                    bool
	oldValue                func(context.Context) (*User, error)
	predicates              []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFullName sets the "full_name" field.
func (m *UserMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *UserMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *UserMutation) ResetFullName() {
	m.full_name = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetMagicLinkToken sets the "magic_link_token" field.
func (m *UserMutation) SetMagicLinkToken(s string) {
	m.magic_link_token = &s
}

// MagicLinkToken returns the value of the "magic_link_token" field in the mutation.
func (m *UserMutation) MagicLinkToken() (r string, exists bool) {
	v := m.magic_link_token
	if v == nil {
		return
	}
	return *v, true
}

// OldMagicLinkToken returns the old "magic_link_token" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMagicLinkToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMagicLinkToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMagicLinkToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMagicLinkToken: %w", err)
	}
	return oldValue.MagicLinkToken, nil
}

// ClearMagicLinkToken clears the value of the "magic_link_token" field.
func (m *UserMutation) ClearMagicLinkToken() {
	m.magic_link_token = nil
	m.clearedFields[user.FieldMagicLinkToken] = struct{}{}
}

// MagicLinkTokenCleared returns if the "magic_link_token" field was cleared in this mutation.
func (m *UserMutation) MagicLinkTokenCleared() bool {
	_, ok := m.clearedFields[user.FieldMagicLinkToken]
	return ok
}

// ResetMagicLinkToken resets all changes to the "magic_link_token" field.
func (m *UserMutation) ResetMagicLinkToken() {
	m.magic_link_token = nil
	delete(m.clearedFields, user.FieldMagicLinkToken)
}

// SetMagicLinkExpiresAt sets the "magic_link_expires_at" field.
func (m *UserMutation) SetMagicLinkExpiresAt(t time.Time) {
	m.magic_link_expires_at = &t
}

// MagicLinkExpiresAt returns the value of the "magic_link_expires_at" field in the mutation.
func (m *UserMutation) MagicLinkExpiresAt() (r time.Time, exists bool) {
	v := m.magic_link_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMagicLinkExpiresAt returns the old "magic_link_expires_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMagicLinkExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMagicLinkExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMagicLinkExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMagicLinkExpiresAt: %w", err)
	}
	return oldValue.MagicLinkExpiresAt, nil
}

// ClearMagicLinkExpiresAt clears the value of the "magic_link_expires_at" field.
func (m *UserMutation) ClearMagicLinkExpiresAt() {
	m.magic_link_expires_at = nil
	m.clearedFields[user.FieldMagicLinkExpiresAt] = struct{}{}
}

// MagicLinkExpiresAtCleared returns if the "magic_link_expires_at" field was cleared in this mutation.
func (m *UserMutation) MagicLinkExpiresAtCleared() bool {
	_, ok := m.clearedFields[user.FieldMagicLinkExpiresAt]
	return ok
}

// ResetMagicLinkExpiresAt resets all changes to the "magic_link_expires_at" field.
func (m *UserMutation) ResetMagicLinkExpiresAt() {
	m.magic_link_expires_at = nil
	delete(m.clearedFields, user.FieldMagicLinkExpiresAt)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetClientProfileID sets the "client_profile" edge to the Company entity by id.
func (m *UserMutation) SetClientProfileID(id int) {
	m.client_profile = &id
}

// ClearClientProfile clears the "client_profile" edge to the Company entity.
func (m *UserMutation) ClearClientProfile() {
	m.clearedclient_profile = true
}

// ClientProfileCleared reports if the "client_profile" edge to the Company entity was cleared.
func (m *UserMutation) ClientProfileCleared() bool {
	return m.clearedclient_profile
}

// ClientProfileID returns the "client_profile" edge ID in the mutation.
func (m *UserMutation) ClientProfileID() (id int, exists bool) {
	if m.client_profile != nil {
		return *m.client_profile, true
	}
	return
}

// ClientProfileIDs returns the "client_profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientProfileID instead. It exists only for internal usage by the builders.
func (m *UserMutation) ClientProfileIDs() (ids []int) {
	if id := m.client_profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClientProfile resets all changes to the "client_profile" edge.
func (m *UserMutation) ResetClientProfile() {
	m.client_profile = nil
	m.clearedclient_profile = false
}

// AddOwnedClientIDs adds the "owned_clients" edge to the Company entity by ids.
func (m *UserMutation) AddOwnedClientIDs(ids ...int) {
	if m.owned_clients == nil {
		m.owned_clients = make(map[int]struct{})
	}
	for i := range ids {
		m.owned_clients[ids[i]] = struct{}{}
	}
}

// ClearOwnedClients clears the "owned_clients" edge to the Company entity.
func (m *UserMutation) ClearOwnedClients() {
	m.clearedowned_clients = true
}

// OwnedClientsCleared reports if the "owned_clients" edge to the Company entity was cleared.
func (m *UserMutation) OwnedClientsCleared() bool {
	return m.clearedowned_clients
}

// RemoveOwnedClientIDs removes the "owned_clients" edge to the Company entity by IDs.
func (m *UserMutation) RemoveOwnedClientIDs(ids ...int) {
	if m.removedowned_clients == nil {
		m.removedowned_clients = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.owned_clients, ids[i])
		m.removedowned_clients[ids[i]] = struct{}{}
	}
}

// RemovedOwnedClients returns the removed IDs of the "owned_clients" edge to the Company entity.
func (m *UserMutation) RemovedOwnedClientsIDs() (ids []int) {
	for id := range m.removedowned_clients {
		ids = append(ids, id)
	}
	return
}

// OwnedClientsIDs returns the "owned_clients" edge IDs in the mutation.
func (m *UserMutation) OwnedClientsIDs() (ids []int) {
	for id := range m.owned_clients {
		ids = append(ids, id)
	}
	return
}

// ResetOwnedClients resets all changes to the "owned_clients" edge.
func (m *UserMutation) ResetOwnedClients() {
	m.owned_clients = nil
	m.clearedowned_clients = false
	m.removedowned_clients = nil
}

// AddLeadAssignmentIDs adds the "lead_assignments" edge to the LeadAssignment entity by ids.
func (m *UserMutation) AddLeadAssignmentIDs(ids ...int) {
	if m.lead_assignments == nil {
		m.lead_assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.lead_assignments[ids[i]] = struct{}{}
	}
}

// ClearLeadAssignments clears the "lead_assignments" edge to the LeadAssignment entity.
func (m *UserMutation) ClearLeadAssignments() {
	m.clearedlead_assignments = true
}

// LeadAssignmentsCleared reports if the "lead_assignments" edge to the LeadAssignment entity was cleared.
func (m *UserMutation) LeadAssignmentsCleared() bool {
	return m.clearedlead_assignments
}

// RemoveLeadAssignmentIDs removes the "lead_assignments" edge to the LeadAssignment entity by IDs.
func (m *UserMutation) RemoveLeadAssignmentIDs(ids ...int) {
	if m.removedlead_assignments == nil {
		m.removedlead_assignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lead_assignments, ids[i])
		m.removedlead_assignments[ids[i]] = struct{}{}
	}
}

// RemovedLeadAssignments returns the removed IDs of the "lead_assignments" edge to the LeadAssignment entity.
func (m *UserMutation) RemovedLeadAssignmentsIDs() (ids []int) {
	for id := range m.removedlead_assignments {
		ids = append(ids, id)
	}
	return
}

// LeadAssignmentsIDs returns the "lead_assignments" edge IDs in the mutation.
func (m *UserMutation) LeadAssignmentsIDs() (ids []int) {
	for id := range m.lead_assignments {
		ids = append(ids, id)
	}
	return
}

// ResetLeadAssignments resets all changes to the "lead_assignments" edge.
func (m *UserMutation) ResetLeadAssignments() {
	m.lead_assignments = nil
	m.clearedlead_assignments = false
	m.removedlead_assignments = nil
}

// AddLeadActivityIDs adds the "lead_activities" edge to the LeadActivity entity by ids.
func (m *UserMutation) AddLeadActivityIDs(ids ...int) {
	if m.lead_activities == nil {
		m.lead_activities = make(map[int]struct{})
	}
	for i := range ids {
		m.lead_activities[ids[i]] = struct{}{}
	}
}

// ClearLeadActivities clears the "lead_activities" edge to the LeadActivity entity.
func (m *UserMutation) ClearLeadActivities() {
	m.clearedlead_activities = true
}

// LeadActivitiesCleared reports if the "lead_activities" edge to the LeadActivity entity was cleared.
func (m *UserMutation) LeadActivitiesCleared() bool {
	return m.clearedlead_activities
}

// RemoveLeadActivityIDs removes the "lead_activities" edge to the LeadActivity entity by IDs.
func (m *UserMutation) RemoveLeadActivityIDs(ids ...int) {
	if m.removedlead_activities == nil {
		m.removedlead_activities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lead_activities, ids[i])
		m.removedlead_activities[ids[i]] = struct{}{}
	}
}

// RemovedLeadActivities returns the removed IDs of the "lead_activities" edge to the LeadActivity entity.
func (m *UserMutation) RemovedLeadActivitiesIDs() (ids []int) {
	for id := range m.removedlead_activities {
		ids = append(ids, id)
	}
	return
}

// LeadActivitiesIDs returns the "lead_activities" edge IDs in the mutation.
func (m *UserMutation) LeadActivitiesIDs() (ids []int) {
	for id := range m.lead_activities {
		ids = append(ids, id)
	}
	return
}

// ResetLeadActivities resets all changes to the "lead_activities" edge.
func (m *UserMutation) ResetLeadActivities() {
	m.lead_activities = nil
	m.clearedlead_activities = false
	m.removedlead_activities = nil
}

// AddLeadNoteIDs adds the "lead_notes" edge to the LeadNote entity by ids.
func (m *UserMutation) AddLeadNoteIDs(ids ...int) {
	if m.lead_notes == nil {
		m.lead_notes = make(map[int]struct{})
	}
	for i := range ids {
		m.lead_notes[ids[i]] = struct{}{}
	}
}

// ClearLeadNotes clears the "lead_notes" edge to the LeadNote entity.
func (m *UserMutation) ClearLeadNotes() {
	m.clearedlead_notes = true
}

// LeadNotesCleared reports if the "lead_notes" edge to the LeadNote entity was cleared.
func (m *UserMutation) LeadNotesCleared() bool {
	return m.clearedlead_notes
}

// RemoveLeadNoteIDs removes the "lead_notes" edge to the LeadNote entity by IDs.
func (m *UserMutation) RemoveLeadNoteIDs(ids ...int) {
	if m.removedlead_notes == nil {
		m.removedlead_notes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lead_notes, ids[i])
		m.removedlead_notes[ids[i]] = struct{}{}
	}
}

// RemovedLeadNotes returns the removed IDs of the "lead_notes" edge to the LeadNote entity.
func (m *UserMutation) RemovedLeadNotesIDs() (ids []int) {
	for id := range m.removedlead_notes {
		ids = append(ids, id)
	}
	return
}

// LeadNotesIDs returns the "lead_notes" edge IDs in the mutation.
func (m *UserMutation) LeadNotesIDs() (ids []int) {
	for id := range m.lead_notes {
		ids = append(ids, id)
	}
	return
}

// ResetLeadNotes resets all changes to the "lead_notes" edge.
func (m *UserMutation) ResetLeadNotes() {
	m.lead_notes = nil
	m.clearedlead_notes = false
	m.removedlead_notes = nil
}

// AddAssignedTaskIDs adds the "assigned_tasks" edge to the Task entity by ids.
func (m *UserMutation) AddAssignedTaskIDs(ids ...int) {
	if m.assigned_tasks == nil {
		m.assigned_tasks = make(map[int]struct{})
	}
	for i := range ids {
		m.assigned_tasks[ids[i]] = struct{}{}
	}
}

// ClearAssignedTasks clears the "assigned_tasks" edge to the Task entity.
func (m *UserMutation) ClearAssignedTasks() {
	m.clearedassigned_tasks = true
}

// AssignedTasksCleared reports if the "assigned_tasks" edge to the Task entity was cleared.
func (m *UserMutation) AssignedTasksCleared() bool {
	return m.clearedassigned_tasks
}

// RemoveAssignedTaskIDs removes the "assigned_tasks" edge to the Task entity by IDs.
func (m *UserMutation) RemoveAssignedTaskIDs(ids ...int) {
	if m.removedassigned_tasks == nil {
		m.removedassigned_tasks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assigned_tasks, ids[i])
		m.removedassigned_tasks[ids[i]] = struct{}{}
	}
}

// RemovedAssignedTasks returns the removed IDs of the "assigned_tasks" edge to the Task entity.
func (m *UserMutation) RemovedAssignedTasksIDs() (ids []int) {
	for id := range m.removedassigned_tasks {
		ids = append(ids, id)
	}
	return
}

// AssignedTasksIDs returns the "assigned_tasks" edge IDs in the mutation.
func (m *UserMutation) AssignedTasksIDs() (ids []int) {
	for id := range m.assigned_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetAssignedTasks resets all changes to the "assigned_tasks" edge.
func (m *UserMutation) ResetAssignedTasks() {
	m.assigned_tasks = nil
	m.clearedassigned_tasks = false
	m.removedassigned_tasks = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *UserMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *UserMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *UserMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *UserMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *UserMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *UserMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *UserMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *UserMutation) AddSubmissionIDs(ids ...int) {
	if m.submissions == nil {
		m.submissions = make(map[int]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *UserMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *UserMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *UserMutation) RemoveSubmissionIDs(ids ...int) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *UserMutation) RemovedSubmissionsIDs() (ids []int) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *UserMutation) SubmissionsIDs() (ids []int) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *UserMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// AddUploadedFileIDs adds the "uploaded_files" edge to the File entity by ids.
func (m *UserMutation) AddUploadedFileIDs(ids ...int) {
	if m.uploaded_files == nil {
		m.uploaded_files = make(map[int]struct{})
	}
	for i := range ids {
		m.uploaded_files[ids[i]] = struct{}{}
	}
}

// ClearUploadedFiles clears the "uploaded_files" edge to the File entity.
func (m *UserMutation) ClearUploadedFiles() {
	m.cleareduploaded_files = true
}

// UploadedFilesCleared reports if the "uploaded_files" edge to the File entity was cleared.
func (m *UserMutation) UploadedFilesCleared() bool {
	return m.cleareduploaded_files
}

// RemoveUploadedFileIDs removes the "uploaded_files" edge to the File entity by IDs.
func (m *UserMutation) RemoveUploadedFileIDs(ids ...int) {
	if m.removeduploaded_files == nil {
		m.removeduploaded_files = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.uploaded_files, ids[i])
		m.removeduploaded_files[ids[i]] = struct{}{}
	}
}

// RemovedUploadedFiles returns the removed IDs of the "uploaded_files" edge to the File entity.
func (m *UserMutation) RemovedUploadedFilesIDs() (ids []int) {
	for id := range m.removeduploaded_files {
		ids = append(ids, id)
	}
	return
}

// UploadedFilesIDs returns the "uploaded_files" edge IDs in the mutation.
func (m *UserMutation) UploadedFilesIDs() (ids []int) {
	for id := range m.uploaded_files {
		ids = append(ids, id)
	}
	return
}

// ResetUploadedFiles resets all changes to the "uploaded_files" edge.
func (m *UserMutation) ResetUploadedFiles() {
	m.uploaded_files = nil
	m.cleareduploaded_files = false
	m.removeduploaded_files = nil
}

// AddFeedbackGivenIDs adds the "feedback_given" edge to the Feedback entity by ids.
func (m *UserMutation) AddFeedbackGivenIDs(ids ...int) {
	if m.feedback_given == nil {
		m.feedback_given = make(map[int]struct{})
	}
	for i := range ids {
		m.feedback_given[ids[i]] = struct{}{}
	}
}

// ClearFeedbackGiven clears the "feedback_given" edge to the Feedback entity.
func (m *UserMutation) ClearFeedbackGiven() {
	m.clearedfeedback_given = true
}

// FeedbackGivenCleared reports if the "feedback_given" edge to the Feedback entity was cleared.
func (m *UserMutation) FeedbackGivenCleared() bool {
	return m.clearedfeedback_given
}

// RemoveFeedbackGivenIDs removes the "feedback_given" edge to the Feedback entity by IDs.
func (m *UserMutation) RemoveFeedbackGivenIDs(ids ...int) {
	if m.removedfeedback_given == nil {
		m.removedfeedback_given = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.feedback_given, ids[i])
		m.removedfeedback_given[ids[i]] = struct{}{}
	}
}

// RemovedFeedbackGiven returns the removed IDs of the "feedback_given" edge to the Feedback entity.
func (m *UserMutation) RemovedFeedbackGivenIDs() (ids []int) {
	for id := range m.removedfeedback_given {
		ids = append(ids, id)
	}
	return
}

// FeedbackGivenIDs returns the "feedback_given" edge IDs in the mutation.
func (m *UserMutation) FeedbackGivenIDs() (ids []int) {
	for id := range m.feedback_given {
		ids = append(ids, id)
	}
	return
}

// ResetFeedbackGiven resets all changes to the "feedback_given" edge.
func (m *UserMutation) ResetFeedbackGiven() {
	m.feedback_given = nil
	m.clearedfeedback_given = false
	m.removedfeedback_given = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.full_name != nil {
		fields = append(fields, user.FieldFullName)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.magic_link_token != nil {
		fields = append(fields, user.FieldMagicLinkToken)
	}
	if m.magic_link_expires_at != nil {
		fields = append(fields, user.FieldMagicLinkExpiresAt)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFullName:
		return m.FullName()
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldRole:
		return m.Role()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldMagicLinkToken:
		return m.MagicLinkToken()
	case user.FieldMagicLinkExpiresAt:
		return m.MagicLinkExpiresAt()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldFullName:
		return m.OldFullName(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldMagicLinkToken:
		return m.OldMagicLinkToken(ctx)
	case user.FieldMagicLinkExpiresAt:
		return m.OldMagicLinkExpiresAt(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldMagicLinkToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMagicLinkToken(v)
		return nil
	case user.FieldMagicLinkExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMagicLinkExpiresAt(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldMagicLinkToken) {
		fields = append(fields, user.FieldMagicLinkToken)
	}
	if m.FieldCleared(user.FieldMagicLinkExpiresAt) {
		fields = append(fields, user.FieldMagicLinkExpiresAt)
	}
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldMagicLinkToken:
		m.ClearMagicLinkToken()
		return nil
	case user.FieldMagicLinkExpiresAt:
		m.ClearMagicLinkExpiresAt()
		return nil
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldFullName:
		m.ResetFullName()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldMagicLinkToken:
		m.ResetMagicLinkToken()
		return nil
	case user.FieldMagicLinkExpiresAt:
		m.ResetMagicLinkExpiresAt()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 10)
	if m.client_profile != nil {
		edges = append(edges, user.EdgeClientProfile)
	}
	if m.owned_clients != nil {
		edges = append(edges, user.EdgeOwnedClients)
	}
	if m.lead_assignments != nil {
		edges = append(edges, user.EdgeLeadAssignments)
	}
	if m.lead_activities != nil {
		edges = append(edges, user.EdgeLeadActivities)
	}
	if m.lead_notes != nil {
		edges = append(edges, user.EdgeLeadNotes)
	}
	if m.assigned_tasks != nil {
		edges = append(edges, user.EdgeAssignedTasks)
	}
	if m.messages != nil {
		edges = append(edges, user.EdgeMessages)
	}
	if m.submissions != nil {
		edges = append(edges, user.EdgeSubmissions)
	}
	if m.uploaded_files != nil {
		edges = append(edges, user.EdgeUploadedFiles)
	}
	if m.feedback_given != nil {
		edges = append(edges, user.EdgeFeedbackGiven)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeClientProfile:
		if id := m.client_profile; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeOwnedClients:
		ids := make([]ent.Value, 0, len(m.owned_clients))
		for id := range m.owned_clients {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeadAssignments:
		ids := make([]ent.Value, 0, len(m.lead_assignments))
		for id := range m.lead_assignments {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeadActivities:
		ids := make([]ent.Value, 0, len(m.lead_activities))
		for id := range m.lead_activities {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeadNotes:
		ids := make([]ent.Value, 0, len(m.lead_notes))
		for id := range m.lead_notes {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAssignedTasks:
		ids := make([]ent.Value, 0, len(m.assigned_tasks))
		for id := range m.assigned_tasks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeUploadedFiles:
		ids := make([]ent.Value, 0, len(m.uploaded_files))
		for id := range m.uploaded_files {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeFeedbackGiven:
		ids := make([]ent.Value, 0, len(m.feedback_given))
		for id := range m.feedback_given {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 10)
	if m.removedowned_clients != nil {
		edges = append(edges, user.EdgeOwnedClients)
	}
	if m.removedlead_assignments != nil {
		edges = append(edges, user.EdgeLeadAssignments)
	}
	if m.removedlead_activities != nil {
		edges = append(edges, user.EdgeLeadActivities)
	}
	if m.removedlead_notes != nil {
		edges = append(edges, user.EdgeLeadNotes)
	}
	if m.removedassigned_tasks != nil {
		edges = append(edges, user.EdgeAssignedTasks)
	}
	if m.removedmessages != nil {
		edges = append(edges, user.EdgeMessages)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, user.EdgeSubmissions)
	}
	if m.removeduploaded_files != nil {
		edges = append(edges, user.EdgeUploadedFiles)
	}
	if m.removedfeedback_given != nil {
		edges = append(edges, user.EdgeFeedbackGiven)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeOwnedClients:
		ids := make([]ent.Value, 0, len(m.removedowned_clients))
		for id := range m.removedowned_clients {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeadAssignments:
		ids := make([]ent.Value, 0, len(m.removedlead_assignments))
		for id := range m.removedlead_assignments {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeadActivities:
		ids := make([]ent.Value, 0, len(m.removedlead_activities))
		for id := range m.removedlead_activities {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeadNotes:
		ids := make([]ent.Value, 0, len(m.removedlead_notes))
		for id := range m.removedlead_notes {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAssignedTasks:
		ids := make([]ent.Value, 0, len(m.removedassigned_tasks))
		for id := range m.removedassigned_tasks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeUploadedFiles:
		ids := make([]ent.Value, 0, len(m.removeduploaded_files))
		for id := range m.removeduploaded_files {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeFeedbackGiven:
		ids := make([]ent.Value, 0, len(m.removedfeedback_given))
		for id := range m.removedfeedback_given {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 10)
	if m.clearedclient_profile {
		edges = append(edges, user.EdgeClientProfile)
	}
	if m.clearedowned_clients {
		edges = append(edges, user.EdgeOwnedClients)
	}
	if m.clearedlead_assignments {
		edges = append(edges, user.EdgeLeadAssignments)
	}
	if m.clearedlead_activities {
		edges = append(edges, user.EdgeLeadActivities)
	}
	if m.clearedlead_notes {
		edges = append(edges, user.EdgeLeadNotes)
	}
	if m.clearedassigned_tasks {
		edges = append(edges, user.EdgeAssignedTasks)
	}
	if m.clearedmessages {
		edges = append(edges, user.EdgeMessages)
	}
	if m.clearedsubmissions {
		edges = append(edges, user.EdgeSubmissions)
	}
	if m.cleareduploaded_files {
		edges = append(edges, user.EdgeUploadedFiles)
	}
	if m.clearedfeedback_given {
		edges = append(edges, user.EdgeFeedbackGiven)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeClientProfile:
		return m.clearedclient_profile
	case user.EdgeOwnedClients:
		return m.clearedowned_clients
	case user.EdgeLeadAssignments:
		return m.clearedlead_assignments
	case user.EdgeLeadActivities:
		return m.clearedlead_activities
	case user.EdgeLeadNotes:
		return m.clearedlead_notes
	case user.EdgeAssignedTasks:
		return m.clearedassigned_tasks
	case user.EdgeMessages:
		return m.clearedmessages
	case user.EdgeSubmissions:
		return m.clearedsubmissions
	case user.EdgeUploadedFiles:
		return m.cleareduploaded_files
	case user.EdgeFeedbackGiven:
		return m.clearedfeedback_given
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeClientProfile:
		m.ClearClientProfile()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeClientProfile:
		m.ResetClientProfile()
		return nil
	case user.EdgeOwnedClients:
		m.ResetOwnedClients()
		return nil
	case user.EdgeLeadAssignments:
		m.ResetLeadAssignments()
		return nil
	case user.EdgeLeadActivities:
		m.ResetLeadActivities()
		return nil
	case user.EdgeLeadNotes:
		m.ResetLeadNotes()
		return nil
	case user.EdgeAssignedTasks:
		m.ResetAssignedTasks()
		return nil
	case user.EdgeMessages:
		m.ResetMessages()
		return nil
	case user.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	case user.EdgeUploadedFiles:
		m.ResetUploadedFiles()
		return nil
	case user.EdgeFeedbackGiven:
		m.ResetFeedbackGiven()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
