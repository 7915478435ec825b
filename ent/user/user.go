// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldMagicLinkToken holds the string denoting the magic_link_token field in the database.
	FieldMagicLinkToken = "magic_link_token"
	// FieldMagicLinkExpiresAt holds the string denoting the magic_link_expires_at field in the database.
	FieldMagicLinkExpiresAt = "magic_link_expires_at"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeClientProfile holds the string denoting the client_profile edge name in mutations.
	EdgeClientProfile = "client_profile"
	// EdgeOwnedClients holds the string denoting the owned_clients edge name in mutations.
	EdgeOwnedClients = "owned_clients"
	// EdgeLeadAssignments holds the string denoting the lead_assignments edge name in mutations.
	EdgeLeadAssignments = "lead_assignments"
	// EdgeLeadActivities holds the string denoting the lead_activities edge name in mutations.
	EdgeLeadActivities = "lead_activities"
	// EdgeLeadNotes holds the string denoting the lead_notes edge name in mutations.
	EdgeLeadNotes = "lead_notes"
	// EdgeAssignedTasks holds the string denoting the assigned_tasks edge name in mutations.
	EdgeAssignedTasks = "assigned_tasks"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeSubmissions holds the string denoting the submissions edge name in mutations.
	EdgeSubmissions = "submissions"
	// EdgeUploadedFiles holds the string denoting the uploaded_files edge name in mutations.
	EdgeUploadedFiles = "uploaded_files"
	// EdgeFeedbackGiven holds the string denoting the feedback_given edge name in mutations.
	EdgeFeedbackGiven = "feedback_given"
	// Table holds the table name of the user in the database.
	Table = "users"
	// ClientProfileTable is the table that holds the client_profile relation/edge.
	ClientProfileTable = "companies"
	// ClientProfileInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	ClientProfileInverseTable = "companies"
	// ClientProfileColumn is the table column denoting the client_profile relation/edge.
	ClientProfileColumn = "user_id"
	// OwnedClientsTable is the table that holds the owned_clients relation/edge.
	OwnedClientsTable = "companies"
	// OwnedClientsInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	OwnedClientsInverseTable = "companies"
	// OwnedClientsColumn is the table column denoting the owned_clients relation/edge.
	OwnedClientsColumn = "sales_person_id"
	// LeadAssignmentsTable is the table that holds the lead_assignments relation/edge.
	LeadAssignmentsTable = "lead_assignments"
	// LeadAssignmentsInverseTable is the table name for the LeadAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "leadassignment" package.
	LeadAssignmentsInverseTable = "lead_assignments"
	// LeadAssignmentsColumn is the table column denoting the lead_assignments relation/edge.
	LeadAssignmentsColumn = "sales_person_id"
	// LeadActivitiesTable is the table that holds the lead_activities relation/edge.
	LeadActivitiesTable = "lead_activities"
	// LeadActivitiesInverseTable is the table name for the LeadActivity entity.
	// It exists in this package in order to avoid circular dependency with the "leadactivity" package.
	LeadActivitiesInverseTable = "lead_activities"
	// LeadActivitiesColumn is the table column denoting the lead_activities relation/edge.
	LeadActivitiesColumn = "user_id"
	// LeadNotesTable is the table that holds the lead_notes relation/edge.
	LeadNotesTable = "lead_notes"
	// LeadNotesInverseTable is the table name for the LeadNote entity.
	// It exists in this package in order to avoid circular dependency with the "leadnote" package.
	LeadNotesInverseTable = "lead_notes"
	// LeadNotesColumn is the table column denoting the lead_notes relation/edge.
	LeadNotesColumn = "user_id"
	// AssignedTasksTable is the table that holds the assigned_tasks relation/edge.
	AssignedTasksTable = "tasks"
	// AssignedTasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	AssignedTasksInverseTable = "tasks"
	// AssignedTasksColumn is the table column denoting the assigned_tasks relation/edge.
	AssignedTasksColumn = "assigned_to"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "sender_id"
	// SubmissionsTable is the table that holds the submissions relation/edge.
	SubmissionsTable = "submissions"
	// SubmissionsInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionsInverseTable = "submissions"
	// SubmissionsColumn is the table column denoting the submissions relation/edge.
	SubmissionsColumn = "submitted_by"
	// UploadedFilesTable is the table that holds the uploaded_files relation/edge.
	UploadedFilesTable = "files"
	// UploadedFilesInverseTable is the table name for the File entity.
	// It exists in this package in order to avoid circular dependency with the "file" package.
	UploadedFilesInverseTable = "files"
	// UploadedFilesColumn is the table column denoting the uploaded_files relation/edge.
	UploadedFilesColumn = "uploaded_by"
	// FeedbackGivenTable is the table that holds the feedback_given relation/edge.
	FeedbackGivenTable = "feedbacks"
	// FeedbackGivenInverseTable is the table name for the Feedback entity.
	// It exists in this package in order to avoid circular dependency with the "feedback" package.
	FeedbackGivenInverseTable = "feedbacks"
	// FeedbackGivenColumn is the table column denoting the feedback_given relation/edge.
	FeedbackGivenColumn = "author_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldFullName,
	FieldUsername,
	FieldEmail,
	FieldPhone,
	FieldRole,
	FieldPasswordHash,
	FieldMagicLinkToken,
	FieldMagicLinkExpiresAt,
	FieldIsActive,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// RoleEmployee is the default value of the Role enum.
const DefaultRole = RoleEmployee

// Role values.
const (
	RoleAdmin      Role = "admin"
	RoleSales      Role = "sales"
	RoleEmployee   Role = "employee"
	RoleClient     Role = "client"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleAdmin, RoleSales, RoleEmployee, RoleClient, RoleSuperadmin:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByMagicLinkToken orders the results by the magic_link_token field.
func ByMagicLinkToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMagicLinkToken, opts...).ToFunc()
}

// ByMagicLinkExpiresAt orders the results by the magic_link_expires_at field.
func ByMagicLinkExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMagicLinkExpiresAt, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByClientProfileField orders the results by client_profile field.
func ByClientProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClientProfileStep(), sql.OrderByField(field, opts...))
	}
}

// ByOwnedClientsCount orders the results by owned_clients count.
func ByOwnedClientsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOwnedClientsStep(), opts...)
	}
}

// ByOwnedClients orders the results by owned_clients terms.
func ByOwnedClients(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnedClientsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLeadAssignmentsCount orders the results by lead_assignments count.
func ByLeadAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeadAssignmentsStep(), opts...)
	}
}

// ByLeadAssignments orders the results by lead_assignments terms.
func ByLeadAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLeadActivitiesCount orders the results by lead_activities count.
func ByLeadActivitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeadActivitiesStep(), opts...)
	}
}

// ByLeadActivities orders the results by lead_activities terms.
func ByLeadActivities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadActivitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLeadNotesCount orders the results by lead_notes count.
func ByLeadNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeadNotesStep(), opts...)
	}
}

// ByLeadNotes orders the results by lead_notes terms.
func ByLeadNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssignedTasksCount orders the results by assigned_tasks count.
func ByAssignedTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignedTasksStep(), opts...)
	}
}

// ByAssignedTasks orders the results by assigned_tasks terms.
func ByAssignedTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignedTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySubmissionsCount orders the results by submissions count.
func BySubmissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubmissionsStep(), opts...)
	}
}

// BySubmissions orders the results by submissions terms.
func BySubmissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByUploadedFilesCount orders the results by uploaded_files count.
func ByUploadedFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUploadedFilesStep(), opts...)
	}
}

// ByUploadedFiles orders the results by uploaded_files terms.
func ByUploadedFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUploadedFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFeedbackGivenCount orders the results by feedback_given count.
func ByFeedbackGivenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeedbackGivenStep(), opts...)
	}
}

// ByFeedbackGiven orders the results by feedback_given terms.
func ByFeedbackGiven(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeedbackGivenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClientProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClientProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ClientProfileTable, ClientProfileColumn),
	)
}
func newOwnedClientsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnedClientsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OwnedClientsTable, OwnedClientsColumn),
	)
}
func newLeadAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadAssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeadAssignmentsTable, LeadAssignmentsColumn),
	)
}
func newLeadActivitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadActivitiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeadActivitiesTable, LeadActivitiesColumn),
	)
}
func newLeadNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadNotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeadNotesTable, LeadNotesColumn),
	)
}
func newAssignedTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignedTasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignedTasksTable, AssignedTasksColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newSubmissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
	)
}
func newUploadedFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UploadedFilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UploadedFilesTable, UploadedFilesColumn),
	)
}
func newFeedbackGivenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeedbackGivenInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeedbackGivenTable, FeedbackGivenColumn),
	)
}
