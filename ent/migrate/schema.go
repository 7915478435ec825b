// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_name", Type: field.TypeString},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"lead", "prospect", "active"}, Default: "prospect"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt, Unique: true},
		{Name: "sales_person_id", Type: field.TypeInt},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "companies_users_client_profile",
				Columns:    []*schema.Column{CompaniesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "companies_users_owned_clients",
				Columns:    []*schema.Column{CompaniesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "company_sales_person_id_status",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[7], CompaniesColumns[3]},
			},
			{
				Name:    "company_status",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[3]},
			},
			{
				Name:    "company_created_at",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[4]},
			},
		},
	}
	// CountersColumns holds the columns for the "counters" table.
	CountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "scope", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeInt, Default: 0},
	}
	// CountersTable holds the schema information for the "counters" table.
	CountersTable = &schema.Table{
		Name:       "counters",
		Columns:    CountersColumns,
		PrimaryKey: []*schema.Column{CountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "counter_scope",
				Unique:  true,
				Columns: []*schema.Column{CountersColumns[1]},
			},
		},
	}
	// FeedbacksColumns holds the columns for the "feedbacks" table.
	FeedbacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 5000},
		{Name: "sentiment", Type: field.TypeEnum, Enums: []string{"positive", "neutral", "negative"}},
		{Name: "is_public", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeInt},
		{Name: "submission_id", Type: field.TypeInt, Nullable: true},
		{Name: "author_id", Type: field.TypeInt},
	}
	// FeedbacksTable holds the schema information for the "feedbacks" table.
	FeedbacksTable = &schema.Table{
		Name:       "feedbacks",
		Columns:    FeedbacksColumns,
		PrimaryKey: []*schema.Column{FeedbacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedbacks_companies_feedback",
				Columns:    []*schema.Column{FeedbacksColumns[6]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "feedbacks_submissions_feedback",
				Columns:    []*schema.Column{FeedbacksColumns[7]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "feedbacks_users_feedback_given",
				Columns:    []*schema.Column{FeedbacksColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feedback_client_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbacksColumns[6], FeedbacksColumns[5]},
			},
			{
				Name:    "feedback_is_public_sentiment",
				Unique:  false,
				Columns: []*schema.Column{FeedbacksColumns[4], FeedbacksColumns[3]},
			},
		},
	}
	// FilesColumns holds the columns for the "files" table.
	FilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString, Nullable: true},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "uploaded_by", Type: field.TypeInt},
	}
	// FilesTable holds the schema information for the "files" table.
	FilesTable = &schema.Table{
		Name:       "files",
		Columns:    FilesColumns,
		PrimaryKey: []*schema.Column{FilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "files_users_uploaded_files",
				Columns:    []*schema.Column{FilesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "file_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[5], FilesColumns[6]},
			},
			{
				Name:    "file_storage_key",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[4]},
			},
			{
				Name:    "file_uploaded_by_created_at",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[9], FilesColumns[7]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true, Size: 2},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "interested", "pitched", "follow_up", "converted", "not_interested", "lost"}, Default: "new"},
		{Name: "pitched_services", Type: field.TypeJSON, Nullable: true},
		{Name: "import_batch_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9]},
			},
			{
				Name:    "lead_email",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[3]},
			},
			{
				Name:    "lead_phone",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[4]},
			},
			{
				Name:    "lead_import_batch_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[11]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[13]},
			},
		},
	}
	// LeadActivitiesColumns holds the columns for the "lead_activities" table.
	LeadActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"called", "whatsapp", "emailed", "status_change", "note_added", "assigned", "converted"}},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2000},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// LeadActivitiesTable holds the schema information for the "lead_activities" table.
	LeadActivitiesTable = &schema.Table{
		Name:       "lead_activities",
		Columns:    LeadActivitiesColumns,
		PrimaryKey: []*schema.Column{LeadActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_activities_leads_activities",
				Columns:    []*schema.Column{LeadActivitiesColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "lead_activities_users_lead_activities",
				Columns:    []*schema.Column{LeadActivitiesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "leadactivity_lead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadActivitiesColumns[5], LeadActivitiesColumns[4]},
			},
			{
				Name:    "leadactivity_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadActivitiesColumns[6], LeadActivitiesColumns[4]},
			},
			{
				Name:    "leadactivity_type",
				Unique:  false,
				Columns: []*schema.Column{LeadActivitiesColumns[1]},
			},
		},
	}
	// LeadAssignmentsColumns holds the columns for the "lead_assignments" table.
	LeadAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assigned_by", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "interested", "pitched", "follow_up", "converted", "not_interested", "lost"}, Default: "new"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2000},
		{Name: "assigned_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "sales_person_id", Type: field.TypeInt},
	}
	// LeadAssignmentsTable holds the schema information for the "lead_assignments" table.
	LeadAssignmentsTable = &schema.Table{
		Name:       "lead_assignments",
		Columns:    LeadAssignmentsColumns,
		PrimaryKey: []*schema.Column{LeadAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_assignments_leads_assignments",
				Columns:    []*schema.Column{LeadAssignmentsColumns[6]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "lead_assignments_users_lead_assignments",
				Columns:    []*schema.Column{LeadAssignmentsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "leadassignment_lead_id_sales_person_id",
				Unique:  false,
				Columns: []*schema.Column{LeadAssignmentsColumns[6], LeadAssignmentsColumns[7]},
			},
			{
				Name:    "leadassignment_sales_person_id_status",
				Unique:  false,
				Columns: []*schema.Column{LeadAssignmentsColumns[7], LeadAssignmentsColumns[2]},
			},
			{
				Name:    "leadassignment_assigned_at",
				Unique:  false,
				Columns: []*schema.Column{LeadAssignmentsColumns[4]},
			},
		},
	}
	// LeadNotesColumns holds the columns for the "lead_notes" table.
	LeadNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content", Type: field.TypeString, Size: 10000},
		{Name: "is_pinned", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// LeadNotesTable holds the schema information for the "lead_notes" table.
	LeadNotesTable = &schema.Table{
		Name:       "lead_notes",
		Columns:    LeadNotesColumns,
		PrimaryKey: []*schema.Column{LeadNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_notes_leads_notes",
				Columns:    []*schema.Column{LeadNotesColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "lead_notes_users_lead_notes",
				Columns:    []*schema.Column{LeadNotesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "leadnote_lead_id_is_pinned_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadNotesColumns[5], LeadNotesColumns[2], LeadNotesColumns[3]},
			},
			{
				Name:    "leadnote_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadNotesColumns[6], LeadNotesColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content", Type: field.TypeString, Size: 10000},
		{Name: "is_edited", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "query_id", Type: field.TypeInt},
		{Name: "sender_id", Type: field.TypeInt},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_threads_messages",
				Columns:    []*schema.Column{MessagesColumns[5]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "messages_users_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_query_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5], MessagesColumns[3]},
			},
			{
				Name:    "message_sender_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6], MessagesColumns[3]},
			},
		},
	}
	// RequirementsColumns holds the columns for the "requirements" table.
	RequirementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "requirement_number", Type: field.TypeString, Unique: true},
		{Name: "requirement_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "on_hold", "completed", "cancelled"}, Default: "active"},
		{Name: "assigned_employees", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeInt},
	}
	// RequirementsTable holds the schema information for the "requirements" table.
	RequirementsTable = &schema.Table{
		Name:       "requirements",
		Columns:    RequirementsColumns,
		PrimaryKey: []*schema.Column{RequirementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "requirements_companies_requirements",
				Columns:    []*schema.Column{RequirementsColumns[7]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "requirement_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{RequirementsColumns[7], RequirementsColumns[3]},
			},
			{
				Name:    "requirement_created_at",
				Unique:  false,
				Columns: []*schema.Column{RequirementsColumns[5]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "submission_number", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "deliverables", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "under_review", "approved", "rejected", "changes_requested"}, Default: "pending"},
		{Name: "requested_changes", Type: field.TypeJSON, Nullable: true},
		{Name: "review_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reviewed_by", Type: field.TypeInt, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "resubmission_of", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeInt},
		{Name: "requirement_id", Type: field.TypeInt},
		{Name: "task_id", Type: field.TypeInt},
		{Name: "submitted_by", Type: field.TypeInt},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_companies_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[13]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "submissions_requirements_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[14]},
				RefColumns: []*schema.Column{RequirementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "submissions_tasks_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[15]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "submissions_users_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_task_id_status",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[15], SubmissionsColumns[5]},
			},
			{
				Name:    "submission_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[13], SubmissionsColumns[5]},
			},
			{
				Name:    "submission_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[11]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_number", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "requested_by", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"todo", "in_progress", "review", "blocked", "done", "cancelled"}, Default: "todo"},
		{Name: "status_manual", Type: field.TypeBool, Default: false},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "subtasks", Type: field.TypeJSON, Nullable: true},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "completed_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "requirement_id", Type: field.TypeInt},
		{Name: "assigned_to", Type: field.TypeInt, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_requirements_tasks",
				Columns:    []*schema.Column{TasksColumns[13]},
				RefColumns: []*schema.Column{RequirementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tasks_users_assigned_tasks",
				Columns:    []*schema.Column{TasksColumns[14]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_requirement_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[13], TasksColumns[5]},
			},
			{
				Name:    "task_assigned_to_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[14], TasksColumns[5]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[11]},
			},
		},
	}
	// ThreadsColumns holds the columns for the "threads" table.
	ThreadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "query_number", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "resolved"}, Default: "active"},
		{Name: "participants", Type: field.TypeJSON, Nullable: true},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_message_preview", Type: field.TypeString, Nullable: true, Size: 160},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeInt},
	}
	// ThreadsTable holds the schema information for the "threads" table.
	ThreadsTable = &schema.Table{
		Name:       "threads",
		Columns:    ThreadsColumns,
		PrimaryKey: []*schema.Column{ThreadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "threads_tasks_queries",
				Columns:    []*schema.Column{ThreadsColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "thread_task_id_status",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[10], ThreadsColumns[4]},
			},
			{
				Name:    "thread_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "username", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "sales", "employee", "client", "superadmin"}, Default: "employee"},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "magic_link_token", Type: field.TypeString, Nullable: true},
		{Name: "magic_link_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_username",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
			{
				Name:    "user_magic_link_token",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompaniesTable,
		CountersTable,
		FeedbacksTable,
		FilesTable,
		LeadsTable,
		LeadActivitiesTable,
		LeadAssignmentsTable,
		LeadNotesTable,
		MessagesTable,
		RequirementsTable,
		SubmissionsTable,
		TasksTable,
		ThreadsTable,
		UsersTable,
	}
)

func init() {
	CompaniesTable.ForeignKeys[0].RefTable = UsersTable
	CompaniesTable.ForeignKeys[1].RefTable = UsersTable
	FeedbacksTable.ForeignKeys[0].RefTable = CompaniesTable
	FeedbacksTable.ForeignKeys[1].RefTable = SubmissionsTable
	FeedbacksTable.ForeignKeys[2].RefTable = UsersTable
	FilesTable.ForeignKeys[0].RefTable = UsersTable
	LeadActivitiesTable.ForeignKeys[0].RefTable = LeadsTable
	LeadActivitiesTable.ForeignKeys[1].RefTable = UsersTable
	LeadAssignmentsTable.ForeignKeys[0].RefTable = LeadsTable
	LeadAssignmentsTable.ForeignKeys[1].RefTable = UsersTable
	LeadNotesTable.ForeignKeys[0].RefTable = LeadsTable
	LeadNotesTable.ForeignKeys[1].RefTable = UsersTable
	MessagesTable.ForeignKeys[0].RefTable = ThreadsTable
	MessagesTable.ForeignKeys[1].RefTable = UsersTable
	RequirementsTable.ForeignKeys[0].RefTable = CompaniesTable
	SubmissionsTable.ForeignKeys[0].RefTable = CompaniesTable
	SubmissionsTable.ForeignKeys[1].RefTable = RequirementsTable
	SubmissionsTable.ForeignKeys[2].RefTable = TasksTable
	SubmissionsTable.ForeignKeys[3].RefTable = UsersTable
	TasksTable.ForeignKeys[0].RefTable = RequirementsTable
	TasksTable.ForeignKeys[1].RefTable = UsersTable
	ThreadsTable.ForeignKeys[0].RefTable = TasksTable
}
