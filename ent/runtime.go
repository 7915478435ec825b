// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/counter"
	"github.com/agencydesk/agencydesk/ent/feedback"
	"github.com/agencydesk/agencydesk/ent/file"
	"github.com/agencydesk/agencydesk/ent/lead"
	"github.com/agencydesk/agencydesk/ent/leadactivity"
	"github.com/agencydesk/agencydesk/ent/leadassignment"
	"github.com/agencydesk/agencydesk/ent/leadnote"
	"github.com/agencydesk/agencydesk/ent/message"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/thread"
	"github.com/agencydesk/agencydesk/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescUserID is the schema descriptor for user_id field.
	companyDescUserID := companyFields[0].Descriptor()
	// company.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	company.UserIDValidator = companyDescUserID.Validators[0].(func(int) error)
	// companyDescCompanyName is the schema descriptor for company_name field.
	companyDescCompanyName := companyFields[1].Descriptor()
	// company.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	company.CompanyNameValidator = companyDescCompanyName.Validators[0].(func(string) error)
	// companyDescSalesPersonID is the schema descriptor for sales_person_id field.
	companyDescSalesPersonID := companyFields[4].Descriptor()
	// company.SalesPersonIDValidator is a validator for the "sales_person_id" field. It is called by the builders before save.
	company.SalesPersonIDValidator = companyDescSalesPersonID.Validators[0].(func(int) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[5].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[6].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	counterFields := schema.Counter{}.Fields()
	_ = counterFields
	// counterDescScope is the schema descriptor for scope field.
	counterDescScope := counterFields[0].Descriptor()
	// counter.ScopeValidator is a validator for the "scope" field. It is called by the builders before save.
	counter.ScopeValidator = counterDescScope.Validators[0].(func(string) error)
	// counterDescValue is the schema descriptor for value field.
	counterDescValue := counterFields[1].Descriptor()
	// counter.DefaultValue holds the default value on creation for the value field.
	counter.DefaultValue = counterDescValue.Default.(int)
	// counter.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	counter.ValueValidator = counterDescValue.Validators[0].(func(int) error)
	feedbackFields := schema.Feedback{}.Fields()
	_ = feedbackFields
	// feedbackDescClientID is the schema descriptor for client_id field.
	feedbackDescClientID := feedbackFields[0].Descriptor()
	// feedback.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	feedback.ClientIDValidator = feedbackDescClientID.Validators[0].(func(int) error)
	// feedbackDescAuthorID is the schema descriptor for author_id field.
	feedbackDescAuthorID := feedbackFields[1].Descriptor()
	// feedback.AuthorIDValidator is a validator for the "author_id" field. It is called by the builders before save.
	feedback.AuthorIDValidator = feedbackDescAuthorID.Validators[0].(func(int) error)
	// feedbackDescRating is the schema descriptor for rating field.
	feedbackDescRating := feedbackFields[3].Descriptor()
	// feedback.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	feedback.RatingValidator = func() func(int) error {
		validators := feedbackDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// feedbackDescComment is the schema descriptor for comment field.
	feedbackDescComment := feedbackFields[4].Descriptor()
	// feedback.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	feedback.CommentValidator = feedbackDescComment.Validators[0].(func(string) error)
	// feedbackDescIsPublic is the schema descriptor for is_public field.
	feedbackDescIsPublic := feedbackFields[6].Descriptor()
	// feedback.DefaultIsPublic holds the default value on creation for the is_public field.
	feedback.DefaultIsPublic = feedbackDescIsPublic.Default.(bool)
	// feedbackDescCreatedAt is the schema descriptor for created_at field.
	feedbackDescCreatedAt := feedbackFields[7].Descriptor()
	// feedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedback.DefaultCreatedAt = feedbackDescCreatedAt.Default.(func() time.Time)
	fileFields := schema.File{}.Fields()
	_ = fileFields
	// fileDescFileName is the schema descriptor for file_name field.
	fileDescFileName := fileFields[0].Descriptor()
	// file.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	file.FileNameValidator = fileDescFileName.Validators[0].(func(string) error)
	// fileDescFileSize is the schema descriptor for file_size field.
	fileDescFileSize := fileFields[2].Descriptor()
	// file.DefaultFileSize holds the default value on creation for the file_size field.
	file.DefaultFileSize = fileDescFileSize.Default.(int64)
	// file.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	file.FileSizeValidator = fileDescFileSize.Validators[0].(func(int64) error)
	// fileDescStorageKey is the schema descriptor for storage_key field.
	fileDescStorageKey := fileFields[3].Descriptor()
	// file.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	file.StorageKeyValidator = fileDescStorageKey.Validators[0].(func(string) error)
	// fileDescUploadedBy is the schema descriptor for uploaded_by field.
	fileDescUploadedBy := fileFields[4].Descriptor()
	// file.UploadedByValidator is a validator for the "uploaded_by" field. It is called by the builders before save.
	file.UploadedByValidator = fileDescUploadedBy.Validators[0].(func(int) error)
	// fileDescEntityType is the schema descriptor for entity_type field.
	fileDescEntityType := fileFields[5].Descriptor()
	// file.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	file.EntityTypeValidator = fileDescEntityType.Validators[0].(func(string) error)
	// fileDescEntityID is the schema descriptor for entity_id field.
	fileDescEntityID := fileFields[6].Descriptor()
	// file.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	file.EntityIDValidator = fileDescEntityID.Validators[0].(func(int) error)
	// fileDescCreatedAt is the schema descriptor for created_at field.
	fileDescCreatedAt := fileFields[7].Descriptor()
	// file.DefaultCreatedAt holds the default value on creation for the created_at field.
	file.DefaultCreatedAt = fileDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[0].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescCountry is the schema descriptor for country field.
	leadDescCountry := leadFields[5].Descriptor()
	// lead.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	lead.CountryValidator = leadDescCountry.Validators[0].(func(string) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[12].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[13].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadactivityFields := schema.LeadActivity{}.Fields()
	_ = leadactivityFields
	// leadactivityDescLeadID is the schema descriptor for lead_id field.
	leadactivityDescLeadID := leadactivityFields[0].Descriptor()
	// leadactivity.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	leadactivity.LeadIDValidator = leadactivityDescLeadID.Validators[0].(func(int) error)
	// leadactivityDescUserID is the schema descriptor for user_id field.
	leadactivityDescUserID := leadactivityFields[1].Descriptor()
	// leadactivity.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	leadactivity.UserIDValidator = leadactivityDescUserID.Validators[0].(func(int) error)
	// leadactivityDescDetail is the schema descriptor for detail field.
	leadactivityDescDetail := leadactivityFields[3].Descriptor()
	// leadactivity.DetailValidator is a validator for the "detail" field. It is called by the builders before save.
	leadactivity.DetailValidator = leadactivityDescDetail.Validators[0].(func(string) error)
	// leadactivityDescCreatedAt is the schema descriptor for created_at field.
	leadactivityDescCreatedAt := leadactivityFields[5].Descriptor()
	// leadactivity.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadactivity.DefaultCreatedAt = leadactivityDescCreatedAt.Default.(func() time.Time)
	leadassignmentFields := schema.LeadAssignment{}.Fields()
	_ = leadassignmentFields
	// leadassignmentDescLeadID is the schema descriptor for lead_id field.
	leadassignmentDescLeadID := leadassignmentFields[0].Descriptor()
	// leadassignment.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	leadassignment.LeadIDValidator = leadassignmentDescLeadID.Validators[0].(func(int) error)
	// leadassignmentDescSalesPersonID is the schema descriptor for sales_person_id field.
	leadassignmentDescSalesPersonID := leadassignmentFields[1].Descriptor()
	// leadassignment.SalesPersonIDValidator is a validator for the "sales_person_id" field. It is called by the builders before save.
	leadassignment.SalesPersonIDValidator = leadassignmentDescSalesPersonID.Validators[0].(func(int) error)
	// leadassignmentDescAssignedBy is the schema descriptor for assigned_by field.
	leadassignmentDescAssignedBy := leadassignmentFields[2].Descriptor()
	// leadassignment.AssignedByValidator is a validator for the "assigned_by" field. It is called by the builders before save.
	leadassignment.AssignedByValidator = leadassignmentDescAssignedBy.Validators[0].(func(int) error)
	// leadassignmentDescNotes is the schema descriptor for notes field.
	leadassignmentDescNotes := leadassignmentFields[4].Descriptor()
	// leadassignment.NotesValidator is a validator for the "notes" field. It is called by the builders before save.
	leadassignment.NotesValidator = leadassignmentDescNotes.Validators[0].(func(string) error)
	// leadassignmentDescAssignedAt is the schema descriptor for assigned_at field.
	leadassignmentDescAssignedAt := leadassignmentFields[5].Descriptor()
	// leadassignment.DefaultAssignedAt holds the default value on creation for the assigned_at field.
	leadassignment.DefaultAssignedAt = leadassignmentDescAssignedAt.Default.(func() time.Time)
	// leadassignmentDescUpdatedAt is the schema descriptor for updated_at field.
	leadassignmentDescUpdatedAt := leadassignmentFields[6].Descriptor()
	// leadassignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	leadassignment.DefaultUpdatedAt = leadassignmentDescUpdatedAt.Default.(func() time.Time)
	// leadassignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	leadassignment.UpdateDefaultUpdatedAt = leadassignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadnoteFields := schema.LeadNote{}.Fields()
	_ = leadnoteFields
	// leadnoteDescLeadID is the schema descriptor for lead_id field.
	leadnoteDescLeadID := leadnoteFields[0].Descriptor()
	// leadnote.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	leadnote.LeadIDValidator = leadnoteDescLeadID.Validators[0].(func(int) error)
	// leadnoteDescUserID is the schema descriptor for user_id field.
	leadnoteDescUserID := leadnoteFields[1].Descriptor()
	// leadnote.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	leadnote.UserIDValidator = leadnoteDescUserID.Validators[0].(func(int) error)
	// leadnoteDescContent is the schema descriptor for content field.
	leadnoteDescContent := leadnoteFields[2].Descriptor()
	// leadnote.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	leadnote.ContentValidator = func() func(string) error {
		validators := leadnoteDescContent.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content string) error {
			for _, fn := range fns {
				if err := fn(content); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// leadnoteDescIsPinned is the schema descriptor for is_pinned field.
	leadnoteDescIsPinned := leadnoteFields[3].Descriptor()
	// leadnote.DefaultIsPinned holds the default value on creation for the is_pinned field.
	leadnote.DefaultIsPinned = leadnoteDescIsPinned.Default.(bool)
	// leadnoteDescCreatedAt is the schema descriptor for created_at field.
	leadnoteDescCreatedAt := leadnoteFields[4].Descriptor()
	// leadnote.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadnote.DefaultCreatedAt = leadnoteDescCreatedAt.Default.(func() time.Time)
	// leadnoteDescUpdatedAt is the schema descriptor for updated_at field.
	leadnoteDescUpdatedAt := leadnoteFields[5].Descriptor()
	// leadnote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	leadnote.DefaultUpdatedAt = leadnoteDescUpdatedAt.Default.(func() time.Time)
	// leadnote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	leadnote.UpdateDefaultUpdatedAt = leadnoteDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescQueryID is the schema descriptor for query_id field.
	messageDescQueryID := messageFields[0].Descriptor()
	// message.QueryIDValidator is a validator for the "query_id" field. It is called by the builders before save.
	message.QueryIDValidator = messageDescQueryID.Validators[0].(func(int) error)
	// messageDescSenderID is the schema descriptor for sender_id field.
	messageDescSenderID := messageFields[1].Descriptor()
	// message.SenderIDValidator is a validator for the "sender_id" field. It is called by the builders before save.
	message.SenderIDValidator = messageDescSenderID.Validators[0].(func(int) error)
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[2].Descriptor()
	// message.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	message.ContentValidator = func() func(string) error {
		validators := messageDescContent.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content string) error {
			for _, fn := range fns {
				if err := fn(content); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// messageDescIsEdited is the schema descriptor for is_edited field.
	messageDescIsEdited := messageFields[3].Descriptor()
	// message.DefaultIsEdited holds the default value on creation for the is_edited field.
	message.DefaultIsEdited = messageDescIsEdited.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[4].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescUpdatedAt is the schema descriptor for updated_at field.
	messageDescUpdatedAt := messageFields[5].Descriptor()
	// message.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	message.DefaultUpdatedAt = messageDescUpdatedAt.Default.(func() time.Time)
	// message.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	message.UpdateDefaultUpdatedAt = messageDescUpdatedAt.UpdateDefault.(func() time.Time)
	requirementFields := schema.Requirement{}.Fields()
	_ = requirementFields
	// requirementDescRequirementNumber is the schema descriptor for requirement_number field.
	requirementDescRequirementNumber := requirementFields[0].Descriptor()
	// requirement.RequirementNumberValidator is a validator for the "requirement_number" field. It is called by the builders before save.
	requirement.RequirementNumberValidator = requirementDescRequirementNumber.Validators[0].(func(string) error)
	// requirementDescRequirementName is the schema descriptor for requirement_name field.
	requirementDescRequirementName := requirementFields[1].Descriptor()
	// requirement.RequirementNameValidator is a validator for the "requirement_name" field. It is called by the builders before save.
	requirement.RequirementNameValidator = requirementDescRequirementName.Validators[0].(func(string) error)
	// requirementDescClientID is the schema descriptor for client_id field.
	requirementDescClientID := requirementFields[2].Descriptor()
	// requirement.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	requirement.ClientIDValidator = requirementDescClientID.Validators[0].(func(int) error)
	// requirementDescCreatedAt is the schema descriptor for created_at field.
	requirementDescCreatedAt := requirementFields[5].Descriptor()
	// requirement.DefaultCreatedAt holds the default value on creation for the created_at field.
	requirement.DefaultCreatedAt = requirementDescCreatedAt.Default.(func() time.Time)
	// requirementDescUpdatedAt is the schema descriptor for updated_at field.
	requirementDescUpdatedAt := requirementFields[6].Descriptor()
	// requirement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	requirement.DefaultUpdatedAt = requirementDescUpdatedAt.Default.(func() time.Time)
	// requirement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	requirement.UpdateDefaultUpdatedAt = requirementDescUpdatedAt.UpdateDefault.(func() time.Time)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescSubmissionNumber is the schema descriptor for submission_number field.
	submissionDescSubmissionNumber := submissionFields[0].Descriptor()
	// submission.SubmissionNumberValidator is a validator for the "submission_number" field. It is called by the builders before save.
	submission.SubmissionNumberValidator = submissionDescSubmissionNumber.Validators[0].(func(string) error)
	// submissionDescTitle is the schema descriptor for title field.
	submissionDescTitle := submissionFields[1].Descriptor()
	// submission.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	submission.TitleValidator = submissionDescTitle.Validators[0].(func(string) error)
	// submissionDescTaskID is the schema descriptor for task_id field.
	submissionDescTaskID := submissionFields[3].Descriptor()
	// submission.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	submission.TaskIDValidator = submissionDescTaskID.Validators[0].(func(int) error)
	// submissionDescRequirementID is the schema descriptor for requirement_id field.
	submissionDescRequirementID := submissionFields[4].Descriptor()
	// submission.RequirementIDValidator is a validator for the "requirement_id" field. It is called by the builders before save.
	submission.RequirementIDValidator = submissionDescRequirementID.Validators[0].(func(int) error)
	// submissionDescClientID is the schema descriptor for client_id field.
	submissionDescClientID := submissionFields[5].Descriptor()
	// submission.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	submission.ClientIDValidator = submissionDescClientID.Validators[0].(func(int) error)
	// submissionDescSubmittedBy is the schema descriptor for submitted_by field.
	submissionDescSubmittedBy := submissionFields[6].Descriptor()
	// submission.SubmittedByValidator is a validator for the "submitted_by" field. It is called by the builders before save.
	submission.SubmittedByValidator = submissionDescSubmittedBy.Validators[0].(func(int) error)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[14].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionFields[15].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTaskNumber is the schema descriptor for task_number field.
	taskDescTaskNumber := taskFields[0].Descriptor()
	// task.TaskNumberValidator is a validator for the "task_number" field. It is called by the builders before save.
	task.TaskNumberValidator = taskDescTaskNumber.Validators[0].(func(string) error)
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[1].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescRequirementID is the schema descriptor for requirement_id field.
	taskDescRequirementID := taskFields[3].Descriptor()
	// task.RequirementIDValidator is a validator for the "requirement_id" field. It is called by the builders before save.
	task.RequirementIDValidator = taskDescRequirementID.Validators[0].(func(int) error)
	// taskDescStatusManual is the schema descriptor for status_manual field.
	taskDescStatusManual := taskFields[7].Descriptor()
	// task.DefaultStatusManual holds the default value on creation for the status_manual field.
	task.DefaultStatusManual = taskDescStatusManual.Default.(bool)
	// taskDescProgress is the schema descriptor for progress field.
	taskDescProgress := taskFields[8].Descriptor()
	// task.DefaultProgress holds the default value on creation for the progress field.
	task.DefaultProgress = taskDescProgress.Default.(int)
	// task.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	task.ProgressValidator = func() func(int) error {
		validators := taskDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[12].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[13].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescQueryNumber is the schema descriptor for query_number field.
	threadDescQueryNumber := threadFields[0].Descriptor()
	// thread.QueryNumberValidator is a validator for the "query_number" field. It is called by the builders before save.
	thread.QueryNumberValidator = threadDescQueryNumber.Validators[0].(func(string) error)
	// threadDescTaskID is the schema descriptor for task_id field.
	threadDescTaskID := threadFields[1].Descriptor()
	// thread.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	thread.TaskIDValidator = threadDescTaskID.Validators[0].(func(int) error)
	// threadDescTitle is the schema descriptor for title field.
	threadDescTitle := threadFields[2].Descriptor()
	// thread.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	thread.TitleValidator = threadDescTitle.Validators[0].(func(string) error)
	// threadDescLastMessagePreview is the schema descriptor for last_message_preview field.
	threadDescLastMessagePreview := threadFields[7].Descriptor()
	// thread.LastMessagePreviewValidator is a validator for the "last_message_preview" field. It is called by the builders before save.
	thread.LastMessagePreviewValidator = threadDescLastMessagePreview.Validators[0].(func(string) error)
	// threadDescCreatedAt is the schema descriptor for created_at field.
	threadDescCreatedAt := threadFields[8].Descriptor()
	// thread.DefaultCreatedAt holds the default value on creation for the created_at field.
	thread.DefaultCreatedAt = threadDescCreatedAt.Default.(func() time.Time)
	// threadDescUpdatedAt is the schema descriptor for updated_at field.
	threadDescUpdatedAt := threadFields[9].Descriptor()
	// thread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	thread.DefaultUpdatedAt = threadDescUpdatedAt.Default.(func() time.Time)
	// thread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	thread.UpdateDefaultUpdatedAt = threadDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[0].Descriptor()
	// user.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	user.FullNameValidator = userDescFullName.Validators[0].(func(string) error)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[8].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[9].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[10].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
