package submissions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/submission"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/user"
	"github.com/agencydesk/agencydesk/pkg/email"
	"github.com/agencydesk/agencydesk/pkg/sequence"
)

// Service handles the submission review workflow.
type Service struct {
	client *ent.Client
	email  *email.Service
}

// NewService creates a new submission service.
func NewService(client *ent.Client, emailService *email.Service) *Service {
	return &Service{client: client, email: emailService}
}

// CreateSubmissionRequest represents a deliverable handoff for review.
type CreateSubmissionRequest struct {
	Title          string   `json:"title" validate:"required,min=1,max=300"`
	Description    string   `json:"description,omitempty" validate:"max=5000"`
	TaskID         int      `json:"task_id" validate:"required,gt=0"`
	Deliverables   []string `json:"deliverables,omitempty"`
	ResubmissionOf int      `json:"resubmission_of,omitempty"`
}

// ReviewRequest represents a client's verdict on a submission.
type ReviewRequest struct {
	Status           string   `json:"status" validate:"required,oneof=approved rejected changes_requested"`
	ReviewNotes      string   `json:"review_notes,omitempty" validate:"max=5000"`
	RequestedChanges []string `json:"requested_changes,omitempty"`
}

// SubmissionResponse represents a submission.
type SubmissionResponse struct {
	ID               int                      `json:"id"`
	SubmissionNumber string                   `json:"submission_number"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description,omitempty"`
	TaskID           int                      `json:"task_id"`
	RequirementID    int                      `json:"requirement_id"`
	ClientID         int                      `json:"client_id"`
	SubmittedBy      int                      `json:"submitted_by"`
	Deliverables     []string                 `json:"deliverables,omitempty"`
	Status           string                   `json:"status"`
	RequestedChanges []schema.RequestedChange `json:"requested_changes,omitempty"`
	ReviewNotes      string                   `json:"review_notes,omitempty"`
	ReviewedBy       *int                     `json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time               `json:"reviewed_at,omitempty"`
	ResubmissionOf   *int                     `json:"resubmission_of,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// CreateSubmission submits work on a task for client review. The requirement
// and client references are resolved from the task, so a submission can never
// point across the tree. A resubmission references the earlier round and
// starts a fresh review cycle.
func (s *Service) CreateSubmission(ctx context.Context, submittedBy int, req CreateSubmissionRequest) (*SubmissionResponse, error) {
	t, err := s.client.Task.Query().
		Where(task.ID(req.TaskID)).
		WithRequirement().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}

	if req.ResubmissionOf > 0 {
		prev, err := s.client.Submission.Get(ctx, req.ResubmissionOf)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("original submission not found")
			}
			return nil, fmt.Errorf("failed to fetch original submission: %w", err)
		}
		if prev.TaskID != req.TaskID {
			return nil, fmt.Errorf("resubmission must target the same task")
		}
		if prev.Status != submission.StatusRejected && prev.Status != submission.StatusChangesRequested {
			return nil, fmt.Errorf("only rejected or changes-requested submissions can be resubmitted")
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	number, err := sequence.NextNumber(ctx, tx, sequence.ScopeSubmission)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to allocate submission number: %w", err)
	}

	create := tx.Submission.Create().
		SetSubmissionNumber(number).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetTaskID(req.TaskID).
		SetRequirementID(t.RequirementID).
		SetClientID(t.Edges.Requirement.ClientID).
		SetSubmittedBy(submittedBy).
		SetDeliverables(req.Deliverables)
	if req.ResubmissionOf > 0 {
		create.SetResubmissionOf(req.ResubmissionOf)
	}

	sub, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toResponse(sub), nil
}

// GetSubmission loads one submission.
func (s *Service) GetSubmission(ctx context.Context, id int) (*SubmissionResponse, error) {
	sub, err := s.client.Submission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("submission not found")
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return toResponse(sub), nil
}

// ListSubmissions lists submissions filtered by client, task and/or status.
func (s *Service) ListSubmissions(ctx context.Context, clientID, taskID int, status string) ([]*SubmissionResponse, error) {
	q := s.client.Submission.Query().Order(ent.Desc(submission.FieldCreatedAt))
	if clientID > 0 {
		q = q.Where(submission.ClientID(clientID))
	}
	if taskID > 0 {
		q = q.Where(submission.TaskID(taskID))
	}
	if status != "" {
		q = q.Where(submission.StatusEQ(submission.Status(status)))
	}

	subs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	responses := make([]*SubmissionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = toResponse(sub)
	}
	return responses, nil
}

// StartReview moves a pending submission to under_review.
func (s *Service) StartReview(ctx context.Context, id int) (*SubmissionResponse, error) {
	sub, err := s.client.Submission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("submission not found")
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if sub.Status != submission.StatusPending {
		return nil, fmt.Errorf("only pending submissions can enter review")
	}

	updated, err := sub.Update().
		SetStatus(submission.StatusUnderReview).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start review: %w", err)
	}
	return toResponse(updated), nil
}

// Review records a verdict. Only the owning client's user (or a superadmin)
// may review; the submission must still be open. Rejections and change
// requests need review notes, and a change request needs at least one
// concrete change. Approval triggers the feedback-request email outside the
// write, a failed send never rolls the verdict back.
func (s *Service) Review(ctx context.Context, reviewerID, id int, req ReviewRequest) (*SubmissionResponse, error) {
	sub, err := s.client.Submission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("submission not found")
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	if sub.Status != submission.StatusPending && sub.Status != submission.StatusUnderReview {
		return nil, fmt.Errorf("submission has already been reviewed")
	}

	reviewer, err := s.client.User.Query().
		Where(user.ID(reviewerID), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("reviewer not found")
		}
		return nil, fmt.Errorf("failed to fetch reviewer: %w", err)
	}

	if reviewer.Role != user.RoleSuperadmin {
		owner, err := s.client.Company.Query().
			Where(company.ID(sub.ClientID)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch client: %w", err)
		}
		if reviewer.Role != user.RoleClient || owner.UserID != reviewerID {
			return nil, fmt.Errorf("only the owning client can review this submission")
		}
	}

	if req.Status != string(submission.StatusApproved) && req.ReviewNotes == "" {
		return nil, fmt.Errorf("review notes are required unless approving")
	}
	if req.Status == string(submission.StatusChangesRequested) && len(req.RequestedChanges) == 0 {
		return nil, fmt.Errorf("at least one requested change is required")
	}

	update := sub.Update().
		SetStatus(submission.Status(req.Status)).
		SetReviewNotes(req.ReviewNotes).
		SetReviewedBy(reviewerID).
		SetReviewedAt(time.Now())

	if req.Status == string(submission.StatusChangesRequested) {
		changes := make([]schema.RequestedChange, 0, len(req.RequestedChanges))
		for _, desc := range req.RequestedChanges {
			id, err := newChangeID()
			if err != nil {
				return nil, err
			}
			changes = append(changes, schema.RequestedChange{ID: id, Description: desc})
		}
		update.SetRequestedChanges(changes)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record review: %w", err)
	}

	s.notifySubmitter(ctx, updated)

	return toResponse(updated), nil
}

// ToggleRequestedChange flips one requested-change checkbox so the team can
// track rework against a changes_requested verdict.
func (s *Service) ToggleRequestedChange(ctx context.Context, submissionID int, changeID string) (*SubmissionResponse, error) {
	sub, err := s.client.Submission.Get(ctx, submissionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("submission not found")
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	found := false
	changes := make([]schema.RequestedChange, len(sub.RequestedChanges))
	copy(changes, sub.RequestedChanges)
	for i := range changes {
		if changes[i].ID == changeID {
			changes[i].Completed = !changes[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("requested change not found")
	}

	updated, err := sub.Update().
		SetRequestedChanges(changes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update requested changes: %w", err)
	}
	return toResponse(updated), nil
}

// notifySubmitter emails the review outcome to the submitting user, plus a
// feedback request to the client on approval. Email failures are logged only.
func (s *Service) notifySubmitter(ctx context.Context, sub *ent.Submission) {
	submitter, err := s.client.User.Get(ctx, sub.SubmittedBy)
	if err != nil {
		log.Printf("⚠️  Failed to load submitter for notification: %v", err)
		return
	}

	if err := s.email.SendSubmissionReviewedEmail(
		submitter.Email, submitter.FullName,
		sub.SubmissionNumber, sub.Title, string(sub.Status), sub.ReviewNotes,
	); err != nil {
		log.Printf("⚠️  Failed to send review email: %v", err)
	}

	if sub.Status != submission.StatusApproved {
		return
	}

	owner, err := s.client.Company.Query().
		Where(company.ID(sub.ClientID)).
		WithUser().
		Only(ctx)
	if err != nil || owner.Edges.User == nil {
		log.Printf("⚠️  Failed to load client for feedback request: %v", err)
		return
	}
	if err := s.email.SendFeedbackRequestEmail(
		owner.Edges.User.Email, owner.Edges.User.FullName,
		sub.SubmissionNumber, sub.Title,
	); err != nil {
		log.Printf("⚠️  Failed to send feedback request email: %v", err)
	}
}

func newChangeID() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate change id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func toResponse(sub *ent.Submission) *SubmissionResponse {
	return &SubmissionResponse{
		ID:               sub.ID,
		SubmissionNumber: sub.SubmissionNumber,
		Title:            sub.Title,
		Description:      sub.Description,
		TaskID:           sub.TaskID,
		RequirementID:    sub.RequirementID,
		ClientID:         sub.ClientID,
		SubmittedBy:      sub.SubmittedBy,
		Deliverables:     sub.Deliverables,
		Status:           string(sub.Status),
		RequestedChanges: sub.RequestedChanges,
		ReviewNotes:      sub.ReviewNotes,
		ReviewedBy:       sub.ReviewedBy,
		ReviewedAt:       sub.ReviewedAt,
		ResubmissionOf:   sub.ResubmissionOf,
		CreatedAt:        sub.CreatedAt,
		UpdatedAt:        sub.UpdatedAt,
	}
}
