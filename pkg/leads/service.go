package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/lead"
	"github.com/agencydesk/agencydesk/ent/leadactivity"
	"github.com/agencydesk/agencydesk/ent/leadassignment"
	"github.com/agencydesk/agencydesk/ent/leadnote"
	"github.com/agencydesk/agencydesk/ent/user"
)

// Service handles lead pipeline operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new lead service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateLeadRequest represents a request to create a lead.
type CreateLeadRequest struct {
	Name            string   `json:"name" validate:"required,min=1"`
	Company         string   `json:"company,omitempty"`
	Email           string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string   `json:"phone,omitempty"`
	City            string   `json:"city,omitempty"`
	Country         string   `json:"country,omitempty" validate:"omitempty,len=2"`
	Website         string   `json:"website,omitempty"`
	Source          string   `json:"source,omitempty"`
	PitchedServices []string `json:"pitched_services,omitempty"`
}

// AssignLeadsRequest assigns a batch of leads to one salesperson.
type AssignLeadsRequest struct {
	LeadIDs       []int  `json:"lead_ids" validate:"required,min=1"`
	SalesPersonID int    `json:"sales_person_id" validate:"required,gt=0"`
	Notes         string `json:"notes,omitempty"`
}

// UpdateStatusRequest updates the lead's top-level status (admin path).
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted interested pitched follow_up converted not_interested lost"`
	Reason string `json:"reason,omitempty"`
}

// UpdateAssignmentStatusRequest updates one assignment's status (salesperson path).
type UpdateAssignmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted interested pitched follow_up converted not_interested lost"`
	Notes  string `json:"notes,omitempty"`
}

// LogActivityRequest records a contact activity (called/whatsapp/emailed).
type LogActivityRequest struct {
	Type   string `json:"type" validate:"required,oneof=called whatsapp emailed"`
	Detail string `json:"detail,omitempty" validate:"max=2000"`
}

// AssignmentResponse represents one assignment row.
type AssignmentResponse struct {
	ID            int       `json:"id"`
	LeadID        int       `json:"lead_id"`
	SalesPersonID int       `json:"sales_person_id"`
	SalesPerson   string    `json:"sales_person"`
	AssignedBy    int       `json:"assigned_by"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	AssignedAt    time.Time `json:"assigned_at"`
}

// ActivityResponse represents one timeline entry.
type ActivityResponse struct {
	ID        int                    `json:"id"`
	LeadID    int                    `json:"lead_id"`
	UserID    int                    `json:"user_id"`
	UserName  string                 `json:"user_name"`
	Type      string                 `json:"type"`
	Detail    string                 `json:"detail,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// LeadResponse represents a lead with its assignments.
type LeadResponse struct {
	ID              int                   `json:"id"`
	Name            string                `json:"name"`
	Company         string                `json:"company,omitempty"`
	Email           string                `json:"email,omitempty"`
	Phone           string                `json:"phone,omitempty"`
	City            string                `json:"city,omitempty"`
	Country         string                `json:"country,omitempty"`
	Website         string                `json:"website,omitempty"`
	Source          string                `json:"source,omitempty"`
	Status          string                `json:"status"`
	PitchedServices []string              `json:"pitched_services,omitempty"`
	ImportBatchID   string                `json:"import_batch_id,omitempty"`
	Assignments     []*AssignmentResponse `json:"assignments,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// NoteResponse represents a lead note.
type NoteResponse struct {
	ID        int       `json:"id"`
	LeadID    int       `json:"lead_id"`
	UserID    int       `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLead creates a single lead.
func (s *Service) CreateLead(ctx context.Context, createdBy int, req CreateLeadRequest) (*LeadResponse, error) {
	l, err := s.client.Lead.Create().
		SetName(req.Name).
		SetCompany(req.Company).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetCity(req.City).
		SetCountry(req.Country).
		SetWebsite(req.Website).
		SetSource(req.Source).
		SetPitchedServices(req.PitchedServices).
		SetCreatedBy(createdBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return toLeadResponse(l, nil), nil
}

// GetLead retrieves a lead with its assignments.
func (s *Service) GetLead(ctx context.Context, leadID int) (*LeadResponse, error) {
	l, err := s.client.Lead.Query().
		Where(lead.ID(leadID)).
		WithAssignments(func(q *ent.LeadAssignmentQuery) {
			q.WithSalesPerson().Order(ent.Asc(leadassignment.FieldAssignedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return toLeadResponse(l, l.Edges.Assignments), nil
}

// ListLeads lists leads filtered by status and/or salesperson.
func (s *Service) ListLeads(ctx context.Context, status string, salesPersonID, limit, offset int) ([]*LeadResponse, error) {
	q := s.client.Lead.Query().
		WithAssignments(func(aq *ent.LeadAssignmentQuery) {
			aq.WithSalesPerson()
		}).
		Order(ent.Desc(lead.FieldCreatedAt))
	if status != "" {
		q = q.Where(lead.StatusEQ(lead.Status(status)))
	}
	if salesPersonID > 0 {
		q = q.Where(lead.HasAssignmentsWith(leadassignment.SalesPersonID(salesPersonID)))
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	ls, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	responses := make([]*LeadResponse, len(ls))
	for i, l := range ls {
		responses[i] = toLeadResponse(l, l.Edges.Assignments)
	}
	return responses, nil
}

// AssignLeads assigns each lead in the batch to the salesperson. The
// assignment list is append-only: prior assignees keep their rows, so a lead
// may be worked by several salespeople concurrently. Re-assigning the same
// salesperson to the same lead is a no-op. Every new row gets a matching
// "assigned" activity in the same transaction.
func (s *Service) AssignLeads(ctx context.Context, assignedBy int, req AssignLeadsRequest) ([]*AssignmentResponse, error) {
	sp, err := s.client.User.Query().
		Where(user.ID(req.SalesPersonID), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("salesperson not found")
		}
		return nil, fmt.Errorf("failed to fetch salesperson: %w", err)
	}
	if sp.Role != user.RoleSales {
		return nil, fmt.Errorf("assignee must have the sales role")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	var created []*ent.LeadAssignment
	for _, leadID := range req.LeadIDs {
		exists, err := tx.Lead.Query().Where(lead.ID(leadID)).Exist(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to check lead %d: %w", leadID, err)
		}
		if !exists {
			tx.Rollback()
			return nil, fmt.Errorf("lead %d not found", leadID)
		}

		// Idempotent per (lead, salesperson)
		already, err := tx.LeadAssignment.Query().
			Where(
				leadassignment.LeadID(leadID),
				leadassignment.SalesPersonID(req.SalesPersonID),
			).
			Exist(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to check assignment: %w", err)
		}
		if already {
			continue
		}

		a, err := tx.LeadAssignment.Create().
			SetLeadID(leadID).
			SetSalesPersonID(req.SalesPersonID).
			SetAssignedBy(assignedBy).
			SetNotes(req.Notes).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}

		_, err = tx.LeadActivity.Create().
			SetLeadID(leadID).
			SetUserID(assignedBy).
			SetType(leadactivity.TypeAssigned).
			SetDetail(fmt.Sprintf("Assigned to %s", sp.FullName)).
			SetMetadata(map[string]interface{}{"sales_person_id": req.SalesPersonID}).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to record assignment activity: %w", err)
		}

		created = append(created, a)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	responses := make([]*AssignmentResponse, len(created))
	for i, a := range created {
		responses[i] = &AssignmentResponse{
			ID:            a.ID,
			LeadID:        a.LeadID,
			SalesPersonID: a.SalesPersonID,
			SalesPerson:   sp.FullName,
			AssignedBy:    a.AssignedBy,
			Status:        string(a.Status),
			Notes:         a.Notes,
			AssignedAt:    a.AssignedAt,
		}
	}
	return responses, nil
}

// UpdateLeadStatus updates the lead's own top-level status. This is the
// admin path; it does not touch any assignment's status. The matching
// status_change activity is written in the same transaction.
func (s *Service) UpdateLeadStatus(ctx context.Context, userID, leadID int, req UpdateStatusRequest) (*LeadResponse, error) {
	current, err := s.client.Lead.Query().
		Where(lead.ID(leadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	if current.Status == lead.Status(req.Status) {
		return toLeadResponse(current, nil), nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	updated, err := tx.Lead.UpdateOne(current).
		SetStatus(lead.Status(req.Status)).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}

	activityType := leadactivity.TypeStatusChange
	if req.Status == string(lead.StatusConverted) {
		activityType = leadactivity.TypeConverted
	}

	create := tx.LeadActivity.Create().
		SetLeadID(leadID).
		SetUserID(userID).
		SetType(activityType).
		SetMetadata(map[string]interface{}{
			"old_status": string(current.Status),
			"new_status": req.Status,
		})
	if req.Reason != "" {
		create.SetDetail(req.Reason)
	}
	if _, err := create.Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to record status activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toLeadResponse(updated, nil), nil
}

// UpdateAssignmentStatus updates the caller's own assignment of a lead.
// Salespeople go through here; the lead's top-level status is left alone,
// the two are deliberately separate fields.
func (s *Service) UpdateAssignmentStatus(ctx context.Context, salesPersonID, leadID int, req UpdateAssignmentStatusRequest) (*AssignmentResponse, error) {
	a, err := s.client.LeadAssignment.Query().
		Where(
			leadassignment.LeadID(leadID),
			leadassignment.SalesPersonID(salesPersonID),
		).
		WithSalesPerson().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("assignment not found")
		}
		return nil, fmt.Errorf("failed to fetch assignment: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	update := tx.LeadAssignment.UpdateOne(a).
		SetStatus(leadassignment.Status(req.Status))
	if req.Notes != "" {
		update.SetNotes(req.Notes)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	_, err = tx.LeadActivity.Create().
		SetLeadID(leadID).
		SetUserID(salesPersonID).
		SetType(leadactivity.TypeStatusChange).
		SetDetail("Assignment status updated").
		SetMetadata(map[string]interface{}{
			"assignment_id": a.ID,
			"old_status":    string(a.Status),
			"new_status":    req.Status,
		}).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to record status activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &AssignmentResponse{
		ID:            updated.ID,
		LeadID:        updated.LeadID,
		SalesPersonID: updated.SalesPersonID,
		SalesPerson:   a.Edges.SalesPerson.FullName,
		AssignedBy:    updated.AssignedBy,
		Status:        string(updated.Status),
		Notes:         updated.Notes,
		AssignedAt:    updated.AssignedAt,
	}, nil
}

// LogActivity records a contact activity (called/whatsapp/emailed) on a lead.
func (s *Service) LogActivity(ctx context.Context, userID, leadID int, req LogActivityRequest) (*ActivityResponse, error) {
	exists, err := s.client.Lead.Query().Where(lead.ID(leadID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("lead not found")
	}

	a, err := s.client.LeadActivity.Create().
		SetLeadID(leadID).
		SetUserID(userID).
		SetType(leadactivity.Type(req.Type)).
		SetDetail(req.Detail).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return toActivityResponse(a, u.FullName), nil
}

// GetTimeline returns the lead's activity log, newest first.
func (s *Service) GetTimeline(ctx context.Context, leadID int) ([]*ActivityResponse, error) {
	activities, err := s.client.LeadActivity.Query().
		Where(leadactivity.LeadID(leadID)).
		WithUser().
		Order(ent.Desc(leadactivity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load timeline: %w", err)
	}

	responses := make([]*ActivityResponse, len(activities))
	for i, a := range activities {
		name := ""
		if a.Edges.User != nil {
			name = a.Edges.User.FullName
		}
		responses[i] = toActivityResponse(a, name)
	}
	return responses, nil
}

// AddNote creates a note and its note_added activity in one transaction.
func (s *Service) AddNote(ctx context.Context, userID, leadID int, content string, isPinned bool) (*NoteResponse, error) {
	exists, err := s.client.Lead.Query().Where(lead.ID(leadID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("lead not found")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	note, err := tx.LeadNote.Create().
		SetLeadID(leadID).
		SetUserID(userID).
		SetContent(content).
		SetIsPinned(isPinned).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	_, err = tx.LeadActivity.Create().
		SetLeadID(leadID).
		SetUserID(userID).
		SetType(leadactivity.TypeNoteAdded).
		SetMetadata(map[string]interface{}{"note_id": note.ID}).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to record note activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &NoteResponse{
		ID:        note.ID,
		LeadID:    note.LeadID,
		UserID:    note.UserID,
		UserName:  u.FullName,
		Content:   note.Content,
		IsPinned:  note.IsPinned,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}, nil
}

// ListNotes returns the lead's notes, pinned first, newest first.
func (s *Service) ListNotes(ctx context.Context, leadID int) ([]*NoteResponse, error) {
	notes, err := s.client.LeadNote.Query().
		Where(leadnote.LeadID(leadID)).
		WithUser().
		Order(ent.Desc(leadnote.FieldIsPinned), ent.Desc(leadnote.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	responses := make([]*NoteResponse, len(notes))
	for i, note := range notes {
		name := ""
		if note.Edges.User != nil {
			name = note.Edges.User.FullName
		}
		responses[i] = &NoteResponse{
			ID:        note.ID,
			LeadID:    note.LeadID,
			UserID:    note.UserID,
			UserName:  name,
			Content:   note.Content,
			IsPinned:  note.IsPinned,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		}
	}
	return responses, nil
}

func toLeadResponse(l *ent.Lead, assignments []*ent.LeadAssignment) *LeadResponse {
	resp := &LeadResponse{
		ID:              l.ID,
		Name:            l.Name,
		Company:         l.Company,
		Email:           l.Email,
		Phone:           l.Phone,
		City:            l.City,
		Country:         l.Country,
		Website:         l.Website,
		Source:          l.Source,
		Status:          string(l.Status),
		PitchedServices: l.PitchedServices,
		ImportBatchID:   l.ImportBatchID,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
	for _, a := range assignments {
		name := ""
		if a.Edges.SalesPerson != nil {
			name = a.Edges.SalesPerson.FullName
		}
		resp.Assignments = append(resp.Assignments, &AssignmentResponse{
			ID:            a.ID,
			LeadID:        a.LeadID,
			SalesPersonID: a.SalesPersonID,
			SalesPerson:   name,
			AssignedBy:    a.AssignedBy,
			Status:        string(a.Status),
			Notes:         a.Notes,
			AssignedAt:    a.AssignedAt,
		})
	}
	return resp
}

func toActivityResponse(a *ent.LeadActivity, userName string) *ActivityResponse {
	return &ActivityResponse{
		ID:        a.ID,
		LeadID:    a.LeadID,
		UserID:    a.UserID,
		UserName:  userName,
		Type:      string(a.Type),
		Detail:    a.Detail,
		Metadata:  a.Metadata,
		CreatedAt: a.CreatedAt,
	}
}
