package tasks

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/requirement"
	"github.com/agencydesk/agencydesk/ent/schema"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/user"
	"github.com/agencydesk/agencydesk/pkg/sequence"
)

// Service handles requirements, tasks and subtasks.
type Service struct {
	client *ent.Client
}

// NewService creates a new task service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateRequirementRequest represents a request to create a requirement.
type CreateRequirementRequest struct {
	RequirementName string `json:"requirement_name" validate:"required,min=1,max=300"`
	ClientID        int    `json:"client_id" validate:"required,gt=0"`
}

// UpdateRequirementRequest updates a requirement's mutable fields.
type UpdateRequirementRequest struct {
	RequirementName string `json:"requirement_name,omitempty" validate:"omitempty,min=1,max=300"`
	Status          string `json:"status,omitempty" validate:"omitempty,oneof=active on_hold completed cancelled"`
}

// CreateTaskRequest represents a request to create a task under a requirement.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=300"`
	Description string     `json:"description,omitempty" validate:"max=5000"`
	AssignedTo  *int       `json:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest updates a task's descriptive fields.
type UpdateTaskRequest struct {
	Title       string     `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Description string     `json:"description,omitempty" validate:"omitempty,max=5000"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskStatusRequest sets a task status by hand.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=todo in_progress review blocked done cancelled"`
}

// AddSubtaskRequest adds a checklist item to a task.
type AddSubtaskRequest struct {
	Title string `json:"title" validate:"required,min=1,max=300"`
}

// RequirementResponse represents a requirement.
type RequirementResponse struct {
	ID                int             `json:"id"`
	RequirementNumber string          `json:"requirement_number"`
	RequirementName   string          `json:"requirement_name"`
	ClientID          int             `json:"client_id"`
	Status            string          `json:"status"`
	AssignedEmployees []int           `json:"assigned_employees,omitempty"`
	Tasks             []*TaskResponse `json:"tasks,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TaskResponse represents a task with its subtasks.
type TaskResponse struct {
	ID            int              `json:"id"`
	TaskNumber    string           `json:"task_number"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	RequirementID int              `json:"requirement_id"`
	AssignedTo    *int             `json:"assigned_to,omitempty"`
	RequestedBy   []int            `json:"requested_by,omitempty"`
	Status        string           `json:"status"`
	Progress      int              `json:"progress"`
	Subtasks      []schema.Subtask `json:"subtasks,omitempty"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
	CompletedDate *time.Time       `json:"completed_date,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CreateRequirement creates a requirement for a client. The requirement
// number comes from the shared counter inside the same transaction as the
// insert, so concurrent creates never collide.
func (s *Service) CreateRequirement(ctx context.Context, req CreateRequirementRequest) (*RequirementResponse, error) {
	exists, err := s.client.Company.Query().Where(company.ID(req.ClientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("client not found")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	number, err := sequence.NextNumber(ctx, tx, sequence.ScopeRequirement)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to allocate requirement number: %w", err)
	}

	r, err := tx.Requirement.Create().
		SetRequirementNumber(number).
		SetRequirementName(req.RequirementName).
		SetClientID(req.ClientID).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create requirement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toRequirementResponse(r, nil), nil
}

// GetRequirement loads a requirement with its tasks.
func (s *Service) GetRequirement(ctx context.Context, id int) (*RequirementResponse, error) {
	r, err := s.client.Requirement.Query().
		Where(requirement.ID(id)).
		WithTasks(func(q *ent.TaskQuery) {
			q.Order(ent.Asc(task.FieldCreatedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("requirement not found")
		}
		return nil, fmt.Errorf("failed to get requirement: %w", err)
	}

	return toRequirementResponse(r, r.Edges.Tasks), nil
}

// ListRequirements lists requirements, optionally scoped to one client.
func (s *Service) ListRequirements(ctx context.Context, clientID int) ([]*RequirementResponse, error) {
	q := s.client.Requirement.Query().
		WithTasks().
		Order(ent.Desc(requirement.FieldCreatedAt))
	if clientID > 0 {
		q = q.Where(requirement.ClientID(clientID))
	}

	rs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requirements: %w", err)
	}

	responses := make([]*RequirementResponse, len(rs))
	for i, r := range rs {
		responses[i] = toRequirementResponse(r, r.Edges.Tasks)
	}
	return responses, nil
}

// UpdateRequirement updates a requirement's name and/or status.
func (s *Service) UpdateRequirement(ctx context.Context, id int, req UpdateRequirementRequest) (*RequirementResponse, error) {
	update := s.client.Requirement.UpdateOneID(id)
	if req.RequirementName != "" {
		update.SetRequirementName(req.RequirementName)
	}
	if req.Status != "" {
		update.SetStatus(requirement.Status(req.Status))
	}

	r, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("requirement not found")
		}
		return nil, fmt.Errorf("failed to update requirement: %w", err)
	}

	return toRequirementResponse(r, nil), nil
}

// AddTask creates a task under a requirement. Task numbering uses the same
// transactional counter as requirements.
func (s *Service) AddTask(ctx context.Context, requirementID int, req CreateTaskRequest) (*TaskResponse, error) {
	exists, err := s.client.Requirement.Query().Where(requirement.ID(requirementID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check requirement: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("requirement not found")
	}

	if req.AssignedTo != nil {
		if err := s.checkAssignee(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	number, err := sequence.NextNumber(ctx, tx, sequence.ScopeTask)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to allocate task number: %w", err)
	}

	create := tx.Task.Create().
		SetTaskNumber(number).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetRequirementID(requirementID)
	if req.AssignedTo != nil {
		create.SetAssignedTo(*req.AssignedTo)
	}
	if req.DueDate != nil {
		create.SetDueDate(*req.DueDate)
	}

	t, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if req.AssignedTo != nil {
		if err := appendAssignedEmployee(ctx, tx, requirementID, *req.AssignedTo); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toTaskResponse(t), nil
}

// GetTask loads one task.
func (s *Service) GetTask(ctx context.Context, id int) (*TaskResponse, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return toTaskResponse(t), nil
}

// ListTasks lists tasks, optionally filtered by requirement, assignee or status.
func (s *Service) ListTasks(ctx context.Context, requirementID, assignedTo int, status string) ([]*TaskResponse, error) {
	q := s.client.Task.Query().Order(ent.Desc(task.FieldCreatedAt))
	if requirementID > 0 {
		q = q.Where(task.RequirementID(requirementID))
	}
	if assignedTo > 0 {
		q = q.Where(task.AssignedTo(assignedTo))
	}
	if status != "" {
		q = q.Where(task.StatusEQ(task.Status(status)))
	}

	ts, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]*TaskResponse, len(ts))
	for i, t := range ts {
		responses[i] = toTaskResponse(t)
	}
	return responses, nil
}

// UpdateTask updates a task's descriptive fields.
func (s *Service) UpdateTask(ctx context.Context, id int, req UpdateTaskRequest) (*TaskResponse, error) {
	update := s.client.Task.UpdateOneID(id)
	if req.Title != "" {
		update.SetTitle(req.Title)
	}
	if req.Description != "" {
		update.SetDescription(req.Description)
	}
	if req.DueDate != nil {
		update.SetDueDate(*req.DueDate)
	}

	t, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return toTaskResponse(t), nil
}

// UpdateTaskStatus sets a task's status directly. A manual status sticks:
// subtask toggles stop deriving the status until a full checklist brings the
// task back to done. Setting done forces progress to 100 and stamps the
// completion date; leaving done clears it.
func (s *Service) UpdateTaskStatus(ctx context.Context, id int, req UpdateTaskStatusRequest) (*TaskResponse, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	update := t.Update().
		SetStatus(task.Status(req.Status)).
		SetStatusManual(true)

	if req.Status == string(task.StatusDone) {
		now := time.Now()
		update.SetProgress(100).SetCompletedDate(now)
	} else if t.Status == task.StatusDone {
		update.ClearCompletedDate()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return toTaskResponse(updated), nil
}

// AddSubtask appends a checklist item. Subtask ids are short random strings,
// re-rolled on the rare collision with a sibling.
func (s *Service) AddSubtask(ctx context.Context, taskID int, req AddSubtaskRequest) (*TaskResponse, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	id, err := newSubtaskID(t.Subtasks)
	if err != nil {
		return nil, err
	}

	subtasks := append(t.Subtasks, schema.Subtask{
		ID:    id,
		Title: req.Title,
	})

	updated, err := s.saveSubtasks(ctx, t, subtasks)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(updated), nil
}

// ToggleSubtask flips one checklist item and recomputes task progress.
func (s *Service) ToggleSubtask(ctx context.Context, taskID int, subtaskID string) (*TaskResponse, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	found := false
	subtasks := make([]schema.Subtask, len(t.Subtasks))
	copy(subtasks, t.Subtasks)
	for i := range subtasks {
		if subtasks[i].ID == subtaskID {
			subtasks[i].Completed = !subtasks[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("subtask not found")
	}

	updated, err := s.saveSubtasks(ctx, t, subtasks)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(updated), nil
}

// RemoveSubtask deletes a checklist item and recomputes progress.
func (s *Service) RemoveSubtask(ctx context.Context, taskID int, subtaskID string) (*TaskResponse, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	subtasks := make([]schema.Subtask, 0, len(t.Subtasks))
	for _, st := range t.Subtasks {
		if st.ID != subtaskID {
			subtasks = append(subtasks, st)
		}
	}
	if len(subtasks) == len(t.Subtasks) {
		return nil, fmt.Errorf("subtask not found")
	}

	updated, err := s.saveSubtasks(ctx, t, subtasks)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(updated), nil
}

// saveSubtasks persists the checklist and keeps progress and status in sync.
// Progress is the rounded completed fraction. Status derivation skips tasks
// whose status was set by hand, with one exception: a fully checked list
// always lands on done and hands derivation back.
func (s *Service) saveSubtasks(ctx context.Context, t *ent.Task, subtasks []schema.Subtask) (*ent.Task, error) {
	progress := deriveProgress(subtasks)

	update := t.Update().
		SetSubtasks(subtasks).
		SetProgress(progress)

	if progress == 100 && len(subtasks) > 0 {
		update.SetStatus(task.StatusDone).
			SetStatusManual(false).
			SetCompletedDate(time.Now())
	} else if !t.StatusManual {
		update.SetStatus(deriveStatus(progress))
		if t.Status == task.StatusDone {
			update.ClearCompletedDate()
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save subtasks: %w", err)
	}
	return updated, nil
}

// AssignTask hands a task to one employee. The pending requested_by list is
// cleared and the requirement's assigned_employees roster picks up the new
// assignee, all in one transaction.
func (s *Service) AssignTask(ctx context.Context, taskID, employeeID int) (*TaskResponse, error) {
	if err := s.checkAssignee(ctx, employeeID); err != nil {
		return nil, err
	}

	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	updated, err := tx.Task.UpdateOneID(taskID).
		SetAssignedTo(employeeID).
		ClearRequestedBy().
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}

	if err := appendAssignedEmployee(ctx, tx, t.RequirementID, employeeID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toTaskResponse(updated), nil
}

// RequestTaskAssignment records that an employee wants a task. Requesting
// twice is a no-op.
func (s *Service) RequestTaskAssignment(ctx context.Context, taskID, employeeID int) (*TaskResponse, error) {
	if err := s.checkAssignee(ctx, employeeID); err != nil {
		return nil, err
	}

	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	for _, id := range t.RequestedBy {
		if id == employeeID {
			return toTaskResponse(t), nil
		}
	}

	updated, err := t.Update().
		SetRequestedBy(append(t.RequestedBy, employeeID)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record assignment request: %w", err)
	}
	return toTaskResponse(updated), nil
}

// checkAssignee verifies the user exists, is not deleted, and can hold work.
func (s *Service) checkAssignee(ctx context.Context, userID int) error {
	u, err := s.client.User.Query().
		Where(user.ID(userID), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("assignee not found")
		}
		return fmt.Errorf("failed to fetch assignee: %w", err)
	}
	if u.Role != user.RoleEmployee && u.Role != user.RoleAdmin && u.Role != user.RoleSuperadmin {
		return fmt.Errorf("assignee cannot hold tasks")
	}
	return nil
}

// appendAssignedEmployee adds the employee to the requirement roster if absent.
func appendAssignedEmployee(ctx context.Context, tx *ent.Tx, requirementID, employeeID int) error {
	r, err := tx.Requirement.Get(ctx, requirementID)
	if err != nil {
		return fmt.Errorf("failed to fetch requirement: %w", err)
	}
	for _, id := range r.AssignedEmployees {
		if id == employeeID {
			return nil
		}
	}
	_, err = r.Update().
		SetAssignedEmployees(append(r.AssignedEmployees, employeeID)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update requirement roster: %w", err)
	}
	return nil
}

func deriveProgress(subtasks []schema.Subtask) int {
	if len(subtasks) == 0 {
		return 0
	}
	completed := 0
	for _, st := range subtasks {
		if st.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(subtasks))))
}

func deriveStatus(progress int) task.Status {
	switch {
	case progress == 0:
		return task.StatusTodo
	case progress == 100:
		return task.StatusDone
	default:
		return task.StatusInProgress
	}
}

// newSubtaskID returns a short id that is unique among the siblings.
func newSubtaskID(siblings []schema.Subtask) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		b := make([]byte, 4)
		if _, err := rand.Read(b); err != nil {
			return "", fmt.Errorf("failed to generate subtask id: %w", err)
		}
		id := hex.EncodeToString(b)

		collision := false
		for _, st := range siblings {
			if st.ID == id {
				collision = true
				break
			}
		}
		if !collision {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique subtask id")
}

func toRequirementResponse(r *ent.Requirement, tasks []*ent.Task) *RequirementResponse {
	resp := &RequirementResponse{
		ID:                r.ID,
		RequirementNumber: r.RequirementNumber,
		RequirementName:   r.RequirementName,
		ClientID:          r.ClientID,
		Status:            string(r.Status),
		AssignedEmployees: r.AssignedEmployees,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}
	return resp
}

func toTaskResponse(t *ent.Task) *TaskResponse {
	return &TaskResponse{
		ID:            t.ID,
		TaskNumber:    t.TaskNumber,
		Title:         t.Title,
		Description:   t.Description,
		RequirementID: t.RequirementID,
		AssignedTo:    t.AssignedTo,
		RequestedBy:   t.RequestedBy,
		Status:        string(t.Status),
		Progress:      t.Progress,
		Subtasks:      t.Subtasks,
		DueDate:       t.DueDate,
		CompletedDate: t.CompletedDate,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
