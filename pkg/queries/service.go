package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/message"
	"github.com/agencydesk/agencydesk/ent/task"
	"github.com/agencydesk/agencydesk/ent/thread"
	"github.com/agencydesk/agencydesk/pkg/sequence"
)

// previewLimit caps the denormalized last-message preview, in runes.
const previewLimit = 120

// Service handles discussion threads attached to tasks.
type Service struct {
	client *ent.Client
}

// NewService creates a new query thread service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateQueryRequest opens a thread on a task.
type CreateQueryRequest struct {
	TaskID      int    `json:"task_id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required,min=1,max=300"`
	Description string `json:"description,omitempty" validate:"max=5000"`
}

// SendMessageRequest posts a message to a thread.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=10000"`
}

// EditMessageRequest rewrites a message's content.
type EditMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=10000"`
}

// QueryResponse represents a thread.
type QueryResponse struct {
	ID                 int        `json:"id"`
	QueryNumber        string     `json:"query_number"`
	TaskID             int        `json:"task_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Status             string     `json:"status"`
	Participants       []int      `json:"participants"`
	LastMessageAt      *time.Time `json:"last_message_at,omitempty"`
	LastMessagePreview string     `json:"last_message_preview,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// MessageResponse represents one message in a thread.
type MessageResponse struct {
	ID        int       `json:"id"`
	QueryID   int       `json:"query_id"`
	SenderID  int       `json:"sender_id"`
	Content   string    `json:"content"`
	IsEdited  bool      `json:"is_edited"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateQuery opens a thread on a task. The creator is the first participant
// and the thread number comes from the shared counter in the same
// transaction.
func (s *Service) CreateQuery(ctx context.Context, creatorID int, req CreateQueryRequest) (*QueryResponse, error) {
	exists, err := s.client.Task.Query().Where(task.ID(req.TaskID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("task not found")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	number, err := sequence.NextNumber(ctx, tx, sequence.ScopeQuery)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to allocate query number: %w", err)
	}

	q, err := tx.Thread.Create().
		SetQueryNumber(number).
		SetTaskID(req.TaskID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetParticipants([]int{creatorID}).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toQueryResponse(q), nil
}

// GetQuery loads one thread.
func (s *Service) GetQuery(ctx context.Context, id int) (*QueryResponse, error) {
	q, err := s.client.Thread.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("query not found")
		}
		return nil, fmt.Errorf("failed to get query: %w", err)
	}
	return toQueryResponse(q), nil
}

// ListQueries lists threads, optionally scoped to one task or status.
func (s *Service) ListQueries(ctx context.Context, taskID int, status string) ([]*QueryResponse, error) {
	q := s.client.Thread.Query().
		Order(ent.Desc(thread.FieldUpdatedAt))
	if taskID > 0 {
		q = q.Where(thread.TaskID(taskID))
	}
	if status != "" {
		q = q.Where(thread.StatusEQ(thread.Status(status)))
	}

	qs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}

	responses := make([]*QueryResponse, len(qs))
	for i, item := range qs {
		responses[i] = toQueryResponse(item)
	}
	return responses, nil
}

// SetStatus resolves or reopens a thread. Resolved threads can be reopened
// any number of times.
func (s *Service) SetStatus(ctx context.Context, id int, status string) (*QueryResponse, error) {
	if status != string(thread.StatusActive) && status != string(thread.StatusResolved) {
		return nil, fmt.Errorf("invalid query status: %s", status)
	}

	q, err := s.client.Thread.UpdateOneID(id).
		SetStatus(thread.Status(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("query not found")
		}
		return nil, fmt.Errorf("failed to update query status: %w", err)
	}
	return toQueryResponse(q), nil
}

// SendMessage posts to a thread. The sender joins the participant list if
// absent, and the thread's last-message summary is refreshed, all in one
// transaction.
func (s *Service) SendMessage(ctx context.Context, senderID, queryID int, req SendMessageRequest) (*MessageResponse, error) {
	q, err := s.client.Thread.Get(ctx, queryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("query not found")
		}
		return nil, fmt.Errorf("failed to get query: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	m, err := tx.Message.Create().
		SetQueryID(queryID).
		SetSenderID(senderID).
		SetContent(req.Content).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	update := tx.Thread.UpdateOneID(queryID).
		SetLastMessageAt(m.CreatedAt).
		SetLastMessagePreview(truncateRunes(req.Content, previewLimit))

	joined := false
	for _, id := range q.Participants {
		if id == senderID {
			joined = true
			break
		}
	}
	if !joined {
		update.SetParticipants(append(q.Participants, senderID))
	}

	if _, err := update.Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update query summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toMessageResponse(m), nil
}

// ListMessages returns a thread's messages, oldest first.
func (s *Service) ListMessages(ctx context.Context, queryID, limit, offset int) ([]*MessageResponse, error) {
	q := s.client.Message.Query().
		Where(message.QueryID(queryID)).
		Order(ent.Asc(message.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	ms, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	responses := make([]*MessageResponse, len(ms))
	for i, m := range ms {
		responses[i] = toMessageResponse(m)
	}
	return responses, nil
}

// EditMessage rewrites a message body. Only the original sender may edit;
// the edited flag is permanent.
func (s *Service) EditMessage(ctx context.Context, senderID, messageID int, req EditMessageRequest) (*MessageResponse, error) {
	m, err := s.client.Message.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("message not found")
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	if m.SenderID != senderID {
		return nil, fmt.Errorf("only the sender can edit a message")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	updated, err := tx.Message.UpdateOne(m).
		SetContent(req.Content).
		SetIsEdited(true).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to edit message: %w", err)
	}

	// If this is the latest message, the thread preview tracks the edit.
	latest, err := tx.Message.Query().
		Where(message.QueryID(m.QueryID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to load latest message: %w", err)
	}
	if latest.ID == messageID {
		_, err = tx.Thread.UpdateOneID(m.QueryID).
			SetLastMessagePreview(truncateRunes(req.Content, previewLimit)).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update query preview: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toMessageResponse(updated), nil
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func toQueryResponse(q *ent.Thread) *QueryResponse {
	return &QueryResponse{
		ID:                 q.ID,
		QueryNumber:        q.QueryNumber,
		TaskID:             q.TaskID,
		Title:              q.Title,
		Description:        q.Description,
		Status:             string(q.Status),
		Participants:       q.Participants,
		LastMessageAt:      q.LastMessageAt,
		LastMessagePreview: q.LastMessagePreview,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

func toMessageResponse(m *ent.Message) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		QueryID:   m.QueryID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		IsEdited:  m.IsEdited,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
