package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/feedback"
	"github.com/agencydesk/agencydesk/ent/submission"
)

// Service handles client feedback entries.
type Service struct {
	client *ent.Client
}

// NewService creates a new feedback service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateFeedbackRequest represents a feedback entry.
type CreateFeedbackRequest struct {
	ClientID     int    `json:"client_id" validate:"required,gt=0"`
	SubmissionID int    `json:"submission_id,omitempty"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment,omitempty" validate:"max=5000"`
	IsPublic     bool   `json:"is_public"`
}

// FeedbackResponse represents a stored feedback entry.
type FeedbackResponse struct {
	ID           int       `json:"id"`
	ClientID     int       `json:"client_id"`
	AuthorID     int       `json:"author_id"`
	SubmissionID *int      `json:"submission_id,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	Sentiment    string    `json:"sentiment"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateFeedback stores a rating. Sentiment is derived from the rating at
// write time: 4 and up is positive, 2 and 3 neutral, 1 negative.
func (s *Service) CreateFeedback(ctx context.Context, authorID int, req CreateFeedbackRequest) (*FeedbackResponse, error) {
	exists, err := s.client.Company.Query().Where(company.ID(req.ClientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("client not found")
	}

	create := s.client.Feedback.Create().
		SetClientID(req.ClientID).
		SetAuthorID(authorID).
		SetRating(req.Rating).
		SetComment(req.Comment).
		SetSentiment(deriveSentiment(req.Rating)).
		SetIsPublic(req.IsPublic)

	if req.SubmissionID > 0 {
		sub, err := s.client.Submission.Get(ctx, req.SubmissionID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("submission not found")
			}
			return nil, fmt.Errorf("failed to fetch submission: %w", err)
		}
		if sub.ClientID != req.ClientID {
			return nil, fmt.Errorf("submission does not belong to this client")
		}
		if sub.Status != submission.StatusApproved {
			return nil, fmt.Errorf("feedback can only reference approved submissions")
		}
		create.SetSubmissionID(req.SubmissionID)
	}

	f, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return toResponse(f), nil
}

// GetFeedback loads one entry.
func (s *Service) GetFeedback(ctx context.Context, id int) (*FeedbackResponse, error) {
	f, err := s.client.Feedback.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("feedback not found")
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return toResponse(f), nil
}

// ListFeedback lists entries, optionally scoped to one client or to public
// entries only.
func (s *Service) ListFeedback(ctx context.Context, clientID int, publicOnly bool) ([]*FeedbackResponse, error) {
	q := s.client.Feedback.Query().Order(ent.Desc(feedback.FieldCreatedAt))
	if clientID > 0 {
		q = q.Where(feedback.ClientID(clientID))
	}
	if publicOnly {
		q = q.Where(feedback.IsPublic(true))
	}

	fs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	responses := make([]*FeedbackResponse, len(fs))
	for i, f := range fs {
		responses[i] = toResponse(f)
	}
	return responses, nil
}

// AverageRating returns the client's mean rating and the entry count.
func (s *Service) AverageRating(ctx context.Context, clientID int) (float64, int, error) {
	fs, err := s.client.Feedback.Query().
		Where(feedback.ClientID(clientID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load feedback: %w", err)
	}
	if len(fs) == 0 {
		return 0, 0, nil
	}

	sum := 0
	for _, f := range fs {
		sum += f.Rating
	}
	return float64(sum) / float64(len(fs)), len(fs), nil
}

func deriveSentiment(rating int) feedback.Sentiment {
	switch {
	case rating >= 4:
		return feedback.SentimentPositive
	case rating >= 2:
		return feedback.SentimentNeutral
	default:
		return feedback.SentimentNegative
	}
}

func toResponse(f *ent.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:           f.ID,
		ClientID:     f.ClientID,
		AuthorID:     f.AuthorID,
		SubmissionID: f.SubmissionID,
		Rating:       f.Rating,
		Comment:      f.Comment,
		Sentiment:    string(f.Sentiment),
		IsPublic:     f.IsPublic,
		CreatedAt:    f.CreatedAt,
	}
}
