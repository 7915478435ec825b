package clients

import (
	"context"
	"fmt"
	"time"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/company"
	"github.com/agencydesk/agencydesk/ent/user"
)

// Service handles client registry operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new client service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateClientRequest creates a client company together with its user account.
type CreateClientRequest struct {
	FullName      string `json:"full_name" validate:"required,min=2"`
	Username      string `json:"username" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone,omitempty"`
	CompanyName   string `json:"company_name" validate:"required,min=2"`
	Industry      string `json:"industry,omitempty"`
	SalesPersonID int    `json:"sales_person_id" validate:"required,gt=0"`
}

// UpdateClientRequest updates mutable client fields.
type UpdateClientRequest struct {
	CompanyName   *string `json:"company_name,omitempty" validate:"omitempty,min=2"`
	Industry      *string `json:"industry,omitempty"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=lead prospect active"`
	SalesPersonID *int    `json:"sales_person_id,omitempty" validate:"omitempty,gt=0"`
}

// ClientResponse represents a client with its account fields flattened in.
type ClientResponse struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	CompanyName   string    `json:"company_name"`
	Industry      string    `json:"industry,omitempty"`
	Status        string    `json:"status"`
	SalesPersonID int       `json:"sales_person_id"`
	HasPassword   bool      `json:"has_password"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateClient creates the user account and the client record in one
// transaction. A failure at any point leaves neither behind.
func (s *Service) CreateClient(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	// Email must be free among non-deleted users
	exists, err := s.client.User.Query().
		Where(user.EmailEQ(req.Email), user.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	// Salesperson must exist and hold the sales (or admin) role
	sp, err := s.client.User.Query().
		Where(user.ID(req.SalesPersonID), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("salesperson not found")
		}
		return nil, fmt.Errorf("failed to fetch salesperson: %w", err)
	}
	if sp.Role != user.RoleSales && sp.Role != user.RoleAdmin && sp.Role != user.RoleSuperadmin {
		return nil, fmt.Errorf("sales owner must have the sales role")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	account, err := tx.User.Create().
		SetFullName(req.FullName).
		SetUsername(req.Username).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetRole(user.RoleClient).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create client account: %w", err)
	}

	record, err := tx.Company.Create().
		SetUserID(account.ID).
		SetCompanyName(req.CompanyName).
		SetIndustry(req.Industry).
		SetSalesPersonID(req.SalesPersonID).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create client record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toResponse(record, account), nil
}

// GetClient retrieves a client by ID.
func (s *Service) GetClient(ctx context.Context, clientID int) (*ClientResponse, error) {
	record, err := s.client.Company.Query().
		Where(company.ID(clientID)).
		WithUser().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if record.Edges.User == nil || record.Edges.User.DeletedAt != nil {
		return nil, fmt.Errorf("client not found")
	}

	return toResponse(record, record.Edges.User), nil
}

// GetClientByUserID retrieves the client record backing a user account.
func (s *Service) GetClientByUserID(ctx context.Context, userID int) (*ClientResponse, error) {
	record, err := s.client.Company.Query().
		Where(company.UserID(userID)).
		WithUser().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return toResponse(record, record.Edges.User), nil
}

// ListClients lists clients, optionally restricted to one sales owner.
func (s *Service) ListClients(ctx context.Context, salesPersonID int) ([]*ClientResponse, error) {
	q := s.client.Company.Query().
		Where(company.HasUserWith(user.DeletedAtIsNil())).
		WithUser().
		Order(ent.Desc(company.FieldCreatedAt))
	if salesPersonID > 0 {
		q = q.Where(company.SalesPersonID(salesPersonID))
	}

	records, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]*ClientResponse, len(records))
	for i, record := range records {
		responses[i] = toResponse(record, record.Edges.User)
	}
	return responses, nil
}

// UpdateClient patches mutable fields of a client.
func (s *Service) UpdateClient(ctx context.Context, clientID int, req UpdateClientRequest) (*ClientResponse, error) {
	update := s.client.Company.UpdateOneID(clientID)
	if req.CompanyName != nil {
		update.SetCompanyName(*req.CompanyName)
	}
	if req.Industry != nil {
		update.SetIndustry(*req.Industry)
	}
	if req.Status != nil {
		update.SetStatus(company.Status(*req.Status))
	}
	if req.SalesPersonID != nil {
		update.SetSalesPersonID(*req.SalesPersonID)
	}

	record, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	account, err := s.client.User.Get(ctx, record.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client account: %w", err)
	}

	return toResponse(record, account), nil
}

// DeleteClient soft-deletes the user account backing a client. The client
// row stays for history but disappears from default listings.
func (s *Service) DeleteClient(ctx context.Context, clientID int) error {
	record, err := s.client.Company.Get(ctx, clientID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("client not found")
		}
		return fmt.Errorf("failed to get client: %w", err)
	}

	_, err = s.client.User.UpdateOneID(record.UserID).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete client account: %w", err)
	}

	return nil
}

func toResponse(record *ent.Company, account *ent.User) *ClientResponse {
	return &ClientResponse{
		ID:            record.ID,
		UserID:        account.ID,
		FullName:      account.FullName,
		Email:         account.Email,
		Phone:         account.Phone,
		CompanyName:   record.CompanyName,
		Industry:      record.Industry,
		Status:        string(record.Status),
		SalesPersonID: record.SalesPersonID,
		HasPassword:   account.PasswordHash != "",
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
