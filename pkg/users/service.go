package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/user"
	"github.com/agencydesk/agencydesk/pkg/auth"
)

// Service handles staff user management.
type Service struct {
	client *ent.Client
}

// NewService creates a new user service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateUserRequest represents an admin creating a staff user.
type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"max=30"`
	Role     string `json:"role" validate:"required,oneof=admin sales employee"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateUserRequest updates a user's mutable fields.
type UpdateUserRequest struct {
	FullName string `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin sales employee"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UserResponse represents a user without credentials.
type UserResponse struct {
	ID        int       `json:"id"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUser creates a staff user. Email and username must be unique among
// non-deleted users; soft-deleted rows do not block reuse, so the check runs
// here rather than as a database constraint.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.client.User.Query().
		Where(user.EmailEQ(email), user.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("email already in use")
	}

	taken, err = s.client.User.Query().
		Where(user.UsernameEQ(req.Username), user.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("username already in use")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.client.User.Create().
		SetFullName(req.FullName).
		SetUsername(req.Username).
		SetEmail(email).
		SetPhone(req.Phone).
		SetRole(user.Role(req.Role)).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toResponse(u), nil
}

// GetUser loads one non-deleted user.
func (s *Service) GetUser(ctx context.Context, id int) (*UserResponse, error) {
	u, err := s.client.User.Query().
		Where(user.ID(id), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toResponse(u), nil
}

// ListUsers lists non-deleted users, optionally filtered by role.
func (s *Service) ListUsers(ctx context.Context, role string) ([]*UserResponse, error) {
	q := s.client.User.Query().
		Where(user.DeletedAtIsNil()).
		Order(ent.Asc(user.FieldFullName))
	if role != "" {
		q = q.Where(user.RoleEQ(user.Role(role)))
	}

	us, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]*UserResponse, len(us))
	for i, u := range us {
		responses[i] = toResponse(u)
	}
	return responses, nil
}

// UpdateUser updates profile fields, role and/or active flag.
func (s *Service) UpdateUser(ctx context.Context, id int, req UpdateUserRequest) (*UserResponse, error) {
	u, err := s.client.User.Query().
		Where(user.ID(id), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	update := u.Update()
	if req.FullName != "" {
		update.SetFullName(req.FullName)
	}
	if req.Phone != "" {
		update.SetPhone(req.Phone)
	}
	if req.Role != "" {
		update.SetRole(user.Role(req.Role))
	}
	if req.IsActive != nil {
		update.SetIsActive(*req.IsActive)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toResponse(updated), nil
}

// DeleteUser soft-deletes a user. The row stays for history; the email and
// username free up for reuse immediately.
func (s *Service) DeleteUser(ctx context.Context, id int) error {
	n, err := s.client.User.Update().
		Where(user.ID(id), user.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

func toResponse(u *ent.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
