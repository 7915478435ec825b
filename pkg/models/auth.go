package models

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ClientAccessRequest asks whether an email belongs to a login-ready client account
type ClientAccessRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ClientAccessResponse reports client account state without leaking other roles
type ClientAccessResponse struct {
	Exists      bool `json:"exists"`
	IsClient    bool `json:"is_client"`
	HasPassword bool `json:"has_password"`
}

// MagicLinkRequest represents a magic-link request
type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SetPasswordRequest sets the password behind a valid magic-link token
type SetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// VerifyTokenResponse is the structured (non-error) result of token verification
type VerifyTokenResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"` // "invalid" or "expired"
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo represents user information in responses, never the password hash
type UserInfo struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}
