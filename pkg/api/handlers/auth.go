package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/agencydesk/agencydesk/config"
	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/user"
	"github.com/agencydesk/agencydesk/pkg/api/errors"
	"github.com/agencydesk/agencydesk/pkg/auth"
	"github.com/agencydesk/agencydesk/pkg/email"
	"github.com/agencydesk/agencydesk/pkg/metrics"
	"github.com/agencydesk/agencydesk/pkg/models"
	"github.com/agencydesk/agencydesk/pkg/notify"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db           *ent.Client
	config       *config.Config
	tokens       *auth.Manager
	blacklist    *auth.TokenBlacklist
	emailService *email.Service
	webhook      *notify.WebhookService
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewAuthHandler creates a new auth handler. metrics may be nil.
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, emailService *email.Service, webhook *notify.WebhookService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:           db,
		config:       cfg,
		tokens:       auth.NewManager(cfg.JWTSecret, cfg.JWTExpirationHours),
		blacklist:    blacklist,
		emailService: emailService,
		webhook:      webhook,
		metrics:      m,
		validator:    validator.New(),
	}
}

// ClientAccess godoc
// @Summary Check client portal access
// @Description Report whether an email belongs to a login-ready client account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ClientAccessRequest true "Email to check"
// @Success 200 {object} models.ClientAccessResponse "Account state"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /auth/client-access [post]
func (h *AuthHandler) ClientAccess(c echo.Context) error {
	var req models.ClientAccessRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.EmailEQ(normalizeEmail(req.Email)), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusOK, models.ClientAccessResponse{})
		}
		return errors.DatabaseError(c, err)
	}

	// Non-client accounts get the same empty answer as unknown emails, the
	// portal check must not leak staff account state.
	if u.Role != user.RoleClient {
		return c.JSON(http.StatusOK, models.ClientAccessResponse{})
	}

	return c.JSON(http.StatusOK, models.ClientAccessResponse{
		Exists:      true,
		IsClient:    true,
		HasPassword: u.PasswordHash != "",
	})
}

// RequestMagicLink godoc
// @Summary Request a password setup link
// @Description Issue a one-time magic link for a client account without a password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.MagicLinkRequest true "Client email"
// @Success 200 {object} models.SuccessResponse "Link issued"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 403 {object} models.ErrorResponse "Account is not eligible for magic links"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Link delivery failed"
// @Router /auth/magic-link [post]
func (h *AuthHandler) RequestMagicLink(c echo.Context) error {
	var req models.MagicLinkRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(
			user.EmailEQ(normalizeEmail(req.Email)),
			user.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "User")
		}
		return errors.DatabaseError(c, err)
	}

	if u.Role != user.RoleClient {
		return errors.ForbiddenError(c, "Magic links are only available for client accounts")
	}
	if !u.IsActive {
		return errors.ForbiddenError(c, "Account is deactivated")
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return errors.InternalError(c, err)
	}

	// Only the hash is stored; a fresh request invalidates any earlier link.
	expiresAt := time.Now().Add(time.Duration(h.config.MagicLinkTTLMinutes) * time.Minute)
	_, err = h.db.User.UpdateOneID(u.ID).
		SetMagicLinkToken(auth.HashToken(token)).
		SetMagicLinkExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordMagicLinkIssued()
	}

	link := fmt.Sprintf("%s/set-password/%s", h.config.FrontendURL, token)

	// Delivery is the point of the endpoint, so a webhook failure fails the
	// request instead of leaving the caller with a dead link.
	if err := h.webhook.SendMagicLink(ctx, u.Email, link); err != nil {
		log.Printf("⚠️  Magic link webhook failed for %s: %v", u.Email, err)
		return errors.InternalError(c, fmt.Errorf("failed to deliver magic link"))
	}

	// The email copy stays best-effort.
	go func() {
		if err := h.emailService.SendMagicLinkEmail(u.Email, u.FullName, token); err != nil {
			log.Printf("⚠️  Failed to send magic link email: %v", err)
		}
	}()

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Magic link sent",
	})
}

// VerifyMagicLink godoc
// @Summary Verify a magic-link token
// @Description Check whether a magic-link token is still usable
// @Tags Authentication
// @Produce json
// @Param token path string true "Magic link token"
// @Success 200 {object} models.VerifyTokenResponse "Verification result"
// @Router /auth/magic-link/{token} [get]
func (h *AuthHandler) VerifyMagicLink(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return errors.BadRequestError(c, "Token is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.MagicLinkTokenEQ(auth.HashToken(token)), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusOK, models.VerifyTokenResponse{Valid: false, Reason: "invalid"})
		}
		return errors.DatabaseError(c, err)
	}

	if u.MagicLinkExpiresAt == nil || time.Now().After(*u.MagicLinkExpiresAt) {
		return c.JSON(http.StatusOK, models.VerifyTokenResponse{Valid: false, Reason: "expired"})
	}

	return c.JSON(http.StatusOK, models.VerifyTokenResponse{Valid: true})
}

// SetPassword godoc
// @Summary Set password via magic link
// @Description Consume a one-time magic-link token and set the account password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SetPasswordRequest true "Token and new password"
// @Success 200 {object} models.AuthResponse "Password set, session started"
// @Failure 400 {object} models.ErrorResponse "Invalid or expired token"
// @Router /auth/set-password [post]
func (h *AuthHandler) SetPassword(c echo.Context) error {
	var req models.SetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.MagicLinkTokenEQ(auth.HashToken(req.Token)), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.BadRequestError(c, "Invalid or expired token")
		}
		return errors.DatabaseError(c, err)
	}

	if u.MagicLinkExpiresAt == nil || time.Now().After(*u.MagicLinkExpiresAt) {
		return errors.BadRequestError(c, "Invalid or expired token")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return errors.InternalError(c, err)
	}

	// Consuming the token clears it, the link is single use.
	updated, err := h.db.User.UpdateOneID(u.ID).
		SetPasswordHash(hash).
		ClearMagicLinkToken().
		ClearMagicLinkExpiresAt().
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	token, err := h.tokens.Generate(updated.ID, updated.Email, string(updated.Role))
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  toUserInfo(updated),
	})
}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password, returns JWT token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.EmailEQ(normalizeEmail(req.Email)), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			h.recordLogin(false)
			return errors.UnauthorizedError(c, "Invalid email or password")
		}
		return errors.DatabaseError(c, err)
	}

	if u.PasswordHash == "" || !auth.CheckPassword(u.PasswordHash, req.Password) {
		h.recordLogin(false)
		return errors.UnauthorizedError(c, "Invalid email or password")
	}

	if !u.IsActive {
		h.recordLogin(false)
		return errors.ForbiddenError(c, "Account is deactivated")
	}

	token, err := h.tokens.Generate(u.ID, u.Email, string(u.Role))
	if err != nil {
		return errors.InternalError(c, err)
	}

	h.recordLogin(true)

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  toUserInfo(u),
	})
}

// Logout revokes the current JWT token
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return errors.UnauthorizedError(c, "No token found in request")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Blacklist TTL matches the JWT lifetime.
	expiration := time.Duration(h.config.JWTExpirationHours) * time.Hour
	if err := h.blacklist.Add(ctx, token, expiration); err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Successfully logged out"})
}

// Me returns the current user's information
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "Unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.ID(userID), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "User")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toUserInfo(u))
}

func (h *AuthHandler) recordLogin(success bool) {
	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(success)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(u *ent.User) *models.UserInfo {
	return &models.UserInfo{
		ID:       u.ID,
		FullName: u.FullName,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}
