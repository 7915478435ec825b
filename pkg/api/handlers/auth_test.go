package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/config"
	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/enttest"
	"github.com/agencydesk/agencydesk/ent/user"
	"github.com/agencydesk/agencydesk/pkg/auth"
	"github.com/agencydesk/agencydesk/pkg/cache"
	"github.com/agencydesk/agencydesk/pkg/email"
	"github.com/agencydesk/agencydesk/pkg/models"
	"github.com/agencydesk/agencydesk/pkg/notify"

	_ "github.com/mattn/go-sqlite3"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:           "test-secret",
		JWTExpirationHours:  24,
		MagicLinkTTLMinutes: 15,
		FrontendURL:         "http://localhost:3000",
	}
}

func setupAuthHandler(t *testing.T) (*AuthHandler, *ent.Client) {
	return setupAuthHandlerWithWebhook(t, "")
}

func setupAuthHandlerWithWebhook(t *testing.T, webhookURL string) (*AuthHandler, *ent.Client) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db := enttest.Open(t, "sqlite3", dsn)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	blacklist := auth.NewTokenBlacklist(cache.NewClientFromRedis(redisClient))

	emailService := email.NewService("noreply@example.com", "AgencyDesk", "http://localhost:3000", "")
	webhook := notify.NewWebhookService(webhookURL)

	return NewAuthHandler(db, testConfig(), blacklist, emailService, webhook, nil), db
}

func postJSON(t *testing.T, e *echo.Echo, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(payload)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func createClientUser(t *testing.T, db *ent.Client, email string, passwordHash string) *ent.User {
	u, err := db.User.Create().
		SetFullName("Acme Owner").
		SetUsername(email).
		SetEmail(email).
		SetRole(user.RoleClient).
		SetPasswordHash(passwordHash).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestClientAccess(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	createClientUser(t, db, "owner@acme.com", "")

	c, rec := postJSON(t, e, "/api/v1/auth/client-access", models.ClientAccessRequest{Email: "Owner@Acme.com"})
	require.NoError(t, h.ClientAccess(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ClientAccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)
	assert.True(t, resp.IsClient)
	assert.False(t, resp.HasPassword)

	// Unknown accounts come back all-false rather than erroring.
	c, rec = postJSON(t, e, "/api/v1/auth/client-access", models.ClientAccessRequest{Email: "nobody@acme.com"})
	require.NoError(t, h.ClientAccess(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
}

func TestClientAccess_StaffAccountStaysHidden(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	_, err := db.User.Create().
		SetFullName("Sam Staff").
		SetUsername("sam").
		SetEmail("sam@agency.com").
		SetRole(user.RoleEmployee).
		SetPasswordHash("$2a$10$something").
		Save(context.Background())
	require.NoError(t, err)

	c, rec := postJSON(t, e, "/api/v1/auth/client-access", models.ClientAccessRequest{Email: "sam@agency.com"})
	require.NoError(t, h.ClientAccess(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// A staff email answers exactly like an unknown one.
	var resp models.ClientAccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
	assert.False(t, resp.IsClient)
	assert.False(t, resp.HasPassword)
}

func TestRequestMagicLink_StoresHashedToken(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	u := createClientUser(t, db, "owner@acme.com", "")

	c, rec := postJSON(t, e, "/api/v1/auth/magic-link", models.MagicLinkRequest{Email: "owner@acme.com"})
	require.NoError(t, h.RequestMagicLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	row, err := db.User.Get(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, row.MagicLinkToken)
	// Stored value is a sha256 hex digest, never the raw token.
	assert.Len(t, *row.MagicLinkToken, 64)
	require.NotNil(t, row.MagicLinkExpiresAt)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), *row.MagicLinkExpiresAt, time.Minute)
}

func TestRequestMagicLink_UnknownEmail(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	c, rec := postJSON(t, e, "/api/v1/auth/magic-link", models.MagicLinkRequest{Email: "nobody@acme.com"})
	require.NoError(t, h.RequestMagicLink(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestMagicLink_RejectsNonClientAccounts(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	staff, err := db.User.Create().
		SetFullName("Sam Staff").
		SetUsername("sam").
		SetEmail("sam@agency.com").
		SetRole(user.RoleEmployee).
		SetPasswordHash("$2a$10$something").
		Save(context.Background())
	require.NoError(t, err)

	c, rec := postJSON(t, e, "/api/v1/auth/magic-link", models.MagicLinkRequest{Email: "sam@agency.com"})
	require.NoError(t, h.RequestMagicLink(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No link state was written for the staff account.
	row, err := db.User.Get(context.Background(), staff.ID)
	require.NoError(t, err)
	assert.Nil(t, row.MagicLinkToken)
}

func TestRequestMagicLink_WebhookDelivery(t *testing.T) {
	var got struct {
		Email string `json:"email"`
		Link  string `json:"link"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h, db := setupAuthHandlerWithWebhook(t, server.URL)
	defer db.Close()
	e := echo.New()

	createClientUser(t, db, "owner@acme.com", "")

	c, rec := postJSON(t, e, "/api/v1/auth/magic-link", models.MagicLinkRequest{Email: "owner@acme.com"})
	require.NoError(t, h.RequestMagicLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "owner@acme.com", got.Email)
	assert.Contains(t, got.Link, "http://localhost:3000/set-password/")
}

func TestRequestMagicLink_WebhookFailureSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	h, db := setupAuthHandlerWithWebhook(t, server.URL)
	defer db.Close()
	e := echo.New()

	createClientUser(t, db, "owner@acme.com", "")

	// A broken delivery endpoint must fail the request, not hand back a 200.
	c, rec := postJSON(t, e, "/api/v1/auth/magic-link", models.MagicLinkRequest{Email: "owner@acme.com"})
	require.NoError(t, h.RequestMagicLink(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// seedMagicLink stores a known token hash on the user, as RequestMagicLink
// would, and returns the raw token the link would carry.
func seedMagicLink(t *testing.T, db *ent.Client, userID int, ttl time.Duration) string {
	token, err := auth.GenerateToken()
	require.NoError(t, err)
	_, err = db.User.UpdateOneID(userID).
		SetMagicLinkToken(auth.HashToken(token)).
		SetMagicLinkExpiresAt(time.Now().Add(ttl)).
		Save(context.Background())
	require.NoError(t, err)
	return token
}

func TestVerifyMagicLink(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	u := createClientUser(t, db, "owner@acme.com", "")
	token := seedMagicLink(t, db, u.ID, 15*time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues(token)

	require.NoError(t, h.VerifyMagicLink(c))
	var resp models.VerifyTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)

	// Unknown token.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("token")
	c.SetParamValues("bogus")
	require.NoError(t, h.VerifyMagicLink(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Equal(t, "invalid", resp.Reason)
}

func TestVerifyMagicLink_Expired(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	u := createClientUser(t, db, "owner@acme.com", "")
	token := seedMagicLink(t, db, u.ID, -time.Minute)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("token")
	c.SetParamValues(token)

	require.NoError(t, h.VerifyMagicLink(c))
	var resp models.VerifyTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Equal(t, "expired", resp.Reason)
}

func TestSetPassword_ConsumesToken(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	u := createClientUser(t, db, "owner@acme.com", "")
	token := seedMagicLink(t, db, u.ID, 15*time.Minute)

	c, rec := postJSON(t, e, "/api/v1/auth/set-password", models.SetPasswordRequest{
		Token:    token,
		Password: "brand-new-password",
	})
	require.NoError(t, h.SetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, u.ID, resp.User.ID)

	// The session token is a valid JWT for this user.
	claims, err := auth.NewManager("test-secret", 24).Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	row, err := db.User.Get(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(row.PasswordHash, "brand-new-password"))
	assert.Nil(t, row.MagicLinkToken)

	// The link is single use.
	c, rec = postJSON(t, e, "/api/v1/auth/set-password", models.SetPasswordRequest{
		Token:    token,
		Password: "another-password",
	})
	require.NoError(t, h.SetPassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	hash, err := auth.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	u := createClientUser(t, db, "owner@acme.com", hash)

	c, rec := postJSON(t, e, "/api/v1/auth/login", models.LoginRequest{
		Email:    "owner@acme.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, u.Email, resp.User.Email)
}

func TestLogin_BadCredentials(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	hash, err := auth.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	createClientUser(t, db, "owner@acme.com", hash)

	c, rec := postJSON(t, e, "/api/v1/auth/login", models.LoginRequest{
		Email:    "owner@acme.com",
		Password: "wrong-password",
	})
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A passwordless account cannot log in, even with an empty password.
	createClientUser(t, db, "new@acme.com", "")
	c, rec = postJSON(t, e, "/api/v1/auth/login", models.LoginRequest{
		Email:    "new@acme.com",
		Password: "anything-at-all",
	})
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	hash, err := auth.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	u := createClientUser(t, db, "owner@acme.com", hash)
	_, err = db.User.UpdateOneID(u.ID).SetIsActive(false).Save(context.Background())
	require.NoError(t, err)

	c, rec := postJSON(t, e, "/api/v1/auth/login", models.LoginRequest{
		Email:    "owner@acme.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLogout_BlacklistsToken(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	token, err := auth.NewManager("test-secret", 24).Generate(1, "owner@acme.com", "client")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	c.Set("token", token)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	revoked, err := h.blacklist.IsBlacklisted(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMe(t *testing.T) {
	h, db := setupAuthHandler(t)
	defer db.Close()
	e := echo.New()

	u := createClientUser(t, db, "owner@acme.com", "")

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set("user_id", u.ID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, u.Email, resp.Email)
	assert.Equal(t, "client", resp.Role)
}
