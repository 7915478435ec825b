package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/enttest"
	"github.com/agencydesk/agencydesk/ent/user"
	"github.com/agencydesk/agencydesk/pkg/auth"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	return NewService(client), client
}

func validCreateRequest() CreateUserRequest {
	return CreateUserRequest{
		FullName: "Dana Rivera",
		Username: "dana.rivera",
		Email:    "dana@example.com",
		Role:     "employee",
		Password: "correct-horse-battery",
	}
}

func TestCreateUser(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	resp, err := service.CreateUser(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "employee", resp.Role)
	assert.True(t, resp.IsActive)

	// The stored hash verifies against the original password.
	stored, err := client.User.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.PasswordHash, "correct-horse-battery"))
}

func TestCreateUser_NormalizesEmail(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	req := validCreateRequest()
	req.Email = "  Dana@Example.com "
	resp, err := service.CreateUser(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", resp.Email)
}

func TestCreateUser_DuplicateEmailAndUsername(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	_, err := service.CreateUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Username = "other.handle"
	_, err = service.CreateUser(context.Background(), dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already in use")

	dup = validCreateRequest()
	dup.Email = "other@example.com"
	_, err = service.CreateUser(context.Background(), dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already in use")
}

func TestDeleteUser_FreesEmailForReuse(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	first, err := service.CreateUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(context.Background(), first.ID))

	// The soft-deleted row no longer blocks the email or username.
	second, err := service.CreateUser(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// Deleted users disappear from reads and are marked inactive.
	_, err = service.GetUser(context.Background(), first.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")

	row, err := client.User.Get(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, row.IsActive)
	assert.NotNil(t, row.DeletedAt)

	err = service.DeleteUser(context.Background(), first.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}

func TestUpdateUser(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	created, err := service.CreateUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	inactive := false
	updated, err := service.UpdateUser(context.Background(), created.ID, UpdateUserRequest{
		FullName: "Dana R. Rivera",
		Role:     "sales",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana R. Rivera", updated.FullName)
	assert.Equal(t, "sales", updated.Role)
	assert.False(t, updated.IsActive)

	// Untouched fields survive a partial update.
	assert.Equal(t, created.Email, updated.Email)

	_, err = service.UpdateUser(context.Background(), 9999, UpdateUserRequest{FullName: "Nobody"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}

func TestListUsers_RoleFilter(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	for i, role := range []string{"employee", "sales", "sales"} {
		req := validCreateRequest()
		req.Username = fmt.Sprintf("user%d", i)
		req.Email = fmt.Sprintf("user%d@example.com", i)
		req.Role = role
		_, err := service.CreateUser(context.Background(), req)
		require.NoError(t, err)
	}

	all, err := service.ListUsers(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	sales, err := service.ListUsers(context.Background(), string(user.RoleSales))
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}
