package queries

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/enttest"
	"github.com/agencydesk/agencydesk/ent/user"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	return NewService(client), client
}

func createUser(t *testing.T, client *ent.Client, name string, role user.Role) *ent.User {
	u, err := client.User.Create().
		SetFullName(name).
		SetUsername(name).
		SetEmail(name + "@example.com").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// createTaskFixture builds the minimum chain a thread needs: a client
// company, a requirement and one task under it.
func createTaskFixture(t *testing.T, client *ent.Client) *ent.Task {
	ctx := context.Background()
	sales := createUser(t, client, "sales", user.RoleSales)
	account := createUser(t, client, "client", user.RoleClient)

	c, err := client.Company.Create().
		SetUserID(account.ID).
		SetCompanyName("Acme Ltd").
		SetSalesPersonID(sales.ID).
		Save(ctx)
	require.NoError(t, err)

	r, err := client.Requirement.Create().
		SetRequirementNumber("REQ-0001").
		SetRequirementName("Website revamp").
		SetClientID(c.ID).
		Save(ctx)
	require.NoError(t, err)

	task, err := client.Task.Create().
		SetTaskNumber("TSK-0001").
		SetTitle("Design homepage").
		SetRequirementID(r.ID).
		Save(ctx)
	require.NoError(t, err)
	return task
}

func TestCreateQuery(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	task := createTaskFixture(t, client)
	creator := createUser(t, client, "emp", user.RoleEmployee)

	q, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Which logo variant?",
	})
	require.NoError(t, err)

	assert.Equal(t, "QRY-0001", q.QueryNumber)
	assert.Equal(t, "active", q.Status)
	assert.Equal(t, []int{creator.ID}, q.Participants)
	assert.Nil(t, q.LastMessageAt)

	q2, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Font licensing",
	})
	require.NoError(t, err)
	assert.Equal(t, "QRY-0002", q2.QueryNumber)
}

func TestCreateQuery_UnknownTask(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	creator := createUser(t, client, "emp", user.RoleEmployee)

	_, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: 9999,
		Title:  "Orphan thread",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task not found")
}

func TestSendMessage_UpdatesThreadSummary(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	task := createTaskFixture(t, client)
	creator := createUser(t, client, "emp", user.RoleEmployee)

	q, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Which logo variant?",
	})
	require.NoError(t, err)

	m, err := service.SendMessage(context.Background(), creator.ID, q.ID, SendMessageRequest{
		Content: "I would go with the dark one.",
	})
	require.NoError(t, err)
	assert.False(t, m.IsEdited)

	updated, err := service.GetQuery(context.Background(), q.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastMessageAt)
	assert.Equal(t, "I would go with the dark one.", updated.LastMessagePreview)
}

func TestSendMessage_SenderJoinsParticipants(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	task := createTaskFixture(t, client)
	creator := createUser(t, client, "emp", user.RoleEmployee)
	other := createUser(t, client, "emp2", user.RoleEmployee)

	q, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Which logo variant?",
	})
	require.NoError(t, err)

	_, err = service.SendMessage(context.Background(), other.ID, q.ID, SendMessageRequest{Content: "First reply"})
	require.NoError(t, err)
	_, err = service.SendMessage(context.Background(), other.ID, q.ID, SendMessageRequest{Content: "Second reply"})
	require.NoError(t, err)

	updated, err := service.GetQuery(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{creator.ID, other.ID}, updated.Participants)
}

func TestSendMessage_PreviewTruncatesRunes(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	task := createTaskFixture(t, client)
	creator := createUser(t, client, "emp", user.RoleEmployee)

	q, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Long message",
	})
	require.NoError(t, err)

	content := strings.Repeat("é", 200)
	_, err = service.SendMessage(context.Background(), creator.ID, q.ID, SendMessageRequest{Content: content})
	require.NoError(t, err)

	updated, err := service.GetQuery(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, len([]rune(updated.LastMessagePreview)))
	assert.Equal(t, strings.Repeat("é", 120), updated.LastMessagePreview)
}

func TestEditMessage(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	task := createTaskFixture(t, client)
	creator := createUser(t, client, "emp", user.RoleEmployee)

	q, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Which logo variant?",
	})
	require.NoError(t, err)

	m, err := service.SendMessage(context.Background(), creator.ID, q.ID, SendMessageRequest{Content: "Typo herre"})
	require.NoError(t, err)

	edited, err := service.EditMessage(context.Background(), creator.ID, m.ID, EditMessageRequest{Content: "Typo here"})
	require.NoError(t, err)
	assert.True(t, edited.IsEdited)
	assert.Equal(t, "Typo here", edited.Content)

	// Editing the latest message refreshes the thread preview.
	updated, err := service.GetQuery(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Typo here", updated.LastMessagePreview)
}

func TestEditMessage_OnlySender(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	task := createTaskFixture(t, client)
	creator := createUser(t, client, "emp", user.RoleEmployee)
	other := createUser(t, client, "emp2", user.RoleEmployee)

	q, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Which logo variant?",
	})
	require.NoError(t, err)

	m, err := service.SendMessage(context.Background(), creator.ID, q.ID, SendMessageRequest{Content: "Original"})
	require.NoError(t, err)

	_, err = service.EditMessage(context.Background(), other.ID, m.ID, EditMessageRequest{Content: "Hijacked"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only the sender")
}

func TestEditMessage_OlderMessageKeepsPreview(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	task := createTaskFixture(t, client)
	creator := createUser(t, client, "emp", user.RoleEmployee)

	q, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Which logo variant?",
	})
	require.NoError(t, err)

	first, err := service.SendMessage(context.Background(), creator.ID, q.ID, SendMessageRequest{Content: "First"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = service.SendMessage(context.Background(), creator.ID, q.ID, SendMessageRequest{Content: "Second"})
	require.NoError(t, err)

	_, err = service.EditMessage(context.Background(), creator.ID, first.ID, EditMessageRequest{Content: "First, edited"})
	require.NoError(t, err)

	updated, err := service.GetQuery(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second", updated.LastMessagePreview)
}

func TestSetStatus_ResolveAndReopen(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	task := createTaskFixture(t, client)
	creator := createUser(t, client, "emp", user.RoleEmployee)

	q, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Which logo variant?",
	})
	require.NoError(t, err)

	resolved, err := service.SetStatus(context.Background(), q.ID, "resolved")
	require.NoError(t, err)
	assert.Equal(t, "resolved", resolved.Status)

	reopened, err := service.SetStatus(context.Background(), q.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, "active", reopened.Status)

	_, err = service.SetStatus(context.Background(), q.ID, "archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query status")
}

func TestListMessages_OrderAndPaging(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	task := createTaskFixture(t, client)
	creator := createUser(t, client, "emp", user.RoleEmployee)

	q, err := service.CreateQuery(context.Background(), creator.ID, CreateQueryRequest{
		TaskID: task.ID,
		Title:  "Which logo variant?",
	})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		_, err := service.SendMessage(context.Background(), creator.ID, q.ID, SendMessageRequest{
			Content: fmt.Sprintf("Message %d", i),
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	all, err := service.ListMessages(context.Background(), q.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Message 1", all[0].Content)
	assert.Equal(t, "Message 3", all[2].Content)

	page, err := service.ListMessages(context.Background(), q.ID, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Message 2", page[0].Content)
}
