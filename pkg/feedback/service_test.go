package feedback

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/enttest"
	"github.com/agencydesk/agencydesk/ent/submission"
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

func createCompany(t *testing.T, client *ent.Client, suffix string) (*ent.Company, *ent.User) {
	ctx := context.Background()
	sales := createUser(t, client, "sales"+suffix, user.RoleSales)
	account := createUser(t, client, "client"+suffix, user.RoleClient)
	c, err := client.Company.Create().
		SetUserID(account.ID).
		SetCompanyName("Acme " + suffix).
		SetSalesPersonID(sales.ID).
		Save(ctx)
	require.NoError(t, err)
	return c, account
}

func createSubmission(t *testing.T, client *ent.Client, companyID, employeeID int, status submission.Status) *ent.Submission {
	ctx := context.Background()
	r, err := client.Requirement.Create().
		SetRequirementNumber(fmt.Sprintf("REQ-%d", companyID)).
		SetRequirementName("Website revamp").
		SetClientID(companyID).
		Save(ctx)
	require.NoError(t, err)

	task, err := client.Task.Create().
		SetTaskNumber(fmt.Sprintf("TSK-%d", companyID)).
		SetTitle("Design homepage").
		SetRequirementID(r.ID).
		Save(ctx)
	require.NoError(t, err)

	sub, err := client.Submission.Create().
		SetSubmissionNumber(fmt.Sprintf("SUB-%d", companyID)).
		SetTitle("Homepage v1").
		SetTaskID(task.ID).
		SetRequirementID(r.ID).
		SetClientID(companyID).
		SetSubmittedBy(employeeID).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return sub
}

func TestCreateFeedback_SentimentFromRating(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c, account := createCompany(t, client, "a")

	cases := []struct {
		rating    int
		sentiment string
	}{
		{5, "positive"},
		{4, "positive"},
		{3, "neutral"},
		{2, "neutral"},
		{1, "negative"},
	}
	for _, tc := range cases {
		f, err := service.CreateFeedback(context.Background(), account.ID, CreateFeedbackRequest{
			ClientID: c.ID,
			Rating:   tc.rating,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.sentiment, f.Sentiment, "rating %d", tc.rating)
	}
}

func TestCreateFeedback_UnknownClient(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	account := createUser(t, client, "author", user.RoleClient)

	_, err := service.CreateFeedback(context.Background(), account.ID, CreateFeedbackRequest{
		ClientID: 9999,
		Rating:   5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client not found")
}

func TestCreateFeedback_SubmissionMustBeApproved(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c, account := createCompany(t, client, "a")
	employee := createUser(t, client, "emp", user.RoleEmployee)
	pending := createSubmission(t, client, c.ID, employee.ID, submission.StatusPending)

	_, err := service.CreateFeedback(context.Background(), account.ID, CreateFeedbackRequest{
		ClientID:     c.ID,
		SubmissionID: pending.ID,
		Rating:       5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "approved submissions")
}

func TestCreateFeedback_SubmissionMustBelongToClient(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c1, account1 := createCompany(t, client, "a")
	c2, _ := createCompany(t, client, "b")
	employee := createUser(t, client, "emp", user.RoleEmployee)
	otherSub := createSubmission(t, client, c2.ID, employee.ID, submission.StatusApproved)

	_, err := service.CreateFeedback(context.Background(), account1.ID, CreateFeedbackRequest{
		ClientID:     c1.ID,
		SubmissionID: otherSub.ID,
		Rating:       4,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
}

func TestCreateFeedback_ApprovedSubmission(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c, account := createCompany(t, client, "a")
	employee := createUser(t, client, "emp", user.RoleEmployee)
	approved := createSubmission(t, client, c.ID, employee.ID, submission.StatusApproved)

	f, err := service.CreateFeedback(context.Background(), account.ID, CreateFeedbackRequest{
		ClientID:     c.ID,
		SubmissionID: approved.ID,
		Rating:       5,
		Comment:      "Great work",
		IsPublic:     true,
	})
	require.NoError(t, err)
	require.NotNil(t, f.SubmissionID)
	assert.Equal(t, approved.ID, *f.SubmissionID)
	assert.True(t, f.IsPublic)
}

func TestListFeedback_PublicOnly(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c, account := createCompany(t, client, "a")

	_, err := service.CreateFeedback(context.Background(), account.ID, CreateFeedbackRequest{
		ClientID: c.ID, Rating: 5, IsPublic: true,
	})
	require.NoError(t, err)
	_, err = service.CreateFeedback(context.Background(), account.ID, CreateFeedbackRequest{
		ClientID: c.ID, Rating: 2, Comment: "Internal grumbling",
	})
	require.NoError(t, err)

	all, err := service.ListFeedback(context.Background(), c.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	public, err := service.ListFeedback(context.Background(), c.ID, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.True(t, public[0].IsPublic)
}

func TestAverageRating(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c, account := createCompany(t, client, "a")

	avg, count, err := service.AverageRating(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.Zero(t, count)

	for _, rating := range []int{5, 4, 3} {
		_, err := service.CreateFeedback(context.Background(), account.ID, CreateFeedbackRequest{
			ClientID: c.ID, Rating: rating,
		})
		require.NoError(t, err)
	}

	avg, count, err = service.AverageRating(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.InDelta(t, 4.0, avg, 0.001)
}
