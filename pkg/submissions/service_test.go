package submissions

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/enttest"
	"github.com/agencydesk/agencydesk/ent/user"
	"github.com/agencydesk/agencydesk/pkg/email"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	emailService := email.NewService("noreply@example.com", "AgencyDesk", "http://localhost:3000", "")
	return NewService(client, emailService), client
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

type fixture struct {
	clientUser *ent.User
	company    *ent.Company
	task       *ent.Task
	employee   *ent.User
}

func createFixture(t *testing.T, client *ent.Client) fixture {
	ctx := context.Background()
	sales := createUser(t, client, "sales", user.RoleSales)
	account := createUser(t, client, "client", user.RoleClient)
	employee := createUser(t, client, "emp", user.RoleEmployee)

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

	return fixture{clientUser: account, company: c, task: task, employee: employee}
}

func TestCreateSubmission(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	sub, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:        "Homepage v1",
		TaskID:       f.task.ID,
		Deliverables: []string{"https://example.com/mock.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, "SUB-0001", sub.SubmissionNumber)
	assert.Equal(t, "pending", sub.Status)
	assert.Equal(t, f.task.ID, sub.TaskID)
	// Requirement and client come from the task, not from the request.
	assert.Equal(t, f.task.RequirementID, sub.RequirementID)
	assert.Equal(t, f.company.ID, sub.ClientID)
	assert.Equal(t, f.employee.ID, sub.SubmittedBy)

	sub2, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1.1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "SUB-0002", sub2.SubmissionNumber)
}

func TestCreateSubmission_UnknownTask(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	_, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Orphan",
		TaskID: 9999,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task not found")
}

func TestStartReview(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	sub, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)

	reviewing, err := service.StartReview(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "under_review", reviewing.Status)

	// Already under review: a second start is rejected.
	_, err = service.StartReview(context.Background(), sub.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only pending submissions")
}

func TestReview_Approve(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	sub, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)

	reviewed, err := service.Review(context.Background(), f.clientUser.ID, sub.ID, ReviewRequest{
		Status: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, f.clientUser.ID, *reviewed.ReviewedBy)
	assert.NotNil(t, reviewed.ReviewedAt)

	// Verdicts are final.
	_, err = service.Review(context.Background(), f.clientUser.ID, sub.ID, ReviewRequest{
		Status:      "rejected",
		ReviewNotes: "Changed my mind",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already been reviewed")
}

func TestReview_RequiresNotesUnlessApproving(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	sub, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)

	_, err = service.Review(context.Background(), f.clientUser.ID, sub.ID, ReviewRequest{
		Status: "rejected",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "review notes are required")
}

func TestReview_ChangesRequestedNeedsChanges(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	sub, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)

	_, err = service.Review(context.Background(), f.clientUser.ID, sub.ID, ReviewRequest{
		Status:      "changes_requested",
		ReviewNotes: "Close, but not there yet",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one requested change")

	reviewed, err := service.Review(context.Background(), f.clientUser.ID, sub.ID, ReviewRequest{
		Status:           "changes_requested",
		ReviewNotes:      "Close, but not there yet",
		RequestedChanges: []string{"Swap hero image", "Darken the footer"},
	})
	require.NoError(t, err)
	require.Len(t, reviewed.RequestedChanges, 2)
	assert.Equal(t, "Swap hero image", reviewed.RequestedChanges[0].Description)
	assert.False(t, reviewed.RequestedChanges[0].Completed)
	assert.NotEmpty(t, reviewed.RequestedChanges[0].ID)
}

func TestReview_OnlyOwningClientOrSuperadmin(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)
	stranger := createUser(t, client, "stranger", user.RoleClient)
	admin := createUser(t, client, "admin", user.RoleSuperadmin)

	sub, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)

	// The employee who built it cannot review it.
	_, err = service.Review(context.Background(), f.employee.ID, sub.ID, ReviewRequest{Status: "approved"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only the owning client")

	// Another client's user cannot either.
	_, err = service.Review(context.Background(), stranger.ID, sub.ID, ReviewRequest{Status: "approved"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only the owning client")

	// A superadmin can review on the client's behalf.
	reviewed, err := service.Review(context.Background(), admin.ID, sub.ID, ReviewRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", reviewed.Status)
}

func TestResubmission(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	first, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)

	// Cannot resubmit against a submission that is still open.
	_, err = service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:          "Homepage v2",
		TaskID:         f.task.ID,
		ResubmissionOf: first.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can be resubmitted")

	_, err = service.Review(context.Background(), f.clientUser.ID, first.ID, ReviewRequest{
		Status:      "rejected",
		ReviewNotes: "Wrong direction entirely",
	})
	require.NoError(t, err)

	second, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:          "Homepage v2",
		TaskID:         f.task.ID,
		ResubmissionOf: first.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", second.Status)
	require.NotNil(t, second.ResubmissionOf)
	assert.Equal(t, first.ID, *second.ResubmissionOf)
}

func TestResubmission_MustTargetSameTask(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	otherTask, err := client.Task.Create().
		SetTaskNumber("TSK-0002").
		SetTitle("Design footer").
		SetRequirementID(f.task.RequirementID).
		Save(context.Background())
	require.NoError(t, err)

	first, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)

	_, err = service.Review(context.Background(), f.clientUser.ID, first.ID, ReviewRequest{
		Status:      "rejected",
		ReviewNotes: "Wrong direction",
	})
	require.NoError(t, err)

	_, err = service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:          "Footer v1",
		TaskID:         otherTask.ID,
		ResubmissionOf: first.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same task")
}

func TestToggleRequestedChange(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	sub, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)

	reviewed, err := service.Review(context.Background(), f.clientUser.ID, sub.ID, ReviewRequest{
		Status:           "changes_requested",
		ReviewNotes:      "Two fixes needed",
		RequestedChanges: []string{"Swap hero image", "Darken the footer"},
	})
	require.NoError(t, err)

	changeID := reviewed.RequestedChanges[0].ID

	toggled, err := service.ToggleRequestedChange(context.Background(), sub.ID, changeID)
	require.NoError(t, err)
	assert.True(t, toggled.RequestedChanges[0].Completed)
	assert.False(t, toggled.RequestedChanges[1].Completed)

	back, err := service.ToggleRequestedChange(context.Background(), sub.ID, changeID)
	require.NoError(t, err)
	assert.False(t, back.RequestedChanges[0].Completed)

	_, err = service.ToggleRequestedChange(context.Background(), sub.ID, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requested change not found")
}

func TestListSubmissions_Filters(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	f := createFixture(t, client)

	first, err := service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v1",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)
	_, err = service.CreateSubmission(context.Background(), f.employee.ID, CreateSubmissionRequest{
		Title:  "Homepage v2",
		TaskID: f.task.ID,
	})
	require.NoError(t, err)

	_, err = service.Review(context.Background(), f.clientUser.ID, first.ID, ReviewRequest{Status: "approved"})
	require.NoError(t, err)

	all, err := service.ListSubmissions(context.Background(), f.company.ID, 0, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := service.ListSubmissions(context.Background(), 0, 0, "approved")
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)

	none, err := service.ListSubmissions(context.Background(), 9999, 0, "")
	require.NoError(t, err)
	assert.Empty(t, none)
}
