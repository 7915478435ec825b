package leads

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/enttest"
	"github.com/agencydesk/agencydesk/ent/lead"
	"github.com/agencydesk/agencydesk/ent/leadactivity"
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

func createLead(t *testing.T, service *Service, createdBy int, name string) *LeadResponse {
	l, err := service.CreateLead(context.Background(), createdBy, CreateLeadRequest{Name: name})
	require.NoError(t, err)
	return l
}

func TestAssignLeads_CreatesAssignmentsAndActivities(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	sales := createUser(t, client, "sales", user.RoleSales)
	l1 := createLead(t, service, admin.ID, "Lead One")
	l2 := createLead(t, service, admin.ID, "Lead Two")

	created, err := service.AssignLeads(context.Background(), admin.ID, AssignLeadsRequest{
		LeadIDs:       []int{l1.ID, l2.ID},
		SalesPersonID: sales.ID,
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	// One "assigned" activity per new assignment row
	count, err := client.LeadActivity.Query().
		Where(leadactivity.TypeEQ(leadactivity.TypeAssigned)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAssignLeads_IdempotentPerSalesperson(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	sales := createUser(t, client, "sales", user.RoleSales)
	l := createLead(t, service, admin.ID, "Lead One")

	req := AssignLeadsRequest{LeadIDs: []int{l.ID}, SalesPersonID: sales.ID}

	first, err := service.AssignLeads(context.Background(), admin.ID, req)
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := service.AssignLeads(context.Background(), admin.ID, req)
	require.NoError(t, err)
	assert.Empty(t, second, "re-assigning the same salesperson is a no-op")

	count, err := client.LeadAssignment.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAssignLeads_AppendOnlyAcrossSalespeople(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	s1 := createUser(t, client, "sales1", user.RoleSales)
	s2 := createUser(t, client, "sales2", user.RoleSales)
	l := createLead(t, service, admin.ID, "Lead One")

	_, err := service.AssignLeads(context.Background(), admin.ID, AssignLeadsRequest{LeadIDs: []int{l.ID}, SalesPersonID: s1.ID})
	require.NoError(t, err)
	_, err = service.AssignLeads(context.Background(), admin.ID, AssignLeadsRequest{LeadIDs: []int{l.ID}, SalesPersonID: s2.ID})
	require.NoError(t, err)

	got, err := service.GetLead(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Len(t, got.Assignments, 2, "prior assignees keep their rows")
}

func TestAssignLeads_RejectsNonSalesAssignee(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	emp := createUser(t, client, "emp", user.RoleEmployee)
	l := createLead(t, service, admin.ID, "Lead One")

	_, err := service.AssignLeads(context.Background(), admin.ID, AssignLeadsRequest{
		LeadIDs:       []int{l.ID},
		SalesPersonID: emp.ID,
	})
	assert.ErrorContains(t, err, "sales role")
}

func TestAssignLeads_MissingLeadRollsBackWholeBatch(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	sales := createUser(t, client, "sales", user.RoleSales)
	l := createLead(t, service, admin.ID, "Lead One")

	_, err := service.AssignLeads(context.Background(), admin.ID, AssignLeadsRequest{
		LeadIDs:       []int{l.ID, 9999},
		SalesPersonID: sales.ID,
	})
	assert.Error(t, err)

	count, err := client.LeadAssignment.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "no partial assignments after a failed batch")
}

func TestUpdateLeadStatus_WritesActivityWithOldAndNew(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	l := createLead(t, service, admin.ID, "Lead One")

	updated, err := service.UpdateLeadStatus(context.Background(), admin.ID, l.ID, UpdateStatusRequest{
		Status: "contacted",
		Reason: "First call done",
	})
	require.NoError(t, err)
	assert.Equal(t, "contacted", updated.Status)

	activities, err := service.GetTimeline(context.Background(), l.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "status_change", activities[0].Type)
	assert.Equal(t, "new", activities[0].Metadata["old_status"])
	assert.Equal(t, "contacted", activities[0].Metadata["new_status"])
}

func TestUpdateLeadStatus_SameStatusIsNoOp(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	l := createLead(t, service, admin.ID, "Lead One")

	_, err := service.UpdateLeadStatus(context.Background(), admin.ID, l.ID, UpdateStatusRequest{Status: "new"})
	require.NoError(t, err)

	activities, err := service.GetTimeline(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestUpdateLeadStatus_ConvertedUsesConvertedActivity(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	l := createLead(t, service, admin.ID, "Lead One")

	_, err := service.UpdateLeadStatus(context.Background(), admin.ID, l.ID, UpdateStatusRequest{Status: "converted"})
	require.NoError(t, err)

	activities, err := service.GetTimeline(context.Background(), l.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "converted", activities[0].Type)
}

func TestUpdateAssignmentStatus_DoesNotTouchLeadStatus(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	sales := createUser(t, client, "sales", user.RoleSales)
	l := createLead(t, service, admin.ID, "Lead One")

	_, err := service.AssignLeads(context.Background(), admin.ID, AssignLeadsRequest{LeadIDs: []int{l.ID}, SalesPersonID: sales.ID})
	require.NoError(t, err)

	updated, err := service.UpdateAssignmentStatus(context.Background(), sales.ID, l.ID, UpdateAssignmentStatusRequest{
		Status: "interested",
	})
	require.NoError(t, err)
	assert.Equal(t, "interested", updated.Status)

	// Lead-level status stays where the admin left it
	got, err := client.Lead.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, lead.StatusNew, got.Status)
}

func TestUpdateAssignmentStatus_OnlyOwnAssignment(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	sales := createUser(t, client, "sales", user.RoleSales)
	other := createUser(t, client, "other", user.RoleSales)
	l := createLead(t, service, admin.ID, "Lead One")

	_, err := service.AssignLeads(context.Background(), admin.ID, AssignLeadsRequest{LeadIDs: []int{l.ID}, SalesPersonID: sales.ID})
	require.NoError(t, err)

	_, err = service.UpdateAssignmentStatus(context.Background(), other.ID, l.ID, UpdateAssignmentStatusRequest{
		Status: "contacted",
	})
	assert.ErrorContains(t, err, "not found")
}

func TestListLeads_FilterByStatusAndSalesperson(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	sales := createUser(t, client, "sales", user.RoleSales)

	l1 := createLead(t, service, admin.ID, "Lead One")
	createLead(t, service, admin.ID, "Lead Two")

	_, err := service.UpdateLeadStatus(context.Background(), admin.ID, l1.ID, UpdateStatusRequest{Status: "contacted"})
	require.NoError(t, err)
	_, err = service.AssignLeads(context.Background(), admin.ID, AssignLeadsRequest{LeadIDs: []int{l1.ID}, SalesPersonID: sales.ID})
	require.NoError(t, err)

	byStatus, err := service.ListLeads(context.Background(), "contacted", 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	bySales, err := service.ListLeads(context.Background(), "", sales.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, bySales, 1)
	assert.Equal(t, l1.ID, bySales[0].ID)
}

func TestAddNote_WritesNoteAddedActivity(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	l := createLead(t, service, admin.ID, "Lead One")

	note, err := service.AddNote(context.Background(), admin.ID, l.ID, "Call back on Monday", true)
	require.NoError(t, err)
	assert.True(t, note.IsPinned)

	activities, err := service.GetTimeline(context.Background(), l.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "note_added", activities[0].Type)
}

func TestListNotes_PinnedFirst(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)
	l := createLead(t, service, admin.ID, "Lead One")

	_, err := service.AddNote(context.Background(), admin.ID, l.ID, "plain note", false)
	require.NoError(t, err)
	_, err = service.AddNote(context.Background(), admin.ID, l.ID, "pinned note", true)
	require.NoError(t, err)

	notes, err := service.ListNotes(context.Background(), l.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "pinned note", notes[0].Content)
}

func TestLogActivity_RejectsUnknownLead(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	admin := createUser(t, client, "admin", user.RoleAdmin)

	_, err := service.LogActivity(context.Background(), admin.ID, 999, LogActivityRequest{Type: "called"})
	assert.ErrorContains(t, err, "not found")
}
