package tasks

import (
	"context"
	"fmt"
	"testing"

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

func createClientRecord(t *testing.T, client *ent.Client) *ent.Company {
	sales := createUser(t, client, "sales-"+t.Name(), user.RoleSales)
	account := createUser(t, client, "client-"+t.Name(), user.RoleClient)
	c, err := client.Company.Create().
		SetUserID(account.ID).
		SetCompanyName("Acme Ltd").
		SetSalesPersonID(sales.ID).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func createRequirement(t *testing.T, service *Service, clientID int) *RequirementResponse {
	r, err := service.CreateRequirement(context.Background(), CreateRequirementRequest{
		RequirementName: "Website revamp",
		ClientID:        clientID,
	})
	require.NoError(t, err)
	return r
}

func createTask(t *testing.T, service *Service, requirementID int) *TaskResponse {
	task, err := service.AddTask(context.Background(), requirementID, CreateTaskRequest{Title: "Design homepage"})
	require.NoError(t, err)
	return task
}

func TestCreateRequirement_SequentialNumbers(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)

	r1 := createRequirement(t, service, c.ID)
	r2 := createRequirement(t, service, c.ID)

	assert.Equal(t, "REQ-0001", r1.RequirementNumber)
	assert.Equal(t, "REQ-0002", r2.RequirementNumber)
	assert.Equal(t, "active", r1.Status)
}

func TestCreateRequirement_UnknownClient(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	_, err := service.CreateRequirement(context.Background(), CreateRequirementRequest{
		RequirementName: "Orphan",
		ClientID:        999,
	})
	assert.ErrorContains(t, err, "not found")
}

func TestAddTask_NumbersAndRoster(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)
	r := createRequirement(t, service, c.ID)
	emp := createUser(t, client, "emp", user.RoleEmployee)

	task, err := service.AddTask(context.Background(), r.ID, CreateTaskRequest{
		Title:      "Design homepage",
		AssignedTo: &emp.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "TSK-0001", task.TaskNumber)
	require.NotNil(t, task.AssignedTo)
	assert.Equal(t, emp.ID, *task.AssignedTo)

	// Assignee joins the requirement roster
	got, err := service.GetRequirement(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Contains(t, got.AssignedEmployees, emp.ID)
}

func TestAddTask_RejectsClientAssignee(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)
	r := createRequirement(t, service, c.ID)
	account := createUser(t, client, "someclient", user.RoleClient)

	_, err := service.AddTask(context.Background(), r.ID, CreateTaskRequest{
		Title:      "Design homepage",
		AssignedTo: &account.ID,
	})
	assert.ErrorContains(t, err, "cannot hold tasks")
}

func TestUpdateTaskStatus_DoneForcesProgressAndCompletedDate(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)
	r := createRequirement(t, service, c.ID)
	task := createTask(t, service, r.ID)

	updated, err := service.UpdateTaskStatus(context.Background(), task.ID, UpdateTaskStatusRequest{Status: "done"})
	require.NoError(t, err)

	assert.Equal(t, "done", updated.Status)
	assert.Equal(t, 100, updated.Progress)
	assert.NotNil(t, updated.CompletedDate)

	// Leaving done clears the completion date
	reopened, err := service.UpdateTaskStatus(context.Background(), task.ID, UpdateTaskStatusRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedDate)
}

func TestSubtasks_ProgressDerivation(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)
	r := createRequirement(t, service, c.ID)
	task := createTask(t, service, r.ID)

	withOne, err := service.AddSubtask(context.Background(), task.ID, AddSubtaskRequest{Title: "wireframes"})
	require.NoError(t, err)
	withTwo, err := service.AddSubtask(context.Background(), task.ID, AddSubtaskRequest{Title: "mockups"})
	require.NoError(t, err)
	withThree, err := service.AddSubtask(context.Background(), task.ID, AddSubtaskRequest{Title: "handoff"})
	require.NoError(t, err)

	require.Len(t, withThree.Subtasks, 3)
	assert.Zero(t, withThree.Progress)
	assert.Equal(t, "todo", withThree.Status)

	toggled, err := service.ToggleSubtask(context.Background(), task.ID, withOne.Subtasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 33, toggled.Progress, "progress rounds to the nearest point")
	assert.Equal(t, "in_progress", toggled.Status)

	_, err = service.ToggleSubtask(context.Background(), task.ID, withTwo.Subtasks[1].ID)
	require.NoError(t, err)
	full, err := service.ToggleSubtask(context.Background(), task.ID, withThree.Subtasks[2].ID)
	require.NoError(t, err)

	assert.Equal(t, 100, full.Progress)
	assert.Equal(t, "done", full.Status)
	assert.NotNil(t, full.CompletedDate)
}

func TestSubtasks_ManualStatusSticks(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)
	r := createRequirement(t, service, c.ID)
	task := createTask(t, service, r.ID)

	withSubtasks, err := service.AddSubtask(context.Background(), task.ID, AddSubtaskRequest{Title: "one"})
	require.NoError(t, err)
	_, err = service.AddSubtask(context.Background(), task.ID, AddSubtaskRequest{Title: "two"})
	require.NoError(t, err)

	// Hand-set status wins over derivation
	_, err = service.UpdateTaskStatus(context.Background(), task.ID, UpdateTaskStatusRequest{Status: "blocked"})
	require.NoError(t, err)

	toggled, err := service.ToggleSubtask(context.Background(), task.ID, withSubtasks.Subtasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "blocked", toggled.Status, "manual status survives subtask toggles")
	assert.Equal(t, 50, toggled.Progress, "progress still recomputes")
}

func TestSubtasks_FullChecklistOverridesManualStatus(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)
	r := createRequirement(t, service, c.ID)
	task := createTask(t, service, r.ID)

	withSubtask, err := service.AddSubtask(context.Background(), task.ID, AddSubtaskRequest{Title: "only item"})
	require.NoError(t, err)

	_, err = service.UpdateTaskStatus(context.Background(), task.ID, UpdateTaskStatusRequest{Status: "blocked"})
	require.NoError(t, err)

	full, err := service.ToggleSubtask(context.Background(), task.ID, withSubtask.Subtasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "done", full.Status, "a fully checked list always lands on done")

	// Derivation is handed back: unchecking drops the task out of done
	reopened, err := service.ToggleSubtask(context.Background(), task.ID, withSubtask.Subtasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "todo", reopened.Status)
}

func TestRemoveSubtask_RecomputesProgress(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)
	r := createRequirement(t, service, c.ID)
	task := createTask(t, service, r.ID)

	first, err := service.AddSubtask(context.Background(), task.ID, AddSubtaskRequest{Title: "keep"})
	require.NoError(t, err)
	second, err := service.AddSubtask(context.Background(), task.ID, AddSubtaskRequest{Title: "drop"})
	require.NoError(t, err)

	_, err = service.ToggleSubtask(context.Background(), task.ID, first.Subtasks[0].ID)
	require.NoError(t, err)

	removed, err := service.RemoveSubtask(context.Background(), task.ID, second.Subtasks[1].ID)
	require.NoError(t, err)
	assert.Len(t, removed.Subtasks, 1)
	assert.Equal(t, 100, removed.Progress)
}

func TestAssignTask_ClearsRequestsAndUpdatesRoster(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)
	r := createRequirement(t, service, c.ID)
	task := createTask(t, service, r.ID)

	emp1 := createUser(t, client, "emp1", user.RoleEmployee)
	emp2 := createUser(t, client, "emp2", user.RoleEmployee)

	_, err := service.RequestTaskAssignment(context.Background(), task.ID, emp1.ID)
	require.NoError(t, err)
	_, err = service.RequestTaskAssignment(context.Background(), task.ID, emp2.ID)
	require.NoError(t, err)

	assigned, err := service.AssignTask(context.Background(), task.ID, emp1.ID)
	require.NoError(t, err)

	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, emp1.ID, *assigned.AssignedTo)
	assert.Empty(t, assigned.RequestedBy, "pending requests clear on assignment")

	got, err := service.GetRequirement(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Contains(t, got.AssignedEmployees, emp1.ID)
}

func TestRequestTaskAssignment_Idempotent(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createClientRecord(t, client)
	r := createRequirement(t, service, c.ID)
	task := createTask(t, service, r.ID)
	emp := createUser(t, client, "emp", user.RoleEmployee)

	_, err := service.RequestTaskAssignment(context.Background(), task.ID, emp.ID)
	require.NoError(t, err)
	again, err := service.RequestTaskAssignment(context.Background(), task.ID, emp.ID)
	require.NoError(t, err)

	assert.Equal(t, []int{emp.ID}, again.RequestedBy)
}
