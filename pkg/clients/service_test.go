package clients

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

func createSalesPerson(t *testing.T, client *ent.Client) *ent.User {
	sp, err := client.User.Create().
		SetFullName("Sam Seller").
		SetUsername("sam.seller").
		SetEmail("sam@example.com").
		SetRole(user.RoleSales).
		Save(context.Background())
	require.NoError(t, err)
	return sp
}

func TestCreateClient_CreatesUserAndClient(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	sp := createSalesPerson(t, client)

	resp, err := service.CreateClient(context.Background(), CreateClientRequest{
		FullName:      "Cora Client",
		Username:      "cora",
		Email:         "cora@acme.com",
		CompanyName:   "Acme Ltd",
		Industry:      "manufacturing",
		SalesPersonID: sp.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Ltd", resp.CompanyName)
	assert.Equal(t, "prospect", resp.Status)
	assert.False(t, resp.HasPassword)

	// Backing account carries the client role
	account, err := client.User.Get(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleClient, account.Role)
}

func TestCreateClient_DuplicateEmail(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	sp := createSalesPerson(t, client)

	req := CreateClientRequest{
		FullName:      "Cora Client",
		Username:      "cora",
		Email:         "cora@acme.com",
		CompanyName:   "Acme Ltd",
		SalesPersonID: sp.ID,
	}
	_, err := service.CreateClient(context.Background(), req)
	require.NoError(t, err)

	_, err = service.CreateClient(context.Background(), req)
	assert.ErrorContains(t, err, "already exists")
}

func TestCreateClient_RejectsNonSalesOwner(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	emp, err := client.User.Create().
		SetFullName("Eddie Employee").
		SetUsername("eddie").
		SetEmail("eddie@example.com").
		SetRole(user.RoleEmployee).
		Save(context.Background())
	require.NoError(t, err)

	_, err = service.CreateClient(context.Background(), CreateClientRequest{
		FullName:      "Cora Client",
		Username:      "cora",
		Email:         "cora@acme.com",
		CompanyName:   "Acme Ltd",
		SalesPersonID: emp.ID,
	})
	assert.ErrorContains(t, err, "sales role")
}

func TestCreateClient_SalespersonNotFound(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	_, err := service.CreateClient(context.Background(), CreateClientRequest{
		FullName:      "Cora Client",
		Username:      "cora",
		Email:         "cora@acme.com",
		CompanyName:   "Acme Ltd",
		SalesPersonID: 999,
	})
	assert.ErrorContains(t, err, "not found")
}

func TestListClients_FiltersBySalesOwner(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	sp1 := createSalesPerson(t, client)
	sp2, err := client.User.Create().
		SetFullName("Sal Second").
		SetUsername("sal").
		SetEmail("sal@example.com").
		SetRole(user.RoleSales).
		Save(context.Background())
	require.NoError(t, err)

	for i, spID := range []int{sp1.ID, sp1.ID, sp2.ID} {
		_, err := service.CreateClient(context.Background(), CreateClientRequest{
			FullName:      fmt.Sprintf("Client %d", i),
			Username:      fmt.Sprintf("client%d", i),
			Email:         fmt.Sprintf("client%d@acme.com", i),
			CompanyName:   fmt.Sprintf("Company %d", i),
			SalesPersonID: spID,
		})
		require.NoError(t, err)
	}

	all, err := service.ListClients(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := service.ListClients(context.Background(), sp1.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestUpdateClient_Status(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	sp := createSalesPerson(t, client)
	created, err := service.CreateClient(context.Background(), CreateClientRequest{
		FullName:      "Cora Client",
		Username:      "cora",
		Email:         "cora@acme.com",
		CompanyName:   "Acme Ltd",
		SalesPersonID: sp.ID,
	})
	require.NoError(t, err)

	status := "active"
	updated, err := service.UpdateClient(context.Background(), created.ID, UpdateClientRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "active", updated.Status)
}

func TestDeleteClient_HidesFromListingAndGet(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	sp := createSalesPerson(t, client)
	created, err := service.CreateClient(context.Background(), CreateClientRequest{
		FullName:      "Cora Client",
		Username:      "cora",
		Email:         "cora@acme.com",
		CompanyName:   "Acme Ltd",
		SalesPersonID: sp.ID,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteClient(context.Background(), created.ID))

	_, err = service.GetClient(context.Background(), created.ID)
	assert.ErrorContains(t, err, "not found")

	all, err := service.ListClients(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, all)

	// The client row itself survives for history
	count, err := client.Company.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
