package sequence

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *ent.Client {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	return enttest.Open(t, "sqlite3", dsn)
}

func nextInTx(t *testing.T, client *ent.Client, scope string) string {
	tx, err := client.Tx(context.Background())
	require.NoError(t, err)

	number, err := NextNumber(context.Background(), tx, scope)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return number
}

func TestNextNumber_Monotonic(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	assert.Equal(t, "TSK-0001", nextInTx(t, client, ScopeTask))
	assert.Equal(t, "TSK-0002", nextInTx(t, client, ScopeTask))
	assert.Equal(t, "TSK-0003", nextInTx(t, client, ScopeTask))
}

func TestNextNumber_ScopesAreIndependent(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	assert.Equal(t, "REQ-0001", nextInTx(t, client, ScopeRequirement))
	assert.Equal(t, "QRY-0001", nextInTx(t, client, ScopeQuery))
	assert.Equal(t, "SUB-0001", nextInTx(t, client, ScopeSubmission))
	assert.Equal(t, "REQ-0002", nextInTx(t, client, ScopeRequirement))
}

func TestNextNumber_UnknownScope(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	tx, err := client.Tx(context.Background())
	require.NoError(t, err)
	defer tx.Rollback()

	_, err = NextNumber(context.Background(), tx, "invoice")
	assert.Error(t, err)
}

func TestNext_RollbackDoesNotBurnNumbers(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	tx, err := client.Tx(context.Background())
	require.NoError(t, err)

	n, err := Next(context.Background(), tx, ScopeTask)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, tx.Rollback())

	// The rolled-back allocation is undone, so the next commit reuses it.
	assert.Equal(t, "TSK-0001", nextInTx(t, client, ScopeTask))
}
