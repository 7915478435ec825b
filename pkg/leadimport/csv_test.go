package leadimport

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/enttest"
	"github.com/agencydesk/agencydesk/ent/lead"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*CSVImportService, *ent.Client) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	return NewCSVImportService(client), client
}

func TestImportFromCSV_SharedBatchID(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	csvData := `name,company,email
john doe,acme inc,john@acme.com
jane roe,widgets ltd,jane@widgets.com`

	result, err := service.ImportFromCSV(context.Background(), strings.NewReader(csvData), 1, DefaultCSVConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.True(t, strings.HasPrefix(result.BatchID, "imp_"))

	// All rows of one import carry the same batch id
	imported, err := client.Lead.Query().
		Where(lead.ImportBatchID(result.BatchID)).
		All(context.Background())
	require.NoError(t, err)
	assert.Len(t, imported, 2)
}

func TestImportFromCSV_TitleCasesNames(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	csvData := `name,company,city,country
john doe,acme inc,new york,us`

	result, err := service.ImportFromCSV(context.Background(), strings.NewReader(csvData), 1, DefaultCSVConfig())
	require.NoError(t, err)
	require.Equal(t, 1, result.SuccessCount)

	l, err := client.Lead.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", l.Name)
	assert.Equal(t, "Acme Inc", l.Company)
	assert.Equal(t, "New York", l.City)
	assert.Equal(t, "US", l.Country)
}

func TestImportFromCSV_SkipsNamelessRows(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	csvData := `name,email
John Doe,john@acme.com
,padding@row.com
Jane Roe,jane@widgets.com`

	result, err := service.ImportFromCSV(context.Background(), strings.NewReader(csvData), 1, DefaultCSVConfig())
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Empty(t, result.Errors, "padding rows are not errors")
}

func TestImportFromCSV_RejectsBadEmail(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	csvData := `name,email
John Doe,not-an-email`

	result, err := service.ImportFromCSV(context.Background(), strings.NewReader(csvData), 1, DefaultCSVConfig())
	require.NoError(t, err)

	assert.Zero(t, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "email", result.Errors[0].Field)
}

func TestImportFromCSV_NormalizesPhoneNumbers(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	csvData := `name,phone,country
John Doe,(202) 555-0142,us`

	result, err := service.ImportFromCSV(context.Background(), strings.NewReader(csvData), 1, DefaultCSVConfig())
	require.NoError(t, err)
	require.Equal(t, 1, result.SuccessCount)

	l, err := client.Lead.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "+12025550142", l.Phone)
}

func TestImportFromCSV_MissingNameColumn(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	csvData := `company,email
acme inc,john@acme.com`

	_, err := service.ImportFromCSV(context.Background(), strings.NewReader(csvData), 1, DefaultCSVConfig())
	assert.ErrorContains(t, err, "missing required field")
}

func TestImportFromCSV_ValidateOnlySavesNothing(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	csvData := `name
John Doe
Jane Roe`

	config := DefaultCSVConfig()
	config.ValidateOnly = true

	result, err := service.ImportFromCSV(context.Background(), strings.NewReader(csvData), 1, config)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)

	count, err := client.Lead.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImportFromCSV_MaxRowsLimit(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	var b strings.Builder
	b.WriteString("name\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "Lead %d\n", i)
	}

	config := DefaultCSVConfig()
	config.MaxRows = 5

	result, err := service.ImportFromCSV(context.Background(), strings.NewReader(b.String()), 1, config)
	require.NoError(t, err)
	assert.Equal(t, 5, result.SuccessCount)
}
