package leadimport

import (
	"context"
	"crypto/rand"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/pkg/phone"
)

// CSVImportService handles bulk import of leads from CSV.
type CSVImportService struct {
	client *ent.Client
}

// NewCSVImportService creates a new CSV import service.
func NewCSVImportService(client *ent.Client) *CSVImportService {
	return &CSVImportService{
		client: client,
	}
}

// ImportResult holds the result of a CSV import operation.
type ImportResult struct {
	BatchID      string        `json:"batch_id"`
	TotalRows    int           `json:"total_rows"`
	SuccessCount int           `json:"success_count"`
	SkippedCount int           `json:"skipped_count"`
	FailureCount int           `json:"failure_count"`
	Errors       []ImportError `json:"errors,omitempty"`
	Duration     string        `json:"duration"`
}

// ImportError represents an error during import.
type ImportError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// CSVConfig holds configuration for CSV import.
type CSVConfig struct {
	MaxRows      int  // Maximum rows to import (0 = unlimited)
	ValidateOnly bool // Only validate, don't import
	BatchSize    int  // Number of records per transaction
}

// DefaultCSVConfig returns default configuration.
func DefaultCSVConfig() CSVConfig {
	return CSVConfig{
		MaxRows:   10000,
		BatchSize: 100,
	}
}

// RequiredFields defines the required CSV columns.
var RequiredFields = []string{
	"name",
}

// OptionalFields defines optional CSV columns.
var OptionalFields = []string{
	"company",
	"email",
	"phone",
	"city",
	"country",
	"website",
	"source",
}

// ImportFromCSV imports leads from a CSV reader. All leads created by one
// call share a generated batch id so the import can be reviewed or filtered
// afterwards. Rows without a name are skipped silently, matching how the
// source spreadsheets pad empty rows.
func (s *CSVImportService) ImportFromCSV(ctx context.Context, r io.Reader, createdBy int, config CSVConfig) (*ImportResult, error) {
	startTime := time.Now()

	batchID, err := newBatchID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate batch id: %w", err)
	}

	result := &ImportResult{
		BatchID: batchID,
		Errors:  []ImportError{},
	}

	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1 // Variable number of fields

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, header := range headers {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}

	for _, field := range RequiredFields {
		if _, ok := headerMap[field]; !ok {
			return nil, fmt.Errorf("missing required field: %s", field)
		}
	}

	log.Printf("✅ CSV headers validated: %v", headers)

	rowNum := 1 // header is row 0
	batch := make([]*LeadData, 0, config.BatchSize)

	for {
		if config.MaxRows > 0 && rowNum > config.MaxRows {
			log.Printf("⚠️  Reached max rows limit: %d", config.MaxRows)
			break
		}

		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, ImportError{
				Row:     rowNum,
				Message: fmt.Sprintf("CSV read error: %v", err),
			})
			result.FailureCount++
			rowNum++
			continue
		}

		result.TotalRows++

		data := s.parseRow(row, headerMap)

		// Spreadsheet padding rows come through nameless, drop them.
		if data.Name == "" {
			result.SkippedCount++
			rowNum++
			continue
		}

		if data.Email != "" && !strings.Contains(data.Email, "@") {
			result.Errors = append(result.Errors, ImportError{
				Row:     rowNum,
				Field:   "email",
				Value:   data.Email,
				Message: "Invalid email address",
			})
			result.FailureCount++
			rowNum++
			continue
		}

		if config.ValidateOnly {
			result.SuccessCount++
			rowNum++
			continue
		}

		batch = append(batch, data)

		if len(batch) >= config.BatchSize {
			if batchErr := s.processBatch(ctx, batch, batchID, createdBy, result, rowNum-len(batch)+1); batchErr != nil {
				log.Printf("⚠️  Batch processing error: %v", batchErr)
			}
			batch = make([]*LeadData, 0, config.BatchSize)
		}

		rowNum++
	}

	if len(batch) > 0 && !config.ValidateOnly {
		if batchErr := s.processBatch(ctx, batch, batchID, createdBy, result, rowNum-len(batch)); batchErr != nil {
			log.Printf("⚠️  Final batch processing error: %v", batchErr)
		}
	}

	result.Duration = time.Since(startTime).String()

	log.Printf("✅ CSV import completed: batch=%s %d success, %d skipped, %d failures in %s",
		batchID, result.SuccessCount, result.SkippedCount, result.FailureCount, result.Duration)

	return result, nil
}

// processBatch saves a batch of parsed rows in one transaction.
func (s *CSVImportService) processBatch(ctx context.Context, batch []*LeadData, batchID string, createdBy int, result *ImportResult, startRow int) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	for i, data := range batch {
		leadCreate := tx.Lead.Create().
			SetName(data.Name).
			SetImportBatchID(batchID).
			SetCreatedBy(createdBy)

		if data.Company != "" {
			leadCreate.SetCompany(data.Company)
		}
		if data.Email != "" {
			leadCreate.SetEmail(strings.ToLower(data.Email))
		}
		if data.Phone != "" {
			leadCreate.SetPhone(data.Phone)
		}
		if data.City != "" {
			leadCreate.SetCity(data.City)
		}
		if data.Country != "" {
			leadCreate.SetCountry(data.Country)
		}
		if data.Website != "" {
			leadCreate.SetWebsite(data.Website)
		}
		if data.Source != "" {
			leadCreate.SetSource(data.Source)
		}

		if _, err := leadCreate.Save(ctx); err != nil {
			tx.Rollback()
			result.Errors = append(result.Errors, ImportError{
				Row:     startRow + i,
				Message: fmt.Sprintf("Failed to create lead: %v", err),
			})
			// The whole batch rolls back with the transaction.
			result.FailureCount += len(batch)
			return fmt.Errorf("failed to create lead at row %d: %w", startRow+i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		result.FailureCount += len(batch)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	result.SuccessCount += len(batch)
	return nil
}

// LeadData holds parsed lead data from a CSV row.
type LeadData struct {
	Name    string
	Company string
	Email   string
	Phone   string
	City    string
	Country string
	Website string
	Source  string
}

var titleCaser = cases.Title(language.English)

// parseRow parses a CSV row into LeadData, title-casing names and
// normalizing phone numbers where the row carries enough information.
func (s *CSVImportService) parseRow(row []string, headerMap map[string]int) *LeadData {
	getField := func(fieldName string) string {
		if idx, ok := headerMap[fieldName]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	data := &LeadData{
		Name:    titleCaser.String(getField("name")),
		Company: titleCaser.String(getField("company")),
		Email:   getField("email"),
		Phone:   getField("phone"),
		City:    titleCaser.String(getField("city")),
		Country: strings.ToUpper(getField("country")),
		Website: getField("website"),
		Source:  getField("source"),
	}

	if data.Phone != "" {
		if normalized, err := phone.NormalizePhone(data.Phone, data.Country); err == nil {
			data.Phone = normalized
		}
	}

	return data
}

func newBatchID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "imp_" + hex.EncodeToString(b), nil
}
