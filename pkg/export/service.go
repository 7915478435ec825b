package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/agencydesk/agencydesk/pkg/leads"
)

// Service handles lead exports
type Service struct {
	leadService *leads.Service
}

// NewService creates a new export service
func NewService(leadService *leads.Service) *Service {
	return &Service{leadService: leadService}
}

// ExportFilter narrows which leads go into an export.
type ExportFilter struct {
	Status        string
	SalesPersonID int
}

var headers = []string{
	"ID", "Name", "Company", "Email", "Phone", "City", "Country",
	"Website", "Source", "Status", "Pitched Services", "Created At",
}

// WriteXLSX streams the filtered leads as an Excel workbook.
func (s *Service) WriteXLSX(ctx context.Context, w io.Writer, filter ExportFilter) error {
	rows, err := s.leadService.ListLeads(ctx, filter.Status, filter.SalesPersonID, 0, 0)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Leads"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, lead := range rows {
		row := rowIdx + 2 // header occupies row 1
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), lead.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), lead.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), lead.Company)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), lead.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), lead.Phone)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), lead.City)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), lead.Country)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), lead.Website)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), lead.Source)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), lead.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), strings.Join(lead.PitchedServices, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), lead.CreatedAt.Format(time.RFC3339))
	}

	for i := 0; i < len(headers); i++ {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

// WriteCSV streams the filtered leads as CSV.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, filter ExportFilter) error {
	rows, err := s.leadService.ListLeads(ctx, filter.Status, filter.SalesPersonID, 0, 0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, lead := range rows {
		record := []string{
			strconv.Itoa(lead.ID),
			lead.Name,
			lead.Company,
			lead.Email,
			lead.Phone,
			lead.City,
			lead.Country,
			lead.Website,
			lead.Source,
			lead.Status,
			strings.Join(lead.PitchedServices, ", "),
			lead.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
