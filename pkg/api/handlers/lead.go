package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/agencydesk/agencydesk/pkg/api/errors"
	"github.com/agencydesk/agencydesk/pkg/export"
	"github.com/agencydesk/agencydesk/pkg/leadimport"
	"github.com/agencydesk/agencydesk/pkg/leads"
	"github.com/agencydesk/agencydesk/pkg/metrics"
)

// LeadHandler handles lead pipeline endpoints
type LeadHandler struct {
	service   *leads.Service
	importer  *leadimport.CSVImportService
	exporter  *export.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(service *leads.Service, importer *leadimport.CSVImportService, exporter *export.Service, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		service:   service,
		importer:  importer,
		exporter:  exporter,
		metrics:   m,
		validator: validator.New(),
	}
}

// Create creates a single lead
func (h *LeadHandler) Create(c echo.Context) error {
	var req leads.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.CreateLead(ctx, userID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Get returns one lead with its assignments
func (h *LeadHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid lead id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetLead(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// List returns leads filtered by status and/or salesperson
func (h *LeadHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	salesPersonID, _ := strconv.Atoi(c.QueryParam("sales_person_id"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	resp, err := h.service.ListLeads(ctx, c.QueryParam("status"), salesPersonID, limit, offset)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Assign assigns a batch of leads to a salesperson
func (h *LeadHandler) Assign(c echo.Context) error {
	var req leads.AssignLeadsRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	resp, err := h.service.AssignLeads(ctx, userID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateStatus updates a lead's top-level status (admin path)
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid lead id")
	}

	var req leads.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.UpdateLeadStatus(ctx, userID, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateAssignmentStatus updates the caller's own assignment of a lead
func (h *LeadHandler) UpdateAssignmentStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid lead id")
	}

	var req leads.UpdateAssignmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.UpdateAssignmentStatus(ctx, userID, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// LogActivity records a contact activity on a lead
func (h *LeadHandler) LogActivity(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid lead id")
	}

	var req leads.LogActivityRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.LogActivity(ctx, userID, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Timeline returns the activity log for a lead
func (h *LeadHandler) Timeline(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid lead id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetTimeline(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// noteRequest is the body for adding a note.
type noteRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=5000"`
	IsPinned bool   `json:"is_pinned"`
}

// AddNote attaches a note to a lead
func (h *LeadHandler) AddNote(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid lead id")
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.AddNote(ctx, userID, id, req.Content, req.IsPinned)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// ListNotes returns a lead's notes
func (h *LeadHandler) ListNotes(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid lead id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.ListNotes(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Import ingests a CSV of leads
func (h *LeadHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.BadRequestError(c, "A CSV file is required in the 'file' field")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.InternalError(c, err)
	}
	defer src.Close()

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Minute)
	defer cancel()

	result, err := h.importer.ImportFromCSV(ctx, src, userID, leadimport.DefaultCSVConfig())
	if err != nil {
		return errors.BadRequestError(c, err.Error())
	}

	h.metrics.RecordLeadsImported(result.SuccessCount)

	return c.JSON(http.StatusOK, result)
}

// Export streams the filtered leads as XLSX or CSV
func (h *LeadHandler) Export(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Minute)
	defer cancel()

	salesPersonID, _ := strconv.Atoi(c.QueryParam("sales_person_id"))
	filter := export.ExportFilter{
		Status:        c.QueryParam("status"),
		SalesPersonID: salesPersonID,
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "xlsx"
	}

	filename := fmt.Sprintf("leads-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "xlsx":
		c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err := h.exporter.WriteXLSX(ctx, c.Response(), filter)
		if err != nil {
			return errors.InternalError(c, err)
		}
	case "csv":
		c.Response().Header().Set(echo.HeaderContentType, "text/csv")
		err := h.exporter.WriteCSV(ctx, c.Response(), filter)
		if err != nil {
			return errors.InternalError(c, err)
		}
	default:
		return errors.BadRequestError(c, "Unsupported export format")
	}

	h.metrics.RecordExportCreated()

	return nil
}
