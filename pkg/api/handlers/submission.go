package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/agencydesk/agencydesk/pkg/api/errors"
	"github.com/agencydesk/agencydesk/pkg/metrics"
	"github.com/agencydesk/agencydesk/pkg/submissions"
)

// SubmissionHandler handles submission workflow endpoints
type SubmissionHandler struct {
	service   *submissions.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(service *submissions.Service, m *metrics.Metrics) *SubmissionHandler {
	return &SubmissionHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// Create submits work for review
func (h *SubmissionHandler) Create(c echo.Context) error {
	var req submissions.CreateSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.CreateSubmission(ctx, userID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Get returns one submission
func (h *SubmissionHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid submission id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetSubmission(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// List returns submissions with optional filters
func (h *SubmissionHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	clientID, _ := strconv.Atoi(c.QueryParam("client_id"))
	taskID, _ := strconv.Atoi(c.QueryParam("task_id"))

	resp, err := h.service.ListSubmissions(ctx, clientID, taskID, c.QueryParam("status"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// StartReview moves a pending submission to under_review
func (h *SubmissionHandler) StartReview(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid submission id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.StartReview(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Review records a verdict on a submission
func (h *SubmissionHandler) Review(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid submission id")
	}

	var req submissions.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Review(ctx, userID, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	h.metrics.RecordSubmissionReviewed(req.Status)

	return c.JSON(http.StatusOK, resp)
}

// ToggleChange flips one requested-change checkbox
func (h *SubmissionHandler) ToggleChange(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid submission id")
	}

	changeID := c.Param("change_id")
	if changeID == "" {
		return errors.BadRequestError(c, "Invalid change id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.ToggleRequestedChange(ctx, id, changeID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
