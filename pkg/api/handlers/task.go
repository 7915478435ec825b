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
	"github.com/agencydesk/agencydesk/pkg/tasks"
)

// TaskHandler handles requirement and task endpoints
type TaskHandler struct {
	service   *tasks.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service *tasks.Service, m *metrics.Metrics) *TaskHandler {
	return &TaskHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// CreateRequirement creates a requirement for a client
func (h *TaskHandler) CreateRequirement(c echo.Context) error {
	var req tasks.CreateRequirementRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.CreateRequirement(ctx, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// GetRequirement returns a requirement with its tasks
func (h *TaskHandler) GetRequirement(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid requirement id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetRequirement(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListRequirements lists requirements, optionally for one client
func (h *TaskHandler) ListRequirements(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	clientID, _ := strconv.Atoi(c.QueryParam("client_id"))

	resp, err := h.service.ListRequirements(ctx, clientID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateRequirement updates a requirement's name and/or status
func (h *TaskHandler) UpdateRequirement(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid requirement id")
	}

	var req tasks.UpdateRequirementRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.UpdateRequirement(ctx, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// AddTask creates a task under a requirement
func (h *TaskHandler) AddTask(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid requirement id")
	}

	var req tasks.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.AddTask(ctx, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	h.metrics.RecordTaskCreated()

	return c.JSON(http.StatusCreated, resp)
}

// GetTask returns one task
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid task id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetTask(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListTasks lists tasks with optional filters
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	requirementID, _ := strconv.Atoi(c.QueryParam("requirement_id"))
	assignedTo, _ := strconv.Atoi(c.QueryParam("assigned_to"))

	resp, err := h.service.ListTasks(ctx, requirementID, assignedTo, c.QueryParam("status"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateTask updates a task's descriptive fields
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid task id")
	}

	var req tasks.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.UpdateTask(ctx, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateTaskStatus sets a task status directly
func (h *TaskHandler) UpdateTaskStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid task id")
	}

	var req tasks.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.UpdateTaskStatus(ctx, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// AddSubtask appends a checklist item to a task
func (h *TaskHandler) AddSubtask(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid task id")
	}

	var req tasks.AddSubtaskRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.AddSubtask(ctx, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// ToggleSubtask flips a checklist item
func (h *TaskHandler) ToggleSubtask(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid task id")
	}

	subtaskID := c.Param("subtask_id")
	if subtaskID == "" {
		return errors.BadRequestError(c, "Invalid subtask id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.ToggleSubtask(ctx, id, subtaskID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// RemoveSubtask deletes a checklist item
func (h *TaskHandler) RemoveSubtask(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid task id")
	}

	subtaskID := c.Param("subtask_id")
	if subtaskID == "" {
		return errors.BadRequestError(c, "Invalid subtask id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.RemoveSubtask(ctx, id, subtaskID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// assignRequest is the body for assigning a task.
type assignRequest struct {
	EmployeeID int `json:"employee_id" validate:"required,gt=0"`
}

// AssignTask hands a task to an employee
func (h *TaskHandler) AssignTask(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid task id")
	}

	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.AssignTask(ctx, id, req.EmployeeID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// RequestAssignment records the caller's interest in a task
func (h *TaskHandler) RequestAssignment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid task id")
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.RequestTaskAssignment(ctx, id, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
