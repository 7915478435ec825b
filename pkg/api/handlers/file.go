package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/agencydesk/agencydesk/pkg/api/errors"
	"github.com/agencydesk/agencydesk/pkg/files"
	"github.com/agencydesk/agencydesk/pkg/metrics"
	"github.com/agencydesk/agencydesk/pkg/models"
)

// FileHandler handles file registry endpoints
type FileHandler struct {
	service   *files.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewFileHandler creates a new file handler
func NewFileHandler(service *files.Service, m *metrics.Metrics) *FileHandler {
	return &FileHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// UploadURL issues a presigned PUT URL
func (h *FileHandler) UploadURL(c echo.Context) error {
	var req files.UploadURLRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.NewUploadURL(ctx, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// registerRequest binds file registration including the storage key.
type registerRequest struct {
	files.RegisterFileRequest
	StorageKey string `json:"storage_key" validate:"required"`
}

// Register records metadata for an uploaded object
func (h *FileHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.RegisterFile(ctx, userID, req.StorageKey, req.RegisterFileRequest)
	if err != nil {
		return serviceError(c, err)
	}

	h.metrics.RecordFileRegistered()

	return c.JSON(http.StatusCreated, resp)
}

// Get returns one file with a fresh download URL
func (h *FileHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid file id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.GetFile(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// List returns the live files attached to an entity
func (h *FileHandler) List(c echo.Context) error {
	entityType := c.QueryParam("entity_type")
	entityID, _ := strconv.Atoi(c.QueryParam("entity_id"))
	if entityType == "" || entityID <= 0 {
		return errors.BadRequestError(c, "entity_type and entity_id are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.ListFiles(ctx, entityType, entityID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// copyRequest is the body for copying a file to another entity.
type copyRequest struct {
	EntityType string `json:"entity_type" validate:"required,oneof=task submission query client"`
	EntityID   int    `json:"entity_id" validate:"required,gt=0"`
}

// Copy clones a file record onto another entity
func (h *FileHandler) Copy(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid file id")
	}

	var req copyRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.CopyFileToEntity(ctx, id, req.EntityType, req.EntityID, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Delete soft-deletes a file record
func (h *FileHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid file id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteFile(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "File deleted"})
}
