package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/agencydesk/agencydesk/pkg/api/errors"
	"github.com/agencydesk/agencydesk/pkg/feedback"
)

// FeedbackHandler handles client feedback endpoints
type FeedbackHandler struct {
	service   *feedback.Service
	validator *validator.Validate
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(service *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Create stores a feedback entry
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req feedback.CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.CreateFeedback(ctx, userID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Get returns one feedback entry
func (h *FeedbackHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid feedback id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetFeedback(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// List returns feedback entries with optional filters
func (h *FeedbackHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	clientID, _ := strconv.Atoi(c.QueryParam("client_id"))
	publicOnly := c.QueryParam("public") == "true"

	resp, err := h.service.ListFeedback(ctx, clientID, publicOnly)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Summary returns a client's average rating
func (h *FeedbackHandler) Summary(c echo.Context) error {
	clientID, ok := pathID(c, "client_id")
	if !ok {
		return errors.BadRequestError(c, "Invalid client id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	avg, count, err := h.service.AverageRating(ctx, clientID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"client_id":      clientID,
		"average_rating": avg,
		"count":          count,
	})
}
