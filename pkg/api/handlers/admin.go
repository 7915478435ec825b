package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/agencydesk/agencydesk/pkg/api/errors"
	"github.com/agencydesk/agencydesk/pkg/models"
	"github.com/agencydesk/agencydesk/pkg/users"
)

// UserHandler handles staff user management endpoints
type UserHandler struct {
	service   *users.Service
	validator *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *users.Service) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Create registers a new staff user
func (h *UserHandler) Create(c echo.Context) error {
	var req users.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.CreateUser(ctx, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Get returns a single user
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid user id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetUser(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// List returns users, optionally filtered by role
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.ListUsers(ctx, c.QueryParam("role"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Update modifies a user's profile or active flag
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid user id")
	}

	var req users.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.UpdateUser(ctx, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Delete soft-deletes a user and deactivates their account
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid user id")
	}

	if callerID, _ := c.Get("user_id").(int); callerID == id {
		return errors.BadRequestError(c, "You cannot delete your own account")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteUser(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "User deleted"})
}
