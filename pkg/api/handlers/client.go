package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/agencydesk/agencydesk/pkg/api/errors"
	"github.com/agencydesk/agencydesk/pkg/clients"
	"github.com/agencydesk/agencydesk/pkg/models"
)

// ClientHandler handles client registry endpoints
type ClientHandler struct {
	service   *clients.Service
	validator *validator.Validate
}

// NewClientHandler creates a new client handler
func NewClientHandler(service *clients.Service) *ClientHandler {
	return &ClientHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Create godoc
// @Summary Create a client
// @Description Create a client record and its portal login account in one step
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body clients.CreateClientRequest true "Client data"
// @Success 201 {object} clients.ClientResponse "Client created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Email already in use"
// @Router /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clients.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.CreateClient(ctx, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Get returns one client
func (h *ClientHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid client id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetClient(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// List returns all clients, optionally filtered by salesperson
func (h *ClientHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	salesPersonID, _ := strconv.Atoi(c.QueryParam("sales_person_id"))

	resp, err := h.service.ListClients(ctx, salesPersonID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Update updates a client
func (h *ClientHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid client id")
	}

	var req clients.UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.UpdateClient(ctx, id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Delete soft-deletes a client and its portal account
func (h *ClientHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.BadRequestError(c, "Invalid client id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteClient(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Client deleted"})
}
