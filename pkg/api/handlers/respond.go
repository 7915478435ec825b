package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agencydesk/agencydesk/pkg/models"
)

// serviceError maps a service-layer error onto an HTTP response. Services
// return plain sentence errors for caller mistakes ("lead not found",
// "assignee must have the sales role") and wrapped errors with a "failed to"
// prefix for infrastructure problems.
func serviceError(c echo.Context, err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "not found"):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: msg,
		})
	case strings.HasPrefix(msg, "failed to"):
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred. Please try again later.",
		})
	case strings.Contains(msg, "already"):
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "conflict",
			Message: msg,
		})
	default:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: msg,
		})
	}
}

// pathID parses the named path parameter as a positive integer.
func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
