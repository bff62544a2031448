package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/coverdesk/coverdesk-backend/dto"
	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/repositories"
	"github.com/coverdesk/coverdesk-backend/utils"
)

// presentError maps a usecase error to an HTTP status and writes the
// response. It returns true when an error was presented, so handlers can
// bail out with a plain `if presentError(c, err) { return }`.
func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ConflictError) || repositories.IsUniqueViolationError(err):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{Message: err.Error()})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.APIErrorResponse{Message: "internal error"})
	}
	return true
}
