package handlers

import (
	"net/http"
	"strconv"

	"bustrip-backend/internal/auth"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorFrom returns the authenticated actor or writes a 401 response
func actorFrom(c *gin.Context) (service.Actor, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingActor)
		return service.Actor{}, false
	}
	return service.UserActor(userID), true
}

// uuidParam parses a path parameter or writes a 400 response
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, apperrors.NewValidationError(label+"_id", "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the body or writes a 400 response
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apperrors.NewValidationError("body", "malformed JSON: "+err.Error()))
		return false
	}
	return true
}

// bindOptionalJSON decodes the body when one was sent
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, req)
}

// pagination reads page and page_size or writes a 400 response when they are not integers.
// Out of range values are clamped by the services.
func pagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		respondError(c, apperrors.ErrInvalidPaginationParams)
		return 0, 0, false
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		respondError(c, apperrors.ErrInvalidPaginationParams)
		return 0, 0, false
	}
	return page, pageSize, true
}

// respondError writes the failure result with the status mapped from the error type
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).WithField("path", c.FullPath()).Error("request failed")
		_ = c.Error(err)
	}
	c.JSON(status, service.FailureResult(err))
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, service.SuccessResult(message, data))
}
