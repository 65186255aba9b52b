package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riyaziyyat/exam-backend/internal/response"
	"github.com/riyaziyyat/exam-backend/internal/service"
)

// failService writes the response for an error returned by a service.
// Unexpected errors are attached to the context for the request logger.
func failService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrHasDependents):
		response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
	case errors.Is(err, service.ErrConflict):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrAccountDisabled):
		response.Fail(c, http.StatusForbidden, response.ErrAccountDisabled)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// bindFailed writes a 400 for a request body that did not bind.
func bindFailed(c *gin.Context, fields map[string]string) {
	if _, ok := fields["detail"]; ok && len(fields) == 1 {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}
	response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
}
