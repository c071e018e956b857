package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"conference-review-api/services"
)

// serviceErrorStatus maps the service error taxonomy onto HTTP statuses.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrOptimization):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWithServiceError(c *gin.Context, err error) {
	c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
}
