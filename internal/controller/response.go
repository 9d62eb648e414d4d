package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondSuccess wraps data in the API envelope.
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"success": false, "error": err.Error()})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// uintParam parses a path parameter as an unsigned id. On failure it writes a
// 400 response and returns false.
func uintParam(c *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid "+name+" format")
		return 0, false
	}
	return uint(val), true
}
