package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/logger"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusForError maps service errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDateBeforeEpoch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrSelectionSuperseded):
		return http.StatusConflict
	case apperrors.IsFetch(err):
		return http.StatusBadGateway
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError || status == http.StatusBadGateway {
		logger.FromGinContext(c).WithError(err).Errorf("Request failed with status %d", status)
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
