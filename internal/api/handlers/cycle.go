package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/models"
	"member-history-backend/internal/service"
)

// CycleHandler handles HTTP requests for cycle calendar queries
type CycleHandler struct {
	cycleService service.CycleServiceInterface
}

// NewCycleHandler creates a new cycle handler
func NewCycleHandler(cycleService service.CycleServiceInterface) *CycleHandler {
	return &CycleHandler{
		cycleService: cycleService,
	}
}

// GetConfig handles GET /cycles/config
// @Summary Get cycle configuration
// @Description Get the active cycle configuration and its week letters
// @Tags cycles
// @Produce json
// @Success 200 {object} service.CycleConfigResponse "Active cycle configuration"
// @Router /cycles/config [get]
func (h *CycleHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.cycleService.GetConfig(c.Request.Context()))
}

// Locate handles GET /cycles/locate
// @Summary Locate a date
// @Description Get the cycle number and week letter a date falls in
// @Tags cycles
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} cycle.Position "Position of the date"
// @Failure 400 {object} ErrorResponse "Missing or invalid date"
// @Failure 422 {object} ErrorResponse "Date precedes the cycle epoch"
// @Router /cycles/locate [get]
func (h *CycleHandler) Locate(c *gin.Context) {
	date, err := models.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("date", "must be a date in YYYY-MM-DD format"))
		return
	}

	pos, err := h.cycleService.Locate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pos)
}

// Range handles GET /cycles/range
// @Summary Get the date range of the last cycles
// @Description Get the date range covering the last n cycles up to an end date (today by default)
// @Tags cycles
// @Produce json
// @Param n query int true "Number of cycles"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} cycle.Range "Date range"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 422 {object} ErrorResponse "End date precedes the cycle epoch"
// @Router /cycles/range [get]
func (h *CycleHandler) Range(c *gin.Context) {
	n, err := strconv.Atoi(c.Query("n"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("n", "must be an integer"))
		return
	}

	var end models.Date
	if raw := c.Query("end"); raw != "" {
		end, err = models.ParseDate(raw)
		if err != nil {
			respondError(c, apperrors.NewValidationError("end", "must be a date in YYYY-MM-DD format"))
			return
		}
	}

	r, err := h.cycleService.Range(c.Request.Context(), n, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, r)
}
