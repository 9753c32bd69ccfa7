package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/logger"
	"member-history-backend/internal/service"
)

// MemberHandler handles HTTP requests for member history operations
type MemberHandler struct {
	historyService service.HistoryServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(historyService service.HistoryServiceInterface) *MemberHandler {
	return &MemberHandler{
		historyService: historyService,
	}
}

// SearchMembers handles GET /members/search
// @Summary Search members
// @Description Search cooperative members by name
// @Tags members
// @Produce json
// @Param name query string true "Name fragment (2 to 100 characters)"
// @Success 200 {object} service.MemberSearchResponse "Matching members"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 502 {object} ErrorResponse "Member API unavailable"
// @Router /members/search [get]
func (h *MemberHandler) SearchMembers(c *gin.Context) {
	resp, err := h.historyService.SearchMembers(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTimeline handles GET /members/:id/timeline
// @Summary Get member timeline
// @Description Get the member's history grouped by cycle and week, newest first, with counters and status
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} service.TimelineResponse "Member timeline"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 502 {object} ErrorResponse "Member API unavailable"
// @Router /members/{id}/timeline [get]
func (h *MemberHandler) GetTimeline(c *gin.Context) {
	memberID, ok := memberIDParam(c)
	if !ok {
		return
	}

	resp, err := h.historyService.GetTimeline(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.FromGinContext(c).WithField("placed", resp.Stats.Placed).Debugf("Built timeline with %d cycles", len(resp.Cycles))
	c.JSON(http.StatusOK, resp)
}

// GetCounters handles GET /members/:id/counters
// @Summary Get member counters
// @Description Get the latest FTOP and standard counter totals of the member
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} timeline.CounterSummary "Counter summary"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 502 {object} ErrorResponse "Member API unavailable"
// @Router /members/{id}/counters [get]
func (h *MemberHandler) GetCounters(c *gin.Context) {
	memberID, ok := memberIDParam(c)
	if !ok {
		return
	}

	summary, err := h.historyService.GetCounters(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// memberIDParam parses the :id path parameter and tags the request with it.
func memberIDParam(c *gin.Context) (int, bool) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil || memberID < 1 {
		respondError(c, apperrors.NewValidationError("id", "must be a positive integer"))
		return 0, false
	}

	c.Set(logger.MemberIDKey, memberID)
	c.Request = c.Request.WithContext(logger.ContextWithMemberID(c.Request.Context(), memberID))
	return memberID, true
}
