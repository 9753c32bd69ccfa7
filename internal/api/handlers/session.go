package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"member-history-backend/internal/service"
)

// SessionHandler handles HTTP requests for per-session view state
type SessionHandler struct {
	sessions service.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions service.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

// SelectMemberRequest is the body of a member selection
type SelectMemberRequest struct {
	MemberID int `json:"member_id" binding:"required,min=1" example:"42"`
}

// SearchRequest is the body of a session search
type SearchRequest struct {
	Name string `json:"name" binding:"required" example:"dupont"`
}

// CreateSession handles POST /sessions
// @Summary Create a view session
// @Description Start an empty view session
// @Tags sessions
// @Produce json
// @Success 201 {object} service.ViewState "New session"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.sessions.Create())
}

// GetSession handles GET /sessions/:session
// @Summary Get a view session
// @Description Get the current view state of a session
// @Tags sessions
// @Produce json
// @Param session path string true "Session ID"
// @Success 200 {object} service.ViewState "Current view state"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{session} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	state, err := h.sessions.Get(c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Search handles POST /sessions/:session/search
// @Summary Search members in a session
// @Description Run a member search and store the results in the session
// @Tags sessions
// @Accept json
// @Produce json
// @Param session path string true "Session ID"
// @Param request body SearchRequest true "Search query"
// @Success 200 {object} service.ViewState "Updated view state"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 502 {object} ErrorResponse "Member API unavailable"
// @Router /sessions/{session}/search [post]
func (h *SessionHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessions.Search(c.Request.Context(), c.Param("session"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SelectMember handles POST /sessions/:session/select
// @Summary Select a member in a session
// @Description Load the member's timeline into the session. A newer selection in the same session cancels this one.
// @Tags sessions
// @Accept json
// @Produce json
// @Param session path string true "Session ID"
// @Param request body SelectMemberRequest true "Member to select"
// @Success 200 {object} service.ViewState "Updated view state"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Selection superseded by a newer one"
// @Failure 502 {object} ErrorResponse "Member API unavailable"
// @Router /sessions/{session}/select [post]
func (h *SessionHandler) SelectMember(c *gin.Context) {
	var req SelectMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessions.Select(c.Request.Context(), c.Param("session"), req.MemberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// DeleteSession handles DELETE /sessions/:session
// @Summary Forget a view session
// @Description Cancel any in-flight selection and drop the session
// @Tags sessions
// @Param session path string true "Session ID"
// @Success 204 "Session forgotten"
// @Router /sessions/{session} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	h.sessions.Forget(c.Param("session"))
	c.Status(http.StatusNoContent)
}
