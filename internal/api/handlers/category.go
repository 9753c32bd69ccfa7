package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"member-history-backend/internal/timeline"
)

// CategoryHandler serves the display category catalog
type CategoryHandler struct{}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ListCategories handles GET /categories
// @Summary List display categories
// @Description Get every timeline display category with its icon, color class and title key
// @Tags categories
// @Produce json
// @Success 200 {array} timeline.Category "Display categories"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, timeline.Categories())
}
