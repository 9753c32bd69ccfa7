package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"member-history-backend/internal/config"
	"member-history-backend/internal/service"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg     *config.Config
	configs service.CycleConfigSource
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, configs service.CycleConfigSource) *HealthHandler {
	return &HealthHandler{
		cfg:     cfg,
		configs: configs,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including the member API configuration
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Services:  make(map[string]string),
	}

	if h.cfg.MemberAPIURL == "" {
		response.Services["member_api"] = "not configured"
		if h.cfg.IsProduction() {
			response.Status = "unhealthy"
		}
	} else {
		response.Services["member_api"] = "configured"
	}

	if h.configs.IsDefault() {
		response.Services["cycle_config"] = "default"
	} else {
		response.Services["cycle_config"] = "upstream"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests. Resolves the cycle configuration on first call.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	if h.cfg.MemberAPIURL == "" {
		ready = false
		services["member_api"] = "not ready: MEMBER_API_URL is not set"
	} else {
		services["member_api"] = "ready"
	}

	cycleConfig := h.configs.Config(c.Request.Context())
	if h.configs.IsDefault() {
		services["cycle_config"] = "ready (default, " + cycleConfig.WeekADate.String() + ")"
	} else {
		services["cycle_config"] = "ready"
	}

	response := map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
