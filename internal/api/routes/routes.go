package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"member-history-backend/internal/api/handlers"
	"member-history-backend/internal/api/middleware"
	"member-history-backend/internal/config"
	"member-history-backend/internal/service"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, memberAPI service.MemberAPIClient, configs service.CycleConfigSource) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize services
	historyService := service.NewHistoryService(memberAPI, configs, validator)
	cycleService := service.NewCycleService(configs)
	sessionStore := service.NewSessionStore(historyService, cfg.SessionTTL())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, configs)
	memberHandler := handlers.NewMemberHandler(historyService)
	cycleHandler := handlers.NewCycleHandler(cycleService)
	sessionHandler := handlers.NewSessionHandler(sessionStore)
	categoryHandler := handlers.NewCategoryHandler()

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		members := v1.Group("/members")
		{
			members.GET("/search", memberHandler.SearchMembers)
			members.GET("/:id/timeline", memberHandler.GetTimeline)
			members.GET("/:id/counters", memberHandler.GetCounters)
		}

		cycles := v1.Group("/cycles")
		{
			cycles.GET("/config", cycleHandler.GetConfig)
			cycles.GET("/locate", cycleHandler.Locate)
			cycles.GET("/range", cycleHandler.Range)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:session", sessionHandler.GetSession)
			sessions.DELETE("/:session", sessionHandler.DeleteSession)
			sessions.POST("/:session/search", sessionHandler.Search)
			sessions.POST("/:session/select", sessionHandler.SelectMember)
		}

		v1.GET("/categories", categoryHandler.ListCategories)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(cfg *config.Config, configs service.CycleConfigSource) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(cfg, configs)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
