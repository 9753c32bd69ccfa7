package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"member-history-backend/internal/api/routes"
	"member-history-backend/internal/config"
	"member-history-backend/internal/logger"
	"member-history-backend/internal/service"

	_ "member-history-backend/docs" // This is needed for swag
)

//	@title			Member History API
//	@version		1.0
//	@description	Backend API for the cooperative member history view: cycle calendar, member timelines grouped by cycle and week, and counter summaries.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, cfg.LogFile)

	fallback, err := cfg.DefaultCycleConfig()
	if err != nil {
		logrus.Fatal("Invalid default cycle configuration:", err)
	}

	memberAPI := service.NewMemberAPIService(cfg)
	cycleConfigs := service.NewCycleConfigProvider(memberAPI, fallback, validator.New())

	// Resolve the cycle configuration once before serving
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MemberAPITimeout()+5*time.Second)
	active := cycleConfigs.Config(ctx)
	cancel()
	logrus.WithFields(logrus.Fields{
		"weeks_per_cycle": active.WeeksPerCycle,
		"week_a_date":     active.WeekADate.String(),
		"is_default":      cycleConfigs.IsDefault(),
	}).Info("Cycle configuration ready")

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(cfg, memberAPI, cycleConfigs)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
