package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nutriquery/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middleware
	router.Use(RecoveryMiddleware(handler.logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(handler.logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.NoRoute(handler.NotFound)
	router.NoMethod(handler.MethodNotAllowed)

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// One limiter shared by both analyze paths
	limit := RateLimitMiddleware(cfg.RateLimit.PerIP)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", limit, handler.Analyze)
	}

	// Path of the original edge function, kept for existing clients
	router.POST("/off-analyze", limit, handler.Analyze)

	return router
}
