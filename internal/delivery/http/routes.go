package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cornndawwg/icatalyst-production-sub001/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		personas := v1.Group("/personas")
		{
			personas.POST("/detect", handler.DetectPersona)
			personas.GET("", handler.ListPersonas)
			personas.GET("/:name", handler.GetPersona)
		}

		v1.POST("/recommendations", handler.GenerateRecommendations)
		v1.POST("/accuracy/bulk-test", handler.RunBulkTest)
	}

	return router
}
