package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mindcare/internal/api/handler"
	"mindcare/internal/api/middleware"
	"mindcare/internal/config"
)

// Router sets up all API routes. A nil adviser wires the service in
// degraded mode: execute fails closed and the health check reports it.
func Router(cfg *config.Config, adviser handler.Adviser) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Apply middlewares
	router.Use(cors.Default())
	router.Use(middleware.RequestIDMiddleware())

	// Create handlers
	executeHandler := handler.NewExecuteHandler(adviser)
	healthHandler := handler.NewHealthHandler(adviser != nil, config.GeminiModel)

	// Health check
	router.GET("/check", healthHandler.Check)

	// Execute API routes
	api := router.Group("/api")
	{
		api.POST("/execute", executeHandler.Execute)
	}

	return router
}
