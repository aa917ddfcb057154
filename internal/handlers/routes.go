package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/andrewkandzuba/azure-function-chat-api/internal/config"
	"github.com/andrewkandzuba/azure-function-chat-api/internal/middleware"
)

// SetupRoutes configures all API routes. The route table is built once at
// startup and never mutated afterwards.
func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	chatHandler := NewChatHandler()
	healthHandler := NewHealthHandler()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Chat endpoint requires the function-level access key
		api.POST("/chat", middleware.FunctionKey(cfg.FunctionKey), chatHandler.Chat)

		// Health check allows anonymous access
		api.GET("/health", healthHandler.Health)
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
}
