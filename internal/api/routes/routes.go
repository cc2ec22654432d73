// Package routes defines the HTTP routes for the document store service.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docstore-service/internal/api/handlers"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
)

// BasePath is the prefix of every API route.
const BasePath = "/api/v1/docstore"

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler      *handlers.HealthHandler
	CollectionsHandler *handlers.CollectionsHandler
	DocumentsHandler   *handlers.DocumentsHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	v1 := r.Group(BasePath)
	{
		// Health check routes (no auth required)
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		protected := v1.Group("")
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.Authenticate())
		}

		collections := protected.Group("/collections/:collection")
		{
			collections.GET("", cfg.CollectionsHandler.CollectionExists)
			collections.POST("", cfg.CollectionsHandler.CreateCollection)
			collections.DELETE("", cfg.CollectionsHandler.DeleteCollection)
			collections.POST("/lookup", cfg.CollectionsHandler.Lookup)

			collections.GET("/documents", cfg.DocumentsHandler.ListDocuments)
			collections.POST("/documents", cfg.DocumentsHandler.CreateDocument)
			collections.DELETE("/documents", cfg.CollectionsHandler.DeleteAllDocuments)

			documents := collections.Group("/documents/:documentId")
			{
				documents.GET("", cfg.DocumentsHandler.GetDocument)
				documents.PUT("", cfg.DocumentsHandler.ReplaceDocument)
				documents.DELETE("", cfg.DocumentsHandler.DeleteDocument)

				// Field mutations
				documents.DELETE("/fields", cfg.DocumentsHandler.DeleteAllFields)
				documents.POST("/fields/:field", cfg.DocumentsHandler.AddField)
				documents.PUT("/fields/:field", cfg.DocumentsHandler.UpdateField)
				documents.DELETE("/fields/:field", cfg.DocumentsHandler.DeleteField)
				documents.POST("/fields/:field/union", cfg.DocumentsHandler.ArrayUnion)
				documents.POST("/fields/:field/remove", cfg.DocumentsHandler.ArrayRemove)
			}
		}
	}
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware, cors gin.HandlerFunc) {
	// Apply global middleware
	if cors != nil {
		r.Use(cors)
	}
	r.Use(loggingMw.RequestLogger())
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())

	r.HandleMethodNotAllowed = true
	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())

	// Setup routes
	Setup(r, cfg)
}
