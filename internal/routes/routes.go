package routes

import (
	"github.com/gin-gonic/gin"

	"petlink_backend/internal/handlers"
)

// RegisterRoutes mounts the HTTP API.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ReportHandler.RegisterRoutes(api)
		appHandlers.ShelterHandler.RegisterRoutes(api)
		appHandlers.AnimalHandler.RegisterRoutes(api)
		appHandlers.AdoptionHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
	}
}
