package routes

import (
	"github.com/gin-gonic/gin"

	"voice-enhancer/internal/api/handlers"
	"voice-enhancer/internal/api/services"
)

// RegisterRoutes registers all API routes on the /api group
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	transcriptions := router.Group("/transcriptions")
	{
		transcriptions.POST("", transcriptionHandler.Create)
		transcriptions.GET("", transcriptionHandler.List)
		transcriptions.GET("/export", transcriptionHandler.Export)
	}

	audioHandler := handlers.NewAudioHandler(container.AudioService, container.MaxUploadBytes)
	router.POST("/process-audio", audioHandler.Process)

	if container.OptionsService != nil {
		optionsHandler := handlers.NewOptionsHandler(container.OptionsService)
		router.GET("/options", optionsHandler.Get)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	AudioService         services.AudioService
	OptionsService       services.OptionsService
	// MaxUploadBytes bounds the process-audio request body.
	MaxUploadBytes int64
}
