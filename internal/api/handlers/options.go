package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-enhancer/internal/api/middleware"
	"voice-enhancer/internal/api/services"
)

// OptionsHandler serves the persona and agent catalog
type OptionsHandler struct {
	service services.OptionsService
}

func NewOptionsHandler(service services.OptionsService) *OptionsHandler {
	return &OptionsHandler{service: service}
}

// Get handles GET /api/options
func (h *OptionsHandler) Get(c *gin.Context) {
	response, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
