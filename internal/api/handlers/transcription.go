package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-enhancer/internal/api/dto"
	"voice-enhancer/internal/api/middleware"
	"voice-enhancer/internal/api/services"
)

// XLSXContentType is the media type of exported workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TranscriptionHandler handles history endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Create handles POST /api/transcriptions
func (h *TranscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateTranscriptionRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateTranscription(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// List handles GET /api/transcriptions
func (h *TranscriptionHandler) List(c *gin.Context) {
	response, err := h.service.ListTranscriptions(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Export handles GET /api/transcriptions/export
func (h *TranscriptionHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportTranscriptions(c.Request.Context(), &buf); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=transcriptions.xlsx")
	c.Data(http.StatusOK, XLSXContentType, buf.Bytes())
}
