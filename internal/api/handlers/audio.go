package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-enhancer/internal/api/dto"
	"voice-enhancer/internal/api/errors"
	"voice-enhancer/internal/api/middleware"
	"voice-enhancer/internal/api/services"
)

// multipartOverhead is the room left over the upload limit for the form
// fields and part headers.
const multipartOverhead = 1 << 20

// AudioHandler handles the voice pipeline endpoint
type AudioHandler struct {
	service        services.AudioService
	maxUploadBytes int64
}

func NewAudioHandler(service services.AudioService, maxUploadBytes int64) *AudioHandler {
	return &AudioHandler{
		service:        service,
		maxUploadBytes: services.EffectiveUploadLimit(maxUploadBytes),
	}
}

// Process handles POST /api/process-audio
//
// A body that is not a multipart form, or has no audio part, is reported as
// a missing file. Reading stops once the body passes the upload limit, so an
// oversized recording is rejected before it is spooled to disk.
func (h *AudioHandler) Process(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	var req dto.ProcessAudioRequest
	form, err := c.MultipartForm()
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		middleware.HandleError(c, errors.NewBadRequestError(services.UploadTooLargeMessage(h.maxUploadBytes)))
		return
	}
	if err == nil && form != nil {
		req.Persona = firstValue(form.Value[dto.FormFieldPersona])
		req.Agent = firstValue(form.Value[dto.FormFieldAgent])
		if files := form.File[dto.FormFieldAudio]; len(files) > 0 {
			req.Audio = files[0]
		}
	}

	response, err := h.service.ProcessAudio(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
