package dto

import (
	"mime/multipart"

	"voice-enhancer/internal/app/model"
)

// Multipart field names of POST /api/process-audio.
const (
	FormFieldAudio   = "audio"
	FormFieldPersona = "persona"
	FormFieldAgent   = "agent"
)

// ProcessAudioRequest is a parsed process-audio form.
type ProcessAudioRequest struct {
	Audio   *multipart.FileHeader
	Persona string
	Agent   string
}

// ProcessAudioResponse is the pipeline result. Nothing is saved.
type ProcessAudioResponse struct {
	OriginalText string `json:"originalText"`
	EnhancedText string `json:"enhancedText"`
}

func NewProcessAudioResponse(e *model.Enhancement) *ProcessAudioResponse {
	return &ProcessAudioResponse{
		OriginalText: e.OriginalText,
		EnhancedText: e.EnhancedText,
	}
}
