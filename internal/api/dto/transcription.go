package dto

import (
	"time"

	"github.com/samber/lo"

	"voice-enhancer/internal/app/model"
)

// CreateTranscriptionRequest is the body of POST /api/transcriptions.
// Fields are validated in declaration order.
type CreateTranscriptionRequest struct {
	OriginalText string `json:"originalText" binding:"required"`
	EnhancedText string `json:"enhancedText" binding:"required"`
	Persona      string `json:"persona" binding:"required"`
	Agent        string `json:"agent" binding:"required"`
}

// ToModel converts the request into an unsaved record.
func (r *CreateTranscriptionRequest) ToModel() model.NewTranscription {
	return model.NewTranscription{
		OriginalText: r.OriginalText,
		EnhancedText: r.EnhancedText,
		Persona:      r.Persona,
		Agent:        r.Agent,
	}
}

// TranscriptionResponse is a stored record as returned to clients.
type TranscriptionResponse struct {
	ID           int       `json:"id"`
	OriginalText string    `json:"originalText"`
	EnhancedText string    `json:"enhancedText"`
	Persona      string    `json:"persona"`
	Agent        string    `json:"agent"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewTranscriptionResponse converts a stored record.
func NewTranscriptionResponse(t model.Transcription) TranscriptionResponse {
	return TranscriptionResponse{
		ID:           t.ID,
		OriginalText: t.OriginalText,
		EnhancedText: t.EnhancedText,
		Persona:      t.Persona,
		Agent:        t.Agent,
		CreatedAt:    t.CreatedAt,
	}
}

// NewTranscriptionResponses converts records, keeping their order. The
// result is never nil so an empty history encodes as [].
func NewTranscriptionResponses(records []model.Transcription) []TranscriptionResponse {
	if len(records) == 0 {
		return []TranscriptionResponse{}
	}
	return lo.Map(records, func(t model.Transcription, _ int) TranscriptionResponse {
		return NewTranscriptionResponse(t)
	})
}
