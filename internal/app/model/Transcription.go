package model

import "time"

// Transcription is a persisted (original, enhanced) pair. Records are
// append-only: ID and CreatedAt are assigned by the store and never change.
type Transcription struct {
	ID           int       `json:"id"`
	OriginalText string    `json:"originalText"`
	EnhancedText string    `json:"enhancedText"`
	Persona      string    `json:"persona"`
	Agent        string    `json:"agent"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewTranscription is the caller-supplied part of a Transcription.
type NewTranscription struct {
	OriginalText string
	EnhancedText string
	Persona      string
	Agent        string
}
