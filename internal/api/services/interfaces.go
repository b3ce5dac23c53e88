package services

import (
	"context"
	"io"

	"voice-enhancer/internal/api/dto"
	"voice-enhancer/internal/app/converter"
	"voice-enhancer/internal/app/model"
)

// TranscriptionService defines the interface for history operations
type TranscriptionService interface {
	CreateTranscription(ctx context.Context, req *dto.CreateTranscriptionRequest) (*dto.TranscriptionResponse, error)
	ListTranscriptions(ctx context.Context) ([]dto.TranscriptionResponse, error)
	ExportTranscriptions(ctx context.Context, w io.Writer) error
}

// AudioService defines the interface for the voice pipeline
type AudioService interface {
	ProcessAudio(ctx context.Context, req *dto.ProcessAudioRequest) (*dto.ProcessAudioResponse, error)
}

// OptionsService defines the interface for the label catalog
type OptionsService interface {
	GetOptions(ctx context.Context) (*dto.OptionsResponse, error)
}

// Pipeline turns an upload into an enhanced transcript.
type Pipeline interface {
	Convert(ctx context.Context, upload converter.Upload, persona, agent string) (*model.Enhancement, error)
}
