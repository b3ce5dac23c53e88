package services

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"go.uber.org/zap"

	"voice-enhancer/internal/api/dto"
	"voice-enhancer/internal/api/errors"
	"voice-enhancer/internal/app/api"
	"voice-enhancer/internal/app/converter"
)

// DefaultMaxUploadBytes applies when no positive upload limit is configured.
const DefaultMaxUploadBytes int64 = 25 << 20

// AudioServiceImpl implements AudioService
type AudioServiceImpl struct {
	pipeline       Pipeline
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewAudioService creates a new audio service. A non-positive
// maxUploadBytes falls back to DefaultMaxUploadBytes.
func NewAudioService(pipeline Pipeline, maxUploadBytes int64, logger *zap.Logger) AudioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AudioServiceImpl{
		pipeline:       pipeline,
		maxUploadBytes: EffectiveUploadLimit(maxUploadBytes),
		logger:         logger,
	}
}

// EffectiveUploadLimit returns limit, or DefaultMaxUploadBytes when limit
// is not positive.
func EffectiveUploadLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultMaxUploadBytes
	}
	return limit
}

// UploadTooLargeMessage is the client message for an upload over limit.
func UploadTooLargeMessage(limit int64) string {
	return fmt.Sprintf("Audio file exceeds the %s limit", formatBytes(limit))
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

// ProcessAudio transcribes and enhances one upload. The result is not saved.
func (s *AudioServiceImpl) ProcessAudio(ctx context.Context, req *dto.ProcessAudioRequest) (*dto.ProcessAudioResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	file, err := req.Audio.Open()
	if err != nil {
		s.logger.Error("failed to open upload", zap.String("file", req.Audio.Filename), zap.Error(err))
		return nil, errors.NewInternalError(errors.MsgProcessingFailed)
	}
	defer file.Close()

	upload := converter.Upload{Name: req.Audio.Filename, Reader: file}
	result, err := s.pipeline.Convert(ctx, upload, req.Persona, req.Agent)
	if err != nil {
		s.logger.Error("audio processing failed",
			zap.String("file", req.Audio.Filename),
			zap.String("persona", req.Persona),
			zap.String("agent", req.Agent),
			zap.Error(err))
		if msg := api.UpstreamMessage(err); msg != "" {
			return nil, errors.NewInternalError(msg)
		}
		return nil, errors.NewInternalError(errors.MsgProcessingFailed)
	}

	return dto.NewProcessAudioResponse(result), nil
}

func (s *AudioServiceImpl) validate(req *dto.ProcessAudioRequest) error {
	if req.Audio == nil {
		return errors.NewBadRequestError(errors.MsgNoAudio)
	}
	if req.Persona == "" || req.Agent == "" {
		return errors.NewBadRequestError(errors.MsgLabelsRequired)
	}
	if req.Audio.Size > s.maxUploadBytes {
		return errors.NewBadRequestError(UploadTooLargeMessage(s.maxUploadBytes))
	}
	if !AcceptedAudioType(req.Audio.Header.Get("Content-Type")) {
		return errors.NewBadRequestError(errors.MsgUnsupportedAudio)
	}
	return nil
}

// AcceptedAudioType reports whether a declared part content type may hold
// audio. Browser recorders label webm audio as video/webm; an absent type
// is accepted.
func AcceptedAudioType(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "audio/") ||
		strings.HasPrefix(mediaType, "video/") ||
		mediaType == "application/octet-stream"
}
