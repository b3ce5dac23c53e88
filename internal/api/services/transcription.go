package services

import (
	"context"
	"io"

	"go.uber.org/zap"

	"voice-enhancer/internal/api/dto"
	"voice-enhancer/internal/api/errors"
	"voice-enhancer/internal/app/converter/export"
	"voice-enhancer/internal/app/metrics"
	"voice-enhancer/internal/app/repository"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	repository repository.TranscriptionDAO
	backend    string
	logger     *zap.Logger
}

// NewTranscriptionService creates a new history service. backend labels
// the storage in metrics.
func NewTranscriptionService(repository repository.TranscriptionDAO, backend string, logger *zap.Logger) TranscriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptionServiceImpl{
		repository: repository,
		backend:    backend,
		logger:     logger,
	}
}

// CreateTranscription appends a validated record to history
func (s *TranscriptionServiceImpl) CreateTranscription(ctx context.Context, req *dto.CreateTranscriptionRequest) (*dto.TranscriptionResponse, error) {
	stored, err := s.repository.Append(ctx, req.ToModel())
	if err != nil {
		s.logger.Error("failed to append transcription",
			zap.String("backend", s.backend),
			zap.Error(err))
		return nil, errors.NewInternalError("")
	}

	metrics.RecordsAppendedTotal.WithLabelValues(s.backend).Inc()
	s.logger.Info("transcription saved",
		zap.Int("id", stored.ID),
		zap.String("persona", stored.Persona),
		zap.String("agent", stored.Agent))

	response := dto.NewTranscriptionResponse(stored)
	return &response, nil
}

// ListTranscriptions returns every record, newest first
func (s *TranscriptionServiceImpl) ListTranscriptions(ctx context.Context) ([]dto.TranscriptionResponse, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		s.logger.Error("failed to list transcriptions",
			zap.String("backend", s.backend),
			zap.Error(err))
		return nil, errors.NewInternalError("")
	}
	return dto.NewTranscriptionResponses(records), nil
}

// ExportTranscriptions writes the history as an Excel workbook
func (s *TranscriptionServiceImpl) ExportTranscriptions(ctx context.Context, w io.Writer) error {
	records, err := s.repository.List(ctx)
	if err != nil {
		s.logger.Error("failed to list transcriptions for export", zap.Error(err))
		return errors.NewInternalError("")
	}
	if err := export.ToExcel(records, w); err != nil {
		s.logger.Error("failed to write export", zap.Error(err))
		return errors.NewInternalError("")
	}
	return nil
}
