package converter

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"voice-enhancer/internal/app/api"
	"voice-enhancer/internal/app/metrics"
	"voice-enhancer/internal/app/model"
	"voice-enhancer/internal/app/util/files"
)

// Upload is one received audio file.
type Upload struct {
	Name   string
	Reader io.Reader
}

// Converter runs the voice pipeline: stage the upload, transcribe it,
// then enhance the transcript. It never persists results.
type Converter struct {
	transcriber api.Transcriber
	enhancer    api.Enhancer
	uploadDir   string
	logger      *zap.Logger
}

func NewConverter(transcriber api.Transcriber, enhancer api.Enhancer, uploadDir string, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		transcriber: transcriber,
		enhancer:    enhancer,
		uploadDir:   uploadDir,
		logger:      logger,
	}
}

// Convert returns the transcript and its enhancement. The staged copy of the
// upload is gone by the time Convert returns or panics, and before the
// enhancer is called.
func (c *Converter) Convert(ctx context.Context, upload Upload, persona, agent string) (*model.Enhancement, error) {
	original, err := c.transcribe(ctx, upload)
	if err != nil {
		return nil, err
	}

	enhanced, err := c.enhance(ctx, original, persona, agent)
	if err != nil {
		return nil, err
	}

	return &model.Enhancement{
		OriginalText: original,
		EnhancedText: enhanced,
	}, nil
}

func (c *Converter) transcribe(ctx context.Context, upload Upload) (string, error) {
	path, err := files.StageUpload(c.uploadDir, upload.Name, upload.Reader)
	if err != nil {
		c.logger.Error("failed to stage upload", zap.String("file", upload.Name), zap.Error(err))
		return "", err
	}
	defer c.cleanup(path)

	start := time.Now()
	text, err := c.transcriber.Transcript(ctx, path)
	c.observe(api.StageTranscription, start, err)
	if err != nil {
		c.logger.Warn("transcription failed", zap.String("file", upload.Name), zap.Error(err))
		return "", err
	}

	c.logger.Debug("transcription completed",
		zap.String("file", upload.Name),
		zap.Int("chars", len(text)),
		zap.Duration("took", time.Since(start)))
	return text, nil
}

func (c *Converter) enhance(ctx context.Context, text, persona, agent string) (string, error) {
	start := time.Now()
	enhanced, err := c.enhancer.Enhance(ctx, text, persona, agent)
	c.observe(api.StageEnhancement, start, err)
	if err != nil {
		c.logger.Warn("enhancement failed",
			zap.String("persona", persona),
			zap.String("agent", agent),
			zap.Error(err))
		return "", err
	}

	c.logger.Debug("enhancement completed",
		zap.String("persona", persona),
		zap.String("agent", agent),
		zap.Duration("took", time.Since(start)))
	return enhanced, nil
}

func (c *Converter) observe(stage string, start time.Time, err error) {
	metrics.ProviderCallDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	result := metrics.ResultOK
	if err != nil {
		result = metrics.ResultError
	}
	metrics.PipelineStagesTotal.WithLabelValues(stage, result).Inc()
}

func (c *Converter) cleanup(path string) {
	if err := files.RemoveIfExists(path); err != nil {
		c.logger.Warn("failed to remove staged upload", zap.String("path", path), zap.Error(err))
	}
}
