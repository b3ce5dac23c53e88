//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"voice-enhancer/internal/app/repository"
	"voice-enhancer/internal/config"
)

// InitializeApplication assembles the HTTP service.
func InitializeApplication(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, func(), error) {
	wire.Build(
		provideTranscriptionDAO,
		provideOpenAIClient,
		provideTranscriber,
		provideEnhancer,
		provideConverter,
		provideCatalog,
		provideServiceContainer,
		provideServer,
		newApplication,
	)
	return nil, nil, nil
}

// InitializeTranscriptionDAO opens only the history store.
func InitializeTranscriptionDAO(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.TranscriptionDAO, func(), error) {
	wire.Build(provideTranscriptionDAO)
	return nil, nil, nil
}
