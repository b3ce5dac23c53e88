package app

import (
	"context"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"voice-enhancer/internal/api/routes"
	"voice-enhancer/internal/api/server"
	"voice-enhancer/internal/api/services"
	"voice-enhancer/internal/app/api"
	"voice-enhancer/internal/app/api/gemini"
	"voice-enhancer/internal/app/api/openai"
	"voice-enhancer/internal/app/api/openai/chat"
	"voice-enhancer/internal/app/api/openai/whisper"
	"voice-enhancer/internal/app/catalog"
	"voice-enhancer/internal/app/converter"
	"voice-enhancer/internal/app/repository"
	"voice-enhancer/internal/app/repository/localfile"
	"voice-enhancer/internal/app/repository/pg"
	"voice-enhancer/internal/app/repository/sqlite"
	"voice-enhancer/internal/config"
)

// Application is the assembled HTTP service.
type Application struct {
	Config *config.Config
	Logger *zap.Logger
	DAO    repository.TranscriptionDAO
	Server *server.Server
}

func newApplication(cfg *config.Config, logger *zap.Logger, dao repository.TranscriptionDAO, srv *server.Server) *Application {
	return &Application{
		Config: cfg,
		Logger: logger,
		DAO:    dao,
		Server: srv,
	}
}

// provideTranscriptionDAO opens the backend selected once at startup. The
// cleanup closes it.
func provideTranscriptionDAO(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.TranscriptionDAO, func(), error) {
	if err := cfg.ValidateStorage(); err != nil {
		return nil, nil, err
	}

	var (
		dao repository.TranscriptionDAO
		err error
	)
	backend := cfg.StorageBackend()
	switch backend {
	case config.StorageFile:
		store := localfile.NewStore(cfg.LocalStoragePath)
		logger.Info("using local file storage", zap.String("path", store.Path()))
		dao = store
	case config.StorageSQLite:
		path := config.SQLitePath(cfg.DatabaseURL)
		if dao, err = sqlite.NewSQLiteDB(ctx, path); err != nil {
			return nil, nil, err
		}
		logger.Info("using sqlite storage", zap.String("path", path))
	default:
		if dao, err = pg.NewPostgresDB(ctx, cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		logger.Info("using postgres storage")
	}

	cleanup := func() {
		if err := dao.Close(); err != nil {
			logger.Warn("failed to close storage", zap.String("backend", backend), zap.Error(err))
		}
	}
	return dao, cleanup, nil
}

func provideOpenAIClient(cfg *config.Config, logger *zap.Logger) *goopenai.Client {
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("AI_INTEGRATIONS_OPENAI_API_KEY is not set; provider calls will fail")
	}
	return openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
}

func provideTranscriber(client *goopenai.Client, cfg *config.Config) api.Transcriber {
	return whisper.NewRemoteTranscriber(client, cfg.TranscriptionModel)
}

func provideEnhancer(ctx context.Context, client *goopenai.Client, cfg *config.Config) (api.Enhancer, error) {
	if err := cfg.ValidateProviders(); err != nil {
		return nil, err
	}
	if cfg.EnhancerProvider == config.EnhancerGemini {
		return gemini.NewEnhancer(ctx, gemini.Config{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
	}
	return chat.NewEnhancer(client, cfg.EnhancementModel), nil
}

func provideConverter(transcriber api.Transcriber, enhancer api.Enhancer, cfg *config.Config, logger *zap.Logger) *converter.Converter {
	return converter.NewConverter(transcriber, enhancer, cfg.UploadDir, logger.Named("converter"))
}

func provideCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	return catalog.Load(cfg.CatalogPath)
}

func provideServiceContainer(
	cfg *config.Config,
	dao repository.TranscriptionDAO,
	conv *converter.Converter,
	cat *catalog.Catalog,
	logger *zap.Logger,
) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(dao, cfg.StorageBackend(), logger.Named("transcriptions")),
		AudioService:         services.NewAudioService(conv, cfg.MaxUploadBytes, logger.Named("audio")),
		OptionsService:       services.NewOptionsService(cat, cfg.MaxUploadBytes),
		MaxUploadBytes:       cfg.MaxUploadBytes,
	}
}

func provideServer(cfg *config.Config, container *routes.ServiceContainer, logger *zap.Logger) *server.Server {
	return server.NewServer(server.Config{
		Host:               cfg.Host,
		Port:               cfg.Port,
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		IdleTimeout:        cfg.IdleTimeout,
		Environment:        cfg.Environment,
		MaxMultipartMemory: cfg.MaxMultipartMemory,
	}, container, logger.Named("http"))
}
