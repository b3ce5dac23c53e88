package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	apperrors "voice-enhancer/internal/app/errors"
)

// Storage backends selectable at startup.
const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Enhancement providers.
const (
	EnhancerOpenAI = "openai"
	EnhancerGemini = "gemini"
)

// Config is read from the process environment once at startup.
type Config struct {
	DevNoDB          bool   `env:"DEV_NO_DB" envDefault:"false"`
	DatabaseURL      string `env:"DATABASE_URL"`
	LocalStoragePath string `env:"LOCAL_STORAGE_PATH" envDefault:"data/.local_storage.json"`

	OpenAIAPIKey       string `env:"AI_INTEGRATIONS_OPENAI_API_KEY"`
	OpenAIBaseURL      string `env:"AI_INTEGRATIONS_OPENAI_BASE_URL"`
	TranscriptionModel string `env:"TRANSCRIPTION_MODEL" envDefault:"whisper-1"`

	EnhancerProvider string `env:"ENHANCER_PROVIDER" envDefault:"openai"`
	EnhancementModel string `env:"ENHANCEMENT_MODEL" envDefault:"gpt-4o"`
	GeminiAPIKey     string `env:"GEMINI_API_KEY"`
	GeminiModel      string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"26214400"`
	CatalogPath    string `env:"CATALOG_PATH"`

	// MaxMultipartMemory is how much of a parsed upload stays in memory;
	// the rest spills to temporary files.
	MaxMultipartMemory int64 `env:"MAX_MULTIPART_MEMORY" envDefault:"33554432"`

	Host         string        `env:"HOST" envDefault:"0.0.0.0"`
	Port         string        `env:"PORT" envDefault:"5000"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10m"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`

	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Overrides holds CLI flag values that take priority over env vars.
type Overrides struct {
	EnvFile string
	Port    string
	DevNoDB bool
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error: variables may be set system-wide.
func LoadEnv(envFile string) error {
	envPaths := []string{".env", ".env.local"}
	if envFile != "" {
		envPaths = []string{envFile}
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads configuration from .env, the environment and CLI overrides.
// Priority: CLI flags > environment variables > .env file > struct defaults.
func Load(overrides Overrides) (*Config, error) {
	if err := LoadEnv(overrides.EnvFile); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig.Error())
	}

	if cfg.OpenAIAPIKey == "" {
		cfg.OpenAIAPIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
	if overrides.Port != "" {
		cfg.Port = overrides.Port
	}
	if overrides.DevNoDB {
		cfg.DevNoDB = true
	}

	if err := cfg.ValidateLimits(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateLimits rejects upload limits that would disable intake checks.
func (c *Config) ValidateLimits() error {
	if c.MaxUploadBytes <= 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.MaxMultipartMemory <= 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "MAX_MULTIPART_MEMORY must be positive, got %d", c.MaxMultipartMemory)
	}
	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StorageBackend returns which persistence backend the config selects.
func (c *Config) StorageBackend() string {
	if c.DevNoDB {
		return StorageFile
	}
	if IsSQLiteURL(c.DatabaseURL) {
		return StorageSQLite
	}
	return StoragePostgres
}

// ValidateStorage checks that the selected backend can be constructed.
func (c *Config) ValidateStorage() error {
	if c.DevNoDB {
		if strings.TrimSpace(c.LocalStoragePath) == "" {
			return apperrors.RequiredField("LOCAL_STORAGE_PATH")
		}
		return nil
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return apperrors.ErrMissingDatabaseURL
	}
	return nil
}

// ValidateProviders checks the enhancement provider selection. A missing
// OpenAI key is not an error here: the service starts and provider calls
// fail per request.
func (c *Config) ValidateProviders() error {
	switch c.EnhancerProvider {
	case EnhancerOpenAI, "":
	case EnhancerGemini:
		if c.GeminiAPIKey == "" {
			return apperrors.Wrap(apperrors.ErrMissingAPIKey, "GEMINI_API_KEY")
		}
	default:
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "unknown ENHANCER_PROVIDER %q", c.EnhancerProvider)
	}
	return nil
}

// IsSQLiteURL reports whether a DATABASE_URL points at a SQLite file.
func IsSQLiteURL(url string) bool {
	return strings.HasPrefix(url, "sqlite://") || strings.HasPrefix(url, "file:")
}

// SQLitePath turns a sqlite:// URL into a go-sqlite3 DSN. file: DSNs are
// passed through unchanged.
func SQLitePath(url string) string {
	if strings.HasPrefix(url, "sqlite://") {
		return filepath.Clean(strings.TrimPrefix(url, "sqlite://"))
	}
	return url
}
