package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voice-enhancer/cmd/enhancer/cmd/common"
	"voice-enhancer/internal/app"
	"voice-enhancer/internal/config"
)

const shutdownTimeout = 30 * time.Second

var port string

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Run the HTTP service.

Endpoints:
  POST /api/process-audio          multipart audio + persona + agent
  POST /api/transcriptions         save a result to history
  GET  /api/transcriptions         history, newest first
  GET  /api/transcriptions/export  history as .xlsx
  GET  /api/options                persona and agent catalog
  GET  /health, GET /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := common.Bootstrap(cmd, func(o *config.Overrides) {
			o.Port = port
		})
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return run(ctx, cfg, logger)
	},
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	application, cleanup, err := app.InitializeApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}
	defer cleanup()

	errCh := application.Server.Start()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return application.Server.Shutdown(shutdownCtx)
}
