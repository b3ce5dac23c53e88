// Package common holds flag and startup helpers shared by subcommands.
package common

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voice-enhancer/internal/app/logging"
	"voice-enhancer/internal/config"
)

// Persistent flag names.
const (
	FlagEnvFile = "env-file"
	FlagDevNoDB = "dev-no-db"
	FlagVerbose = "verbose"
)

// RegisterPersistentFlags adds the flags every subcommand understands.
func RegisterPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().String(FlagEnvFile, "", "load environment from this file instead of .env")
	root.PersistentFlags().Bool(FlagDevNoDB, false, "store history in a local JSON file (same as DEV_NO_DB=1)")
	root.PersistentFlags().BoolP(FlagVerbose, "V", false, "verbose output")
}

// Bootstrap loads configuration with cmd's flags applied and builds the
// logger. extra may set further overrides, such as a port.
func Bootstrap(cmd *cobra.Command, extra func(*config.Overrides)) (*config.Config, *zap.Logger, error) {
	envFile, _ := cmd.Flags().GetString(FlagEnvFile)
	devNoDB, _ := cmd.Flags().GetBool(FlagDevNoDB)
	verbose, _ := cmd.Flags().GetBool(FlagVerbose)

	overrides := config.Overrides{EnvFile: envFile, DevNoDB: devNoDB}
	if extra != nil {
		extra(&overrides)
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(!cfg.IsProduction(), level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
