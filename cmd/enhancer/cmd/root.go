package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"voice-enhancer/cmd/enhancer/cmd/common"
	"voice-enhancer/cmd/enhancer/cmd/history"
	"voice-enhancer/cmd/enhancer/cmd/serve"
	"voice-enhancer/cmd/enhancer/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enhancer",
	Short: "Turn spoken requests into polished prompts for AI assistants",
	Long: `Turn spoken requests into polished prompts for AI assistants.
- serve runs the HTTP service: upload audio, get a transcript and an enhanced prompt
- history lists or exports saved transcriptions
- Storage is PostgreSQL or SQLite via DATABASE_URL, or a local JSON file with DEV_NO_DB=1`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(version.Cmd)

	common.RegisterPersistentFlags(rootCmd)
}
