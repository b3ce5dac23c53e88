package history

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"voice-enhancer/cmd/enhancer/cmd/common"
	"voice-enhancer/internal/api/dto"
	"voice-enhancer/internal/app"
	"voice-enhancer/internal/app/converter/export"
)

var outputFilePath string

func init() {
	exportCmd.Flags().StringVarP(&outputFilePath, "output", "o", "transcriptions.xlsx", "output .xlsx path")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(exportCmd)
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved transcriptions",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every saved transcription as JSON, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := common.Bootstrap(cmd, nil)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		dao, cleanup, err := app.InitializeTranscriptionDAO(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := dao.List(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewTranscriptionResponses(records))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every saved transcription to an Excel file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := common.Bootstrap(cmd, nil)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		dao, cleanup, err := app.InitializeTranscriptionDAO(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := dao.List(cmd.Context())
		if err != nil {
			return err
		}
		if err := export.SaveExcel(records, outputFilePath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "exported %d transcriptions to %s\n", len(records), outputFilePath)
		return nil
	},
}
