// Package batch handles batch processing of SMS message CSV files.
package batch

import (
	"github.com/spf13/cobra"

	"github.com/Hariharasudhan07/FinanceApp/cmd/root"
	"github.com/Hariharasudhan07/FinanceApp/internal/batch"
	"github.com/Hariharasudhan07/FinanceApp/internal/config"
	"github.com/Hariharasudhan07/FinanceApp/internal/container"
	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse a CSV file of SMS messages",
	Long: `Batch reads a CSV file with "message" and optional "timestamp" columns,
parses every message, and writes the records to the output file. An output
file ending in .json gets the full record array; any other extension gets a
flattened CSV with one row per message.

Example:
  smsparse batch -i messages.csv -o records.csv`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	cfg := config.GetGlobalConfig()

	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" || output == "" {
		logger.Fatal("Input and output files must be specified")
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize application", logging.Field{Key: "error", Value: err})
	}

	processor := batch.NewProcessor(c.Parser(), logger, cfg.Batch.FailFast)
	summary, err := processor.ProcessFile(input, output)
	if err != nil {
		logger.Fatal("Batch processing failed", logging.Field{Key: "error", Value: err})
	}

	logger.Info("Batch run finished",
		logging.Field{Key: logging.FieldCount, Value: summary.Total},
		logging.Field{Key: "parsed", Value: summary.Parsed},
		logging.Field{Key: "failed", Value: summary.Failed})
}
