// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hariharasudhan07/FinanceApp/internal/advisor"
	"github.com/Hariharasudhan07/FinanceApp/internal/api"
	"github.com/Hariharasudhan07/FinanceApp/internal/classifier"
	"github.com/Hariharasudhan07/FinanceApp/internal/common"
	"github.com/Hariharasudhan07/FinanceApp/internal/config"
	"github.com/Hariharasudhan07/FinanceApp/internal/currencyutils"
	"github.com/Hariharasudhan07/FinanceApp/internal/extractor"
	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
	"github.com/Hariharasudhan07/FinanceApp/internal/parser"
	"github.com/Hariharasudhan07/FinanceApp/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "smsparse",
		Short: "A CLI tool to parse SMS financial messages into structured transaction records.",
		Long: `smsparse classifies SMS financial messages (debits, credits, loans, EMIs,
recharges and more) and extracts the amount, merchant, date, balance and
reference into a structured record. It runs as a one-shot CLI, a CSV batch
processor or an HTTP API.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to smsparse!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Fan the configured logger out to every package.
			parser.SetLogger(Log)
			classifier.SetLogger(Log)
			extractor.SetLogger(Log)
			currencyutils.SetLogger(Log)
			store.SetLogger(Log)
			common.SetLogger(Log)
			api.SetLogger(Log)
			advisor.SetLogger(Log)

			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags are the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// GetLogrusAdapter returns the shared logger wrapped in the logging interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
