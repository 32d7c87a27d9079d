// Package parse implements the one-shot parse command.
package parse

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hariharasudhan07/FinanceApp/cmd/root"
	"github.com/Hariharasudhan07/FinanceApp/internal/config"
	"github.com/Hariharasudhan07/FinanceApp/internal/container"
	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
)

var timestampFlag string

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Parse a single SMS message into a structured record",
	Long: `Parse classifies one SMS financial message and extracts its fields,
printing the resulting record as JSON.

Example:
  smsparse parse "Rs. 1500 debited from your account for Swiggy order"`,
	Args: cobra.MinimumNArgs(1),
	Run:  parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&timestampFlag, "timestamp", "t", "", "Reference timestamp for relative dates (RFC3339)")
}

func parseFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	c, err := container.NewContainer(config.GetGlobalConfig())
	if err != nil {
		logger.Fatal("Failed to initialize application", logging.Field{Key: "error", Value: err})
	}

	var reference time.Time
	if timestampFlag != "" {
		reference, err = time.Parse(time.RFC3339, timestampFlag)
		if err != nil {
			logger.Fatal("Invalid timestamp, expected RFC3339")
		}
	}

	record, err := c.Parser().Parse(strings.Join(args, " "), reference)
	if err != nil {
		logger.Fatal("Failed to parse message", logging.Field{Key: "error", Value: err})
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode record", logging.Field{Key: "error", Value: err})
	}

	if output := root.SharedFlags.Output; output != "" {
		if err := os.WriteFile(output, append(data, '\n'), 0600); err != nil {
			logger.Fatal("Failed to write output file", logging.Field{Key: "error", Value: err})
		}
		return
	}
	cmd.Println(string(data))
}
