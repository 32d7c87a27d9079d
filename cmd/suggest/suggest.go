// Package suggest implements the AI category suggestion command.
package suggest

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hariharasudhan07/FinanceApp/cmd/root"
	"github.com/Hariharasudhan07/FinanceApp/internal/config"
	"github.com/Hariharasudhan07/FinanceApp/internal/container"
	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest [message]",
	Short: "Ask the AI advisor for a second opinion on a message's category",
	Long: `Suggest parses the message with the rule cascade, then asks the Gemini
advisor whether it agrees with the assigned category. The suggestion is
advisory output only; it never changes the pattern tables.

Requires ai.enabled in the configuration and the GEMINI_API_KEY environment
variable.`,
	Args: cobra.MinimumNArgs(1),
	Run:  suggestFunc,
}

func suggestFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	cfg := config.GetGlobalConfig()

	c, err := container.NewContainer(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize application", logging.Field{Key: "error", Value: err})
	}
	if c.Advisor() == nil {
		logger.Fatal("AI suggestions are disabled; enable ai.enabled and set GEMINI_API_KEY")
	}

	message := strings.Join(args, " ")
	record, err := c.Parser().Parse(message, time.Time{})
	if err != nil {
		logger.Fatal("Failed to parse message", logging.Field{Key: "error", Value: err})
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
	defer cancel()

	suggestion, err := c.Advisor().Suggest(ctx, message, record)
	if err != nil {
		logger.Fatal("Advisor request failed", logging.Field{Key: "error", Value: err})
	}

	cmd.Printf("Assigned category:  %s (confidence %.2f)\n", record.Category, record.Confidence)
	cmd.Printf("Suggested category: %s\n", suggestion.Category)
	if suggestion.Explanation != "" {
		cmd.Printf("Explanation:        %s\n", suggestion.Explanation)
	}
}
