package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/parser"
	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

func newTestProcessor(failFast bool) *Processor {
	p := parser.New(patterns.DefaultCategoryRules(), patterns.MerchantBlacklist, nil)
	return NewProcessor(p, logging.NewLogrusAdapter("error", "text"), failFast)
}

func writeInputFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestProcessFileCSVOutput(t *testing.T) {
	input := writeInputFile(t, strings.Join([]string{
		"message,timestamp",
		"Rs. 1500 debited from your account for Swiggy order,2025-06-10T12:00:00Z",
		"Recharge of Rs 239 successful for your Jio number,2025-06-10T12:00:00Z",
	}, "\n"))
	output := filepath.Join(t.TempDir(), "records.csv")

	summary, err := newTestProcessor(false).ProcessFile(input, output)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Parsed)
	assert.Equal(t, 0, summary.Failed)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "category")
	assert.Contains(t, lines[1], "debit")
	assert.Contains(t, lines[2], "recharge")
}

func TestProcessFileJSONOutput(t *testing.T) {
	input := writeInputFile(t, strings.Join([]string{
		"message,timestamp",
		"Rs. 1500 debited from your account,2025-06-10T12:00:00Z",
	}, "\n"))
	output := filepath.Join(t.TempDir(), "records.json")

	summary, err := newTestProcessor(false).ProcessFile(input, output)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Parsed)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var records []*models.TransactionRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "debit", records[0].Category)
}

func TestProcessRowsCollectsFailures(t *testing.T) {
	rows := []MessageRow{
		{Message: "Rs. 1500 debited from your account"},
		{Message: "   "},
		{Message: "Rs 100 sent via UPI", Timestamp: "not-a-timestamp"},
	}

	records, outRows, summary, err := newTestProcessor(false).processRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Parsed)
	assert.Equal(t, 2, summary.Failed)
	require.Len(t, records, 1)
	require.Len(t, outRows, 3)
	assert.Empty(t, outRows[0].Error)
	assert.Contains(t, outRows[1].Error, "empty SMS content")
	assert.Contains(t, outRows[2].Error, "invalid timestamp")
}

func TestProcessRowsFailFast(t *testing.T) {
	rows := []MessageRow{
		{Message: "   "},
		{Message: "Rs. 1500 debited from your account"},
	}

	_, _, _, err := newTestProcessor(true).processRows(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}
