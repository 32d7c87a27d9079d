// Package batch processes CSV files of SMS messages through the parser,
// producing one output row per input message.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Hariharasudhan07/FinanceApp/internal/common"
	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/parser"
)

// MessageRow is one input CSV row: the SMS text and an optional RFC3339
// reference timestamp for relative dates.
type MessageRow struct {
	Message   string `csv:"message"`
	Timestamp string `csv:"timestamp"`
}

// RecordRow is one output CSV row, a flattened TransactionRecord. Error is
// set (and the other fields blank) when that message failed to parse.
type RecordRow struct {
	Message     string `csv:"message"`
	Category    string `csv:"category"`
	Subcategory string `csv:"subcategory"`
	Amount      string `csv:"amount"`
	Currency    string `csv:"currency"`
	Merchant    string `csv:"merchant"`
	Date        string `csv:"date"`
	Balance     string `csv:"balance"`
	Reference   string `csv:"reference"`
	Confidence  string `csv:"confidence"`
	Error       string `csv:"error"`
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Total  int
	Parsed int
	Failed int
}

// Processor runs SMS messages from a CSV file through the parser.
type Processor struct {
	parser   *parser.Parser
	logger   logging.Logger
	failFast bool
}

// NewProcessor creates a batch processor. With failFast set, the first row
// that fails to parse aborts the run; otherwise failures become error rows.
func NewProcessor(p *parser.Parser, logger logging.Logger, failFast bool) *Processor {
	return &Processor{parser: p, logger: logger, failFast: failFast}
}

// ProcessFile reads message rows from inputPath, parses each, and writes the
// results to outputPath. The output format is chosen by extension: .json gets
// the full record array, anything else a flattened CSV.
func (p *Processor) ProcessFile(inputPath, outputPath string) (*Summary, error) {
	rows, err := common.ReadCSVFile[MessageRow](inputPath)
	if err != nil {
		return nil, err
	}

	records, outRows, summary, err := p.processRows(rows)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(outputPath), ".json") {
		err = writeJSON(records, outputPath)
	} else {
		err = common.WriteCSVFile(outRows, outputPath)
	}
	if err != nil {
		return nil, err
	}

	p.logger.Info("Batch processing complete",
		logging.Field{Key: logging.FieldInputFile, Value: inputPath},
		logging.Field{Key: logging.FieldOutputFile, Value: outputPath},
		logging.Field{Key: logging.FieldCount, Value: summary.Total},
		logging.Field{Key: "failed", Value: summary.Failed})

	return summary, nil
}

func (p *Processor) processRows(rows []MessageRow) ([]*models.TransactionRecord, []RecordRow, *Summary, error) {
	records := make([]*models.TransactionRecord, 0, len(rows))
	outRows := make([]RecordRow, 0, len(rows))
	summary := &Summary{Total: len(rows)}

	for i, row := range rows {
		record, err := p.parseRow(row)
		if err != nil {
			if p.failFast {
				return nil, nil, nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			summary.Failed++
			p.logger.Warn("Failed to parse message",
				logging.Field{Key: "row", Value: i + 1},
				logging.Field{Key: logging.FieldError, Value: err})
			outRows = append(outRows, RecordRow{Message: row.Message, Error: err.Error()})
			continue
		}
		summary.Parsed++
		records = append(records, record)
		outRows = append(outRows, toRecordRow(record))
	}

	return records, outRows, summary, nil
}

func (p *Processor) parseRow(row MessageRow) (*models.TransactionRecord, error) {
	var reference time.Time
	if strings.TrimSpace(row.Timestamp) != "" {
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(row.Timestamp))
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", row.Timestamp, err)
		}
		reference = parsed
	}
	return p.parser.Parse(row.Message, reference)
}

func toRecordRow(record *models.TransactionRecord) RecordRow {
	row := RecordRow{
		Message:     record.RawText,
		Category:    record.Category,
		Subcategory: record.Subcategory,
		Date:        record.Date,
		Confidence:  fmt.Sprintf("%.2f", record.Confidence),
	}
	if record.Amount != nil {
		row.Amount = record.Amount.String()
	}
	if record.Currency != nil {
		row.Currency = *record.Currency
	}
	if record.Merchant != nil {
		row.Merchant = *record.Merchant
	}
	if record.Balance != nil {
		row.Balance = record.Balance.Formatted
	}
	if record.Reference != nil {
		row.Reference = *record.Reference
	}
	return row
}

func writeJSON(records []*models.TransactionRecord, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding records: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}
