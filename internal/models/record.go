// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMessage is the immutable input to a parse: the SMS text and a reference
// timestamp used to resolve relative dates. A zero timestamp means "now".
type RawMessage struct {
	Text      string
	Timestamp time.Time
}

// NewRawMessage builds a RawMessage, defaulting the reference timestamp to the
// current time when none is supplied.
func NewRawMessage(text string, timestamp time.Time) RawMessage {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	return RawMessage{Text: text, Timestamp: timestamp}
}

// ClassificationResult is the classifier's verdict for one message.
// Confidence is a fixed constant per matching rule, not a learned probability.
type ClassificationResult struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Confidence  float64 `json:"confidence"`
}

// TransactionRecord is the normalized output of parsing one SMS message.
// Nullable fields are pointers and serialize as JSON null when absent; the
// category-specific extension fields are omitted entirely when not applicable.
type TransactionRecord struct {
	RawText         string           `json:"raw_text"`
	Category        string           `json:"category"`
	Subcategory     string           `json:"subcategory"`
	Amount          *decimal.Decimal `json:"amount"`
	Currency        *string          `json:"currency"`
	FormattedAmount *string          `json:"formatted_amount"`
	Merchant        *string          `json:"merchant"`
	Date            string           `json:"date"`
	Balance         *MonetaryAmount  `json:"balance"`
	Reference       *string          `json:"reference"`
	Description     string           `json:"description"`
	Parser          string           `json:"parser"`
	Timestamp       string           `json:"timestamp"`
	Confidence      float64          `json:"confidence"`

	LoanProvider       *string `json:"loan_provider,omitempty"`
	InvestmentPlatform *string `json:"investment_platform,omitempty"`
	InsuranceProvider  *string `json:"insurance_provider,omitempty"`
	InfoType           *string `json:"info_type,omitempty"`
}

// StringPtr returns a pointer to s. Convenience for the nullable record fields.
func StringPtr(s string) *string {
	return &s
}
