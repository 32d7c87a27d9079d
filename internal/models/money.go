package models

import (
	"github.com/shopspring/decimal"
)

// Plausible single-transaction bounds. Values outside this range are treated
// as account numbers, phone fragments or other numeric noise.
var (
	MinPlausibleAmount = decimal.NewFromInt(1)
	MaxPlausibleAmount = decimal.NewFromInt(10_000_000)
)

func init() {
	// Records carry amounts as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// MonetaryAmount represents a monetary value extracted from a message:
// the numeric value, its ISO-ish 3-letter currency code and a display string.
type MonetaryAmount struct {
	Value     decimal.Decimal `json:"value"`
	Currency  string          `json:"currency"`
	Formatted string          `json:"formatted"`
}

// NewMonetaryAmount creates a MonetaryAmount with the given value and currency.
// The display string is left to the caller (currencyutils.FormatAmount).
func NewMonetaryAmount(value decimal.Decimal, currency, formatted string) MonetaryAmount {
	return MonetaryAmount{
		Value:     value,
		Currency:  currency,
		Formatted: formatted,
	}
}

// IsPlausibleAmount reports whether a value falls inside the accepted
// transaction range [1, 10,000,000].
func IsPlausibleAmount(value decimal.Decimal) bool {
	return value.GreaterThanOrEqual(MinPlausibleAmount) && value.LessThanOrEqual(MaxPlausibleAmount)
}
