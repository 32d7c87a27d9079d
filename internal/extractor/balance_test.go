package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	got := Balance("Balance alert: Your savings account balance is Rs 45000")
	require.NotNil(t, got)
	assert.Equal(t, "45000", got.Value.String())
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, "INR 45,000.00", got.Formatted)
}

func TestBalanceAvailableForm(t *testing.T) {
	got := Balance("Rs 500 debited. Avail bal: 12,345.67")
	require.NotNil(t, got)
	assert.Equal(t, "12345.67", got.Value.String())
	assert.Equal(t, "INR", got.Currency)
}

func TestBalanceEarliestWins(t *testing.T) {
	got := Balance("Avail balance inr 9000. Ledger balance inr 12000")
	require.NotNil(t, got)
	assert.Equal(t, "9000", got.Value.String())
}

func TestBalanceCurrencyGroup(t *testing.T) {
	got := Balance("Available balance USD 1200")
	require.NotNil(t, got)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "1200", got.Value.String())
}

func TestBalanceExceedsTransactionRange(t *testing.T) {
	// Balances are not bounded by the single-transaction range.
	got := Balance("balance is 25000000")
	require.NotNil(t, got)
	assert.Equal(t, "25000000", got.Value.String())
}

func TestBalanceAbsent(t *testing.T) {
	assert.Nil(t, Balance("INR 1500 debited for UPI transfer"))
}

func TestReference(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"colon form", "payment done Ref:AB12345xyz", "REF AB12345XYZ"},
		{"upi reference", "UPI 512345678901 completed", "UPI 512345678901"},
		{"txn dash", "txn-9988776655 recorded", "TXN 9988776655"},
		{"absent", "no numbers in this message", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reference(tt.text))
		})
	}
}
