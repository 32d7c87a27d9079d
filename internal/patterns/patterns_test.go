package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategoryRulesOrder(t *testing.T) {
	rules := DefaultCategoryRules()

	var names []string
	for _, r := range rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"loan", "credit", "debit", "investment", "insurance",
		"emi", "recharge", "atm", "cheque", "informational",
	}, names)
}

func TestLoanProvidersCarryAliases(t *testing.T) {
	rules := DefaultCategoryRules()
	require.Equal(t, "loan", rules[0].Name)

	found := false
	for _, p := range rules[0].Providers {
		if p.Name == "slice" {
			found = true
			assert.Contains(t, p.Aliases, "pluxee")
		}
	}
	assert.True(t, found, "loan rule should include the slice provider")
}

func TestReferencePattern(t *testing.T) {
	assert.Equal(t, "Ref 123456789012", Reference.FindString("UPI Ref 123456789012 debited"))
	assert.Equal(t, "ID: AXIS9981", Reference.FindString("Txn ID: AXIS9981"))
	assert.Empty(t, Reference.FindString("no markers in this text"))
}

func TestBalancePatternCapturesFullInteger(t *testing.T) {
	m := Balance.FindStringSubmatch("your a/c balance is rs 45000")
	require.NotNil(t, m)
	assert.Equal(t, "rs", m[1])
	assert.Equal(t, "45000", m[2])
}

func TestRelativeDatesOrdered(t *testing.T) {
	require.NotEmpty(t, RelativeDates)
	assert.Equal(t, "today", RelativeDates[0].Phrase)
	assert.Equal(t, 0, RelativeDates[0].Offset)
}
