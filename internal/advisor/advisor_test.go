package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		category    string
		explanation string
	}{
		{
			name:        "structured response",
			response:    "Category: debit\nExplanation: The message describes money leaving the account.",
			category:    "debit",
			explanation: "The message describes money leaving the account.",
		},
		{
			name:        "uppercase category is lowered",
			response:    "Category: LOAN\nExplanation: Mentions a loan disbursal.",
			category:    "loan",
			explanation: "Mentions a loan disbursal.",
		},
		{
			name:        "extra prose around structure",
			response:    "Here is my analysis.\nCategory: recharge\nExplanation: Prepaid top-up confirmation.\nThanks.",
			category:    "recharge",
			explanation: "Prepaid top-up confirmation.",
		},
		{
			name:        "unstructured response becomes explanation",
			response:    "This looks like a credit transaction to me.",
			category:    "",
			explanation: "This looks like a credit transaction to me.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSuggestion(tt.response)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.explanation, got.Explanation)
		})
	}
}

func TestEnsureClientRequiresKey(t *testing.T) {
	a := NewGeminiAdvisor("", "gemini-2.0-flash")
	err := a.ensureClient(t.Context())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
