package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/nlp"
	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

func newTestClassifier() *Classifier {
	return New(patterns.DefaultCategoryRules())
}

func TestIsTransactional(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"explicit indicator", "INR 1500 debited from your account", true},
		{"amount after indicator", "Payment of Rs 500 towards electricity", true},
		{"reference number", "Confirmation UPI:512345678901 received by merchant", true},
		{"plain notice", "Gold price rises; great time to sell", false},
		{"balance alert", "Balance alert: Your savings account balance is Rs 45000", false},
		{"balance with real debit", "Rs 500 debited. Avail bal: 12,345.67", true},
		{"greeting", "Welcome to our new mobile banking experience", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.IsTransactional(tt.text, nil))
		})
	}
}

func TestIsTransactionalVerbAnalysis(t *testing.T) {
	c := newTestClassifier()
	analysis := &nlp.Analysis{Tokens: []nlp.Token{
		{Text: "sent", POS: "VERB", Lemma: "send"},
		{Text: "money", POS: "NOUN", Lemma: "money"},
	}}

	assert.True(t, c.IsTransactional("sent money", analysis))
	assert.False(t, c.IsTransactional("sent money", nil))
}

func TestClassify(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name        string
		text        string
		category    string
		subcategory string
		confidence  float64
	}{
		{
			name:        "upi debit",
			text:        "INR 1500 debited for UPI transfer to Amit Kumar on 15May25",
			category:    models.CategoryDebit,
			subcategory: models.SubcategoryUPI,
			confidence:  0.80,
		},
		{
			name:        "loan with provider",
			text:        "Repay Rs 5000 on your Slice App before due date to maintain credit score",
			category:    models.CategoryLoan,
			subcategory: "slice",
			confidence:  0.95,
		},
		{
			name:        "loan keyword without context",
			text:        "Rs 2,999 debited towards Home Loan account",
			category:    models.CategoryLoan,
			subcategory: "",
			confidence:  0.85,
		},
		{
			name:        "loan context matched no provider",
			text:        "Your loan due date is approaching, repay Rs 4500 now",
			category:    models.CategoryLoan,
			subcategory: "",
			confidence:  0.90,
		},
		{
			name:        "salary credit",
			text:        "Rs 10,000 credited to your account, salary for May",
			category:    models.CategoryCredit,
			subcategory: "",
			confidence:  0.80,
		},
		{
			name:        "atm category",
			text:        "Rs 2000 withdrawn at ATM from A/c X6072",
			category:    models.CategoryATM,
			subcategory: "",
			confidence:  0.85,
		},
		{
			name:        "plain debit",
			text:        "Rs 350 spent on card ending 9912",
			category:    models.CategoryDebit,
			subcategory: models.SubcategoryGeneral,
			confidence:  0.75,
		},
		{
			name:        "balance alert informational",
			text:        "Balance alert: Your savings account balance is Rs 45000",
			category:    models.CategoryInformational,
			subcategory: models.SubcategoryGeneral,
			confidence:  0.95,
		},
		{
			name:        "informational",
			text:        "Gold price rises; great time to sell",
			category:    models.CategoryInformational,
			subcategory: models.SubcategoryGeneral,
			confidence:  0.95,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text, nil)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.subcategory, got.Subcategory)
			assert.InDelta(t, tt.confidence, got.Confidence, 0.001)
		})
	}
}

func TestClassifyCreditExceptions(t *testing.T) {
	c := newTestClassifier()

	// "credit card payment" suppresses the credit branch; the debit branch
	// then catches "payment".
	got := c.Classify("Credit card payment of Rs 1200 processed", nil)
	assert.Equal(t, models.CategoryDebit, got.Category)
}

func TestClassifyDebitMethodSubcategories(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		text        string
		subcategory string
	}{
		{"Rs 900 spent via UPI app today", models.SubcategoryUPI},
		{"Rs 900 spent at POS terminal", models.SubcategoryPOS},
		{"Card swipe purchase Rs 450 completed", models.SubcategoryPOS},
	}
	for _, tt := range tests {
		got := c.Classify(tt.text, nil)
		assert.Equal(t, models.CategoryDebit, got.Category, tt.text)
		assert.Equal(t, tt.subcategory, got.Subcategory, tt.text)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "rs 1 500 debited upi", normalize("Rs.1,500 debited (UPI)!"))
}
