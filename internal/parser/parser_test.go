package parser

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/nlp"
	"github.com/Hariharasudhan07/FinanceApp/internal/parsererror"
	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

// stubAnalyzer returns a fixed analysis, keeping tests independent of the
// tagger model.
type stubAnalyzer struct {
	analysis *nlp.Analysis
	err      error
}

func (s *stubAnalyzer) Analyze(string) (*nlp.Analysis, error) {
	return s.analysis, s.err
}

func newTestParser() *Parser {
	p := New(patterns.DefaultCategoryRules(), patterns.MerchantBlacklist, &stubAnalyzer{analysis: &nlp.Analysis{}})
	p.now = func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) }
	return p
}

func TestParseUPIDebit(t *testing.T) {
	p := newTestParser()
	record, err := p.Parse("INR 1500 debited for UPI transfer to Amit Kumar on 15May25", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, models.CategoryDebit, record.Category)
	assert.Equal(t, models.SubcategoryUPI, record.Subcategory)
	require.NotNil(t, record.Amount)
	assert.Equal(t, "1500", record.Amount.String())
	require.NotNil(t, record.Currency)
	assert.Equal(t, "INR", *record.Currency)
	require.NotNil(t, record.FormattedAmount)
	assert.Equal(t, "INR 1,500.00", *record.FormattedAmount)
	require.NotNil(t, record.Merchant)
	assert.Equal(t, "Amit Kumar", *record.Merchant)
	assert.Equal(t, "2025-05-15", record.Date)
	assert.Equal(t, models.ParserVersion, record.Parser)
	assert.InDelta(t, 0.80, record.Confidence, 0.001)
}

func TestParseEMILoanPrecedence(t *testing.T) {
	p := newTestParser()
	record, err := p.Parse("Your EMI of Rs 2500 for Personal Loan has been processed", time.Time{})
	require.NoError(t, err)

	assert.Contains(t, []string{models.CategoryLoan, models.CategoryEMI}, record.Category)
	assert.GreaterOrEqual(t, record.Confidence, 0.85)
	require.NotNil(t, record.Amount)
	assert.Equal(t, "2500", record.Amount.String())
}

func TestParseBalanceAlert(t *testing.T) {
	p := newTestParser()
	record, err := p.Parse("Balance alert: Your savings account balance is Rs 45000", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, models.CategoryInformational, record.Category)
	assert.Nil(t, record.Amount)
	assert.Nil(t, record.Merchant)
	assert.Nil(t, record.Reference)
	require.NotNil(t, record.InfoType)
	assert.Equal(t, models.InfoTypeBalanceUpdate, *record.InfoType)
	require.NotNil(t, record.Balance)
	assert.Equal(t, "45000", record.Balance.Value.String())
}

func TestParseAccountNumberGuard(t *testing.T) {
	p := newTestParser()
	record, err := p.Parse("Rs.5000 debited from A/c X6072", time.Time{})
	require.NoError(t, err)

	require.NotNil(t, record.Amount)
	assert.Equal(t, "5000", record.Amount.String())
}

func TestParseRelativeDate(t *testing.T) {
	p := newTestParser()
	ref := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	record, err := p.Parse("Rs 200 debited yesterday", ref)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", record.Date)
}

func TestParseEmptyInput(t *testing.T) {
	p := newTestParser()

	for _, input := range []string{"", "   ", "\n\t"} {
		record, err := p.Parse(input, time.Time{})
		assert.Nil(t, record)

		var inputErr *parsererror.InputError
		assert.True(t, errors.As(err, &inputErr), "input %q", input)
	}
}

func TestParseLoanProviderField(t *testing.T) {
	p := newTestParser()
	record, err := p.Parse("Repay Rs 5000 on your Slice App before due date to maintain credit score", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, models.CategoryLoan, record.Category)
	require.NotNil(t, record.LoanProvider)
	assert.Equal(t, "slice", *record.LoanProvider)
}

func TestParseDateFormat(t *testing.T) {
	p := newTestParser()
	record, err := p.Parse("Rs 100 debited", time.Time{})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), record.Date)
}

func TestParseIdempotent(t *testing.T) {
	p := newTestParser()
	ref := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	text := "INR 1500 debited for UPI transfer to Amit Kumar on 15May25"

	first, err := p.Parse(text, ref)
	require.NoError(t, err)
	second, err := p.Parse(text, ref)
	require.NoError(t, err)

	// The processing timestamp is the only field allowed to differ; the
	// stub clock is fixed, so the records must match exactly.
	assert.Equal(t, first, second)
}

func TestParseAnalyzerFailureDegrades(t *testing.T) {
	p := New(patterns.DefaultCategoryRules(), patterns.MerchantBlacklist,
		&stubAnalyzer{err: errors.New("model unavailable")})
	record, err := p.Parse("INR 1500 debited for UPI transfer to Amit Kumar", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryDebit, record.Category)
}

func TestParseTimestampFormat(t *testing.T) {
	p := newTestParser()
	record, err := p.Parse("Rs 100 debited", time.Time{})
	require.NoError(t, err)

	_, parseErr := time.Parse(time.RFC3339, record.Timestamp)
	assert.NoError(t, parseErr)
}
