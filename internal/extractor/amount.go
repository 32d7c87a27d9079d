package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Hariharasudhan07/FinanceApp/internal/currencyutils"
	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/nlp"
	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

var (
	nonAmountChars     = regexp.MustCompile(`[^\d.]`)
	singleLetterToken  = regexp.MustCompile(`^[a-zA-Z]$`)
	cleanAmountPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	bareNumberPattern  = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d{1,2})?`)
)

type positionedAmount struct {
	value decimal.Decimal
	pos   int
}

// Amount extracts the transaction amount. Amounts following a transaction
// indicator win, earliest in the text first; values preceded by X or #
// are treated as masked account numbers and skipped. Returns nil when no
// plausible amount is found.
func Amount(text string, analysis *nlp.Analysis) *models.MonetaryAmount {
	lower := strings.ToLower(text)

	// Amounts in the 30 characters following a transaction indicator.
	var amounts []positionedAmount
	for _, indicator := range patterns.TransactionContextKeywords {
		idx := strings.Index(lower, indicator)
		if idx < 0 {
			continue
		}
		pos := idx + len(indicator)
		context := window(text, pos, 30)

		loc := patterns.Amount.FindStringIndex(context)
		if loc == nil {
			continue
		}
		matched := context[loc[0]:loc[1]]
		value, err := currencyutils.ParseAmount(matched)
		if err != nil || !models.IsPlausibleAmount(value) {
			continue
		}

		actualPos := pos + loc[0]
		if actualPos > 0 {
			prev := text[actualPos-1]
			if prev == 'X' || prev == 'x' || prev == '#' {
				continue
			}
		}
		if end := actualPos + len(matched); end < len(text) {
			next := text[end]
			if next != ' ' && next != '\t' && next != '\n' &&
				next != '.' && next != ',' && next != ')' && next != ']' && next != '}' {
				continue
			}
		}

		amounts = append(amounts, positionedAmount{value: value, pos: actualPos})
	}

	if len(amounts) > 0 {
		sort.Slice(amounts, func(i, j int) bool { return amounts[i].pos < amounts[j].pos })
		return monetary(amounts[0].value, currencyutils.ResolveCurrency(text))
	}

	// Monetary entities near a transaction indicator.
	if analysis != nil {
		for _, ent := range analysis.EntitiesLabeled("MONEY") {
			start := ent.Start - 50
			if start < 0 {
				start = 0
			}
			context := lower[start:ent.Start]
			if !containsAny(context, patterns.TransactionContextKeywords) {
				continue
			}
			clean := nonAmountChars.ReplaceAllString(ent.Text, "")
			if !cleanAmountPattern.MatchString(clean) {
				continue
			}
			value, err := decimal.NewFromString(clean)
			if err != nil || !models.IsPlausibleAmount(value) {
				continue
			}
			return monetary(value, currencyutils.ResolveCurrency(text))
		}
	}

	// Currency-prefixed amount anywhere in the text.
	if m := patterns.CurrencyPrefixedAmount.FindStringSubmatch(lower); m != nil {
		if value, err := currencyutils.ParseAmount(m[1]); err == nil && models.IsPlausibleAmount(value) {
			return monetary(value, currencyutils.ResolveCurrency(text))
		}
	}

	// Last resort: any number-like token that is not a date or a masked
	// account number.
	if analysis != nil {
		for i, tok := range analysis.Tokens {
			if !tok.LikeNum || tok.Entity == "DATE" {
				continue
			}
			if i > 0 && singleLetterToken.MatchString(analysis.Tokens[i-1].Text) {
				continue
			}
			value, err := currencyutils.ParseAmount(tok.Text)
			if err != nil || !models.IsPlausibleAmount(value) {
				continue
			}
			return monetary(value, currencyutils.DefaultCurrency)
		}
	}

	return bareNumberAmount(text)
}

// bareNumberAmount scans for standalone numbers, skipping date fragments and
// masked account numbers such as X6072.
func bareNumberAmount(text string) *models.MonetaryAmount {
	dateSpans := dateSpans(text)
	for _, loc := range bareNumberPattern.FindAllStringIndex(text, -1) {
		if loc[0] > 0 {
			prev := rune(text[loc[0]-1])
			if prev == '#' || (prev >= 'A' && prev <= 'Z') || (prev >= 'a' && prev <= 'z') {
				continue
			}
		}
		if insideAnySpan(dateSpans, loc[0], loc[1]) {
			continue
		}
		value, err := currencyutils.ParseAmount(text[loc[0]:loc[1]])
		if err != nil || !models.IsPlausibleAmount(value) {
			continue
		}
		return monetary(value, currencyutils.DefaultCurrency)
	}
	return nil
}

func dateSpans(text string) [][]int {
	var spans [][]int
	for _, re := range []*regexp.Regexp{patterns.DateCompact, patterns.DateStandard, patterns.DateVerbose} {
		spans = append(spans, re.FindAllStringIndex(text, -1)...)
	}
	return spans
}

func insideAnySpan(spans [][]int, start, end int) bool {
	for _, span := range spans {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}

func monetary(value decimal.Decimal, currency string) *models.MonetaryAmount {
	m := models.NewMonetaryAmount(value, currency, currencyutils.FormatAmount(value, currency))
	return &m
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
