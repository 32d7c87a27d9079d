package extractor

import (
	"sort"
	"strings"

	"github.com/Hariharasudhan07/FinanceApp/internal/currencyutils"
	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

// Balance extracts the account balance mentioned in the message, if any.
// When several balances appear the earliest one wins. No plausibility range
// applies; balances legitimately exceed single-transaction bounds.
func Balance(text string) *models.MonetaryAmount {
	type candidate struct {
		value    string
		currency string
		pos      int
	}

	var candidates []candidate
	for _, loc := range patterns.Balance.FindAllStringSubmatchIndex(text, -1) {
		currency := ""
		if loc[2] >= 0 {
			currency = text[loc[2]:loc[3]]
		}
		candidates = append(candidates, candidate{
			value:    text[loc[4]:loc[5]],
			currency: currency,
			pos:      loc[0],
		})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].pos < candidates[j].pos })
	first := candidates[0]

	value, err := currencyutils.ParseAmount(strings.ReplaceAll(first.value, ",", ""))
	if err != nil {
		return nil
	}
	code := currencyutils.LookupCode(first.currency)
	m := models.NewMonetaryAmount(value, code, currencyutils.FormatAmount(value, code))
	return &m
}
