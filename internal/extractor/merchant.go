package extractor

import (
	"strings"

	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/nlp"
	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

// MerchantExtractor resolves the counterparty of a transaction. It needs the
// rule table to look up provider lists and the blacklist to filter noise.
type MerchantExtractor struct {
	rules     []patterns.CategoryRule
	blacklist map[string]bool
}

// NewMerchantExtractor builds an extractor over the given rule table and
// merchant blacklist.
func NewMerchantExtractor(rules []patterns.CategoryRule, blacklist map[string]bool) *MerchantExtractor {
	return &MerchantExtractor{rules: rules, blacklist: blacklist}
}

// Merchant extracts the merchant or counterparty name for the classified
// message. Returns nil when no merchant applies (most informational
// messages).
func (m *MerchantExtractor) Merchant(text, category, subcategory string, analysis *nlp.Analysis) *string {
	lower := strings.ToLower(text)

	if category == models.CategoryInformational {
		return m.informationalMerchant(text, lower)
	}

	if category == models.CategoryLoan && subcategory != models.SubcategoryGeneric && subcategory != "" {
		return models.StringPtr(titleCase(subcategory) + " Loan")
	}

	if category == models.CategoryRecharge {
		for _, p := range m.providers(models.CategoryRecharge) {
			if strings.Contains(lower, p.Name) {
				return models.StringPtr(titleCase(p.Name) + " Recharge")
			}
		}
		return models.StringPtr("Mobile Recharge")
	}

	if category == models.CategoryInsurance {
		for _, p := range m.providers(models.CategoryInsurance) {
			if strings.Contains(lower, p.Name) {
				return models.StringPtr(titleCase(p.Name) + " Insurance")
			}
		}
		return models.StringPtr("Insurance Premium")
	}

	if category == models.CategoryInvestment {
		for _, platform := range patterns.InvestmentPlatforms {
			if strings.Contains(lower, platform) {
				return models.StringPtr(titleCase(platform) + " Investment")
			}
		}
		return models.StringPtr("Investment")
	}

	if category == models.CategoryDebit && subcategory == models.SubcategoryUPI {
		if name := upiMerchant(text); name != "" {
			return models.StringPtr(name)
		}
	}

	if name := m.indicatorMerchant(text, lower); name != "" {
		return models.StringPtr(name)
	}

	if analysis != nil {
		if name := m.chunkMerchant(analysis); name != "" {
			return models.StringPtr(name)
		}
	}

	if strings.Contains(lower, "atm") {
		return models.StringPtr("ATM Withdrawal")
	}
	if strings.Contains(lower, "pos") || strings.Contains(lower, "swipe") {
		return models.StringPtr("Card Purchase")
	}
	if strings.Contains(lower, "cheque") {
		return models.StringPtr("Cheque Transaction")
	}

	return models.StringPtr("Merchant")
}

// informationalMerchant pulls an app or institution name out of a
// non-transactional message.
func (m *MerchantExtractor) informationalMerchant(text, lower string) *string {
	if containsAny(lower, patterns.InformationalAppTriggers) {
		if match := patterns.AppNamePattern.FindStringSubmatch(text); match != nil {
			return models.StringPtr(match[1] + " App")
		}
		if match := patterns.OnlyOnPattern.FindStringSubmatch(text); match != nil {
			return models.StringPtr(match[1] + " App")
		}
	}
	if containsAny(lower, patterns.InformationalBalanceTriggers) {
		if match := patterns.InstitutionPattern.FindStringSubmatch(text); match != nil {
			return models.StringPtr(strings.TrimSpace(match[1]))
		}
	}
	return nil
}

// upiMerchant matches the "trf to NAME" family of UPI message shapes.
func upiMerchant(text string) string {
	for _, re := range patterns.UPIMerchantPatterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		merchant := strings.TrimSpace(match[1])
		merchant = patterns.MerchantTrailingRef.ReplaceAllString(merchant, "")
		merchant = patterns.MerchantTrailingNoise.ReplaceAllString(merchant, "")
		merchant = patterns.MerchantTrailingDate.ReplaceAllString(merchant, "")
		return titleCase(merchant)
	}
	return ""
}

// indicatorMerchant scans for a merchant indicator word and treats the
// following words as the candidate name, dropping noise and blacklisted
// terms.
func (m *MerchantExtractor) indicatorMerchant(text, lower string) string {
	for _, indicator := range patterns.MerchantIndicators {
		idx := strings.Index(lower, indicator)
		if idx < 0 {
			continue
		}
		pos := idx + len(indicator)
		if pos >= len(text) {
			continue
		}
		candidate := window(text, pos, 50)
		candidate = patterns.MerchantCandidateCut.ReplaceAllString(candidate, "")
		candidate = patterns.NonWord.ReplaceAllString(candidate, " ")

		fields := strings.Fields(candidate)
		if len(fields) > 5 {
			fields = fields[:5]
		}
		var words []string
		for _, w := range fields {
			if m.blacklist[strings.ToLower(w)] || len(w) <= 1 {
				continue
			}
			words = append(words, capitalize(w))
		}
		if len(words) > 0 {
			return strings.Join(words, " ")
		}
	}
	return ""
}

// chunkMerchant falls back to the noun chunk governed by a transaction verb.
func (m *MerchantExtractor) chunkMerchant(analysis *nlp.Analysis) string {
	for i, tok := range analysis.Tokens {
		if tok.POS != "VERB" || !patterns.TransactionVerbs[tok.Lemma] {
			continue
		}
		for _, chunk := range analysis.Chunks {
			if chunk.HeadVerb != i || (chunk.Dep != "dobj" && chunk.Dep != "pobj") {
				continue
			}
			var words []string
			for _, w := range chunk.Words {
				if m.blacklist[strings.ToLower(w)] {
					continue
				}
				words = append(words, capitalize(w))
			}
			if len(words) > 0 {
				return strings.Join(words, " ")
			}
		}
	}
	return ""
}

func (m *MerchantExtractor) providers(category string) []patterns.Provider {
	for _, rule := range m.rules {
		if rule.Name == category {
			return rule.Providers
		}
	}
	return nil
}
