// Package classifier decides whether a message describes a real transaction
// and assigns it a category, subcategory and confidence score.
package classifier

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/sirupsen/logrus"

	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/nlp"
	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Classifier runs the keyword cascade over the rule table. Keyword presence
// is computed in a single multi-pattern scan; the cascade then consults the
// hit set in rule order so precedence stays with the table.
type Classifier struct {
	rules    []patterns.CategoryRule
	matcher  *ahocorasick.Matcher
	keywords map[int][]int // rule index -> dictionary ids, in keyword order
}

// New builds a Classifier over the given rule table. Keywords shared by
// several rules get a single dictionary entry, so the matcher reports one id
// per unique keyword and every rule using it sees the hit.
func New(rules []patterns.CategoryRule) *Classifier {
	var dict []string
	idByKeyword := make(map[string]int)
	keywords := make(map[int][]int, len(rules))
	for i, rule := range rules {
		ids := make([]int, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			id, ok := idByKeyword[kw]
			if !ok {
				id = len(dict)
				idByKeyword[kw] = id
				dict = append(dict, kw)
			}
			ids = append(ids, id)
		}
		keywords[i] = ids
	}
	return &Classifier{
		rules:    rules,
		matcher:  ahocorasick.NewStringMatcher(dict),
		keywords: keywords,
	}
}

// IsTransactional reports whether the message describes an actual movement
// of money, as opposed to a balance alert, offer or other notice. The
// analysis may be nil, in which case the verb check is skipped.
func (c *Classifier) IsTransactional(text string, analysis *nlp.Analysis) bool {
	lower := strings.ToLower(text)

	if patterns.TransactionIndicators.MatchString(lower) {
		return true
	}

	if analysis != nil && analysis.HasVerbLemma(patterns.TransactionVerbs) {
		return true
	}

	// Digits that are part of a balance mention do not make a message
	// transactional; balance alerts are informational.
	balanceSpans := patterns.Balance.FindAllStringIndex(lower, -1)

	for _, indicator := range patterns.AmountIndicators {
		idx := strings.Index(lower, indicator)
		if idx < 0 {
			continue
		}
		pos := idx + len(indicator)
		if pos >= len(lower) {
			continue
		}
		end := pos + 30
		if end > len(lower) {
			end = len(lower)
		}
		loc := patterns.ContextAmount.FindStringIndex(lower[pos:end])
		if loc == nil {
			continue
		}
		if insideSpans(balanceSpans, pos+loc[0], pos+loc[1]) {
			continue
		}
		return true
	}

	return patterns.Reference.MatchString(lower)
}

// Classify assigns a category, subcategory and confidence to the message.
func (c *Classifier) Classify(text string, analysis *nlp.Analysis) models.ClassificationResult {
	normalized := normalize(text)

	if !c.IsTransactional(text, analysis) {
		return models.ClassificationResult{
			Category:    models.CategoryInformational,
			Subcategory: models.SubcategoryGeneral,
			Confidence:  0.95,
		}
	}

	hits := c.keywordHits(normalized)

	// Specialized categories take precedence over plain credit/debit.
	for i, rule := range c.rules {
		switch rule.Name {
		case models.CategoryCredit, models.CategoryDebit, models.CategoryInformational:
			continue
		}
		if !c.ruleHit(i, hits) {
			continue
		}
		if len(rule.ContextPhrases) > 0 && anyPhraseMatches(rule.ContextPhrases, normalized) {
			if rule.Name == models.CategoryLoan {
				if provider, ok := findProvider(rule.Providers, normalized); ok {
					return models.ClassificationResult{Category: rule.Name, Subcategory: provider, Confidence: 0.95}
				}
			}
			return models.ClassificationResult{Category: rule.Name, Confidence: 0.90}
		}
		return models.ClassificationResult{Category: rule.Name, Confidence: 0.85}
	}

	// Loan with provider identification, when only context phrases match.
	if i, rule, ok := c.ruleNamed(models.CategoryLoan); ok && c.ruleHit(i, hits) {
		if anyPhraseMatches(rule.ContextPhrases, normalized) {
			if provider, ok := findProvider(rule.Providers, normalized); ok {
				return models.ClassificationResult{Category: models.CategoryLoan, Subcategory: provider, Confidence: 0.95}
			}
			return models.ClassificationResult{Category: models.CategoryLoan, Subcategory: models.SubcategoryGeneric, Confidence: 0.90}
		}
	}

	if i, rule, ok := c.ruleNamed(models.CategoryCredit); ok && c.ruleHit(i, hits) {
		if !anyExceptionMatches(rule.Exceptions, normalized) {
			if strings.Contains(normalized, "emi") && strings.Contains(normalized, "credit") {
				return models.ClassificationResult{Category: models.CategoryEMI, Subcategory: "credit", Confidence: 0.85}
			}
			return models.ClassificationResult{Category: models.CategoryCredit, Confidence: 0.80}
		}
	}

	if i, rule, ok := c.ruleNamed(models.CategoryDebit); ok && c.ruleHit(i, hits) {
		if !anyExceptionMatches(rule.Exceptions, normalized) {
			if strings.Contains(normalized, "emi") {
				return models.ClassificationResult{Category: models.CategoryEMI, Subcategory: "debit", Confidence: 0.85}
			}
			if strings.Contains(normalized, "upi") {
				return models.ClassificationResult{Category: models.CategoryDebit, Subcategory: models.SubcategoryUPI, Confidence: 0.80}
			}
			if strings.Contains(normalized, "atm") {
				return models.ClassificationResult{Category: models.CategoryDebit, Subcategory: models.SubcategoryATM, Confidence: 0.80}
			}
			if strings.Contains(normalized, "pos") || strings.Contains(normalized, "swipe") {
				return models.ClassificationResult{Category: models.CategoryDebit, Subcategory: models.SubcategoryPOS, Confidence: 0.80}
			}
			return models.ClassificationResult{Category: models.CategoryDebit, Subcategory: models.SubcategoryGeneral, Confidence: 0.75}
		}
	}

	log.WithField(logging.FieldCategory, models.CategoryDebit).Debug("no rule matched, using fallback category")
	return models.ClassificationResult{Category: models.CategoryDebit, Subcategory: models.SubcategoryGeneral, Confidence: 0.70}
}

// keywordHits runs the multi-pattern scan and returns the set of matched
// dictionary ids.
func (c *Classifier) keywordHits(normalized string) map[int]bool {
	hits := make(map[int]bool)
	for _, id := range c.matcher.MatchThreadSafe([]byte(normalized)) {
		hits[id] = true
	}
	return hits
}

func (c *Classifier) ruleHit(ruleIdx int, hits map[int]bool) bool {
	for _, id := range c.keywords[ruleIdx] {
		if hits[id] {
			return true
		}
	}
	return false
}

func (c *Classifier) ruleNamed(name string) (int, patterns.CategoryRule, bool) {
	for i, rule := range c.rules {
		if rule.Name == name {
			return i, rule, true
		}
	}
	return 0, patterns.CategoryRule{}, false
}

// normalize lowercases the text, replaces punctuation with spaces and
// collapses whitespace, matching how keywords are matched against messages.
func normalize(text string) string {
	lower := patterns.NonWord.ReplaceAllString(strings.ToLower(text), " ")
	return strings.TrimSpace(patterns.Whitespace.ReplaceAllString(lower, " "))
}

func anyPhraseMatches(phrases []*regexp.Regexp, text string) bool {
	for _, re := range phrases {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func anyExceptionMatches(exceptions []string, text string) bool {
	for _, exc := range exceptions {
		if strings.Contains(text, exc) {
			return true
		}
	}
	return false
}

func insideSpans(spans [][]int, start, end int) bool {
	for _, span := range spans {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}

func findProvider(providers []patterns.Provider, text string) (string, bool) {
	for _, p := range providers {
		for _, alias := range p.Aliases {
			if strings.Contains(text, alias) {
				return p.Name, true
			}
		}
	}
	return "", false
}
