// Package parser orchestrates the parsing pipeline: linguistic analysis,
// classification and field extraction, assembled into a TransactionRecord.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Hariharasudhan07/FinanceApp/internal/classifier"
	"github.com/Hariharasudhan07/FinanceApp/internal/extractor"
	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/nlp"
	"github.com/Hariharasudhan07/FinanceApp/internal/parsererror"
	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parser turns raw SMS text into structured transaction records. It is safe
// for concurrent use; all rule tables are read-only after construction.
type Parser struct {
	classifier *classifier.Classifier
	merchants  *extractor.MerchantExtractor
	analyzer   nlp.Analyzer
	now        func() time.Time
}

// New assembles a Parser from the rule table, merchant blacklist and an
// analyzer. A nil analyzer disables the linguistic fallbacks but everything
// pattern-driven still works.
func New(rules []patterns.CategoryRule, blacklist map[string]bool, analyzer nlp.Analyzer) *Parser {
	return &Parser{
		classifier: classifier.New(rules),
		merchants:  extractor.NewMerchantExtractor(rules, blacklist),
		analyzer:   analyzer,
		now:        time.Now,
	}
}

// NewDefault assembles a Parser over the built-in tables and the prose
// analyzer.
func NewDefault() *Parser {
	return New(patterns.DefaultCategoryRules(), patterns.MerchantBlacklist, nlp.NewProseAnalyzer())
}

// Parse processes one message. The reference timestamp anchors relative
// dates ("yesterday"); pass the zero time to use the current moment.
// Returns an InputError for blank input and a ProcessingError for unexpected
// pipeline failures.
func (p *Parser) Parse(text string, reference time.Time) (record *models.TransactionRecord, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, parsererror.NewInputError("empty SMS content")
	}
	if reference.IsZero() {
		reference = p.now()
	}

	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = parsererror.NewProcessingError("pipeline", fmt.Errorf("%v", r))
		}
	}()

	analysis := p.analyze(text)
	cls := p.classifier.Classify(text, analysis)

	record = &models.TransactionRecord{
		RawText:     text,
		Category:    cls.Category,
		Subcategory: cls.Subcategory,
		Date:        extractor.Date(text, reference),
		Balance:     extractor.Balance(text),
		Description: text,
		Parser:      models.ParserVersion,
		Timestamp:   p.now().Format(time.RFC3339),
		Confidence:  cls.Confidence,
	}

	// Transactional fields stay null for purely informational messages.
	if cls.Category != models.CategoryInformational {
		if amount := extractor.Amount(text, analysis); amount != nil {
			record.Amount = &amount.Value
			record.Currency = models.StringPtr(amount.Currency)
			record.FormattedAmount = models.StringPtr(amount.Formatted)
		}
		record.Merchant = p.merchants.Merchant(text, cls.Category, cls.Subcategory, analysis)
		if ref := extractor.Reference(text); ref != "" {
			record.Reference = models.StringPtr(ref)
		}
	}

	p.extendRecord(record, text, cls)

	log.WithFields(logrus.Fields{
		logging.FieldCategory:    cls.Category,
		logging.FieldSubcategory: cls.Subcategory,
		logging.FieldConfidence:  cls.Confidence,
	}).Debug("message parsed")

	return record, nil
}

// extendRecord fills in the category-specific metadata fields.
func (p *Parser) extendRecord(record *models.TransactionRecord, text string, cls models.ClassificationResult) {
	switch cls.Category {
	case models.CategoryLoan:
		if cls.Subcategory != "" && cls.Subcategory != models.SubcategoryGeneric {
			record.LoanProvider = models.StringPtr(cls.Subcategory)
		} else {
			record.LoanProvider = record.Merchant
		}
	case models.CategoryInvestment:
		if cls.Subcategory != "" {
			record.InvestmentPlatform = models.StringPtr(cls.Subcategory)
		} else {
			record.InvestmentPlatform = record.Merchant
		}
	case models.CategoryInsurance:
		if cls.Subcategory != "" {
			record.InsuranceProvider = models.StringPtr(cls.Subcategory)
		} else {
			record.InsuranceProvider = record.Merchant
		}
	case models.CategoryInformational:
		lower := strings.ToLower(text)
		switch {
		case containsAny(lower, patterns.InfoTypeMarketWords):
			record.InfoType = models.StringPtr(models.InfoTypeMarketUpdate)
		case containsAny(lower, patterns.InfoTypeBalanceWords):
			record.InfoType = models.StringPtr(models.InfoTypeBalanceUpdate)
		case containsAny(lower, patterns.InfoTypePromotionWords):
			record.InfoType = models.StringPtr(models.InfoTypePromotion)
		}
	}
}

// analyze runs the linguistic analyzer, degrading to pattern-only parsing
// when it is unavailable or fails.
func (p *Parser) analyze(text string) *nlp.Analysis {
	if p.analyzer == nil {
		return nil
	}
	analysis, err := p.analyzer.Analyze(text)
	if err != nil {
		log.WithError(err).Warn("linguistic analysis failed, continuing with patterns only")
		return nil
	}
	return analysis
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
