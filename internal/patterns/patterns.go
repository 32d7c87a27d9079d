// Package patterns holds the static pattern library: compiled regular
// expressions and ordered keyword tables for amounts, dates, references,
// categories, merchants and currencies. Pure data, no behavior; table order
// is part of the classification contract and must not be changed.
package patterns

import "regexp"

// Compiled message-level patterns. Shared, read-only after init.
var (
	// Amount shaped like a transaction value: grouped thousands optional,
	// at most two decimal digits.
	Amount = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|\d+\.\d{1,2}|\d+)`)

	// ContextAmount is the looser numeric shape used by the transactionality gate.
	ContextAmount = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{1,2})?`)

	// Reference numbers: indicator prefix followed by 5-20 alphanumerics.
	Reference = regexp.MustCompile(`(?i)\b(?:ref|txn|trans|upi|trf|id|crn|urn)[:\-]?\s*[a-z0-9]{5,20}\b`)

	// Balance mentions with optional currency token. The integer part is
	// unbounded so ungrouped balances like 45000 are captured whole.
	Balance = regexp.MustCompile(`(?i)(?:bal(?:ance)?|avail(?:able)?)(?:[:\-]|\s+of|\s+is)?\s*(rs|inr|usd|aed|eur)?\s*(\d+(?:[.,]\d{3})*(?:[.,]\d{1,2})?)`)

	// Date shapes: 15May25, 15-05-2025, 15 May 2025.
	DateCompact  = regexp.MustCompile(`(?i)(\d{1,2})([a-z]{3})(\d{2,4})`)
	DateStandard = regexp.MustCompile(`(\d{1,2})[-/.](\d{1,2})[-/.](\d{2,4})`)
	DateVerbose  = regexp.MustCompile(`(?i)(\d{1,2})\s+([a-z]{3,9})\s+(\d{4})`)

	// Explicit transaction-action keywords as whole words.
	TransactionIndicators = regexp.MustCompile(`(?i)\b(debited|credited|paid|sent|received|transfer|recharge|withdrawn|billed|utilized|charged|repayment|emi|purchase)\b`)

	// Currency-prefixed amount, late fallback for the amount extractor.
	CurrencyPrefixedAmount = regexp.MustCompile(`(?:rs\.?\s*|inr\s*)(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)\b`)

	// Normalization helpers.
	NonWord    = regexp.MustCompile(`[^\w\s]`)
	Whitespace = regexp.MustCompile(`\s+`)
)

// AmountIndicators are scanned (in order) by the transactionality gate; each
// hit opens a 30-character window that must contain a numeric amount.
var AmountIndicators = []string{"by", "of", "for", "rs", "inr", "amount", "charged"}

// TransactionContextKeywords are the indicators the amount extractor scans,
// in priority order. A superset of AmountIndicators.
var TransactionContextKeywords = []string{"by", "of", "for", "rs", "inr", "amount", "charged", "debited", "credited"}

// TransactionVerbs is the lemma set that marks a message as transactional
// when found on a verb token.
var TransactionVerbs = map[string]bool{
	"pay":      true,
	"send":     true,
	"transfer": true,
	"spend":    true,
	"use":      true,
	"purchase": true,
	"withdraw": true,
	"recharge": true,
}

// MerchantIndicators are scanned (in order) by the generic merchant extractor.
var MerchantIndicators = []string{"to", "at", "from", "trf", "transfer", "recharge", "paid"}

// DateIndicators open a 30-character window searched for a verbose date.
var DateIndicators = []string{"on", "date", "for", "by", "at"}

// RelativeDate maps a relative-date phrase to its day offset from the
// reference timestamp. Scanned in declaration order, substring match.
type RelativeDate struct {
	Phrase string
	Offset int
}

// RelativeDates in scan order.
var RelativeDates = []RelativeDate{
	{"today", 0},
	{"yesterday", -1},
	{"tomorrow", 1},
	{"now", 0},
	{"just now", 0},
	{"a moment ago", 0},
}

// UPIMerchantPatterns are tried in order against UPI debit messages; the
// capture is the merchant name.
var UPIMerchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)trf\s+to\s+([a-zA-Z0-9\s]{3,30})`),
	regexp.MustCompile(`(?i)sent\s+to\s+([a-zA-Z0-9\s]{3,30})`),
	regexp.MustCompile(`(?i)paid\s+to\s+([a-zA-Z0-9\s]{3,30})`),
	regexp.MustCompile(`(?i)transfer\s+to\s+([a-zA-Z0-9\s]{3,30})`),
}

// Merchant noise strippers.
var (
	MerchantTrailingRef   = regexp.MustCompile(`\s+Ref.*$`)
	MerchantTrailingNoise = regexp.MustCompile(`\s+(?:UPI|ref|id|crn).*`)
	MerchantTrailingDate  = regexp.MustCompile(`(?i)\s+on\s+.*`)
	MerchantCandidateCut  = regexp.MustCompile(`(?i)\b(?:ref|id|user|upi|rs|inr|amount|charged)\b.*`)
)

// Informational-message merchant patterns.
var (
	AppNamePattern     = regexp.MustCompile(`(?i)on your ([a-zA-Z]+) App`)
	OnlyOnPattern      = regexp.MustCompile(`(?i)only on ([a-zA-Z]+)`)
	InstitutionPattern = regexp.MustCompile(`^([A-Z\s]+) on`)
)

// MerchantBlacklist holds words never emitted as part of a merchant name.
var MerchantBlacklist = map[string]bool{
	"bank": true, "account": true, "a/c": true, "savings": true, "current": true,
	"balance": true, "available": true, "wallet": true, "upi": true, "refno": true,
	"reference": true, "id": true, "user": true, "app": true, "details": true,
	"call": true, "if not": true, "not you": true, "please": true, "contact": true,
	"customer care": true, "mobile": true, "recharge": true, "validity": true,
	"prepaid": true, "postpaid": true, "plan": true, "transaction": true,
	"amount": true, "rs": true, "inr": true, "usd": true, "aed": true, "eur": true,
	"date": true, "time": true, "location": true, "terminal": true, "pos": true,
	"card": true, "credit": true, "debit": true, "payment": true, "transfer": true,
	"to": true, "from": true, "at": true, "on": true, "for": true, "your": true,
	"acc": true, "xxx": true, "xx": true, "xxxx": true, "****": true,
	"cardnumber": true, "crd": true, "crdno": true, "cardno": true,
	"card number": true, "cvv": true, "expiry": true, "exp": true, "valid": true,
	"thru": true, "thru date": true, "mm/yy": true, "thank": true, "thanks": true,
	"regards": true, "team": true, "banking": true, "online": true, "sms": true,
	"message": true, "alert": true, "notification": true, "service": true,
	"charges": true, "fund": true, "securities": true, "bal": true,
	"reported": true, "excludes": true,
}
