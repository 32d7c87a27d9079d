// Package currencyutils provides currency resolution and amount formatting
// shared by the extractors and the output layer.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultCurrency is assumed when a message names no currency.
const DefaultCurrency = "INR"

// CurrencyToken maps a token as it appears in message text to its ISO code.
type CurrencyToken struct {
	Token string
	Code  string
}

// CurrencyTokens in lookup order. Earlier entries win when several tokens
// appear in the same message.
var CurrencyTokens = []CurrencyToken{
	{"rs", "INR"}, {"inr", "INR"}, {"₹", "INR"},
	{"usd", "USD"}, {"$", "USD"}, {"dollars", "USD"},
	{"aed", "AED"}, {"dirhams", "AED"},
	{"eur", "EUR"}, {"€", "EUR"}, {"euros", "EUR"},
	{"gbp", "GBP"}, {"£", "GBP"}, {"pounds", "GBP"},
	{"sgd", "SGD"}, {"singapore dollars", "SGD"},
	{"jpy", "JPY"}, {"¥", "JPY"}, {"yen", "JPY"},
}

// RegisterToken appends a currency token mapping loaded from the pattern
// store. Built-in tokens keep precedence; duplicates are ignored.
func RegisterToken(token, code string) {
	token = strings.ToLower(strings.TrimSpace(token))
	code = strings.ToUpper(strings.TrimSpace(code))
	if token == "" || code == "" {
		return
	}
	for _, ct := range CurrencyTokens {
		if ct.Token == token {
			return
		}
	}
	CurrencyTokens = append(CurrencyTokens, CurrencyToken{Token: token, Code: code})
}

// ResolveCurrency scans text for a known currency token and returns its ISO
// code, falling back to DefaultCurrency.
func ResolveCurrency(text string) string {
	lower := strings.ToLower(text)
	for _, ct := range CurrencyTokens {
		if strings.Contains(lower, ct.Token) {
			return ct.Code
		}
	}
	return DefaultCurrency
}

// LookupCode resolves a single token (e.g. a regex capture group) to its ISO
// code. The empty string and unknown tokens map to DefaultCurrency.
func LookupCode(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return DefaultCurrency
	}
	for _, ct := range CurrencyTokens {
		if ct.Token == token {
			return ct.Code
		}
	}
	log.WithField("token", token).Debug("unknown currency token, assuming default")
	return DefaultCurrency
}

// ParseAmount parses a numeric string as found in message text into a
// decimal value. Thousands separators are stripped first.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if standardized == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatAmount renders an amount as "CODE 1,234.56": ISO code, one space,
// two fixed decimals and comma-grouped thousands.
func FormatAmount(amount decimal.Decimal, code string) string {
	return fmt.Sprintf("%s %s", code, groupThousands(amount.StringFixed(2)))
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)
	return b.String()
}
