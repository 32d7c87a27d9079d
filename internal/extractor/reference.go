package extractor

import (
	"regexp"
	"strings"

	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

var refSeparator = regexp.MustCompile(`[:\-]\s*`)

// Reference extracts and normalizes a transaction reference number:
// separators become spaces and the whole thing is uppercased, so
// "Ref:ABC123xyz" yields "REF ABC123XYZ". Returns "" when absent.
func Reference(text string) string {
	match := patterns.Reference.FindString(text)
	if match == "" {
		return ""
	}
	ref := refSeparator.ReplaceAllString(match, " ")
	ref = patterns.Whitespace.ReplaceAllString(ref, " ")
	return strings.ToUpper(strings.TrimSpace(ref))
}
