package extractor

import (
	"strconv"
	"strings"
	"time"

	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

const dateOutputLayout = "2006-01-02"

// Date extracts the transaction date as "YYYY-MM-DD". Relative phrases are
// resolved against the reference timestamp; absolute formats are tried from
// most to least specific. Falls back to the reference timestamp itself, so
// a date is always returned.
func Date(text string, reference time.Time) string {
	lower := strings.ToLower(text)

	for _, rel := range patterns.RelativeDates {
		if strings.Contains(lower, rel.Phrase) {
			return reference.AddDate(0, 0, rel.Offset).Format(dateOutputLayout)
		}
	}

	// Compact: 15May25, 02Aug2025.
	if m := patterns.DateCompact.FindStringSubmatch(text); m != nil {
		if d, ok := parseDayMonthYear(m[1], m[2], expandYear(m[3])); ok {
			return d
		}
	}

	// Numeric: 15/05/25, 15-05-2025, 15.05.2025. Day-first wins; month-first
	// is the fallback for dates only valid that way around.
	if m := patterns.DateStandard.FindStringSubmatch(text); m != nil {
		year := expandYear(m[3])
		if d, ok := parseNumericDate(m[1], m[2], year); ok {
			return d
		}
		if d, ok := parseNumericDate(m[2], m[1], year); ok {
			return d
		}
	}

	// Verbose: 15 May 2025, 3 September 2025.
	if m := patterns.DateVerbose.FindStringSubmatch(text); m != nil {
		if d, ok := parseVerboseDate(m[1], m[2], m[3]); ok {
			return d
		}
	}

	// A date shape in the window after an indicator word.
	for _, indicator := range patterns.DateIndicators {
		idx := strings.Index(lower, indicator)
		if idx < 0 {
			continue
		}
		candidate := window(text, idx+len(indicator), 30)
		if m := patterns.DateVerbose.FindStringSubmatch(candidate); m != nil {
			if d, ok := parseDayMonthYear(m[1], m[2], m[3]); ok {
				return d
			}
		}
	}

	return reference.Format(dateOutputLayout)
}

// expandYear widens 2-digit years: values below 50 land in 20xx, the rest
// in 19xx.
func expandYear(year string) string {
	if len(year) != 2 {
		return year
	}
	if n, err := strconv.Atoi(year); err == nil && n < 50 {
		return "20" + year
	}
	return "19" + year
}

// parseDayMonthYear parses a date with an abbreviated month name.
func parseDayMonthYear(day, month, year string) (string, bool) {
	composed := day + " " + titleCase(month) + " " + year
	t, err := time.Parse("2 Jan 2006", composed)
	if err != nil {
		return "", false
	}
	return t.Format(dateOutputLayout), true
}

// parseVerboseDate tries the full month name first, then the abbreviation.
func parseVerboseDate(day, month, year string) (string, bool) {
	composed := day + " " + titleCase(month) + " " + year
	if t, err := time.Parse("2 January 2006", composed); err == nil {
		return t.Format(dateOutputLayout), true
	}
	if t, err := time.Parse("2 Jan 2006", composed); err == nil {
		return t.Format(dateOutputLayout), true
	}
	return "", false
}

// parseNumericDate validates a purely numeric day/month/year triple.
func parseNumericDate(day, month, year string) (string, bool) {
	t, err := time.Parse("2 1 2006", day+" "+month+" "+year)
	if err != nil {
		return "", false
	}
	return t.Format(dateOutputLayout), true
}
