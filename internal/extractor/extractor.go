// Package extractor pulls the structured fields out of a message: amount,
// merchant, date, balance and reference number. Each extractor is a pure
// function over the text plus, where useful, its linguistic analysis.
package extractor

import (
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, like "amit kumar" -> "Amit Kumar".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// capitalize uppercases the first letter of the word and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	out := string(unicode.ToUpper(runes[0]))
	if len(runes) > 1 {
		out += strings.ToLower(string(runes[1:]))
	}
	return out
}

// window returns s[start:start+size), clamped to the string bounds.
func window(s string, start, size int) string {
	if start >= len(s) {
		return ""
	}
	end := start + size
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
