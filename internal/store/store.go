// Package store loads optional YAML overrides for the pattern library:
// extra category keywords, merchant blacklist additions and currency token
// mappings. Missing files are not errors; the built-in defaults apply.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// PatternStore manages loading of pattern override files.
type PatternStore struct {
	CategoriesFile string
	BlacklistFile  string
	CurrenciesFile string
}

// NewPatternStore creates a store for pattern override data.
func NewPatternStore(categoriesFile, blacklistFile, currenciesFile string) *PatternStore {
	return &PatternStore{
		CategoriesFile: categoriesFile,
		BlacklistFile:  blacklistFile,
		CurrenciesFile: currenciesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *PatternStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "smsparse", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// CategoryOverride adds keywords or exceptions to a named category rule.
type CategoryOverride struct {
	Name       string   `yaml:"name"`
	Keywords   []string `yaml:"keywords"`
	Exceptions []string `yaml:"exceptions"`
}

type categoriesDocument struct {
	Categories []CategoryOverride `yaml:"categories"`
}

// LoadCategoryOverrides reads category keyword additions from YAML. A
// missing file yields an empty slice, not an error.
func (s *PatternStore) LoadCategoryOverrides() ([]CategoryOverride, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Category overrides file not found: %s", filename)
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving category overrides file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading category overrides file: %w", err)
	}

	var doc categoriesDocument
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Categories) > 0 {
		log.Debugf("Loaded %d category overrides from %s", len(doc.Categories), filePath)
		return doc.Categories, nil
	}

	// Fallback: a bare list without the top-level key.
	var overrides []CategoryOverride
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("error parsing category overrides: %w", err)
	}
	log.Debugf("Loaded %d category overrides from %s", len(overrides), filePath)
	return overrides, nil
}

// ApplyCategoryOverrides merges override keywords and exceptions into the
// matching rules. Overrides naming unknown categories are skipped with a
// warning; new categories cannot be introduced by configuration.
func ApplyCategoryOverrides(rules []patterns.CategoryRule, overrides []CategoryOverride) []patterns.CategoryRule {
	for _, ov := range overrides {
		found := false
		for i := range rules {
			if rules[i].Name != ov.Name {
				continue
			}
			found = true
			for _, kw := range ov.Keywords {
				rules[i].Keywords = append(rules[i].Keywords, strings.ToLower(kw))
			}
			for _, exc := range ov.Exceptions {
				rules[i].Exceptions = append(rules[i].Exceptions, strings.ToLower(exc))
			}
		}
		if !found {
			log.Warnf("Ignoring override for unknown category: %s", ov.Name)
		}
	}
	return rules
}

// LoadBlacklistAdditions reads extra merchant blacklist words from YAML.
func (s *PatternStore) LoadBlacklistAdditions() ([]string, error) {
	filename := s.BlacklistFile
	if filename == "" {
		filename = "merchant_blacklist.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Merchant blacklist file not found: %s", filename)
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving merchant blacklist file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading merchant blacklist file: %w", err)
	}

	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("error parsing merchant blacklist: %w", err)
	}
	log.Debugf("Loaded %d blacklist additions from %s", len(words), filePath)
	return words, nil
}

// CurrencyMapping pairs a message token with its ISO currency code.
type CurrencyMapping struct {
	Token string `yaml:"token"`
	Code  string `yaml:"code"`
}

// LoadCurrencyMappings reads additional currency token mappings from YAML.
// Entries are appended after the defaults, so defaults keep precedence.
func (s *PatternStore) LoadCurrencyMappings() ([]CurrencyMapping, error) {
	filename := s.CurrenciesFile
	if filename == "" {
		filename = "currencies.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Currency mappings file not found: %s", filename)
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving currency mappings file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading currency mappings file: %w", err)
	}

	var mappings []CurrencyMapping
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("error parsing currency mappings: %w", err)
	}
	log.Debugf("Loaded %d currency mappings from %s", len(mappings), filePath)
	return mappings, nil
}
