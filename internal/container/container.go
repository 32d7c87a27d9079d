// Package container provides dependency injection for the smsparse
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"strings"

	"github.com/Hariharasudhan07/FinanceApp/internal/advisor"
	"github.com/Hariharasudhan07/FinanceApp/internal/config"
	"github.com/Hariharasudhan07/FinanceApp/internal/currencyutils"
	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
	"github.com/Hariharasudhan07/FinanceApp/internal/nlp"
	"github.com/Hariharasudhan07/FinanceApp/internal/parser"
	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
	"github.com/Hariharasudhan07/FinanceApp/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; components are accessed through getters only.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	parser  *parser.Parser
	advisor advisor.Advisor
}

// NewContainer creates and wires all application dependencies: the pattern
// tables with any YAML overrides applied, the parser over them, and the
// optional AI advisor.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	patternStore := store.NewPatternStore(
		cfg.Patterns.CategoriesFile,
		cfg.Patterns.BlacklistFile,
		cfg.Patterns.CurrenciesFile,
	)

	rules := patterns.DefaultCategoryRules()
	overrides, err := patternStore.LoadCategoryOverrides()
	if err != nil {
		return nil, fmt.Errorf("loading category overrides: %w", err)
	}
	rules = store.ApplyCategoryOverrides(rules, overrides)

	blacklist := make(map[string]bool, len(patterns.MerchantBlacklist))
	for word := range patterns.MerchantBlacklist {
		blacklist[word] = true
	}
	additions, err := patternStore.LoadBlacklistAdditions()
	if err != nil {
		return nil, fmt.Errorf("loading blacklist additions: %w", err)
	}
	for _, word := range additions {
		blacklist[strings.ToLower(word)] = true
	}

	mappings, err := patternStore.LoadCurrencyMappings()
	if err != nil {
		return nil, fmt.Errorf("loading currency mappings: %w", err)
	}
	for _, m := range mappings {
		currencyutils.RegisterToken(m.Token, m.Code)
	}

	var adv advisor.Advisor
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		adv = advisor.NewGeminiAdvisor(cfg.AI.APIKey, cfg.AI.Model)
		logger.Info("AI suggestions enabled")
	} else {
		logger.Info("AI suggestions disabled")
	}

	return &Container{
		logger:  logger,
		config:  cfg,
		parser:  parser.New(rules, blacklist, nlp.NewProseAnalyzer()),
		advisor: adv,
	}, nil
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger {
	return c.logger
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Parser returns the message parser.
func (c *Container) Parser() *parser.Parser {
	return c.parser
}

// Advisor returns the AI advisor, or nil when AI suggestions are disabled.
func (c *Container) Advisor() advisor.Advisor {
	return c.advisor
}
