package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

func writeTempYAML(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCategoryOverrides(t *testing.T) {
	path := writeTempYAML(t, "categories.yaml", `
categories:
  - name: recharge
    keywords:
      - double data
  - name: loan
    exceptions:
      - loan approved offer
`)
	s := NewPatternStore(path, "", "")
	overrides, err := s.LoadCategoryOverrides()
	require.NoError(t, err)
	require.Len(t, overrides, 2)
	assert.Equal(t, "recharge", overrides[0].Name)
	assert.Equal(t, []string{"double data"}, overrides[0].Keywords)
	assert.Equal(t, []string{"loan approved offer"}, overrides[1].Exceptions)
}

func TestLoadCategoryOverridesBareList(t *testing.T) {
	path := writeTempYAML(t, "categories.yaml", `
- name: debit
  keywords:
    - auto pay
`)
	s := NewPatternStore(path, "", "")
	overrides, err := s.LoadCategoryOverrides()
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, "debit", overrides[0].Name)
}

func TestLoadCategoryOverridesMissingFile(t *testing.T) {
	s := NewPatternStore(filepath.Join(t.TempDir(), "nope.yaml"), "", "")
	overrides, err := s.LoadCategoryOverrides()
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestApplyCategoryOverrides(t *testing.T) {
	rules := patterns.DefaultCategoryRules()
	merged := ApplyCategoryOverrides(rules, []CategoryOverride{
		{Name: "recharge", Keywords: []string{"Double Data"}},
		{Name: "no-such-category", Keywords: []string{"ignored"}},
	})

	var recharge *patterns.CategoryRule
	for i := range merged {
		if merged[i].Name == "recharge" {
			recharge = &merged[i]
		}
	}
	require.NotNil(t, recharge)
	assert.Contains(t, recharge.Keywords, "double data")
}

func TestLoadBlacklistAdditions(t *testing.T) {
	path := writeTempYAML(t, "merchant_blacklist.yaml", `
- promo
- helpline
`)
	s := NewPatternStore("", path, "")
	words, err := s.LoadBlacklistAdditions()
	require.NoError(t, err)
	assert.Equal(t, []string{"promo", "helpline"}, words)
}

func TestLoadCurrencyMappings(t *testing.T) {
	path := writeTempYAML(t, "currencies.yaml", `
- token: chf
  code: CHF
- token: francs
  code: CHF
`)
	s := NewPatternStore("", "", path)
	mappings, err := s.LoadCurrencyMappings()
	require.NoError(t, err)
	require.Len(t, mappings, 2)
	assert.Equal(t, "chf", mappings[0].Token)
	assert.Equal(t, "CHF", mappings[0].Code)
}
