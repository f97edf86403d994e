package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	return v
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "MWK", cfg.Currency)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 10, cfg.RecentLimit)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.Demo)
	assert.Empty(t, cfg.Budgets)
	assert.Empty(t, cfg.ImportKeywords)
}

func TestLoadFrom_File(t *testing.T) {
	v := newViper(t, `
currency:
  code: usd
  locale: en-US
dashboard:
  recent_limit: 5
  theme: Catppuccin-Mocha
demo: true
budgets:
  Food: 45000
  transport: "22,500"
import:
  keywords:
    Entertainment: ["bwalo club", "karaoke"]
`)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, 5, cfg.RecentLimit)
	assert.Equal(t, "catppuccin-mocha", cfg.Theme)
	assert.True(t, cfg.Demo)
	require.Len(t, cfg.Budgets, 2)
	assert.True(t, cfg.Budgets[model.CategoryFood].Equal(decimal.NewFromInt(45000)))
	assert.True(t, cfg.Budgets[model.CategoryTransport].Equal(decimal.NewFromInt(22500)))
	assert.Equal(t, []string{"bwalo club", "karaoke"}, cfg.ImportKeywords[model.CategoryEntertainment])

	f, err := cfg.Formatter()
	require.NoError(t, err)
	assert.Equal(t, "USD", f.Currency())
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown currency", yaml: "currency:\n  code: ZZZZ\n"},
		{name: "zero recent limit", yaml: "dashboard:\n  recent_limit: 0\n"},
		{name: "unknown theme", yaml: "dashboard:\n  theme: neon\n"},
		{name: "unknown budget category", yaml: "budgets:\n  pets: 100\n"},
		{name: "income is not budgeted", yaml: "budgets:\n  income: 100\n"},
		{name: "bad budget amount", yaml: "budgets:\n  food: lots\n"},
		{name: "negative budget", yaml: "budgets:\n  food: -5\n"},
		{name: "unknown keyword category", yaml: "import:\n  keywords:\n    pets: [vet]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(newViper(t, tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("FINTRACK_TEST_DIR", "/tmp/fintrack")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/statements/jan.ofx", want: filepath.Join(home, "statements/jan.ofx")},
		{input: "$FINTRACK_TEST_DIR/jan.ofx", want: "/tmp/fintrack/jan.ofx"},
		{input: "/abs/path.ofx", want: "/abs/path.ofx"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
