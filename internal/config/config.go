package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/Veraticus/fintrack/internal/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyCurrency       = "currency.code"
	KeyLocale         = "currency.locale"
	KeyRecentLimit    = "dashboard.recent_limit"
	KeyTheme          = "dashboard.theme"
	KeyDemo           = "demo"
	KeyBudgets        = "budgets"
	KeyImportKeywords = "import.keywords"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
)

// ThemeNames lists the accepted values for dashboard.theme.
var ThemeNames = []string{"default", "catppuccin-mocha"}

// Config is the validated application configuration.
type Config struct {
	Budgets        map[model.Category]decimal.Decimal
	ImportKeywords map[model.Category][]string
	Currency       string
	Locale         string
	Theme          string
	LogLevel       string
	LogFormat      string
	RecentLimit    int
	Demo           bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCurrency, money.DefaultCurrency)
	v.SetDefault(KeyLocale, money.DefaultLocale)
	v.SetDefault(KeyRecentLimit, ledger.DefaultRecentLimit)
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyDemo, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Currency:    strings.ToUpper(strings.TrimSpace(v.GetString(KeyCurrency))),
		Locale:      strings.TrimSpace(v.GetString(KeyLocale)),
		Theme:       strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		RecentLimit: v.GetInt(KeyRecentLimit),
		Demo:        v.GetBool(KeyDemo),
	}

	if _, err := money.NewFormatter(cfg.Currency, cfg.Locale); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	if cfg.RecentLimit <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive, got %d", common.ErrInvalidConfig, KeyRecentLimit, cfg.RecentLimit)
	}
	if !validTheme(cfg.Theme) {
		return nil, fmt.Errorf("%w: unknown theme %q (want one of %s)", common.ErrInvalidConfig, cfg.Theme, strings.Join(ThemeNames, ", "))
	}

	budgets, err := parseBudgets(v.GetStringMapString(KeyBudgets))
	if err != nil {
		return nil, err
	}
	cfg.Budgets = budgets

	keywords, err := parseKeywords(v.GetStringMapStringSlice(KeyImportKeywords))
	if err != nil {
		return nil, err
	}
	cfg.ImportKeywords = keywords

	return cfg, nil
}

// Formatter builds the currency formatter for cfg.
func (c *Config) Formatter() (*money.Formatter, error) {
	return money.NewFormatter(c.Currency, c.Locale)
}

func validTheme(name string) bool {
	for _, t := range ThemeNames {
		if t == name {
			return true
		}
	}
	return false
}

// parseBudgets reads category limits. viper lowercases map keys, so category
// names are matched case-insensitively.
func parseBudgets(raw map[string]string) (map[model.Category]decimal.Decimal, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	budgets := make(map[model.Category]decimal.Decimal, len(raw))
	for _, name := range names {
		category, err := model.ParseCategory(name)
		if err != nil || !category.IsExpense() {
			return nil, fmt.Errorf("%w: budgets: unknown category %q", common.ErrInvalidConfig, name)
		}
		limit, err := money.ParseAmount(raw[name])
		if err != nil {
			return nil, fmt.Errorf("%w: budgets.%s: %w", common.ErrInvalidConfig, name, err)
		}
		if limit.IsNegative() {
			return nil, fmt.Errorf("%w: budgets.%s must not be negative", common.ErrInvalidConfig, name)
		}
		budgets[category] = limit
	}
	return budgets, nil
}

func parseKeywords(raw map[string][]string) (map[model.Category][]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	keywords := make(map[model.Category][]string, len(raw))
	for name, words := range raw {
		category, err := model.ParseCategory(name)
		if err != nil || !category.IsExpense() {
			return nil, fmt.Errorf("%w: import.keywords: unknown category %q", common.ErrInvalidConfig, name)
		}
		keywords[category] = append(keywords[category], words...)
	}
	return keywords, nil
}
