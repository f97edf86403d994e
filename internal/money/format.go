// Package money formats and parses amounts for display. It never changes stored values.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults used when no configuration overrides them.
const (
	DefaultCurrency = "MWK"
	DefaultLocale   = "en"
)

// Formatter renders amounts as whole currency units with locale-aware grouping.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter creates a formatter for an ISO 4217 currency code and a BCP 47 locale.
func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}, nil
}

// Default returns the formatter for the default currency and locale.
func Default() *Formatter {
	f, err := NewFormatter(DefaultCurrency, DefaultLocale)
	if err != nil {
		panic(err)
	}
	return f
}

// Currency returns the ISO code the formatter prints.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Format renders an amount rounded to whole units, e.g. "MWK 125,000".
func (f *Formatter) Format(amount decimal.Decimal) string {
	whole := amount.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Neg()
	}
	grouped := f.printer.Sprint(number.Decimal(whole.IntPart(), number.MaxFractionDigits(0)))
	return fmt.Sprintf("%s%s %s", sign, f.unit, grouped)
}

// FormatSigned renders an amount with an explicit + or - prefix.
func (f *Formatter) FormatSigned(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return f.Format(amount)
	}
	return "+" + f.Format(amount)
}

// Percent renders a percentage with one decimal place.
func Percent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// ParseAmount parses user input such as "5000", "12,500.50" or "MWK 300".
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}

	fields := strings.Fields(cleaned)
	if len(fields) == 2 {
		// Drop a leading currency code.
		if _, err := currency.ParseISO(fields[0]); err == nil {
			cleaned = fields[1]
		}
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", text, err)
	}
	return amount, nil
}
