package ledger

import (
	"log/slog"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/Veraticus/fintrack/internal/money"
	"github.com/shopspring/decimal"
)

// Budget status thresholds, as percentages of the category limit.
const (
	WarningPercent = 80.0
	OverPercent    = 100.0
)

// DefaultBudgets returns the starting limit for every expense category.
func DefaultBudgets() map[model.Category]decimal.Decimal {
	return map[model.Category]decimal.Decimal{
		model.CategoryFood:          decimal.NewFromInt(30000),
		model.CategoryTransport:     decimal.NewFromInt(20000),
		model.CategoryHousing:       decimal.NewFromInt(50000),
		model.CategoryUtilities:     decimal.NewFromInt(15000),
		model.CategoryShopping:      decimal.NewFromInt(25000),
		model.CategoryEntertainment: decimal.NewFromInt(10000),
		model.CategoryHealthcare:    decimal.NewFromInt(15000),
		model.CategoryOther:         decimal.NewFromInt(10000),
	}
}

// BudgetEntry is one category limit.
type BudgetEntry struct {
	Category model.Category
	Limit    decimal.Decimal
}

// BudgetMap holds exactly one limit per expense category.
type BudgetMap struct {
	limits map[model.Category]decimal.Decimal
}

// NewBudgetMap starts from DefaultBudgets and applies overrides on top.
// Overrides for unknown categories are ignored.
func NewBudgetMap(overrides map[model.Category]decimal.Decimal) *BudgetMap {
	b := &BudgetMap{limits: DefaultBudgets()}
	for category, limit := range overrides {
		if err := b.SetBudget(category, limit); err != nil {
			slog.Warn("Ignoring budget override", "category", category, "error", err)
		}
	}
	return b
}

// SetBudget replaces a category limit. Negative amounts are stored as zero.
func (b *BudgetMap) SetBudget(category model.Category, amount decimal.Decimal) error {
	if !category.IsExpense() {
		return common.NewValidationError("category", "must be one of "+categoryList())
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	b.limits[category] = amount

	slog.Debug("Budget updated", "category", category, "limit", amount.String())
	return nil
}

// SetBudgetInput sets a limit from raw form text. Text that is not a valid
// non-negative number is stored as zero.
func (b *BudgetMap) SetBudgetInput(category model.Category, text string) error {
	amount, err := money.ParseAmount(text)
	if err != nil {
		amount = decimal.Zero
	}
	return b.SetBudget(category, amount)
}

// Limit returns the limit for a category, or zero when none is set.
func (b *BudgetMap) Limit(category model.Category) decimal.Decimal {
	return b.limits[category]
}

// Total sums every category limit.
func (b *BudgetMap) Total() decimal.Decimal {
	total := decimal.Zero
	for _, limit := range b.limits {
		total = total.Add(limit)
	}
	return total
}

// Entries returns the limits in category display order.
func (b *BudgetMap) Entries() []BudgetEntry {
	entries := make([]BudgetEntry, 0, len(b.limits))
	for _, category := range model.ExpenseCategories() {
		entries = append(entries, BudgetEntry{Category: category, Limit: b.limits[category]})
	}
	return entries
}

// BudgetPercent returns spent as a percentage of budget, or 0 when budget is not positive.
func BudgetPercent(spent, budget decimal.Decimal) float64 {
	if !budget.IsPositive() {
		return 0
	}
	return spent.Div(budget).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// StatusFor classifies spending against a budget. A zero budget always reads as Good.
func StatusFor(spent, budget decimal.Decimal) model.CategoryStatus {
	pct := BudgetPercent(spent, budget)
	switch {
	case pct >= OverPercent:
		return model.StatusOver
	case pct >= WarningPercent:
		return model.StatusWarning
	default:
		return model.StatusGood
	}
}
