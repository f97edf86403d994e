package ledger

import (
	"testing"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBudgetMap_Defaults(t *testing.T) {
	b := NewBudgetMap(nil)

	entries := b.Entries()
	require.Len(t, entries, 8)
	for _, entry := range entries {
		assert.True(t, entry.Limit.IsPositive(), "%s should have a default limit", entry.Category)
	}
	assert.Equal(t, model.CategoryFood, entries[0].Category)
	assert.True(t, b.Limit(model.CategoryFood).Equal(amount(30000)))
	assert.True(t, b.Total().Equal(amount(175000)))
}

func TestNewBudgetMap_Overrides(t *testing.T) {
	b := NewBudgetMap(map[model.Category]decimal.Decimal{
		model.CategoryFood: amount(45000),
		"Pets":             amount(1000),
	})

	assert.True(t, b.Limit(model.CategoryFood).Equal(amount(45000)))
	assert.True(t, b.Limit("Pets").IsZero())
	assert.Len(t, b.Entries(), 8)
}

func TestBudgetMap_SetBudget(t *testing.T) {
	b := NewBudgetMap(nil)

	require.NoError(t, b.SetBudget(model.CategoryTransport, amount(25000)))
	assert.True(t, b.Limit(model.CategoryTransport).Equal(amount(25000)))

	require.NoError(t, b.SetBudget(model.CategoryTransport, amount(-100)))
	assert.True(t, b.Limit(model.CategoryTransport).IsZero(), "negative limits are stored as zero")

	err := b.SetBudget("Pets", amount(100))
	assert.True(t, common.IsValidation(err))
	assert.Len(t, b.Entries(), 8)
}

func TestBudgetMap_SetBudgetInput(t *testing.T) {
	tests := []struct {
		input string
		want  decimal.Decimal
	}{
		{input: "12000", want: amount(12000)},
		{input: "12,500", want: amount(12500)},
		{input: "", want: decimal.Zero},
		{input: "lots", want: decimal.Zero},
		{input: "-50", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b := NewBudgetMap(nil)
			require.NoError(t, b.SetBudgetInput(model.CategoryShopping, tt.input))
			assert.True(t, b.Limit(model.CategoryShopping).Equal(tt.want), "got %s", b.Limit(model.CategoryShopping))
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		spent  int64
		budget int64
		want   model.CategoryStatus
	}{
		{name: "nothing spent", spent: 0, budget: 30000, want: model.StatusGood},
		{name: "just under warning", spent: 23999, budget: 30000, want: model.StatusGood},
		{name: "at warning", spent: 24000, budget: 30000, want: model.StatusWarning},
		{name: "ninety percent", spent: 27000, budget: 30000, want: model.StatusWarning},
		{name: "at budget", spent: 30000, budget: 30000, want: model.StatusOver},
		{name: "over budget", spent: 45000, budget: 30000, want: model.StatusOver},
		{name: "zero budget with spend reads good", spent: 5000, budget: 0, want: model.StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(amount(tt.spent), amount(tt.budget)))
		})
	}
}

func TestBudgetPercent(t *testing.T) {
	assert.InDelta(t, 90.0, BudgetPercent(amount(27000), amount(30000)), 1e-9)
	assert.InDelta(t, 150.0, BudgetPercent(amount(45000), amount(30000)), 1e-9)
	assert.Zero(t, BudgetPercent(amount(45000), decimal.Zero))
}
