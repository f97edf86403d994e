package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "exact match", input: "Food", want: CategoryFood},
		{name: "case insensitive", input: "healthcare", want: CategoryHealthcare},
		{name: "surrounding whitespace", input: "  Transport ", want: CategoryTransport},
		{name: "income is not an expense category", input: "Income", wantErr: true},
		{name: "unknown", input: "Pets", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpenseCategories(t *testing.T) {
	categories := ExpenseCategories()
	require.Len(t, categories, 8)
	assert.Equal(t, CategoryFood, categories[0])
	assert.Equal(t, CategoryOther, categories[7])

	// Callers get their own copy.
	categories[0] = "Mutated"
	assert.Equal(t, CategoryFood, ExpenseCategories()[0])

	assert.False(t, CategoryIncome.IsExpense())
	assert.True(t, CategoryUtilities.IsExpense())
}

func TestCategoryStatus_String(t *testing.T) {
	assert.Equal(t, "good", StatusGood.String())
	assert.Equal(t, "warning", StatusWarning.String())
	assert.Equal(t, "over", StatusOver.String())

	text, err := StatusOver.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "over", string(text))
}

func TestGoal_Completion(t *testing.T) {
	g := Goal{Target: decimal.NewFromInt(500000), Current: decimal.NewFromInt(125000)}
	assert.False(t, g.IsCompleted())
	assert.True(t, g.Remaining().Equal(decimal.NewFromInt(375000)))

	g.Current = g.Target
	assert.True(t, g.IsCompleted())
	assert.True(t, g.Remaining().IsZero())
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := Transaction{Kind: KindIncome, Amount: decimal.NewFromInt(150000)}
	expense := Transaction{Kind: KindExpense, Amount: decimal.NewFromInt(5000)}

	assert.True(t, income.IsIncome())
	assert.False(t, expense.IsIncome())
	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(150000)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-5000)))
}
