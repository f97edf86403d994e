package ofx

import (
	"testing"

	"github.com/Veraticus/fintrack/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestKeywordCategorizer(t *testing.T) {
	c := NewKeywordCategorizer(map[model.Category][]string{
		model.CategoryEntertainment: {"  Bwalo Club "},
		model.CategoryIncome:        {"salary"},
	})

	tests := []struct {
		description string
		want        model.Category
	}{
		{description: "Groceries - Shoprite", want: model.CategoryFood},
		{description: "Taxi to work", want: model.CategoryTransport},
		{description: "Minibus fare", want: model.CategoryTransport},
		{description: "Electricity bill", want: model.CategoryUtilities},
		{description: "Phone airtime", want: model.CategoryUtilities},
		{description: "Clothes shopping", want: model.CategoryShopping},
		{description: "BWALO CLUB ENTRY", want: model.CategoryEntertainment},
		{description: "Salary", want: model.CategoryOther},
		{description: "Something unusual", want: model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.description))
		})
	}
}

func TestKeywordCategorizer_ExtraOverridesDefault(t *testing.T) {
	c := NewKeywordCategorizer(map[model.Category][]string{
		model.CategoryShopping: {"Market"},
	})

	for range 50 {
		assert.Equal(t, model.CategoryShopping, c.Categorize("City Market"))
	}
	assert.Equal(t, model.CategoryFood, c.Categorize("Shoprite Lilongwe"), "other defaults still apply")
	assert.Equal(t, model.CategoryFood, NewKeywordCategorizer(nil).Categorize("City Market"))
}
