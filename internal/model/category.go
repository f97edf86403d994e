package model

import (
	"fmt"
	"strings"
)

// Category classifies a transaction for budgeting purposes.
type Category string

const (
	// CategoryFood covers groceries and eating out.
	CategoryFood Category = "Food"
	// CategoryTransport covers fares, fuel, and vehicle costs.
	CategoryTransport Category = "Transport"
	// CategoryHousing covers rent and housing costs.
	CategoryHousing Category = "Housing"
	// CategoryUtilities covers power, water, and airtime.
	CategoryUtilities Category = "Utilities"
	// CategoryShopping covers clothes and general purchases.
	CategoryShopping Category = "Shopping"
	// CategoryEntertainment covers leisure spending.
	CategoryEntertainment Category = "Entertainment"
	// CategoryHealthcare covers medical spending.
	CategoryHealthcare Category = "Healthcare"
	// CategoryOther is the catch-all expense category.
	CategoryOther Category = "Other"

	// CategoryIncome is the fixed category of every income entry.
	CategoryIncome Category = "Income"
)

// expenseCategories is the closed set of expense categories in display order.
var expenseCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryHousing,
	CategoryUtilities,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryOther,
}

// ExpenseCategories returns the expense categories in display order.
func ExpenseCategories() []Category {
	out := make([]Category, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// IsExpense reports whether c belongs to the expense category set.
func (c Category) IsExpense() bool {
	for _, candidate := range expenseCategories {
		if c == candidate {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a case-insensitive category name to an expense category.
func ParseCategory(name string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	for _, candidate := range expenseCategories {
		if strings.EqualFold(trimmed, string(candidate)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}
