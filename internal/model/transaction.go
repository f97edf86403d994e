package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tells income and expense entries apart once they are merged.
type TransactionKind string

const (
	// KindIncome marks money coming in.
	KindIncome TransactionKind = "income"
	// KindExpense marks money going out.
	KindExpense TransactionKind = "expense"
)

// Transaction is a single income or expense entry. Entries are never mutated after creation.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	ID          string
	Description string // Source for income, description for expenses
	Kind        TransactionKind
	Category    Category
	Amount      decimal.Decimal
}

// IsIncome reports whether the entry is income.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// SignedAmount returns the amount as it affects the balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
