package ledger

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultRecentLimit is how many entries RecentTransactions returns by default.
const DefaultRecentLimit = 10

// ImportEntry is a statement line ready to be added to the ledger.
type ImportEntry struct {
	Income  *IncomeInput
	Expense *ExpenseInput
}

// TransactionLedger owns the income and expense entries.
type TransactionLedger struct {
	clock    Clock
	income   []model.Transaction
	expenses []model.Transaction
}

// NewTransactionLedger creates an empty transaction ledger. A nil clock uses the system clock.
func NewTransactionLedger(clock Clock) *TransactionLedger {
	if clock == nil {
		clock = SystemClock
	}
	return &TransactionLedger{clock: clock}
}

// AddIncome validates and records an income entry. Its category is always Income.
func (l *TransactionLedger) AddIncome(input IncomeInput) (model.Transaction, error) {
	input.Source = strings.TrimSpace(input.Source)
	if err := validateInput(input); err != nil {
		return model.Transaction{}, err
	}

	txn := l.newTransaction(model.KindIncome, input.Amount, input.Source, model.CategoryIncome, input.Date)
	l.income = append(l.income, txn)

	slog.Debug("Income added", "id", txn.ID, "amount", txn.Amount.String(), "source", txn.Description)
	return txn, nil
}

// AddExpense validates and records an expense in one of the expense categories.
func (l *TransactionLedger) AddExpense(input ExpenseInput) (model.Transaction, error) {
	input.Description = strings.TrimSpace(input.Description)
	if err := validateInput(input); err != nil {
		return model.Transaction{}, err
	}

	txn := l.newTransaction(model.KindExpense, input.Amount, input.Description, input.Category, input.Date)
	l.expenses = append(l.expenses, txn)

	slog.Debug("Expense added", "id", txn.ID, "amount", txn.Amount.String(), "category", txn.Category)
	return txn, nil
}

func (l *TransactionLedger) newTransaction(kind model.TransactionKind, amount decimal.Decimal, desc string, category model.Category, date time.Time) model.Transaction {
	now := l.clock.Now()
	return model.Transaction{
		ID:          common.NewID(now),
		Kind:        kind,
		Amount:      amount,
		Description: desc,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
	}
}

// Import validates every entry before adding any, so a bad entry leaves the ledger unchanged.
// The caller's entries are not modified.
func (l *TransactionLedger) Import(entries []ImportEntry) (int, error) {
	prepared := make([]ImportEntry, len(entries))
	for i, entry := range entries {
		var err error
		switch {
		case entry.Income != nil:
			income := *entry.Income
			income.Source = strings.TrimSpace(income.Source)
			err = validateInput(income)
			prepared[i].Income = &income
		case entry.Expense != nil:
			expense := *entry.Expense
			expense.Description = strings.TrimSpace(expense.Description)
			err = validateInput(expense)
			prepared[i].Expense = &expense
		default:
			err = common.NewValidationError("entry", "is empty")
		}
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	for _, entry := range prepared {
		var err error
		if entry.Income != nil {
			_, err = l.AddIncome(*entry.Income)
		} else {
			_, err = l.AddExpense(*entry.Expense)
		}
		if err != nil {
			return 0, err
		}
	}

	slog.Info("Imported transactions", "count", len(prepared))
	return len(prepared), nil
}

// DeleteIncome removes an income entry. The collection is unchanged when id is unknown.
func (l *TransactionLedger) DeleteIncome(id string) error {
	remaining, ok := without(l.income, id)
	if !ok {
		return fmt.Errorf("income %s: %w", id, common.ErrNotFound)
	}
	l.income = remaining
	slog.Debug("Income deleted", "id", id)
	return nil
}

// DeleteExpense removes an expense entry. The collection is unchanged when id is unknown.
func (l *TransactionLedger) DeleteExpense(id string) error {
	remaining, ok := without(l.expenses, id)
	if !ok {
		return fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	l.expenses = remaining
	slog.Debug("Expense deleted", "id", id)
	return nil
}

func without(txns []model.Transaction, id string) ([]model.Transaction, bool) {
	for i := range txns {
		if txns[i].ID == id {
			return append(txns[:i:i], txns[i+1:]...), true
		}
	}
	return txns, false
}

// Find looks up an entry of either kind by id.
func (l *TransactionLedger) Find(id string) (model.Transaction, error) {
	for _, set := range [][]model.Transaction{l.expenses, l.income} {
		for _, txn := range set {
			if txn.ID == id {
				return txn, nil
			}
		}
	}
	return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
}

// Income returns a copy of the income entries in insertion order.
func (l *TransactionLedger) Income() []model.Transaction {
	return append([]model.Transaction(nil), l.income...)
}

// Expenses returns a copy of the expense entries in insertion order.
func (l *TransactionLedger) Expenses() []model.Transaction {
	return append([]model.Transaction(nil), l.expenses...)
}

// TotalIncome sums every income entry.
func (l *TransactionLedger) TotalIncome() decimal.Decimal {
	return sum(l.income)
}

// TotalExpenses sums every expense entry.
func (l *TransactionLedger) TotalExpenses() decimal.Decimal {
	return sum(l.expenses)
}

// Balance is total income minus total expenses.
func (l *TransactionLedger) Balance() decimal.Decimal {
	return l.TotalIncome().Sub(l.TotalExpenses())
}

func sum(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	return total
}

// ExpensesByCategory sums expenses per category. Categories without expenses
// are absent from the result.
func (l *TransactionLedger) ExpensesByCategory() map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, txn := range l.expenses {
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}

// RecentTransactions merges expenses and income, newest date first, and keeps at
// most limit entries. Entries on the same date keep their merged order.
// A non-positive limit uses DefaultRecentLimit.
func (l *TransactionLedger) RecentTransactions(limit int) []model.Transaction {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	all := make([]model.Transaction, 0, len(l.expenses)+len(l.income))
	all = append(all, l.expenses...)
	all = append(all, l.income...)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all
}
