package ledger

import (
	"fmt"
	"time"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

// CategoryLine is the budget breakdown for one expense category.
type CategoryLine struct {
	Category       model.Category
	Spent          decimal.Decimal
	Budget         decimal.Decimal
	Remaining      decimal.Decimal // May be negative when over budget
	DisplayPercent float64         // Capped at 100 for progress bars
	Status         model.CategoryStatus
	Unbudgeted     bool // Spending recorded against a zero budget
}

// Dashboard owns the three ledgers for one session.
type Dashboard struct {
	Goals        *GoalLedger
	Transactions *TransactionLedger
	Budgets      *BudgetMap
	clock        Clock
}

// NewDashboard creates empty ledgers sharing one clock, with default budgets.
func NewDashboard(clock Clock) *Dashboard {
	if clock == nil {
		clock = SystemClock
	}
	return &Dashboard{
		clock:        clock,
		Goals:        NewGoalLedger(clock),
		Transactions: NewTransactionLedger(clock),
		Budgets:      NewBudgetMap(nil),
	}
}

// Now returns the dashboard clock's current time.
func (d *Dashboard) Now() time.Time {
	return d.clock.Now()
}

// CategoryStatus derives the status of one category from current expenses and limits.
func (d *Dashboard) CategoryStatus(category model.Category) model.CategoryStatus {
	spent := d.Transactions.ExpensesByCategory()[category]
	return StatusFor(spent, d.Budgets.Limit(category))
}

// CategoryBreakdown returns one line per expense category in display order.
func (d *Dashboard) CategoryBreakdown() []CategoryLine {
	byCategory := d.Transactions.ExpensesByCategory()

	lines := make([]CategoryLine, 0, len(model.ExpenseCategories()))
	for _, category := range model.ExpenseCategories() {
		spent := byCategory[category]
		budget := d.Budgets.Limit(category)
		pct := BudgetPercent(spent, budget)
		if pct > 100 {
			pct = 100
		}
		lines = append(lines, CategoryLine{
			Category:       category,
			Spent:          spent,
			Budget:         budget,
			Remaining:      budget.Sub(spent),
			DisplayPercent: pct,
			Status:         StatusFor(spent, budget),
			Unbudgeted:     budget.IsZero() && spent.IsPositive(),
		})
	}
	return lines
}

// TotalBudget sums every category limit.
func (d *Dashboard) TotalBudget() decimal.Decimal {
	return d.Budgets.Total()
}

// DeleteKind names the collection a deletion targets.
type DeleteKind string

const (
	// DeleteGoal targets a savings goal.
	DeleteGoal DeleteKind = "goal"
	// DeleteIncome targets an income entry.
	DeleteIncome DeleteKind = "income"
	// DeleteExpense targets an expense entry.
	DeleteExpense DeleteKind = "expense"
)

// DeleteRequest is a pending deletion awaiting confirmation. Discarding it cancels the deletion.
type DeleteRequest struct {
	Kind   DeleteKind
	ID     string
	Prompt string
}

// RequestDelete checks that the target exists and returns the confirmation to show.
// Nothing is removed until ConfirmDelete is called.
func (d *Dashboard) RequestDelete(kind DeleteKind, id string) (DeleteRequest, error) {
	req := DeleteRequest{Kind: kind, ID: id}

	switch kind {
	case DeleteGoal:
		goal, err := d.Goals.Get(id)
		if err != nil {
			return DeleteRequest{}, err
		}
		req.Prompt = fmt.Sprintf("Are you sure you want to delete the goal %q?", goal.Name)
	case DeleteIncome, DeleteExpense:
		txn, err := d.Transactions.Find(id)
		if err != nil {
			return DeleteRequest{}, err
		}
		if string(txn.Kind) != string(kind) {
			return DeleteRequest{}, fmt.Errorf("%s %s: %w", kind, id, common.ErrNotFound)
		}
		if kind == DeleteIncome {
			req.Prompt = fmt.Sprintf("Delete this income (%s)?", txn.Description)
		} else {
			req.Prompt = fmt.Sprintf("Delete this transaction (%s)?", txn.Description)
		}
	default:
		return DeleteRequest{}, fmt.Errorf("unknown delete kind %q", kind)
	}

	return req, nil
}

// ConfirmDelete performs a previously requested deletion.
func (d *Dashboard) ConfirmDelete(req DeleteRequest) error {
	switch req.Kind {
	case DeleteGoal:
		return d.Goals.Delete(req.ID)
	case DeleteIncome:
		return d.Transactions.DeleteIncome(req.ID)
	case DeleteExpense:
		return d.Transactions.DeleteExpense(req.ID)
	default:
		return fmt.Errorf("unknown delete kind %q", req.Kind)
	}
}

// DeleteKindFor returns the delete kind matching a transaction.
func DeleteKindFor(txn model.Transaction) DeleteKind {
	if txn.IsIncome() {
		return DeleteIncome
	}
	return DeleteExpense
}
