package ledger

import (
	"fmt"
	"strings"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/model"
)

// BudgetView is a screen of the budget tab.
type BudgetView int

const (
	ViewOverview BudgetView = iota
	ViewAddTransaction
	ViewSetBudgets
)

func (v BudgetView) String() string {
	switch v {
	case ViewOverview:
		return "overview"
	case ViewAddTransaction:
		return "add-transaction"
	case ViewSetBudgets:
		return "set-budgets"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

var budgetTransitions = map[BudgetView][]BudgetView{
	ViewOverview:       {ViewAddTransaction, ViewSetBudgets},
	ViewAddTransaction: {ViewOverview},
	ViewSetBudgets:     {ViewOverview},
}

// TransactionDraft is the raw text of the add-transaction form.
type TransactionDraft struct {
	Kind        model.TransactionKind
	Amount      string
	Description string
	Category    string
	Date        string // DateLayout; empty means today
}

// BudgetFlow drives the budget tab between its overview and its two forms.
// It is not safe for concurrent use.
type BudgetFlow struct {
	dash *Dashboard
	view BudgetView
}

// NewBudgetFlow starts a flow on the overview.
func NewBudgetFlow(d *Dashboard) *BudgetFlow {
	return &BudgetFlow{dash: d, view: ViewOverview}
}

// View returns the current screen.
func (f *BudgetFlow) View() BudgetView {
	return f.view
}

// Transition moves to another screen if the move is allowed.
func (f *BudgetFlow) Transition(to BudgetView) error {
	for _, allowed := range budgetTransitions[f.view] {
		if allowed == to {
			f.view = to
			return nil
		}
	}
	return fmt.Errorf("%s -> %s: %w", f.view, to, common.ErrInvalidTransition)
}

// OpenAddTransaction shows the add-transaction form.
func (f *BudgetFlow) OpenAddTransaction() error {
	return f.Transition(ViewAddTransaction)
}

// OpenSetBudgets shows the budget form.
func (f *BudgetFlow) OpenSetBudgets() error {
	return f.Transition(ViewSetBudgets)
}

// Cancel returns from a form to the overview without touching any ledger.
func (f *BudgetFlow) Cancel() error {
	if f.view == ViewOverview {
		return fmt.Errorf("cancel from %s: %w", f.view, common.ErrInvalidTransition)
	}
	return f.Transition(ViewOverview)
}

// SubmitTransaction records the draft and returns to the overview. On a
// validation error the flow stays on the form.
func (f *BudgetFlow) SubmitTransaction(draft TransactionDraft) (model.Transaction, error) {
	if f.view != ViewAddTransaction {
		return model.Transaction{}, fmt.Errorf("submit transaction from %s: %w", f.view, common.ErrInvalidTransition)
	}

	amount, err := parseDraftAmount("amount", draft.Amount)
	if err != nil {
		return model.Transaction{}, err
	}
	date, err := f.dash.parseDraftDate("date", draft.Date, true)
	if err != nil {
		return model.Transaction{}, err
	}

	var txn model.Transaction
	switch model.TransactionKind(strings.ToLower(strings.TrimSpace(string(draft.Kind)))) {
	case model.KindIncome:
		txn, err = f.dash.Transactions.AddIncome(IncomeInput{
			Amount: amount,
			Source: draft.Description,
			Date:   date,
		})
	case model.KindExpense:
		category, parseErr := model.ParseCategory(draft.Category)
		if parseErr != nil {
			return model.Transaction{}, common.NewValidationError("category", "must be one of "+categoryList())
		}
		txn, err = f.dash.Transactions.AddExpense(ExpenseInput{
			Amount:      amount,
			Description: draft.Description,
			Category:    category,
			Date:        date,
		})
	default:
		return model.Transaction{}, common.NewValidationError("kind", "must be income or expense")
	}
	if err != nil {
		return model.Transaction{}, err
	}

	f.view = ViewOverview
	return txn, nil
}

// SaveBudgets applies the form's limits and returns to the overview. Blank or
// unparseable entries become zero.
func (f *BudgetFlow) SaveBudgets(limits map[model.Category]string) error {
	if f.view != ViewSetBudgets {
		return fmt.Errorf("save budgets from %s: %w", f.view, common.ErrInvalidTransition)
	}

	for category := range limits {
		if !category.IsExpense() {
			return common.NewValidationError("category", "must be one of "+categoryList())
		}
	}
	for category, text := range limits {
		if err := f.dash.Budgets.SetBudgetInput(category, text); err != nil {
			return err
		}
	}

	f.view = ViewOverview
	return nil
}
