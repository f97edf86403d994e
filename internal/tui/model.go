// Package tui implements the interactive finance dashboard.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/Veraticus/fintrack/internal/money"
	"github.com/Veraticus/fintrack/internal/tui/components"
	"github.com/Veraticus/fintrack/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab is a top-level section of the dashboard.
type Tab int

const (
	TabSavings Tab = iota
	TabBudget
)

func (t Tab) String() string {
	if t == TabBudget {
		return "Budget"
	}
	return "Savings"
}

var tabs = []Tab{TabSavings, TabBudget}

// mode is what currently receives key presses.
type mode int

const (
	modeBrowse mode = iota
	modeGoalForm
	modeContribute
	modeTransactionForm
	modeBudgetForm
	modeConfirmDelete
)

// Transaction form fields.
const (
	txnFieldKind = iota
	txnFieldAmount
	txnFieldDescription
	txnFieldCategory
	txnFieldDate
)

// Model holds the main TUI state.
type Model struct {
	theme         themes.Theme
	dash          *ledger.Dashboard
	flow          *ledger.BudgetFlow
	formatter     *money.Formatter
	pendingDelete *ledger.DeleteRequest
	contributeTo  string
	status        string
	help          help.Model
	form          components.FormModel
	txnList       components.TransactionListModel
	config        Config
	keymap        KeyMap
	budgetFields  []model.Category
	tab           Tab
	mode          mode
	goalCursor    int
	statusSeq     int
	width         int
	height        int
	statusIsErr   bool
	quitting      bool
}

// New creates a dashboard model over d.
func New(d *ledger.Dashboard, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := Model{
		dash:      d,
		flow:      ledger.NewBudgetFlow(d),
		config:    cfg,
		theme:     cfg.Theme,
		formatter: cfg.Formatter,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		txnList:   components.NewTransactionList(cfg.Theme, cfg.Formatter),
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.help.ShowAll = cfg.ShowHelp
	m.txnList.Resize(cfg.Width)
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.txnList.Resize(msg.Width)
		m.form.Resize(min(msg.Width-24, 50))

	case statusMsg:
		cmd = m.setStatus(msg.text, msg.isErr)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsErr = false
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeConfirmDelete:
			cmd = m.handleConfirmKeys(msg)
		case modeGoalForm, modeContribute, modeTransactionForm, modeBudgetForm:
			cmd = m.handleFormKeys(msg)
		default:
			cmd = m.handleBrowseKeys(msg)
		}

	default:
		if m.inForm() {
			m.form, cmd = m.form.Update(msg)
		}
	}

	m.refresh()
	return m, cmd
}

// Tab returns the visible tab.
func (m Model) Tab() Tab {
	return m.tab
}

// BudgetView returns the state of the budget flow.
func (m Model) BudgetView() ledger.BudgetView {
	return m.flow.View()
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

func (m Model) inForm() bool {
	switch m.mode {
	case modeGoalForm, modeContribute, modeTransactionForm, modeBudgetForm:
		return true
	}
	return false
}

// refresh re-reads derived data after every update.
func (m *Model) refresh() {
	m.txnList.SetTransactions(m.dash.Transactions.RecentTransactions(m.config.RecentLimit))
	m.txnList.SetFocused(m.tab == TabBudget && m.mode == modeBrowse)

	if n := m.dash.Goals.Len(); m.goalCursor >= n {
		m.goalCursor = max(n-1, 0)
	}
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusIsErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keymap.NextTab):
		m.tab = tabs[(int(m.tab)+1)%len(tabs)]
		return nil
	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = tabs[(int(m.tab)-1+len(tabs))%len(tabs)]
		return nil
	}

	if m.tab == TabSavings {
		return m.handleSavingsKeys(msg)
	}
	return m.handleBudgetKeys(msg)
}

func (m *Model) handleSavingsKeys(msg tea.KeyMsg) tea.Cmd {
	goals := m.dash.Goals.Goals()

	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.goalCursor > 0 {
			m.goalCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.goalCursor < len(goals)-1 {
			m.goalCursor++
		}
	case key.Matches(msg, m.keymap.NewGoal):
		return m.openGoalForm()
	case key.Matches(msg, m.keymap.Contribute):
		if len(goals) == 0 {
			return m.setStatus("Add a goal first", true)
		}
		return m.openContributeForm(goals[m.goalCursor])
	case key.Matches(msg, m.keymap.Delete):
		if len(goals) == 0 {
			return nil
		}
		return m.requestDelete(ledger.DeleteGoal, goals[m.goalCursor].ID)
	}
	return nil
}

func (m *Model) handleBudgetKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down):
		var cmd tea.Cmd
		m.txnList, cmd = m.txnList.Update(msg)
		return cmd
	case key.Matches(msg, m.keymap.AddTransaction):
		return m.openTransactionForm()
	case key.Matches(msg, m.keymap.SetBudgets):
		return m.openBudgetForm()
	case key.Matches(msg, m.keymap.Delete):
		txn, ok := m.txnList.Selected()
		if !ok {
			return nil
		}
		return m.requestDelete(ledger.DeleteKindFor(txn), txn.ID)
	}
	return nil
}

func (m *Model) requestDelete(kind ledger.DeleteKind, id string) tea.Cmd {
	req, err := m.dash.RequestDelete(kind, id)
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	m.pendingDelete = &req
	m.mode = modeConfirmDelete
	return nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		req := *m.pendingDelete
		m.pendingDelete = nil
		m.mode = modeBrowse
		if err := m.dash.ConfirmDelete(req); err != nil {
			return m.setStatus(err.Error(), true)
		}
		slog.Debug("Deleted from dashboard", "kind", req.Kind, "id", req.ID)
		return m.setStatus(fmt.Sprintf("Deleted %s", req.Kind), false)
	case key.Matches(msg, m.keymap.Deny):
		m.pendingDelete = nil
		m.mode = modeBrowse
	}
	return nil
}

func (m *Model) openForm(md mode, form components.FormModel) tea.Cmd {
	form.Resize(min(m.width-24, 50))
	m.form = form
	m.mode = md
	return m.form.Init()
}

func (m *Model) openGoalForm() tea.Cmd {
	return m.openForm(modeGoalForm, components.NewFormModel("New savings goal", m.theme,
		components.FieldSpec{Label: "Name", Placeholder: "Emergency Fund"},
		components.FieldSpec{Label: "Target", Placeholder: "500000"},
		components.FieldSpec{Label: "Deadline", Placeholder: ledger.DateLayout, CharLimit: 10},
	))
}

func (m *Model) openContributeForm(goal model.Goal) tea.Cmd {
	m.contributeTo = goal.ID
	title := fmt.Sprintf("Add savings to %s (%s to go)", goal.Name, m.formatter.Format(goal.Remaining()))
	return m.openForm(modeContribute, components.NewFormModel(title, m.theme,
		components.FieldSpec{Label: "Amount", Placeholder: "25000"},
	))
}

func (m *Model) openTransactionForm() tea.Cmd {
	if err := m.flow.OpenAddTransaction(); err != nil {
		return m.setStatus(err.Error(), true)
	}
	return m.openForm(modeTransactionForm, components.NewFormModel("Add transaction", m.theme,
		components.FieldSpec{Label: "Type", Placeholder: "income or expense", Value: string(model.KindExpense), CharLimit: 7},
		components.FieldSpec{Label: "Amount", Placeholder: "5000"},
		components.FieldSpec{Label: "Description", Placeholder: "Groceries"},
		components.FieldSpec{Label: "Category", Placeholder: categoryHint(), Value: model.CategoryFood.String(), CharLimit: 13},
		components.FieldSpec{Label: "Date", Placeholder: m.dash.Now().Format(ledger.DateLayout), CharLimit: 10},
	))
}

func (m *Model) openBudgetForm() tea.Cmd {
	if err := m.flow.OpenSetBudgets(); err != nil {
		return m.setStatus(err.Error(), true)
	}

	entries := m.dash.Budgets.Entries()
	specs := make([]components.FieldSpec, len(entries))
	m.budgetFields = make([]model.Category, len(entries))
	for i, entry := range entries {
		m.budgetFields[i] = entry.Category
		specs[i] = components.FieldSpec{
			Label: entry.Category.String(),
			Value: entry.Limit.String(),
		}
	}
	return m.openForm(modeBudgetForm, components.NewFormModel("Monthly budgets", m.theme, specs...))
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.closeForm()
		return nil
	case key.Matches(msg, m.keymap.Submit):
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

// closeForm abandons the open form without touching any ledger.
func (m *Model) closeForm() {
	if m.mode == modeTransactionForm || m.mode == modeBudgetForm {
		if err := m.flow.Cancel(); err != nil {
			slog.Warn("Budget flow out of sync", "view", m.flow.View(), "error", err)
		}
	}
	m.mode = modeBrowse
	m.contributeTo = ""
}

func (m *Model) submitForm() tea.Cmd {
	var (
		status string
		err    error
	)

	switch m.mode {
	case modeGoalForm:
		var goal model.Goal
		goal, err = m.dash.AddGoalDraft(ledger.GoalDraft{
			Name:     m.form.Value(0),
			Target:   m.form.Value(1),
			Deadline: m.form.Value(2),
		})
		if err == nil {
			m.goalCursor = m.dash.Goals.Len() - 1
			status = fmt.Sprintf("Added goal %s", goal.Name)
		}

	case modeContribute:
		var goal model.Goal
		goal, err = m.dash.ContributeDraft(m.contributeTo, m.form.Value(0))
		if err == nil {
			status = fmt.Sprintf("%s is now at %s", goal.Name, money.Percent(ledger.ProgressPercent(goal)))
		}

	case modeTransactionForm:
		var txn model.Transaction
		txn, err = m.flow.SubmitTransaction(ledger.TransactionDraft{
			Kind:        model.TransactionKind(m.form.Value(txnFieldKind)),
			Amount:      m.form.Value(txnFieldAmount),
			Description: m.form.Value(txnFieldDescription),
			Category:    m.form.Value(txnFieldCategory),
			Date:        m.form.Value(txnFieldDate),
		})
		if err == nil {
			status = fmt.Sprintf("Added %s: %s", txn.Kind, m.formatter.Format(txn.Amount))
		}

	case modeBudgetForm:
		limits := make(map[model.Category]string, len(m.budgetFields))
		for i, category := range m.budgetFields {
			limits[category] = m.form.Value(i)
		}
		err = m.flow.SaveBudgets(limits)
		if err == nil {
			status = fmt.Sprintf("Budgets saved, total %s", m.formatter.Format(m.dash.TotalBudget()))
		}
	}

	if err != nil {
		m.form.SetError(err)
		return nil
	}

	m.mode = modeBrowse
	m.contributeTo = ""
	return m.setStatus(status, false)
}

func categoryHint() string {
	names := make([]string, 0, len(model.ExpenseCategories()))
	for _, c := range model.ExpenseCategories() {
		names = append(names, c.String())
	}
	return strings.Join(names, "/")
}
