package components

import (
	"fmt"

	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/Veraticus/fintrack/internal/money"
	"github.com/Veraticus/fintrack/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TransactionListModel is a cursor over the recent transactions.
type TransactionListModel struct {
	theme        themes.Theme
	formatter    *money.Formatter
	transactions []model.Transaction
	cursor       int
	width        int
	focused      bool
}

// NewTransactionList creates a list.
func NewTransactionList(theme themes.Theme, formatter *money.Formatter) TransactionListModel {
	return TransactionListModel{theme: theme, formatter: formatter, width: 80}
}

// SetTransactions replaces the items, keeping the cursor in range.
func (m *TransactionListModel) SetTransactions(txns []model.Transaction) {
	m.transactions = txns
	if m.cursor >= len(txns) {
		m.cursor = max(len(txns)-1, 0)
	}
}

// SetFocused toggles the cursor highlight.
func (m *TransactionListModel) SetFocused(focused bool) {
	m.focused = focused
}

// Resize sets the render width.
func (m *TransactionListModel) Resize(width int) {
	m.width = width
}

// Cursor returns the highlighted index.
func (m TransactionListModel) Cursor() int {
	return m.cursor
}

// Selected returns the highlighted transaction.
func (m TransactionListModel) Selected() (model.Transaction, bool) {
	if len(m.transactions) == 0 {
		return model.Transaction{}, false
	}
	return m.transactions[m.cursor], true
}

// Update moves the cursor.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.transactions) == 0 {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.transactions)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.transactions) - 1
	}
	return m, nil
}

// View renders one row per transaction.
func (m TransactionListModel) View() string {
	if len(m.transactions) == 0 {
		return m.theme.Faint.Render("No transactions yet. Press a to add one.")
	}

	descWidth := max(m.width-52, 12)
	rows := make([]string, 0, len(m.transactions))
	for i, txn := range m.transactions {
		amount := m.theme.Expense.Render(m.formatter.Format(txn.Amount.Neg()))
		if txn.IsIncome() {
			amount = m.theme.Income.Render(m.formatter.FormatSigned(txn.Amount))
		}

		desc := txn.Description
		if lipgloss.Width(desc) > descWidth {
			desc = truncate(desc, descWidth)
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(12).Render(txn.Date.Format(ledger.DateLayout)),
			lipgloss.NewStyle().Width(descWidth+2).Render(desc),
			lipgloss.NewStyle().Width(18).Render(themes.GetCategoryIcon(txn.Category)+" "+txn.Category.String()),
			lipgloss.NewStyle().Width(18).Align(lipgloss.Right).Render(amount),
		)

		if m.focused && i == m.cursor {
			row = m.theme.Selected.Render("▸ " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return fmt.Sprintf("%s…", string(runes[:width-1]))
}
