package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/fintrack/internal/money"
	"github.com/Veraticus/fintrack/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.tab {
	case TabBudget:
		body = m.renderBudget()
	default:
		body = m.renderSavings()
	}

	switch {
	case m.mode == modeConfirmDelete:
		body = m.overlay(m.renderConfirm())
	case m.inForm():
		body = m.overlay(m.form.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.renderStatusBar(),
		m.help.View(m.keymap),
	)
}

// renderHeader renders the tab strip.
func (m Model) renderHeader() string {
	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := m.theme.TabInactive
		if t == m.tab {
			style = m.theme.TabActive
		}
		rendered = append(rendered, style.Render(t.String()))
	}

	title := m.theme.Title.Render("💰 fintrack")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", strings.Join(rendered, " "))
}

// renderSavings renders the overall total and one card per goal.
func (m Model) renderSavings() string {
	goals := m.dash.Goals.Goals()
	if len(goals) == 0 {
		return m.theme.Faint.Render("No savings goals yet. Press n to add one.")
	}

	summary := m.dash.Goals.Summary()
	header := m.theme.Subtitle.Render(fmt.Sprintf("Total saved %s of %s (%s)",
		m.formatter.Format(summary.TotalSaved),
		m.formatter.Format(summary.TotalTarget),
		money.Percent(summary.OverallPercent),
	))

	cardWidth := max(m.width-4, 30)
	cards := make([]string, 0, len(goals))
	for i, goal := range goals {
		cards = append(cards, components.GoalCard{
			Goal:      goal,
			Metrics:   m.dash.Goals.Metrics(goal),
			Formatter: m.formatter,
			Theme:     m.theme,
			Width:     cardWidth,
			Selected:  i == m.goalCursor,
		}.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header, ""}, cards...)...)
}

// renderBudget renders totals, per-category bars and recent transactions.
func (m Model) renderBudget() string {
	txns := m.dash.Transactions

	balanceStyle := m.theme.Income
	if txns.Balance().IsNegative() {
		balanceStyle = m.theme.Expense
	}

	totals := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Faint.Render("Income ")+m.theme.Income.Render(m.formatter.Format(txns.TotalIncome())),
		"    ",
		m.theme.Faint.Render("Expenses ")+m.theme.Expense.Render(m.formatter.Format(txns.TotalExpenses())),
		"    ",
		m.theme.Faint.Render("Balance ")+balanceStyle.Render(m.formatter.FormatSigned(txns.Balance())),
	)

	rows := []string{totals, "", m.theme.Subtitle.Render(
		fmt.Sprintf("Monthly budgets (%s)", m.formatter.Format(m.dash.TotalBudget())))}
	for _, line := range m.dash.CategoryBreakdown() {
		rows = append(rows, components.CategoryBar{
			Line:      line,
			Formatter: m.formatter,
			Theme:     m.theme,
			Width:     m.width,
		}.View())
	}

	rows = append(rows, "", m.theme.Subtitle.Render("Recent transactions"), m.txnList.View())
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderConfirm renders the delete confirmation dialog.
func (m Model) renderConfirm() string {
	if m.pendingDelete == nil {
		return ""
	}
	return m.theme.Dialog.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Bold.Render(m.pendingDelete.Prompt),
		"",
		m.theme.Faint.Render("y: delete • n: keep"),
	))
}

func (m Model) overlay(content string) string {
	return lipgloss.Place(m.width, max(m.height-6, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}

// renderStatusBar renders the mode on the left and the last status message.
func (m Model) renderStatusBar() string {
	left := m.theme.InfoText.Render(m.modeLabel())

	right := ""
	if m.status != "" {
		if m.statusIsErr {
			right = m.theme.ErrorText.Render("✗ " + m.status)
		} else {
			right = m.theme.StatusGood.Render("✓ " + m.status)
		}
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) modeLabel() string {
	switch m.mode {
	case modeGoalForm:
		return "New goal"
	case modeContribute:
		return "Add savings"
	case modeTransactionForm, modeBudgetForm:
		return m.flow.View().String()
	case modeConfirmDelete:
		return "Confirm"
	}
	return "Browse"
}
