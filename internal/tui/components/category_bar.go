package components

import (
	"fmt"

	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/money"
	"github.com/Veraticus/fintrack/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// CategoryBar renders one line of the budget breakdown.
type CategoryBar struct {
	Line      ledger.CategoryLine
	Formatter *money.Formatter
	Theme     themes.Theme
	Width     int
}

// View renders the category name, a status-colored bar and the amounts.
func (c CategoryBar) View() string {
	line := c.Line
	barWidth := max(c.Width-60, 10)

	bar := progress.New(
		progress.WithSolidFill(string(c.Theme.StatusColor(line.Status))),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)

	label := lipgloss.NewStyle().Width(18).Render(
		themes.GetCategoryIcon(line.Category) + " " + line.Category.String())

	amounts := fmt.Sprintf("%s / %s",
		c.Formatter.Format(line.Spent), c.Formatter.Format(line.Budget))

	remaining := c.Formatter.Format(line.Remaining) + " left"
	if line.Remaining.IsNegative() {
		remaining = c.Formatter.Format(line.Remaining.Neg()) + " over"
	}

	status := c.Theme.StatusStyle(line.Status).Render(line.Status.String())
	if line.Unbudgeted {
		status += c.Theme.Faint.Render(" (no budget)")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		label,
		bar.ViewAs(line.DisplayPercent/100),
		" ",
		lipgloss.NewStyle().Width(28).Render(amounts),
		lipgloss.NewStyle().Width(18).Render(c.Theme.Faint.Render(remaining)),
		status,
	)
}
