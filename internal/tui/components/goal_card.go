package components

import (
	"fmt"

	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/Veraticus/fintrack/internal/money"
	"github.com/Veraticus/fintrack/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// GoalCard renders one savings goal with its progress bar and schedule hints.
type GoalCard struct {
	Goal      model.Goal
	Metrics   ledger.GoalMetrics
	Formatter *money.Formatter
	Theme     themes.Theme
	Width     int
	Selected  bool
}

// View renders the card.
func (c GoalCard) View() string {
	width := max(c.Width, 30)
	color := c.Theme.GoalColor(c.Goal.Color)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
		progress.WithWidth(width-12),
	)

	name := c.Theme.Bold.Foreground(color).Render(c.Goal.Name)
	if c.Metrics.Completed {
		name += c.Theme.StatusGood.Render("  ✓ reached")
	}

	amounts := fmt.Sprintf("%s of %s",
		c.Formatter.Format(c.Goal.Current), c.Formatter.Format(c.Goal.Target))

	rows := []string{
		name,
		c.Theme.Normal.Render(amounts),
		bar.ViewAs(c.Metrics.ProgressPercent/100) + " " + c.Theme.Bold.Render(money.Percent(c.Metrics.ProgressPercent)),
		c.scheduleLine(),
	}

	style := c.Theme.RoundedBox.Width(width)
	if c.Selected {
		style = style.BorderForeground(color)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c GoalCard) scheduleLine() string {
	m := c.Metrics
	switch {
	case m.Completed:
		return c.Theme.Faint.Render("Nothing left to save")
	case m.DeadlinePassed:
		return c.Theme.StatusOver.Render("Deadline passed") +
			c.Theme.Faint.Render(fmt.Sprintf(" • %s to go", c.Formatter.Format(m.Remaining)))
	}

	line := c.Theme.Faint.Render(fmt.Sprintf("%d days left • %s/month",
		m.DaysRemaining, c.Formatter.Format(m.MonthlyTarget)))
	if m.BehindSchedule {
		line += c.Theme.StatusWarning.Render(" • behind schedule")
	}
	return line
}
