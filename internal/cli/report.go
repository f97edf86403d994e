package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/Veraticus/fintrack/internal/money"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format selects how a report is written.
type Format string

// Report formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat validates a --format flag value.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatJSON, FormatCSV:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want table, json or csv)", common.ErrInvalidConfig, name)
	}
}

// GoalReport is one goal with its derived metrics.
type GoalReport struct {
	Deadline        time.Time       `json:"deadline"`
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Target          decimal.Decimal `json:"target"`
	Current         decimal.Decimal `json:"current"`
	Remaining       decimal.Decimal `json:"remaining"`
	MonthlyTarget   decimal.Decimal `json:"monthly_target"`
	ProgressPercent float64         `json:"progress_percent"`
	DaysRemaining   int             `json:"days_remaining"`
	Completed       bool            `json:"completed"`
	BehindSchedule  bool            `json:"behind_schedule"`
	DeadlinePassed  bool            `json:"deadline_passed"`
}

// SavingsReport totals all goals.
type SavingsReport struct {
	TotalSaved     decimal.Decimal `json:"total_saved"`
	TotalTarget    decimal.Decimal `json:"total_target"`
	OverallPercent float64         `json:"overall_percent"`
	Goals          []GoalReport    `json:"goals"`
}

// BudgetLineReport is the state of one expense category.
type BudgetLineReport struct {
	Category   model.Category       `json:"category"`
	Spent      decimal.Decimal      `json:"spent"`
	Budget     decimal.Decimal      `json:"budget"`
	Remaining  decimal.Decimal      `json:"remaining"`
	Percent    float64              `json:"percent"`
	Status     model.CategoryStatus `json:"status"`
	Unbudgeted bool                 `json:"unbudgeted,omitempty"`
}

// BudgetReport covers income, spending and per-category limits.
type BudgetReport struct {
	Income      decimal.Decimal    `json:"income"`
	Expenses    decimal.Decimal    `json:"expenses"`
	Balance     decimal.Decimal    `json:"balance"`
	TotalBudget decimal.Decimal    `json:"total_budget"`
	Categories  []BudgetLineReport `json:"categories"`
}

// TransactionReport is one row of the recent activity list.
type TransactionReport struct {
	Date        time.Time             `json:"date"`
	ID          string                `json:"id"`
	Description string                `json:"description"`
	Kind        model.TransactionKind `json:"kind"`
	Category    model.Category        `json:"category"`
	Amount      decimal.Decimal       `json:"amount"`
}

// Report is a snapshot of a dashboard.
type Report struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Currency    string              `json:"currency"`
	Savings     SavingsReport       `json:"savings"`
	Budget      BudgetReport        `json:"budget"`
	Recent      []TransactionReport `json:"recent"`
}

// BuildReport snapshots d. recentLimit <= 0 uses the ledger default.
func BuildReport(d *ledger.Dashboard, currency string, recentLimit int) Report {
	summary := d.Goals.Summary()
	report := Report{
		GeneratedAt: d.Now(),
		Currency:    currency,
		Savings: SavingsReport{
			TotalSaved:     summary.TotalSaved,
			TotalTarget:    summary.TotalTarget,
			OverallPercent: summary.OverallPercent,
			Goals:          []GoalReport{},
		},
		Budget: BudgetReport{
			Income:      d.Transactions.TotalIncome(),
			Expenses:    d.Transactions.TotalExpenses(),
			Balance:     d.Transactions.Balance(),
			TotalBudget: d.TotalBudget(),
		},
		Recent: []TransactionReport{},
	}

	for _, goal := range d.Goals.Goals() {
		m := d.Goals.Metrics(goal)
		report.Savings.Goals = append(report.Savings.Goals, GoalReport{
			ID:              goal.ID,
			Name:            goal.Name,
			Deadline:        goal.Deadline,
			Target:          goal.Target,
			Current:         goal.Current,
			Remaining:       m.Remaining,
			MonthlyTarget:   m.MonthlyTarget,
			ProgressPercent: m.ProgressPercent,
			DaysRemaining:   m.DaysRemaining,
			Completed:       m.Completed,
			BehindSchedule:  m.BehindSchedule,
			DeadlinePassed:  m.DeadlinePassed,
		})
	}

	for _, line := range d.CategoryBreakdown() {
		report.Budget.Categories = append(report.Budget.Categories, BudgetLineReport{
			Category:   line.Category,
			Spent:      line.Spent,
			Budget:     line.Budget,
			Remaining:  line.Remaining,
			Percent:    ledger.BudgetPercent(line.Spent, line.Budget),
			Status:     line.Status,
			Unbudgeted: line.Unbudgeted,
		})
	}

	for _, txn := range d.Transactions.RecentTransactions(recentLimit) {
		report.Recent = append(report.Recent, TransactionReport{
			ID:          txn.ID,
			Date:        txn.Date,
			Description: txn.Description,
			Kind:        txn.Kind,
			Category:    txn.Category,
			Amount:      txn.Amount,
		})
	}

	return report
}

// WriteReport renders report to w in the requested format.
func WriteReport(w io.Writer, report Report, format Format, formatter *money.Formatter) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatCSV:
		return writeCSV(w, report)
	case FormatTable, "":
		return writeTable(w, report, formatter)
	default:
		return fmt.Errorf("%w: unknown format %q", common.ErrInvalidConfig, format)
	}
}

func writeJSON(w io.Writer, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

var csvHeader = []string{"section", "name", "amount", "limit", "percent", "status", "date"}

func writeCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)
	rows := [][]string{csvHeader}

	for _, g := range report.Savings.Goals {
		status := "active"
		switch {
		case g.Completed:
			status = "completed"
		case g.DeadlinePassed:
			status = "deadline_passed"
		case g.BehindSchedule:
			status = "behind_schedule"
		}
		rows = append(rows, []string{
			"goal", g.Name, g.Current.String(), g.Target.String(),
			formatFloat(g.ProgressPercent), status, g.Deadline.Format(ledger.DateLayout),
		})
	}

	for _, line := range report.Budget.Categories {
		rows = append(rows, []string{
			"budget", line.Category.String(), line.Spent.String(), line.Budget.String(),
			formatFloat(line.Percent), line.Status.String(), "",
		})
	}

	for _, txn := range report.Recent {
		rows = append(rows, []string{
			string(txn.Kind), txn.Description, txn.Amount.String(), "",
			"", txn.Category.String(), txn.Date.Format(ledger.DateLayout),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func writeTable(w io.Writer, report Report, formatter *money.Formatter) error {
	if formatter == nil {
		formatter = money.Default()
	}

	var b strings.Builder

	b.WriteString(FormatTitle(GoalIcon, "Savings Goals") + "\n")
	if len(report.Savings.Goals) == 0 {
		b.WriteString(SubtleStyle.Render("  No savings goals yet") + "\n")
	}
	for _, g := range report.Savings.Goals {
		fmt.Fprintf(&b, "  %-24s %s / %s  %s\n",
			g.Name, formatter.Format(g.Current), formatter.Format(g.Target),
			money.Percent(g.ProgressPercent))
		b.WriteString("    " + SubtleStyle.Render(goalDetail(g, formatter)) + "\n")
	}
	fmt.Fprintf(&b, "  %s %s of %s (%s)\n\n",
		BoldStyle.Render("Total saved:"),
		formatter.Format(report.Savings.TotalSaved),
		formatter.Format(report.Savings.TotalTarget),
		money.Percent(report.Savings.OverallPercent))

	b.WriteString(FormatTitle(WalletIcon, "Budget") + "\n")
	fmt.Fprintf(&b, "  Income %s   Expenses %s   Balance %s\n\n",
		formatter.Format(report.Budget.Income),
		formatter.Format(report.Budget.Expenses),
		formatter.FormatSigned(report.Budget.Balance))

	b.WriteString("  " + TableHeaderStyle.Render(fmt.Sprintf("%-15s %16s %16s %16s %8s  %s",
		"Category", "Spent", "Budget", "Remaining", "Used", "Status")) + "\n")
	for _, line := range report.Budget.Categories {
		status := FormatStatus(line.Status)
		if line.Unbudgeted {
			status += SubtleStyle.Render(" (no budget)")
		}
		fmt.Fprintf(&b, "  %-15s %16s %16s %16s %8s  %s\n",
			line.Category, formatter.Format(line.Spent), formatter.Format(line.Budget),
			formatter.Format(line.Remaining), money.Percent(line.Percent), status)
	}
	fmt.Fprintf(&b, "  %s %s\n\n", BoldStyle.Render("Total budget:"), formatter.Format(report.Budget.TotalBudget))

	b.WriteString(FormatTitle(ChartIcon, "Recent Transactions") + "\n")
	if len(report.Recent) == 0 {
		b.WriteString(SubtleStyle.Render("  No transactions yet") + "\n")
	}
	for _, txn := range report.Recent {
		amount := formatter.Format(txn.Amount.Neg())
		if txn.Kind == model.KindIncome {
			amount = formatter.FormatSigned(txn.Amount)
		}
		fmt.Fprintf(&b, "  %s  %-28s %-13s %16s\n",
			txn.Date.Format(ledger.DateLayout), txn.Description, txn.Category, amount)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func goalDetail(g GoalReport, formatter *money.Formatter) string {
	switch {
	case g.Completed:
		return "Goal reached"
	case g.DeadlinePassed:
		return "Deadline passed, " + formatter.Format(g.Remaining) + " to go"
	}

	detail := fmt.Sprintf("%d days left, %s/month to reach %s",
		g.DaysRemaining, formatter.Format(g.MonthlyTarget), g.Deadline.Format(ledger.DateLayout))
	if g.BehindSchedule {
		detail += ", behind schedule"
	}
	return detail
}
