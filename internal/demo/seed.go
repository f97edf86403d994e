// Package demo seeds a dashboard with sample goals, transactions, and budgets.
package demo

import (
	"fmt"
	"time"

	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

type sampleGoal struct {
	name     string
	target   int64
	saved    int64
	daysLeft int
}

type sampleExpense struct {
	description string
	category    model.Category
	amount      int64
	day         int
}

var sampleGoals = []sampleGoal{
	{name: "Emergency Fund", target: 500000, saved: 125000, daysLeft: 180},
	{name: "New Motorcycle", target: 1200000, saved: 340000, daysLeft: 365},
}

var sampleExpenses = []sampleExpense{
	{description: "Rent", category: model.CategoryHousing, amount: 50000, day: 1},
	{description: "Groceries - Shoprite", category: model.CategoryFood, amount: 15000, day: 5},
	{description: "Taxi to work", category: model.CategoryTransport, amount: 5000, day: 6},
	{description: "Electricity bill", category: model.CategoryUtilities, amount: 8000, day: 7},
	{description: "Market shopping", category: model.CategoryFood, amount: 12000, day: 10},
	{description: "Minibus fare", category: model.CategoryTransport, amount: 3000, day: 12},
	{description: "Phone airtime", category: model.CategoryUtilities, amount: 7000, day: 14},
	{description: "Clothes shopping", category: model.CategoryShopping, amount: 20000, day: 16},
}

// Seed fills d with the sample data set. Goal deadlines are relative to now and
// transactions fall in now's month.
func Seed(d *ledger.Dashboard, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for _, g := range sampleGoals {
		goal, err := d.Goals.Add(ledger.GoalInput{
			Name:     g.name,
			Target:   decimal.NewFromInt(g.target),
			Deadline: today.AddDate(0, 0, g.daysLeft),
		})
		if err != nil {
			return fmt.Errorf("seed goal %q: %w", g.name, err)
		}
		if _, err := d.Goals.Contribute(goal.ID, decimal.NewFromInt(g.saved)); err != nil {
			return fmt.Errorf("seed savings for %q: %w", g.name, err)
		}
	}

	if _, err := d.Transactions.AddIncome(ledger.IncomeInput{
		Amount: decimal.NewFromInt(150000),
		Source: "Salary",
		Date:   monthStart.AddDate(0, 0, 14),
	}); err != nil {
		return fmt.Errorf("seed income: %w", err)
	}

	for _, e := range sampleExpenses {
		if _, err := d.Transactions.AddExpense(ledger.ExpenseInput{
			Amount:      decimal.NewFromInt(e.amount),
			Description: e.description,
			Category:    e.category,
			Date:        monthStart.AddDate(0, 0, e.day-1),
		}); err != nil {
			return fmt.Errorf("seed expense %q: %w", e.description, err)
		}
	}

	return nil
}
