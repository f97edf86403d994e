// Package model holds the domain entities shared by the ledgers and presentation layers.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings goal with a target amount and a deadline.
type Goal struct {
	Deadline  time.Time
	CreatedAt time.Time
	ID        string
	Name      string
	Color     string // Cosmetic tag, never used in calculations
	Target    decimal.Decimal
	Current   decimal.Decimal
}

// IsCompleted reports whether the goal has reached its target.
func (g Goal) IsCompleted() bool {
	return g.Current.GreaterThanOrEqual(g.Target)
}

// Remaining returns the amount still needed to reach the target.
func (g Goal) Remaining() decimal.Decimal {
	return g.Target.Sub(g.Current)
}
