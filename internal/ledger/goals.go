// Package ledger owns the savings goals, transactions, and budgets, and derives
// every metric from their current contents on each read.
package ledger

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

// Schedule policy. These are fixed heuristics, not derived values.
const (
	// DaysPerMonth converts days remaining into months for contribution planning.
	DaysPerMonth = 30
	// BehindScheduleDays is the days-remaining threshold below which a goal is at risk.
	BehindScheduleDays = 30
	// BehindScheduleProgress is the progress percentage below which a goal is at risk.
	BehindScheduleProgress = 70.0
)

// goalColors is the palette new goals pick their display tag from.
var goalColors = []string{"green", "orange", "pink", "teal", "indigo"}

// GoalMetrics bundles the derived values for one goal at a point in time.
type GoalMetrics struct {
	Remaining       decimal.Decimal
	MonthlyTarget   decimal.Decimal
	ProgressPercent float64
	DaysRemaining   int
	Completed       bool
	BehindSchedule  bool
	DeadlinePassed  bool
}

// SavingsSummary aggregates all goals.
type SavingsSummary struct {
	TotalSaved     decimal.Decimal
	TotalTarget    decimal.Decimal
	OverallPercent float64
	GoalCount      int
	CompletedCount int
}

// GoalLedger owns the savings goals.
type GoalLedger struct {
	clock Clock
	goals []model.Goal
}

// NewGoalLedger creates an empty goal ledger. A nil clock uses the system clock.
func NewGoalLedger(clock Clock) *GoalLedger {
	if clock == nil {
		clock = SystemClock
	}
	return &GoalLedger{clock: clock}
}

// Add validates the input and appends a new goal with nothing saved yet.
func (l *GoalLedger) Add(input GoalInput) (model.Goal, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return model.Goal{}, err
	}

	now := l.clock.Now()
	goal := model.Goal{
		ID:        common.NewID(now),
		Name:      input.Name,
		Target:    input.Target,
		Current:   decimal.Zero,
		Deadline:  input.Deadline,
		Color:     goalColors[rand.IntN(len(goalColors))],
		CreatedAt: now,
	}
	l.goals = append(l.goals, goal)

	slog.Debug("Goal added", "id", goal.ID, "name", goal.Name, "target", goal.Target.String())
	return goal, nil
}

// Contribute adds amount to a goal's savings. Savings never exceed the target;
// anything beyond the remaining gap is dropped.
func (l *GoalLedger) Contribute(id string, amount decimal.Decimal) (model.Goal, error) {
	if err := requirePositive("amount", amount); err != nil {
		return model.Goal{}, err
	}

	idx := l.indexOf(id)
	if idx < 0 {
		return model.Goal{}, fmt.Errorf("goal %s: %w", id, common.ErrNotFound)
	}

	goal := &l.goals[idx]
	goal.Current = decimal.Min(goal.Current.Add(amount), goal.Target)

	slog.Debug("Contribution added", "id", id, "amount", amount.String(), "current", goal.Current.String())
	return *goal, nil
}

// Delete removes a goal. The collection is unchanged when id is unknown.
func (l *GoalLedger) Delete(id string) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("goal %s: %w", id, common.ErrNotFound)
	}
	l.goals = append(l.goals[:idx], l.goals[idx+1:]...)

	slog.Debug("Goal deleted", "id", id)
	return nil
}

// Get returns the goal with the given id.
func (l *GoalLedger) Get(id string) (model.Goal, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return model.Goal{}, fmt.Errorf("goal %s: %w", id, common.ErrNotFound)
	}
	return l.goals[idx], nil
}

// Goals returns a copy of the goals in creation order.
func (l *GoalLedger) Goals() []model.Goal {
	out := make([]model.Goal, len(l.goals))
	copy(out, l.goals)
	return out
}

// Len returns the number of goals.
func (l *GoalLedger) Len() int {
	return len(l.goals)
}

// Metrics derives the per-goal values as of the ledger clock's current time.
func (l *GoalLedger) Metrics(goal model.Goal) GoalMetrics {
	now := l.clock.Now()
	days := DaysRemaining(goal, now)
	return GoalMetrics{
		Remaining:       goal.Remaining(),
		MonthlyTarget:   MonthlyTargetContribution(goal, now),
		ProgressPercent: ProgressPercent(goal),
		DaysRemaining:   days,
		Completed:       goal.IsCompleted(),
		BehindSchedule:  IsBehindSchedule(goal, now),
		DeadlinePassed:  days <= 0,
	}
}

// Summary totals savings across all goals.
func (l *GoalLedger) Summary() SavingsSummary {
	summary := SavingsSummary{
		TotalSaved:  decimal.Zero,
		TotalTarget: decimal.Zero,
		GoalCount:   len(l.goals),
	}
	for _, g := range l.goals {
		summary.TotalSaved = summary.TotalSaved.Add(g.Current)
		summary.TotalTarget = summary.TotalTarget.Add(g.Target)
		if g.IsCompleted() {
			summary.CompletedCount++
		}
	}
	if summary.TotalTarget.IsPositive() {
		summary.OverallPercent = summary.TotalSaved.Div(summary.TotalTarget).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return summary
}

func (l *GoalLedger) indexOf(id string) int {
	for i := range l.goals {
		if l.goals[i].ID == id {
			return i
		}
	}
	return -1
}

// ProgressPercent returns current/target as a percentage capped at 100.
// A non-positive target yields 0.
func ProgressPercent(goal model.Goal) float64 {
	if !goal.Target.IsPositive() {
		return 0
	}
	pct := goal.Current.Div(goal.Target).Mul(decimal.NewFromInt(100)).InexactFloat64()
	return math.Max(0, math.Min(pct, 100))
}

// DaysRemaining returns the whole days until the deadline, rounded up.
// It is negative once the deadline has passed. Days are counted on wall-clock
// time, so a daylight saving change never adds or drops a day.
func DaysRemaining(goal model.Goal, now time.Time) int {
	hours := wallClock(goal.Deadline).Sub(wallClock(now)).Hours()
	return int(math.Ceil(hours / 24))
}

// wallClock keeps t's calendar date and time of day but moves it to UTC.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// MonthlyTargetContribution spreads the remaining amount evenly over the months
// left, never fewer than one.
func MonthlyTargetContribution(goal model.Goal, now time.Time) decimal.Decimal {
	monthsLeft := math.Max(float64(DaysRemaining(goal, now))/DaysPerMonth, 1)
	return goal.Remaining().Div(decimal.NewFromFloat(monthsLeft))
}

// IsBehindSchedule flags an unfinished goal with little time and little progress.
func IsBehindSchedule(goal model.Goal, now time.Time) bool {
	return !goal.IsCompleted() &&
		DaysRemaining(goal, now) < BehindScheduleDays &&
		ProgressPercent(goal) < BehindScheduleProgress
}
