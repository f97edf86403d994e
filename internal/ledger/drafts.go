package ledger

import (
	"strings"
	"time"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/Veraticus/fintrack/internal/money"
	"github.com/shopspring/decimal"
)

// GoalDraft is the raw text of the new-goal form.
type GoalDraft struct {
	Name     string
	Target   string
	Deadline string // DateLayout
}

// AddGoalDraft parses a form draft and adds the goal.
func (d *Dashboard) AddGoalDraft(draft GoalDraft) (model.Goal, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return model.Goal{}, common.NewValidationError("name", "is required")
	}
	target, err := parseDraftAmount("target", draft.Target)
	if err != nil {
		return model.Goal{}, err
	}
	deadline, err := d.parseDraftDate("deadline", draft.Deadline, false)
	if err != nil {
		return model.Goal{}, err
	}
	return d.Goals.Add(GoalInput{Name: draft.Name, Target: target, Deadline: deadline})
}

// ContributeDraft parses a contribution amount typed by the user.
func (d *Dashboard) ContributeDraft(goalID, text string) (model.Goal, error) {
	amount, err := parseDraftAmount("amount", text)
	if err != nil {
		return model.Goal{}, err
	}
	return d.Goals.Contribute(goalID, amount)
}

func parseDraftAmount(field, text string) (decimal.Decimal, error) {
	if strings.TrimSpace(text) == "" {
		return decimal.Zero, common.NewValidationError(field, "is required")
	}
	amount, err := money.ParseAmount(text)
	if err != nil {
		return decimal.Zero, common.NewValidationError(field, "must be a number")
	}
	return amount, nil
}

// parseDraftDate reads a DateLayout date in the dashboard's location. Blank
// input means today when blankToday is set and is left zero otherwise.
func (d *Dashboard) parseDraftDate(field, text string, blankToday bool) (time.Time, error) {
	now := d.Now()
	if strings.TrimSpace(text) == "" {
		if !blankToday {
			return time.Time{}, nil
		}
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	date, err := ParseDate(strings.TrimSpace(text), now.Location())
	if err != nil {
		return time.Time{}, common.NewValidationError(field, "must look like "+DateLayout)
	}
	return date, nil
}
