package ledger

import (
	"errors"
	"testing"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_AddGoalDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft GoalDraft
		field string
	}{
		{name: "missing name", draft: GoalDraft{Target: "500000", Deadline: "2026-06-30"}, field: "name"},
		{name: "missing target", draft: GoalDraft{Name: "Fund", Deadline: "2026-06-30"}, field: "target"},
		{name: "text target", draft: GoalDraft{Name: "Fund", Target: "much", Deadline: "2026-06-30"}, field: "target"},
		{name: "zero target", draft: GoalDraft{Name: "Fund", Target: "0", Deadline: "2026-06-30"}, field: "target"},
		{name: "missing deadline", draft: GoalDraft{Name: "Fund", Target: "500000"}, field: "deadline"},
		{name: "bad deadline", draft: GoalDraft{Name: "Fund", Target: "500000", Deadline: "June"}, field: "deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDashboard(FixedClock(testNow))
			_, err := d.AddGoalDraft(tt.draft)

			var vErr *common.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Zero(t, d.Goals.Len())
		})
	}

	d := NewDashboard(FixedClock(testNow))
	goal, err := d.AddGoalDraft(GoalDraft{Name: "Emergency Fund", Target: "500,000", Deadline: "2026-06-30"})
	require.NoError(t, err)
	assert.True(t, goal.Target.Equal(amount(500000)))
	assert.Equal(t, date(2026, 6, 30), goal.Deadline)
}

func TestDashboard_ContributeDraft(t *testing.T) {
	d := NewDashboard(FixedClock(testNow))
	goal := newTestGoal(t, d.Goals, 500000, 0, date(2026, 6, 30))

	_, err := d.ContributeDraft(goal.ID, "")
	assert.True(t, common.IsValidation(err))

	_, err = d.ContributeDraft(goal.ID, "-10")
	assert.True(t, common.IsValidation(err))

	_, err = d.ContributeDraft("missing", "10")
	assert.True(t, common.IsNotFound(err))

	updated, err := d.ContributeDraft(goal.ID, "MWK 25,000")
	require.NoError(t, err)
	assert.True(t, updated.Current.Equal(amount(25000)))
}
