package demo

import (
	"testing"
	"time"

	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	now := time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC)
	d := ledger.NewDashboard(ledger.FixedClock(now))

	require.NoError(t, Seed(d, now))

	goals := d.Goals.Goals()
	require.Len(t, goals, 2)
	emergency := d.Goals.Metrics(goals[0])
	assert.Equal(t, 180, emergency.DaysRemaining)
	assert.True(t, emergency.MonthlyTarget.Equal(decimal.NewFromInt(62500)))

	assert.True(t, d.Transactions.TotalIncome().Equal(decimal.NewFromInt(150000)))
	assert.True(t, d.Transactions.TotalExpenses().Equal(decimal.NewFromInt(120000)))
	assert.True(t, d.Transactions.Balance().Equal(decimal.NewFromInt(30000)))

	// Food: 27000 of 30000.
	assert.Equal(t, model.StatusWarning, d.CategoryStatus(model.CategoryFood))
	assert.Equal(t, model.StatusOver, d.CategoryStatus(model.CategoryHousing))

	recent := d.Transactions.RecentTransactions(ledger.DefaultRecentLimit)
	require.Len(t, recent, 9)
	assert.Equal(t, "Clothes shopping", recent[0].Description)
	assert.Equal(t, time.January, recent[0].Date.Month())
}
