package cli

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/demo"
	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/Veraticus/fintrack/internal/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportNow = time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC)

func seededDashboard(t *testing.T) *ledger.Dashboard {
	t.Helper()
	d := ledger.NewDashboard(ledger.FixedClock(reportNow))
	require.NoError(t, demo.Seed(d, reportNow))
	return d
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatTable},
		{input: "table", want: FormatTable},
		{input: "JSON", want: FormatJSON},
		{input: " csv ", want: FormatCSV},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(seededDashboard(t), "MWK", 3)

	assert.Equal(t, reportNow, report.GeneratedAt)
	require.Len(t, report.Savings.Goals, 2)
	assert.True(t, report.Savings.TotalSaved.Equal(decimal.NewFromInt(465000)))
	assert.True(t, report.Savings.TotalTarget.Equal(decimal.NewFromInt(1700000)))
	assert.True(t, report.Savings.Goals[0].MonthlyTarget.Equal(decimal.NewFromInt(62500)))

	assert.True(t, report.Budget.Balance.Equal(decimal.NewFromInt(30000)))
	require.Len(t, report.Budget.Categories, 8)
	assert.Equal(t, model.CategoryFood, report.Budget.Categories[0].Category)
	assert.Equal(t, model.StatusWarning, report.Budget.Categories[0].Status)

	require.Len(t, report.Recent, 3)
	assert.Equal(t, "Clothes shopping", report.Recent[0].Description)
}

func TestWriteReport_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteReport(&out, BuildReport(seededDashboard(t), "MWK", 10), FormatJSON, nil))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "MWK", decoded["currency"])

	budget, ok := decoded["budget"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "30000", budget["balance"])

	categories, ok := budget["categories"].([]any)
	require.True(t, ok)
	food, ok := categories[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "warning", food["status"])
}

func TestWriteReport_CSV(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteReport(&out, BuildReport(seededDashboard(t), "MWK", 10), FormatCSV, nil))

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	// header + 2 goals + 8 categories + 9 transactions
	require.Len(t, rows, 20)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"goal", "Emergency Fund", "125000", "500000", "25.0", "active", "2026-07-19"}, rows[1])
	assert.Equal(t, []string{"budget", "Food", "27000", "30000", "90.0", "warning", ""}, rows[3])
	assert.Equal(t, "expense", rows[11][0])
}

func TestWriteReport_Table(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteReport(&out, BuildReport(seededDashboard(t), "MWK", 10), FormatTable, money.Default()))

	text := out.String()
	assert.Contains(t, text, "Savings Goals")
	assert.Contains(t, text, "Emergency Fund")
	assert.Contains(t, text, "MWK 62,500/month")
	assert.Contains(t, text, "MWK 465,000 of MWK 1,700,000")
	assert.Contains(t, text, "Balance +MWK 30,000")
	assert.Contains(t, text, "Groceries - Shoprite")
	assert.Contains(t, text, "+MWK 150,000")
}

func TestWriteReport_TableEmpty(t *testing.T) {
	var out bytes.Buffer
	d := ledger.NewDashboard(ledger.FixedClock(reportNow))
	require.NoError(t, WriteReport(&out, BuildReport(d, "MWK", 10), FormatTable, nil))

	assert.Contains(t, out.String(), "No savings goals yet")
	assert.Contains(t, out.String(), "No transactions yet")
}
