package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/config"
	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260120120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>MWK
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260101120000[0:GMT]
<DTEND>20260131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260105120000[0:GMT]
<TRNAMT>-12000.00
<FITID>2026010501
<NAME>SHOPRITE LILONGWE
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260115120000[0:GMT]
<TRNAMT>150000.00
<FITID>2026011501
<NAME>PAYROLL DEPOSIT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>138000.00
<DTASOF>20260131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

var testNow = time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

func writeStatement(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBuildDashboard(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantGoals int
		wantFood  int64
	}{
		{
			name:     "empty with defaults",
			cfg:      config.Config{},
			wantFood: 30000,
		},
		{
			name: "budget overrides",
			cfg: config.Config{
				Budgets: map[model.Category]decimal.Decimal{model.CategoryFood: decimal.NewFromInt(45000)},
			},
			wantFood: 45000,
		},
		{
			name:      "demo data",
			cfg:       config.Config{Demo: true},
			wantGoals: 2,
			wantFood:  30000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := buildDashboard(&tt.cfg, ledger.FixedClock(testNow))
			require.NoError(t, err)

			assert.Equal(t, tt.wantGoals, d.Goals.Len())
			assert.True(t, d.Budgets.Limit(model.CategoryFood).Equal(decimal.NewFromInt(tt.wantFood)))
		})
	}
}

func TestExpandFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeStatement(t, dir, "jan.qfx", statementOFX)
	second := writeStatement(t, dir, "feb.qfx", statementOFX)

	files, err := expandFiles([]string{filepath.Join(dir, "*.qfx")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, files)

	files, err = expandFiles([]string{first, filepath.Join(dir, "missing.ofx")})
	require.NoError(t, err)
	assert.Equal(t, []string{first}, files)

	_, err = expandFiles([]string{filepath.Join(dir, "*.ofx")})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoTransactions)
}

func TestImportStatements(t *testing.T) {
	dir := t.TempDir()
	good := writeStatement(t, dir, "jan.qfx", statementOFX)
	bad := writeStatement(t, dir, "broken.qfx", "not an ofx file")

	d, err := buildDashboard(&config.Config{}, ledger.FixedClock(testNow))
	require.NoError(t, err)

	var progress bytes.Buffer
	results, err := importStatements(context.Background(), d, &config.Config{}, []string{good, bad}, &progress)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "jan.qfx", results[0].File)
	assert.Equal(t, 2, results[0].Imported)
	require.NoError(t, results[0].Err)

	assert.Equal(t, "broken.qfx", results[1].File)
	assert.Zero(t, results[1].Imported)
	assert.Error(t, results[1].Err)

	assert.True(t, d.Transactions.TotalIncome().Equal(decimal.NewFromInt(150000)))
	assert.True(t, d.Transactions.TotalExpenses().Equal(decimal.NewFromInt(12000)))
}

func TestImportStatements_Canceled(t *testing.T) {
	dir := t.TempDir()
	path := writeStatement(t, dir, "jan.qfx", statementOFX)

	d, err := buildDashboard(&config.Config{}, ledger.FixedClock(testNow))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := importStatements(ctx, d, &config.Config{}, []string{path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, d.Transactions.Income())
}

func TestWriteImportSummary(t *testing.T) {
	var out bytes.Buffer
	err := writeImportSummary(&out, []importResult{
		{File: "jan.qfx", Imported: 2},
		{File: "empty.qfx"},
		{File: "broken.qfx", Err: assert.AnError},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Import summary")
	assert.Contains(t, text, "jan.qfx: 2 transactions")
	assert.Contains(t, text, "empty.qfx: no transactions")
	assert.Contains(t, text, "broken.qfx: "+assert.AnError.Error())
	assert.Contains(t, text, "Imported 2 transactions from 3 files")
}
