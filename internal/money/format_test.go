package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	f := Default()

	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "MWK 0"},
		{name: "small", amount: decimal.NewFromInt(500), want: "MWK 500"},
		{name: "grouped", amount: decimal.NewFromInt(125000), want: "MWK 125,000"},
		{name: "millions", amount: decimal.NewFromInt(1200000), want: "MWK 1,200,000"},
		{name: "rounds to whole units", amount: decimal.RequireFromString("62499.6"), want: "MWK 62,500"},
		{name: "negative", amount: decimal.NewFromInt(-3000), want: "-MWK 3,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.amount))
		})
	}
}

func TestFormatter_FormatSigned(t *testing.T) {
	f := Default()
	assert.Equal(t, "+MWK 150,000", f.FormatSigned(decimal.NewFromInt(150000)))
	assert.Equal(t, "-MWK 5,000", f.FormatSigned(decimal.NewFromInt(-5000)))
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter("USD", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "USD", f.Currency())
	assert.Equal(t, "USD 1,000", f.Format(decimal.NewFromInt(1000)))

	_, err = NewFormatter("NOPE", "en")
	assert.Error(t, err)

	_, err = NewFormatter("MWK", "not a locale!")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "5000", want: "5000"},
		{input: " 12,500.50 ", want: "12500.5"},
		{input: "MWK 300", want: "300"},
		{input: "-20", want: "-20"},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "12 apples", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "25.0%", Percent(25))
	assert.Equal(t, "90.0%", Percent(89.99))
}
