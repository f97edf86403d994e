package common

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "is required")

	assert.Equal(t, "name is required", err.Error())
	assert.True(t, IsValidation(err))
	assert.True(t, errors.Is(fmt.Errorf("add goal: %w", err), ErrValidation))
	assert.False(t, IsNotFound(err))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)

	bare := &ValidationError{Message: "please fill in all fields"}
	assert.Equal(t, "please fill in all fields", bare.Error())
}

func TestUserError(t *testing.T) {
	inner := fmt.Errorf("goal 01ABC: %w", ErrNotFound)
	err := NewUserError("Could not add savings", inner)

	assert.Equal(t, "Could not add savings: goal 01ABC: not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "plain", NewUserError("plain", nil).Error())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("goal added", "name", "Emergency Fund")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"goal added"`)
	assert.Contains(t, out, `"name":"Emergency Fund"`)

	_, err = NewLogger(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewID_Ordered(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first := NewID(base)
	second := NewID(base)
	later := NewID(base.Add(time.Second))

	assert.Len(t, first, 26)
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second)
	assert.Less(t, second, later)
}
