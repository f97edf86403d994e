package tui

import (
	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/money"
	"github.com/Veraticus/fintrack/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Formatter   *money.Formatter
	Width       int
	Height      int
	RecentLimit int
	AltScreen   bool
	ShowHelp    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		Formatter:   money.Default(),
		Width:       100,
		Height:      32,
		RecentLimit: ledger.DefaultRecentLimit,
		AltScreen:   true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithFormatter sets the currency formatter.
func WithFormatter(f *money.Formatter) Option {
	return func(c *Config) {
		if f != nil {
			c.Formatter = f
		}
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithRecentLimit sets how many transactions the budget tab lists.
func WithRecentLimit(n int) Option {
	return func(c *Config) {
		c.RecentLimit = n
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
