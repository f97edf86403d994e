package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/fintrack/internal/ledger"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, d *ledger.Dashboard, opts ...Option) error {
	if d == nil {
		return fmt.Errorf("dashboard is required")
	}

	m := New(d, opts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	slog.Debug("Starting dashboard", "goals", d.Goals.Len(), "alt_screen", m.config.AltScreen)

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		// A canceled context surfaces as a killed program.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
