package main

import (
	"fmt"

	"github.com/Veraticus/fintrack/internal/config"
	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/tui"
	"github.com/Veraticus/fintrack/internal/tui/themes"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard [statements...]",
		Short: "Open the interactive dashboard",
		Long: `Open the savings and budget dashboard in the terminal.

Any OFX/QFX statements given are imported before the dashboard opens.

Examples:
  # Explore with demo data
  fintrack dashboard --demo

  # Start from this month's bank statement
  fintrack dashboard ~/Downloads/statement.qfx`,
		RunE: runDashboard,
	}

	cmd.Flags().Bool("no-alt-screen", false, "render inline instead of in the alternate screen")
	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	formatter, err := cfg.Formatter()
	if err != nil {
		return err
	}

	d, err := buildDashboard(cfg, ledger.SystemClock)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		files, err := expandFiles(args)
		if err != nil {
			return err
		}
		if _, err := importStatements(cmd.Context(), d, cfg, files, cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	noAlt, _ := cmd.Flags().GetBool("no-alt-screen")
	if err := tui.Run(cmd.Context(), d,
		tui.WithTheme(themes.GetTheme(cfg.Theme)),
		tui.WithFormatter(formatter),
		tui.WithRecentLimit(cfg.RecentLimit),
		tui.WithAltScreen(!noAlt),
	); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
