package main

import (
	"github.com/Veraticus/fintrack/internal/cli"
	"github.com/Veraticus/fintrack/internal/config"
	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print savings progress and budget status",
		Long: `Print a snapshot of savings goals, category budgets and recent transactions.

Examples:
  fintrack summary --demo
  fintrack summary --demo --format json
  fintrack summary --demo --format csv > snapshot.csv`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}

	cmd.Flags().StringP("format", "f", string(cli.FormatTable), "output format (table, json, csv)")
	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := cli.ParseFormat(name)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	d, err := buildDashboard(cfg, ledger.SystemClock)
	if err != nil {
		return err
	}

	return printReport(cmd, d, cfg, format)
}

func printReport(cmd *cobra.Command, d *ledger.Dashboard, cfg *config.Config, format cli.Format) error {
	formatter, err := cfg.Formatter()
	if err != nil {
		return err
	}
	report := cli.BuildReport(d, formatter.Currency(), cfg.RecentLimit)
	return cli.WriteReport(cmd.OutOrStdout(), report, format, formatter)
}
