package main

import (
	"github.com/Veraticus/fintrack/internal/cli"
	"github.com/Veraticus/fintrack/internal/config"
	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import OFX/QFX statements and print the resulting summary",
		Long: `Import transactions from OFX or QFX files exported from your bank, then print
the budget summary they produce. Credits become income, debits become expenses
categorized by keyword.

Examples:
  # Import a single statement
  fintrack import ~/Downloads/statement_jan.qfx

  # Import several and print JSON
  fintrack import ~/Downloads/*.qfx --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().StringP("format", "f", string(cli.FormatTable), "summary format (table, json, csv)")
	cmd.Flags().Bool("quiet", false, "skip the per-file import summary")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := cli.ParseFormat(name)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	files, err := expandFiles(args)
	if err != nil {
		return err
	}
	d, err := buildDashboard(cfg, ledger.SystemClock)
	if err != nil {
		return err
	}

	results, err := importStatements(cmd.Context(), d, cfg, files, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if !quiet {
		if err := writeImportSummary(cmd.ErrOrStderr(), results); err != nil {
			return err
		}
	}
	return printReport(cmd, d, cfg, format)
}
