package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/fintrack/internal/cli"
	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/config"
	"github.com/Veraticus/fintrack/internal/demo"
	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/Veraticus/fintrack/internal/ofx"
)

// buildDashboard creates a dashboard with the configured budgets, seeded with
// demo data when enabled.
func buildDashboard(cfg *config.Config, clock ledger.Clock) (*ledger.Dashboard, error) {
	d := ledger.NewDashboard(clock)
	if len(cfg.Budgets) > 0 {
		d.Budgets = ledger.NewBudgetMap(cfg.Budgets)
	}

	if cfg.Demo {
		if err := demo.Seed(d, d.Now()); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		slog.Debug("Seeded demo data", "goals", d.Goals.Len())
	}
	return d, nil
}

// expandFiles resolves globs and ~ in args. Patterns that match nothing are
// kept only when they name an existing file.
func expandFiles(args []string) ([]string, error) {
	var files []string
	for _, pattern := range args {
		pattern = config.ExpandPath(pattern)
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, common.NewUserError("No statement files found to import", common.ErrNoTransactions)
	}
	return files, nil
}

// importResult counts what one statement contributed.
type importResult struct {
	File     string
	Imported int
	Err      error
}

// importStatements parses every file and imports its entries into d. A file
// that fails to parse is reported and skipped. An interrupt stops the loop.
func importStatements(ctx context.Context, d *ledger.Dashboard, cfg *config.Config, files []string, progressOut io.Writer) ([]importResult, error) {
	parser := ofx.NewParser(ofx.NewKeywordCategorizer(cfg.ImportKeywords))

	handler := cli.NewInterruptHandler(progressOut, "Import interrupted, keeping statements already processed")
	ctx, stop := handler.Watch(ctx)
	defer stop()

	progress := cli.NewImportProgress(progressOut, len(files))
	defer progress.Finish()

	results := make([]importResult, 0, len(files))
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		result := importResult{File: filepath.Base(path)}
		result.Imported, result.Err = importFile(ctx, d, parser, path)
		if result.Err != nil {
			common.LogError(result.Err, "Failed to import statement", common.Fields{"file": path})
		}
		results = append(results, result)
		progress.Step(result.File)
	}

	if handler.WasInterrupted() {
		return results, common.NewUserError("Import interrupted", ctx.Err())
	}
	return results, nil
}

func importFile(ctx context.Context, d *ledger.Dashboard, parser *ofx.Parser, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := parser.ParseFile(ctx, f)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}
	return d.Transactions.Import(entries)
}

// writeImportSummary prints one line per file and a total.
func writeImportSummary(w io.Writer, results []importResult) error {
	if _, err := fmt.Fprintln(w, cli.FormatTitle(cli.WalletIcon, "Import summary")); err != nil {
		return err
	}

	total := 0
	for _, r := range results {
		var line string
		switch {
		case r.Err != nil:
			line = cli.FormatError(fmt.Sprintf("%s: %v", r.File, r.Err))
		case r.Imported == 0:
			line = cli.FormatWarning(fmt.Sprintf("%s: no transactions", r.File))
		default:
			line = cli.FormatSuccess(fmt.Sprintf("%s: %d transactions", r.File, r.Imported))
		}
		total += r.Imported
		if _, err := fmt.Fprintln(w, "  "+line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, cli.FormatInfo(fmt.Sprintf("Imported %d transactions from %d files", total, len(results))))
	return err
}
