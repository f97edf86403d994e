package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ImportProgress shows a progress bar while statement files are imported.
type ImportProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
	done   int
}

// NewImportProgress creates a bar for total files.
func NewImportProgress(writer io.Writer, total int) *ImportProgress {
	if writer == nil {
		writer = os.Stderr
	}
	p := &ImportProgress{writer: writer}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][bold]Importing statements...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return p
}

// Step marks one file as processed.
func (p *ImportProgress) Step(name string) {
	p.done++
	p.bar.Describe(fmt.Sprintf("[cyan][bold]Imported[reset] %s", name))
	if err := p.bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Done returns how many files were processed.
func (p *ImportProgress) Done() int {
	return p.done
}

// Finish completes the bar even when some files were skipped.
func (p *ImportProgress) Finish() {
	if err := p.bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}
