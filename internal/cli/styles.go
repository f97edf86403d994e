// Package cli renders fintrack's non-interactive terminal output.
package cli

import (
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main accent color.
	PrimaryColor = lipgloss.Color("#10B981")
	// SuccessColor marks healthy budgets and completed goals.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor marks budgets nearing their limit.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor marks overspent budgets and failures.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SubtleColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	GoalIcon    = "🎯"
	WalletIcon  = "💰"
	ChartIcon   = "📊"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a section title with an icon.
func FormatTitle(icon, title string) string {
	return TitleStyle.Render(icon + " " + title)
}

// StatusStyle picks the style for a budget status.
func StatusStyle(status model.CategoryStatus) lipgloss.Style {
	switch status {
	case model.StatusOver:
		return ErrorStyle
	case model.StatusWarning:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// FormatStatus renders a budget status label in its color.
func FormatStatus(status model.CategoryStatus) string {
	return StatusStyle(status).Render(status.String())
}
