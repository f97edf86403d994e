package themes

import (
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	GoalColors    map[string]lipgloss.Color
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Selected      lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	RoundedBox    lipgloss.Style
	Dialog        lipgloss.Style
	StatusGood    lipgloss.Style
	StatusWarning lipgloss.Style
	StatusOver    lipgloss.Style
	Income        lipgloss.Style
	Expense       lipgloss.Style
	ErrorText     lipgloss.Style
	InfoText      lipgloss.Style
	Primary       lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
}

type palette struct {
	goals      map[string]lipgloss.Color
	primary    lipgloss.Color
	success    lipgloss.Color
	warning    lipgloss.Color
	errorColor lipgloss.Color
	info       lipgloss.Color
	muted      lipgloss.Color
	border     lipgloss.Color
	foreground lipgloss.Color
	subtle     lipgloss.Color
	selectedFg lipgloss.Color
}

func newTheme(p palette) Theme {
	return Theme{
		GoalColors: p.goals,
		Primary:    p.primary,
		Success:    p.success,
		Warning:    p.warning,
		Error:      p.errorColor,
		Muted:      p.muted,
		Border:     p.border,
		Foreground: p.foreground,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Faint: lipgloss.NewStyle().
			Foreground(p.muted),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.selectedFg).
			Bold(true),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.selectedFg).
			Background(p.primary).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.warning).
			Padding(1, 2),

		StatusGood: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),
		StatusOver: lipgloss.NewStyle().
			Foreground(p.errorColor).
			Bold(true),
		Income: lipgloss.NewStyle().
			Foreground(p.success),
		Expense: lipgloss.NewStyle().
			Foreground(p.errorColor),
		ErrorText: lipgloss.NewStyle().
			Foreground(p.errorColor),
		InfoText: lipgloss.NewStyle().
			Foreground(p.info),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    lipgloss.Color("#10b981"),
	success:    lipgloss.Color("#22c55e"),
	warning:    lipgloss.Color("#f59e0b"),
	errorColor: lipgloss.Color("#ef4444"),
	info:       lipgloss.Color("#3b82f6"),
	muted:      lipgloss.Color("#737373"),
	border:     lipgloss.Color("#404040"),
	foreground: lipgloss.Color("#fafafa"),
	subtle:     lipgloss.Color("#a3a3a3"),
	selectedFg: lipgloss.Color("#0a0a0a"),
	goals: map[string]lipgloss.Color{
		"green":  lipgloss.Color("#22c55e"),
		"orange": lipgloss.Color("#f97316"),
		"pink":   lipgloss.Color("#ec4899"),
		"teal":   lipgloss.Color("#14b8a6"),
		"indigo": lipgloss.Color("#6366f1"),
	},
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    lipgloss.Color("#a6e3a1"),
	success:    lipgloss.Color("#a6e3a1"),
	warning:    lipgloss.Color("#f9e2af"),
	errorColor: lipgloss.Color("#f38ba8"),
	info:       lipgloss.Color("#89dceb"),
	muted:      lipgloss.Color("#6c7086"),
	border:     lipgloss.Color("#45475a"),
	foreground: lipgloss.Color("#cdd6f4"),
	subtle:     lipgloss.Color("#a6adc8"),
	selectedFg: lipgloss.Color("#1e1e2e"),
	goals: map[string]lipgloss.Color{
		"green":  lipgloss.Color("#a6e3a1"),
		"orange": lipgloss.Color("#fab387"),
		"pink":   lipgloss.Color("#f5c2e7"),
		"teal":   lipgloss.Color("#94e2d5"),
		"indigo": lipgloss.Color("#b4befe"),
	},
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// GoalColor resolves a goal's colour tag, falling back to the primary color.
func (t Theme) GoalColor(tag string) lipgloss.Color {
	if c, ok := t.GoalColors[tag]; ok {
		return c
	}
	return t.Primary
}

// StatusStyle picks the style for a budget status.
func (t Theme) StatusStyle(status model.CategoryStatus) lipgloss.Style {
	switch status {
	case model.StatusOver:
		return t.StatusOver
	case model.StatusWarning:
		return t.StatusWarning
	default:
		return t.StatusGood
	}
}

// StatusColor is the bar color for a budget status.
func (t Theme) StatusColor(status model.CategoryStatus) lipgloss.Color {
	switch status {
	case model.StatusOver:
		return t.Error
	case model.StatusWarning:
		return t.Warning
	default:
		return t.Success
	}
}

// CategoryIcons maps categories to emoji icons.
var CategoryIcons = map[model.Category]string{
	model.CategoryFood:          "🍲",
	model.CategoryTransport:     "🚌",
	model.CategoryHousing:       "🏠",
	model.CategoryUtilities:     "💡",
	model.CategoryShopping:      "🛍️",
	model.CategoryEntertainment: "🎬",
	model.CategoryHealthcare:    "💊",
	model.CategoryOther:         "📦",
	model.CategoryIncome:        "💵",
}

// GetCategoryIcon returns an icon for a category.
func GetCategoryIcon(category model.Category) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "📦"
}
