// Package components holds the reusable pieces of the dashboard TUI.
package components

import (
	"strings"

	"github.com/Veraticus/fintrack/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FieldSpec describes one text field of a form.
type FieldSpec struct {
	Label       string
	Placeholder string
	Value       string
	CharLimit   int
}

// FormModel is a vertical list of labeled text inputs. Submission and
// cancellation are handled by the owner.
type FormModel struct {
	theme  themes.Theme
	title  string
	hint   string
	errMsg string
	labels []string
	inputs []textinput.Model
	focus  int
	width  int
}

// NewFormModel creates a form with the first field focused.
func NewFormModel(title string, theme themes.Theme, fields ...FieldSpec) FormModel {
	f := FormModel{
		theme:  theme,
		title:  title,
		hint:   "tab: next field • enter: save • esc: cancel",
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
		width:  40,
	}

	for i, spec := range fields {
		ti := textinput.New()
		ti.Placeholder = spec.Placeholder
		ti.CharLimit = spec.CharLimit
		if ti.CharLimit == 0 {
			ti.CharLimit = 64
		}
		ti.Width = f.width
		ti.SetValue(spec.Value)
		f.labels[i] = spec.Label
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// Init starts the cursor blinking.
func (f FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves focus between fields and forwards other input to the focused field.
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f, f.setFocus((f.focus + 1) % len(f.inputs))
		case "shift+tab", "up":
			return f, f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
		}
		// Typing clears a previous validation message.
		f.errMsg = ""
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *FormModel) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Value returns the trimmed text of field i.
func (f FormModel) Value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

// Focused returns the index of the focused field.
func (f FormModel) Focused() int {
	return f.focus
}

// SetError shows err under the form until the next keystroke.
func (f *FormModel) SetError(err error) {
	if err == nil {
		f.errMsg = ""
		return
	}
	f.errMsg = err.Error()
}

// Error returns the message currently shown.
func (f FormModel) Error() string {
	return f.errMsg
}

// Resize sets the input width.
func (f *FormModel) Resize(width int) {
	f.width = max(width, 10)
	for i := range f.inputs {
		f.inputs[i].Width = f.width
	}
}

// View renders the form.
func (f FormModel) View() string {
	labelWidth := 0
	for _, l := range f.labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	labelStyle := f.theme.Faint.Width(labelWidth + 2)

	rows := []string{f.theme.Title.Render(f.title), ""}
	for i, input := range f.inputs {
		label := labelStyle.Render(f.labels[i])
		if i == f.focus {
			label = f.theme.Bold.Width(labelWidth + 2).Render(f.labels[i])
		}
		rows = append(rows, label+input.View())
	}

	rows = append(rows, "")
	if f.errMsg != "" {
		rows = append(rows, f.theme.ErrorText.Render("✗ "+f.errMsg))
	}
	rows = append(rows, f.theme.Faint.Render(f.hint))

	return f.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
