package themes

import (
	"testing"

	"github.com/Veraticus/fintrack/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("default").Primary)
	assert.Equal(t, Default.Primary, GetTheme("unknown").Primary)
}

func TestTheme_GoalColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ec4899"), Default.GoalColor("pink"))
	assert.Equal(t, Default.Primary, Default.GoalColor("plaid"))

	for _, tag := range []string{"green", "orange", "pink", "teal", "indigo"} {
		_, ok := CatppuccinMocha.GoalColors[tag]
		assert.True(t, ok, tag)
	}
}

func TestTheme_StatusColor(t *testing.T) {
	assert.Equal(t, Default.Success, Default.StatusColor(model.StatusGood))
	assert.Equal(t, Default.Warning, Default.StatusColor(model.StatusWarning))
	assert.Equal(t, Default.Error, Default.StatusColor(model.StatusOver))
}

func TestGetCategoryIcon(t *testing.T) {
	for _, c := range model.ExpenseCategories() {
		assert.NotEmpty(t, GetCategoryIcon(c), c)
	}
	assert.Equal(t, "📦", GetCategoryIcon("Pets"))
}
