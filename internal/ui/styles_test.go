package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/gt"

	"github.com/nhath/registros/internal/config"
)

func TestInitStylesAppliesTheme(t *testing.T) {
	theme := config.DefaultConfig().Theme
	InitStyles(theme)

	gt.Equal(t, TextPrimary(), lipgloss.Color(theme.TextPrimary))
	gt.Equal(t, SuccessColor(), lipgloss.Color(theme.Success))
	gt.Equal(t, ErrorColor(), lipgloss.Color(theme.Error))
	gt.Equal(t, CardBg(), lipgloss.Color(theme.CardBg))
	gt.Equal(t, SpinnerStyle.GetForeground(), lipgloss.TerminalColor(lipgloss.Color(theme.Highlight)))
}
