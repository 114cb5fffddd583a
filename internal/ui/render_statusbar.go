package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/registros/internal/ui/icons"
)

func (m Model) renderStatusBar() string {
	var parts []string

	// 1. Record count
	count := fmt.Sprintf(" %d registros ", len(m.state.Items))
	parts = append(parts, lipgloss.NewStyle().Background(CardBg()).Foreground(TextPrimary()).Render(count))

	// 2. Busy indicator
	if m.state.Loading && len(m.state.Items) > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(AccentColor()).Padding(0, 1).Render(m.spinner.View()+" Actualizando..."))
	}

	// 3. Export result
	if m.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Background(SuccessColor()).Foreground(BgPrimary()).Padding(0, 1)
		parts = append(parts, statusStyle.Render(icons.IconSuccess+" "+limitString(m.statusMsg, m.width/2)))
	} else if m.lastExport != "" {
		parts = append(parts, MetaStyle.Padding(0, 1).Render("Última exportación: "+limitString(m.lastExport, 40)))
	}

	// 4. Fetch error over a retained list
	if m.state.Err != "" && m.state.Body() == BodyList {
		parts = append(parts, lipgloss.NewStyle().Background(ErrorColor()).Foreground(TextPrimary()).Padding(0, 1).Render(icons.IconError+" "+m.state.Err))
	}

	// 5. Export error
	if m.errorMsg != "" {
		parts = append(parts, lipgloss.NewStyle().Background(ErrorColor()).Foreground(TextPrimary()).Padding(0, 1).Render(icons.IconError+" "+m.errorMsg))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return StatusBarStyle.Width(m.width).MaxHeight(1).Render(content)
}
