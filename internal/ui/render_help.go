package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderHelp() string {
	// Style for key hints - makes keys look like keyboard buttons
	keyStyle := lipgloss.NewStyle().
		Foreground(TextPrimary()).
		Background(CardBg()).
		Padding(0, 1).
		Bold(true)

	sepStyle := lipgloss.NewStyle().Foreground(TextFaint())
	descStyle := lipgloss.NewStyle().Foreground(TextSecondary())

	hint := func(key, desc string) string {
		return keyStyle.Render(key) + descStyle.Render(" "+desc)
	}

	sep := sepStyle.Render("  ")
	keys := m.config.Keys

	var hints []string
	switch {
	case m.detail != nil:
		hints = append(hints, hint(firstKey(keys.Quit, "esc"), "Cerrar"))
	case m.table.GetIsFilterInputFocused():
		hints = append(hints, hint("enter", "Aplicar"), hint("esc", "Limpiar"))
	default:
		hints = append(hints,
			hint(firstKey(keys.Refresh, "r"), "Refrescar"),
			hint(firstKey(keys.Export, "e"), "Exportar"),
			hint(firstKey(keys.Detail, "enter"), "Detalle"),
			hint("/", "Filtrar"),
			hint(firstKey(keys.Help, "?"), "Ayuda"),
			hint(firstKey(keys.Quit, "q"), "Salir"),
		)
	}

	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(hints, sep))
}
