package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) renderHelpPopup(main string) string {
	var content strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(AccentColor()).Render("⌨️  Atajos de teclado")
	content.WriteString(title)
	content.WriteString("\n\n")

	keys := m.config.Keys

	section := func(name string, bindings []struct{ key, desc string }) {
		header := lipgloss.NewStyle().Bold(true).Foreground(HighlightColor()).Render(name)
		content.WriteString(header + "\n")
		for _, b := range bindings {
			keyStyle := lipgloss.NewStyle().Foreground(SuccessColor()).Width(15)
			descStyle := lipgloss.NewStyle().Foreground(TextSecondary())
			content.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(b.key), descStyle.Render(b.desc)))
		}
		content.WriteString("\n")
	}

	section("Navegación", []struct{ key, desc string }{
		{"↑/k", "Subir"},
		{"↓/j", "Bajar"},
		{"←/→", "Cambiar página"},
		{"/", "Filtrar registros"},
	})

	section("Acciones", []struct{ key, desc string }{
		{strings.Join(keys.Refresh, "/"), "Refrescar historial"},
		{strings.Join(keys.Export, "/"), "Descargar Excel"},
		{strings.Join(keys.Detail, "/"), "Ver registro"},
		{strings.Join(keys.Help, "/"), "Mostrar esta ayuda"},
		{strings.Join(keys.Quit, "/"), "Volver"},
	})

	content.WriteString(lipgloss.NewStyle().Faint(true).Render("Pulsa Esc o q para cerrar"))

	popupBox := PopupStyle.
		Width(50).
		MaxHeight(m.height - 2).
		Render(content.String())

	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}
