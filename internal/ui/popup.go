package ui

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/timefmt"
	"github.com/nhath/registros/internal/ui/highlight"
	"github.com/nhath/registros/internal/ui/icons"
)

// recordJSON is the indented JSON shown in the detail popup
func recordJSON(r history.Record) string {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(raw)
}

func (m Model) renderDetailPopup(main string) string {
	r := *m.detail
	v := NewRowView(r, m.now(), m.loc)

	var content strings.Builder
	icon := MarkerStyle.Render(v.Icon)
	if v.Landmark {
		icon = LandmarkStyle.Render(v.Icon)
	}
	content.WriteString(icon + " " + ActorStyle.Render(v.Actor))
	if v.Secondary != "" {
		content.WriteString(MetaStyle.Render(v.Secondary))
	}
	content.WriteString("\n")
	content.WriteString(MetaStyle.Render(v.When + icons.IconSeparator + timefmt.Local(r.Time().In(m.loc))))
	content.WriteString("\n\n")
	content.WriteString(highlight.JSON(recordJSON(r)))
	content.WriteString("\n\n")
	content.WriteString(lipgloss.NewStyle().Faint(true).Render("Pulsa Esc o q para cerrar"))

	width := m.width * 2 / 3
	if width < 40 {
		width = 40
	}
	popupBox := PopupStyle.
		Width(width).
		MaxHeight(m.height - 2).
		Render(content.String())

	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}
