package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Title of the history screen
const Title = "Historial de Actividad"

// Placeholder texts
const (
	LoadingText = "Cargando historial..."
	EmptyText   = "Aún no hay actividad."
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return LoadingText
	}

	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	helpText := m.renderHelp()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar) - lipgloss.Height(helpText)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.renderBody())

	main := lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		statusBar,
		helpText,
	)

	if m.detail != nil {
		main = m.renderDetailPopup(main)
	}

	// Help popup overlay (render last to be on top)
	if m.showHelpPopup {
		main = m.renderHelpPopup(main)
	}

	return main
}

func (m Model) renderHeader() string {
	keys := m.config.Keys
	title := TitleStyle.Render(Title)

	refresh := ButtonStyle.Render("[" + firstKey(keys.Refresh, "r") + "] Refrescar")

	exportLabel := "[" + firstKey(keys.Export, "e") + "] Descargar Excel"
	if m.state.Exporting {
		exportLabel = m.spinner.View() + " Exportando..."
	}
	export := ButtonDisabledStyle.Render(exportLabel)
	if m.state.CanExport() {
		export = ButtonStyle.Render(exportLabel)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, refresh, " ", export)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(buttons)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), buttons)
}

// renderBody picks the first matching body: loading, error, empty, list
func (m Model) renderBody() string {
	switch m.state.Body() {
	case BodyLoading:
		return m.spinner.View() + " " + MetaStyle.Render(LoadingText)
	case BodyError:
		return ErrorStyle.Render(m.state.Err)
	case BodyEmpty:
		return MetaStyle.Render(EmptyText)
	default:
		return m.table.View()
	}
}
