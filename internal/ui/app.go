// internal/ui/app.go
package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/logging"
	"github.com/nhath/registros/internal/ui/icons"
)

// chromeHeight covers header, status bar and key hints
const chromeHeight = 3

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.table.
			WithTargetWidth(msg.Width).
			WithPageSize(tableHeight(msg.Height, chromeHeight))
		return m, nil

	case RefreshMsg:
		return m.startFetch()

	case HistoryLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case ExportCompleteMsg:
		return m.handleExportComplete(msg)

	case LastExportMsg:
		if msg.Err != nil {
			logging.From(m.ctx).Warn("failed to read export journal", "error", msg.Err)
			return m, nil
		}
		if msg.Entry != nil && m.lastExport == "" {
			m.lastExport = msg.Entry.Path
		}
		return m, nil

	case ClockMsg:
		if m.ctx.Err() != nil {
			return m, nil
		}
		if len(m.state.Items) > 0 {
			m.table = m.table.WithRows(m.tableRows())
		}
		return m, clockCmd()

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.config.Keys

	// Filter input owns the keyboard while focused
	if m.table.GetIsFilterInputFocused() {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// Popups close on their own key, a quit key or the detail key
	if m.detail != nil {
		if matchKey(msg, keys.Quit) || matchKey(msg, keys.Detail) {
			m.detail = nil
		}
		return m, nil
	}
	if m.showHelpPopup {
		if matchKey(msg, keys.Quit) || matchKey(msg, keys.Help) {
			m.showHelpPopup = false
		}
		return m, nil
	}

	switch {
	case matchKey(msg, keys.Refresh):
		return m.startFetch()

	case matchKey(msg, keys.Export):
		return m.startExport()

	case matchKey(msg, keys.Detail):
		if m.state.Body() == BodyList {
			if r, ok := m.highlightedRecord(); ok {
				m.detail = r
			}
		}
		return m, nil

	case matchKey(msg, keys.Help):
		m.showHelpPopup = true
		return m, nil

	case matchKey(msg, keys.Quit):
		return m.quit()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// startFetch cancels any in-flight fetch and starts the next generation
func (m Model) startFetch() (Model, tea.Cmd) {
	if m.ctx.Err() != nil {
		return m, nil
	}
	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelFetch = cancel

	gen := m.state.Generation + 1
	m.state = Reduce(m.state, FetchStarted{Generation: gen})
	logging.From(m.ctx).Debug("fetching history", "generation", gen)

	cmd := tea.Batch(m.fetchCmd(ctx, cancel, gen), m.spin())
	return m, cmd
}

func (m Model) handleHistoryLoaded(msg HistoryLoadedMsg) (Model, tea.Cmd) {
	if msg.Generation != m.state.Generation {
		logging.From(m.ctx).Debug("dropping stale fetch result", "generation", msg.Generation)
		return m, nil
	}
	m.cancelFetch = nil

	if msg.Err != nil {
		attrs := []any{"generation", msg.Generation, "error", msg.Err}
		var statusErr *history.StatusError
		if errors.As(msg.Err, &statusErr) {
			attrs = append(attrs, "status", statusErr.Code)
		}
		logging.From(m.ctx).Warn("showing fetch error", attrs...)
		m.state = Reduce(m.state, FetchFailed{Generation: msg.Generation, Err: msg.Err})
		return m, nil
	}

	m.state = Reduce(m.state, FetchSucceeded{Generation: msg.Generation, Records: msg.Records})
	m.table = m.table.WithRows(m.tableRows())
	return m, nil
}

// startExport is a no-op unless the export action is enabled
func (m Model) startExport() (Model, tea.Cmd) {
	if !m.state.CanExport() {
		return m, nil
	}
	m.state = Reduce(m.state, ExportStarted{})
	m.statusMsg = ""
	m.errorMsg = ""

	records := make([]history.Record, len(m.state.Items))
	copy(records, m.state.Items)
	cmd := tea.Batch(m.exportCmd(records, m.now()), m.spin())
	return m, cmd
}

func (m Model) handleExportComplete(msg ExportCompleteMsg) (Model, tea.Cmd) {
	m.state = Reduce(m.state, ExportFinished{})
	if msg.Err != nil {
		logging.From(m.ctx).Error("export failed", "error", msg.Err)
		m.errorMsg = "No se pudo exportar el historial"
		return m, nil
	}
	res := msg.Result
	if !res.Written {
		return m, nil
	}
	m.lastExport = res.Path
	m.statusMsg = fmt.Sprintf("%s %d registros en %s", icons.IconDownload, res.Rows, res.Path)
	if res.Fallback {
		m.statusMsg += " (CSV)"
	}
	return m, nil
}

func (m Model) busy() bool {
	return m.state.Loading || m.state.Exporting
}

// spin starts the spinner loop unless it is already running
func (m *Model) spin() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m Model) quit() (Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}
