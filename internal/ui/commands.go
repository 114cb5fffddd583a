package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/registros/internal/history"
)

// clockInterval is how often relative timestamps are recomputed
const clockInterval = time.Minute

// fetchCmd runs one fetch; cancel is released when it returns
func (m Model) fetchCmd(ctx context.Context, cancel context.CancelFunc, gen uint64) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		defer cancel()
		records, err := loader.Fetch(ctx)
		return HistoryLoadedMsg{Generation: gen, Records: records, Err: err}
	}
}

// exportCmd exports a snapshot of the current records
func (m Model) exportCmd(records []history.Record, now time.Time) tea.Cmd {
	ctx := m.ctx
	exporter := m.exporter
	return func() tea.Msg {
		res, err := exporter.Export(ctx, records, now)
		return ExportCompleteMsg{Result: res, Err: err}
	}
}

// lastExportCmd loads the latest journal entry
func (m Model) lastExportCmd() tea.Cmd {
	if m.journal == nil {
		return nil
	}
	ctx := m.ctx
	log := m.journal
	return func() tea.Msg {
		entry, err := log.Latest(ctx)
		return LastExportMsg{Entry: entry, Err: err}
	}
}

func clockCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
