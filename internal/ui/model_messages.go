// internal/ui/model_messages.go
// Message types for the Bubble Tea Update cycle
package ui

import (
	"time"

	"github.com/nhath/registros/internal/export"
	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/journal"
)

// RefreshMsg asks the view to fetch the history again
type RefreshMsg struct{}

// HistoryLoadedMsg is sent when fetch number Generation completes
type HistoryLoadedMsg struct {
	Generation uint64
	Records    []history.Record
	Err        error
}

// ExportCompleteMsg is sent when an export finishes
type ExportCompleteMsg struct {
	Result export.Result
	Err    error
}

// LastExportMsg carries the most recent journaled export, if any
type LastExportMsg struct {
	Entry *journal.Entry
	Err   error
}

// ClockMsg re-renders relative timestamps
type ClockMsg time.Time
