// internal/ui/model.go
// Root Model struct, constructor, and Init
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/registros/internal/config"
	"github.com/nhath/registros/internal/export"
	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/journal"
	htable "github.com/nhath/registros/internal/ui/components/table"
)

// Loader fetches the activity history
type Loader interface {
	Fetch(ctx context.Context) ([]history.Record, error)
}

// Exporter writes records to a file
type Exporter interface {
	Export(ctx context.Context, records []history.Record, now time.Time) (export.Result, error)
}

// ExportLog returns the most recent journaled export
type ExportLog interface {
	Latest(ctx context.Context) (*journal.Entry, error)
}

// Model is the root Bubble Tea model
type Model struct {
	// Lifetime of the view; cancelled on quit
	ctx    context.Context
	cancel context.CancelFunc
	// Cancels the in-flight fetch, if any
	cancelFetch context.CancelFunc

	loader   Loader
	exporter Exporter
	journal  ExportLog
	config   *config.Config
	loc      *time.Location
	now      func() time.Time

	state State

	// Layout
	width, height int
	table         bbtable.Model
	spinner       spinner.Model
	spinning      bool

	// Popup state
	showHelpPopup bool
	detail        *history.Record

	// Status
	statusMsg  string
	errorMsg   string
	lastExport string
}

// Option customizes a Model
type Option func(*Model)

// WithExportLog shows the last journaled export in the status bar
func WithExportLog(l ExportLog) Option {
	return func(m *Model) { m.journal = l }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithLocation sets the zone used for absolute dates
func WithLocation(loc *time.Location) Option {
	return func(m *Model) { m.loc = loc }
}

// NewModel creates the history view. ctx bounds every fetch and export the
// view starts.
func NewModel(ctx context.Context, cfg *config.Config, loader Loader, exporter Exporter, opts ...Option) Model {
	InitStyles(cfg.Theme)
	htable.Init(cfg.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	ctx, cancel := context.WithCancel(ctx)
	m := Model{
		ctx:      ctx,
		cancel:   cancel,
		loader:   loader,
		exporter: exporter,
		config:   cfg,
		loc:      time.Local,
		now:      time.Now,
		table:    htable.ForHistory(0, 0),
		spinner:  sp,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the first fetch and the relative-time clock
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return RefreshMsg{} },
		m.lastExportCmd(),
		clockCmd(),
	)
}

// State returns the current view state
func (m Model) State() State {
	return m.state
}
