package table

import (
	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/registros/internal/config"
)

// Column keys of the history table. ColIndex is not rendered; it maps a
// highlighted row back to its record.
const (
	ColIcon     = "icon"
	ColActivity = "actividad"
	ColWhen     = "cuando"
	ColIndex    = "_idx"
)

const (
	iconWidth = 4
	whenWidth = 22
)

// Nord defaults, replaced by Init
var (
	colorForeground = lipgloss.Color("#D8DEE9")
	colorHeader     = lipgloss.Color("#8FBCBB")
	colorHighlight  = lipgloss.Color("#A3BE8C")
	colorFaint      = lipgloss.Color("#4C566A")
	colorLandmark   = lipgloss.Color("#EBCB8B")
	colorBorder     = lipgloss.Color("#4C566A")
)

// Init applies the theme colors to tables built afterwards
func Init(theme config.Theme) {
	colorForeground = lipgloss.Color(theme.TextPrimary)
	colorHeader = lipgloss.Color(theme.Highlight)
	colorHighlight = lipgloss.Color(theme.Success)
	colorFaint = lipgloss.Color(theme.TextFaint)
	colorLandmark = lipgloss.Color(theme.Landmark)
	colorBorder = lipgloss.Color(theme.BorderColor)
}

// Entry is one pre-rendered history row
type Entry struct {
	Index    int
	Icon     string
	Activity string
	When     string
	Landmark bool
}

// New creates a themed bubble-table (no background)
func New(cols []bbtable.Column) bbtable.Model {
	return bbtable.New(cols).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(colorForeground).
			BorderForeground(colorBorder)).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(colorHeader).
			Bold(true)).
		HighlightStyle(lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)).
		Focused(true).
		BorderRounded()
}

// Columns returns the history table layout
func Columns() []bbtable.Column {
	return []bbtable.Column{
		bbtable.NewColumn(ColIcon, "", iconWidth),
		bbtable.NewFlexColumn(ColActivity, "Actividad", 1).WithFiltered(true),
		bbtable.NewColumn(ColWhen, "Cuándo", whenWidth).WithFiltered(true),
	}
}

// ForHistory builds an empty history table sized to width
func ForHistory(width, pageSize int) bbtable.Model {
	m := New(Columns()).
		Filtered(true).
		WithStaticFooter("/ filtrar  ↑/↓ mover  enter detalle")
	if width > 0 {
		m = m.WithTargetWidth(width)
	}
	if pageSize > 0 {
		m = m.WithPageSize(pageSize)
	}
	return m
}

// Rows converts entries into table rows
func Rows(entries []Entry) []bbtable.Row {
	rows := make([]bbtable.Row, 0, len(entries))
	for _, e := range entries {
		activity := bbtable.NewStyledCell(e.Activity, lipgloss.NewStyle().Foreground(colorForeground))
		if e.Landmark {
			activity = bbtable.NewStyledCell(e.Activity, lipgloss.NewStyle().Foreground(colorLandmark))
		}
		rows = append(rows, bbtable.NewRow(bbtable.RowData{
			ColIcon:     e.Icon,
			ColActivity: activity,
			ColWhen:     bbtable.NewStyledCell(e.When, lipgloss.NewStyle().Foreground(colorFaint).Italic(true)),
			ColIndex:    e.Index,
		}))
	}
	return rows
}

// HighlightedIndex returns the entry index of the highlighted row
func HighlightedIndex(m bbtable.Model) (int, bool) {
	idx, ok := m.HighlightedRow().Data[ColIndex].(int)
	return idx, ok
}
