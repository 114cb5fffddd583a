package ui

import (
	"time"

	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/timefmt"
	htable "github.com/nhath/registros/internal/ui/components/table"
	"github.com/nhath/registros/internal/ui/icons"
)

// RowView is the rendered form of one record
type RowView struct {
	Icon      string
	Actor     string // "<username> buscó <primary>"
	Primary   string
	Secondary string // " · <tipo>" or empty
	When      string
	Landmark  bool
}

// NewRowView derives the display fields of r relative to now
func NewRowView(r history.Record, now time.Time, loc *time.Location) RowView {
	if loc == nil {
		loc = time.Local
	}
	v := RowView{
		Icon:     icons.ForKind(r.IsLandmark()),
		Primary:  r.Label(),
		When:     timefmt.TimeAgo(r.Time().In(loc), now),
		Landmark: r.IsLandmark(),
	}
	v.Actor = r.Username + " buscó " + v.Primary
	if r.HasKind() {
		v.Secondary = icons.IconSeparator + r.Type()
	}
	return v
}

// Line is the single-line rendering used outside the table
func (v RowView) Line() string {
	return v.Actor + v.Secondary
}

// tableRows renders the held records in server order
func (m Model) tableRows() []bbtable.Row {
	now := m.now()
	entries := make([]htable.Entry, 0, len(m.state.Items))
	for i, r := range m.state.Items {
		v := NewRowView(r, now, m.loc)
		entries = append(entries, htable.Entry{
			Index:    i,
			Icon:     v.Icon,
			Activity: v.Line(),
			When:     v.When,
			Landmark: v.Landmark,
		})
	}
	return htable.Rows(entries)
}

// highlightedRecord returns the record under the table cursor
func (m Model) highlightedRecord() (*history.Record, bool) {
	if len(m.state.Items) == 0 {
		return nil, false
	}
	idx, ok := htable.HighlightedIndex(m.table)
	if !ok || idx < 0 || idx >= len(m.state.Items) {
		return nil, false
	}
	r := m.state.Items[idx]
	return &r, true
}
