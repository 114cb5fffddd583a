package export

import (
	"strconv"
	"time"

	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/timefmt"
)

// Columns is the fixed column order of every export
var Columns = []string{"ID", "Usuario", "Texto", "Tipo", "Longitud", "Latitud", "FechaISO", "FechaLocal"}

// Row is one flattened record
type Row struct {
	ID         string
	Usuario    string
	Texto      string
	Tipo       string
	Longitud   float64
	Latitud    float64
	FechaISO   string
	FechaLocal string
}

// RowsFrom projects records into rows; FechaLocal is rendered in loc
func RowsFrom(records []history.Record, loc *time.Location) []Row {
	if loc == nil {
		loc = time.Local
	}
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		created := r.Time()
		rows = append(rows, Row{
			ID:         string(r.ID),
			Usuario:    r.Username,
			Texto:      r.Text(),
			Tipo:       r.Type(),
			Longitud:   float64(r.Lng),
			Latitud:    float64(r.Lat),
			FechaISO:   timefmt.ISO(created),
			FechaLocal: timefmt.Local(created.In(loc)),
		})
	}
	return rows
}

// Strings returns the row's fields in Columns order
func (r Row) Strings() []string {
	return []string{
		r.ID,
		r.Usuario,
		r.Texto,
		r.Tipo,
		formatNumber(r.Longitud),
		formatNumber(r.Latitud),
		r.FechaISO,
		r.FechaLocal,
	}
}

// Values returns the row's fields in Columns order with numbers kept numeric.
// Integer ids become number cells.
func (r Row) Values() []interface{} {
	var id interface{} = r.ID
	if n, err := strconv.ParseInt(r.ID, 10, 64); err == nil {
		id = n
	}
	return []interface{}{
		id,
		r.Usuario,
		r.Texto,
		r.Tipo,
		r.Longitud,
		r.Latitud,
		r.FechaISO,
		r.FechaLocal,
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
