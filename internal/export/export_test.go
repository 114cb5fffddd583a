package export_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/xuri/excelize/v2"

	"github.com/nhath/registros/internal/export"
	"github.com/nhath/registros/internal/history"
)

var exportTime = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func sampleRecords(t *testing.T) []history.Record {
	t.Helper()
	var records []history.Record
	gt.NoError(t, json.Unmarshal([]byte(`[
		{"id":1,"username":"ana","texto_busqueda":"He said \"hi\"","tipo":"unesco","lat":1.1,"lng":2.5,"creado_en":"2024-01-01T00:00:00.000Z"},
		{"id":2,"username":"luis","lat":40.41678,"lng":-3.70379,"creado_en":"2024-01-02T10:00:00Z"}
	]`), &records))
	return records
}

type recorder struct {
	results []export.Result
	err     error
}

func (r *recorder) Record(_ context.Context, res export.Result) error {
	r.results = append(r.results, res)
	return r.err
}

type unavailableWriter struct{}

func (unavailableWriter) Name() string      { return "xlsx" }
func (unavailableWriter) Extension() string { return ".xlsx" }
func (unavailableWriter) Write(io.Writer, []export.Row) error {
	return export.ErrUnavailable
}

type brokenWriter struct{}

func (brokenWriter) Name() string      { return "broken" }
func (brokenWriter) Extension() string { return ".bin" }
func (brokenWriter) Write(io.Writer, []export.Row) error {
	return errors.New("disk on fire")
}

func TestRowsFrom(t *testing.T) {
	rows := export.RowsFrom(sampleRecords(t), time.UTC)
	gt.A(t, rows).Length(2)

	gt.Equal(t, rows[0], export.Row{
		ID:         "1",
		Usuario:    "ana",
		Texto:      `He said "hi"`,
		Tipo:       "unesco",
		Longitud:   2.5,
		Latitud:    1.1,
		FechaISO:   "2024-01-01T00:00:00.000Z",
		FechaLocal: "1/1/2024, 0:00:00",
	})
	gt.Equal(t, rows[1].Texto, "")
	gt.Equal(t, rows[1].Tipo, "")
	gt.Equal(t, rows[1].FechaLocal, "2/1/2024, 10:00:00")
}

func TestRowValuesKeepNumericIDs(t *testing.T) {
	rows := export.RowsFrom(sampleRecords(t), time.UTC)
	values := rows[0].Values()
	gt.A(t, values).Length(len(export.Columns))
	gt.Equal(t, values[0], interface{}(int64(1)))
	gt.Equal(t, values[4], interface{}(2.5))

	values = export.Row{ID: "a-1"}.Values()
	gt.Equal(t, values[0], interface{}("a-1"))
}

func TestCSVWriter(t *testing.T) {
	rows := export.RowsFrom(sampleRecords(t), time.UTC)
	buf := &bytes.Buffer{}
	gt.NoError(t, export.CSVWriter{}.Write(buf, rows[:1]))

	lines := strings.Split(buf.String(), "\r\n")
	gt.A(t, lines).Length(2)
	gt.Equal(t, lines[0], "ID,Usuario,Texto,Tipo,Longitud,Latitud,FechaISO,FechaLocal")
	gt.Equal(t, lines[1], `"1","ana","He said ""hi""","unesco","2.5","1.1","2024-01-01T00:00:00.000Z","1/1/2024, 0:00:00"`)
}

func TestXLSXWriter(t *testing.T) {
	rows := export.RowsFrom(sampleRecords(t), time.UTC)
	buf := &bytes.Buffer{}
	gt.NoError(t, export.XLSXWriter{}.Write(buf, rows))

	f, err := excelize.OpenReader(buf)
	gt.NoError(t, err)
	defer f.Close()

	gt.Equal(t, f.GetSheetList(), []string{export.SheetName})
	got, err := f.GetRows(export.SheetName)
	gt.NoError(t, err)
	gt.A(t, got).Length(3)
	gt.Equal(t, got[0], export.Columns)
	gt.Equal(t, got[1][1], "ana")
	gt.Equal(t, got[2][0], "2")

	ct, err := f.GetCellType(export.SheetName, "A2")
	gt.NoError(t, err)
	gt.True(t, ct == excelize.CellTypeNumber || ct == excelize.CellTypeUnset)
}

func TestXLSXWriterDisabled(t *testing.T) {
	err := export.XLSXWriter{Disabled: true}.Write(io.Discard, nil)
	gt.True(t, errors.Is(err, export.ErrUnavailable))
}

func TestExportEmptyIsNoop(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	svc := export.NewService(dir, export.WithRecorder(rec))

	res, err := svc.Export(context.Background(), nil, exportTime)
	gt.NoError(t, err)
	gt.False(t, res.Written)

	entries, err := os.ReadDir(dir)
	gt.NoError(t, err)
	gt.A(t, entries).Length(0)
	gt.A(t, rec.results).Length(0)
}

func TestExportPrefersSpreadsheet(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	svc := export.NewService(dir, export.WithLocation(time.UTC), export.WithRecorder(rec))

	res, err := svc.Export(context.Background(), sampleRecords(t), exportTime)
	gt.NoError(t, err)
	gt.True(t, res.Written)
	gt.False(t, res.Fallback)
	gt.Equal(t, res.Format, "xlsx")
	gt.Equal(t, res.Rows, 2)
	gt.Equal(t, res.Path, filepath.Join(dir, "historial_2024-06-01.xlsx"))

	_, err = os.Stat(res.Path)
	gt.NoError(t, err)
	gt.A(t, rec.results).Length(1)
}

func TestExportFallsBackToCSV(t *testing.T) {
	dir := t.TempDir()
	svc := export.NewService(dir,
		export.WithLocation(time.UTC),
		export.WithWriters(unavailableWriter{}, export.CSVWriter{}),
	)

	res, err := svc.Export(context.Background(), sampleRecords(t), exportTime)
	gt.NoError(t, err)
	gt.True(t, res.Fallback)
	gt.Equal(t, res.Format, "csv")
	gt.Equal(t, filepath.Base(res.Path), "historial_2024-06-01.csv")

	raw, err := os.ReadFile(res.Path)
	gt.NoError(t, err)
	gt.True(t, strings.HasPrefix(string(raw), "ID,Usuario,Texto,Tipo,Longitud,Latitud,FechaISO,FechaLocal\r\n"))
	gt.S(t, string(raw)).Contains(`"He said ""hi"""`)
}

func TestExportDisabledSpreadsheetFallsBack(t *testing.T) {
	svc := export.NewService(t.TempDir(), export.WithWriters(export.XLSXWriter{Disabled: true}, export.CSVWriter{}))

	res, err := svc.Export(context.Background(), sampleRecords(t), exportTime)
	gt.NoError(t, err)
	gt.Equal(t, res.Format, "csv")
}

func TestExportOtherErrorsAreReturned(t *testing.T) {
	dir := t.TempDir()
	svc := export.NewService(dir, export.WithWriters(brokenWriter{}, export.CSVWriter{}))

	_, err := svc.Export(context.Background(), sampleRecords(t), exportTime)
	gt.Error(t, err)

	entries, err := os.ReadDir(dir)
	gt.NoError(t, err)
	gt.A(t, entries).Length(0)
}

func TestExportUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	gt.NoError(t, os.WriteFile(file, nil, 0644))

	svc := export.NewService(file, export.WithFormat(export.FormatCSV))
	_, err := svc.Export(context.Background(), sampleRecords(t), exportTime)
	gt.Error(t, err)
}

func TestExportJournalFailureIsNotFatal(t *testing.T) {
	rec := &recorder{err: errors.New("db locked")}
	svc := export.NewService(t.TempDir(), export.WithFormat(export.FormatCSV), export.WithRecorder(rec))

	res, err := svc.Export(context.Background(), sampleRecords(t), exportTime)
	gt.NoError(t, err)
	gt.True(t, res.Written)
}

func TestParseFormat(t *testing.T) {
	f, err := export.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, f, export.FormatAuto)

	f, err = export.ParseFormat("csv")
	gt.NoError(t, err)
	gt.Equal(t, f, export.FormatCSV)

	_, err = export.ParseFormat("pdf")
	gt.Error(t, err)
}
