//go:build !noxlsx

package export

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"
)

// XLSXWriter writes rows into a single-sheet workbook
type XLSXWriter struct {
	// Disabled makes the writer report ErrUnavailable
	Disabled bool
}

// Name implements Writer
func (XLSXWriter) Name() string { return "xlsx" }

// Extension implements Writer
func (XLSXWriter) Extension() string { return ".xlsx" }

// Write implements Writer
func (x XLSXWriter) Write(w io.Writer, rows []Row) error {
	if x.Disabled {
		return ErrUnavailable
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return goerr.Wrap(err, "failed to name sheet")
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return goerr.Wrap(err, "failed to open sheet writer")
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return goerr.Wrap(err, "failed to write header")
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return goerr.Wrap(err, "invalid cell", goerr.V("row", i+2))
		}
		if err := sw.SetRow(cell, row.Values()); err != nil {
			return goerr.Wrap(err, "failed to write row", goerr.V("row", i+2))
		}
	}
	if err := sw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to flush sheet")
	}

	if _, err := f.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write workbook")
	}
	return nil
}
