package export

import (
	"bufio"
	"io"
	"strings"
)

// CSVWriter writes rows as comma-separated values: unquoted header, every
// data field double-quoted with embedded quotes doubled, CRLF line ends
type CSVWriter struct{}

// Name implements Writer
func (CSVWriter) Name() string { return "csv" }

// Extension implements Writer
func (CSVWriter) Extension() string { return ".csv" }

// Write implements Writer
func (CSVWriter) Write(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(Columns, ",")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := bw.WriteString("\r\n"); err != nil {
			return err
		}
		fields := row.Strings()
		for i, f := range fields {
			fields[i] = quoteField(f)
		}
		if _, err := bw.WriteString(strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
