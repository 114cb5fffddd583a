// Package export turns fetched history records into downloadable files.
//
// The preferred format is a spreadsheet workbook. When the spreadsheet writer
// reports ErrUnavailable the same rows are written as CSV instead; the
// fallback is logged, never surfaced as a failure.
package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/logging"
	"github.com/nhath/registros/internal/timefmt"
)

// SheetName is the single sheet of an exported workbook
const SheetName = "Historial"

// FilePrefix starts every export file name
const FilePrefix = "historial_"

// ErrUnavailable is reported by a writer that cannot run in this build or
// configuration
var ErrUnavailable = errors.New("export writer unavailable")

// Writer serializes rows into one file format
type Writer interface {
	Name() string
	Extension() string
	Write(w io.Writer, rows []Row) error
}

// Recorder is notified of every file written
type Recorder interface {
	Record(ctx context.Context, res Result) error
}

// Result describes the outcome of an export
type Result struct {
	Written  bool
	Path     string
	Format   string
	Rows     int
	Fallback bool
	At       time.Time
}

// Format selects the export strategy
type Format string

const (
	FormatAuto Format = "auto"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatXLSX, FormatCSV:
		return Format(s), nil
	}
	return "", goerr.New("unknown export format", goerr.V("format", s))
}

// Service writes exports to a directory
type Service struct {
	dir      string
	loc      *time.Location
	primary  Writer
	fallback Writer
	recorder Recorder
}

// Option customizes a Service
type Option func(*Service)

// WithLocation sets the zone used for the FechaLocal column
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithRecorder registers a recorder for written files
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithWriters replaces the primary and fallback writers
func WithWriters(primary, fallback Writer) Option {
	return func(s *Service) {
		s.primary = primary
		s.fallback = fallback
	}
}

// WithFormat restricts the service to one format; FormatAuto keeps the
// spreadsheet-then-CSV strategy
func WithFormat(f Format) Option {
	return func(s *Service) {
		switch f {
		case FormatCSV:
			s.primary = CSVWriter{}
			s.fallback = nil
		case FormatXLSX:
			s.fallback = nil
		}
	}
}

// NewService creates an exporter writing into dir
func NewService(dir string, opts ...Option) *Service {
	s := &Service{
		dir:      dir,
		loc:      time.Local,
		primary:  XLSXWriter{},
		fallback: CSVWriter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FileName returns the export file name for the given writer and instant
func FileName(w Writer, now time.Time) string {
	return FilePrefix + timefmt.FileDate(now) + w.Extension()
}

// Export writes records to a file. An empty record list is a no-op that
// returns a Result with Written unset.
func (s *Service) Export(ctx context.Context, records []history.Record, now time.Time) (Result, error) {
	if len(records) == 0 {
		return Result{}, nil
	}
	logger := logging.From(ctx)
	rows := RowsFrom(records, s.loc)

	writer := s.primary
	buf := &bytes.Buffer{}
	err := writer.Write(buf, rows)
	fallback := false
	if errors.Is(err, ErrUnavailable) && s.fallback != nil {
		logger.Warn("spreadsheet writer unavailable, exporting CSV", "writer", writer.Name())
		writer = s.fallback
		buf.Reset()
		err = writer.Write(buf, rows)
		fallback = true
	}
	if err != nil {
		return Result{}, goerr.Wrap(err, "failed to serialize export", goerr.V("format", writer.Name()))
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Result{}, goerr.Wrap(err, "failed to create export dir", goerr.V("dir", s.dir))
	}
	path := filepath.Join(s.dir, FileName(writer, now))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return Result{}, goerr.Wrap(err, "failed to write export", goerr.V("path", path))
	}

	res := Result{
		Written:  true,
		Path:     path,
		Format:   writer.Name(),
		Rows:     len(rows),
		Fallback: fallback,
		At:       now,
	}
	logger.Info("export written", "path", path, "format", res.Format, "rows", res.Rows)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, res); err != nil {
			// The file exists; a journal failure must not fail the export
			logger.Warn("failed to journal export", "error", err)
		}
	}
	return res, nil
}
