package ui

import "github.com/nhath/registros/internal/history"

// Body selects what the main area shows
type Body int

const (
	BodyLoading Body = iota
	BodyError
	BodyEmpty
	BodyList
)

// State is the view state of the history screen. It only changes through
// Reduce so every transition can be tested without a running program.
type State struct {
	Loading    bool
	Err        string
	Items      []history.Record
	Generation uint64 // generation of the fetch whose result is awaited
	Exporting  bool
}

// Event is an input to Reduce
type Event interface {
	event()
}

// FetchStarted marks the beginning of fetch number Generation
type FetchStarted struct {
	Generation uint64
}

// FetchSucceeded carries the records of fetch Generation
type FetchSucceeded struct {
	Generation uint64
	Records    []history.Record
}

// FetchFailed reports the failure of fetch Generation
type FetchFailed struct {
	Generation uint64
	Err        error
}

// ExportStarted marks the export as busy
type ExportStarted struct{}

// ExportFinished clears the export busy flag
type ExportFinished struct{}

func (FetchStarted) event()   {}
func (FetchSucceeded) event() {}
func (FetchFailed) event()    {}
func (ExportStarted) event()  {}
func (ExportFinished) event() {}

// Reduce applies e to s. Results of any fetch other than the latest started
// one are dropped.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case FetchStarted:
		s.Generation = e.Generation
		s.Loading = true
		s.Err = ""
	case FetchSucceeded:
		if e.Generation != s.Generation {
			return s
		}
		s.Loading = false
		s.Err = ""
		s.Items = e.Records
		if s.Items == nil {
			s.Items = []history.Record{}
		}
	case FetchFailed:
		if e.Generation != s.Generation {
			return s
		}
		// Items are kept: a transient failure does not blank the list
		s.Loading = false
		s.Err = history.UserMessage
	case ExportStarted:
		s.Exporting = true
	case ExportFinished:
		s.Exporting = false
	}
	return s
}

// Body returns what the main area renders, first match wins
func (s State) Body() Body {
	switch {
	case s.Loading:
		return BodyLoading
	case s.Err != "" && len(s.Items) == 0:
		return BodyError
	case len(s.Items) == 0:
		return BodyEmpty
	default:
		return BodyList
	}
}

// CanExport reports whether the export action is enabled
func (s State) CanExport() bool {
	return !s.Loading && !s.Exporting && len(s.Items) > 0
}
