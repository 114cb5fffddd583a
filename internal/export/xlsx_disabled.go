//go:build noxlsx

package export

import "io"

// XLSXWriter is compiled out with the noxlsx tag and always reports ErrUnavailable
type XLSXWriter struct {
	Disabled bool
}

// Name implements Writer
func (XLSXWriter) Name() string { return "xlsx" }

// Extension implements Writer
func (XLSXWriter) Extension() string { return ".xlsx" }

// Write implements Writer
func (XLSXWriter) Write(io.Writer, []Row) error {
	return ErrUnavailable
}
