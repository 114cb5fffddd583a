package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/nhath/registros/internal/logging"
)

func TestNewFiltersByLevel(t *testing.T) {
	testCases := []struct {
		level       string
		expectDebug bool
		expectWarn  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"WARN", false, true},
		{"error", false, false},
		{"nonsense", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.New(tc.level, buf)

			logger.Debug("debug message")
			logger.Warn("warn message")

			if tc.expectDebug {
				gt.S(t, buf.String()).Contains("debug message")
			} else {
				gt.S(t, buf.String()).NotContains("debug message")
			}
			if tc.expectWarn {
				gt.S(t, buf.String()).Contains("warn message")
			} else {
				gt.S(t, buf.String()).NotContains("warn message")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	gt.Equal(t, logging.ParseLevel(""), slog.LevelInfo)
	gt.Equal(t, logging.ParseLevel("warning"), slog.LevelWarn)
	gt.Equal(t, logging.ParseLevel("Debug"), slog.LevelDebug)
}

func TestWithAndFrom(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("debug", buf)
	ctx := logging.With(context.Background(), logger)

	gt.Equal(t, logging.From(ctx), logger)
	logging.From(ctx).Info("context message")
	gt.S(t, buf.String()).Contains("context message")

	gt.V(t, logging.From(context.Background())).NotNil()
}

func TestGoerrValuesAreLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("info", buf)

	err := goerr.New("export failed", goerr.V("path", "/tmp/historial.xlsx"))
	logger.Error("oops", "error", err)
	gt.S(t, buf.String()).Contains("export failed")
}
