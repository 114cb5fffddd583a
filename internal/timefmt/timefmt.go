// Package timefmt renders instants the way the activity view shows them:
// relative phrases for the last week, es-ES dates beyond it.
package timefmt

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"
)

// Locale used for every absolute date
const Locale = monday.LocaleEsES

// RelativeWindow is the oldest age still rendered as a relative phrase
const RelativeWindow = 7 * 24 * time.Hour

// TimeAgo describes t relative to now. Thresholds cascade by integer division:
// seconds, minutes, hours, days. An age of exactly 7 days is still relative;
// anything older is rendered as an absolute date in t's location.
func TimeAgo(t, now time.Time) string {
	s := int64(now.Sub(t) / time.Second)
	if s < 60 {
		return "hace unos segundos"
	}
	m := s / 60
	if m < 60 {
		return fmt.Sprintf("hace %d min", m)
	}
	h := m / 60
	if h < 24 {
		return fmt.Sprintf("hace %d h", h)
	}
	if s <= int64(RelativeWindow/time.Second) {
		days := h / 24
		if days > 1 {
			return fmt.Sprintf("hace %d días", days)
		}
		return fmt.Sprintf("hace %d día", days)
	}
	return Medium(t)
}

// Medium renders a medium date and short time, e.g. "15 ene 2024, 10:30"
func Medium(t time.Time) string {
	// monday abbreviates September as "sep"; es-ES medium dates use "sept"
	if t.Month() == time.September {
		return t.Format("2 sept 2006, 15:04")
	}
	return monday.Format(t, "2 Jan 2006, 15:04", Locale)
}

// Local renders the numeric es-ES form, e.g. "1/1/2024, 0:00:00"
func Local(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d, %d:%02d:%02d",
		t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
}

// ISO renders t in UTC with millisecond precision, e.g. "2024-01-01T00:00:00.000Z"
func ISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// FileDate is the UTC calendar date used in export file names
func FileDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
