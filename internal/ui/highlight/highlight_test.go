package highlight_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/nhath/registros/internal/ui/highlight"
)

func TestJSONKeepsContent(t *testing.T) {
	out := highlight.JSON(`{"username": "ana", "lat": 40.4168}`)
	gt.S(t, out).Contains("username")
	gt.S(t, out).Contains("40.4168")
}

func TestJSONAddsColor(t *testing.T) {
	src := `{"id": 1}`
	out := highlight.JSON(src)
	gt.S(t, out).Contains("\x1b[")
}
