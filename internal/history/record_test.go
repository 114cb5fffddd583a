package history_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/nhath/registros/internal/history"
)

func decode(t *testing.T, raw string) history.Record {
	t.Helper()
	var r history.Record
	gt.NoError(t, json.Unmarshal([]byte(raw), &r))
	return r
}

func TestRecordLabelFallsBackToCoordinates(t *testing.T) {
	r := decode(t, `{"id":7,"username":"ana","texto_busqueda":"","lat":40.41678,"lng":-3.70379,"creado_en":"2024-01-01T00:00:00Z"}`)
	gt.Equal(t, r.Label(), "(40.4168, -3.7038)")

	r = decode(t, `{"id":7,"username":"ana","lat":1,"lng":2,"creado_en":"2024-01-01T00:00:00Z"}`)
	gt.Equal(t, r.Label(), "(1.0000, 2.0000)")
}

func TestRecordOptionalFields(t *testing.T) {
	r := decode(t, `{"id":"x","username":"ana","creado_en":"2024-01-01T00:00:00Z"}`)
	gt.Equal(t, r.Text(), "")
	gt.Equal(t, r.Type(), "")
	gt.False(t, r.HasKind())
	gt.False(t, r.IsLandmark())

	r = decode(t, `{"id":"x","username":"ana","tipo":"museo","texto_busqueda":"Prado","creado_en":"2024-01-01T00:00:00Z"}`)
	gt.Equal(t, r.Text(), "Prado")
	gt.True(t, r.HasKind())
	gt.False(t, r.IsLandmark())
}

func TestCoordLenientDecoding(t *testing.T) {
	cases := map[string]float64{
		`{"lat":"12.5"}`:  12.5,
		`{"lat":null}`:    0,
		`{}`:              0,
		`{"lat":"north"}`: 0,
		`{"lat":-3.25}`:   -3.25,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			var v struct {
				Lat history.Coord `json:"lat"`
			}
			gt.NoError(t, json.Unmarshal([]byte(raw), &v))
			gt.Equal(t, float64(v.Lat), want)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	for _, s := range []string{
		"2024-01-01T10:30:00Z",
		"2024-01-01T10:30:00.000Z",
		"2024-01-01T11:30:00+01:00",
		"2024-01-01T10:30:00",
		"2024-01-01 10:30:00",
	} {
		got, err := history.ParseTimestamp(s)
		gt.NoError(t, err)
		gt.True(t, got.Equal(want))
	}

	_, err := history.ParseTimestamp("01/01/2024")
	gt.Error(t, err)
}

func TestRecordIDMarshal(t *testing.T) {
	raw, err := json.Marshal(history.RecordID("42"))
	gt.NoError(t, err)
	gt.Equal(t, string(raw), "42")

	raw, err = json.Marshal(history.RecordID("a-1"))
	gt.NoError(t, err)
	gt.Equal(t, string(raw), `"a-1"`)

	for _, id := range []string{"NaN", "Inf", "-Infinity", "0x1p3"} {
		raw, err = json.Marshal(history.RecordID(id))
		gt.NoError(t, err)
		gt.Equal(t, string(raw), `"`+id+`"`)
	}
}

func TestRecordRequiresCreationTime(t *testing.T) {
	var r history.Record
	gt.Error(t, json.Unmarshal([]byte(`{"id":1,"username":"ana"}`), &r))
	gt.Error(t, json.Unmarshal([]byte(`{"id":1,"username":"ana","creado_en":null}`), &r))

	gt.NoError(t, json.Unmarshal([]byte(`{"id":1,"username":"ana","creado_en":"2024-01-01T00:00:00Z"}`), &r))
	gt.Equal(t, r.Username, "ana")
	gt.Equal(t, r.ID, history.RecordID("1"))
}
