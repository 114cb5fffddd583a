package ui

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/ui/icons"
)

var baseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr(s string) *string { return &s }

func record(id, user string, query, kind *string, lat, lng float64, at time.Time) history.Record {
	return history.Record{
		ID:        history.RecordID(id),
		Username:  user,
		Query:     query,
		Kind:      kind,
		Lat:       history.Coord(lat),
		Lng:       history.Coord(lng),
		CreatedAt: history.Timestamp(at),
	}
}

func TestNewRowViewLandmark(t *testing.T) {
	r := record("1", "ana", ptr("Alhambra"), ptr("unesco"), 37.17, -3.59, baseTime.Add(-2*time.Hour))
	v := NewRowView(r, baseTime, time.UTC)

	gt.Equal(t, v.Icon, icons.IconLandmark)
	gt.True(t, v.Landmark)
	gt.Equal(t, v.Primary, "Alhambra")
	gt.Equal(t, v.Actor, "ana buscó Alhambra")
	gt.Equal(t, v.Secondary, " · unesco")
	gt.Equal(t, v.When, "hace 2 h")
	gt.Equal(t, v.Line(), "ana buscó Alhambra · unesco")
}

func TestNewRowViewCoordinateFallback(t *testing.T) {
	r := record("2", "luis", nil, nil, 40.41678, -3.70379, baseTime.Add(-30*time.Second))
	v := NewRowView(r, baseTime, time.UTC)

	gt.Equal(t, v.Icon, icons.IconPin)
	gt.False(t, v.Landmark)
	gt.Equal(t, v.Primary, "(40.4168, -3.7038)")
	gt.Equal(t, v.Actor, "luis buscó (40.4168, -3.7038)")
	gt.Equal(t, v.Secondary, "")
	gt.Equal(t, v.When, "hace unos segundos")
}

func TestNewRowViewEmptyQueryUsesCoordinates(t *testing.T) {
	r := record("3", "eva", ptr(""), ptr("museo"), 0, 0, baseTime.Add(-3*24*time.Hour))
	v := NewRowView(r, baseTime, time.UTC)

	gt.Equal(t, v.Icon, icons.IconPin)
	gt.Equal(t, v.Primary, "(0.0000, 0.0000)")
	gt.Equal(t, v.Secondary, " · museo")
	gt.Equal(t, v.When, "hace 3 días")
}

func TestNewRowViewOldRecordIsAbsolute(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	r := record("4", "ana", ptr("Toledo"), nil, 0, 0, at)
	v := NewRowView(r, baseTime, time.UTC)

	gt.Equal(t, v.When, "15 ene 2024, 10:30")
}
