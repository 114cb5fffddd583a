package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// LandmarkKind is the category tag rendered with the landmark icon
const LandmarkKind = "unesco"

// Record represents a single entry of the remote activity history
type Record struct {
	ID        RecordID  `json:"id"`
	Username  string    `json:"username"`
	Query     *string   `json:"texto_busqueda,omitempty"`
	Kind      *string   `json:"tipo,omitempty"`
	Lat       Coord     `json:"lat"`
	Lng       Coord     `json:"lng"`
	CreatedAt Timestamp `json:"creado_en"`
}

// UnmarshalJSON decodes a record and rejects one without a creation time
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if time.Time(p.CreatedAt).IsZero() {
		return goerr.New("record has no creation time", goerr.V("id", string(p.ID)))
	}
	*r = Record(p)
	return nil
}

// Text returns the search text, "" when absent
func (r Record) Text() string {
	if r.Query == nil {
		return ""
	}
	return *r.Query
}

// HasKind reports whether the record carries a category tag
func (r Record) HasKind() bool {
	return r.Kind != nil && *r.Kind != ""
}

// Type returns the category tag, "" when absent
func (r Record) Type() string {
	if r.Kind == nil {
		return ""
	}
	return *r.Kind
}

// IsLandmark reports whether the record belongs to the landmark category
func (r Record) IsLandmark() bool {
	return r.Type() == LandmarkKind
}

// Coordinates formats the position as "(lat, lng)" with 4 decimals
func (r Record) Coordinates() string {
	return fmt.Sprintf("(%.4f, %.4f)", float64(r.Lat), float64(r.Lng))
}

// Label is the primary text of a record: the search text when present,
// otherwise its coordinates
func (r Record) Label() string {
	if t := r.Text(); t != "" {
		return t
	}
	return r.Coordinates()
}

// Time returns the creation instant
func (r Record) Time() time.Time {
	return time.Time(r.CreatedAt)
}

// RecordID is an opaque identifier that may arrive as a JSON number or string
type RecordID string

// UnmarshalJSON accepts numbers and strings
func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return goerr.Wrap(err, "invalid record id")
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return goerr.Wrap(err, "invalid record id", goerr.V("raw", string(data)))
	}
	*id = RecordID(n.String())
	return nil
}

// MarshalJSON emits numeric ids as numbers
func (id RecordID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(id), 64); err == nil && json.Valid([]byte(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Coord is a coordinate leniently decoded from a number, a numeric string or
// null; anything unparseable becomes 0
type Coord float64

// UnmarshalJSON implements json.Unmarshaler
func (c *Coord) UnmarshalJSON(data []byte) error {
	*c = 0
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	*c = Coord(f)
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is an ISO-8601 instant; zone-less values are read as UTC
type Timestamp time.Time

// ParseTimestamp parses the formats the API is known to emit
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goerr.New("unparseable timestamp", goerr.V("value", s))
}

// UnmarshalJSON implements json.Unmarshaler
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return goerr.Wrap(err, "timestamp must be a string", goerr.V("raw", string(data)))
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = Timestamp(t)
	return nil
}

// MarshalJSON implements json.Marshaler
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(ts).Format(time.RFC3339Nano))
}
