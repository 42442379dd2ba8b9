package validation

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// maxEpochMillis bounds numeric dates to the ECMAScript Date range.
const maxEpochMillis = 8.64e15

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp accepts a date-time string in one of the supported layouts or a
// number of milliseconds since the Unix epoch. Unparseable input is kept
// and rejected by the "timestamp" rule rather than failing the decode.
type Timestamp struct {
	time.Time
	raw   string
	valid bool
}

// NewTimestamp wraps t as a valid Timestamp
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, raw: t.Format(time.RFC3339Nano), valid: true}
}

// Valid reports whether the decoded input was a usable point in time
func (t Timestamp) Valid() bool {
	return t.valid
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.raw = string(data)
	t.valid = false

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Time, t.valid = parseTimestamp(s)
		return nil
	}

	var ms float64
	if err := json.Unmarshal(data, &ms); err == nil {
		if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
			return nil
		}
		t.Time = time.UnixMilli(int64(ms)).UTC()
		t.valid = storable(t.Time)
	}

	return nil
}

// storable reports whether t has a four-digit year, the range both stores
// can persist and order correctly.
func storable(t time.Time) bool {
	year := t.Year()
	return year >= 0 && year <= 9999
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			parsed = parsed.UTC()
			return parsed, storable(parsed)
		}
	}
	return time.Time{}, false
}

// timestampValue exposes a valid Timestamp to the validator as a time.Time
// and an invalid one as its raw input.
func timestampValue(v reflect.Value) any {
	ts, ok := v.Interface().(Timestamp)
	if !ok {
		return nil
	}
	if ts.valid {
		return ts.Time
	}
	return ts.raw
}

func isTimestamp(fl validator.FieldLevel) bool {
	_, ok := fl.Field().Interface().(time.Time)
	return ok
}
