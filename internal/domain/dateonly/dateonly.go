// Package dateonly provides timezone-agnostic calendar dates.
//
// Reservation feeds deliver a mix of YYYY-MM-DD strings and full ISO
// datetimes; everything in the calendar compares and buckets by calendar
// day, never by instant. A Date is always the local year/month/day of its
// input, so formatting never shifts a stay across midnight the way a UTC
// conversion would.
package dateonly

import (
	"strings"
	"time"
)

// KeyLayout is the canonical day-bucket key format.
const KeyLayout = "2006-01-02"

// Date is a single calendar day. The zero value is invalid and acts as
// the sentinel for "exclude from rendering".
type Date struct {
	t time.Time
}

// New builds a Date from explicit components.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime takes the local year/month/day of t, discarding time of day
// and timezone.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return New(y, m, d)
}

// Parse accepts "YYYY-MM-DD" or an ISO datetime string; for datetimes only
// the date prefix before 'T' is used. Unparsable input yields the zero Date.
func Parse(raw string) Date {
	s := strings.TrimSpace(raw)
	if idx := strings.IndexAny(s, "T "); idx > 0 {
		s = s[:idx]
	}
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return Date{}
	}
	return FromTime(t)
}

// Today returns the current calendar day in local time.
func Today() Date {
	return FromTime(time.Now())
}

// IsZero reports whether d is the invalid sentinel.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Key renders the canonical "YYYY-MM-DD" bucket key.
func (d Date) Key() string { return d.t.Format(KeyLayout) }

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }

// DaysUntil counts whole days from d to other; negative when other is
// earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// IsToday compares calendar days, not instants.
func (d Date) IsToday() bool { return d.Equal(Today()) }

// Format renders d for display, e.g. "Mar 5, 2024".
func (d Date) Format() string { return d.t.Format("Jan 2, 2006") }

// MarshalJSON renders the day key; the zero Date marshals as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Key() + `"`), nil
}

// UnmarshalJSON accepts anything Parse does; null and unparsable input
// both yield the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*d = Date{}
		return nil
	}
	*d = Parse(s)
	return nil
}
