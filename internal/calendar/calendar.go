// Package calendar provides the date value type and the calendar math
// used by snapshot naming and retention planning. All operations work on
// local calendar dates only; there is no time-of-day component.
package calendar

import (
	"fmt"
	"time"
)

// keyLayout is the canonical 8-digit encoding of a Date.
const keyLayout = "20060102"

// Date is a plain calendar date (year, month, day).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// FromTime truncates t to its local calendar date.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time converts d back to a time.Time at local midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Key returns the canonical YYYYMMDD encoding of d.
func (d Date) Key() string {
	return d.Time().Format(keyLayout)
}

// ParseError reports a string that does not decode to a valid calendar date.
type ParseError struct {
	Key string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date key %q", e.Key)
}

// ParseKey decodes an 8-digit YYYYMMDD key. Malformed input yields a
// *ParseError; callers treat that as "not a managed snapshot".
func ParseKey(key string) (Date, error) {
	if len(key) != len(keyLayout) {
		return Date{}, &ParseError{Key: key}
	}
	t, err := time.ParseInLocation(keyLayout, key, time.Local)
	if err != nil {
		return Date{}, &ParseError{Key: key}
	}
	return FromTime(t), nil
}

// AddDays returns d shifted by n calendar days. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return FromTime(time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.Local))
}

// EndOfYear returns December 31 of the given year.
func EndOfYear(year int) Date {
	return Date{Year: year, Month: time.December, Day: 31}
}

// NextOrSameSunday returns d when d is a Sunday, otherwise the first
// Sunday after d. Weekly retention buckets anchor on it.
func (d Date) NextOrSameSunday() Date {
	t := d.Time()
	offset := (int(time.Sunday) - int(t.Weekday()) + 7) % 7
	return d.AddDays(offset)
}

// SameMonth reports whether both dates fall in the same calendar month.
func (d Date) SameMonth(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month
}

// SameYear reports whether both dates fall in the same calendar year.
func (d Date) SameYear(o Date) bool {
	return d.Year == o.Year
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}
