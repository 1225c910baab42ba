package calendar

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func TestKeyRoundTrip(t *testing.T) {
	dates := []Date{
		date(2024, time.March, 15),
		date(2024, time.February, 29), // leap day
		date(2021, time.December, 31),
		date(2024, time.January, 1),
		date(1999, time.June, 7),
	}

	for _, d := range dates {
		got, err := ParseKey(d.Key())
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", d.Key(), err)
		}
		if got != d {
			t.Errorf("round trip of %v: got %v", d, got)
		}
	}
}

func TestParseKeyRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"2024",
		"202403150",  // too long
		"2024031a",   // non-digit
		"20240230",   // Feb 30 does not exist
		"20230229",   // not a leap year
		"20241301",   // month 13
		"2024-03-15", // separators not allowed
	}

	for _, key := range bad {
		_, err := ParseKey(key)
		if err == nil {
			t.Errorf("ParseKey(%q): expected error", key)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseKey(%q): expected *ParseError, got %T", key, err)
		}
	}
}

func TestAddDaysCrossesBoundaries(t *testing.T) {
	tests := []struct {
		in   Date
		n    int
		want Date
	}{
		{date(2024, time.March, 15), -7, date(2024, time.March, 8)},
		{date(2024, time.March, 1), -1, date(2024, time.February, 29)},
		{date(2024, time.January, 1), -1, date(2023, time.December, 31)},
		{date(2024, time.February, 28), 1, date(2024, time.February, 29)},
		{date(2024, time.December, 31), 1, date(2025, time.January, 1)},
		{date(2024, time.March, 15), 0, date(2024, time.March, 15)},
	}

	for _, tt := range tests {
		if got := tt.in.AddDays(tt.n); got != tt.want {
			t.Errorf("%v.AddDays(%d) = %v, want %v", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		in   Date
		want Date
	}{
		{date(2024, time.February, 10), date(2024, time.February, 29)},
		{date(2023, time.February, 10), date(2023, time.February, 28)},
		{date(2024, time.January, 1), date(2024, time.January, 31)},
		{date(2024, time.April, 30), date(2024, time.April, 30)},
		{date(2024, time.December, 5), date(2024, time.December, 31)},
	}

	for _, tt := range tests {
		if got := tt.in.EndOfMonth(); got != tt.want {
			t.Errorf("%v.EndOfMonth() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNextOrSameSunday(t *testing.T) {
	tests := []struct {
		in   Date
		want Date
	}{
		{date(2024, time.March, 10), date(2024, time.March, 10)}, // already Sunday
		{date(2024, time.March, 8), date(2024, time.March, 10)},  // Friday
		{date(2024, time.March, 11), date(2024, time.March, 17)}, // Monday
		{date(2023, time.December, 29), date(2023, time.December, 31)},
	}

	for _, tt := range tests {
		if got := tt.in.NextOrSameSunday(); got != tt.want {
			t.Errorf("%v.NextOrSameSunday() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSameMonthSameYear(t *testing.T) {
	a := date(2024, time.March, 1)
	b := date(2024, time.March, 31)
	c := date(2023, time.March, 15)

	if !a.SameMonth(b) {
		t.Error("expected same month")
	}
	if a.SameMonth(c) {
		t.Error("different years must not share a month")
	}
	if !a.SameYear(b) || a.SameYear(c) {
		t.Error("SameYear mismatch")
	}
}

func TestBefore(t *testing.T) {
	earlier := date(2024, time.February, 29)
	later := date(2024, time.March, 1)

	if !earlier.Before(later) {
		t.Errorf("%v should be before %v", earlier, later)
	}
	if later.Before(earlier) {
		t.Errorf("%v should not be before %v", later, earlier)
	}
	if earlier.Before(earlier) {
		t.Error("a date is not before itself")
	}
}

func TestFixedClock(t *testing.T) {
	d := date(2024, time.March, 15)
	if got := Today(Fixed(d)); got != d {
		t.Errorf("Today(Fixed(%v)) = %v", d, got)
	}
}
