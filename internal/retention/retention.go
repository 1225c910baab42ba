// Package retention computes which snapshot dates survive a rotation.
// Plan is a pure function over the current date and the years for which
// snapshots exist; it performs no I/O and keeps no state, so every run
// re-derives the same keep-set from the same inputs.
package retention

import (
	"time"

	"github.com/raoulx24/ark/internal/calendar"
)

// maxWeeklySteps bounds the weekly walk. The month-membership check
// terminates it in practice; the cap guards against date-math mistakes
// turning the loop infinite.
const maxWeeklySteps = 10

// dailyWindow is the number of trailing calendar days kept in full.
const dailyWindow = 7

// KeepSet is the set of snapshot dates that must not be deleted.
type KeepSet map[calendar.Date]struct{}

// Contains reports whether d survives the rotation.
func (k KeepSet) Contains(d calendar.Date) bool {
	_, ok := k[d]
	return ok
}

func (k KeepSet) add(d calendar.Date) {
	k[d] = struct{}{}
}

// Plan selects the dates to keep for the given current date. existingYears
// are the years seen among on-disk snapshots; they only bound the yearly
// tier. A date qualifying under several tiers collapses into one entry.
func Plan(now calendar.Date, existingYears []int) KeepSet {
	keep := make(KeepSet)

	// Daily: today and the six preceding days.
	for i := 0; i < dailyWindow; i++ {
		keep.add(now.AddDays(-i))
	}

	// Weekly: Sundays of the current month, starting past the daily window.
	sunday := now.AddDays(-dailyWindow).NextOrSameSunday()
	monthStart := now.StartOfMonth()
	for steps := 0; steps < maxWeeklySteps; steps++ {
		if !sunday.SameMonth(now) || sunday.Before(monthStart) {
			break
		}
		keep.add(sunday)
		sunday = sunday.AddDays(-7)
	}

	// Monthly: last day of each elapsed month this year. Empty in January.
	for m := time.January; m < now.Month; m++ {
		keep.add(calendar.Date{Year: now.Year, Month: m, Day: 1}.EndOfMonth())
	}

	// Yearly: December 31 of every fully elapsed year since the oldest
	// snapshot. Nothing to anchor to when no snapshots exist yet.
	if minYear, ok := minOf(existingYears); ok {
		for y := minYear; y < now.Year; y++ {
			keep.add(calendar.EndOfYear(y))
		}
	}

	return keep
}

func minOf(years []int) (int, bool) {
	if len(years) == 0 {
		return 0, false
	}
	min := years[0]
	for _, y := range years[1:] {
		if y < min {
			min = y
		}
	}
	return min, true
}
