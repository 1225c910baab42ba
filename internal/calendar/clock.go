package calendar

import "time"

// Clock abstracts current-time acquisition so retention decisions can be
// tested against fixed dates.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// Fixed returns a Clock that always reports the given date.
func Fixed(d Date) Clock {
	return fixedClock{t: d.Time()}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// Today returns the current local calendar date according to c.
func Today(c Clock) Date {
	return FromTime(c.Now())
}
