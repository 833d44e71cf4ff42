package timemath

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// Calendar answers timezone-aware day questions for the planner.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a Calendar for the given IANA timezone string.
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// StartOfDay returns midnight at the start of the given day in the calendar's timezone.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// EndOfDay returns 23:59:59 of the given day.
func (c *Calendar) EndOfDay(t time.Time) time.Time {
	return c.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// RemainingWeekdays returns today (when it falls Mon–Fri) through Friday of
// the current week, as start-of-day times. Saturday and Sunday return an
// empty slice: the work week is over.
func (c *Calendar) RemainingWeekdays(now time.Time) []time.Time {
	day := c.StartOfDay(now)
	wd := day.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	var days []time.Time
	for d := day; d.Weekday() >= time.Monday && d.Weekday() <= time.Friday; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// SameDate reports whether two times fall on the same calendar date.
func (c *Calendar) SameDate(a, b time.Time) bool {
	return c.StartOfDay(a).Equal(c.StartOfDay(b))
}
