// ABOUTME: Calendar-aware date arithmetic for next-due computation
// ABOUTME: Adds day/week/month intervals to ISO dates with month-end clamping
package cadence

import (
	"fmt"
	"time"

	"github.com/Sankar2i/calendar/models"
)

// ParseDate parses an ISO yyyy-mm-dd date. Impossible dates such as
// 2023-02-30 are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders t in the ISO date layout.
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// Today returns the calendar date of now in loc. A nil loc means UTC.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatDate(now.In(loc))
}

// AddInterval adds iv to t. Months keep the day of month when the target
// month has it and clamp to its last day otherwise.
func AddInterval(t time.Time, iv Interval) time.Time {
	switch iv.Unit {
	case UnitDay:
		return t.AddDate(0, 0, iv.Amount)
	case UnitWeek:
		return t.AddDate(0, 0, 7*iv.Amount)
	case UnitMonth:
		return addMonths(t, iv.Amount)
	}
	return t
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	// Day 1 never overflows, so this lands in the target month.
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// maxYear keeps results in four-digit years, where ISO strings sort by date.
const maxYear = 9999

// NextDate returns base + iv as an ISO date string. A result past year 9999,
// or one that wrapped around to before base, is ErrInvalidDate.
func NextDate(base string, iv Interval) (string, error) {
	t, err := ParseDate(base)
	if err != nil {
		return "", err
	}
	if !iv.valid() {
		return "", fmt.Errorf("%w: %d %s", ErrInvalidPeriodicity, iv.Amount, iv.Unit)
	}
	next := AddInterval(t, iv)
	if next.Year() > maxYear || !next.After(t) {
		return "", fmt.Errorf("%w: %s plus %s is out of range", ErrInvalidDate, base, iv)
	}
	return FormatDate(next), nil
}
