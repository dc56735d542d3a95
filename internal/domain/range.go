package domain

import "time"

// StartOfDay returns local midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// RangeStart returns the inclusive lower bound of r relative to now.
// Calendar arithmetic happens in now's location:
//   - today: local midnight
//   - week:  midnight of the Monday of the current week (weeks start Monday)
//   - month: midnight of the first day of the current month
//
// Unknown filters fall back to today.
func RangeStart(r RangeFilter, now time.Time) time.Time {
	switch r {
	case RangeWeek:
		sinceMonday := (int(now.Weekday()) + 6) % 7
		return StartOfDay(now.AddDate(0, 0, -sinceMonday))
	case RangeMonth:
		return StartOfDay(now.AddDate(0, 0, 1-now.Day()))
	default:
		return StartOfDay(now)
	}
}
