// Package calendar implements working-day arithmetic on a Monday-Friday
// week. All functions operate on calendar dates; time-of-day is ignored.
package calendar

import "time"

// IsWorkday reports whether t falls on a Monday through Friday.
func IsWorkday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextWorkday returns the first workday on or after t. A date already on a
// workday is returned unchanged.
func NextWorkday(t time.Time) time.Time {
	for !IsWorkday(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// AddWorkdays returns the finish date of a task that starts at start and
// occupies days workdays. The start is weekend-corrected first, so a 1-day
// task starting on a workday finishes the same day. days <= 0 returns the
// corrected start unchanged.
func AddWorkdays(start time.Time, days int) time.Time {
	current := NextWorkday(start)
	for added := 0; added < days-1; {
		current = current.AddDate(0, 0, 1)
		if IsWorkday(current) {
			added++
		}
	}
	return current
}
